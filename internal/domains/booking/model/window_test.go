package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"casona/internal/domains/booking/model"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func stay(checkIn, checkOut string) model.Booking {
	return model.Booking{
		BookingID: "BK-1",
		CheckIn:   day(checkIn),
		CheckOut:  day(checkOut),
	}
}

func TestNewWindow(t *testing.T) {
	window := model.NewWindow(day("2026-08-01"), 14)

	assert.Equal(t, day("2026-08-01"), window.Start)
	assert.Equal(t, day("2026-08-15"), window.End)
	assert.True(t, window.IsValid())
}

func TestWindow_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		window model.Window
		want   bool
	}{
		{
			name:   "start before end",
			window: model.Window{Start: day("2026-08-01"), End: day("2026-08-15")},
			want:   true,
		},
		{
			name:   "zero-length window",
			window: model.Window{Start: day("2026-08-01"), End: day("2026-08-01")},
			want:   true,
		},
		{
			name:   "start after end",
			window: model.Window{Start: day("2026-08-15"), End: day("2026-08-01")},
			want:   false,
		},
		{
			name:   "zero window",
			window: model.Window{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.IsValid())
		})
	}
}

func TestBooking_OverlapPredicates(t *testing.T) {
	window := model.Window{Start: day("2026-08-10"), End: day("2026-08-20")}

	tests := []struct {
		name         string
		booking      model.Booking
		wantActive   bool
		wantCheckIn  bool
		wantCheckOut bool
		wantOverlap  bool
		wantInWindow bool
	}{
		{
			name:         "stay spans the whole window",
			booking:      stay("2026-08-01", "2026-08-31"),
			wantActive:   true,
			wantCheckIn:  false,
			wantCheckOut: false,
			wantOverlap:  true,
			wantInWindow: true,
		},
		{
			name:         "check-in inside the window",
			booking:      stay("2026-08-15", "2026-08-25"),
			wantActive:   false,
			wantCheckIn:  true,
			wantCheckOut: false,
			wantOverlap:  true,
			wantInWindow: true,
		},
		{
			name:         "check-out inside the window",
			booking:      stay("2026-08-05", "2026-08-12"),
			wantActive:   true,
			wantCheckIn:  false,
			wantCheckOut: true,
			wantOverlap:  true,
			wantInWindow: true,
		},
		{
			name:         "stay entirely inside the window",
			booking:      stay("2026-08-12", "2026-08-18"),
			wantActive:   false,
			wantCheckIn:  true,
			wantCheckOut: true,
			wantOverlap:  true,
			wantInWindow: true,
		},
		{
			name:         "stay ends before the window",
			booking:      stay("2026-08-01", "2026-08-05"),
			wantActive:   false,
			wantCheckIn:  false,
			wantCheckOut: false,
			wantOverlap:  false,
			wantInWindow: false,
		},
		{
			name:         "stay starts after the window",
			booking:      stay("2026-08-25", "2026-08-30"),
			wantActive:   false,
			wantCheckIn:  false,
			wantCheckOut: false,
			wantOverlap:  false,
			wantInWindow: false,
		},
		{
			name:         "check-out exactly on window start",
			booking:      stay("2026-08-01", "2026-08-10"),
			wantActive:   true,
			wantCheckIn:  false,
			wantCheckOut: true,
			wantOverlap:  true,
			wantInWindow: true,
		},
		{
			name:         "check-in exactly on window end",
			booking:      stay("2026-08-20", "2026-08-25"),
			wantActive:   false,
			wantCheckIn:  true,
			wantCheckOut: false,
			wantOverlap:  true,
			wantInWindow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantActive, tt.booking.IsCurrentlyActive(window), "IsCurrentlyActive")
			assert.Equal(t, tt.wantCheckIn, tt.booking.HasCheckInWithin(window), "HasCheckInWithin")
			assert.Equal(t, tt.wantCheckOut, tt.booking.HasCheckOutWithin(window), "HasCheckOutWithin")
			assert.Equal(t, tt.wantOverlap, tt.booking.OverlapsWindow(window), "OverlapsWindow")
			assert.Equal(t, tt.wantInWindow, tt.booking.InWindow(window), "InWindow")
		})
	}
}

// With check_in before check_out, the union of the four predicates never
// selects more than plain overlap does. The exhaustive sweep pins that
// equivalence down across every stay/window alignment.
func TestBooking_InWindowMatchesOverlap(t *testing.T) {
	base := day("2026-08-01")

	for checkInOffset := 0; checkInOffset < 20; checkInOffset++ {
		for stayLen := 1; stayLen <= 10; stayLen++ {
			for windowStart := 0; windowStart < 20; windowStart++ {
				for windowLen := 0; windowLen <= 10; windowLen++ {
					booking := model.Booking{
						CheckIn:  base.AddDate(0, 0, checkInOffset),
						CheckOut: base.AddDate(0, 0, checkInOffset+stayLen),
					}
					window := model.NewWindow(base.AddDate(0, 0, windowStart), windowLen)

					assert.Equal(t, booking.OverlapsWindow(window), booking.InWindow(window))
				}
			}
		}
	}
}

func TestFilterByWindow(t *testing.T) {
	window := model.Window{Start: day("2026-08-10"), End: day("2026-08-20")}

	inside := stay("2026-08-12", "2026-08-15")
	spanning := stay("2026-08-01", "2026-08-31")
	before := stay("2026-08-01", "2026-08-05")
	after := stay("2026-08-25", "2026-08-30")
	missingDates := model.Booking{BookingID: "BK-BAD"}

	matched := model.FilterByWindow([]model.Booking{before, inside, missingDates, spanning, after}, window)

	assert.Equal(t, []model.Booking{inside, spanning}, matched)
}

func TestFilterByWindow_PreservesSourceOrder(t *testing.T) {
	window := model.Window{Start: day("2026-08-01"), End: day("2026-08-31")}

	first := stay("2026-08-20", "2026-08-25")
	second := stay("2026-08-05", "2026-08-10")
	third := stay("2026-08-12", "2026-08-15")

	matched := model.FilterByWindow([]model.Booking{first, second, third}, window)

	assert.Equal(t, []model.Booking{first, second, third}, matched)
}

func TestFilterByWindow_ZeroLengthWindow(t *testing.T) {
	today := day("2026-08-15")
	window := model.Window{Start: today, End: today}

	covering := stay("2026-08-10", "2026-08-20")
	checkingOut := stay("2026-08-10", "2026-08-15")
	checkingIn := stay("2026-08-15", "2026-08-20")
	past := stay("2026-08-01", "2026-08-05")

	matched := model.FilterByWindow([]model.Booking{covering, checkingOut, checkingIn, past}, window)

	assert.Equal(t, []model.Booking{covering, checkingOut, checkingIn}, matched)
}

func TestFilterByWindow_Empty(t *testing.T) {
	window := model.Window{Start: day("2026-08-10"), End: day("2026-08-20")}

	assert.Empty(t, model.FilterByWindow(nil, window))
	assert.Empty(t, model.FilterByWindow([]model.Booking{}, window))
}
