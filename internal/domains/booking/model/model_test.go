package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casona/internal/domains/booking/model"
	"casona/shared/money"
)

func TestBooking_StayNights(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    int
	}{
		{
			name:    "one night",
			booking: stay("2026-08-10", "2026-08-11"),
			want:    1,
		},
		{
			name:    "week stay",
			booking: stay("2026-08-10", "2026-08-17"),
			want:    7,
		},
		{
			name:    "missing dates",
			booking: model.Booking{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.StayNights())
		})
	}
}

func TestBooking_StayNightsOverridesStoredValue(t *testing.T) {
	booking := stay("2026-08-10", "2026-08-13")
	booking.Nights = 99

	assert.Equal(t, 3, booking.StayNights())
}

func TestBooking_IsCancelled(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "exact casing", status: "Cancelled", want: true},
		{name: "lowercase", status: "cancelled", want: true},
		{name: "uppercase", status: "CANCELLED", want: true},
		{name: "surrounding whitespace", status: "  Cancelled ", want: true},
		{name: "confirmed", status: "Confirmed", want: false},
		{name: "pending", status: "Pending", want: false},
		{name: "empty", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}

			assert.Equal(t, tt.want, booking.IsCancelled())
		})
	}
}

func TestBooking_DaysUntilCheckIn(t *testing.T) {
	today := day("2026-08-15")

	tests := []struct {
		name    string
		checkIn string
		want    int
	}{
		{name: "check-in today", checkIn: "2026-08-15", want: 0},
		{name: "check-in tomorrow", checkIn: "2026-08-16", want: 1},
		{name: "check-in next week", checkIn: "2026-08-22", want: 7},
		{name: "check-in passed", checkIn: "2026-08-10", want: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{CheckIn: day(tt.checkIn)}

			assert.Equal(t, tt.want, booking.DaysUntilCheckIn(today))
		})
	}
}

func TestBooking_DisplayTitle(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    string
	}{
		{
			name:    "with guest name",
			booking: model.Booking{BookingID: "BK-42", GuestName: "Ada Lovelace"},
			want:    "BK-42 - Ada Lovelace",
		},
		{
			name:    "empty guest name",
			booking: model.Booking{BookingID: "BK-42"},
			want:    "BK-42 - Guest without name",
		},
		{
			name:    "whitespace guest name",
			booking: model.Booking{BookingID: "BK-42", GuestName: "   "},
			want:    "BK-42 - Guest without name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.DisplayTitle())
		})
	}
}

func TestBooking_ElectricAllowance(t *testing.T) {
	allowList := []string{"BK-100", "BK-200"}

	tests := []struct {
		name    string
		booking model.Booking
		want    *money.Amount
	}{
		{
			name: "allow-listed five nights",
			booking: model.Booking{
				BookingID: "BK-100",
				CheckIn:   day("2026-08-10"),
				CheckOut:  day("2026-08-15"),
			},
			want: amountPtr(money.FromUnits(20)),
		},
		{
			name: "allow-listed with surrounding whitespace",
			booking: model.Booking{
				BookingID: "  BK-200  ",
				CheckIn:   day("2026-08-10"),
				CheckOut:  day("2026-08-12"),
			},
			want: amountPtr(money.FromUnits(8)),
		},
		{
			name: "not allow-listed",
			booking: model.Booking{
				BookingID: "BK-300",
				CheckIn:   day("2026-08-10"),
				CheckOut:  day("2026-08-15"),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.ElectricAllowance(allowList, 4))
		})
	}
}

func TestBooking_ElectricAllowance_EmptyAllowList(t *testing.T) {
	booking := stay("2026-08-10", "2026-08-15")

	assert.Nil(t, booking.ElectricAllowance(nil, 4))
	assert.Nil(t, booking.ElectricAllowance([]string{}, 4))
}

func amountPtr(a money.Amount) *money.Amount {
	return &a
}
