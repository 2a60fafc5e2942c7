package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casona/internal/domains/booking/model"
	"casona/internal/domains/booking/model/dto"
	"casona/shared/failure"
	"casona/shared/money"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		BookingID: "BK-42",
		GuestName: "Ada Lovelace",
		CheckIn:   "2026-08-10",
		CheckOut:  "2026-08-15",
		Status:    model.StatusPending,
		Persons:   3,
		Adults:    2,
		Children:  1,
	}

	booking, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, "BK-42", booking.BookingID)
	assert.Equal(t, day("2026-08-10"), booking.CheckIn)
	assert.Equal(t, day("2026-08-15"), booking.CheckOut)
	assert.Equal(t, 5, booking.Nights)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, 3, booking.Persons)
	assert.Equal(t, 2, booking.Adults)
	assert.Equal(t, 1, booking.Children)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestCreateBookingRequest_ToModel_Defaults(t *testing.T) {
	req := dto.CreateBookingRequest{
		BookingID: "BK-42",
		GuestName: "Ada Lovelace",
		CheckIn:   "2026-08-10",
		CheckOut:  "2026-08-11",
	}

	booking, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, 1, booking.Persons)
	assert.Equal(t, 1, booking.Adults)
	assert.Equal(t, 1, booking.Nights)
}

func TestCreateBookingRequest_ToModel_NightsDerivedFromDates(t *testing.T) {
	req := dto.CreateBookingRequest{
		BookingID: "BK-42",
		GuestName: "Ada Lovelace",
		CheckIn:   "2026-08-10",
		CheckOut:  "2026-08-13",
		Nights:    99,
	}

	booking, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, 3, booking.Nights)
}

func TestCreateBookingRequest_ToModel_Invalid(t *testing.T) {
	negative := money.FromUnits(-5)

	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{
			name: "malformed check-in",
			req: dto.CreateBookingRequest{
				BookingID: "BK-42",
				CheckIn:   "10/08/2026",
				CheckOut:  "2026-08-15",
			},
		},
		{
			name: "malformed check-out",
			req: dto.CreateBookingRequest{
				BookingID: "BK-42",
				CheckIn:   "2026-08-10",
				CheckOut:  "not-a-date",
			},
		},
		{
			name: "check-out equals check-in",
			req: dto.CreateBookingRequest{
				BookingID: "BK-42",
				CheckIn:   "2026-08-10",
				CheckOut:  "2026-08-10",
			},
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				BookingID: "BK-42",
				CheckIn:   "2026-08-15",
				CheckOut:  "2026-08-10",
			},
		},
		{
			name: "negative price",
			req: dto.CreateBookingRequest{
				BookingID: "BK-42",
				CheckIn:   "2026-08-10",
				CheckOut:  "2026-08-15",
				Price:     &negative,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel()

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestUpdateBookingRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateBookingRequest{}).IsEmpty())
	assert.False(t, (&dto.UpdateBookingRequest{GuestName: "Ada"}).IsEmpty())
}

func TestUpdateBookingRequest_ToFieldMap(t *testing.T) {
	current := model.Booking{
		CheckIn:  day("2026-08-10"),
		CheckOut: day("2026-08-15"),
	}

	req := dto.UpdateBookingRequest{
		GuestName: "Grace Hopper",
		Status:    model.StatusCancelled,
	}

	fields, err := req.ToFieldMap(current)

	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", fields[model.FieldGuestName])
	assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
	assert.Equal(t, 5, fields[model.FieldNights])
	assert.NotContains(t, fields, model.FieldCheckIn)
	assert.NotContains(t, fields, model.FieldCheckOut)
	assert.NotContains(t, fields, model.FieldBookingID)
}

func TestUpdateBookingRequest_ToFieldMap_DateChangeRederivesNights(t *testing.T) {
	current := model.Booking{
		CheckIn:  day("2026-08-10"),
		CheckOut: day("2026-08-15"),
	}

	req := dto.UpdateBookingRequest{CheckOut: "2026-08-12"}

	fields, err := req.ToFieldMap(current)

	require.NoError(t, err)
	assert.Equal(t, day("2026-08-10"), fields[model.FieldCheckIn])
	assert.Equal(t, day("2026-08-12"), fields[model.FieldCheckOut])
	assert.Equal(t, 2, fields[model.FieldNights])
}

func TestUpdateBookingRequest_ToFieldMap_Invalid(t *testing.T) {
	current := model.Booking{
		CheckIn:  day("2026-08-10"),
		CheckOut: day("2026-08-15"),
	}

	tests := []struct {
		name string
		req  dto.UpdateBookingRequest
	}{
		{
			name: "malformed check-in",
			req:  dto.UpdateBookingRequest{CheckIn: "15-08-2026"},
		},
		{
			name: "merged check-out not after merged check-in",
			req:  dto.UpdateBookingRequest{CheckOut: "2026-08-10"},
		},
		{
			name: "merged check-in after stored check-out",
			req:  dto.UpdateBookingRequest{CheckIn: "2026-08-20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToFieldMap(current)

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	price := money.FromUnits(500)
	allowance := money.FromUnits(20)

	booking := model.Booking{
		RecordID:  7,
		BookingID: "BK-42",
		GuestName: "Ada Lovelace",
		CheckIn:   day("2026-08-10"),
		CheckOut:  day("2026-08-15"),
		Nights:    99,
		Persons:   2,
		Adults:    2,
		Status:    model.StatusConfirmed,
		Price:     &price,
	}

	var res dto.BookingResponse

	res.FromModel(booking, &allowance)

	assert.Equal(t, int64(7), res.RecordID)
	assert.Equal(t, "BK-42", res.BookingID)
	assert.Equal(t, "2026-08-10", res.CheckIn)
	assert.Equal(t, "2026-08-15", res.CheckOut)
	assert.Equal(t, 5, res.Nights)
	assert.Equal(t, &price, res.Price)
	assert.Equal(t, &allowance, res.ElectricAllowance)
}
