package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "casona/internal/domains/booking/model"
	"casona/internal/domains/calendar/model/dto"
	"casona/shared/money"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestEvent_FromBooking(t *testing.T) {
	price := money.FromUnits(500)
	allowance := money.FromUnits(20)

	booking := bookingModel.Booking{
		RecordID:      7,
		BookingID:     "BK-42",
		GuestName:     "Ada Lovelace",
		CheckIn:       day("2026-08-10"),
		CheckOut:      day("2026-08-15"),
		Persons:       2,
		Adults:        2,
		Status:        bookingModel.StatusConfirmed,
		Price:         &price,
		Email:         "ada@example.com",
		BookingNumber: "RES-9",
	}

	var event dto.Event

	event.FromBooking(booking, &allowance)

	assert.Equal(t, "booking-7", event.ID)
	assert.Equal(t, "BK-42 - Ada Lovelace", event.Title)
	assert.Equal(t, "2026-08-10", event.Start)
	assert.Equal(t, "2026-08-15", event.End)
	assert.True(t, event.AllDay)
	assert.Equal(t, []string{"reserva"}, event.ClassNames)

	props := event.ExtendedProps

	assert.Equal(t, int64(7), props.RecordID)
	assert.Equal(t, "BK-42", props.BookingID)
	assert.Equal(t, "Ada Lovelace", props.GuestName)
	assert.Equal(t, "2026-08-10", props.CheckIn)
	assert.Equal(t, "2026-08-15", props.CheckOut)
	assert.Equal(t, 5, props.Nights)
	assert.Equal(t, &price, props.Price)
	assert.Equal(t, &allowance, props.ElectricAllowance)
	assert.Equal(t, "database", props.Source)
}

func TestEvent_FromBooking_Cancelled(t *testing.T) {
	booking := bookingModel.Booking{
		RecordID:  3,
		BookingID: "BK-9",
		Status:    "cancelled",
		CheckIn:   day("2026-08-10"),
		CheckOut:  day("2026-08-12"),
	}

	var event dto.Event

	event.FromBooking(booking, nil)

	assert.Equal(t, []string{"reserva", "cancelled"}, event.ClassNames)
}

func TestEvent_FromBooking_PlaceholderTitle(t *testing.T) {
	booking := bookingModel.Booking{
		RecordID:  3,
		BookingID: "BK-9",
		CheckIn:   day("2026-08-10"),
		CheckOut:  day("2026-08-12"),
	}

	var event dto.Event

	event.FromBooking(booking, nil)

	assert.Equal(t, "BK-9 - Guest without name", event.Title)
}

func TestEvent_Token(t *testing.T) {
	event := dto.Event{
		ID:    "booking-7",
		Start: "2026-08-10",
		End:   "2026-08-15",
	}

	assert.Equal(t, "booking-7|2026-08-10|2026-08-15", event.Token())
}
