package dto

import (
	"casona/internal/domains/booking/model"
	"casona/shared/constant"
	"casona/shared/money"
	"strconv"
)

const (
	// EventSource marks events projected from stored bookings, so a
	// consumer merging several feeds can tell them apart.
	EventSource = "database"

	classReserva   = "reserva"
	classCancelled = "cancelled"

	eventIDPrefix = "booking-"
)

// ExtendedProps carries the full booking payload on each event so the
// consumer never needs a second round-trip to render a detail view.
type ExtendedProps struct {
	RecordID          int64         `json:"record_id"`
	BookingID         string        `json:"booking_id"`
	GuestName         string        `json:"guest_name"`
	CheckIn           string        `json:"check_in"`
	CheckOut          string        `json:"check_out"`
	Nights            int           `json:"nights"`
	Persons           int           `json:"persons"`
	Adults            int           `json:"adults"`
	Children          int           `json:"children"`
	Status            string        `json:"status"`
	Price             *money.Amount `json:"price"`
	Charges           *money.Amount `json:"charges"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	BookingNumber     string        `json:"booking_number"`
	ElectricAllowance *money.Amount `json:"electric_allowance"`
	Source            string        `json:"source"`
}

// Event is one calendar entry in the shape the calendar UI consumes.
// Start and End are plain calendar dates; End is the check-out date and
// the event is all-day, so the rendered bar covers the check-out day.
type Event struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	AllDay        bool          `json:"allDay"`
	ClassNames    []string      `json:"classNames"`
	ExtendedProps ExtendedProps `json:"extendedProps"`
}

// FromBooking projects a booking into its calendar event.
func (e *Event) FromBooking(booking model.Booking, allowance *money.Amount) {
	e.ID = eventIDPrefix + strconv.FormatInt(booking.RecordID, 10)
	e.Title = booking.DisplayTitle()
	e.Start = booking.CheckIn.Format(constant.DayFormat)
	e.End = booking.CheckOut.Format(constant.DayFormat)
	e.AllDay = true

	e.ClassNames = []string{classReserva}
	if booking.IsCancelled() {
		e.ClassNames = append(e.ClassNames, classCancelled)
	}

	e.ExtendedProps = ExtendedProps{
		RecordID:          booking.RecordID,
		BookingID:         booking.BookingID,
		GuestName:         booking.GuestName,
		CheckIn:           e.Start,
		CheckOut:          e.End,
		Nights:            booking.StayNights(),
		Persons:           booking.Persons,
		Adults:            booking.Adults,
		Children:          booking.Children,
		Status:            booking.Status,
		Price:             booking.Price,
		Charges:           booking.Charges,
		Email:             booking.Email,
		Phone:             booking.Phone,
		BookingNumber:     booking.BookingNumber,
		ElectricAllowance: allowance,
		Source:            EventSource,
	}
}

// Token is the stable identity a click handler echoes back to select
// this event again: the id plus both dates, pipe-joined.
func (e *Event) Token() string {
	return e.ID + "|" + e.Start + "|" + e.End
}

type GetEventsResponse struct {
	Events    []Event `json:"events"`
	TotalData int     `json:"total_data"`
}
