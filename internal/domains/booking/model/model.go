package model

import (
	"casona/shared/model"
	"casona/shared/money"
	"strings"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldGuestName     = "guest_name"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldNights        = "nights"
	FieldPersons       = "persons"
	FieldAdults        = "adults"
	FieldChildren      = "children"
	FieldStatus        = "status"
	FieldPrice         = "price"
	FieldCharges       = "charges"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldBookingNumber = "booking_number"
)

const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// GuestNamePlaceholder substitutes an empty guest name wherever one is
// displayed. Titles are never left blank.
const GuestNamePlaceholder = "Guest without name"

type Booking struct {
	// RecordID is the store-assigned primary identity, distinct from the
	// externally chosen BookingID.
	RecordID      int64         `db:"id"             json:"record_id"`
	BookingID     string        `db:"booking_id"     json:"booking_id"`
	GuestName     string        `db:"guest_name"     json:"guest_name"`
	CheckIn       time.Time     `db:"check_in"       json:"check_in"`
	CheckOut      time.Time     `db:"check_out"      json:"check_out"`
	Nights        int           `db:"nights"         json:"nights"`
	Persons       int           `db:"persons"        json:"persons"`
	Adults        int           `db:"adults"         json:"adults"`
	Children      int           `db:"children"       json:"children"`
	Status        string        `db:"status"         json:"status"`
	Price         *money.Amount `db:"price"          json:"price"`
	Charges       *money.Amount `db:"charges"        json:"charges"`
	Email         string        `db:"email"          json:"email"`
	Phone         string        `db:"phone"          json:"phone"`
	BookingNumber string        `db:"booking_number" json:"booking_number"`
	model.Metadata
}

// HasDates reports whether both stay dates are present. Rows failing this
// are skipped by batch operations rather than failing them.
func (b *Booking) HasDates() bool {
	return !b.CheckIn.IsZero() && !b.CheckOut.IsZero()
}

// StayNights derives the night count from the stay dates. The dates are
// authoritative: a conflicting stored Nights value is ignored.
func (b *Booking) StayNights() int {
	if !b.HasDates() {
		return 0
	}

	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// IsCancelled matches the status case-insensitively; storage does not
// enforce the casing.
func (b *Booking) IsCancelled() bool {
	return strings.EqualFold(strings.TrimSpace(b.Status), StatusCancelled)
}

// DaysUntilCheckIn returns the whole days between today and check-in,
// negative once the check-in has passed.
func (b *Booking) DaysUntilCheckIn(today time.Time) int {
	return int(b.CheckIn.Sub(today).Hours() / 24)
}

// DisplayTitle builds the calendar/table title for the booking.
func (b *Booking) DisplayTitle() string {
	name := b.GuestName
	if strings.TrimSpace(name) == "" {
		name = GuestNamePlaceholder
	}

	return b.BookingID + " - " + name
}

// ElectricAllowance computes the per-night electric credit: nights times
// the unit rate, only when the trimmed booking ID is on the allow-list.
// It is derived on every read and never persisted.
func (b *Booking) ElectricAllowance(allowList []string, rate int) *money.Amount {
	id := strings.TrimSpace(b.BookingID)

	for _, allowed := range allowList {
		if allowed == id {
			allowance := money.FromUnits(int64(b.StayNights() * rate))

			return &allowance
		}
	}

	return nil
}
