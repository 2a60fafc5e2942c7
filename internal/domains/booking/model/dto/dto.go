package dto

import (
	"casona/internal/domains/booking/model"
	"casona/shared"
	"casona/shared/constant"
	gDto "casona/shared/dto"
	"casona/shared/failure"
	gModel "casona/shared/model"
	"casona/shared/money"
	"casona/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	BookingID     string        `json:"booking_id"     validate:"required,max=50"`
	GuestName     string        `json:"guest_name"     validate:"required,max=100"`
	CheckIn       string        `json:"check_in"       validate:"required,date"`
	CheckOut      string        `json:"check_out"      validate:"required,date"`
	Nights        int           `json:"nights"         validate:"omitempty,gte=0"`
	Persons       int           `json:"persons"        validate:"omitempty,gte=1"`
	Adults        int           `json:"adults"         validate:"omitempty,gte=1"`
	Children      int           `json:"children"       validate:"omitempty,gte=0"`
	Status        string        `json:"status"         validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	Price         *money.Amount `json:"price"          validate:"omitempty"`
	Charges       *money.Amount `json:"charges"        validate:"omitempty"`
	Email         string        `json:"email"          validate:"omitempty,email,max=100"`
	Phone         string        `json:"phone"          validate:"omitempty,max=20"`
	BookingNumber string        `json:"booking_number" validate:"omitempty,max=50"`
}

// ToModel builds the Booking to persist. The stay dates are authoritative:
// the night count is always derived from them and any submitted value is
// overridden.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	if (c.Price != nil && c.Price.IsNegative()) || (c.Charges != nil && c.Charges.IsNegative()) {
		return model.Booking{}, failure.BadRequestFromString("price and charges must not be negative") //nolint:wrapcheck
	}

	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	persons := c.Persons
	if persons == 0 {
		persons = 1
	}

	adults := c.Adults
	if adults == 0 {
		adults = 1
	}

	booking := model.Booking{
		BookingID:     c.BookingID,
		GuestName:     c.GuestName,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Persons:       persons,
		Adults:        adults,
		Children:      c.Children,
		Status:        status,
		Price:         c.Price,
		Charges:       c.Charges,
		Email:         c.Email,
		Phone:         c.Phone,
		BookingNumber: c.BookingNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
	booking.Nights = booking.StayNights()

	return booking, nil
}

type UpdateBookingRequest struct {
	BookingID     string        `db:"booking_id"     json:"booking_id"     validate:"omitempty,max=50"`
	GuestName     string        `db:"guest_name"     json:"guest_name"     validate:"omitempty,max=100"`
	CheckIn       string        `json:"check_in"       validate:"omitempty,date"`
	CheckOut      string        `json:"check_out"      validate:"omitempty,date"`
	Persons       int           `db:"persons"        json:"persons"        validate:"omitempty,gte=1"`
	Adults        int           `db:"adults"         json:"adults"         validate:"omitempty,gte=1"`
	Children      int           `db:"children"       json:"children"       validate:"omitempty,gte=0"`
	Status        string        `db:"status"         json:"status"         validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	Price         *money.Amount `db:"price"          json:"price"          validate:"omitempty"`
	Charges       *money.Amount `db:"charges"        json:"charges"        validate:"omitempty"`
	Email         string        `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Phone         string        `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	BookingNumber string        `db:"booking_number" json:"booking_number" validate:"omitempty,max=50"`
}

// IsEmpty reports whether the request carries no field at all.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return *u == (UpdateBookingRequest{})
}

// ToFieldMap merges the request into the stored booking and returns the
// column map to write. Absent fields keep the stored value. Dates are
// merged first so the night count can be re-derived from the effective
// pair; a submitted nights value never survives a date change.
func (u *UpdateBookingRequest) ToFieldMap(current model.Booking) (map[string]any, error) {
	checkIn := current.CheckIn
	checkOut := current.CheckOut

	if u.CheckIn != "" {
		parsed, err := time.Parse(constant.DayFormat, u.CheckIn)
		if err != nil {
			return nil, failure.BadRequestFromString("check_in must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
		}

		checkIn = parsed
	}

	if u.CheckOut != "" {
		parsed, err := time.Parse(constant.DayFormat, u.CheckOut)
		if err != nil {
			return nil, failure.BadRequestFromString("check_out must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
		}

		checkOut = parsed
	}

	if !checkOut.After(checkIn) {
		return nil, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	if (u.Price != nil && u.Price.IsNegative()) || (u.Charges != nil && u.Charges.IsNegative()) {
		return nil, failure.BadRequestFromString("price and charges must not be negative") //nolint:wrapcheck
	}

	fields := shared.TransformFields(*u, constant.Empty)

	if u.CheckIn != "" || u.CheckOut != "" {
		fields[model.FieldCheckIn] = checkIn
		fields[model.FieldCheckOut] = checkOut
	}

	merged := model.Booking{CheckIn: checkIn, CheckOut: checkOut}
	fields[model.FieldNights] = merged.StayNights()

	return fields, nil
}

type BookingResponse struct {
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
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking, allowance *money.Amount) {
	r.RecordID = mod.RecordID
	r.BookingID = mod.BookingID
	r.GuestName = mod.GuestName
	r.CheckIn = mod.CheckIn.Format(constant.DayFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DayFormat)
	r.Nights = mod.StayNights()
	r.Persons = mod.Persons
	r.Adults = mod.Adults
	r.Children = mod.Children
	r.Status = mod.Status
	r.Price = mod.Price
	r.Charges = mod.Charges
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.BookingNumber = mod.BookingNumber
	r.ElectricAllowance = allowance
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}
