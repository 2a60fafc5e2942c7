package model

import (
	"time"
)

// Window is an inclusive calendar-date range used to select the bookings
// relevant to a view. Both bounds are midnight-UTC dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window of the given length starting at start.
func NewWindow(start time.Time, days int) Window {
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, days),
	}
}

func (w Window) IsValid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && !w.Start.After(w.End)
}

// The four overlap predicates below reproduce the documented selection
// rule: a booking is relevant iff any of them holds. OverlapsWindow alone
// subsumes the other three; all four are kept as separately named and
// separately tested conditions because the behavior is specified that
// way, not because they encode distinct intents.

// IsCurrentlyActive reports check_in <= windowStart <= check_out.
func (b *Booking) IsCurrentlyActive(w Window) bool {
	return !b.CheckIn.After(w.Start) && !w.Start.After(b.CheckOut)
}

// HasCheckInWithin reports windowStart <= check_in <= windowEnd.
func (b *Booking) HasCheckInWithin(w Window) bool {
	return !w.Start.After(b.CheckIn) && !b.CheckIn.After(w.End)
}

// HasCheckOutWithin reports windowStart <= check_out <= windowEnd.
func (b *Booking) HasCheckOutWithin(w Window) bool {
	return !w.Start.After(b.CheckOut) && !b.CheckOut.After(w.End)
}

// OverlapsWindow reports check_in <= windowEnd && check_out >= windowStart.
func (b *Booking) OverlapsWindow(w Window) bool {
	return !b.CheckIn.After(w.End) && !b.CheckOut.Before(w.Start)
}

// InWindow is the union of the four overlap predicates.
func (b *Booking) InWindow(w Window) bool {
	return b.IsCurrentlyActive(w) ||
		b.HasCheckInWithin(w) ||
		b.HasCheckOutWithin(w) ||
		b.OverlapsWindow(w)
}

// FilterByWindow selects the bookings whose stay overlaps the window.
// Source order is preserved. Rows without both dates are silently
// dropped; a bad row never fails the batch.
func FilterByWindow(bookings []Booking, w Window) []Booking {
	matched := make([]Booking, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.HasDates() {
			continue
		}

		if booking.InWindow(w) {
			matched = append(matched, booking)
		}
	}

	return matched
}
