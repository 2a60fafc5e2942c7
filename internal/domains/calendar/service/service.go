package service

import (
	"casona/config"
	"casona/infras/metrics"
	"casona/infras/otel"
	bookingModel "casona/internal/domains/booking/model"
	bookingRepo "casona/internal/domains/booking/repository"
	"casona/internal/domains/calendar/model/dto"
	"casona/shared/constant"
	gDto "casona/shared/dto"
	"casona/shared/failure"
	"casona/shared/timezone"
	"context"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
)

type Calendar interface {
	Events(ctx context.Context, start time.Time, days int) (dto.GetEventsResponse, error)
	ExportICS(ctx context.Context, start time.Time, days int) (string, error)
}

type serviceImpl struct {
	repo    bookingRepo.Booking
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(repo bookingRepo.Booking, cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Calendar {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		otel:    otel,
		metrics: metrics,
	}
}

// Events projects the stored bookings overlapping the window into
// calendar events. Projection is a pure read: running it twice over the
// same rows yields the same events.
func (s *serviceImpl) Events(ctx context.Context, start time.Time, days int) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Events")
	defer scope.End()
	defer scope.TraceIfError(err)

	events, err := s.project(ctx, start, days)
	if err != nil {
		return res, err
	}

	res.Events = events
	res.TotalData = len(events)

	return res, nil
}

// ExportICS renders the same projection as an iCalendar feed. DTEND is
// exclusive per RFC 5545, so the check-out date is pushed one day out to
// keep the displayed span identical to the calendar view.
func (s *serviceImpl) ExportICS(ctx context.Context, start time.Time, days int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportICS")
	defer scope.End()
	defer scope.TraceIfError(err)

	events, err := s.project(ctx, start, days)
	if err != nil {
		return res, err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//casona//booking-calendar//EN")

	for _, event := range events {
		checkIn, err := time.Parse(constant.DayFormat, event.Start)
		if err != nil {
			log.Warn().Err(err).Str("event", event.ID).Msg("skipping event with unparsable start")
			s.metrics.RowsSkipped.Inc()

			continue
		}

		checkOut, err := time.Parse(constant.DayFormat, event.End)
		if err != nil {
			log.Warn().Err(err).Str("event", event.ID).Msg("skipping event with unparsable end")
			s.metrics.RowsSkipped.Inc()

			continue
		}

		entry := cal.AddEvent(event.ID)
		entry.SetDtStampTime(timezone.Now())
		entry.SetAllDayStartAt(checkIn)
		entry.SetAllDayEndAt(checkOut.AddDate(0, 0, 1))
		entry.SetSummary(event.Title)

		if event.ExtendedProps.Status != "" {
			entry.SetDescription(fmt.Sprintf("Status: %s", event.ExtendedProps.Status))
		}
	}

	return cal.Serialize(), nil
}

// project builds the event list for the window. Rows without both stay
// dates are skipped one by one; a bad row never fails the batch.
// Cancelled bookings whose check-in is closer than the suppression
// horizon are dropped, the rest of the cancelled ones stay visible with
// a cancelled class so the gap they leave is explained.
func (s *serviceImpl) project(ctx context.Context, start time.Time, days int) ([]dto.Event, error) {
	if start.IsZero() {
		start = timezone.Today()
	}

	if days <= 0 {
		days = s.cfg.Booking.CalendarWindowDays
	}

	window := bookingModel.NewWindow(start, days)
	if !window.IsValid() {
		return nil, failure.BadRequestFromString("start_date must not be after end_date") //nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for calendar")

		return nil, fmt.Errorf("failed to get bookings for calendar: %w", err)
	}

	s.metrics.BookingsFetched.Add(float64(len(bookings)))

	today := timezone.Today()
	allowList := s.cfg.ElectricAllowList()

	events := []dto.Event{}

	for _, booking := range bookings {
		if !booking.HasDates() {
			log.Warn().Int64("id", booking.RecordID).Str("bookingID", booking.BookingID).Msg("skipping booking without stay dates")
			s.metrics.RowsSkipped.Inc()

			continue
		}

		if !booking.InWindow(window) {
			continue
		}

		if s.suppressed(booking, today) {
			log.Debug().Int64("id", booking.RecordID).Str("bookingID", booking.BookingID).Msg("suppressing cancelled booking near check-in")
			s.metrics.EventsSuppressed.Inc()

			continue
		}

		var event dto.Event

		event.FromBooking(booking, booking.ElectricAllowance(allowList, s.cfg.Booking.ElectricRate))
		events = append(events, event)
	}

	s.metrics.EventsProjected.Add(float64(len(events)))

	return events, nil
}

// suppressed reports whether a cancelled booking is close enough to its
// check-in that showing it would block the freed dates on the calendar.
func (s *serviceImpl) suppressed(booking bookingModel.Booking, today time.Time) bool {
	return booking.IsCancelled() && booking.DaysUntilCheckIn(today) < s.cfg.Booking.CancelSuppressDays
}
