package calendar

import (
	"net/http"
	"strconv"
	"time"

	"casona/infras/otel"
	"casona/internal/domains/calendar/service"
	"casona/shared/constant"
	"casona/shared/failure"
	"casona/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/events", handler.GetEvents)
		routerGroup.Get("/export.ics", handler.ExportICS)
	})
}

// GetEvents retrieves the calendar events for a date window.
// @Summary Get calendar events
// @Description Project the bookings overlapping the window into all-day calendar events. Cancelled bookings close to their check-in are hidden.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param start_date query string false "Window start date (YYYY-MM-DD), defaults to today"
// @Param days query int false "Window length in days, defaults to 90"
// @Success 200 {object} dto.GetEventsResponse "Calendar events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	start, days, err := windowParams(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse window parameters")

		response.WithError(w, err)

		return
	}

	events, err := handler.service.Events(ctx, start, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// ExportICS renders the calendar window as an iCalendar feed.
// @Summary Export calendar as ICS
// @Description Render the same event projection as an RFC 5545 iCalendar feed.
// @Tags Calendar
// @Produce text/calendar
// @Param start_date query string false "Window start date (YYYY-MM-DD), defaults to today"
// @Param days query int false "Window length in days, defaults to 90"
// @Success 200 {string} string "iCalendar payload"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/export.ics [get]
func (handler *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportICS")
	defer scope.End()

	start, days, err := windowParams(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse window parameters")

		response.WithError(w, err)

		return
	}

	payload, err := handler.service.ExportICS(ctx, start, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar exported successfully")

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCalendar)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(payload)); err != nil {
		log.Error().Err(err).Msg("failed to write calendar payload")
	}
}

func windowParams(r *http.Request) (time.Time, int, error) {
	var start time.Time

	if raw := r.URL.Query().Get(constant.RequestParamStartDate); raw != "" {
		parsed, err := time.Parse(constant.DayFormat, raw)
		if err != nil {
			return time.Time{}, 0, failure.BadRequestFromString("start_date must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
		}

		start = parsed
	}

	raw := r.URL.Query().Get(constant.RequestParamDays)
	if raw == "" {
		return start, 0, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return time.Time{}, 0, failure.BadRequestFromString("days must be a non-negative integer") //nolint:wrapcheck
	}

	return start, days, nil
}
