package booking

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"casona/infras/otel"
	"casona/internal/domains/booking/model"
	"casona/internal/domains/booking/model/dto"
	"casona/internal/domains/booking/service"
	"casona/shared/constant"
	"casona/shared/failure"
	"casona/shared/timezone"
	"casona/shared/validator"
	"casona/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/active", handler.GetActiveBookings)
		routerGroup.Get("/upcoming-checkins", handler.GetUpcomingCheckIns)
		routerGroup.Get("/upcoming-checkouts", handler.GetUpcomingCheckOuts)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new booking with the provided details. The night count is derived from the stay dates.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Created booking including its assigned record ID"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, created)
}

// GetBookings retrieves the bookings relevant to a date window.
// @Summary Get bookings for a date window
// @Description Retrieve the bookings whose stay overlaps the requested window. The window is either [start_date, end_date], or start_date plus a number of days. A limit without window parameters lists the stored rows instead.
// @Tags Booking
// @Accept json
// @Produce json
// @Param start_date query string false "Window start date (YYYY-MM-DD), defaults to today"
// @Param end_date query string false "Window end date (YYYY-MM-DD), overrides days"
// @Param days query int false "Window length in days, defaults to 14"
// @Param limit query int false "Cap on listed rows when no window is requested"
// @Success 200 {object} dto.GetBookingsResponse "Bookings in the window"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.listBookings(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// listBookings dispatches on the query shape: an explicit end_date queries a
// custom window, a bare limit lists stored rows, anything else falls back to
// the default period starting today.
func (handler *Handler) listBookings(ctx context.Context, r *http.Request) (dto.GetBookingsResponse, error) {
	query := r.URL.Query()

	if query.Get(constant.RequestParamEndDate) != "" {
		window, err := explicitWindow(r)
		if err != nil {
			return dto.GetBookingsResponse{}, err
		}

		return handler.service.GetForWindow(ctx, window)
	}

	if query.Get(constant.RequestParamLimit) != "" &&
		query.Get(constant.RequestParamStartDate) == "" &&
		query.Get(constant.RequestParamDays) == "" {
		limit, err := limitParam(r)
		if err != nil {
			return dto.GetBookingsResponse{}, err
		}

		return handler.service.GetAll(ctx, limit)
	}

	start, days, err := windowParams(r)
	if err != nil {
		return dto.GetBookingsResponse{}, err
	}

	return handler.service.GetForPeriod(ctx, start, days)
}

// GetActiveBookings retrieves the bookings whose stay covers today.
// @Summary Get currently active bookings
// @Description Retrieve the bookings whose stay covers today.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse "Active bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/active [get]
func (handler *Handler) GetActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveBookings")
	defer scope.End()

	bookings, err := handler.service.GetActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetUpcomingCheckIns retrieves the bookings checking in soon.
// @Summary Get upcoming check-ins
// @Description Retrieve the bookings whose check-in falls within the coming days, ordered by check-in date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param days query int false "Horizon in days, defaults to 14"
// @Success 200 {object} dto.GetBookingsResponse "Upcoming check-ins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/upcoming-checkins [get]
func (handler *Handler) GetUpcomingCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingCheckIns")
	defer scope.End()

	days, err := daysParam(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetUpcomingCheckIns(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming check-ins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming check-ins retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetUpcomingCheckOuts retrieves the bookings checking out soon.
// @Summary Get upcoming check-outs
// @Description Retrieve the bookings whose check-out falls within the coming days, ordered by check-out date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param days query int false "Horizon in days, defaults to 14"
// @Success 200 {object} dto.GetBookingsResponse "Upcoming check-outs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/upcoming-checkouts [get]
func (handler *Handler) GetUpcomingCheckOuts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingCheckOuts")
	defer scope.End()

	days, err := daysParam(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetUpcomingCheckOuts(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming check-outs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming check-outs retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its record ID.
// @Summary Get a booking by record ID
// @Description Retrieve a booking by its store-assigned record identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking record ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := recordID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its record ID.
// @Summary Update a booking by record ID
// @Description Update the details of an existing booking. Absent fields keep their stored value; the night count is re-derived when a stay date changes.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking record ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := recordID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking deletes a booking by its record ID.
// @Summary Delete a booking by record ID
// @Description Delete a booking using its store-assigned record identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking record ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := recordID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

func recordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("id must be a positive integer") //nolint:wrapcheck
	}

	return id, nil
}

func daysParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(constant.RequestParamDays)
	if raw == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0, failure.BadRequestFromString("days must be a non-negative integer") //nolint:wrapcheck
	}

	return days, nil
}

func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(constant.RequestParamLimit)
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, failure.BadRequestFromString("limit must be a non-negative integer") //nolint:wrapcheck
	}

	return limit, nil
}

func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(constant.DayFormat, raw)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(name + " must be a calendar date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	return parsed, nil
}

func windowParams(r *http.Request) (time.Time, int, error) {
	start, err := dateParam(r, constant.RequestParamStartDate)
	if err != nil {
		return time.Time{}, 0, err
	}

	days, err := daysParam(r)
	if err != nil {
		return time.Time{}, 0, err
	}

	return start, days, nil
}

func explicitWindow(r *http.Request) (model.Window, error) {
	start, err := dateParam(r, constant.RequestParamStartDate)
	if err != nil {
		return model.Window{}, err
	}

	if start.IsZero() {
		start = timezone.Today()
	}

	end, err := dateParam(r, constant.RequestParamEndDate)
	if err != nil {
		return model.Window{}, err
	}

	return model.Window{Start: start, End: end}, nil
}
