package service

import (
	"casona/config"
	"casona/infras/metrics"
	"casona/infras/otel"
	"casona/internal/domains/booking/model"
	"casona/internal/domains/booking/model/dto"
	"casona/internal/domains/booking/repository"
	"casona/shared"
	"casona/shared/cache"
	"casona/shared/constant"
	gDto "casona/shared/dto"
	"casona/shared/failure"
	"casona/shared/money"
	"casona/shared/timezone"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, limit int) (dto.GetBookingsResponse, error)
	GetForWindow(ctx context.Context, window model.Window) (dto.GetBookingsResponse, error)
	GetForPeriod(ctx context.Context, start time.Time, days int) (dto.GetBookingsResponse, error)
	GetActive(ctx context.Context) (dto.GetBookingsResponse, error)
	GetUpcomingCheckIns(ctx context.Context, days int) (dto.GetBookingsResponse, error)
	GetUpcomingCheckOuts(ctx context.Context, days int) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Booking
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, metrics *metrics.Metrics) Booking {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		metrics: metrics,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to build booking from request")

		return res, err
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.RecordID = id

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	res.FromModel(booking, s.allowance(booking))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, limit int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	if limit > 0 && limit < len(bookings) {
		bookings = bookings[:limit]
	}

	return s.respond(bookings), nil
}

func (s *serviceImpl) GetForWindow(ctx context.Context, window model.Window) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !window.IsValid() {
		return res, failure.BadRequestFromString("start_date must not be after end_date") //nolint:wrapcheck
	}

	// The store offers no server-side windowing; the full row set is
	// fetched and filtered here.
	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	return s.respond(model.FilterByWindow(bookings, window)), nil
}

func (s *serviceImpl) GetForPeriod(ctx context.Context, start time.Time, days int) (dto.GetBookingsResponse, error) {
	if start.IsZero() {
		start = timezone.Today()
	}

	if days <= 0 {
		days = s.cfg.Booking.DefaultWindowDays
	}

	return s.GetForWindow(ctx, model.NewWindow(start, days))
}

func (s *serviceImpl) GetActive(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	today := timezone.Today()
	window := model.Window{Start: today, End: today}

	active := []model.Booking{}

	for _, booking := range model.FilterByWindow(bookings, window) {
		if booking.IsCurrentlyActive(window) {
			active = append(active, booking)
		}
	}

	return s.respond(active), nil
}

func (s *serviceImpl) GetUpcomingCheckIns(ctx context.Context, days int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUpcomingCheckIns")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	window := model.NewWindow(timezone.Today(), days)

	upcoming := []model.Booking{}

	for _, booking := range model.FilterByWindow(bookings, window) {
		if booking.HasCheckInWithin(window) {
			upcoming = append(upcoming, booking)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].CheckIn.Before(upcoming[j].CheckIn)
	})

	return s.respond(upcoming), nil
}

func (s *serviceImpl) GetUpcomingCheckOuts(ctx context.Context, days int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUpcomingCheckOuts")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	window := model.NewWindow(timezone.Today(), days)

	upcoming := []model.Booking{}

	for _, booking := range model.FilterByWindow(bookings, window) {
		if booking.HasCheckOutWithin(window) {
			upcoming = append(upcoming, booking)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].CheckOut.Before(upcoming[j].CheckOut)
	})

	return s.respond(upcoming), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.RecordID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking, s.allowance(booking))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for update")

		return fmt.Errorf("failed to get booking for update: %w", err)
	}

	if current.RecordID == 0 {
		log.Error().Int64("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updatedFields, err := req.ToFieldMap(current)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

// fetchAll loads the complete row set, serving it from cache when fresh.
func (s *serviceImpl) fetchAll(ctx context.Context) ([]model.Booking, error) {
	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, "all")

	var cached []model.Booking

	err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return cached, nil
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	s.metrics.BookingsFetched.Add(float64(len(bookings)))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, bookings, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return bookings, nil
}

func (s *serviceImpl) allowance(booking model.Booking) *money.Amount {
	return booking.ElectricAllowance(s.cfg.ElectricAllowList(), s.cfg.Booking.ElectricRate)
}

func (s *serviceImpl) respond(bookings []model.Booking) dto.GetBookingsResponse {
	res := dto.GetBookingsResponse{
		Bookings:  make([]dto.BookingResponse, len(bookings)),
		TotalData: len(bookings),
	}

	for i, booking := range bookings {
		res.Bookings[i].FromModel(booking, s.allowance(booking))
	}

	return res
}
