//go:build wireinject
// +build wireinject

package di

import (
	"casona/config"
	"casona/infras/metrics"
	"casona/infras/otel"
	"casona/infras/postgres"
	"casona/infras/redis"
	"casona/shared/cache"
	"casona/transport/http"
	"casona/transport/http/middleware"
	"casona/transport/http/router"

	bookingRepository "casona/internal/domains/booking/repository"
	bookingService "casona/internal/domains/booking/service"
	calendarService "casona/internal/domains/calendar/service"
	bookingHandler "casona/internal/handlers/booking"
	calendarHandler "casona/internal/handlers/calendar"

	"github.com/google/wire"
)

const metricsNamespace = "casona"

func provideMetrics() *metrics.Metrics {
	return metrics.New(metricsNamespace)
}

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	provideMetrics,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var calendarDomain = wire.NewSet(
	calendarService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	calendarDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	calendarHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
