package main

import (
	"casona/config"
	"casona/di"
	"casona/shared/logger"
)

// @title Casona Booking API
// @version 1.0
// @description Property booking dashboard backend: booking CRUD and calendar event projection.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
