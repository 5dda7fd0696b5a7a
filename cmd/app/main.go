package main

import (
	"luxhome/config"
	"luxhome/di"
	"luxhome/helper"
	"luxhome/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Luxhome API
// @version 1.0
// @description Apartment catalogue and 360 virtual tour backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
