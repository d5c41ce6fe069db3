package main

import (
	"github.com/joho/godotenv"
	"github.com/rejdeboer/tagpro-telemetry/internal/application"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
)

func main() {
	godotenv.Load(".env")
	log := logger.Get()

	settings := configuration.ReadConfiguration("./configuration")
	app := application.Build(settings)

	if err := app.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
