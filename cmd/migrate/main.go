package main

import (
	"database/sql"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rejdeboer/tagpro-telemetry/internal/application"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
)

func main() {
	godotenv.Load(".env")
	log := logger.Get()

	settings := configuration.ReadConfiguration("./configuration")

	environment := os.Getenv("ENVIRONMENT")
	if environment != "local" && environment != "" && settings.Database.Password == "" {
		settings.Database.Password = application.GetDatabaseAccessToken()
	}

	db, err := sql.Open("pgx", application.GetDbConnectionString(settings.Database))
	if err != nil {
		log.Fatal().Err(err).Msg("error opening db connection")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not init driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://db/migrations", "pgx", driver)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load migrations")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("could not apply migrations")
	}
	log.Info().Msg("migrated database")
}
