package application

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
)

func GetDbConnectionPool(settings configuration.DatabaseSettings) *pgxpool.Pool {
	environment := os.Getenv("ENVIRONMENT")
	if environment != "local" && environment != "" && settings.Password == "" {
		settings.Password = GetDatabaseAccessToken()
	}

	pool, err := pgxpool.New(context.Background(), GetDbConnectionString(settings))
	if err != nil {
		log.Error().Msg("failed to connect to db")
		panic(err)
	}

	return pool
}

func GetDbConnectionString(settings configuration.DatabaseSettings) string {
	dbUrl := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(settings.Username, settings.Password),
		Host:   fmt.Sprintf("%s:%d", settings.Host, settings.Port),
		Path:   settings.DbName,
	}

	if !settings.RequireSsl {
		dbUrl.RawQuery = "sslmode=disable"
	} else {
		dbUrl.RawQuery = "sslmode=require"
	}

	return dbUrl.String()
}
