package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rejdeboer/tagpro-telemetry/internal/archive"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/ingest"
	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
	"github.com/rejdeboer/tagpro-telemetry/internal/publisher"
	"github.com/rejdeboer/tagpro-telemetry/internal/routes"
	"github.com/rejdeboer/tagpro-telemetry/internal/search"
	"github.com/segmentio/kafka-go"
)

var log = logger.Get()

type Application struct {
	pool    *pgxpool.Pool
	writer  *kafka.Writer
	handler http.Handler
	addr    string
}

func Build(settings configuration.Settings) Application {
	ctx := context.Background()
	port := settings.Application.Port
	addr := fmt.Sprintf(":%d", port)

	pool := GetDbConnectionPool(settings.Database)

	matchArchive := archive.New(GetBlobClient(settings.Azure), settings.Azure.Container)
	if err := matchArchive.EnsureContainer(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating match archive container")
	}

	searchClient, err := search.NewClient(settings.Application.ElasticsearchEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating elasticsearch client")
	}
	index := search.New(searchClient, settings.Application.ElasticsearchIndex)
	if err := index.EnsureIndex(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating player index")
	}

	writer := publisher.NewWriter(settings.Application.KafkaEndpoint)

	handler := routes.CreateHandler(settings, &routes.Env{
		Service: &ingest.Service{
			Store:     ingest.NewPostgresStore(pool),
			Archive:   matchArchive,
			Publisher: publisher.New(writer, settings.Application.KafkaTopic),
			Index:     index,
			Strict:    settings.Application.StrictDecode,
		},
	})

	return Application{
		addr:    addr,
		pool:    pool,
		writer:  writer,
		handler: handler,
	}
}

func (app *Application) Start() error {
	defer app.close()
	log.Info().Msg(fmt.Sprintf("Server listening on port %s", app.addr))
	return http.ListenAndServe(app.addr, app.handler)
}

func (app *Application) close() {
	app.pool.Close()
	if err := app.writer.Close(); err != nil {
		log.Error().Err(err).Msg("error closing kafka writer")
	}
}
