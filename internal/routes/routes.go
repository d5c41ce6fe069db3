package routes

import (
	"net/http"

	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/ingest"
	"github.com/rejdeboer/tagpro-telemetry/internal/middleware"
)

// maxMatchSize bounds uploaded match files.
const maxMatchSize = 16 << 20

type Env struct {
	Service *ingest.Service
}

func CreateHandler(settings configuration.Settings, env *Env) http.Handler {
	mux := http.NewServeMux()
	withAuth := middleware.WithAuth(settings.Application.SigningKey)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("POST /decode", env.decodeMatch)
	mux.HandleFunc("POST /match", withAuth(env.createMatch))
	mux.HandleFunc("GET /match/{match_id}", env.getMatch)
	mux.HandleFunc("GET /match/{match_id}/raw", env.getRawMatch)
	mux.HandleFunc("GET /player", env.searchPlayers)

	handler := middleware.WithCors(mux, settings.Application.AllowedOrigins)
	return middleware.WithLogging(handler)
}
