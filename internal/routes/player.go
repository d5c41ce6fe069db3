package routes

import (
	"net/http"

	"github.com/rejdeboer/tagpro-telemetry/internal/search"
	"github.com/rejdeboer/tagpro-telemetry/pkg/httperrors"
	"github.com/rs/zerolog"
)

func (env *Env) searchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	name := r.URL.Query().Get("name")
	if name == "" {
		httperrors.Write(w, "please provide a player name", http.StatusBadRequest)
		log.Error().Msg("player search without name")
		return
	}

	docs, err := env.Service.SearchPlayers(ctx, name)
	if err != nil {
		httperrors.InternalServerError(w)
		log.Error().Err(err).Str("name", name).Msg("error searching players")
		return
	}
	if docs == nil {
		docs = []search.PlayerDocument{}
	}

	writeJSON(w, log, http.StatusOK, docs)
}
