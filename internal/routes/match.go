package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/ingest"
	"github.com/rejdeboer/tagpro-telemetry/pkg/httperrors"
	"github.com/rs/zerolog"
)

type MatchCreated struct {
	ID uuid.UUID `json:"id"`
}

func readMatch(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxMatchSize))
}

func writeJSON(w http.ResponseWriter, log *zerolog.Logger, status int, body any) {
	response, err := json.Marshal(body)
	if err != nil {
		httperrors.InternalServerError(w)
		log.Error().Err(err).Msg("error marshalling response")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(response)
}

func (env *Env) decodeMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	raw, err := readMatch(w, r)
	if err != nil {
		httperrors.WriteCode(w, "match file too large or unreadable", http.StatusRequestEntityTooLarge, httperrors.CodeMatchTooLarge)
		log.Error().Err(err).Msg("error reading match file")
		return
	}

	_, report, err := env.Service.Analyze(raw)
	if err != nil {
		httperrors.WriteCode(w, err.Error(), http.StatusBadRequest, httperrors.CodeInvalidMatch)
		log.Error().Err(err).Msg("invalid match file")
		return
	}

	log.Info().Int("events", len(report.Timeline)).Msg("decoded match")
	writeJSON(w, log, http.StatusOK, report)
}

func (env *Env) createMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	raw, err := readMatch(w, r)
	if err != nil {
		httperrors.WriteCode(w, "match file too large or unreadable", http.StatusRequestEntityTooLarge, httperrors.CodeMatchTooLarge)
		log.Error().Err(err).Msg("error reading match file")
		return
	}

	id, err := env.Service.Ingest(ctx, raw)
	if errors.Is(err, ingest.ErrInvalidMatch) {
		httperrors.WriteCode(w, err.Error(), http.StatusBadRequest, httperrors.CodeInvalidMatch)
		log.Error().Err(err).Msg("invalid match file")
		return
	}
	if err != nil {
		httperrors.InternalServerError(w)
		log.Error().Err(err).Msg("error ingesting match")
		return
	}

	log.Info().Str("match_id", id.String()).Msg("ingested match")
	writeJSON(w, log, http.StatusCreated, MatchCreated{ID: id})
}

func parseMatchID(w http.ResponseWriter, r *http.Request, log *zerolog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("match_id"))
	if err != nil {
		httperrors.WriteCode(w, "Invalid match id, please use uuid format", http.StatusBadRequest, httperrors.CodeInvalidMatchID)
		log.Error().Err(err).Msg("user used invalid match id format")
		return uuid.Nil, false
	}
	return id, true
}

func (env *Env) getMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	id, ok := parseMatchID(w, r, log)
	if !ok {
		return
	}

	summary, err := env.Service.GetMatch(ctx, id)
	if errors.Is(err, ingest.ErrNotFound) {
		httperrors.WriteCode(w, "Match not found", http.StatusNotFound, httperrors.CodeMatchNotFound)
		log.Error().Str("match_id", id.String()).Msg("match not found")
		return
	}
	if err != nil {
		httperrors.InternalServerError(w)
		log.Error().Err(err).Msg("error fetching match")
		return
	}

	writeJSON(w, log, http.StatusOK, summary)
}

func (env *Env) getRawMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	id, ok := parseMatchID(w, r, log)
	if !ok {
		return
	}

	raw, err := env.Service.GetRaw(ctx, id)
	if errors.Is(err, ingest.ErrNotFound) {
		httperrors.WriteCode(w, "Match not found", http.StatusNotFound, httperrors.CodeMatchNotFound)
		log.Error().Str("match_id", id.String()).Msg("match not found")
		return
	}
	if err != nil {
		httperrors.InternalServerError(w)
		log.Error().Err(err).Msg("error fetching archived match")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
