// Package ingest decodes uploaded match files and stores what they contain:
// the raw file in the archive, the match and player stats in Postgres, the
// timeline on Kafka and the player stats in the search index.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/archive"
	"github.com/rejdeboer/tagpro-telemetry/internal/db"
	"github.com/rejdeboer/tagpro-telemetry/internal/match"
	"github.com/rejdeboer/tagpro-telemetry/internal/search"
	"github.com/rejdeboer/tagpro-telemetry/internal/stats"
	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
	"github.com/rs/zerolog"
)

// maxMapTiles is far above the largest real map and keeps a few bytes of
// tiles from allocating gigabytes.
const maxMapTiles = 1 << 18

var (
	ErrInvalidMatch = errors.New("invalid match")
	ErrNotFound     = errors.New("match not found")
)

type Store interface {
	SaveMatch(ctx context.Context, match db.CreateMatchParams, players []db.CreatePlayerStatsParams) error
	GetMatch(ctx context.Context, id uuid.UUID) (db.Match, []db.PlayerStat, error)
}

type Archive interface {
	Put(ctx context.Context, name string, raw []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

type TimelinePublisher interface {
	PublishTimeline(ctx context.Context, matchID uuid.UUID, timeline []match.TimelineEntry) error
}

type PlayerIndex interface {
	IndexPlayers(ctx context.Context, docs []search.PlayerDocument) error
	SearchPlayers(ctx context.Context, name string) ([]search.PlayerDocument, error)
}

type Service struct {
	Store     Store
	Archive   Archive
	Publisher TimelinePublisher
	Index     PlayerIndex
	Strict    bool
}

type TeamReport struct {
	Name  string             `json:"name"`
	Score int                `json:"score"`
	Stats *stats.PlayerStats `json:"stats"`
}

// Report is everything decoded from a match file.
type Report struct {
	Server     string                `json:"server"`
	Map        string                `json:"map"`
	Duration   decoder.Time          `json:"duration"`
	Teams      []TeamReport          `json:"teams"`
	Scoreboard []match.ScoreboardRow `json:"scoreboard"`
	Timeline   []match.TimelineEntry `json:"timeline"`
	Tiles      [][]decoder.Tile      `json:"tiles"`
	Splats     []decoder.Splat       `json:"splats"`
}

type MatchSummary struct {
	Match   db.Match        `json:"match"`
	Players []db.PlayerStat `json:"players"`
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidMatch, err)
}

// Analyze decodes a match file without storing anything.
func (s *Service) Analyze(raw []byte) (*match.Match, *Report, error) {
	m, err := match.Parse(raw, decoder.Strict(s.Strict), decoder.WithMaxTiles(maxMapTiles))
	if err != nil {
		return nil, nil, invalid(err)
	}

	report := &Report{
		Server:   m.Server,
		Map:      m.Map.Name,
		Duration: m.Duration,
	}

	for _, t := range m.Teams {
		teamStats, err := t.Stats()
		if err != nil {
			return nil, nil, invalid(err)
		}
		report.Teams = append(report.Teams, TeamReport{Name: t.Name, Score: t.Score, Stats: teamStats})
	}

	if report.Scoreboard, err = m.Scoreboard(); err != nil {
		return nil, nil, invalid(err)
	}
	if report.Timeline, err = m.Timeline(); err != nil {
		return nil, nil, invalid(err)
	}
	if report.Tiles, err = m.Map.TileGrid(); err != nil {
		return nil, nil, invalid(err)
	}
	if report.Splats, err = m.Splats(); err != nil {
		return nil, nil, invalid(err)
	}
	return m, report, nil
}

// Ingest stores a match file and returns its id. The match is archived
// before it is saved, so a stored match always has its raw file. Publishing
// the timeline and indexing the players happen after the match is saved;
// their failures are logged and do not fail the ingestion.
func (s *Service) Ingest(ctx context.Context, raw []byte) (uuid.UUID, error) {
	m, report, err := s.Analyze(raw)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	blobName := archive.BlobName(id)
	log := zerolog.Ctx(ctx).With().Str("match_id", id.String()).Logger()

	if err := s.Archive.Put(ctx, blobName, raw); err != nil {
		return uuid.Nil, err
	}

	if err := s.Store.SaveMatch(ctx, matchParams(id, blobName, m), playerParams(id, report.Scoreboard)); err != nil {
		return uuid.Nil, err
	}
	log.Info().Int("players", len(m.Players)).Msg("stored match")

	if err := s.Publisher.PublishTimeline(ctx, id, report.Timeline); err != nil {
		log.Error().Err(err).Msg("error publishing timeline")
	}

	if err := s.Index.IndexPlayers(ctx, playerDocuments(id, m, report.Scoreboard)); err != nil {
		log.Error().Err(err).Msg("error indexing players")
	}

	return id, nil
}

func (s *Service) GetMatch(ctx context.Context, id uuid.UUID) (MatchSummary, error) {
	m, players, err := s.Store.GetMatch(ctx, id)
	if err != nil {
		return MatchSummary{}, err
	}
	if players == nil {
		players = []db.PlayerStat{}
	}
	return MatchSummary{Match: m, Players: players}, nil
}

// GetRaw returns the match file as it was uploaded.
func (s *Service) GetRaw(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m, _, err := s.Store.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := s.Archive.Get(ctx, m.BlobName)
	if errors.Is(err, archive.ErrNotFound) {
		return nil, ErrNotFound
	}
	return raw, err
}

func (s *Service) SearchPlayers(ctx context.Context, name string) ([]search.PlayerDocument, error) {
	return s.Index.SearchPlayers(ctx, name)
}

func matchParams(id uuid.UUID, blobName string, m *match.Match) db.CreateMatchParams {
	return db.CreateMatchParams{
		ID:        id,
		Server:    m.Server,
		Port:      int32(m.Port),
		Official:  m.Official,
		GroupID:   m.Group,
		StartedAt: m.StartedAt(),
		TimeLimit: int32(m.TimeLimit),
		Duration:  int32(m.Duration),
		Finished:  m.Finished,
		MapName:   m.Map.Name,
		MapAuthor: m.Map.Author,
		RedName:   m.Red().Name,
		RedScore:  int32(m.Red().Score),
		BlueName:  m.Blue().Name,
		BlueScore: int32(m.Blue().Score),
		BlobName:  blobName,
	}
}

func playerParams(id uuid.UUID, rows []match.ScoreboardRow) []db.CreatePlayerStatsParams {
	params := make([]db.CreatePlayerStatsParams, 0, len(rows))
	for _, row := range rows {
		s := row.Stats
		params = append(params, db.CreatePlayerStatsParams{
			MatchID:     id,
			PlayerIndex: int32(row.Player),
			Name:        row.Name,
			Auth:        row.Auth,
			Team:        int16(row.Team),
			Score:       int32(row.Score),
			Points:      int32(row.Points),
			Tags:        int32(s.Tags),
			Pops:        int32(s.Pops),
			Grabs:       int32(s.Grabs),
			Drops:       int32(s.Drops),
			Hold:        int32(s.Hold),
			Captures:    int32(s.Captures),
			Returns:     int32(s.Returns),
			Prevent:     int32(s.Prevent),
			Button:      int32(s.Button),
			Block:       int32(s.Block),
			TimePlayed:  int32(s.Time),
			Pups:        int32(s.PupsTotal()),
			CapsFor:     int32(s.CapsFor),
			CapsAgainst: int32(s.CapsAgainst),
		})
	}
	return params
}

func playerDocuments(id uuid.UUID, m *match.Match, rows []match.ScoreboardRow) []search.PlayerDocument {
	docs := make([]search.PlayerDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, search.PlayerDocument{
			MatchID:   id,
			Player:    row.Player,
			Name:      row.Name,
			Team:      m.TeamName(row.Team),
			Map:       m.Map.Name,
			StartedAt: m.StartedAt(),
			Score:     row.Score,
			Stats:     row.Stats,
		})
	}
	return docs
}
