package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/archive"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/db"
	"github.com/rejdeboer/tagpro-telemetry/internal/ingest"
	"github.com/rejdeboer/tagpro-telemetry/internal/match"
	"github.com/rejdeboer/tagpro-telemetry/internal/search"
	"github.com/rejdeboer/tagpro-telemetry/pkg/writer"
)

type memoryBackend struct {
	matches map[uuid.UUID]db.Match
	players map[uuid.UUID][]db.PlayerStat
	blobs   map[string][]byte
	docs    []search.PlayerDocument
}

func (b *memoryBackend) SaveMatch(_ context.Context, m db.CreateMatchParams, players []db.CreatePlayerStatsParams) error {
	b.matches[m.ID] = db.Match{ID: m.ID, MapName: m.MapName, BlobName: m.BlobName}
	for _, p := range players {
		b.players[m.ID] = append(b.players[m.ID], db.PlayerStat{MatchID: m.ID, PlayerIndex: p.PlayerIndex, Name: p.Name})
	}
	return nil
}

func (b *memoryBackend) GetMatch(_ context.Context, id uuid.UUID) (db.Match, []db.PlayerStat, error) {
	m, ok := b.matches[id]
	if !ok {
		return db.Match{}, nil, ingest.ErrNotFound
	}
	return m, b.players[id], nil
}

func (b *memoryBackend) Put(_ context.Context, name string, raw []byte) error {
	b.blobs[name] = raw
	return nil
}

func (b *memoryBackend) Get(_ context.Context, name string) ([]byte, error) {
	raw, ok := b.blobs[name]
	if !ok {
		return nil, archive.ErrNotFound
	}
	return raw, nil
}

func (b *memoryBackend) PublishTimeline(context.Context, uuid.UUID, []match.TimelineEntry) error {
	return nil
}

func (b *memoryBackend) IndexPlayers(_ context.Context, docs []search.PlayerDocument) error {
	b.docs = append(b.docs, docs...)
	return nil
}

func (b *memoryBackend) SearchPlayers(_ context.Context, name string) ([]search.PlayerDocument, error) {
	var found []search.PlayerDocument
	for _, doc := range b.docs {
		if doc.Name == name {
			found = append(found, doc)
		}
	}
	return found, nil
}

type testApp struct {
	handler    http.Handler
	signingKey string
}

func newTestApp() testApp {
	backend := &memoryBackend{
		matches: map[uuid.UUID]db.Match{},
		players: map[uuid.UUID][]db.PlayerStat{},
		blobs:   map[string][]byte{},
	}

	var settings configuration.Settings
	settings.Application.SigningKey = gofakeit.Password(true, true, true, false, false, 24)
	settings.Application.AllowedOrigins = []string{"http://localhost:3000"}

	handler := CreateHandler(settings, &Env{
		Service: &ingest.Service{
			Store:     backend,
			Archive:   backend,
			Publisher: backend,
			Index:     backend,
		},
	})

	return testApp{
		handler:    handler,
		signingKey: settings.Application.SigningKey,
	}
}

func (app testApp) token(t *testing.T) string {
	token, err := GetJwt(app.signingKey, 600, gofakeit.Username())
	if err != nil {
		t.Fatalf("error creating test token: %s", err)
	}
	return token
}

// testMatchFile is a match with two players on a 3x1 map where nothing
// happens.
func testMatchFile(t *testing.T, players ...string) []byte {
	t.Helper()

	tiles := writer.NewWriter()
	tiles.WriteFixed(6, 6)
	tiles.WriteFooter(2)

	data := map[string]any{
		"server":   "tagpro-test.koalabeast.com",
		"date":     1514764800,
		"duration": 3600,
		"map":      map[string]any{"name": "Pilot", "width": 3, "tiles": tiles.Buf},
		"players": []map[string]any{
			{"name": players[0], "team": 1, "events": []byte{}},
			{"name": players[1], "team": 2, "events": []byte{}},
		},
		"teams": []map[string]any{
			{"name": "Red", "splats": []byte{}},
			{"name": "Blue", "splats": []byte{}},
		},
	}

	buf, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}
