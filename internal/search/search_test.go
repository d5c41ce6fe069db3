package search

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/stats"
	"github.com/rejdeboer/tagpro-telemetry/internal/testcluster"
)

var index *Index

func TestMain(m *testing.M) {
	cluster, err := testcluster.SpawnCluster(testcluster.Elasticsearch)
	if err != nil {
		fmt.Printf("skipping elasticsearch tests: %s\n", err)
		os.Exit(m.Run())
	}

	client, err := NewClient(cluster.GetElasticsearchEndpoint())
	if err != nil {
		cluster.Purge()
		fmt.Printf("error creating elasticsearch client: %s\n", err)
		os.Exit(1)
	}

	index = New(client, "player-stats-test").WithRefresh()
	if err := index.EnsureIndex(context.Background()); err != nil {
		cluster.Purge()
		fmt.Printf("error creating index: %s\n", err)
		os.Exit(1)
	}

	code := m.Run()

	cluster.Purge()
	os.Exit(code)
}

func TestDocumentID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	doc := PlayerDocument{MatchID: id, Player: 3}
	if got := doc.id(); got != "6ba7b810-9dad-11d1-80b4-00c04fd430c8-3" {
		t.Errorf("unexpected document id %s", got)
	}
}

func TestSearchPlayers(t *testing.T) {
	if index == nil {
		t.Skip("elasticsearch is not available")
	}
	ctx := context.Background()

	name := gofakeit.Username()
	older := uuid.New()
	newer := uuid.New()

	s := stats.New()
	s.Captures = 2
	docs := []PlayerDocument{
		{MatchID: older, Player: 0, Name: name, Team: "Red", StartedAt: time.Unix(1514764800, 0), Stats: s},
		{MatchID: newer, Player: 4, Name: name, Team: "Blue", StartedAt: time.Unix(1514851200, 0), Stats: stats.New()},
		{MatchID: newer, Player: 5, Name: gofakeit.Username() + "x", Team: "Red", StartedAt: time.Unix(1514851200, 0), Stats: stats.New()},
	}
	if err := index.IndexPlayers(ctx, docs); err != nil {
		t.Fatal(err)
	}

	if err := index.EnsureIndex(ctx); err != nil {
		t.Errorf("expected existing index to be accepted got %v", err)
	}

	found, err := index.SearchPlayers(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("expected %d documents got %d: %v", 2, len(found), found)
	}
	if found[0].MatchID != newer || found[1].MatchID != older {
		t.Errorf("expected most recent match first got %v", found)
	}
	if found[1].Stats.Captures != 2 {
		t.Errorf("expected %d captures got %d", 2, found[1].Stats.Captures)
	}
}
