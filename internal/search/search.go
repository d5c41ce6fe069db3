// Package search indexes the per match stats of every player in
// Elasticsearch.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/indices/create"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/stats"
)

const defaultLimit = 50

type PlayerDocument struct {
	MatchID   uuid.UUID          `json:"match_id"`
	Player    int                `json:"player"`
	Name      string             `json:"name"`
	Team      string             `json:"team"`
	Map       string             `json:"map"`
	StartedAt time.Time          `json:"started_at"`
	Score     int                `json:"score"`
	Stats     *stats.PlayerStats `json:"stats"`
}

func (d PlayerDocument) id() string {
	return d.MatchID.String() + "-" + strconv.Itoa(d.Player)
}

type Index struct {
	client *elasticsearch.TypedClient
	name   string
	// refresh makes indexed documents searchable right away.
	refresh bool
}

func NewClient(endpoint string) (*elasticsearch.TypedClient, error) {
	return elasticsearch.NewTypedClient(elasticsearch.Config{
		Addresses: []string{endpoint},
	})
}

func New(client *elasticsearch.TypedClient, name string) *Index {
	return &Index{
		client: client,
		name:   name,
	}
}

// WithRefresh returns a copy of the index that waits for every write to be
// visible to searches.
func (i *Index) WithRefresh() *Index {
	c := *i
	c.refresh = true
	return &c
}

// EnsureIndex creates the index with its mapping if it does not exist yet.
func (i *Index) EnsureIndex(ctx context.Context) error {
	exists, err := i.client.Indices.Exists(i.name).Do(ctx)
	if err != nil {
		return fmt.Errorf("checking index %s: %w", i.name, err)
	}
	if exists {
		return nil
	}

	_, err = i.client.Indices.Create(i.name).
		Request(&create.Request{
			Mappings: &types.TypeMapping{
				Properties: map[string]types.Property{
					"match_id":   types.NewKeywordProperty(),
					"player":     types.NewIntegerNumberProperty(),
					"name":       types.NewTextProperty(),
					"team":       types.NewKeywordProperty(),
					"map":        types.NewTextProperty(),
					"started_at": types.NewDateProperty(),
					"score":      types.NewIntegerNumberProperty(),
				},
			},
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("creating index %s: %w", i.name, err)
	}
	return nil
}

func (i *Index) IndexPlayers(ctx context.Context, docs []PlayerDocument) error {
	for _, doc := range docs {
		req := i.client.Index(i.name).
			Id(doc.id()).
			Request(doc)
		if i.refresh {
			req = req.Refresh(refresh.True)
		}
		if _, err := req.Do(ctx); err != nil {
			return fmt.Errorf("indexing player %s of %s: %w", doc.Name, doc.MatchID, err)
		}
	}
	return nil
}

// SearchPlayers returns the stored stats of players matching name, most
// recent match first.
func (i *Index) SearchPlayers(ctx context.Context, name string) ([]PlayerDocument, error) {
	desc := sortorder.Desc
	res, err := i.client.Search().
		Index(i.name).
		Request(&search.Request{
			Query: &types.Query{
				Match: map[string]types.MatchQuery{
					"name": {Query: name},
				},
			},
			Sort: []types.SortCombinations{
				types.SortOptions{
					SortOptions: map[string]types.FieldSort{
						"started_at": {Order: &desc},
					},
				},
			},
		}).
		Size(defaultLimit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching players %q: %w", name, err)
	}

	docs := make([]PlayerDocument, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc PlayerDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("decoding hit: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
