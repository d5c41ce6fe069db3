package match

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

// LoadMaps reads a bulk maps file, an object of map id to map.
func LoadMaps(r io.Reader, opts ...decoder.Option) (map[int]*Map, error) {
	var raw map[string]*Map
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reading maps: %w", err)
	}

	maps := make(map[int]*Map, len(raw))
	for key, mp := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid map id %q: %w", key, err)
		}
		if mp == nil {
			mp = &Map{}
		}
		mp.opts = opts
		maps[id] = mp
	}
	return maps, nil
}

// LoadMatches reads a bulk matches file, an object of match id to match,
// ordered by id. Matches in a bulk file refer to their map by mapId; when
// maps is not nil the map is filled in from it.
func LoadMatches(r io.Reader, maps map[int]*Map, opts ...decoder.Option) ([]*Match, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reading matches: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)

	matches := make([]*Match, 0, len(ids))
	for _, id := range ids {
		var m Match
		if err := json.Unmarshal(raw[id], &m); err != nil {
			return nil, fmt.Errorf("match %s: %w", id, err)
		}
		m.ID = id
		if maps != nil {
			mp, ok := maps[m.MapID]
			if !ok {
				return nil, fmt.Errorf("match %s: unknown map %d", id, m.MapID)
			}
			m.Map = mp
		}
		if err := m.link(opts); err != nil {
			return nil, fmt.Errorf("match %s: %w", id, err)
		}
		matches = append(matches, &m)
	}
	return matches, nil
}

// compareIDs orders numeric ids by value and everything else as strings.
func compareIDs(a, b string) int {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return x - y
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
