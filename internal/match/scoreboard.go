package match

import (
	"slices"

	"github.com/rejdeboer/tagpro-telemetry/internal/stats"
	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

type ScoreboardRow struct {
	Player int                `json:"player"`
	Name   string             `json:"name"`
	Auth   bool               `json:"auth"`
	Team   decoder.Team       `json:"team"`
	Score  int                `json:"score"`
	Points int                `json:"points"`
	Stats  *stats.PlayerStats `json:"stats"`
}

// Scoreboard returns a row per player, highest score first.
func (m *Match) Scoreboard() ([]ScoreboardRow, error) {
	rows := make([]ScoreboardRow, 0, len(m.Players))
	for _, p := range m.Players {
		s, err := p.Stats()
		if err != nil {
			return nil, err
		}
		rows = append(rows, ScoreboardRow{
			Player: p.index,
			Name:   p.Name,
			Auth:   p.Auth,
			Team:   p.StartTeam,
			Score:  p.Score,
			Points: p.Points,
			Stats:  s,
		})
	}

	slices.SortStableFunc(rows, func(a, b ScoreboardRow) int {
		return b.Score - a.Score
	})
	return rows, nil
}
