package match

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rejdeboer/tagpro-telemetry/internal/stats"
	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

// Match is a tagpro.eu match file. Blob fields hold the raw base64-decoded
// streams; derived values are decoded on first use and cached.
type Match struct {
	ID        string       `json:"-"`
	MapID     int          `json:"mapId,omitempty"`
	Server    string       `json:"server"`
	Port      int          `json:"port"`
	Official  bool         `json:"official"`
	Group     string       `json:"group"`
	Date      int64        `json:"date"`
	TimeLimit int          `json:"timeLimit"`
	Duration  decoder.Time `json:"duration"`
	Finished  bool         `json:"finished"`
	Map       *Map         `json:"map"`
	Players   []*Player    `json:"players"`
	Teams     []*Team      `json:"teams"`

	opts []decoder.Option

	capsOnce sync.Once
	capsErr  error

	splatsOnce sync.Once
	splats     []decoder.Splat
	splatsErr  error
}

type Map struct {
	Name      string `json:"name"`
	Author    string `json:"author"`
	Type      string `json:"type"`
	Marsballs int    `json:"marsballs"`
	Width     int    `json:"width"`
	Tiles     []byte `json:"tiles"`

	opts []decoder.Option

	tilesOnce sync.Once
	tiles     [][]decoder.Tile
	tilesErr  error
}

type Player struct {
	Auth      bool         `json:"auth"`
	Name      string       `json:"name"`
	Flair     int          `json:"flair"`
	Degree    int          `json:"degree"`
	Score     int          `json:"score"`
	Points    int          `json:"points"`
	StartTeam decoder.Team `json:"team"`
	Events    []byte       `json:"events"`

	match *Match
	index int

	capsFor     int
	capsAgainst int

	statsOnce sync.Once
	stats     *stats.PlayerStats
	statsErr  error
}

type Team struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Splats []byte `json:"splats"`

	match *Match
	team  decoder.Team

	statsOnce sync.Once
	stats     *stats.PlayerStats
	statsErr  error

	splatsOnce sync.Once
	splats     []decoder.Splat
	splatsErr  error
}

// Parse reads a single match file. The options apply to every blob decoded
// from the match later on.
func Parse(data []byte, opts ...decoder.Option) (*Match, error) {
	var m Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing match: %w", err)
	}
	if err := m.link(opts); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Match) link(opts []decoder.Option) error {
	if len(m.Teams) != 2 {
		return fmt.Errorf("expected 2 teams got %d", len(m.Teams))
	}
	if m.Map == nil {
		m.Map = &Map{}
	}

	m.opts = opts
	if m.Map.opts == nil {
		m.Map.opts = opts
	}
	for i, t := range m.Teams {
		if t == nil {
			return fmt.Errorf("team %d is null", i)
		}
		t.match = m
		t.team = decoder.TeamRed + decoder.Team(i)
	}
	for i, p := range m.Players {
		if p == nil {
			return fmt.Errorf("player %d is null", i)
		}
		p.match = m
		p.index = i
	}
	return nil
}

func (m *Match) StartedAt() time.Time {
	return time.Unix(m.Date, 0)
}

// Team returns the team for t, or nil for decoder.TeamNone.
func (m *Match) Team(t decoder.Team) *Team {
	switch t {
	case decoder.TeamRed:
		return m.Teams[0]
	case decoder.TeamBlue:
		return m.Teams[1]
	}
	return nil
}

func (m *Match) Red() *Team {
	return m.Team(decoder.TeamRed)
}

func (m *Match) Blue() *Team {
	return m.Team(decoder.TeamBlue)
}

// TeamName returns the name the match gives to t, falling back to the
// default team name.
func (m *Match) TeamName(t decoder.Team) string {
	if team := m.Team(t); team != nil && team.Name != "" {
		return team.Name
	}
	return t.String()
}

// Splats returns the splats of both teams ordered by time. On equal times the
// blue splat comes first.
func (m *Match) Splats() ([]decoder.Splat, error) {
	m.splatsOnce.Do(func() {
		red, err := m.Red().SplatList()
		if err != nil {
			m.splatsErr = err
			return
		}
		blue, err := m.Blue().SplatList()
		if err != nil {
			m.splatsErr = err
			return
		}

		merged := make([]decoder.Splat, 0, len(red)+len(blue))
		ir, ib := 0, 0
		for ir < len(red) || ib < len(blue) {
			if ib == len(blue) || ir < len(red) && red[ir].Time < blue[ib].Time {
				merged = append(merged, red[ir])
				ir++
			} else {
				merged = append(merged, blue[ib])
				ib++
			}
		}
		m.splats = merged
	})
	return m.splats, m.splatsErr
}

type capture struct {
	time decoder.Time
	team decoder.Team
}

type captureCollector struct {
	decoder.NopHandler
	caps *[]capture
}

func (c captureCollector) Capture(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, team decoder.Team) {
	*c.caps = append(*c.caps, capture{time: time, team: team})
}

// capDiffCounter credits a player with the captures that happen while they
// are on a team. Captures at the time of a join, quit or switch are counted
// for the team the player is leaving.
type capDiffCounter struct {
	decoder.NopHandler
	caps   []capture
	player *Player
	team   decoder.Team
	next   int
}

func (c *capDiffCounter) catchUp(time decoder.Time) {
	for ; c.next < len(c.caps) && c.caps[c.next].time <= time; c.next++ {
		if c.team == decoder.TeamNone {
			continue
		}
		if c.caps[c.next].team == c.team {
			c.player.capsFor++
		} else {
			c.player.capsAgainst++
		}
	}
}

func (c *capDiffCounter) Join(time decoder.Time, team decoder.Team) {
	c.catchUp(time)
	c.team = team
}

func (c *capDiffCounter) Quit(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	c.catchUp(time)
	c.team = decoder.TeamNone
}

func (c *capDiffCounter) Switch(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, team decoder.Team) {
	c.catchUp(time)
	c.team = team
}

func (c *capDiffCounter) End(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	c.catchUp(time)
	c.team = decoder.TeamNone
}

func (m *Match) computeCapDiff() error {
	m.capsOnce.Do(func() {
		var caps []capture
		for _, p := range m.Players {
			if err := p.Decode(captureCollector{caps: &caps}); err != nil {
				m.capsErr = err
				return
			}
		}
		slices.SortStableFunc(caps, func(a, b capture) int {
			return int(a.time) - int(b.time)
		})

		for _, p := range m.Players {
			p.capsFor, p.capsAgainst = 0, 0
			if err := p.Decode(&capDiffCounter{caps: caps, player: p}); err != nil {
				m.capsErr = err
				return
			}
		}
	})
	return m.capsErr
}

// TileGrid returns the decoded tiles, rows top to bottom.
func (mp *Map) TileGrid() ([][]decoder.Tile, error) {
	mp.tilesOnce.Do(func() {
		mp.tiles, mp.tilesErr = decoder.DecodeMap(mp.Tiles, mp.Width, mp.opts...)
	})
	return mp.tiles, mp.tilesErr
}

// Height is not stored in the match file; it is the number of decoded rows.
func (mp *Map) Height() (int, error) {
	tiles, err := mp.TileGrid()
	return len(tiles), err
}

func (p *Player) Match() *Match {
	return p.match
}

func (p *Player) Index() int {
	return p.index
}

// Team returns the team the player starts the match on, nil when they join
// late.
func (p *Player) Team() *Team {
	return p.match.Team(p.StartTeam)
}

// Decode replays the player's events into h.
func (p *Player) Decode(h decoder.PlayerEventHandler) error {
	if err := decoder.DecodePlayer(p.Events, p.StartTeam, p.match.Duration, h, p.match.opts...); err != nil {
		return fmt.Errorf("player %d (%s): %w", p.index, p.Name, err)
	}
	return nil
}

// Stats returns the player's stats, caps for and against included.
func (p *Player) Stats() (*stats.PlayerStats, error) {
	p.statsOnce.Do(func() {
		s := stats.New()
		if err := p.Decode(s); err != nil {
			p.statsErr = err
			return
		}
		if err := p.match.computeCapDiff(); err != nil {
			p.statsErr = err
			return
		}
		s.CapsFor, s.CapsAgainst = p.capsFor, p.capsAgainst
		p.stats = s
	})
	return p.stats, p.statsErr
}

func (t *Team) Team() decoder.Team {
	return t.team
}

// Players returns the players that start the match on this team.
func (t *Team) Players() []*Player {
	var players []*Player
	for _, p := range t.match.Players {
		if p.StartTeam == t.team {
			players = append(players, p)
		}
	}
	return players
}

// Stats sums the stats of the team's players. Players switching teams count
// for the team they started on.
func (t *Team) Stats() (*stats.PlayerStats, error) {
	t.statsOnce.Do(func() {
		sum := stats.New()
		for _, p := range t.Players() {
			s, err := p.Stats()
			if err != nil {
				t.statsErr = err
				return
			}
			sum = sum.Add(s)
		}
		t.stats = sum
	})
	return t.stats, t.statsErr
}

// SplatList decodes the team's splats. The owner of each splat is found by
// replaying the pops and drops of every player.
func (t *Team) SplatList() ([]decoder.Splat, error) {
	t.splatsOnce.Do(func() {
		queue := decoder.NewSplatQueue(t.team)
		for _, p := range t.match.Players {
			if err := p.Decode(queue.Collector(p.index)); err != nil {
				t.splatsErr = err
				return
			}
		}

		mp := t.match.Map
		height, err := mp.Height()
		if err != nil {
			t.splatsErr = err
			return
		}
		t.splats, t.splatsErr = decoder.DecodeSplats(t.Splats, mp.Width, height, queue, t.match.opts...)
	})
	return t.splats, t.splatsErr
}
