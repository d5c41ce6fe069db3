package match

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

func TestParse(t *testing.T) {
	buf, f := testMatch(t)

	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	if m.Red().Name != f.redName || m.Blue().Name != f.blueName {
		t.Errorf("expected teams %s and %s got %s and %s", f.redName, f.blueName, m.Red().Name, m.Blue().Name)
	}
	if m.Duration != 600 {
		t.Errorf("expected duration %d got %d", 600, m.Duration)
	}
	if m.StartedAt().Unix() != 1514764800 {
		t.Errorf("expected start %d got %d", 1514764800, m.StartedAt().Unix())
	}
	if len(m.Players) != 3 {
		t.Fatalf("expected %d players got %d", 3, len(m.Players))
	}
	if m.Players[2].Team() != nil {
		t.Errorf("expected late joiner to start without a team")
	}
	if m.Players[1].Team() != m.Blue() {
		t.Errorf("expected player 1 on blue")
	}
	if players := m.Red().Players(); len(players) != 1 || players[0].Name != f.players[0] {
		t.Errorf("expected only %s on red got %v", f.players[0], players)
	}
}

func TestParseRejectsTeamCount(t *testing.T) {
	if _, err := Parse([]byte(`{"teams":[{"name":"Red"}]}`)); err == nil {
		t.Errorf("expected error for a single team")
	}
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Errorf("expected error for invalid json")
	}
}

func TestParseRejectsNullEntries(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"null player", `{"players":[null],"teams":[{},{}]}`},
		{"null red team", `{"teams":[null,{}]}`},
		{"null blue team", `{"teams":[{},null]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.data)); err == nil {
				t.Errorf("expected error for %s", c.data)
			}
		})
	}
}

func TestMapTiles(t *testing.T) {
	buf, _ := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	tiles, err := m.Map.TileGrid()
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]decoder.Tile{
		{decoder.TileFloor, decoder.TileFloor},
		{decoder.TileFloor, decoder.TileFloor},
	}
	if !reflect.DeepEqual(expected, tiles) {
		t.Errorf("expected %v got %v", expected, tiles)
	}

	height, err := m.Map.Height()
	if err != nil || height != 2 {
		t.Errorf("expected height %d got %d (%v)", 2, height, err)
	}
}

func TestPlayerStats(t *testing.T) {
	buf, _ := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		player      int
		grabs       int
		captures    int
		hold        decoder.Time
		pops        int
		tags        int
		time        decoder.Time
		capsFor     int
		capsAgainst int
	}{
		{0, 1, 1, 100, 1, 0, 600, 1, 0},
		{1, 0, 0, 0, 1, 1, 600, 0, 1},
		{2, 0, 0, 0, 0, 0, 350, 0, 0},
	}

	for _, c := range cases {
		s, err := m.Players[c.player].Stats()
		if err != nil {
			t.Fatal(err)
		}
		if s.Grabs != c.grabs || s.Captures != c.captures || s.Hold != c.hold {
			t.Errorf("player %d: expected %d grabs, %d captures, %d hold got %d, %d, %d",
				c.player, c.grabs, c.captures, c.hold, s.Grabs, s.Captures, s.Hold)
		}
		if s.Pops != c.pops || s.Tags != c.tags || s.Time != c.time {
			t.Errorf("player %d: expected %d pops, %d tags, %d time got %d, %d, %d",
				c.player, c.pops, c.tags, c.time, s.Pops, s.Tags, s.Time)
		}
		if s.CapsFor != c.capsFor || s.CapsAgainst != c.capsAgainst {
			t.Errorf("player %d: expected caps %d/%d got %d/%d",
				c.player, c.capsFor, c.capsAgainst, s.CapsFor, s.CapsAgainst)
		}
	}
}

func TestTeamStats(t *testing.T) {
	buf, _ := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	red, err := m.Red().Stats()
	if err != nil {
		t.Fatal(err)
	}
	if red.Captures != 1 || red.Grabs != 1 {
		t.Errorf("expected red to have 1 capture and 1 grab got %d and %d", red.Captures, red.Grabs)
	}

	blue, err := m.Blue().Stats()
	if err != nil {
		t.Fatal(err)
	}
	if blue.Tags != 1 || blue.CapDiff() != -1 {
		t.Errorf("expected blue to have 1 tag and cap diff -1 got %d and %d", blue.Tags, blue.CapDiff())
	}
}

func TestSplats(t *testing.T) {
	buf, _ := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	red, err := m.Red().SplatList()
	if err != nil {
		t.Fatal(err)
	}
	expectedRed := []decoder.Splat{{Time: 300, X: 10, Y: 20, Player: 0, Team: decoder.TeamRed}}
	if !reflect.DeepEqual(expectedRed, red) {
		t.Errorf("expected %v got %v", expectedRed, red)
	}

	splats, err := m.Splats()
	if err != nil {
		t.Fatal(err)
	}
	expected := []decoder.Splat{
		{Time: 150, X: -5, Y: 30, Player: 1, Team: decoder.TeamBlue},
		{Time: 300, X: 10, Y: 20, Player: 0, Team: decoder.TeamRed},
	}
	if !reflect.DeepEqual(expected, splats) {
		t.Errorf("expected %v got %v", expected, splats)
	}
}

func TestSplatsBlueFirstOnTies(t *testing.T) {
	m := &Match{
		Teams: []*Team{{}, {}},
	}
	if err := m.link(nil); err != nil {
		t.Fatal(err)
	}
	red := []decoder.Splat{{Time: 10, Team: decoder.TeamRed}, {Time: 20, Team: decoder.TeamRed}}
	blue := []decoder.Splat{{Time: 10, Team: decoder.TeamBlue}}
	m.Red().splatsOnce.Do(func() { m.Red().splats = red })
	m.Blue().splatsOnce.Do(func() { m.Blue().splats = blue })

	splats, err := m.Splats()
	if err != nil {
		t.Fatal(err)
	}
	teams := []decoder.Team{decoder.TeamBlue, decoder.TeamRed, decoder.TeamRed}
	for i, s := range splats {
		if s.Team != teams[i] {
			t.Errorf("splat %d: expected %v got %v", i, teams[i], s.Team)
		}
	}
}

func TestTimeline(t *testing.T) {
	buf, f := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	timeline, err := m.Timeline()
	if err != nil {
		t.Fatal(err)
	}

	expected := []struct {
		time   decoder.Time
		player int
		text   string
	}{
		{0, 0, "Join team " + f.redName},
		{0, 1, "Join team " + f.blueName},
		{100, 0, "Grab Opponent flag"},
		{150, 1, "Pop"},
		{200, 0, "Capture Opponent flag"},
		{200, 1, "Tag"},
		{250, 2, "Join team " + f.redName},
		{300, 0, "Pop"},
		{600, 0, "Game ends"},
		{600, 1, "Game ends"},
		{600, 2, "Game ends"},
	}
	if len(timeline) != len(expected) {
		t.Fatalf("expected %d entries got %d: %v", len(expected), len(timeline), timeline)
	}
	for i, e := range expected {
		got := timeline[i]
		if got.Time != e.time || got.Player != e.player || got.Text != e.text {
			t.Errorf("entry %d: expected %v %d %q got %v %d %q", i, e.time, e.player, e.text, got.Time, got.Player, got.Text)
		}
		if got.Name != f.players[e.player] {
			t.Errorf("entry %d: expected name %s got %s", i, f.players[e.player], got.Name)
		}
	}

	if line := timeline[2].String(); !strings.HasPrefix(line, "00:01.66 | ") {
		t.Errorf("unexpected timeline line %q", line)
	}
}

func TestScoreboard(t *testing.T) {
	buf, f := testMatch(t)
	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := m.Scoreboard()
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range f.players {
		if rows[i].Name != name {
			t.Errorf("row %d: expected %s got %s", i, name, rows[i].Name)
		}
	}
	if rows[0].Stats.CapDiff() != 1 {
		t.Errorf("expected cap diff %d got %d", 1, rows[0].Stats.CapDiff())
	}
}

func TestStrictPropagates(t *testing.T) {
	buf, _ := testMatch(t)
	m, err := Parse(buf, decoder.WithStrict())
	if err != nil {
		t.Fatal(err)
	}
	m.Players[0].Events = m.Players[0].Events[:1]

	if _, err := m.Players[0].Stats(); !errors.Is(err, decoder.ErrMalformedStream) {
		t.Errorf("expected %v got %v", decoder.ErrMalformedStream, err)
	}
	if _, err := m.Timeline(); !errors.Is(err, decoder.ErrMalformedStream) {
		t.Errorf("expected %v got %v", decoder.ErrMalformedStream, err)
	}
}
