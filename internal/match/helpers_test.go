package match

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/rejdeboer/tagpro-telemetry/pkg/writer"
)

type stream struct {
	w writer.Writer
}

func newStream() *stream {
	return &stream{w: writer.NewWriter()}
}

func (s *stream) bits(bits ...int) *stream {
	for _, b := range bits {
		s.w.WriteBit(b == 1)
	}
	return s
}

func (s *stream) tally(n uint) *stream {
	s.w.WriteTally(n)
	return s
}

func (s *stream) fixed(n int, v uint) *stream {
	s.w.WriteFixed(n, v)
	return s
}

func (s *stream) footer(v uint) *stream {
	s.w.WriteFooter(v)
	return s
}

// The record helpers write a single frame for a player on a team. delta is
// the number of frames since the previous record.

func (s *stream) grab(delta uint) *stream {
	return s.bits(0, 0).tally(0).tally(0).bits(1).tally(0).fixed(2, 0).tally(0).bits(0, 0, 0).footer(delta - 1)
}

func (s *stream) capture(delta uint) *stream {
	return s.bits(0, 0).tally(0).tally(0).tally(1).bits(0).tally(0).bits(0, 0, 0).footer(delta - 1)
}

func (s *stream) pop(delta uint) *stream {
	return s.bits(0, 1).tally(0).tally(0).bits(0).tally(0).tally(0).bits(0, 0, 0).footer(delta - 1)
}

func (s *stream) tag(delta uint) *stream {
	return s.bits(0, 0).tally(0).tally(1).bits(0).tally(0).tally(0).bits(0, 0, 0).footer(delta - 1)
}

func (s *stream) joinRed(delta uint) *stream {
	return s.bits(1, 0, 0).tally(0).tally(0).bits(0).tally(0).tally(0).bits(0, 0, 0).footer(delta - 1)
}

func (s *stream) bytes() []byte {
	return s.w.Buf
}

// splatOffset is the coordinate offset of a two tile wide map; coordinates
// take 7 bits.
const splatOffset = 44

type fixture struct {
	redName  string
	blueName string
	players  []string
}

// testMatch builds a match on a 2x2 map:
//   - player 0 (red) grabs at 100, captures at 200 and pops at 300
//   - player 1 (blue) pops at 150 and tags at 200
//   - player 2 joins red at 250
func testMatch(t *testing.T) ([]byte, fixture) {
	t.Helper()

	f := fixture{
		redName:  gofakeit.Company(),
		blueName: gofakeit.Company(),
		players:  []string{gofakeit.Username(), gofakeit.Username(), gofakeit.Username()},
	}

	data := map[string]any{
		"server":    "tagpro-test.koalabeast.com",
		"port":      8001,
		"official":  true,
		"group":     "",
		"date":      1514764800,
		"timeLimit": 8,
		"duration":  600,
		"finished":  true,
		"map": map[string]any{
			"name":      "Bombing Run",
			"author":    "Some Ball",
			"type":      "ctf",
			"marsballs": 0,
			"width":     2,
			"tiles":     newStream().fixed(6, 6).footer(3).bytes(),
		},
		"players": []map[string]any{
			{
				"auth":   true,
				"name":   f.players[0],
				"score":  30,
				"points": 10,
				"team":   1,
				"events": newStream().grab(100).capture(100).pop(100).bytes(),
			},
			{
				"name":   f.players[1],
				"score":  20,
				"team":   2,
				"events": newStream().pop(150).tag(50).bytes(),
			},
			{
				"name":   f.players[2],
				"score":  5,
				"team":   0,
				"events": newStream().joinRed(250).bytes(),
			},
		},
		"teams": []map[string]any{
			{
				"name":   f.redName,
				"score":  1,
				"splats": newStream().tally(1).fixed(7, 10+splatOffset).fixed(7, 20+splatOffset).bytes(),
			},
			{
				"name":   f.blueName,
				"score":  0,
				"splats": newStream().tally(1).fixed(7, splatOffset-5).fixed(7, 30+splatOffset).bytes(),
			},
		},
	}

	buf, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	return buf, f
}
