package decoder

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplatBits(t *testing.T) {
	cases := []struct {
		size   int
		bits   int
		offset int
	}{
		{1, 6, 32},
		{10, 9, 76},
		{20, 10, 132},
		{32, 11, 404},
		{64, 12, 788},
	}

	for _, c := range cases {
		bits, offset := splatBits(c.size)
		if bits != c.bits || offset != c.offset {
			t.Errorf("size %d: expected (%d, %d) got (%d, %d)", c.size, c.bits, c.offset, bits, offset)
		}
		if 1<<bits < c.size*TilePixels {
			t.Errorf("size %d: %d bits cannot hold %d pixels", c.size, bits, c.size*TilePixels)
		}
	}
}

func testQueue() *SplatQueue {
	q := NewSplatQueue(TeamRed)
	first := q.Collector(0)
	second := q.Collector(1)

	first.Pop(30, PowerupNone, TeamRed)
	first.Pop(20, PowerupNone, TeamBlue)
	second.Drop(10, FlagOpponent, PowerupNone, TeamRed)
	second.Pop(30, PowerupNone, TeamRed)
	return q
}

func TestSplatQueue(t *testing.T) {
	q := testQueue()

	expected := []PendingSplat{
		{Time: 10, Player: 1},
		{Time: 30, Player: 0},
		{Time: 30, Player: 1},
	}
	if !reflect.DeepEqual(expected, q.Entries()) {
		t.Errorf("expected %v got %v", expected, q.Entries())
	}
}

func TestSplatQueueFromPlayerStreams(t *testing.T) {
	pop := func(s *bitStream, delta uint) *bitStream {
		return s.bits(0, 1).tally(0).tally(0).bits(0).tally(0).tally(0).bits(0, 0, 0).footer(delta)
	}

	q := NewSplatQueue(TeamBlue)
	streams := [][]byte{
		pop(pop(newStream(), 19), 9).bytes(),
		pop(newStream(), 24).bytes(),
		pop(newStream(), 4).bytes(),
	}
	teams := []Team{TeamBlue, TeamBlue, TeamRed}

	for i, buf := range streams {
		if err := DecodePlayer(buf, teams[i], testDuration, q.Collector(i)); err != nil {
			t.Fatal(err)
		}
	}

	expected := []PendingSplat{
		{Time: 20, Player: 0},
		{Time: 25, Player: 1},
		{Time: 30, Player: 0},
	}
	if !reflect.DeepEqual(expected, q.Entries()) {
		t.Errorf("expected %v got %v", expected, q.Entries())
	}
}

func splatStream() []byte {
	xBits, xOffset := splatBits(20)
	yBits, yOffset := splatBits(10)
	at := func(s *bitStream, x, y int) {
		s.fixed(xBits, uint(x+xOffset)).fixed(yBits, uint(y+yOffset))
	}

	s := newStream()
	s.tally(0)
	s.tally(2)
	at(s, 40, 0)
	at(s, 0, 80)
	s.tally(0)
	s.tally(1)
	at(s, 100, -20)
	return s.bytes()
}

func TestDecodeSplats(t *testing.T) {
	splats, err := DecodeSplats(splatStream(), 20, 10, testQueue())
	if err != nil {
		t.Fatal(err)
	}

	expected := []Splat{
		{Time: 10, X: 40, Y: 0, Player: 1, Team: TeamRed},
		{Time: 30, X: 0, Y: 80, Player: 0, Team: TeamRed},
		{Time: 30, X: 100, Y: -20, Player: 1, Team: TeamRed},
	}
	if !reflect.DeepEqual(expected, splats) {
		t.Errorf("expected %v got %v", expected, splats)
	}
}

func TestDecodeSplatsExhaustedQueue(t *testing.T) {
	q := NewSplatQueue(TeamRed)
	q.Collector(0).Pop(12, PowerupNone, TeamRed)
	q.Collector(1).Pop(40, PowerupNone, TeamRed)

	t.Run("lenient", func(t *testing.T) {
		splats, err := DecodeSplats(splatStream(), 20, 10, q)
		if err != nil {
			t.Fatal(err)
		}
		if len(splats) != q.Len() {
			t.Fatalf("expected %d splats got %d", q.Len(), len(splats))
		}
		for i, entry := range q.Entries() {
			if splats[i].Time != entry.Time || splats[i].Player != entry.Player {
				t.Errorf("splat %d: expected %v got %v", i, entry, splats[i])
			}
		}
	})

	t.Run("strict", func(t *testing.T) {
		_, err := DecodeSplats(splatStream(), 20, 10, q, WithStrict())
		if !errors.Is(err, ErrMalformedStream) {
			t.Errorf("expected %v got %v", ErrMalformedStream, err)
		}
	})
}

func TestDecodeSplatsInvalidSize(t *testing.T) {
	splats, err := DecodeSplats(splatStream(), 0, 10, testQueue())
	if err != nil || len(splats) != 0 {
		t.Errorf("expected no splats and no error got %v, %v", splats, err)
	}

	if _, err := DecodeSplats(splatStream(), 20, 0, testQueue(), WithStrict()); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("expected %v got %v", ErrMalformedStream, err)
	}
}
