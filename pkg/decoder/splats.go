package decoder

import (
	"math/bits"
	"slices"

	"github.com/rejdeboer/tagpro-telemetry/pkg/reader"
)

// Splat is a paint mark left where a player popped or dropped a flag. X and
// Y are pixels measured from the center of the top-left tile.
type Splat struct {
	Time   Time `json:"time"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Player int  `json:"player"`
	Team   Team `json:"team"`
}

// PendingSplat is a pop or drop that left a splat whose coordinates are
// stored in the team's splats blob.
type PendingSplat struct {
	Time   Time
	Player int
}

// SplatQueue collects the pops and drops of every player for one team, in
// the order the splats blob stores their coordinates.
type SplatQueue struct {
	team    Team
	entries []PendingSplat
	sorted  bool
}

func NewSplatQueue(team Team) *SplatQueue {
	return &SplatQueue{team: team}
}

// Collector returns the handler that collects the pops and drops of one
// player. Pops and drops made while on another team are ignored.
func (q *SplatQueue) Collector(player int) PlayerEventHandler {
	return &splatCollector{queue: q, player: player}
}

func (q *SplatQueue) push(time Time, player int) {
	q.entries = append(q.entries, PendingSplat{Time: time, Player: player})
	q.sorted = false
}

// Entries returns the pending splats ordered by time. Entries with the same
// time keep the order they were collected in.
func (q *SplatQueue) Entries() []PendingSplat {
	if !q.sorted {
		slices.SortStableFunc(q.entries, func(a, b PendingSplat) int {
			return int(a.Time) - int(b.Time)
		})
		q.sorted = true
	}
	return q.entries
}

func (q *SplatQueue) Len() int {
	return len(q.entries)
}

type splatCollector struct {
	NopHandler
	queue  *SplatQueue
	player int
}

func (c *splatCollector) Drop(time Time, _ Flag, powers Powerup, team Team) {
	c.Pop(time, powers, team)
}

func (c *splatCollector) Pop(time Time, _ Powerup, team Team) {
	if team == c.queue.team {
		c.queue.push(time, c.player)
	}
}

// splatBits returns the bits used per coordinate for a map size in tiles and
// the offset subtracted from the stored value. The pixel span is centered
// in the smallest power of two that holds it.
func splatBits(size int) (int, int) {
	span := size * TilePixels
	n := bits.Len(uint(span - 1))
	return n, ((1<<n)-span)>>1 + TilePixels/2
}

// DecodeSplats decodes a team's splats blob. Every step of the blob holds a
// tally of splats followed by their coordinates; each splat takes its time
// and player from the next entry of the queue.
func DecodeSplats(buf []byte, width, height int, queue *SplatQueue, opts ...Option) ([]Splat, error) {
	o := buildOptions(opts)
	if width < 1 || height < 1 {
		if o.strict {
			return nil, malformed("invalid map size %dx%d", width, height)
		}
		return []Splat{}, nil
	}

	var pending []PendingSplat
	team := TeamNone
	if queue != nil {
		pending = queue.Entries()
		team = queue.team
	}

	r := reader.FromBuffer(buf)
	xBits, xOffset := splatBits(width)
	yBits, yOffset := splatBits(height)

	splats := []Splat{}
	next := 0
	for index := 0; !r.End(); index++ {
		n := r.ReadTally()
		for range n {
			x := int(r.ReadFixed(xBits)) - xOffset
			y := int(r.ReadFixed(yBits)) - yOffset

			if next == len(pending) {
				if o.strict {
					return splats, malformed("step %d holds more splats than the %d pops and drops", index, len(pending))
				}
				continue
			}

			p := pending[next]
			next++
			splats = append(splats, Splat{
				Time:   p.Time,
				X:      x,
				Y:      y,
				Player: p.Player,
				Team:   team,
			})
		}
	}

	return splats, nil
}
