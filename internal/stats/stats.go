package stats

import (
	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

// PlayerStats accumulates a player's stats from their events. Durations are
// in frames.
type PlayerStats struct {
	decoder.NopHandler `json:"-"`

	Tags     int          `json:"tags"`
	Pops     int          `json:"pops"`
	Grabs    int          `json:"grabs"`
	Drops    int          `json:"drops"`
	Hold     decoder.Time `json:"hold"`
	Captures int          `json:"captures"`
	Returns  int          `json:"returns"`
	Prevent  decoder.Time `json:"prevent"`
	Button   decoder.Time `json:"button"`
	Block    decoder.Time `json:"block"`
	Time     decoder.Time `json:"time"`

	// Pups counts pickups per powerup; PowerupNone counts duplicates.
	Pups    map[decoder.Powerup]int          `json:"pups"`
	PupTime map[decoder.Powerup]decoder.Time `json:"pup_time"`

	CapsFor     int `json:"caps_for"`
	CapsAgainst int `json:"caps_against"`

	ingameSince  decoder.Time
	holdSince    decoder.Time
	preventSince decoder.Time
	buttonSince  decoder.Time
	blockSince   decoder.Time
	pupSince     map[decoder.Powerup]decoder.Time
}

func New() *PlayerStats {
	return &PlayerStats{
		Pups:         make(map[decoder.Powerup]int),
		PupTime:      make(map[decoder.Powerup]decoder.Time),
		ingameSince:  -1,
		holdSince:    -1,
		preventSince: -1,
		buttonSince:  -1,
		blockSince:   -1,
		pupSince:     make(map[decoder.Powerup]decoder.Time),
	}
}

func (s *PlayerStats) CapDiff() int {
	return s.CapsFor - s.CapsAgainst
}

func (s *PlayerStats) PupsTotal() int {
	total := 0
	for _, n := range s.Pups {
		total += n
	}
	return total
}

// Add returns the sum of two stats. Open intervals are not carried over.
func (s *PlayerStats) Add(other *PlayerStats) *PlayerStats {
	sum := New()
	for _, x := range []*PlayerStats{s, other} {
		sum.Tags += x.Tags
		sum.Pops += x.Pops
		sum.Grabs += x.Grabs
		sum.Drops += x.Drops
		sum.Hold += x.Hold
		sum.Captures += x.Captures
		sum.Returns += x.Returns
		sum.Prevent += x.Prevent
		sum.Button += x.Button
		sum.Block += x.Block
		sum.Time += x.Time
		sum.CapsFor += x.CapsFor
		sum.CapsAgainst += x.CapsAgainst

		for p, n := range x.Pups {
			sum.Pups[p] += n
		}
		for p, t := range x.PupTime {
			sum.PupTime[p] += t
		}
	}
	return sum
}

// closeInterval adds the interval started at since to total and marks it closed.
func closeInterval(total *decoder.Time, since *decoder.Time, time decoder.Time) {
	if *since >= 0 {
		*total += time - *since
		*since = -1
	}
}

func (s *PlayerStats) Join(time decoder.Time, _ decoder.Team) {
	s.ingameSince = time
}

func (s *PlayerStats) Quit(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	closeInterval(&s.Time, &s.ingameSince, time)
}

func (s *PlayerStats) Grab(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.Grabs++
	s.holdSince = time
}

func (s *PlayerStats) Capture(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.Captures++
	closeInterval(&s.Hold, &s.holdSince, time)
}

func (s *PlayerStats) FlaglessCapture(decoder.Time, decoder.Flag, decoder.Powerup, decoder.Team) {
	s.Captures++
}

func (s *PlayerStats) PowerUp(time decoder.Time, _ decoder.Flag, powerUp decoder.Powerup, _ decoder.Powerup, _ decoder.Team) {
	s.Pups[powerUp]++
	s.pupSince[powerUp] = time
}

func (s *PlayerStats) DuplicatePowerup(decoder.Time, decoder.Flag, decoder.Powerup, decoder.Team) {
	s.Pups[decoder.PowerupNone]++
}

func (s *PlayerStats) PowerDown(time decoder.Time, _ decoder.Flag, powerDown decoder.Powerup, _ decoder.Powerup, _ decoder.Team) {
	s.closePup(powerDown, time)
}

func (s *PlayerStats) closePup(p decoder.Powerup, time decoder.Time) {
	since, ok := s.pupSince[p]
	if !ok {
		return
	}
	total := s.PupTime[p]
	closeInterval(&total, &since, time)
	s.PupTime[p] = total
	s.pupSince[p] = since
}

func (s *PlayerStats) Return(decoder.Time, decoder.Flag, decoder.Powerup, decoder.Team) {
	s.Returns++
	s.Tags++
}

func (s *PlayerStats) Tag(decoder.Time, decoder.Flag, decoder.Powerup, decoder.Team) {
	s.Tags++
}

func (s *PlayerStats) Drop(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.Pops++
	s.Drops++
	closeInterval(&s.Hold, &s.holdSince, time)
}

func (s *PlayerStats) Pop(decoder.Time, decoder.Powerup, decoder.Team) {
	s.Pops++
}

func (s *PlayerStats) StartPrevent(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.preventSince = time
}

func (s *PlayerStats) StopPrevent(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	closeInterval(&s.Prevent, &s.preventSince, time)
}

func (s *PlayerStats) StartButton(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.buttonSince = time
}

func (s *PlayerStats) StopButton(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	closeInterval(&s.Button, &s.buttonSince, time)
}

func (s *PlayerStats) StartBlock(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	s.blockSince = time
}

func (s *PlayerStats) StopBlock(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	closeInterval(&s.Block, &s.blockSince, time)
}

func (s *PlayerStats) End(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	closeInterval(&s.Time, &s.ingameSince, time)
	for _, p := range decoder.Powerups {
		s.closePup(p, time)
	}
	closeInterval(&s.Hold, &s.holdSince, time)
	closeInterval(&s.Prevent, &s.preventSince, time)
	closeInterval(&s.Button, &s.buttonSince, time)
	closeInterval(&s.Block, &s.blockSince, time)
}
