package decoder

import (
	"fmt"
	"strings"
)

type Team uint8

const (
	TeamNone Team = iota
	TeamRed
	TeamBlue
)

func (t Team) String() string {
	switch t {
	case TeamNone:
		return "No team"
	case TeamRed:
		return "Red"
	case TeamBlue:
		return "Blue"
	}
	return fmt.Sprintf("Team(%d)", uint8(t))
}

// Other returns the opposing team. Teams other than red and blue are
// returned unchanged.
func (t Team) Other() Team {
	switch t {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	}
	return t
}

type Flag uint8

const (
	FlagNone Flag = iota
	FlagOpponent
	FlagOpponentPotato
	FlagNeutral
	FlagNeutralPotato
	FlagTemp
)

func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "No flag"
	case FlagOpponent:
		return "Opponent flag"
	case FlagOpponentPotato:
		return "Opponent potato"
	case FlagNeutral:
		return "Neutral flag"
	case FlagNeutralPotato:
		return "Neutral potato"
	case FlagTemp:
		return "Temporary flag"
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

func (f Flag) IsPotato() bool {
	return f == FlagOpponentPotato || f == FlagNeutralPotato
}

func (f Flag) IsOpponent() bool {
	return f == FlagOpponent || f == FlagOpponentPotato
}

func (f Flag) IsNeutral() bool {
	return f == FlagNeutral || f == FlagNeutralPotato
}

// Powerup is a set of powerups; single kinds can be combined with |.
type Powerup uint8

const (
	PowerupNone        Powerup = 0
	PowerupJukeJuice   Powerup = 1
	PowerupRollingBomb Powerup = 2
	PowerupTagPro      Powerup = 4
	PowerupTopSpeed    Powerup = 8
	PowerupAll         Powerup = 15
)

// Powerups lists every single powerup in stream order. Decoding depends on
// this order.
var Powerups = [4]Powerup{
	PowerupJukeJuice,
	PowerupRollingBomb,
	PowerupTagPro,
	PowerupTopSpeed,
}

func (p Powerup) Has(other Powerup) bool {
	return p&other != 0
}

func (p Powerup) String() string {
	switch p {
	case PowerupNone:
		return "No powerups"
	case PowerupJukeJuice:
		return "Juke Juice"
	case PowerupRollingBomb:
		return "Rolling Bomb"
	case PowerupTagPro:
		return "TagPro"
	case PowerupTopSpeed:
		return "Top Speed"
	}

	names := make([]string, 0, len(Powerups))
	for _, single := range Powerups {
		if p.Has(single) {
			names = append(names, single.String())
		}
	}
	return strings.Join(names, ", ")
}

// Time is a point in a match, in frames. The game runs at 60 frames per second.
type Time int

const FramesPerSecond = 60

func Seconds(s int) Time {
	return Time(s * FramesPerSecond)
}

func Minutes(m int) Time {
	return Time(m * 60 * FramesPerSecond)
}

// String formats the time as mm:ss.cc.
func (t Time) String() string {
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	minutes := int(t) / 3600
	centis := (int(t) % 3600) * 100 / FramesPerSecond
	return fmt.Sprintf("%s%02d:%02d.%02d", sign, minutes, centis/100, centis%100)
}
