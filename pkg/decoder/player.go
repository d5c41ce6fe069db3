package decoder

import (
	"github.com/rejdeboer/tagpro-telemetry/pkg/reader"
)

// NOTE: player events blob, one record per frame with activity:
//  1. team change | 1 bit, then 1 bit (join red/blue, or quit/switch)
//  2. drop or pop | 1 bit
//  3. returns, tags | tally each
//  4. grab | 1 bit, only while holding no flag
//  5. captures | tally
//  6. keep flag | 1 bit, only with captures while a flag is held or grabbed
//  7. grabbed flag | 2 bits, only for a kept grab
//  8. powerups | tally, then 1 bit per powerup kind that can change
//  9. prevent, button, block toggles | 1 bit each
//  10. frames since the previous record minus one | footer
//
// Every field after the first depends on values read before it, so the read
// order below must not change.

type playerDecoder struct {
	r *reader.Reader
	h PlayerEventHandler

	time    Time
	team    Team
	flag    Flag
	powers  Powerup
	prevent bool
	button  bool
	block   bool
}

// DecodePlayer decodes a player's events blob, calling h for every event in
// stream order. team is the player's team at the start of the match and
// duration the match length; the closing End event is stamped with duration.
func DecodePlayer(buf []byte, team Team, duration Time, h PlayerEventHandler, opts ...Option) error {
	o := buildOptions(opts)
	if h == nil {
		h = NopHandler{}
	}
	if o.strict && team > TeamBlue {
		return malformed("invalid initial team %d", team)
	}

	r := reader.FromBuffer(buf)
	d := playerDecoder{
		r:    &r,
		h:    h,
		team: team,
	}

	if d.team != TeamNone {
		h.Join(d.time, d.team)
	}

	for !r.End() {
		d.record()
		if o.strict && r.Overrun() {
			return malformed("player record at %v runs past the end of the stream", d.time)
		}
	}

	h.End(duration, d.flag, d.powers, d.team)
	return nil
}

// DecodePlayerEvents decodes a player's events blob into a slice.
func DecodePlayerEvents(buf []byte, team Team, duration Time, opts ...Option) ([]Event, error) {
	var rec Recorder
	if err := DecodePlayer(buf, team, duration, &rec, opts...); err != nil {
		return rec.Events, err
	}
	return rec.Events, nil
}

func (d *playerDecoder) record() {
	r, h := d.r, d.h

	newTeam := d.team
	if r.ReadBool() {
		switch {
		case d.team == TeamNone:
			newTeam = TeamRed + Team(r.ReadBit())
		case r.ReadBool():
			newTeam = TeamNone
		default:
			newTeam = d.team.Other()
		}
	}

	dropPop := r.ReadBool()
	returns := r.ReadTally()
	tags := r.ReadTally()
	grab := d.flag == FlagNone && r.ReadBool()
	captures := r.ReadTally()

	keep := !dropPop &&
		newTeam != TeamNone &&
		(newTeam == d.team || d.team == TeamNone) &&
		(captures == 0 || d.flag == FlagNone && !grab || r.ReadBool())

	newFlag := d.flag
	if grab {
		if keep {
			newFlag = Flag(1 + r.ReadFixed(2))
		} else {
			newFlag = FlagTemp
		}
	}

	powerups := r.ReadTally()
	var powerDown, powerUp Powerup
	for _, p := range Powerups {
		// a held powerup only has its power down bit
		if d.powers.Has(p) {
			if r.ReadBool() {
				powerDown |= p
			}
		} else if powerups > 0 && r.ReadBool() {
			powerUp |= p
			powerups--
		}
	}

	togglePrevent := r.ReadBool()
	toggleButton := r.ReadBool()
	toggleBlock := r.ReadBool()

	d.time += 1 + Time(r.ReadFooter())
	time := d.time

	if d.team == TeamNone && newTeam != TeamNone {
		d.team = newTeam
		h.Join(time, d.team)
	}

	for range returns {
		h.Return(time, d.flag, d.powers, d.team)
	}

	for range tags {
		h.Tag(time, d.flag, d.powers, d.team)
	}

	if grab {
		d.flag = newFlag
		h.Grab(time, d.flag, d.powers, d.team)
	}

	for range captures {
		if keep || d.flag == FlagNone {
			h.FlaglessCapture(time, d.flag, d.powers, d.team)
		} else {
			h.Capture(time, d.flag, d.powers, d.team)
			d.flag = FlagNone
			keep = true
		}
	}

	for _, p := range Powerups {
		if powerDown.Has(p) {
			d.powers &^= p
			h.PowerDown(time, d.flag, p, d.powers, d.team)
		} else if powerUp.Has(p) {
			d.powers |= p
			h.PowerUp(time, d.flag, p, d.powers, d.team)
		}
	}

	for range powerups {
		h.DuplicatePowerup(time, d.flag, d.powers, d.team)
	}

	if togglePrevent {
		if d.prevent {
			h.StopPrevent(time, d.flag, d.powers, d.team)
		} else {
			h.StartPrevent(time, d.flag, d.powers, d.team)
		}
		d.prevent = !d.prevent
	}

	if toggleButton {
		if d.button {
			h.StopButton(time, d.flag, d.powers, d.team)
		} else {
			h.StartButton(time, d.flag, d.powers, d.team)
		}
		d.button = !d.button
	}

	if toggleBlock {
		if d.block {
			h.StopBlock(time, d.flag, d.powers, d.team)
		} else {
			h.StartBlock(time, d.flag, d.powers, d.team)
		}
		d.block = !d.block
	}

	if dropPop {
		if d.flag != FlagNone {
			h.Drop(time, d.flag, d.powers, d.team)
			d.flag = FlagNone
		} else {
			h.Pop(time, d.powers, d.team)
		}
	}

	if newTeam != d.team {
		if newTeam == TeamNone {
			h.Quit(time, d.flag, d.powers, d.team)
			d.powers = PowerupNone
		} else {
			h.Switch(time, d.flag, d.powers, newTeam)
		}
		d.flag = FlagNone
		d.team = newTeam
	}
}
