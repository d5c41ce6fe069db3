package match

import (
	"fmt"
	"slices"

	"github.com/rejdeboer/tagpro-telemetry/pkg/decoder"
)

type TimelineEntry struct {
	Time   decoder.Time      `json:"time"`
	Kind   decoder.EventKind `json:"kind"`
	Player int               `json:"player"`
	Name   string            `json:"name"`
	Text   string            `json:"text"`
}

func (e TimelineEntry) String() string {
	return fmt.Sprintf("%v | %-12s | %s", e.Time, e.Name, e.Text)
}

// Timeline returns the events of every player ordered by time. Events at the
// same time keep player order, then the order they were emitted in.
func (m *Match) Timeline() ([]TimelineEntry, error) {
	var entries []TimelineEntry
	for _, p := range m.Players {
		l := &timelineLogger{match: m, player: p, entries: &entries}
		if err := p.Decode(l); err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(entries, func(a, b TimelineEntry) int {
		return int(a.Time) - int(b.Time)
	})
	return entries, nil
}

type timelineLogger struct {
	match   *Match
	player  *Player
	entries *[]TimelineEntry
}

func (l *timelineLogger) log(time decoder.Time, kind decoder.EventKind, format string, args ...any) {
	*l.entries = append(*l.entries, TimelineEntry{
		Time:   time,
		Kind:   kind,
		Player: l.player.index,
		Name:   l.player.Name,
		Text:   fmt.Sprintf(format, args...),
	})
}

func (l *timelineLogger) Join(time decoder.Time, newTeam decoder.Team) {
	l.log(time, decoder.EventJoin, "Join team %s", l.match.TeamName(newTeam))
}

func (l *timelineLogger) Quit(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, oldTeam decoder.Team) {
	l.log(time, decoder.EventQuit, "Leave team %s", l.match.TeamName(oldTeam))
}

func (l *timelineLogger) Switch(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, newTeam decoder.Team) {
	l.log(time, decoder.EventSwitch, "Switch to team %s", l.match.TeamName(newTeam))
}

func (l *timelineLogger) Grab(time decoder.Time, newFlag decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventGrab, "Grab %v", newFlag)
}

func (l *timelineLogger) Capture(time decoder.Time, oldFlag decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventCapture, "Capture %v", oldFlag)
}

func (l *timelineLogger) FlaglessCapture(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventFlaglessCapture, "Capture marsball")
}

func (l *timelineLogger) PowerUp(time decoder.Time, _ decoder.Flag, powerUp decoder.Powerup, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventPowerUp, "Power up %v", powerUp)
}

func (l *timelineLogger) DuplicatePowerup(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventDuplicatePowerup, "Grab duplicate powerup")
}

func (l *timelineLogger) PowerDown(time decoder.Time, _ decoder.Flag, powerDown decoder.Powerup, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventPowerDown, "Power down %v", powerDown)
}

func (l *timelineLogger) Return(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventReturn, "Return")
}

func (l *timelineLogger) Tag(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventTag, "Tag")
}

func (l *timelineLogger) Drop(time decoder.Time, oldFlag decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventDrop, "Drop %v", oldFlag)
}

func (l *timelineLogger) Pop(time decoder.Time, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventPop, "Pop")
}

func (l *timelineLogger) StartPrevent(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStartPrevent, "Start preventing")
}

func (l *timelineLogger) StopPrevent(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStopPrevent, "Stop preventing")
}

func (l *timelineLogger) StartButton(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStartButton, "Start buttoning")
}

func (l *timelineLogger) StopButton(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStopButton, "Stop buttoning")
}

func (l *timelineLogger) StartBlock(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStartBlock, "Start blocking")
}

func (l *timelineLogger) StopBlock(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventStopBlock, "Stop blocking")
}

func (l *timelineLogger) End(time decoder.Time, _ decoder.Flag, _ decoder.Powerup, _ decoder.Team) {
	l.log(time, decoder.EventEnd, "Game ends")
}
