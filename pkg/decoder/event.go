package decoder

type EventKind uint8

const (
	EventJoin EventKind = iota
	EventQuit
	EventSwitch
	EventGrab
	EventCapture
	EventFlaglessCapture
	EventPowerUp
	EventDuplicatePowerup
	EventPowerDown
	EventReturn
	EventTag
	EventDrop
	EventPop
	EventStartPrevent
	EventStopPrevent
	EventStartButton
	EventStopButton
	EventStartBlock
	EventStopBlock
	EventEnd
)

var eventKindNames = [...]string{
	EventJoin:             "join",
	EventQuit:             "quit",
	EventSwitch:           "switch",
	EventGrab:             "grab",
	EventCapture:          "capture",
	EventFlaglessCapture:  "flagless_capture",
	EventPowerUp:          "powerup",
	EventDuplicatePowerup: "duplicate_powerup",
	EventPowerDown:        "powerdown",
	EventReturn:           "return",
	EventTag:              "tag",
	EventDrop:             "drop",
	EventPop:              "pop",
	EventStartPrevent:     "start_prevent",
	EventStopPrevent:      "stop_prevent",
	EventStartButton:      "start_button",
	EventStopButton:       "stop_button",
	EventStartBlock:       "start_block",
	EventStopBlock:        "stop_block",
	EventEnd:              "end",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one decoded player event. Flag, Powers and Team carry the
// arguments the matching PlayerEventHandler method receives; Powerup is only
// set for EventPowerUp and EventPowerDown.
type Event struct {
	Kind    EventKind `json:"kind"`
	Time    Time      `json:"time"`
	Team    Team      `json:"team"`
	Flag    Flag      `json:"flag"`
	Powers  Powerup   `json:"powers"`
	Powerup Powerup   `json:"powerup,omitempty"`
}

// Recorder is a PlayerEventHandler that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) add(e Event) {
	r.Events = append(r.Events, e)
}

func (r *Recorder) Join(time Time, newTeam Team) {
	r.add(Event{Kind: EventJoin, Time: time, Team: newTeam})
}

func (r *Recorder) Quit(time Time, oldFlag Flag, oldPowers Powerup, oldTeam Team) {
	r.add(Event{Kind: EventQuit, Time: time, Flag: oldFlag, Powers: oldPowers, Team: oldTeam})
}

func (r *Recorder) Switch(time Time, oldFlag Flag, powers Powerup, newTeam Team) {
	r.add(Event{Kind: EventSwitch, Time: time, Flag: oldFlag, Powers: powers, Team: newTeam})
}

func (r *Recorder) Grab(time Time, newFlag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventGrab, Time: time, Flag: newFlag, Powers: powers, Team: team})
}

func (r *Recorder) Capture(time Time, oldFlag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventCapture, Time: time, Flag: oldFlag, Powers: powers, Team: team})
}

func (r *Recorder) FlaglessCapture(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventFlaglessCapture, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) PowerUp(time Time, flag Flag, powerUp Powerup, newPowers Powerup, team Team) {
	r.add(Event{Kind: EventPowerUp, Time: time, Flag: flag, Powerup: powerUp, Powers: newPowers, Team: team})
}

func (r *Recorder) DuplicatePowerup(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventDuplicatePowerup, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) PowerDown(time Time, flag Flag, powerDown Powerup, newPowers Powerup, team Team) {
	r.add(Event{Kind: EventPowerDown, Time: time, Flag: flag, Powerup: powerDown, Powers: newPowers, Team: team})
}

func (r *Recorder) Return(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventReturn, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) Tag(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventTag, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) Drop(time Time, oldFlag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventDrop, Time: time, Flag: oldFlag, Powers: powers, Team: team})
}

func (r *Recorder) Pop(time Time, powers Powerup, team Team) {
	r.add(Event{Kind: EventPop, Time: time, Powers: powers, Team: team})
}

func (r *Recorder) StartPrevent(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStartPrevent, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) StopPrevent(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStopPrevent, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) StartButton(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStartButton, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) StopButton(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStopButton, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) StartBlock(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStartBlock, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) StopBlock(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventStopBlock, Time: time, Flag: flag, Powers: powers, Team: team})
}

func (r *Recorder) End(time Time, flag Flag, powers Powerup, team Team) {
	r.add(Event{Kind: EventEnd, Time: time, Flag: flag, Powers: powers, Team: team})
}
