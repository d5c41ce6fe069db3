package decoder

// PlayerEventHandler consumes the events of one player's stream, in stream
// order. Embed NopHandler to implement only the events of interest.
type PlayerEventHandler interface {
	Join(time Time, newTeam Team)
	Quit(time Time, oldFlag Flag, oldPowers Powerup, oldTeam Team)
	Switch(time Time, oldFlag Flag, powers Powerup, newTeam Team)
	Grab(time Time, newFlag Flag, powers Powerup, team Team)
	Capture(time Time, oldFlag Flag, powers Powerup, team Team)
	FlaglessCapture(time Time, flag Flag, powers Powerup, team Team)
	PowerUp(time Time, flag Flag, powerUp Powerup, newPowers Powerup, team Team)
	DuplicatePowerup(time Time, flag Flag, powers Powerup, team Team)
	PowerDown(time Time, flag Flag, powerDown Powerup, newPowers Powerup, team Team)
	Return(time Time, flag Flag, powers Powerup, team Team)
	Tag(time Time, flag Flag, powers Powerup, team Team)
	Drop(time Time, oldFlag Flag, powers Powerup, team Team)
	Pop(time Time, powers Powerup, team Team)
	StartPrevent(time Time, flag Flag, powers Powerup, team Team)
	StopPrevent(time Time, flag Flag, powers Powerup, team Team)
	StartButton(time Time, flag Flag, powers Powerup, team Team)
	StopButton(time Time, flag Flag, powers Powerup, team Team)
	StartBlock(time Time, flag Flag, powers Powerup, team Team)
	StopBlock(time Time, flag Flag, powers Powerup, team Team)
	End(time Time, flag Flag, powers Powerup, team Team)
}

type NopHandler struct{}

func (NopHandler) Join(Time, Team) {}
func (NopHandler) Quit(Time, Flag, Powerup, Team) {}
func (NopHandler) Switch(Time, Flag, Powerup, Team) {}
func (NopHandler) Grab(Time, Flag, Powerup, Team) {}
func (NopHandler) Capture(Time, Flag, Powerup, Team) {}
func (NopHandler) FlaglessCapture(Time, Flag, Powerup, Team) {}
func (NopHandler) PowerUp(Time, Flag, Powerup, Powerup, Team) {}
func (NopHandler) DuplicatePowerup(Time, Flag, Powerup, Team) {}
func (NopHandler) PowerDown(Time, Flag, Powerup, Powerup, Team) {}
func (NopHandler) Return(Time, Flag, Powerup, Team) {}
func (NopHandler) Tag(Time, Flag, Powerup, Team) {}
func (NopHandler) Drop(Time, Flag, Powerup, Team) {}
func (NopHandler) Pop(Time, Powerup, Team) {}
func (NopHandler) StartPrevent(Time, Flag, Powerup, Team) {}
func (NopHandler) StopPrevent(Time, Flag, Powerup, Team) {}
func (NopHandler) StartButton(Time, Flag, Powerup, Team) {}
func (NopHandler) StopButton(Time, Flag, Powerup, Team) {}
func (NopHandler) StartBlock(Time, Flag, Powerup, Team) {}
func (NopHandler) StopBlock(Time, Flag, Powerup, Team) {}
func (NopHandler) End(Time, Flag, Powerup, Team) {}

// Handlers fans every event out to each handler in order.
type Handlers []PlayerEventHandler

func (hs Handlers) Join(time Time, newTeam Team) {
	for _, h := range hs {
		h.Join(time, newTeam)
	}
}

func (hs Handlers) Quit(time Time, oldFlag Flag, oldPowers Powerup, oldTeam Team) {
	for _, h := range hs {
		h.Quit(time, oldFlag, oldPowers, oldTeam)
	}
}

func (hs Handlers) Switch(time Time, oldFlag Flag, powers Powerup, newTeam Team) {
	for _, h := range hs {
		h.Switch(time, oldFlag, powers, newTeam)
	}
}

func (hs Handlers) Grab(time Time, newFlag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.Grab(time, newFlag, powers, team)
	}
}

func (hs Handlers) Capture(time Time, oldFlag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.Capture(time, oldFlag, powers, team)
	}
}

func (hs Handlers) FlaglessCapture(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.FlaglessCapture(time, flag, powers, team)
	}
}

func (hs Handlers) PowerUp(time Time, flag Flag, powerUp Powerup, newPowers Powerup, team Team) {
	for _, h := range hs {
		h.PowerUp(time, flag, powerUp, newPowers, team)
	}
}

func (hs Handlers) DuplicatePowerup(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.DuplicatePowerup(time, flag, powers, team)
	}
}

func (hs Handlers) PowerDown(time Time, flag Flag, powerDown Powerup, newPowers Powerup, team Team) {
	for _, h := range hs {
		h.PowerDown(time, flag, powerDown, newPowers, team)
	}
}

func (hs Handlers) Return(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.Return(time, flag, powers, team)
	}
}

func (hs Handlers) Tag(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.Tag(time, flag, powers, team)
	}
}

func (hs Handlers) Drop(time Time, oldFlag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.Drop(time, oldFlag, powers, team)
	}
}

func (hs Handlers) Pop(time Time, powers Powerup, team Team) {
	for _, h := range hs {
		h.Pop(time, powers, team)
	}
}

func (hs Handlers) StartPrevent(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StartPrevent(time, flag, powers, team)
	}
}

func (hs Handlers) StopPrevent(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StopPrevent(time, flag, powers, team)
	}
}

func (hs Handlers) StartButton(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StartButton(time, flag, powers, team)
	}
}

func (hs Handlers) StopButton(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StopButton(time, flag, powers, team)
	}
}

func (hs Handlers) StartBlock(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StartBlock(time, flag, powers, team)
	}
}

func (hs Handlers) StopBlock(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.StopBlock(time, flag, powers, team)
	}
}

func (hs Handlers) End(time Time, flag Flag, powers Powerup, team Team) {
	for _, h := range hs {
		h.End(time, flag, powers, team)
	}
}
