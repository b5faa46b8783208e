package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionFlip           // Space, Enter - start a run, flip ball direction while playing
	ActionPause          // P, Esc - pause/unpause
	ActionRestart        // R - re-initialize after game over (handled by the platform)
	ActionBack           // B - leave the game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlip:
		return "Flip"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// Edge-triggered actions are set once per key press and cleared by the
// platform after the tick consumes them.
type InputFrame uint16

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return 0
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	*f |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return f&(1<<a) != 0
}

// Unset removes a single action from the frame.
func (f *InputFrame) Unset(a Action) {
	if a == ActionNone {
		return
	}
	*f &^= 1 << a
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = 0
}
