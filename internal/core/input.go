package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space, Enter - start a round from the menu
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart the round
	ActionMenu           // Esc, M - return to the menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Axis is the held horizontal direction (-1, 0, 1), sampled every tick.
// Actions are edge-triggered presses that must be consumed by a single tick.
type InputFrame struct {
	Axis int

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetAxis sets the held direction, normalised to -1, 0 or 1.
func (f *InputFrame) SetAxis(d int) {
	switch {
	case d < 0:
		f.Axis = -1
	case d > 0:
		f.Axis = 1
	default:
		f.Axis = 0
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ClearActions drops all pressed actions but keeps the held axis.
func (f *InputFrame) ClearActions() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Axis = f.Axis
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
