package core

// Action represents a semantic game action, abstracted from physical key
// presses. The simulation only cares about the four thrust directions and
// Abandon; the remaining actions are consumed by the platform layer.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, numpad 8 - thrust up
	ActionDown           // Down arrow, numpad 2 - thrust down
	ActionLeft           // Left arrow, numpad 4 - thrust left
	ActionRight          // Right arrow, numpad 6 - thrust right
	ActionAbandon        // Escape - leave the current attempt
	ActionConfirm        // Enter - confirm selection in menus and overlays
	ActionRestart        // R - retry the level after a terminal outcome
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAbandon:
		return "Abandon"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick: the set
// of logical directions currently held plus any discrete actions triggered
// this frame. The simulation is agnostic to the physical device behind it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Thrusting reports whether any directional action is held.
func (f InputFrame) Thrusting() bool {
	return f.Has(ActionUp) || f.Has(ActionDown) || f.Has(ActionLeft) || f.Has(ActionRight)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
