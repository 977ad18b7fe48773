package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up
	ActionDown              // S, Down arrow - move down
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionSprint            // Shift modifier held with a movement key
	ActionJump              // Space - jump
	ActionReset             // R - return to the level spawn
	ActionToggleInfo        // I - debug overlay and minimap
	ActionPause             // P - pause/unpause game
	ActionQuit              // Q, Esc, Ctrl+C - exit game/session
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
	case ActionSprint:
		return "Sprint"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionToggleInfo:
		return "ToggleInfo"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Continuous actions (movement, sprint, jump, reset) are present for every
// tick the key is held; toggles (info, pause) are present for one tick only.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
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
