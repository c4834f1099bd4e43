package core

// Action represents a semantic input intent, abstracted from physical key presses.
// Front-ends translate keys into actions; the session applies them to the engine.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow
	ActionDown               // S, Down arrow
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionPause              // P - pause/unpause
	ActionToggleWalls        // T - wall collision on/off
	ActionDifficulty1        // 1 - Easy
	ActionDifficulty2        // 2 - Medium
	ActionDifficulty3        // 3 - Hard
	ActionDifficulty4        // 4 - Extreme
	ActionConfirm            // Enter - start episode from the menu
	ActionBack               // B, Escape - back to menu
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionToggleWalls:
		return "ToggleWalls"
	case ActionDifficulty1:
		return "Difficulty1"
	case ActionDifficulty2:
		return "Difficulty2"
	case ActionDifficulty3:
		return "Difficulty3"
	case ActionDifficulty4:
		return "Difficulty4"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// DifficultyIndex returns the zero-based difficulty slot selected by a
// Difficulty1..Difficulty4 action, or -1 for any other action.
func (a Action) DifficultyIndex() int {
	if a >= ActionDifficulty1 && a <= ActionDifficulty4 {
		return int(a - ActionDifficulty1)
	}
	return -1
}

// InputFrame collects the actions triggered between two frames of the driving loop.
// Order is preserved: direction changes are queued oldest first.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of actions recorded in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
