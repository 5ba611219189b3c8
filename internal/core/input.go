package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents such as "rotate" and never see raw keys.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // Left arrow - shift piece left
	ActionMoveRight          // Right arrow - shift piece right
	ActionSoftDrop           // Down arrow - move piece down one row
	ActionHardDrop           // Space - drop piece to its resting row
	ActionRotateCW           // W, X, Up arrow - rotate clockwise
	ActionRotateCCW          // Q, Z - rotate counter-clockwise
	ActionHold               // Tab, C - swap with the hold slot
	ActionNewGame            // N - start a new game
	ActionPauseToggle        // Enter, P - start, pause or resume
	ActionBack               // Escape - go back to menu
	ActionQuit               // Ctrl+C - exit game/session
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionRotateCW:    "RotateCW",
	ActionRotateCCW:   "RotateCCW",
	ActionHold:        "Hold",
	ActionNewGame:     "NewGame",
	ActionPauseToggle: "PauseToggle",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered during one simulation tick,
// in the order they arrived. The same action may appear more than once
// (for example a held arrow key repeating faster than the tick rate).
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
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

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
