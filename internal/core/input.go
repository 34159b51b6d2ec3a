package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw keys to actions so the simulation never
// sees key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionPause          // "1" - pause the simulation
	ActionResume         // "2" - resume the simulation
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It distinguishes actions whose key is held down during the tick
// (movement) from actions triggered on the first frame of a press
// (pause/resume). In a terminal, key-repeat events stand in for "held";
// the platform fills both sets from the same key messages, while tests
// set them independently.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action's key as held during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as freshly pressed this frame.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
}

// Held reports whether the action's key is held during this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action was freshly pressed this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}
