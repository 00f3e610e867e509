package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows modes to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, Q - walk left
	ActionRight          // Right arrow, D - walk right
	ActionUp             // Up arrow, W, K - menu up
	ActionDown           // Down arrow, S, J - menu down
	ActionJump           // Space, Up, Z - jump
	ActionRecall         // Shift, R - recall the javelin
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - back / pause
	ActionQuit           // Ctrl+C - exit the application
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionRecall:
		return "Recall"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions currently held down.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// EventKind discriminates discrete input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventMouseDown
	EventMouseMove
	EventQuit
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// Event is a discrete input event that happened since the previous tick.
type Event struct {
	Kind   EventKind
	Action Action      // For EventKeyDown
	Button MouseButton // For EventMouseDown
	Pos    Vec         // Screen position in pixels, for mouse events
}

// KeyDown builds a key-down event for an action.
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// MouseDown builds a mouse-down event at a screen position.
func MouseDown(b MouseButton, x, y float64) Event {
	return Event{Kind: EventMouseDown, Button: b, Pos: V(x, y)}
}

// MouseMove builds a pointer motion event.
func MouseMove(x, y float64) Event {
	return Event{Kind: EventMouseMove, Pos: V(x, y)}
}

// Input is the per-tick snapshot handed to modes: held actions plus the
// discrete events collected since the previous tick.
type Input struct {
	Held   InputFrame
	Events []Event
}

// NewInput creates an empty input snapshot.
func NewInput() Input {
	return Input{Held: NewInputFrame()}
}

// Push appends a discrete event.
func (in *Input) Push(e Event) {
	in.Events = append(in.Events, e)
}
