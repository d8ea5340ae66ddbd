package core

// Action represents a semantic scene action, abstracted from physical key
// presses. This allows scenes to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move selection up
	ActionDown           // S, Down arrow - move selection down
	ActionLeft           // A, Left arrow - previous entry
	ActionRight          // D, Right arrow - next entry
	ActionConfirm        // Enter, Space - confirm / advance
	ActionBlow           // B - blow at the candle
	ActionBack           // Esc - go back
	ActionSkip           // Tab - skip the current scene
	ActionQuit           // Q, Ctrl+C - exit session
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
	case ActionConfirm:
		return "Confirm"
	case ActionBlow:
		return "Blow"
	case ActionBack:
		return "Back"
	case ActionSkip:
		return "Skip"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer event delivered to a scene.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerDrag // motion with the primary button held
	PointerRelease
)

// PointerEvent is a single mouse event in screen cell coordinates.
type PointerEvent struct {
	Pos  Point
	Kind PointerKind
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions and pointer events that arrived during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds the pointer events delivered this frame, in arrival
	// order. Continuous drags produce one event per motion report.
	Pointer []PointerEvent
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
