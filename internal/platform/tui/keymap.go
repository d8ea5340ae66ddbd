package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoskres/tui-keepsake/internal/core"
)

// KeyMapper translates Bubble Tea input messages to scene actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a scene action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBlow, false
	case "esc":
		return core.ActionBack, false
	case "tab":
		return core.ActionSkip, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event in cell coordinates.
// Returns false for events scenes don't care about (wheel, secondary buttons).
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	pos := core.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Pos: pos, Kind: core.PointerPress}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Pos: pos, Kind: core.PointerRelease}, true
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			return core.PointerEvent{Pos: pos, Kind: core.PointerDrag}, true
		}
		return core.PointerEvent{Pos: pos, Kind: core.PointerMove}, true
	}

	return core.PointerEvent{}, false
}

// MapMouseToFrame appends the mapped pointer event to the frame, if any.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if ev, ok := km.MapMouse(msg); ok {
		frame.AddPointer(ev)
	}
}
