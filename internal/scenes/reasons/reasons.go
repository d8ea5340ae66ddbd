// Package reasons implements the reason-cards scene: one reason at a time,
// each tagged with an icon variant resolved through the card lookup table.
package reasons

import (
	"fmt"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// Scene browses the deck's reasons.
type Scene struct {
	reasons []card.Reason
	current int
	done    bool

	screenW int
	screenH int
}

func init() {
	scene.Register("reasons", func(deck *card.Deck) scene.Scene {
		return New(deck.Reasons)
	})
}

// New creates a reasons scene.
func New(reasons []card.Reason) *Scene {
	return &Scene{reasons: reasons}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "reasons" }

// Title returns the display name.
func (s *Scene) Title() string { return "Reasons Why" }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.current = 0
	s.done = len(s.reasons) == 0
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if s.done {
		return core.StepResult{State: s.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		if s.current > 0 {
			s.current--
		}
	case in.Has(core.ActionRight), in.Has(core.ActionConfirm):
		if s.current < len(s.reasons)-1 {
			s.current++
		} else if in.Has(core.ActionConfirm) {
			s.done = true
		}
	case in.Has(core.ActionSkip):
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the current reason-card.
func (s *Scene) Render(dst *core.Screen) {
	if len(s.reasons) == 0 {
		return
	}
	r := s.reasons[s.current]
	icon := card.IconFor(r.Icon)

	cardW := core.Clamp(len([]rune(r.Text))+8, 24, s.screenW-6)
	frame := core.NewRect((s.screenW-cardW)/2, core.Max(1, s.screenH/2-3), cardW, 5)
	dst.DrawBoxColored(frame, icon.Color)

	dst.SetColored(frame.X+2, frame.Y+2, icon.Rune, icon.Color)
	dst.DrawText(frame.X+4, frame.Y+2, r.Text)

	header := fmt.Sprintf("Reason %d of %d", s.current+1, len(s.reasons))
	dst.DrawTextCenteredColored(frame.Y-2, header, core.ColorGray)
	dst.DrawTextCenteredColored(s.screenH-2, "←/→ browse · Enter next", core.ColorGray)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
