// Package finale implements the closing slide.
package finale

import (
	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// Scene shows the deck's farewell message.
type Scene struct {
	cfg       card.Finale
	recipient string
	done      bool

	screenW int
	screenH int
}

func init() {
	scene.Register("finale", func(deck *card.Deck) scene.Scene {
		return New(deck.Finale, deck.Recipient)
	})
}

// New creates a finale scene.
func New(cfg card.Finale, recipient string) *Scene {
	if cfg.Message == "" {
		cfg.Message = "Thank you for opening this."
	}
	return &Scene{cfg: cfg, recipient: recipient}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "finale" }

// Title returns the display name.
func (s *Scene) Title() string { return "The End" }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.done = false
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionSkip) {
		s.done = true
	}
	return core.StepResult{State: s.State()}
}

// Render draws the farewell.
func (s *Scene) Render(dst *core.Screen) {
	mid := s.screenH / 2
	if s.recipient != "" {
		dst.DrawTextCenteredColored(mid-2, "Dear "+s.recipient+",", core.ColorBrightCyan)
	}
	dst.DrawTextCentered(mid, s.cfg.Message)
	if s.cfg.Signature != "" {
		dst.DrawTextCenteredColored(mid+2, "— "+s.cfg.Signature, core.ColorPink)
	}
	dst.DrawTextCenteredColored(s.screenH-2, "Enter to close", core.ColorGray)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
