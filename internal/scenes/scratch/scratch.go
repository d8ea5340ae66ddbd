// Package scratch implements the scratch-to-reveal card scene. Dragging the
// pointer (or moving a keyboard cursor) erases the foil covering a hidden
// message; past half cleared the card reveals itself fully.
package scratch

import (
	"fmt"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/reveal"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// cellStampRadius is the default erasing radius in terminal cells. The
// pixel-sized reveal default is far too coarse for a character grid.
const cellStampRadius = 2

const foilRune = '▒'

// Scene is the scratch-card interaction.
type Scene struct {
	cfg card.Scratch

	surface  *reveal.Surface
	frame    core.Rect // card outline on screen
	inner    core.Rect // scratchable area
	cursor   core.Point
	revealed bool
	done     bool

	screenW int
	screenH int
}

func init() {
	scene.Register("scratch", func(deck *card.Deck) scene.Scene {
		return New(deck.Scratch)
	})
}

// New creates a scratch scene.
func New(cfg card.Scratch) *Scene {
	if cfg.Message == "" {
		cfg.Message = "You found the secret!"
	}
	return &Scene{cfg: cfg}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "scratch" }

// Title returns the display name.
func (s *Scene) Title() string { return "Scratch Card" }

// Revealed reports whether the hidden message has been fully revealed.
func (s *Scene) Revealed() bool { return s.revealed }

// PercentCleared exposes the surface's cleared fraction for the platform.
func (s *Scene) PercentCleared() float64 {
	if s.surface == nil {
		return 0
	}
	return s.surface.PercentCleared()
}

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.layout()

	surfCfg := reveal.DefaultConfig()
	surfCfg.StampRadius = cellStampRadius
	if s.cfg.StampRadius > 0 {
		surfCfg.StampRadius = s.cfg.StampRadius
	}
	if s.cfg.RevealOver > 0 {
		surfCfg.CompleteOver = s.cfg.RevealOver
	}

	s.revealed = false
	s.done = false
	s.surface = reveal.NewSurface(s.inner.W, s.inner.H, surfCfg, func() {
		s.revealed = true
	})
	s.cursor = s.inner.Center()
}

// layout positions the card frame for the current screen size.
func (s *Scene) layout() {
	cardW := core.Clamp(len([]rune(s.cfg.Message))+10, 30, s.screenW-6)
	cardH := 9
	s.frame = core.NewRect((s.screenW-cardW)/2, core.Max(1, (s.screenH-cardH)/2), cardW, cardH)
	s.inner = core.NewRect(s.frame.X+1, s.frame.Y+1, s.frame.W-2, s.frame.H-2)
}

// Resize re-fits the card to a new screen and re-covers the surface. A
// completed card stays completed; the reveal surface enforces that itself.
func (s *Scene) Resize(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.layout()
	s.surface.Resize(s.inner.W, s.inner.H)
	s.cursor = s.inner.Center()
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if s.done {
		return core.StepResult{State: s.State()}
	}

	// Every drag event paints; rapid events while the button is held all
	// apply, which is what makes it feel like scratching.
	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress && ev.Kind != core.PointerDrag {
			continue
		}
		if s.inner.Contains(ev.Pos.X, ev.Pos.Y) {
			s.surface.Paint(ev.Pos.X-s.inner.X, ev.Pos.Y-s.inner.Y)
			s.cursor = ev.Pos
		}
	}

	// Keyboard fallback: arrows steer a scratch cursor that erases as it
	// moves.
	moved := false
	switch {
	case in.Has(core.ActionUp):
		s.cursor.Y--
		moved = true
	case in.Has(core.ActionDown):
		s.cursor.Y++
		moved = true
	case in.Has(core.ActionLeft):
		s.cursor.X--
		moved = true
	case in.Has(core.ActionRight):
		s.cursor.X++
		moved = true
	}
	if moved {
		s.cursor.X = core.Clamp(s.cursor.X, s.inner.X, s.inner.Right()-1)
		s.cursor.Y = core.Clamp(s.cursor.Y, s.inner.Y, s.inner.Bottom()-1)
		s.surface.Paint(s.cursor.X-s.inner.X, s.cursor.Y-s.inner.Y)
	}

	if in.Has(core.ActionConfirm) && s.revealed {
		s.done = true
	}
	if in.Has(core.ActionSkip) {
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the foil with the message showing through cleared cells.
func (s *Scene) Render(dst *core.Screen) {
	dst.DrawBoxColored(s.frame, core.ColorGold)
	dst.DrawTextCenteredColored(s.frame.Y-2, "Scratch to reveal", core.ColorDefault)

	message := s.messageCells()

	for y := 0; y < s.inner.H; y++ {
		for x := 0; x < s.inner.W; x++ {
			sx, sy := s.inner.X+x, s.inner.Y+y
			if !s.revealed && s.surface.Covered(x, y) {
				dst.SetColored(sx, sy, foilRune, core.ColorGray)
				continue
			}
			if r, ok := message[core.Point{X: x, Y: y}]; ok {
				dst.SetColored(sx, sy, r, core.ColorBrightYellow)
			}
		}
	}

	if s.revealed {
		dst.DrawTextCenteredColored(s.frame.Bottom()+1, "Enter to continue", core.ColorGray)
	} else {
		pct := int(s.surface.PercentCleared() * 100)
		footer := fmt.Sprintf("drag to scratch · %d%%", pct)
		dst.DrawTextCenteredColored(s.screenH-2, footer, core.ColorGray)
	}
}

// messageCells lays the hidden message out in the middle of the inner area.
func (s *Scene) messageCells() map[core.Point]rune {
	runes := []rune(s.cfg.Message)
	cells := make(map[core.Point]rune, len(runes))
	y := s.inner.H / 2
	x := core.Max(0, (s.inner.W-len(runes))/2)
	for i, r := range runes {
		if x+i >= s.inner.W {
			break
		}
		cells[core.Point{X: x + i, Y: y}] = r
	}
	return cells
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
