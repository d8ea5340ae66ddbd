// Package timeline implements the photo/video timeline scene. Media files
// are referenced by path only; the terminal shows captions and filenames,
// never decoded content.
package timeline

import (
	"fmt"
	"path/filepath"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// Scene browses the deck's timeline moments left to right.
type Scene struct {
	moments []card.Moment
	current int
	done    bool

	screenW int
	screenH int
}

func init() {
	scene.Register("timeline", func(deck *card.Deck) scene.Scene {
		return New(deck.Timeline)
	})
}

// New creates a timeline scene over the given moments.
func New(moments []card.Moment) *Scene {
	return &Scene{moments: moments}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "timeline" }

// Title returns the display name.
func (s *Scene) Title() string { return "Our Timeline" }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.current = 0
	s.done = len(s.moments) == 0
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
	case in.Has(core.ActionRight):
		if s.current < len(s.moments)-1 {
			s.current++
		}
	case in.Has(core.ActionConfirm):
		if s.current < len(s.moments)-1 {
			s.current++
		} else {
			s.done = true
		}
	case in.Has(core.ActionSkip):
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the current moment inside a framed card.
func (s *Scene) Render(dst *core.Screen) {
	if len(s.moments) == 0 {
		return
	}
	m := s.moments[s.current]

	cardW := core.Clamp(s.screenW-10, 20, 60)
	cardH := 8 + len(m.Media)
	frame := core.NewRect((s.screenW-cardW)/2, core.Max(1, (s.screenH-cardH)/2), cardW, cardH)
	dst.DrawBoxColored(frame, core.ColorCyan)

	inner := frame.X + 2
	dst.DrawTextColored(inner, frame.Y+1, m.Date, core.ColorBrightCyan)
	dst.DrawText(inner, frame.Y+3, m.Caption)

	for i, path := range m.Media {
		label := filepath.Base(path)
		marker := "▣ "
		if filepath.Ext(path) == ".mp4" || filepath.Ext(path) == ".mov" {
			marker = "▶ "
		}
		dst.DrawTextColored(inner, frame.Y+5+i, marker+label, core.ColorGray)
	}

	// Position dots under the card
	dots := ""
	for i := range s.moments {
		if i == s.current {
			dots += "●"
		} else {
			dots += "○"
		}
	}
	dst.DrawTextCentered(frame.Bottom()+1, dots)

	counter := fmt.Sprintf("%d / %d", s.current+1, len(s.moments))
	dst.DrawTextCenteredColored(frame.Y-1, counter, core.ColorGray)
	dst.DrawTextCenteredColored(s.screenH-2, "←/→ browse · Enter next", core.ColorGray)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
