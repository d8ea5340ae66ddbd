// Package candle implements the candle-blowing scene: a flickering flame
// that shrinks with every blow until it goes out.
package candle

import (
	"math/rand"
	"strings"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

const defaultBreaths = 5

var flameRunes = []rune{')', '(', '|'}

// Scene is the candle interaction.
type Scene struct {
	breaths int // blows needed to extinguish

	rng       *rand.Rand
	tick      uint64
	remaining int
	flicker   rune
	out       bool // flame extinguished
	done      bool

	screenW int
	screenH int
}

func init() {
	scene.Register("candle", func(deck *card.Deck) scene.Scene {
		return New(deck.Candle)
	})
}

// New creates a candle scene.
func New(cfg card.Candle) *Scene {
	breaths := cfg.Breaths
	if breaths <= 0 {
		breaths = defaultBreaths
	}
	return &Scene{breaths: breaths}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "candle" }

// Title returns the display name.
func (s *Scene) Title() string { return "Make a Wish" }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.tick = 0
	s.remaining = s.breaths
	s.flicker = flameRunes[0]
	s.out = false
	s.done = false
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if s.tick%4 == 0 {
		s.flicker = flameRunes[s.rng.Intn(len(flameRunes))]
	}

	blew := in.Has(core.ActionBlow)
	for _, ev := range in.Pointer {
		if ev.Kind == core.PointerPress {
			blew = true
		}
	}

	switch {
	case s.out:
		if in.Has(core.ActionConfirm) {
			s.done = true
		}
	case blew:
		s.remaining--
		if s.remaining <= 0 {
			s.out = true
		}
	}

	if in.Has(core.ActionSkip) {
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the cake, the candle, and the flame (or smoke).
func (s *Scene) Render(dst *core.Screen) {
	cx := s.screenW / 2
	base := s.screenH/2 + 3

	// Cake
	cakeW := 20
	dst.DrawTextCenteredColored(base, strings.Repeat("▂", cakeW), core.ColorPink)
	dst.DrawTextCenteredColored(base+1, strings.Repeat("█", cakeW), core.ColorPink)
	dst.DrawTextCenteredColored(base+2, strings.Repeat("█", cakeW), core.ColorMagenta)

	// Candle
	dst.SetColored(cx, base-1, '|', core.ColorWhite)
	dst.SetColored(cx, base-2, '|', core.ColorWhite)

	if s.out {
		// Smoke drifts while the scene waits for confirm.
		if (s.tick/8)%2 == 0 {
			dst.SetColored(cx, base-3, '~', core.ColorGray)
			dst.SetColored(cx+1, base-4, '~', core.ColorGray)
		} else {
			dst.SetColored(cx, base-3, '·', core.ColorGray)
			dst.SetColored(cx-1, base-4, '~', core.ColorGray)
		}
		dst.DrawTextCenteredColored(base-7, "The wish is made.", core.ColorBrightYellow)
		dst.DrawTextCenteredColored(s.screenH-2, "Enter to continue", core.ColorGray)
		return
	}

	// Flame size scales with remaining strength.
	height := 1 + (s.remaining*2)/core.Max(1, s.breaths)
	for i := 0; i < height; i++ {
		color := core.ColorBrightYellow
		if i == height-1 {
			color = core.ColorOrange
		}
		dst.SetColored(cx, base-3-i, s.flicker, color)
	}

	dst.DrawTextCenteredColored(base-8, "Blow out the candle!", core.ColorDefault)
	dst.DrawTextCenteredColored(s.screenH-2, "B or click to blow", core.ColorGray)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}

// Extinguished reports whether the flame is out.
func (s *Scene) Extinguished() bool { return s.out }
