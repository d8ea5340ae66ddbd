// Package unveil implements the surprise-reveal animation scene: the banner
// types itself out, confetti rains, and a confirm advances the card.
package unveil

import (
	"math/rand"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// ticksPerRune controls the banner typing speed.
const ticksPerRune = 3

// confettiCount is the number of simultaneously falling confetti cells.
const confettiCount = 40

var confettiRunes = []rune{'*', '+', '·', '✦', '❋'}

var confettiColors = []core.Color{
	core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightCyan,
	core.ColorBrightMagenta, core.ColorBrightGreen, core.ColorPink,
}

type particle struct {
	x, y  int
	speed int // rows per 4 ticks, 1..3
	r     rune
	color core.Color
}

// Scene is the unveil animation.
type Scene struct {
	banner   string
	subtitle string

	rng      *rand.Rand
	tick     uint64
	shown    int // banner runes revealed so far
	confetti []particle
	done     bool

	screenW int
	screenH int
}

func init() {
	scene.Register("unveil", func(deck *card.Deck) scene.Scene {
		return New(deck.Unveil)
	})
}

// New creates an unveil scene.
func New(cfg card.Unveil) *Scene {
	banner := cfg.Banner
	if banner == "" {
		banner = "SURPRISE!"
	}
	return &Scene{banner: banner, subtitle: cfg.Subtitle}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "unveil" }

// Title returns the display name.
func (s *Scene) Title() string { return "Surprise" }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.tick = 0
	s.shown = 0
	s.done = false

	s.confetti = make([]particle, confettiCount)
	for i := range s.confetti {
		s.confetti[i] = s.spawnParticle(true)
	}
}

func (s *Scene) spawnParticle(anywhere bool) particle {
	y := 0
	if anywhere {
		y = s.rng.Intn(core.Max(1, s.screenH))
	}
	return particle{
		x:     s.rng.Intn(core.Max(1, s.screenW)),
		y:     y,
		speed: 1 + s.rng.Intn(3),
		r:     confettiRunes[s.rng.Intn(len(confettiRunes))],
		color: confettiColors[s.rng.Intn(len(confettiColors))],
	}
}

// Step advances the animation by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if s.shown < len([]rune(s.banner)) {
		if s.tick%ticksPerRune == 0 {
			s.shown++
		}
	} else if in.Has(core.ActionConfirm) || in.Has(core.ActionSkip) {
		s.done = true
	}

	// Advance confetti; respawn particles that fall off the bottom.
	for i := range s.confetti {
		p := &s.confetti[i]
		if s.tick%uint64(5-p.speed) == 0 {
			p.y++
			// Slight horizontal drift
			if s.rng.Intn(4) == 0 {
				p.x += s.rng.Intn(3) - 1
			}
		}
		if p.y >= s.screenH {
			*p = s.spawnParticle(false)
		}
	}

	return core.StepResult{State: s.State()}
}

// Render draws the banner and confetti.
func (s *Scene) Render(dst *core.Screen) {
	for _, p := range s.confetti {
		dst.SetColored(p.x, p.y, p.r, p.color)
	}

	runes := []rune(s.banner)
	visible := string(runes[:core.Min(s.shown, len(runes))])
	mid := s.screenH / 2
	dst.DrawTextCenteredColored(mid-1, visible, core.ColorBrightYellow)

	if s.shown >= len(runes) {
		if s.subtitle != "" {
			dst.DrawTextCentered(mid+1, s.subtitle)
		}
		dst.DrawTextCenteredColored(s.screenH-2, "Enter to continue", core.ColorGray)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
