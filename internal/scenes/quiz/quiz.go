// Package quiz implements the yes/no choice scene. The "no" button is an
// evasive target: whenever the pointer gets close it hops to a random spot
// that avoids the question dialog and keeps its distance from the pointer.
package quiz

import (
	"time"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/evade"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// Terminal-cell tuning for the relocator. The evade defaults are sized for
// pixel viewports; a terminal cell is roughly an order of magnitude coarser.
const (
	cellMargin      = 1
	cellPadding     = 1
	cellPointerDist = 8
	cellProximity   = 8
)

// Scene asks the deck's quiz question.
type Scene struct {
	cfg  card.Quiz
	seed int64

	tick     uint64
	tickRate int
	epoch    time.Time

	tracker  *evade.Tracker
	dialog   core.Rect
	yesRect  core.Rect
	noRect   core.Rect
	noClicks int
	done     bool

	screenW int
	screenH int
}

func init() {
	scene.Register("quiz", func(deck *card.Deck) scene.Scene {
		return New(deck.Quiz)
	})
}

// New creates a quiz scene.
func New(cfg card.Quiz) *Scene {
	if cfg.Prompt == "" {
		cfg.Prompt = "Having a good time?"
	}
	if cfg.Yes == "" {
		cfg.Yes = "Yes!"
	}
	if cfg.No == "" {
		cfg.No = "No"
	}
	return &Scene{cfg: cfg}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "quiz" }

// Title returns the display name.
func (s *Scene) Title() string { return "One Question" }

// NoClicks returns how many times the recipient managed to hit "no".
func (s *Scene) NoClicks() int { return s.noClicks }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.seed = cfg.Seed
	s.tickRate = core.Max(1, cfg.TickRate)
	s.tick = 0
	s.epoch = time.Unix(0, 0)
	s.noClicks = 0
	s.done = false

	// Dialog centered; buttons side by side beneath the prompt.
	dialogW := core.Clamp(len([]rune(s.cfg.Prompt))+8, 30, s.screenW-4)
	s.dialog = core.NewRect((s.screenW-dialogW)/2, core.Max(1, s.screenH/2-4), dialogW, 4)

	yesW := len([]rune(s.cfg.Yes)) + 4
	noW := len([]rune(s.cfg.No)) + 4
	buttonY := s.dialog.Bottom() + 1
	s.yesRect = core.NewRect(s.screenW/2-yesW-2, buttonY, yesW, 3)
	s.noRect = core.NewRect(s.screenW/2+2, buttonY, noW, 3)

	relCfg := evade.DefaultConfig()
	relCfg.Margin = cellMargin
	relCfg.Padding = cellPadding
	relCfg.MinPointerDist = cellPointerDist
	relCfg.Proximity = cellProximity
	relCfg.Now = s.now
	s.tracker = evade.NewTracker(evade.New(relCfg, s.seed))
}

// now derives a deterministic clock from the tick counter so the relocation
// cooldown behaves the same in tests and replays.
func (s *Scene) now() time.Time {
	dt := time.Second / time.Duration(s.tickRate)
	return s.epoch.Add(time.Duration(s.tick) * dt)
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	s.tick++
	if s.done {
		return core.StepResult{State: s.State()}
	}

	vp := evade.Viewport{W: s.screenW, H: s.screenH}
	// The dialog and the yes button together form the protected region the
	// evasive no button must never cover.
	protected := core.NewRect(
		core.Min(s.dialog.X, s.yesRect.X),
		s.dialog.Y,
		core.Max(s.dialog.Right(), s.yesRect.Right())-core.Min(s.dialog.X, s.yesRect.X),
		s.yesRect.Bottom()-s.dialog.Y,
	)

	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerMove, core.PointerDrag:
			if rect, moved := s.tracker.PointerMoved(vp, s.noRect, protected, ev.Pos); moved {
				s.noRect = rect
			}
		case core.PointerPress:
			switch {
			case s.yesRect.Contains(ev.Pos.X, ev.Pos.Y):
				s.done = true
			case s.noRect.Contains(ev.Pos.X, ev.Pos.Y):
				s.noClicks++
			}
		}
	}

	// Keyboard path: Enter means yes.
	if in.Has(core.ActionConfirm) || in.Has(core.ActionSkip) {
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the dialog and both buttons.
func (s *Scene) Render(dst *core.Screen) {
	dst.DrawBoxColored(s.dialog, core.ColorCyan)
	dst.DrawTextCentered(s.dialog.Y+2, s.cfg.Prompt)

	drawButton(dst, s.yesRect, s.cfg.Yes, core.ColorBrightGreen)
	drawButton(dst, s.noRect, s.cfg.No, core.ColorBrightRed)

	if s.noClicks > 0 {
		dst.DrawTextCenteredColored(s.noRect.Bottom()+1, "...are you sure about that?", core.ColorGray)
	}
	dst.DrawTextCenteredColored(s.screenH-2, "click a button · Enter = yes", core.ColorGray)
}

func drawButton(dst *core.Screen, r core.Rect, label string, c core.Color) {
	dst.DrawBoxColored(r, c)
	dst.DrawTextColored(r.X+2, r.Y+1, label, c)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
