// Package survey implements the opening questionnaire scene.
package survey

import (
	"fmt"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

// Answer records one answered question.
type Answer struct {
	Question string
	Choice   string
}

// Scene walks the recipient through the deck's survey questions one at a
// time. Answers are collected for the platform to persist.
type Scene struct {
	questions []card.Question
	current   int
	cursor    int
	answers   []Answer
	done      bool

	screenW int
	screenH int
}

func init() {
	scene.Register("survey", func(deck *card.Deck) scene.Scene {
		return New(deck.Survey)
	})
}

// New creates a survey scene over the given questions.
func New(questions []card.Question) *Scene {
	return &Scene{questions: questions}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "survey" }

// Title returns the display name.
func (s *Scene) Title() string { return "A Few Questions" }

// Answers returns the collected answers in question order.
func (s *Scene) Answers() []Answer { return s.answers }

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.current = 0
	s.cursor = 0
	s.answers = s.answers[:0]
	s.done = len(s.questions) == 0
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if s.done {
		return core.StepResult{State: s.State()}
	}

	q := s.questions[s.current]

	switch {
	case in.Has(core.ActionUp):
		if s.cursor > 0 {
			s.cursor--
		}
	case in.Has(core.ActionDown):
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case in.Has(core.ActionConfirm):
		s.answers = append(s.answers, Answer{
			Question: q.Prompt,
			Choice:   q.Options[s.cursor],
		})
		s.current++
		s.cursor = 0
		if s.current >= len(s.questions) {
			s.done = true
		}
	case in.Has(core.ActionSkip):
		s.done = true
	}

	return core.StepResult{State: s.State()}
}

// Render draws the current question and its options.
func (s *Scene) Render(dst *core.Screen) {
	if len(s.questions) == 0 {
		return
	}
	idx := core.Min(s.current, len(s.questions)-1)
	q := s.questions[idx]

	top := core.Max(1, s.screenH/2-len(q.Options)/2-3)
	dst.DrawTextCenteredColored(top, fmt.Sprintf("Question %d of %d", idx+1, len(s.questions)), core.ColorGray)
	dst.DrawTextCentered(top+2, q.Prompt)

	for i, opt := range q.Options {
		y := top + 4 + i
		marker := "  "
		color := core.ColorDefault
		if i == s.cursor {
			marker = "> "
			color = core.ColorBrightCyan
		}
		dst.DrawTextCenteredColored(y, marker+opt, color)
	}

	dst.DrawTextCenteredColored(s.screenH-2, "↑/↓ choose · Enter answer", core.ColorGray)
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Done: s.done}
}
