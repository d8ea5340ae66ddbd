package candle

import (
	"testing"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
)

func blowFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionBlow)
	return in
}

func TestBlowUntilOut(t *testing.T) {
	s := New(card.Candle{Breaths: 3})
	s.Reset(core.DefaultConfig())

	for i := 0; i < 2; i++ {
		s.Step(blowFrame())
		if s.Extinguished() {
			t.Fatalf("flame out after %d of 3 breaths", i+1)
		}
	}

	s.Step(blowFrame())
	if !s.Extinguished() {
		t.Fatal("flame should be out after 3 breaths")
	}
	if s.State().Done {
		t.Error("scene should wait for confirm after the flame goes out")
	}

	// Extra blows after extinguishing change nothing.
	s.Step(blowFrame())
	if s.State().Done {
		t.Error("blowing at a dead flame should not finish the scene")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	result := s.Step(in)
	if !result.State.Done {
		t.Error("confirm after extinguishing should finish the scene")
	}
}

func TestClickCountsAsBlow(t *testing.T) {
	s := New(card.Candle{Breaths: 1})
	s.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Pos: core.Point{X: 10, Y: 10}, Kind: core.PointerPress})
	s.Step(in)

	if !s.Extinguished() {
		t.Error("a click should count as a breath")
	}
}

func TestDefaultBreaths(t *testing.T) {
	s := New(card.Candle{})
	s.Reset(core.DefaultConfig())

	for i := 0; i < defaultBreaths-1; i++ {
		s.Step(blowFrame())
	}
	if s.Extinguished() {
		t.Error("flame should survive one breath short of the default")
	}
	s.Step(blowFrame())
	if !s.Extinguished() {
		t.Error("flame should go out at the default breath count")
	}
}

func TestConfirmBeforeOutDoesNothing(t *testing.T) {
	s := New(card.Candle{Breaths: 2})
	s.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	result := s.Step(in)
	if result.State.Done {
		t.Error("confirm must not finish the scene while the flame burns")
	}
}
