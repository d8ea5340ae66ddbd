package quiz

import (
	"testing"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
)

func testScene() *Scene {
	s := New(card.Quiz{Prompt: "Good birthday?", Yes: "Yes!", No: "No"})
	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 40
	cfg.Seed = 42
	s.Reset(cfg)
	return s
}

func pointerFrame(kind core.PointerKind, x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Pos: core.Point{X: x, Y: y}, Kind: kind})
	return in
}

func TestYesClickFinishes(t *testing.T) {
	s := testScene()

	c := s.yesRect.Center()
	result := s.Step(pointerFrame(core.PointerPress, c.X, c.Y))
	if !result.State.Done {
		t.Error("clicking yes should finish the scene")
	}
}

func TestEnterMeansYes(t *testing.T) {
	s := testScene()

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	result := s.Step(in)
	if !result.State.Done {
		t.Error("Enter should finish the scene")
	}
}

func TestNoButtonEvades(t *testing.T) {
	s := testScene()
	before := s.noRect

	// Creep the pointer right up to the no button's center.
	c := before.Center()
	s.Step(pointerFrame(core.PointerMove, c.X-2, c.Y))

	after := s.noRect
	if after == before {
		t.Fatal("no button should relocate when the pointer gets close")
	}
	if after.W != before.W || after.H != before.H {
		t.Errorf("relocation changed button size: %dx%d -> %dx%d", before.W, before.H, after.W, after.H)
	}

	// The new spot keeps clear of the dialog/yes area and the pointer.
	if after.Intersects(s.dialog) || after.Intersects(s.yesRect) {
		t.Errorf("relocated button %+v overlaps the protected dialog area", after)
	}
	if d := after.Center().Dist(core.Point{X: c.X - 2, Y: c.Y}); d <= cellPointerDist {
		t.Errorf("relocated center distance %f to pointer, want > %d", d, cellPointerDist)
	}
}

func TestDistantPointerDoesNotMoveButton(t *testing.T) {
	s := testScene()
	before := s.noRect

	s.Step(pointerFrame(core.PointerMove, 1, 1))

	if s.noRect != before {
		t.Error("distant pointer must not relocate the no button")
	}
}

func TestNoClickCountsButNeverFinishes(t *testing.T) {
	s := testScene()

	c := s.noRect.Center()
	result := s.Step(pointerFrame(core.PointerPress, c.X, c.Y))
	if result.State.Done {
		t.Error("clicking no must not finish the scene")
	}
	if s.NoClicks() != 1 {
		t.Errorf("NoClicks() = %d, expected 1", s.NoClicks())
	}
}

func TestRelocationRateLimited(t *testing.T) {
	s := testScene()

	// First approach moves the button.
	c := s.noRect.Center()
	s.Step(pointerFrame(core.PointerMove, c.X-1, c.Y))
	first := s.noRect

	// The very next tick is well inside the 120ms cooldown at 30 ticks/s,
	// so chasing the button must not move it again.
	c = first.Center()
	s.Step(pointerFrame(core.PointerMove, c.X-1, c.Y))
	if s.noRect != first {
		t.Error("second relocation within the cooldown should be dropped")
	}

	// After enough ticks have passed the button moves again.
	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame())
	}
	c = first.Center()
	s.Step(pointerFrame(core.PointerMove, c.X-1, c.Y))
	if s.noRect == first {
		t.Error("relocation after the cooldown should be honored")
	}
}
