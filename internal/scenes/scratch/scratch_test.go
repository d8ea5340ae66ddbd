package scratch

import (
	"testing"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
)

func testScene() *Scene {
	s := New(card.Scratch{Message: "hello there"})
	cfg := core.DefaultConfig()
	cfg.ScreenW = 80
	cfg.ScreenH = 24
	s.Reset(cfg)
	return s
}

func dragFrame(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Pos: core.Point{X: x, Y: y}, Kind: core.PointerDrag})
	return in
}

// scratchEverything drags across every cell of the scratchable area.
func scratchEverything(s *Scene) {
	for y := s.inner.Y; y < s.inner.Bottom(); y++ {
		for x := s.inner.X; x < s.inner.Right(); x++ {
			s.Step(dragFrame(x, y))
		}
	}
}

func TestDragRevealsMessage(t *testing.T) {
	s := testScene()

	if s.Revealed() {
		t.Fatal("fresh card should not be revealed")
	}

	scratchEverything(s)

	if !s.Revealed() {
		t.Fatal("scratching the whole card should reveal it")
	}
	if got := s.PercentCleared(); got <= 0.5 {
		t.Errorf("PercentCleared() = %f, expected > 0.5", got)
	}
	if s.State().Done {
		t.Error("scene should wait for confirm after the reveal")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	result := s.Step(in)
	if !result.State.Done {
		t.Error("confirm after reveal should finish the scene")
	}
}

func TestConfirmBeforeRevealDoesNothing(t *testing.T) {
	s := testScene()

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	result := s.Step(in)
	if result.State.Done {
		t.Error("confirm must not finish an unrevealed card")
	}
}

func TestDragOutsideCardIsIgnored(t *testing.T) {
	s := testScene()

	s.Step(dragFrame(0, 0))
	s.Step(dragFrame(79, 23))

	if got := s.PercentCleared(); got != 0 {
		t.Errorf("PercentCleared() = %f after out-of-card drags, expected 0", got)
	}
}

func TestKeyboardCursorScratches(t *testing.T) {
	s := testScene()

	// The cursor starts at the inner center; moving it paints as it goes.
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	s.Step(in)

	if got := s.PercentCleared(); got == 0 {
		t.Error("keyboard cursor movement should scratch")
	}
}

func TestResizeRecoversFoil(t *testing.T) {
	s := testScene()
	s.Step(dragFrame(s.inner.X+2, s.inner.Y+2))
	if s.PercentCleared() == 0 {
		t.Fatal("expected some clearing before resize")
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 30
	s.Resize(cfg)

	if got := s.PercentCleared(); got != 0 {
		t.Errorf("PercentCleared() = %f after resize, expected 0", got)
	}
	if s.Revealed() {
		t.Error("resize must not reveal the card")
	}
}

func TestResizeAfterRevealKeepsCompletion(t *testing.T) {
	s := testScene()
	scratchEverything(s)
	if !s.Revealed() {
		t.Fatal("setup: card should be revealed")
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 30
	s.Resize(cfg)

	if !s.Revealed() {
		t.Error("a revealed card must stay revealed across resizes")
	}
}
