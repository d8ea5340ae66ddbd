package evade

import (
	"testing"
	"time"

	"github.com/avoskres/tui-keepsake/internal/core"
)

// fakeClock is a manually advanced clock for cooldown tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration)   { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock                 { return &fakeClock{t: time.Unix(1000, 0)} }
func configWithClock(c *fakeClock) Config {
	cfg := DefaultConfig()
	cfg.Now = c.now
	return cfg
}

func TestRelocateScenario(t *testing.T) {
	// Viewport 1000x800, target 180x72, protected (400,300,200,100) padded
	// by 16, pointer at (500,400). Valid results must satisfy x in [12,808],
	// y in [12,716] and avoid the padded rect (384,284)-(616,416).
	vp := Viewport{W: 1000, H: 800}
	protected := core.NewRect(400, 300, 200, 100)
	pointer := core.Point{X: 500, Y: 400}
	forbidden := core.NewRect(384, 284, 232, 132)

	clock := newFakeClock()
	rel := New(configWithClock(clock), 42)

	for i := 0; i < 500; i++ {
		pos, ok := rel.Relocate(vp, 180, 72, protected, &pointer)
		if !ok {
			t.Fatalf("iteration %d: relocation dropped despite cooldown elapsed", i)
		}
		if pos.X < 12 || pos.X > 808 {
			t.Fatalf("iteration %d: x = %d, want in [12, 808]", i, pos.X)
		}
		if pos.Y < 12 || pos.Y > 716 {
			t.Fatalf("iteration %d: y = %d, want in [12, 716]", i, pos.Y)
		}

		rect := core.NewRect(pos.X, pos.Y, 180, 72)
		if rect.Intersects(forbidden) {
			t.Fatalf("iteration %d: rect %+v overlaps padded protected region", i, rect)
		}
		if d := rect.Center().Dist(pointer); d <= 140 {
			t.Fatalf("iteration %d: center distance %f to pointer, want > 140", i, d)
		}

		clock.advance(200 * time.Millisecond)
	}
}

func TestRelocateWithoutPointer(t *testing.T) {
	vp := Viewport{W: 400, H: 300}
	protected := core.NewRect(100, 100, 50, 50)

	clock := newFakeClock()
	rel := New(configWithClock(clock), 7)

	for i := 0; i < 200; i++ {
		pos, ok := rel.Relocate(vp, 60, 20, protected, nil)
		if !ok {
			t.Fatal("relocation dropped unexpectedly")
		}
		rect := core.NewRect(pos.X, pos.Y, 60, 20)
		if rect.Intersects(protected.Expand(16)) {
			t.Fatalf("rect %+v overlaps padded protected region", rect)
		}
		clock.advance(time.Second)
	}
}

func TestCooldownDropsRapidRequests(t *testing.T) {
	vp := Viewport{W: 1000, H: 800}
	protected := core.NewRect(400, 300, 200, 100)
	pointer := core.Point{X: 500, Y: 400}

	clock := newFakeClock()
	rel := New(configWithClock(clock), 1)

	if _, ok := rel.Relocate(vp, 180, 72, protected, &pointer); !ok {
		t.Fatal("first relocation should be honored")
	}

	// 100ms later: inside the 120ms cooldown, dropped.
	clock.advance(100 * time.Millisecond)
	if _, ok := rel.Relocate(vp, 180, 72, protected, &pointer); ok {
		t.Error("request inside cooldown should be dropped")
	}

	// A dropped request must not extend the cooldown window: 30ms more puts
	// us 130ms past the honored move.
	clock.advance(30 * time.Millisecond)
	if _, ok := rel.Relocate(vp, 180, 72, protected, &pointer); !ok {
		t.Fatal("request after cooldown should be honored")
	}
}

func TestFallbackWhenNoValidPlacement(t *testing.T) {
	// Pathological: protected region covers the entire viewport. Relocation
	// must still return a position via the unconstrained fallback.
	vp := Viewport{W: 200, H: 100}
	protected := core.NewRect(-50, -50, 300, 200)

	clock := newFakeClock()
	rel := New(configWithClock(clock), 3)

	pos, ok := rel.Relocate(vp, 40, 10, protected, nil)
	if !ok {
		t.Fatal("fallback relocation should still be honored")
	}
	if pos.X < 12 || pos.X > 200-40-12 {
		t.Errorf("fallback x = %d outside sample range", pos.X)
	}
	if pos.Y < 12 || pos.Y > 100-10-12 {
		t.Errorf("fallback y = %d outside sample range", pos.Y)
	}
}

func TestDegenerateViewportStillReturns(t *testing.T) {
	// Target larger than the viewport: the sample range collapses to the
	// margin corner instead of panicking or blocking.
	vp := Viewport{W: 30, H: 20}

	clock := newFakeClock()
	rel := New(configWithClock(clock), 5)

	pos, ok := rel.Relocate(vp, 100, 50, core.Rect{}, nil)
	if !ok {
		t.Fatal("degenerate relocation should be honored")
	}
	if pos.X != 12 || pos.Y != 12 {
		t.Errorf("degenerate position = %+v, expected margin corner (12, 12)", pos)
	}
}

func TestTrackerProximityTrigger(t *testing.T) {
	vp := Viewport{W: 1000, H: 800}
	protected := core.NewRect(400, 300, 200, 100)
	measured := core.NewRect(700, 600, 180, 72) // center (790, 636)

	clock := newFakeClock()
	tr := NewTracker(New(configWithClock(clock), 11))

	// Far pointer: no activation, no move.
	far := core.Point{X: 100, Y: 100}
	rect, moved := tr.PointerMoved(vp, measured, protected, far)
	if moved || tr.Active() {
		t.Fatal("distant pointer must not trigger relocation")
	}
	if rect != measured {
		t.Fatalf("inactive tracker should echo the measured rect, got %+v", rect)
	}

	// Pointer within the 140-unit proximity: baseline is established from
	// the measured rect, then the target moves.
	near := core.Point{X: 780, Y: 630}
	rect, moved = tr.PointerMoved(vp, measured, protected, near)
	if !moved {
		t.Fatal("near pointer should trigger relocation")
	}
	if !tr.Active() {
		t.Fatal("tracker should be active after first qualifying event")
	}
	if rect.W != 180 || rect.H != 72 {
		t.Errorf("relocation must preserve target size, got %dx%d", rect.W, rect.H)
	}
	if d := rect.Center().Dist(near); d <= 140 {
		t.Errorf("relocated center distance %f to pointer, want > 140", d)
	}

	// Once active, the measured rect is ignored in favor of the owned one.
	clock.advance(time.Second)
	bogus := core.NewRect(0, 0, 999, 999)
	rect2, _ := tr.PointerMoved(vp, bogus, protected, core.Point{X: 0, Y: 0})
	if rect2.W != 180 || rect2.H != 72 {
		t.Errorf("active tracker must keep its own target size, got %dx%d", rect2.W, rect2.H)
	}

	tr.Deactivate()
	if tr.Active() {
		t.Error("Deactivate should release the target")
	}
}

func TestTrackerRespectsCooldown(t *testing.T) {
	vp := Viewport{W: 1000, H: 800}
	protected := core.NewRect(400, 300, 200, 100)
	measured := core.NewRect(500, 500, 180, 72)

	clock := newFakeClock()
	tr := NewTracker(New(configWithClock(clock), 13))

	near := core.Point{X: 590, Y: 536}
	first, moved := tr.PointerMoved(vp, measured, protected, near)
	if !moved {
		t.Fatal("first qualifying event should relocate")
	}

	// Chase the target immediately: inside the cooldown the position holds.
	clock.advance(50 * time.Millisecond)
	chase := first.Center()
	second, moved := tr.PointerMoved(vp, measured, protected, chase)
	if moved {
		t.Error("relocation inside cooldown should be dropped")
	}
	if second != first {
		t.Errorf("position should be unchanged under rate limiting: %+v vs %+v", second, first)
	}
}
