// Package evade implements bounded-retry random placement for a UI element
// that dodges the pointer while avoiding a protected region.
//
// Placement is best-effort and cosmetic: when no valid candidate turns up
// within the attempt budget, the relocator settles for an unconstrained
// position rather than blocking. A degraded placement is never an error.
package evade

import (
	"math/rand"
	"time"

	"github.com/avoskres/tui-keepsake/internal/core"
)

// Config holds the tuning constants of a relocator. The defaults are the
// empirical values the interaction was designed around; keep them
// configurable rather than reading intent into the numbers.
type Config struct {
	// Margin keeps the target this many units away from every viewport edge.
	Margin int

	// Padding expands the protected region before overlap checks.
	Padding int

	// MinPointerDist is the distance the target's center must strictly
	// exceed from the pointer for a candidate to be accepted.
	MinPointerDist float64

	// Proximity is the pointer-to-center distance below which the tracker
	// requests a relocation.
	Proximity float64

	// MaxAttempts bounds the candidate sampling loop.
	MaxAttempts int

	// Cooldown drops relocation requests arriving too soon after the
	// previous honored one, so a fast pointer does not cause a storm.
	Cooldown time.Duration

	// Now supplies the clock for cooldown checks. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard evasive-button tuning.
func DefaultConfig() Config {
	return Config{
		Margin:         12,
		Padding:        16,
		MinPointerDist: 140,
		Proximity:      140,
		MaxAttempts:    40,
		Cooldown:       120 * time.Millisecond,
	}
}

// Viewport is the area the target must stay within.
type Viewport struct {
	W, H int
}

// Relocator picks evasive positions for a single target.
// It is not safe for concurrent use; all calls must come from one event loop.
type Relocator struct {
	cfg   Config
	rng   *rand.Rand
	now   func() time.Time
	last  time.Time
	moved bool
}

// New creates a relocator. A seed of 0 uses the current time.
func New(cfg Config, seed int64) *Relocator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Relocator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Relocate returns a top-left position for a target of the given size such
// that the target rect lies within the viewport minus the margin, does not
// intersect the protected rect expanded by the padding, and - when a pointer
// is supplied - keeps the target's center strictly farther than the minimum
// pointer distance. Candidates are sampled uniformly at random up to the
// attempt budget; on exhaustion one final unconstrained position is returned.
//
// Requests arriving within the cooldown of the previous honored relocation
// are dropped: the second return value is false and the position is invalid.
func (r *Relocator) Relocate(vp Viewport, targetW, targetH int, protected core.Rect, pointer *core.Point) (core.Point, bool) {
	now := r.now()
	if r.moved && now.Sub(r.last) < r.cfg.Cooldown {
		return core.Point{}, false
	}

	m := r.cfg.Margin
	// Collapse the sample range instead of failing when the target does not
	// fit; a clamped position beats no position for a cosmetic element.
	maxX := core.Max(m, vp.W-targetW-m)
	maxY := core.Max(m, vp.H-targetH-m)
	forbidden := protected.Expand(r.cfg.Padding)

	pos, found := core.Point{}, false
	for i := 0; i < r.cfg.MaxAttempts; i++ {
		cand := r.sample(m, maxX, maxY)
		rect := core.NewRect(cand.X, cand.Y, targetW, targetH)
		if rect.Intersects(forbidden) {
			continue
		}
		if pointer != nil && rect.Center().Dist(*pointer) <= r.cfg.MinPointerDist {
			continue
		}
		pos, found = cand, true
		break
	}
	if !found {
		pos = r.sample(m, maxX, maxY)
	}

	r.last = now
	r.moved = true
	return pos, true
}

// sample draws a uniform random position within [m, maxX] x [m, maxY].
func (r *Relocator) sample(m, maxX, maxY int) core.Point {
	return core.Point{
		X: m + r.rng.Intn(maxX-m+1),
		Y: m + r.rng.Intn(maxY-m+1),
	}
}

// Tracker drives a relocator from raw pointer movement. It owns the target's
// current rectangle once the pointer first comes close enough; until then the
// caller supplies the measured rectangle on every event.
type Tracker struct {
	rel    *Relocator
	target core.Rect
	active bool
}

// NewTracker creates a tracker around the given relocator.
func NewTracker(rel *Relocator) *Tracker {
	return &Tracker{rel: rel}
}

// Active reports whether the tracker has taken ownership of the target's
// position, which happens on the first qualifying proximity event.
func (t *Tracker) Active() bool { return t.active }

// Target returns the target's current rectangle. Only meaningful once the
// tracker is active.
func (t *Tracker) Target() core.Rect { return t.target }

// Deactivate releases the target, e.g. when the enclosing view changes.
func (t *Tracker) Deactivate() {
	t.active = false
	t.target = core.Rect{}
}

// PointerMoved feeds one pointer position. The measured rect is the target's
// on-screen rectangle as laid out by the caller; it is only consulted before
// the tracker activates. Returns the target's (possibly new) rectangle and
// whether it moved this event.
func (t *Tracker) PointerMoved(vp Viewport, measured core.Rect, protected core.Rect, p core.Point) (core.Rect, bool) {
	cur := t.target
	if !t.active {
		cur = measured
	}

	if p.Dist(cur.Center()) >= t.rel.cfg.Proximity {
		return cur, false
	}

	// First qualifying event establishes the baseline before relocating.
	if !t.active {
		t.active = true
		t.target = measured
		cur = measured
	}

	pos, ok := t.rel.Relocate(vp, cur.W, cur.H, protected, &p)
	if !ok {
		return t.target, false
	}
	t.target = core.NewRect(pos.X, pos.Y, cur.W, cur.H)
	return t.target, true
}
