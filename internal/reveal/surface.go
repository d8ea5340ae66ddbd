// Package reveal implements a scratch-to-reveal coverage surface.
//
// The surface owns a raster of alpha bytes sized to its container. Painting
// erases an alpha disc at the paint coordinate; once the cleared fraction
// crosses the completion threshold the surface fires its completion callback
// exactly once and freezes. Coordinates are abstract integer units - the
// platform layer decides whether a unit is a pixel or a terminal cell.
package reveal

import "github.com/avoskres/tui-keepsake/internal/core"

const (
	// Fully opaque coverage value for a virgin surface.
	alphaOpaque = 255
)

// Config holds the tuning constants of a surface. The defaults mirror the
// empirical values the interaction was designed around; they carry no deeper
// rationale and are safe to adjust per deck.
type Config struct {
	// StampRadius is the radius of the erasing disc applied per paint event.
	StampRadius int

	// VisibleAlpha is the opacity below which a covered unit counts as
	// cleared when computing the revealed fraction.
	VisibleAlpha uint8

	// CompleteOver is the cleared fraction that must be strictly exceeded
	// for the surface to complete. Exactly this fraction does not complete.
	CompleteOver float64
}

// DefaultConfig returns the standard scratch-card tuning.
func DefaultConfig() Config {
	return Config{
		StampRadius:  36,
		VisibleAlpha: 128,
		CompleteOver: 0.5,
	}
}

// Surface is a scratchable coverage layer.
// It is not safe for concurrent use; all calls must come from one event loop.
type Surface struct {
	cfg        Config
	w, h       int
	alpha      []uint8 // row-major, length w*h
	completed  bool
	onComplete func()
}

// NewSurface creates a fully covered surface of the given size.
// onComplete may be nil; it is invoked at most once, from within the Paint
// call that crosses the completion threshold.
func NewSurface(w, h int, cfg Config, onComplete func()) *Surface {
	s := &Surface{
		cfg:        cfg,
		onComplete: onComplete,
	}
	s.allocate(w, h)
	return s
}

// allocate sizes the raster and restores full coverage.
func (s *Surface) allocate(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.alpha = make([]uint8, w*h)
	for i := range s.alpha {
		s.alpha[i] = alphaOpaque
	}
}

// Width returns the surface width in units.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in units.
func (s *Surface) Height() int { return s.h }

// Completed reports whether the surface has reached its terminal revealed
// state. The flag is one-way: once true it never resets.
func (s *Surface) Completed() bool { return s.completed }

// Alpha returns the coverage opacity at the given local coordinate.
// Out-of-bounds coordinates read as fully transparent.
func (s *Surface) Alpha(x, y int) uint8 {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0
	}
	return s.alpha[y*s.w+x]
}

// Covered reports whether the unit at (x, y) is still visibly covered.
func (s *Surface) Covered(x, y int) bool {
	return s.Alpha(x, y) >= s.cfg.VisibleAlpha
}

// Paint erases an alpha disc of the configured radius centered at the local
// coordinate (x, y). Erasure is monotonic: cleared units never re-cover.
// After completion, Paint is a no-op.
func (s *Surface) Paint(x, y int) {
	if s.completed || s.w == 0 || s.h == 0 {
		return
	}

	r := s.cfg.StampRadius
	minX := core.Clamp(x-r, 0, s.w-1)
	maxX := core.Clamp(x+r, 0, s.w-1)
	minY := core.Clamp(y-r, 0, s.h-1)
	maxY := core.Clamp(y+r, 0, s.h-1)

	// The stamp may lie entirely off the surface.
	if x+r < 0 || x-r >= s.w || y+r < 0 || y-r >= s.h {
		return
	}

	rr := r * r
	for py := minY; py <= maxY; py++ {
		dy := py - y
		for px := minX; px <= maxX; px++ {
			dx := px - x
			if dx*dx+dy*dy <= rr {
				s.alpha[py*s.w+px] = 0
			}
		}
	}

	if s.PercentCleared() > s.cfg.CompleteOver {
		s.completed = true
		if s.onComplete != nil {
			s.onComplete()
		}
	}
}

// PercentCleared returns the fraction of surface units whose coverage has
// dropped below the visibility threshold, in [0, 1].
func (s *Surface) PercentCleared() float64 {
	total := s.w * s.h
	if total == 0 {
		return 0
	}
	cleared := 0
	for _, a := range s.alpha {
		if a < s.cfg.VisibleAlpha {
			cleared++
		}
	}
	return float64(cleared) / float64(total)
}

// Resize reallocates the raster to the new container size and restores full
// coverage. A resize that precedes any interaction therefore looks like a
// fresh surface. After completion, Resize does nothing: the completed flag
// and the revealed content stay intact.
func (s *Surface) Resize(w, h int) {
	if s.completed {
		return
	}
	if w == s.w && h == s.h {
		return
	}
	s.allocate(w, h)
}
