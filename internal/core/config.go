package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic animation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic flicker/confetti
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SceneState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Done    bool // Scene finished; the session advances to the next one
	Skipped bool // Scene was skipped rather than completed
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
