// Package scene provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to sequence a deck without hardcoded dependencies.
package scene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
)

// Scene is the core interface every card scene must implement.
// Scenes contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "scratch").
	// Used for deck ordering and progress storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the scene state.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the scene by one fixed tick.
	// Input is abstracted to platform-level actions and pointer events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current scene state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current scene state.
	State() core.SceneState
}

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new scene instance bound to the given deck's content.
type Factory func(deck *card.Deck) Scene

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scene: %q already registered", id))
	}
	factories[id] = f
}

// List returns the IDs of all registered scenes, sorted.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new scene by its ID, bound to the deck.
// Returns an error if the scene ID is not registered.
func Create(id string, deck *card.Deck) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", id)
	}
	return f(deck), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
