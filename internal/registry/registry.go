// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-chomper/internal/core"
)

// Game is the interface every playable game implements. A game is pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns the unique identifier used for CLI commands and score
	// storage (e.g. "chomper").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or resets the game state. Called once at start
	// and again when restarting after a finished round. The RuntimeConfig
	// provides screen dimensions, tick rate and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input arrives as
	// platform-level actions already mapped from keys.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. The buffer
	// is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score and round status.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics if the ID is already taken; two games
// claiming one ID is a programming error, not a runtime condition.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Resolve the title once via a throwaway instance.
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
