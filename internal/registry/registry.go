// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the command to
// discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// Game is the interface every console game implements.
// A game only talks to the cons.Console it is handed each frame; the
// caller owns Init/Term and the frame loop.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "mines").
	// Used for CLI commands and option file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state before the first frame.
	Reset(cfg core.RuntimeConfig)

	// Frame runs one frame of logic and drawing between the console's
	// UpdateBegin and UpdateEnd. It returns false once the game has
	// exited.
	Frame(c cons.Console) bool

	// State returns the current score and game over flag.
	State() core.GameState
}

// OptionSaver is implemented by games that persist legacy options in an
// option file when they exit normally.
type OptionSaver interface {
	SaveOptions() []string
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

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
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
