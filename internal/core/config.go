package core

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/config"
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed     int64           // RNG seed for deterministic gameplay (0 = time based)
	Options  []string        // Legacy "-name<value>" option tokens, file first then CLI
	Settings config.Settings // Loaded settings.yaml
	Logger   *log.Logger     // Game logger, nil to discard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:     0, // 0 means use current time in platform layer
		Settings: config.DefaultSettings(),
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen this session (or loaded)
	GameOver  bool // Whether the game has ended
}
