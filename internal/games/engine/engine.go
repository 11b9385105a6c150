// Package engine runs console games frame by frame and provides the
// per-game state machine they are built on.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/cons"
)

// Framer is anything that can draw one frame on a console.
type Framer interface {
	Frame(c cons.Console) bool
}

// Run drives frames until g returns false or ctx is done. The console
// must already be initialized. It returns the number of frames run and
// ctx.Err() on cancellation.
func Run(ctx context.Context, c cons.Console, g Framer) (int, error) {
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		c.UpdateBegin()
		more := g.Frame(c)
		c.UpdateEnd()
		frames++
		if !more {
			return frames, nil
		}
	}
}

// Play initializes c, runs g on it and terminates c on every exit path,
// including panics inside the game.
func Play(ctx context.Context, c cons.Console, flags cons.Flags, g Framer, logger *log.Logger) (err error) {
	if logger == nil {
		logger = cons.NopLogger()
	}
	if err := c.Init(flags); err != nil {
		return fmt.Errorf("engine: init console: %w", err)
	}
	defer c.Term()

	start := time.Now()
	frames, err := Run(ctx, c, g)
	logger.Info("game loop done", "frames", frames, "elapsed", time.Since(start).Round(time.Millisecond), "err", err)
	return err
}

// NewRand returns a generator for seed, or a time seeded one for 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
