// Package hello is the smallest console client: a blinking greeting that
// moves with the cursor keys.
package hello

import (
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/registry"
)

// Message is the text being moved around.
const Message = "Hello world!"

// Game implements registry.Game.
type Game struct {
	x, y   int
	placed bool
	count  int
	done   bool
}

// New creates the game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("hello", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "hello" }

// Title returns the display name.
func (g *Game) Title() string { return "Hello World" }

// Reset recenters the message on the next frame.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	*g = Game{}
}

// State returns the game state. There is no score.
func (g *Game) State() core.GameState {
	return core.GameState{GameOver: g.done}
}

// Position returns the message's top-left cell.
func (g *Game) Position() (int, int) {
	return g.x, g.y
}

// Frame moves, clamps and redraws the message.
func (g *Game) Frame(c cons.Console) bool {
	w, h := c.ScreenWidth(), c.ScreenHeight()
	n := len(Message)
	if !g.placed {
		g.x, g.y = (w-n)/2, (h-1)/2
		g.placed = true
	}

	k := c.Key()
	if k == 'q' || k == 'Q' || c.Keypad().MapKey(k) == core.ActionCancel {
		g.done = true
		return false
	}
	pad := c.Keypad()
	switch k {
	case pad.Left:
		g.x--
	case pad.Right:
		g.x++
	case pad.Up:
		g.y--
	case pad.Down:
		g.y++
	}
	g.x = core.Clamp(g.x, 0, core.Max(w-n, 0))
	g.y = core.Clamp(g.y, 0, core.Max(h-1, 0))

	c.Clear()
	if g.count&0x0c != 0 {
		cons.PutStringAtColored(c, g.x, g.y, core.DefaultColor, Message)
	}
	g.count++
	return true
}
