// Package mines implements Minesweeper on the console layer.
package mines

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/games/engine"
	"github.com/vovakirdan/conscade/internal/registry"
)

type state int

const (
	stateExit state = iota
	stateTitle
	stateStart
	statePlay
	stateWin
	stateOver
)

var stateNames = [...]string{"exit", "title", "start", "play", "win", "over"}

func (s state) String() string { return stateNames[s] }

// exitChoice is the title menu entry below the levels.
const exitChoice = 3

// titleKeyDelay is the number of frames the title ignores keys for, so a
// key held from the previous screen does not pick a level.
const titleKeyDelay = 6

// Game implements registry.Game.
type Game struct {
	levels []config.MinesLevel
	rng    *rand.Rand
	sm     *engine.Machine[state]
	log    *log.Logger

	level   int // title selection, exitChoice for exit
	board   *Board
	cursorX int
	cursorY int
	choice  int
	drawRq  bool

	startClock int64
	curClock   int64

	// drawing
	gl        *glyphs
	drawLevel int
	mapX      int
	mapY      int
	tick0     int64

	wins int
}

// New creates a new game with the built-in levels.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("mines", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mines" }

// Title returns the display name.
func (g *Game) Title() string { return "Mine Sweeper" }

// Reset returns to the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	levels := cfg.Settings.Mines.Levels
	if len(levels) < exitChoice {
		levels = config.DefaultSettings().Mines.Levels
	}
	logger := cfg.Logger
	if logger == nil {
		logger = cons.NopLogger()
	}
	*g = Game{
		levels: levels,
		rng:    engine.NewRand(cfg.Seed),
		sm:     engine.NewMachine("mines", stateTitle, logger),
		log:    logger,
	}
}

// State returns the number of cleared fields as the score.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.wins, GameOver: g.sm.State() == stateExit}
}

// Frame runs one frame of logic, then draws the state it ran.
func (g *Game) Frame(c cons.Console) bool {
	if g.gl == nil {
		g.gl = glyphsFor(c.Charset())
	}
	s := g.sm.Begin()
	switch s {
	case stateTitle:
		g.title(c)
	case stateStart:
		g.start(c)
	case statePlay:
		g.play(c)
	case stateWin:
		g.win(c)
	case stateOver:
		g.over(c)
	}
	g.draw(c, s)
	return g.sm.Next() != stateExit
}

func (g *Game) action(c cons.Console) core.Action {
	return c.Keypad().MapKey(c.Key())
}

func (g *Game) title(c cons.Console) {
	a := g.action(c)
	if g.sm.Step < titleKeyDelay {
		g.sm.Step++
		a = core.ActionNone
	}
	switch a {
	case core.ActionUp:
		g.level = (g.level - 1) & 3
	case core.ActionDown:
		g.level = (g.level + 1) & 3
	case core.ActionKey1, core.ActionKey2:
		if g.level < exitChoice {
			g.sm.Go(stateStart)
		} else {
			g.sm.Go(stateExit)
		}
	case core.ActionCancel:
		g.sm.Go(stateExit)
	}
}

func (g *Game) start(c cons.Console) {
	lv := g.levels[g.level]
	g.board = NewBoard(lv.Width, lv.Height, lv.Bombs)
	g.board.PlaceBombs(g.rng)
	g.log.Debug("new field", "level", lv.Name, "board", g.board)
	g.cursorX, g.cursorY = lv.Width>>1, lv.Height>>1
	g.startClock = c.Clock()
	g.curClock = g.startClock
	g.sm.Go(statePlay)
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.board.W-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.board.H-1)
}

func (g *Game) play(c cons.Console) {
	a := g.action(c)
	g.curClock = c.Clock()
	g.drawRq = true
	switch a {
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionKey1:
		switch g.board.Open(g.cursorX, g.cursorY) {
		case Exploded:
			g.sm.Go(stateOver)
		case Won:
			g.wins++
			g.sm.Go(stateWin)
		}
	case core.ActionKey2:
		g.board.ToggleFlag(g.cursorX, g.cursorY)
	case core.ActionCancel:
		g.sm.Go(stateOver)
	default:
		g.drawRq = false
	}
}

// win waits for the banner animation, which unlocks step 3 from the
// drawing side, then returns to the title on any key.
func (g *Game) win(c cons.Console) {
	switch {
	case g.sm.Step < 2:
		g.sm.Step++
	case g.sm.Step >= 3 && c.Key() != core.KeyNone:
		g.sm.Go(stateTitle)
	}
}

// overChoices are the game over menu targets: Retry, Title, Exit.
var overChoices = [3]state{stateStart, stateTitle, stateExit}

func (g *Game) over(c cons.Console) {
	switch g.sm.Step {
	case 0:
		g.board.RevealBombs()
		g.choice = 0
		g.sm.Step++
	case 1:
		g.sm.Step++
	case 2:
		// the drawing side moves on to step 3
	default:
		a := g.action(c)
		switch a {
		case core.ActionLeft:
			g.choice = (g.choice + 2) % 3
		case core.ActionRight:
			g.choice = (g.choice + 1) % 3
		case core.ActionKey1, core.ActionKey2:
			g.sm.Go(overChoices[g.choice])
		case core.ActionCancel:
			g.sm.Go(stateExit)
		}
	}
}
