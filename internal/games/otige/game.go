// Package otige is the classic falling-block game: full rows vanish as
// soon as a piece locks.
package otige

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/games/blocks"
	"github.com/vovakirdan/conscade/internal/games/engine"
	"github.com/vovakirdan/conscade/internal/registry"
)

type state int

const (
	stateExit state = iota
	stateTitle
	stateStart
	statePlay
	stateOver
)

var stateNames = [...]string{"exit", "title", "start", "play", "over"}

func (s state) String() string { return stateNames[s] }

const (
	// titleCycle is how long the title shows each shape.
	titleCycle = 600 * time.Millisecond
	// startFrames is how long the start banner stays up.
	startFrames = 13
)

// Game implements registry.Game.
type Game struct {
	field    *blocks.Field
	cur      blocks.Piece
	next     blocks.Piece
	progress blocks.Progress
	fallTime int64

	rng *rand.Rand
	sm  *engine.Machine[state]
}

// New creates a new game with the default settings.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("otige", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "otige" }

// Title returns the display name.
func (g *Game) Title() string { return "Oti-ge" }

// Reset returns to the title screen. The high score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	bc := cfg.Settings.Blocks
	if bc.FieldWidth == 0 {
		bc = config.DefaultSettings().Blocks
	}
	high := g.progress.HighScore
	*g = Game{
		field:    blocks.NewField(bc.FieldWidth, bc.FieldHeight),
		progress: blocks.NewProgress(bc.Otige, high),
		rng:      engine.NewRand(cfg.Seed),
		sm:       engine.NewMachine("otige", stateTitle, cfg.Logger),
	}
	g.cur = blocks.Spawn(bc.FieldWidth, blocks.ShapeO)
}

// State returns the score and high score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.progress.Score,
		HighScore: g.progress.HighScore,
		GameOver:  g.sm.Next() == stateOver || g.sm.Next() == stateExit,
	}
}

// Frame runs the current state, then redraws the whole screen for the
// state it chose.
func (g *Game) Frame(c cons.Console) bool {
	switch g.sm.Begin() {
	case stateTitle:
		g.title(c)
	case stateStart:
		g.start(c)
	case statePlay:
		g.play(c)
	case stateOver:
		g.over(c)
	}
	s := g.sm.Next()
	if s == stateExit {
		return false
	}
	c.Clear()
	switch s {
	case stateTitle:
		g.drawTitle(c)
	case stateStart:
		g.drawStart(c)
	case statePlay:
		g.drawPlay(c)
	case stateOver:
		g.drawOver(c)
	}
	return true
}

func (g *Game) spawn() blocks.Piece {
	return blocks.Spawn(g.field.W, blocks.RandomShape(g.rng))
}

// title cycles through the shapes until any key is pressed.
func (g *Game) title(c cons.Console) {
	if g.fallTime <= c.Clock() {
		g.fallTime += titleCycle.Milliseconds()
		g.cur.Shape++
		if g.cur.Shape >= blocks.NumShapes {
			g.cur.Shape = 0
			g.cur.Rot = (g.cur.Rot + 1) & 3
		}
	}
	if c.Key() != core.KeyNone {
		g.sm.Go(stateStart)
	}
}

func (g *Game) start(c cons.Console) {
	g.sm.Step++
	switch {
	case g.sm.Step == 1:
		g.field.Clear()
		g.cur = g.spawn()
		g.next = g.spawn()
		g.progress.Restart()
	case g.sm.Step > startFrames:
		g.fallTime = c.Clock() + g.progress.Speed.Milliseconds()
		g.sm.Go(statePlay)
	}
}

func (g *Game) play(c cons.Console) {
	now := c.Clock()
	pad := c.Keypad()
	if k := c.Key(); k != core.KeyNone {
		p := g.cur
		switch k {
		case pad.Left:
			p = p.Moved(-1, 0)
		case pad.Right:
			p = p.Moved(1, 0)
		case pad.Down:
			p = p.Moved(0, 1)
		case pad.Space:
			p = p.Rotated()
		case pad.Escape:
			g.sm.Go(stateOver)
			return
		}
		if g.field.CanPlace(p) {
			g.cur = p
		}
	}

	if g.fallTime > now {
		return
	}
	g.fallTime = now + g.progress.Speed.Milliseconds()
	if p := g.cur.Moved(0, 1); g.field.CanPlace(p) {
		g.cur = p
		return
	}
	g.field.Lock(g.cur)
	g.progress.ClearLines(g.field.ClearFull())
	g.cur = g.next
	g.next = g.spawn()
	if !g.field.CanPlace(g.cur) {
		g.sm.Go(stateOver)
	}
}

func (g *Game) over(c cons.Console) {
	switch c.Key() {
	case 'r', 'R':
		g.sm.Go(stateStart)
	case 'q', 'Q':
		g.sm.Go(stateExit)
	}
}

const (
	colDefault  = core.White
	colLDefault = core.White | core.Light
	colTitle    = core.Green | core.Light
	colStart    = core.Yellow | core.Light
	colGameOver = core.Magenta | core.Light
	colHelp     = core.Cyan
	colWall     = core.White
)

// cellColor is the reverse video color of a locked or falling cell.
func cellColor(shape int) core.Color {
	return core.Color(shape+1) | core.Reverse | core.Light
}

func blink(c cons.Console) core.Color {
	if c.Clock()&0x30 != 0 {
		return colLDefault
	}
	return colDefault
}

func (g *Game) drawPiece(c cons.Console, x, y int, p blocks.Piece) {
	col := cellColor(p.Shape)
	blocks.EachCell(p.Mask(), func(dx, dy int) {
		if y+dy >= 0 {
			cons.PutStringAtColored(c, x+2*dx, y+dy, col, "  ")
		}
	})
}

func (g *Game) drawTitle(c cons.Console) {
	w := c.ScreenWidth()
	y := (c.ScreenHeight() - 18) >> 1
	cons.PutStringAtColored(c, (w-11)>>1, y+2, colTitle, "O T I - G E")
	g.drawPiece(c, (w-8)>>1, y+7, blocks.Piece{Shape: g.cur.Shape, Rot: g.cur.Rot})
	cons.PutStringAtColored(c, (w-11)>>1, y+14, blink(c), "HIT ANY KEY")
}

func (g *Game) drawStart(c cons.Console) {
	g.drawPlay(c)
	if g.sm.Step > 1 {
		x := (c.ScreenWidth() - 10) >> 1
		y := (c.ScreenHeight() - 1) >> 1
		cons.PutStringAtColored(c, x, y, colStart, "S T A R T!")
	}
}

func (g *Game) drawPlay(c cons.Console) {
	f := g.field
	ofsX := core.Max((c.ScreenWidth()-2*f.W)>>1, 0)
	ofsY := core.Max((c.ScreenHeight()-f.H)>>1, 0)

	for y := 0; y < f.H; y++ {
		cons.PutStringAtColored(c, ofsX-2, ofsY+y, colWall, "||")
		for x := 0; x < f.W; x++ {
			col := colDefault
			if cell := f.At(x, y); cell != 0 {
				col = cellColor(cell.Shape())
			}
			cons.PutStringAtColored(c, ofsX+2*x, ofsY+y, col, "  ")
		}
		cons.PutStringAtColored(c, ofsX+2*f.W, ofsY+y, colWall, "||")
	}
	g.drawPiece(c, ofsX+2*g.cur.X, ofsY+g.cur.Y, g.cur)

	p := &g.progress
	x := ofsX + 2*f.W + 3
	cons.PrintfAtColored(c, x, ofsY, colDefault, "Score: %s", blocks.DisplayScore(p.Score))
	cons.PrintfAtColored(c, x, ofsY+1, colDefault, "Level: %d", p.Level)
	cons.PrintfAtColored(c, x, ofsY+2, colDefault, "Lines: %d", p.Lines)
	cons.PrintfAtColored(c, x, ofsY+3, colDefault, "Hi-SC: %s", blocks.DisplayScore(p.HighScore))

	cons.PutStringAtColored(c, x+1, ofsY+5, colDefault, "Next:")
	g.drawPiece(c, x+1, ofsY+7, blocks.Piece{Shape: g.next.Shape, Rot: g.next.Rot})

	cons.PutStringAtColored(c, x, ofsY+17, colHelp, "Move   : CURSOR KEY")
	cons.PutStringAtColored(c, x, ofsY+18, colHelp, "Rotate : SPACE  KEY")
	cons.PutStringAtColored(c, x, ofsY+19, colHelp, "Quit   : ESC    KEY")
}

func (g *Game) drawOver(c cons.Console) {
	sw, sh := c.ScreenWidth(), c.ScreenHeight()
	const w, h = 20, 10
	x := (sw - w) >> 1
	y := (sh - h) >> 1

	g.drawPlay(c)
	band := strings.Repeat(" ", core.Max(sw-1, 0))
	for i := 0; i < h; i++ {
		cons.PutStringAtColored(c, 0, y+i, colDefault, band)
	}
	cons.PutStringAtColored(c, x+((w-16)>>1), y+2, colGameOver, "G A M E  O V E R")
	cons.PutStringAtColored(c, x+((w-16)>>1), y+7, blink(c), "[R]etry / [Q]uit")
}
