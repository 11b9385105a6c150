// Package otitame is a falling-block variant where completed rows are not
// removed on landing. They stay marked until the player clears them with
// ENTER, so holding several rows back pays more.
package otitame

import (
	"math/rand"
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

// drawFlags select the screen parts redrawn this frame.
type drawFlags uint8

const (
	drawField drawFlags = 1 << iota
	drawNext
	drawInfo
	drawText
	drawOver

	drawAll = drawField | drawNext | drawInfo | drawText | drawOver
)

const (
	titleCycle    = 600 * time.Millisecond
	titleKeyDelay = 6
	startFrames   = 13
)

// overChoices maps the game over menu to the next state.
var overChoices = [...]state{stateStart, stateTitle, stateExit}

// Game implements registry.Game and registry.OptionSaver.
type Game struct {
	field    *blocks.Field
	cur      blocks.Piece
	next     blocks.Piece
	progress blocks.Progress
	preLines int // lines completed, cleared or not
	fallTime int64
	choice   int
	flags    drawFlags

	styles   []pieceStyle
	style    int
	pieceOpt int
	hasPiece bool

	// Field origin of the last play screen.
	fieldX, fieldY int

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
	registry.Register("otitame", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "otitame" }

// Title returns the display name.
func (g *Game) Title() string { return "Oti-tame" }

// Reset returns to the title screen. "-hs<N>" and "-piece<N>" in
// cfg.Options set the high score and the piece style.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	bc := cfg.Settings.Blocks
	if bc.FieldWidth == 0 {
		bc = config.DefaultSettings().Blocks
	}
	high := g.progress.HighScore
	if v, ok := config.IntOption(cfg.Options, config.OptHighScore); ok {
		high = v
	}
	pieceOpt, hasPiece := g.pieceOpt, g.hasPiece
	if g.styles != nil {
		pieceOpt, hasPiece = g.style, true
	}
	if v, ok := config.IntOption(cfg.Options, config.OptPiece); ok {
		pieceOpt, hasPiece = v, true
	}

	*g = Game{
		field:    blocks.NewField(bc.FieldWidth, bc.FieldHeight),
		progress: blocks.NewProgress(bc.Otitame, high),
		pieceOpt: pieceOpt,
		hasPiece: hasPiece,
		rng:      engine.NewRand(cfg.Seed),
		sm:       engine.NewMachine("otitame", stateTitle, cfg.Logger),
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

// SaveOptions returns the option tokens to persist: high score and piece
// style.
func (g *Game) SaveOptions() []string {
	style := g.pieceOpt
	if g.styles != nil {
		style = g.style
	}
	return []string{
		config.FormatInt(config.OptHighScore, g.progress.HighScore),
		config.FormatInt(config.OptPiece, style),
	}
}

// Pending returns the number of marked rows waiting for a clear.
func (g *Game) Pending() int {
	return g.preLines - g.progress.Lines
}

// Frame runs the current state and redraws it.
func (g *Game) Frame(c cons.Console) bool {
	if g.styles == nil {
		g.pickStyle(c)
	}
	s := g.sm.Begin()
	switch s {
	case stateTitle:
		g.title(c)
	case stateStart:
		g.start(c)
	case statePlay:
		g.play(c)
	case stateOver:
		g.over(c)
	}
	if g.sm.Next() == stateExit {
		return false
	}
	g.draw(c, s)
	return true
}

func (g *Game) pickStyle(c cons.Console) {
	g.styles = stylesFor(c.Charset())
	if g.hasPiece {
		g.style = ((g.pieceOpt % len(g.styles)) + len(g.styles)) % len(g.styles)
	} else {
		g.style = defaultStyle(c.Charset(), c.ScreenWidth())
	}
}

func (g *Game) cycleStyle() {
	g.style = (g.style + 1) % len(g.styles)
}

func (g *Game) st() *pieceStyle {
	return &g.styles[g.style]
}

func (g *Game) spawn() blocks.Piece {
	return blocks.Spawn(g.field.W, blocks.RandomShape(g.rng))
}

func (g *Game) title(c cons.Console) {
	k := c.Key()
	if g.sm.Step < 255 {
		if g.sm.Step < titleKeyDelay {
			k = core.KeyNone
		}
		g.sm.Step++
	}
	if now := c.Clock(); g.fallTime <= now {
		g.fallTime = now + titleCycle.Milliseconds()
		g.cur.Shape++
		if g.cur.Shape >= blocks.NumShapes {
			g.cur.Shape = 0
			g.cur.Rot = (g.cur.Rot + 1) & 3
		}
	}
	g.flags = drawAll
	switch k {
	case core.KeyNone:
	case 'c', 'C':
		g.cycleStyle()
	default:
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
		g.preLines = 0
	case g.sm.Step > startFrames:
		g.fallTime = c.Clock() + g.progress.Speed.Milliseconds()
		g.sm.Go(statePlay)
	}
}

func (g *Game) play(c cons.Console) {
	now := c.Clock()
	act := c.Keypad().MapKey(c.Key())

	g.flags = 0
	if g.cur.Y < 0 {
		g.flags |= drawField | drawInfo | drawNext
	}

	clearRq := false
	if act != core.ActionNone {
		p := g.cur
		switch act {
		case core.ActionLeft:
			p = p.Moved(-1, 0)
		case core.ActionRight:
			p = p.Moved(1, 0)
		case core.ActionDown:
			p = p.Moved(0, 1)
		case core.ActionKey1:
			p = p.Rotated()
		case core.ActionKey2:
			clearRq = true
		case core.ActionCancel:
			g.sm.Go(stateOver)
			return
		}
		if g.field.CanPlace(p) {
			g.cur = p
		}
		g.flags |= drawField
	}

	if clearRq {
		g.progress.ClearLines(g.field.ClearMarked())
		g.flags |= drawField | drawInfo
	}
	if g.Pending() > 0 {
		// Marked rows blink.
		g.flags |= drawField
	}

	if g.fallTime > now {
		return
	}
	g.fallTime = now + g.progress.Speed.Milliseconds()
	g.flags |= drawField
	if p := g.cur.Moved(0, 1); g.field.CanPlace(p) {
		g.cur = p
		return
	}
	g.flags |= drawInfo
	g.field.Lock(g.cur)
	if n := g.field.MarkFull(); n > 0 {
		g.preLines += n
		g.progress.AddScore(n * n)
	}
	g.cur = g.next
	g.next = g.spawn()
	if !g.field.CanPlace(g.cur) {
		g.sm.Go(stateOver)
	}
}

func (g *Game) over(c cons.Console) {
	if g.sm.Step == 0 {
		g.choice = 0
		g.sm.Step++
		return
	}
	g.flags = 0
	switch c.Keypad().MapKey(c.Key()) {
	case core.ActionLeft:
		g.choice = (g.choice + 2) % len(overChoices)
	case core.ActionRight:
		g.choice = (g.choice + 1) % len(overChoices)
	case core.ActionKey1, core.ActionKey2:
		g.sm.Go(overChoices[g.choice])
	case core.ActionCancel:
		g.sm.Go(stateExit)
	}
}
