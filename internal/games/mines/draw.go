package mines

import (
	"strings"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

const (
	colDefault   = core.White | core.Light
	colEmpty     = core.White
	colCell      = core.Cyan | core.Light
	colFlag      = core.Yellow | core.Light
	colBomb      = core.Red | core.Light
	colCursor    = core.White | core.Light
	colNumber1   = core.Cyan | core.Light
	colNumber2   = core.Green | core.Light
	colNumber3   = core.Magenta | core.Light
	colTitle     = core.Cyan | core.Light
	colTitle2    = core.Blue
	colChoose    = core.Yellow | core.Light
	colGameOver  = core.Magenta | core.Light
	colCongFrame = core.White | core.Light
	colCong1     = core.Magenta | core.Light
	colCong2     = core.Yellow | core.Light
	colWall      = core.Cyan
)

// Win banner timing in ticks since the banner started.
const (
	bannerOpen1   = 9
	bannerOpen2   = 15
	bannerOpen3   = 21
	bannerSweep   = 30
	bannerSweepTo = 60
	bannerDone    = 75
)

const (
	congMessage = "  C O N G R A T U L A T I O N S !   "
	bannerW     = 36
	bannerH     = 6
	gameOverMsg = "   G A M E  O V E R   "
	choicesW    = 22
)

// draw renders state s. Entering a state clears the screen; otherwise
// only the rectangles registered below are refreshed.
func (g *Game) draw(c cons.Console, s state) {
	entered := g.sm.Entered()
	if entered {
		c.Clear()
	} else {
		c.RegisterDirtyRect(0, core.Rect{})
	}
	switch s {
	case stateTitle:
		g.drawTitle(c, entered)
	case stateStart:
		g.drawMap(c)
	case statePlay:
		if g.drawRq || entered {
			g.drawMap(c)
			g.drawCursor(c)
			c.RegisterDirtyRect(0, core.NewRect(g.mapX, g.mapY, g.gl.scale(g.board.W), g.board.H))
		}
		g.drawStatus(c, entered)
	case stateWin:
		g.drawWin(c, entered)
	case stateOver:
		g.drawOver(c)
	}
}

func (g *Game) drawTitle(c cons.Console, entered bool) {
	x := (c.ScreenWidth() - 26) / 2
	y := (c.ScreenHeight() - 14) / 2
	if entered {
		cons.PutStringAtColored(c, x+2, y+1, colTitle, "M I N E  S W E E P E R")
		cons.PutStringAtColored(c, x+3, y+2, colTitle2, "M I N E  S W E E P E R")
		g.drawLevel = -1
	}
	if g.level == g.drawLevel {
		return
	}
	g.drawLevel = g.level
	cols := [4]core.Color{colDefault, colDefault, colDefault, colDefault}
	cols[g.level] = colChoose
	x += 5
	cons.PutStringAtColored(c, x, y+7, cols[0], "  SMALL  STAGE")
	cons.PutStringAtColored(c, x, y+9, cols[1], "  MIDDLE STAGE")
	cons.PutStringAtColored(c, x, y+11, cols[2], "  LARGE  STAGE")
	cons.PutStringAtColored(c, x, y+13, cols[3], "  EXIT")
	x += 2 - g.gl.titleCursorW
	cons.PutStringAtColored(c, x, y+7+g.level*2, colChoose, g.gl.titleCursor)
	c.RegisterDirtyRect(1, core.NewRect(x, y+7, 14, 7))
}

// drawStatus shows the remaining flags and the play clock above the map.
func (g *Game) drawStatus(c cons.Console, entered bool) {
	x := g.mapX - 1
	y := g.mapY - 2
	w := g.gl.scale(g.board.W) + 2
	if w < 13 {
		x -= (13 - w) >> 1
		w = 13
	}
	x = core.Max(x, 0)
	y = core.Max(y, 0)

	if g.drawRq || entered {
		cons.PutStringAtColored(c, x, y, colFlag, g.gl.flag)
		cons.PrintfAtColored(c, x+3, y, colDefault, "%2d", g.board.Bombs-g.board.Flags)
		c.RegisterDirtyRect(1, core.NewRect(x, y, w, 1))
	} else {
		c.RegisterDirtyRect(1, core.NewRect(x+w-5, y, 5, 1))
	}

	secs := (g.curClock - g.startClock) / cons.ClockPerSec
	mm, ss := secs/60, secs%60
	if mm > 99 {
		mm, ss = 99, 59
	}
	cons.PrintfAtColored(c, x+w-5, y, colDefault, "%2d:%02d", mm, ss)
}

func (g *Game) drawFrame(c cons.Console, x, y, w, h int) {
	col := colWall
	if g.sm.State() == stateOver {
		col = colBomb
	}
	wall := &g.gl.wall
	x -= g.gl.scale(1)
	cons.PutStringAtColored(c, x, y-1, col, wall[0]+strings.Repeat(wall[1], w)+wall[2])
	cons.PutStringAtColored(c, x, y+h, col, wall[5]+strings.Repeat(wall[6], w)+wall[7])
	x2 := x + g.gl.scale(w+1)
	for y2 := y; y2 < y+h; y2++ {
		cons.PutStringAtColored(c, x, y2, col, wall[3])
		cons.PutStringAtColored(c, x2, y2, col, wall[4])
	}
}

func (g *Game) drawMap(c cons.Console) {
	b := g.board
	g.mapX = core.Max((c.ScreenWidth()-g.gl.scale(b.W))>>1, 1)
	g.mapY = core.Max((c.ScreenHeight()-b.H)>>1, 2)
	g.drawFrame(c, g.mapX, g.mapY, b.W, b.H)

	for y := 0; y < b.H; y++ {
		x1 := g.mapX
		for x := 0; x < b.W; x++ {
			col, s := g.cellGlyph(b.At(x, y))
			cons.PutStringAtColored(c, x1, g.mapY+y, col, s)
			x1 += g.gl.scale(1)
		}
	}
}

func (g *Game) cellGlyph(cell Cell) (core.Color, string) {
	v := cell.Value()
	switch {
	case cell.IsClosed() && cell.IsFlagged():
		return colFlag, g.gl.flag
	case cell.IsClosed():
		return colCell, g.gl.cell
	case v >= BombValue:
		return colBomb, g.gl.bomb
	case v == 0:
		return colEmpty, g.gl.empty
	case v == 1:
		return colNumber1, g.gl.digits[0]
	case v == 2:
		return colNumber2, g.gl.digits[1]
	default:
		return colNumber3, g.gl.digits[v-1]
	}
}

func (g *Game) drawCursor(c cons.Console) {
	x := g.mapX + g.gl.scale(g.cursorX)
	cons.PutStringAtColored(c, x, g.mapY+g.cursorY, colCursor, g.gl.cursor)
}

// drawWin opens a banner over the cleared field and sweeps a highlight
// through the message. Once it settles the win state accepts keys.
func (g *Game) drawWin(c cons.Console, entered bool) {
	if entered {
		g.drawMap(c)
		g.drawStatus(c, true)
		g.tick0 = c.Tick()
		return
	}
	x0 := (c.ScreenWidth() - bannerW) / 2
	y0 := (c.ScreenHeight() - bannerH) / 2
	dt := c.Tick() - g.tick0
	frame := g.gl.congFrame
	spaces := strings.Repeat(" ", bannerW)

	c.RegisterDirtyRect(3, core.NewRect(x0, y0, bannerW, bannerH))
	c.SetColor(colCongFrame)
	switch {
	case dt < bannerOpen1:
		cons.PutStringAt(c, x0, y0+2, frame)
	case dt < bannerOpen2:
		cons.PutStringAt(c, x0, y0+1, frame)
		cons.PutStringAt(c, x0, y0+2, spaces)
		cons.PutStringAt(c, x0, y0+3, frame)
	case dt < bannerOpen3:
		cons.PutStringAt(c, x0, y0, frame)
		for i := 1; i <= 3; i++ {
			cons.PutStringAt(c, x0, y0+i, spaces)
		}
		cons.PutStringAt(c, x0, y0+4, frame)
	default:
		cons.PutStringAt(c, x0, y0, frame)
		cons.PutStringAt(c, x0, y0+1, spaces)
		cons.PutStringAt(c, x0, y0+3, spaces)
		cons.PutStringAt(c, x0, y0+4, frame)
		cons.PutStringAtColored(c, x0, y0+2, colCong1, congMessage)
		switch {
		case dt >= bannerSweep && dt < bannerSweepTo:
			n := int(dt - bannerSweep)
			cons.PutStringAtColored(c, x0+1+n, y0+2, colCong2, congMessage[1+n:1+n+4])
		case dt >= bannerDone:
			cons.PutStringAtColored(c, x0, y0+2, colCong2, congMessage)
			g.sm.Step = 3
		}
	}
}

func (g *Game) drawOver(c cons.Console) {
	b := g.board
	switch g.sm.Step {
	case 1:
		g.drawStatus(c, true)
		g.drawMap(c)
		y := g.mapY - 3
		if g.level == 0 {
			y--
		}
		x := g.mapX + ((g.gl.scale(b.W) - len(gameOverMsg)) >> 1)
		cons.PutStringAtColored(c, core.Max(x, 0), core.Max(y, 0), colGameOver, gameOverMsg)
		g.tick0 = c.Tick()
	case 2:
		if c.Tick()-g.tick0 >= cons.MillisToTicks(100) {
			g.sm.Step = 3
		}
	case 3:
		y := g.mapY + b.H + 1
		if y > c.ScreenHeight() {
			y = c.ScreenHeight() - 1
		}
		x := core.Max(g.mapX+((g.gl.scale(b.W)-choicesW)>>1)+1, 0)
		g.drawChoices(c, x, y)
		c.RegisterDirtyRect(3, core.NewRect(x, y, choicesW, 1))
	}
}

var choiceLabels = [2][3]string{
	{" Retry ", " Title ", " Exit "},
	{"[Retry]", "[Title]", "[Exit]"},
}

func (g *Game) drawChoices(c cons.Console, x, y int) {
	for i := 0; i < 3; i++ {
		sel, col := 0, colDefault
		if g.choice == i {
			sel, col = 1, colChoose
		}
		cons.PutStringAtColored(c, x+7*i, y, col, choiceLabels[sel][i])
	}
}
