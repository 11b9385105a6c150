package otitame

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/games/blocks"
)

const (
	colDefault  = core.White
	colWall     = core.White
	colTitle    = core.Green | core.Light
	colStart    = core.Yellow | core.Light
	colGameOver = core.Magenta | core.Light
	colLSub     = core.Yellow | core.Light
	colHelp     = core.Cyan
	colLHelp    = core.Cyan | core.Light
	colInp      = core.White
	colLInp     = core.White | core.Light
)

const (
	overW = 20
	overH = 10
)

var choiceLabels = [2][3]string{
	{" Retry ", " Title ", " Exit "},
	{"[Retry]", "[Title]", "[Exit]"},
}

func (g *Game) draw(c cons.Console, s state) {
	if g.sm.Entered() || g.flags == drawAll {
		c.Clear()
		g.flags = drawAll
	} else {
		c.RegisterDirtyRect(0, core.Rect{})
	}
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
}

func pieceColor(shape int) core.Color {
	return core.Color(shape + 1)
}

// drawPiece draws p's 4x4 box at screen (x, y). With bk the empty cells
// of the box are blanked too.
func (g *Game) drawPiece(c cons.Console, x, y int, p blocks.Piece, bk bool) {
	st := g.st()
	mask := p.Mask()
	col := pieceColor(p.Shape) | st.falling
	for i := 0; i < 16; i++ {
		x2, y2 := x+st.scale(i&3), y+(i>>2)
		if y2 < 0 {
			continue
		}
		switch {
		case mask&(0x8000>>i) != 0:
			cons.PutStringAtColored(c, x2, y2, col, st.fall)
		case bk:
			cons.PutStringAtColored(c, x2, y2, colDefault, st.space)
		}
	}
}

func blinkInp(c cons.Console) core.Color {
	if c.Tick()&0x30 != 0 {
		return colLInp
	}
	return colInp
}

func (g *Game) drawTitle(c cons.Console) {
	const title = "O T I T A M E"
	w := c.ScreenWidth()
	y := (c.ScreenHeight() - 18) >> 1
	co := blinkInp(c)
	cons.PutStringAtColored(c, (w-len(title))>>1, y+2, colTitle, title)
	cons.PutStringAtColored(c, (w-11)>>1, y+14, co, "HIT ANY KEY")
	cons.PutStringAtColored(c, (w-21)>>1, y+16, co, "([C]hange the pieces)")
	g.drawPiece(c, (w-g.st().scale(4))>>1, y+7, blocks.Piece{Shape: g.cur.Shape, Rot: g.cur.Rot}, true)
	if g.sm.Step > 1 {
		c.RegisterDirtyRect(0, core.NewRect((w-24)>>1, y+2, 24, 16-2))
	}
}

func (g *Game) drawStart(c cons.Console) {
	g.drawPlay(c)
	if g.sm.Step > 1 {
		x := g.fieldX + ((g.st().scale(g.field.W) - 10) >> 1)
		y := (c.ScreenHeight() - 1) >> 1
		cons.PutStringAtColored(c, x, y, colStart, "S T A R T!")
	}
}

func (g *Game) drawPlay(c cons.Console) {
	st := g.st()
	f := g.field
	fw := st.scale(f.W)
	ofsX := (c.ScreenWidth() - fw) >> 1
	if c.ScreenWidth() <= 40 {
		ofsX -= 10
	}
	ofsX = core.Max(ofsX, 0)
	ofsY := core.Max((c.ScreenHeight()-f.H)>>1, 0)
	g.fieldX, g.fieldY = ofsX, ofsY

	if g.flags&drawField != 0 {
		top, dh := ofsY, f.H
		if ofsY > 0 {
			top--
			dh++
			cons.PutStringAtColored(c, ofsX, top, colDefault, strings.Repeat(" ", fw))
		}
		blink := c.Tick()&0x18 != 0
		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				x2, y2 := ofsX+st.scale(x), ofsY+y
				cell := f.At(x, y)
				switch {
				case cell == 0:
					cons.PutStringAtColored(c, x2, y2, colDefault, st.space)
				case cell.IsReached() && blink:
					cons.PutStringAtColored(c, x2, y2, pieceColor(cell.Shape())|st.reached, st.reach)
				default:
					cons.PutStringAtColored(c, x2, y2, pieceColor(cell.Shape())|st.fixed, st.fix)
				}
			}
		}
		g.drawPiece(c, ofsX+st.scale(g.cur.X), ofsY+g.cur.Y, g.cur, false)
		if g.flags != drawAll {
			c.RegisterDirtyRect(0, core.NewRect(ofsX, top, fw, dh))
		}
	}

	if g.flags&drawNext != 0 {
		x, y := ofsX+fw+4, ofsY+7
		g.drawPiece(c, x, y, blocks.Piece{Shape: g.next.Shape, Rot: g.next.Rot}, true)
		c.RegisterDirtyRect(1, core.NewRect(x, y, st.scale(4), 4))
	}

	if g.flags&drawInfo != 0 {
		g.drawInfo(c, ofsX+fw+9, ofsY)
	}

	labelX := ofsX + st.scale(f.W+1) + 1
	if g.flags&drawField != 0 {
		co := colHelp
		if g.Pending() > 0 && c.Tick()&0x18 != 0 {
			co = colLHelp
		}
		cons.PutStringAtColored(c, labelX, ofsY+18, co, "Clear : ENTER  KEY")
		c.RegisterDirtyRect(3, core.NewRect(labelX, ofsY+18, 20, 1))
	}

	if g.flags&drawText != 0 {
		for y := 0; y < f.H; y++ {
			cons.PutStringAtColored(c, ofsX-st.scale(1), ofsY+y, colWall, st.wall)
			cons.PutStringAtColored(c, ofsX+fw, ofsY+y, colWall, st.wall)
		}
		for i, label := range []string{"Level", "Lines", "Score", "Hi-SC", "", " Next"} {
			if label != "" {
				cons.PutStringAtColored(c, labelX, ofsY+i, colDefault, label)
			}
		}
		cons.PutStringAtColored(c, labelX, ofsY+16, colHelp, "Move  : CURSOR KEY")
		cons.PutStringAtColored(c, labelX, ofsY+17, colHelp, "Rotate: SPACE  KEY")
		cons.PutStringAtColored(c, labelX, ofsY+19, colHelp, "Quit  : ESC    KEY")
	}
}

func (g *Game) drawInfo(c cons.Console, x, y int) {
	p := &g.progress
	c.SetColor(colDefault)
	cons.PrintfAt(c, x, y, "%d", p.Level)
	cons.PrintfAt(c, x, y+1, "%d", p.Lines)
	if n := g.Pending(); n > 0 {
		c.SetColor(colHelp)
		cons.Printf(c, " (+%d)", n)
		c.SetColor(colDefault)
	} else {
		c.PutString("          ")
	}
	cons.PutStringAt(c, x, y+2, blocks.DisplayScore(p.Score))
	cons.PutStringAt(c, x, y+3, blocks.DisplayScore(p.HighScore))
	c.RegisterDirtyRect(2, core.NewRect(x, y, 14, 4))
}

func (g *Game) drawOver(c cons.Console) {
	sw, sh := c.ScreenWidth(), c.ScreenHeight()
	x := (sw - overW) >> 1
	y := (sh - overH) >> 1

	if g.flags&drawOver != 0 {
		g.drawPlay(c)
		band := strings.Repeat(" ", core.Max(sw-1, 0))
		for l := 0; l < overH; l++ {
			cons.PutStringAtColored(c, 0, y+l, colDefault, band)
		}
		cons.PutStringAtColored(c, x+((overW-16)>>1), y+2, colGameOver, "G A M E  O V E R")
		score := fmt.Sprintf("Score: %s", blocks.DisplayScore(g.progress.Score))
		cons.PutStringAtColored(c, x+((overW-len(score))>>1), y+5, colLSub, score)
	} else {
		c.RegisterDirtyRect(3, core.NewRect(x, y+7, overW, 1))
	}

	y += 7
	for i := range overChoices {
		n := 0
		co := colInp
		if g.choice == i {
			n, co = 1, colLInp
		}
		cons.PutStringAtColored(c, x+7*i, y, co, choiceLabels[n][i])
	}
}
