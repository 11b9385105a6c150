package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/core"
)

var testPad = core.Keypad{
	Up: 0x101, Down: 0x102, Left: 0x103, Right: 0x104,
	Return: 0x0d, Escape: 0x1b, Space: 0x20,
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Key
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), testPad.Up},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), testPad.Right},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), testPad.Return},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), testPad.Escape},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), testPad.Space},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 'q'},
		{"non ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), core.KeyNone},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), core.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKey(tt.ev, testPad); got != tt.want {
				t.Errorf("TranslateKey() = %#x, expected %#x", got, tt.want)
			}
		})
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	p := NewPalette()
	for c := core.Color(0); c <= core.ColorMask; c++ {
		got, ok := p.Color(p.Style(c))
		if !ok || got != c {
			t.Errorf("Color(Style(%v)) = %v, %t, expected %v", c, got, ok, c)
		}
	}
	if _, ok := p.Color(tcell.StyleDefault); ok {
		t.Error("Color(StyleDefault) reported a palette entry")
	}
}

func TestPaletteBlankDiffersFromBlack(t *testing.T) {
	p := NewPalette()
	fg, bg, _ := p.Style(core.Black).Decompose()
	if fg != tcell.ColorBlack || bg != tcell.ColorDefault {
		t.Errorf("Style(Black) = %v on %v, expected black on default", fg, bg)
	}
	if p.Style(core.Black) == tcell.StyleDefault {
		t.Error("Style(Black) equals the default style")
	}
}

func TestANSIIndex(t *testing.T) {
	tests := []struct {
		c    core.Color
		want int
	}{
		{core.Black, 0},
		{core.Blue, 4},
		{core.Red, 1},
		{core.Red | core.Light, 9},
		{core.Yellow | core.Reverse, 3},
		{core.White | core.Light, 15},
	}
	for _, tt := range tests {
		if got := ANSIIndex(tt.c); got != tt.want {
			t.Errorf("ANSIIndex(%v) = %d, expected %d", tt.c, got, tt.want)
		}
	}
}

type surfaceCell struct {
	r  rune
	st tcell.Style
}

type stubSurface struct {
	w, h   int
	cells  map[[2]int]surfaceCell
	clears int
	shows  int
}

func newStubSurface(w, h int) *stubSurface {
	return &stubSurface{w: w, h: h, cells: make(map[[2]int]surfaceCell)}
}

func (s *stubSurface) Size() (int, int) { return s.w, s.h }
func (s *stubSurface) Clear() { s.clears++; s.cells = make(map[[2]int]surfaceCell) }
func (s *stubSurface) Show() { s.shows++ }

func (s *stubSurface) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	s.cells[[2]int{x, y}] = surfaceCell{r: r, st: st}
}

func TestPresenter(t *testing.T) {
	surf := newStubSurface(4, 1)
	p := NewPresenter(surf)

	scr := core.NewScreen(6, 2)
	scr.SetCell(0, 0, core.Cell{Rune: 'ア', Color: core.Cyan})
	scr.SetCell(1, 0, core.Cell{Rune: ' ', Color: core.Cyan, Cont: true})
	scr.SetCell(2, 0, core.Cell{Rune: 'A', Color: core.Red | core.Light})
	scr.SetCell(3, 0, core.Cell{Rune: 'A', Color: core.Red, Cont: true})
	p.Present(scr)

	if surf.clears != 1 || surf.shows != 1 {
		t.Errorf("clears/shows = %d/%d, expected 1/1", surf.clears, surf.shows)
	}
	if _, ok := surf.cells[[2]int{1, 0}]; ok {
		t.Error("continuation of a wide glyph was drawn")
	}
	if got := surf.cells[[2]int{2, 0}]; got.r != 'A' || got.st != p.palette.Style(core.Red|core.Light) {
		t.Errorf("cell (2,0) = %q %v", got.r, got.st)
	}
	if got := surf.cells[[2]int{3, 0}].r; got != ' ' {
		t.Errorf("narrow continuation = %q, expected blank", got)
	}
	if len(surf.cells) != 3 {
		t.Errorf("cells drawn = %d, expected 3 (clipped to the surface)", len(surf.cells))
	}

	p.Present(scr)
	if surf.clears != 1 {
		t.Errorf("clears = %d after second Present, expected 1", surf.clears)
	}
	p.Invalidate()
	p.Present(scr)
	if surf.clears != 2 {
		t.Errorf("clears = %d after Invalidate, expected 2", surf.clears)
	}
}

type stubEvents struct {
	events []tcell.Event
}

func (s *stubEvents) HasPendingEvent() bool { return len(s.events) > 0 }

func (s *stubEvents) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestKeyboard(t *testing.T) {
	src := &stubEvents{}
	resized := 0
	kb := NewKeyboard(src, testPad, func() { resized++ })

	if kb.KeyHit() {
		t.Fatal("KeyHit() = true on an empty source")
	}
	src.events = []tcell.Event{
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		tcell.NewEventResize(80, 25),
		tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone),
	}
	if !kb.KeyHit() {
		t.Fatal("KeyHit() = false, expected true")
	}
	if resized != 1 {
		t.Errorf("resize callbacks = %d, expected 1", resized)
	}
	if got := kb.ReadKey(); got != testPad.Down {
		t.Errorf("ReadKey() = %#x, expected %#x", got, testPad.Down)
	}
	if got := kb.ReadKey(); got != 'z' {
		t.Errorf("ReadKey() = %#x, expected 'z'", got)
	}
	if got := kb.ReadKey(); got != core.KeyNone {
		t.Errorf("ReadKey() = %#x, expected KeyNone", got)
	}

	src.events = []tcell.Event{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)}
	kb.Flush()
	if kb.KeyHit() {
		t.Error("KeyHit() = true after Flush")
	}
}
