package curses

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

type stubCell struct {
	r  rune
	st tcell.Style
}

// stubTerminal is an in-memory Terminal.
type stubTerminal struct {
	w, h    int
	colors  int
	cells   map[[2]int]stubCell
	events  []tcell.Event
	shows   int
	inited  bool
	finied  bool
	hidden  bool
	initErr error
}

func newStubTerminal(w, h int) *stubTerminal {
	return &stubTerminal{w: w, h: h, colors: 256, cells: make(map[[2]int]stubCell)}
}

func (s *stubTerminal) Init() error {
	s.inited = true
	return s.initErr
}
func (s *stubTerminal) Fini()            { s.finied = true }
func (s *stubTerminal) Size() (int, int) { return s.w, s.h }
func (s *stubTerminal) Colors() int      { return s.colors }
func (s *stubTerminal) Clear()           { s.cells = make(map[[2]int]stubCell) }
func (s *stubTerminal) HideCursor()      { s.hidden = true }
func (s *stubTerminal) Show()            { s.shows++ }

func (s *stubTerminal) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[[2]int{x, y}] = stubCell{r: r, st: st}
}

func (s *stubTerminal) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	c, ok := s.cells[[2]int{x, y}]
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return c.r, nil, c.st, 1
}

func (s *stubTerminal) HasPendingEvent() bool { return len(s.events) > 0 }

func (s *stubTerminal) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func newDriver(t *testing.T, w, h int) (*Driver, *stubTerminal, *cons.ManualClock) {
	t.Helper()
	st := newStubTerminal(w, h)
	clk := cons.NewManualClock()
	d := New(st, WithTimebase(clk))
	if err := d.Init(0); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return d, st, clk
}

func TestInitRequiresColor(t *testing.T) {
	st := newStubTerminal(80, 24)
	st.colors = 2
	d := New(st, WithTimebase(cons.NewManualClock()))

	err := d.Init(0)
	if !errors.Is(err, cons.ErrNoColor) {
		t.Fatalf("Init() error = %v, expected %v", err, cons.ErrNoColor)
	}
	if !st.finied {
		t.Error("terminal should be shut down after a failed Init")
	}
}

func TestInitHidesCursorAndReadsSize(t *testing.T) {
	d, st, _ := newDriver(t, 100, 30)
	if !st.hidden {
		t.Error("cursor should be hidden")
	}
	if d.ScreenWidth() != 100 || d.ScreenHeight() != 30 {
		t.Errorf("size = %dx%d, expected 100x30", d.ScreenWidth(), d.ScreenHeight())
	}
}

func TestColorRoundTrip(t *testing.T) {
	d, _, _ := newDriver(t, 40, 2)
	for c := core.Color(0); c <= core.ColorMask; c++ {
		d.SetPosition(0, 0)
		d.SetColor(c)
		d.PutString("x")
		got := d.Snapshot().GetCell(0, 0).Color
		if got != c {
			t.Errorf("color %v decoded as %v", c, got)
		}
	}
}

func TestPutStringWrapsAndClips(t *testing.T) {
	d, _, _ := newDriver(t, 4, 2)
	d.SetPosition(2, 0)
	d.PutString("abcdefgh")

	s := d.Snapshot()
	if got := s.Row(0); got != "  ab" {
		t.Errorf("Row(0) = %q, expected %q", got, "  ab")
	}
	if got := s.Row(1); got != "cdef" {
		t.Errorf("Row(1) = %q, expected %q", got, "cdef")
	}
}

func TestClearBlanksAtDefaultColor(t *testing.T) {
	d, _, _ := newDriver(t, 8, 3)
	d.SetColor(core.Red | core.Reverse)
	d.PutString("garbage!")
	d.Clear()
	d.PutString("A")

	s := d.Snapshot()
	if got := s.GetCell(0, 0).Rune; got != 'A' {
		t.Errorf("cursor should be homed, cell(0,0) = %q", got)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if c := s.GetCell(x, y); c != core.BlankCell {
				t.Fatalf("cell(%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestKeyTranslation(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Key
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyReturn},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 'q'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, st, _ := newDriver(t, 10, 10)
			st.events = append(st.events, tt.ev)
			d.UpdateBegin()
			if got := d.Key(); got != tt.want {
				t.Errorf("Key() = %#x, expected %#x", got, tt.want)
			}
		})
	}
}

func TestKeyPollTimesOut(t *testing.T) {
	d, _, clk := newDriver(t, 10, 10)
	before := clk.Elapsed()
	d.UpdateBegin()
	if d.Key() != core.KeyNone {
		t.Errorf("Key() = %#x, expected KeyNone", d.Key())
	}
	if waited := clk.Elapsed() - before; waited != KeyTimeout {
		t.Errorf("poll waited %v, expected %v", waited, KeyTimeout)
	}
}

func TestResizeUpdatesGeometry(t *testing.T) {
	d, st, _ := newDriver(t, 80, 24)
	st.w, st.h = 120, 40
	st.events = append(st.events, tcell.NewEventResize(120, 40))
	d.UpdateBegin()
	if d.ScreenWidth() != 120 || d.ScreenHeight() != 40 {
		t.Errorf("size = %dx%d, expected 120x40", d.ScreenWidth(), d.ScreenHeight())
	}
}

func TestTickAdvancesAtSixtyPerSecond(t *testing.T) {
	d, _, clk := newDriver(t, 10, 10)
	d.UpdateBegin()
	t0 := d.Tick()
	prev := t0
	for i := 0; i < 10; i++ {
		clk.Advance(100 * time.Millisecond)
		d.UpdateBegin()
		if d.Tick() < prev {
			t.Fatalf("Tick() went backwards: %d after %d", d.Tick(), prev)
		}
		prev = d.Tick()
	}
	// 1000ms of frames plus the key poll windows.
	delta := prev - t0
	if delta < 60 || delta > 60+cons.MillisToTicks(10*KeyTimeout.Milliseconds())+1 {
		t.Errorf("tick delta = %d, expected about 60 plus poll time", delta)
	}
}

func TestUpdateEndShows(t *testing.T) {
	d, st, _ := newDriver(t, 10, 10)
	d.UpdateBegin()
	d.UpdateEnd()
	if st.shows != 1 {
		t.Errorf("shows = %d, expected 1", st.shows)
	}
}

func TestDirtyRectSlotChecked(t *testing.T) {
	d, _, _ := newDriver(t, 10, 10)
	d.RegisterDirtyRect(3, core.NewRect(0, 0, 1, 1))
	defer func() {
		if recover() == nil {
			t.Error("RegisterDirtyRect(4) should panic")
		}
	}()
	d.RegisterDirtyRect(4, core.NewRect(0, 0, 1, 1))
}

func TestOperationsAfterTermPanic(t *testing.T) {
	d, _, _ := newDriver(t, 10, 10)
	d.Term()
	defer func() {
		if recover() == nil {
			t.Error("PutString after Term should panic")
		}
	}()
	d.PutString("x")
}
