package headless

import (
	"strings"
	"testing"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/cons/curses"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/games/hello"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Script
	}{
		{"names", "up, Down,esc", Script{{Name: "up"}, {Name: "down"}, {Name: "esc"}}},
		{"runes", "q x", Script{{Rune: 'q'}, {Rune: 'x'}}},
		{"wait", "space,wait:30", Script{{Name: "space", Wait: 30}}},
		{"leading wait", "wait:5,q", Script{{Wait: 5}, {Rune: 'q'}}},
		{"repeat", "right*3", Script{{Name: "right"}, {Name: "right"}, {Name: "right"}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScript(tt.input)
			if err != nil {
				t.Fatalf("ParseScript(%q) error = %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseScript(%q) = %+v, expected %+v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d = %+v, expected %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"wait:x", "wait:-1", "home", "right*0", "é"} {
		if _, err := ParseScript(in); err == nil {
			t.Errorf("ParseScript(%q) should fail", in)
		}
	}
}

func TestStepKey(t *testing.T) {
	pad := core.Keypad{Up: 1, Return: 2}
	if got := (Step{Name: "enter"}).Key(pad); got != 2 {
		t.Errorf("Key() = %v, expected 2", got)
	}
	if got := (Step{Rune: 'z'}).Key(pad); got != 'z' {
		t.Errorf("Key() = %v, expected 'z'", got)
	}
	if got := (Step{Wait: 3}).Key(pad); got != core.KeyNone {
		t.Errorf("Key() = %v, expected KeyNone", got)
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := New("vt52", Options{}); err == nil {
		t.Error("New() should reject an unknown backend")
	}
}

func TestHelloOnDOSBackends(t *testing.T) {
	tests := []struct {
		backend string
		flags   cons.Flags
		width   int
	}{
		{config.BackendPC98, 0, 80},
		{config.BackendPCAT, 0, 80},
		{config.BackendPCAT, cons.FlagCols40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			r, err := New(tt.backend, Options{Flags: tt.flags})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer r.Close()

			g := hello.New()
			script, _ := ParseScript("right,down,wait:4")
			frames, running := r.Play(g, script)
			if !running || frames != 6 {
				t.Fatalf("Play() = %d, %v, expected 6, true", frames, running)
			}
			x, y := g.Position()
			wantX := (tt.width-len(hello.Message))/2 + 1
			if x != wantX || y != 13 {
				t.Errorf("Position() = (%d,%d), expected (%d,13)", x, y, wantX)
			}
			row := r.Screen().Row(13)
			if !strings.HasPrefix(row[x:], hello.Message) {
				t.Errorf("row 13 = %q, expected the message at %d", row, x)
			}

			if r.Frame(g, 'q') {
				t.Error("Frame() after q should stop the game")
			}
		})
	}
}

func TestCursesSimulatedSize(t *testing.T) {
	r, err := New(config.BackendCurses, Options{Width: 40, Height: 10})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	g := hello.New()
	if n, running := r.Idle(g, 5); n != 5 || !running {
		t.Fatalf("Idle() = %d, %t, expected 5, true", n, running)
	}
	if w, h := r.Console.ScreenWidth(), r.Console.ScreenHeight(); w != 40 || h != 10 {
		t.Errorf("size = %dx%d, expected 40x10", w, h)
	}
	if x, y := g.Position(); x != 14 || y != 4 {
		t.Errorf("Position() = (%d,%d), expected (14,4)", x, y)
	}
	if r.Clock.Elapsed() < 5*curses.KeyTimeout {
		t.Errorf("clock = %v, expected the key poll to advance it", r.Clock.Elapsed())
	}
}

func TestIdleStopsWhenGameExits(t *testing.T) {
	r, err := New(config.BackendPC98, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	g := &countdown{left: 3}
	n, running := r.Idle(g, 10)
	if n != 3 || running {
		t.Errorf("Idle() = %d, %t, expected 3, false", n, running)
	}
}

// countdown exits after a fixed number of frames.
type countdown struct{ left int }

func (g *countdown) Frame(cons.Console) bool {
	g.left--
	return g.left > 0
}
