package mines

import (
	"strings"
	"testing"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/platform/headless"
)

func newRig(t *testing.T, backend string, flags cons.Flags) (*headless.Rig, *Game) {
	t.Helper()
	r, err := headless.New(backend, headless.Options{Flags: flags})
	if err != nil {
		t.Fatalf("headless.New() error = %v", err)
	}
	t.Cleanup(r.Close)
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, Settings: config.DefaultSettings()})
	return r, g
}

// startSmall picks the first level and runs until the play state began.
func startSmall(t *testing.T, r *headless.Rig, g *Game) {
	t.Helper()
	r.Idle(g, titleKeyDelay)
	r.Frame(g, r.Console.Keypad().Space)
	r.Idle(g, 2)
	if g.sm.State() != statePlay {
		t.Fatalf("state = %v, expected play", g.sm.State())
	}
}

func TestTitleIgnoresEarlyKeys(t *testing.T) {
	r, g := newRig(t, config.BackendPC98, 0)
	pad := r.Console.Keypad()
	for i := 0; i < titleKeyDelay; i++ {
		r.Frame(g, pad.Down)
	}
	if g.level != 0 {
		t.Errorf("level = %d, expected 0", g.level)
	}
	r.Frame(g, pad.Down)
	if g.level != 1 {
		t.Errorf("level = %d, expected 1", g.level)
	}
	if !strings.Contains(r.Screen().String(), "M I N E  S W E E P E R") {
		t.Error("title text missing")
	}
}

func TestWinBannerAndReturnToTitle(t *testing.T) {
	r, g := newRig(t, config.BackendPC98, 0)
	startSmall(t, r, g)

	g.board = topRowBoard()
	g.cursorX, g.cursorY = 8, 8
	r.Frame(g, r.Console.Keypad().Space)
	if g.sm.Next() != stateWin {
		t.Fatalf("next = %v, expected win", g.sm.Next())
	}

	r.Idle(g, 10)
	if g.sm.Step != 2 {
		t.Errorf("Step = %d, expected 2 while the banner opens", g.sm.Step)
	}
	r.Frame(g, 'z')
	if g.sm.Next() != stateWin {
		t.Error("keys must be ignored before the banner settles")
	}

	r.Idle(g, bannerDone+5)
	if g.sm.Step != 3 {
		t.Fatalf("Step = %d, expected 3", g.sm.Step)
	}
	if !strings.Contains(r.Screen().String(), "C O N G R A T U L A T I O N S !") {
		t.Errorf("banner missing:\n%s", r.Screen())
	}

	r.Frame(g, 'z')
	r.Idle(g, 1)
	if g.sm.State() != stateTitle {
		t.Errorf("state = %v, expected title", g.sm.State())
	}
	if g.State().Score != 1 {
		t.Errorf("State().Score = %d, expected 1", g.State().Score)
	}
}

func TestGameOverMenu(t *testing.T) {
	r, g := newRig(t, config.BackendPC98, 0)
	pad := r.Console.Keypad()
	startSmall(t, r, g)

	r.Frame(g, pad.Escape)
	r.Idle(g, 12)
	if g.sm.State() != stateOver || g.sm.Step != 3 {
		t.Fatalf("state %v step %d, expected over 3", g.sm.State(), g.sm.Step)
	}
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			if c := g.board.At(x, y); c.IsBomb() && c.IsClosed() {
				t.Fatalf("bomb at (%d,%d) not revealed", x, y)
			}
		}
	}
	screen := r.Screen().String()
	for _, want := range []string{"G A M E  O V E R", "[Retry]", " Title "} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen lacks %q:\n%s", want, screen)
		}
	}

	r.Frame(g, pad.Right)
	if !strings.Contains(r.Screen().String(), "[Title]") {
		t.Error("selection did not move to Title")
	}
	r.Frame(g, pad.Left)
	r.Frame(g, pad.Left)
	if g.choice != 2 {
		t.Errorf("choice = %d, expected 2 after wrapping", g.choice)
	}
	if r.Frame(g, pad.Return) {
		t.Error("Exit should stop the game")
	}
}

func TestRetryRestartsField(t *testing.T) {
	r, g := newRig(t, config.BackendPC98, 0)
	pad := r.Console.Keypad()
	startSmall(t, r, g)
	old := g.board

	r.Frame(g, pad.Escape)
	r.Idle(g, 12)
	r.Frame(g, pad.Space)
	r.Idle(g, 2)
	if g.sm.State() != statePlay || g.board == old {
		t.Errorf("state %v, expected play on a new field", g.sm.State())
	}
}

func TestPlayClockAndCursor(t *testing.T) {
	r, g := newRig(t, config.BackendPC98, 0)
	pad := r.Console.Keypad()
	startSmall(t, r, g)

	r.Frame(g, pad.Left)
	r.Frame(g, pad.Up)
	if g.cursorX != 3 || g.cursorY != 3 {
		t.Errorf("cursor = (%d,%d), expected (3,3)", g.cursorX, g.cursorY)
	}
	for i := 0; i < 10; i++ {
		r.Frame(g, pad.Left)
	}
	if g.cursorX != 0 {
		t.Errorf("cursorX = %d, expected clamp at 0", g.cursorX)
	}

	r.Idle(g, 60)
	// 9x9 map on 80x25: map at (31,8), status row 6 spans x 30..49.
	if row := r.Screen().Row(6); !strings.Contains(row, " 0:01") {
		t.Errorf("status row = %q, expected the clock at 0:01", row)
	}

	r.Frame(g, pad.Return)
	if g.board.Flags != 1 {
		t.Errorf("Flags = %d, expected 1", g.board.Flags)
	}
}

func TestTitleOnPCAT40(t *testing.T) {
	r, g := newRig(t, config.BackendPCAT, cons.FlagCols40)
	r.Idle(g, 1)
	screen := r.Screen().String()
	if !strings.Contains(screen, "SMALL  STAGE") || !strings.Contains(screen, "»") {
		t.Errorf("title screen:\n%s", screen)
	}
	if g.gl != &cp437Glyphs {
		t.Error("PC/AT should use the CP437 glyphs")
	}
}
