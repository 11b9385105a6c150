package hello

import (
	"strings"
	"testing"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/platform/headless"
)

func newRig(t *testing.T, backend string) *headless.Rig {
	t.Helper()
	rig, err := headless.New(backend, headless.Options{Width: 80, Height: 25})
	if err != nil {
		t.Fatalf("headless.New(%s) error = %v", backend, err)
	}
	t.Cleanup(rig.Close)
	return rig
}

func TestMoveAndClamp(t *testing.T) {
	for _, backend := range config.Backends {
		t.Run(backend, func(t *testing.T) {
			rig := newRig(t, backend)
			pad := rig.Console.Keypad()
			g := New()
			g.Reset(core.RuntimeConfig{})

			rig.Frame(g, pad.Right)
			if x, y := g.Position(); x != 35 || y != 12 {
				t.Errorf("Position() = %d,%d, expected 35,12", x, y)
			}
			for i := 0; i < 50; i++ {
				rig.Frame(g, pad.Left)
			}
			rig.Frame(g, pad.Up)
			if x, y := g.Position(); x != 0 || y != 11 {
				t.Errorf("Position() = %d,%d, expected 0,11", x, y)
			}

			rig.Idle(g, 8)
			if row := rig.Screen().Row(11); !strings.HasPrefix(row, Message) {
				t.Errorf("row 11 = %q, expected the message at column 0", row)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	rig := newRig(t, config.BackendPCAT)
	g := New()
	g.Reset(core.RuntimeConfig{})

	if !rig.Frame(g, core.KeyNone) {
		t.Fatal("Frame() = false before quitting")
	}
	if rig.Frame(g, 'q') {
		t.Error("Frame() = true after q, expected false")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false after quitting")
	}

	g.Reset(core.RuntimeConfig{})
	if g.State().GameOver {
		t.Error("State().GameOver = true after Reset")
	}
}
