package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// stubConsole records the calls the loop makes.
type stubConsole struct {
	inits, terms int
	begins, ends int
	initErr      error
	flags        cons.Flags
}

func (s *stubConsole) Init(flags cons.Flags) error {
	s.flags = flags
	if s.initErr != nil {
		return s.initErr
	}
	s.inits++
	return nil
}
func (s *stubConsole) Term()                                   { s.terms++ }
func (s *stubConsole) UpdateBegin()                            { s.begins++ }
func (s *stubConsole) UpdateEnd()                              { s.ends++ }
func (s *stubConsole) Clear()                                  {}
func (s *stubConsole) SetPosition(x, y int)                    {}
func (s *stubConsole) SetColor(c core.Color)                   {}
func (s *stubConsole) PutString(str string)                    {}
func (s *stubConsole) RegisterDirtyRect(slot int, r core.Rect) {}
func (s *stubConsole) ScreenWidth() int                        { return 80 }
func (s *stubConsole) ScreenHeight() int                       { return 25 }
func (s *stubConsole) Clock() int64                            { return 0 }
func (s *stubConsole) Tick() int64                             { return 0 }
func (s *stubConsole) Key() core.Key                           { return core.KeyNone }
func (s *stubConsole) Keypad() core.Keypad                     { return core.Keypad{} }
func (s *stubConsole) Charset() core.Charset                   { return core.CharsetASCII }

type countdown struct {
	left   int
	frames int
	panic  bool
}

func (g *countdown) Frame(c cons.Console) bool {
	g.frames++
	if g.panic {
		panic("boom")
	}
	g.left--
	return g.left > 0
}

func TestRunStopsWhenGameExits(t *testing.T) {
	c := &stubConsole{}
	g := &countdown{left: 3}
	frames, err := Run(context.Background(), c, g)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames != 3 {
		t.Errorf("Run() frames = %d, expected 3", frames)
	}
	if c.begins != 3 || c.ends != 3 {
		t.Errorf("begins/ends = %d/%d, expected 3/3", c.begins, c.ends)
	}
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &countdown{left: 100}
	frames, err := Run(ctx, &stubConsole{}, g)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if frames != 0 || g.frames != 0 {
		t.Errorf("Run() frames = %d, expected 0", frames)
	}
}

func TestPlayTermsOnEveryPath(t *testing.T) {
	t.Run("normal exit", func(t *testing.T) {
		c := &stubConsole{}
		if err := Play(context.Background(), c, cons.FlagCols40, &countdown{left: 2}, nil); err != nil {
			t.Fatalf("Play() error = %v", err)
		}
		if c.inits != 1 || c.terms != 1 {
			t.Errorf("inits/terms = %d/%d, expected 1/1", c.inits, c.terms)
		}
		if c.flags != cons.FlagCols40 {
			t.Errorf("flags = %v, expected FlagCols40", c.flags)
		}
	})

	t.Run("panic", func(t *testing.T) {
		c := &stubConsole{}
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic to propagate")
				}
			}()
			_ = Play(context.Background(), c, 0, &countdown{panic: true}, nil)
		}()
		if c.terms != 1 {
			t.Errorf("terms = %d, expected 1", c.terms)
		}
	})

	t.Run("init failure", func(t *testing.T) {
		c := &stubConsole{initErr: cons.ErrNoColor}
		g := &countdown{left: 2}
		err := Play(context.Background(), c, 0, g, nil)
		if !errors.Is(err, cons.ErrNoColor) {
			t.Errorf("Play() error = %v, expected ErrNoColor", err)
		}
		if c.terms != 0 || g.frames != 0 {
			t.Errorf("terms/frames = %d/%d, expected 0/0", c.terms, g.frames)
		}
	})
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("NewRand(42) draw %d = %d and %d, expected equal", i, x, y)
		}
	}
}
