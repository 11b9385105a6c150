package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/cons/curses"
	"github.com/vovakirdan/conscade/internal/cons/pc98"
	"github.com/vovakirdan/conscade/internal/cons/pcat"
	"github.com/vovakirdan/conscade/internal/core"
	conterm "github.com/vovakirdan/conscade/internal/platform/term"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// env is what every command needs: settings, the chosen backend and a
// logger.
type env struct {
	settings config.Settings
	backend  string
	cols40   bool
	logger   *log.Logger
	closeLog func()
	open     consoleOpener
}

// consoleOpener builds an uninitialized console of a backend. release
// runs after the console's Term, on every exit path.
type consoleOpener func(backend string, logger *log.Logger) (c cons.Console, release func(), err error)

func loadEnv(cmd *cobra.Command) (*env, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	e := &env{
		settings: settings,
		backend:  settings.Backend,
		cols40:   settings.Cols40 || flagCols40,
		closeLog: func() {},
		open:     openConsole,
	}
	if cmd.Flags().Changed("backend") {
		e.backend = flagBackend
	}
	if err := checkBackend(e.backend); err != nil {
		return nil, err
	}

	var w io.Writer = io.Discard
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		e.closeLog = func() { f.Close() }
	}
	e.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "conscade",
	})
	if flagDebug {
		e.logger.SetLevel(log.DebugLevel)
	}
	return e, nil
}

func checkBackend(name string) error {
	for _, b := range config.Backends {
		if b == name {
			return nil
		}
	}
	return fmt.Errorf("unknown backend %q", name)
}

func consFlags(cols40 bool) cons.Flags {
	if cols40 {
		return cons.FlagCols40
	}
	return 0
}

func (e *env) runtimeConfig(opts []string, game string) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     flagSeed,
		Options:  opts,
		Settings: e.settings,
		Logger:   e.logger.With("game", game),
	}
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	return nil
}

// openConsole builds an uninitialized console of backend on the real
// terminal. The DOS backends run on an emulated machine whose video
// memory is presented on a tcell screen; release shuts that screen down
// after the console's Term.
func openConsole(backend string, logger *log.Logger) (c cons.Console, release func(), err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("terminal: %w", err)
	}
	if backend == config.BackendCurses {
		return curses.New(screen, curses.WithLogger(logger)), func() {}, nil
	}

	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("terminal: %w", err)
	}
	screen.HideCursor()
	release = screen.Fini
	presenter := conterm.NewPresenter(screen)
	tb := cons.NewSystemClock()

	switch backend {
	case config.BackendPC98:
		kb := conterm.NewKeyboard(screen, pc98.Keypad, presenter.Invalidate)
		m := pc98.NewEmulated(tb, kb)
		c = pc98.New(m, pc98.WithLogger(logger), pc98.WithDisplay(presenter))
	case config.BackendPCAT:
		kb := conterm.NewKeyboard(screen, pcat.BIOSKeypad, presenter.Invalidate)
		m := pcat.NewEmulated(tb, kb)
		c = pcat.New(m, pcat.WithLogger(logger), pcat.WithDisplay(presenter))
	default:
		release()
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
	logger.Debug("terminal ready", "backend", backend)
	return c, release, nil
}
