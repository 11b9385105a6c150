package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/conscade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start the launcher.

Use arrow keys or j/k to pick a game, left/right to switch the backend,
Tab to toggle 40 columns and Enter to play. After a game ends you return
to the menu.

Controls:
  Up/Down/j/k   - Navigate
  Left/Right    - Backend
  Tab           - 40 columns
  Enter/Space   - Play
  Q/Esc         - Quit`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.closeLog()

	opts := tui.MenuOptions{Backend: e.backend, Cols40: e.cols40, Width: 80, Height: 25}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width, opts.Height = w, h
	}

	for {
		res, err := tui.RunMenu(opts)
		if err != nil {
			return err
		}
		if res.Quit || res.GameID == "" {
			return nil
		}
		opts.Backend, opts.Cols40 = res.Backend, res.Cols40

		if err := playGame(cmd.Context(), e, res.GameID, res.Backend, res.Cols40); err != nil {
			e.logger.Error("game failed", "game", res.GameID, "err", err)
			fmt.Fprintf(os.Stderr, "Error running %s: %v\n", res.GameID, err)
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}
