package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/games/engine"
	"github.com/vovakirdan/conscade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game on the selected backend.

Controls (all games):
  Cursor keys / WASD - Move
  Space / Z          - Primary action
  Enter / X          - Secondary action
  Esc / C            - Cancel

Game options are single-dash tokens stored per game in <game>.cfg in the
current directory. Command line tokens override the file, and games that
keep options write the file back when they exit normally.

Examples:
  conscade play mines
  conscade play otige --backend pcat
  conscade play otitame --backend pcat --cols40 -piece1
  conscade play otitame -hs0`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'conscade list' to see available games)", gameID)
	}
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.closeLog()
	return playGame(cmd.Context(), e, gameID, e.backend, e.cols40)
}

func optionPath(gameID string) string {
	return gameID + ".cfg"
}

// playGame runs one game to completion on the real terminal.
func playGame(ctx context.Context, e *env, gameID, backend string, cols40 bool) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	opts, err := config.ReadOptionFile(optionPath(gameID))
	if err != nil {
		e.logger.Warn("ignoring option file", "err", err)
	}
	opts = append(opts, legacyOpts...)
	game.Reset(e.runtimeConfig(opts, gameID))

	c, release, err := e.open(backend, e.logger)
	if err != nil {
		return err
	}
	defer release()
	err = engine.Play(ctx, c, consFlags(cols40), game, e.logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	st := game.State()
	e.logger.Info("game over", "game", gameID, "score", st.Score, "high", st.HighScore)
	if saver, ok := game.(registry.OptionSaver); ok {
		if err := config.WriteOptionFile(optionPath(gameID), saver.SaveOptions()); err != nil {
			return err
		}
	}
	return nil
}
