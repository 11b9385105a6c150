// conscade runs small console games on a choice of text console
// backends: a curses style terminal, or emulated PC-98 and PC/AT text
// mode shown inside the terminal.
//
// Usage:
//
//	conscade list                - List available games
//	conscade play <game>         - Play a game
//	conscade menu                - Pick games interactively
//	conscade snapshot <game>     - Run a game headless and print its screen
//
// Global flags:
//
//	--backend curses|pc98|pcat  - Console backend (default from settings)
//	--cols40                    - 40 column text mode where available
//	--seed <value>              - RNG seed (0 = time based)
//	--config <path>             - settings.yaml to load
//	--log <path>                - Write the log to a file
//	--debug                     - Log at debug level
//
// Single-dash game options such as -hs100 or -piece2 are passed to the
// game and override its option file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/conscade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/conscade/internal/games/hello"
	_ "github.com/vovakirdan/conscade/internal/games/mines"
	_ "github.com/vovakirdan/conscade/internal/games/otige"
	_ "github.com/vovakirdan/conscade/internal/games/otitame"
)

var (
	// Global flags
	flagBackend string
	flagCols40  bool
	flagSeed    int64
	flagConfig  string
	flagLog     string
	flagDebug   bool

	// legacyOpts are the "-name<value>" game options split off the
	// command line.
	legacyOpts []string
)

func main() {
	var rest []string
	legacyOpts, rest = config.SplitLegacyArgs(os.Args[1:], config.OptHighScore, config.OptPiece)
	rootCmd.SetArgs(rest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conscade",
	Short: "Console games on curses, PC-98 and PC/AT text screens",
	Long: `conscade runs a handful of small text console games (mines, two
falling-block games and a hello world) on one of three console backends:

  curses  - the terminal itself
  pc98    - an emulated PC-98 text VRAM, Shift-JIS, 80x25
  pcat    - an emulated PC/AT color text adapter, CP437, 80x25 or 40x25

Examples:
  conscade list
  conscade play mines --backend pc98
  conscade play otitame -piece3
  conscade menu
  conscade snapshot otige --keys "x,wait:20"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Console backend: curses, pc98 or pcat (default from settings)")
	rootCmd.PersistentFlags().BoolVar(&flagCols40, "cols40", false, "Use 40 column text mode where the backend has one")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write log output to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
}
