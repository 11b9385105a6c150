package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/platform/headless"
	"github.com/vovakirdan/conscade/internal/platform/tui"
	"github.com/vovakirdan/conscade/internal/registry"
)

var (
	flagKeys   string
	flagFrames int
	flagWidth  int
	flagHeight int
	flagColor  bool
	flagState  bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <game>",
	Short: "Run a game headless and print the final screen",
	Long: `Run a game on a simulated clock with scripted keys and print the
screen it ends on.

The key script is a comma or space separated list of key names (up, down,
left, right, return, esc, space), single characters, "wait:N" for N idle
frames after the previous key and "key*N" to repeat a key. After the
script, --frames more idle frames run.

Colors are emitted when stdout is a terminal or with --color.

Examples:
  conscade snapshot hello --keys "right*5,down*2"
  conscade snapshot mines --backend pcat --cols40 --keys "wait:10,space,wait:5"
  conscade snapshot otitame --keys "wait:10,x" --frames 30 --color`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script to play")
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", -1, "Idle frames after the script (default from settings)")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 0, "Terminal width for the curses backend (default from settings)")
	snapshotCmd.Flags().IntVar(&flagHeight, "height", 0, "Terminal height for the curses backend (default from settings)")
	snapshotCmd.Flags().BoolVar(&flagColor, "color", false, "Always emit ANSI colors")
	snapshotCmd.Flags().BoolVar(&flagState, "state", false, "Print the score line after the screen")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.closeLog()

	snap := e.settings.Snapshot
	backend := snap.Backend
	if cmd.Flags().Changed("backend") {
		backend = e.backend
	}
	frames := snap.Frames
	if flagFrames >= 0 {
		frames = flagFrames
	}
	width, height := snap.Width, snap.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}
	script, err := headless.ParseScript(flagKeys)
	if err != nil {
		return err
	}

	opts, err := config.ReadOptionFile(optionPath(gameID))
	if err != nil {
		e.logger.Warn("ignoring option file", "err", err)
	}
	rc := e.runtimeConfig(append(opts, legacyOpts...), gameID)
	if rc.Seed == 0 {
		rc.Seed = 1
	}
	game.Reset(rc)

	rig, err := headless.New(backend, headless.Options{
		Flags:  consFlags(e.cols40),
		Logger: e.logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}
	defer rig.Close()

	n, running := rig.Play(game, script)
	if running {
		var idle int
		idle, running = rig.Idle(game, frames)
		n += idle
	}
	e.logger.Info("snapshot", "game", gameID, "backend", backend, "frames", n, "running", running)

	out := cmd.OutOrStdout()
	sr := tui.NewScreenRenderer(out)
	if flagColor {
		sr.Renderer().SetColorProfile(termenv.ANSI)
	}
	fmt.Fprintln(out, sr.Render(rig.Screen()))
	if flagState {
		st := game.State()
		fmt.Fprintf(out, "score=%d high=%d over=%t running=%t\n", st.Score, st.HighScore, st.GameOver, running)
	}
	return nil
}
