package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. Without --difficulty a menu asks
for a difficulty preset first.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart the run
  Enter        - Dismiss the game-over notice
  Esc          - Back to the difficulty menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Half-size ramp steps
  normal - Ramp as configured
  hard   - Faster start, denser spawns
  fixed  - No progression, stays at the config's initial values

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --config ./my-dodge.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes (applies from the next run)")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --config")
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs only go to --log-file
	logger, closeLog, err := newLogger("dodge", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	dodge.SetConfigPath(flagConfig)
	dodge.SetLogger(logger)

	opts := tui.Options{Logger: logger}
	if flagWatch {
		watcher, watchErr := config.NewWatcher(flagConfig)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", watchErr)
			os.Exit(1)
		}
		defer watcher.Close() //nolint:errcheck // Best-effort close on exit
		opts.Watcher = watcher
		logger.Info("watching config", "path", watcher.Path())
	}

	if runErr := tui.Run(dodge.ID, cfg, preset, opts); runErr != nil {
		logger.Error("game ended with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
