// dodge-gfx runs dodge in a desktop window. Built with GOOS=js GOARCH=wasm
// it runs in a browser canvas instead.
//
// Usage:
//
//	dodge-gfx [--assets dir] [--config file] [--difficulty preset] [--seed n]
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/assets"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/gfx"
)

var (
	flagAssets     string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagScale      float64
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "dodge-gfx",
	Short: "Dodge in a window",
	Long: `Play dodge with sprites in a desktop window.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart the run
  Enter        - Dismiss the game-over notice
  Esc/Q        - Quit

Images are read from --assets (background.png, character.png) or the
built-in set. If they cannot be loaded the game does not start.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with background.png and character.png")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show ticks per second")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge-gfx",
	})

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	images, err := assets.Load(flagAssets)
	if err != nil {
		logger.Error("failed to load assets", "dir", flagAssets, "error", err)
		return err
	}
	logger.Info("assets loaded", "dir", flagAssets)

	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)
	dodge.SetLogger(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := dodge.New()
	game.Reset(core.RuntimeConfig{TickRate: ebiten.DefaultTPS, Seed: seed})

	cfg := game.World().Config()
	ebiten.SetWindowSize(int(cfg.Canvas.Width*flagScale), int(cfg.Canvas.Height*flagScale))
	ebiten.SetWindowTitle("Dodge")

	g := gfx.New(game, images, logger)
	g.SetDebug(flagDebug)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
