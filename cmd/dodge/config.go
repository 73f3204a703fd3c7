package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file is resolved the same way 'play' resolves it:
  --config path -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> built-in defaults

The output is a complete config file and can be saved as a starting point:
  dodge config > ~/.arcade/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadDodge(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if preset := config.ParsePreset(flagShowDifficulty); preset != "" {
		config.ApplyDodgePreset(&cfg, preset)
	} else if flagShowDifficulty != "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagShowDifficulty)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}
