// dodge is a falling-obstacle dodge game for the terminal.
//
// Usage:
//
//	dodge list              - List available games
//	dodge play              - Play in this terminal
//	dodge serve             - Start SSH server for remote play
//	dodge config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - steer clear of falling blocks in your terminal",
	Long: `Dodge is a terminal game: move your block around the field while
obstacles rain down faster and more often the longer you survive.
Your score is the number of seconds you lasted.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration as YAML

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --config ./dodge.yaml --watch
  dodge serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
