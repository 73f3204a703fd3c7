package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and difficulty presets",
	Long:  `Shows the registered games and the difficulty presets accepted by --difficulty.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Games:")
	for _, g := range games {
		fmt.Printf("  %-8s %s", g.ID, g.Title)
		if g.Description != "" {
			fmt.Printf(" - %s", g.Description)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Difficulty presets:")
	for _, p := range config.Presets {
		fmt.Printf("  %-8s %s\n", p, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'dodge play --difficulty <preset>' to skip the menu.")
}
