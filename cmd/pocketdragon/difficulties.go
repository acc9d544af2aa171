package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List the difficulty tiers",
	Long:  `Shows the goal, timers and base points of every difficulty tier.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty tiers:")
	fmt.Println()

	fmt.Printf("  %-6s  %-9s  %-9s  %-11s  %s\n", "Name", "Successes", "Game time", "Feeder time", "Base points")
	fmt.Printf("  %-6s  %-9s  %-9s  %-11s  %s\n", "----", "---------", "---------", "-----------", "-----------")

	for _, d := range difficulty.All() {
		fmt.Printf("  %-6s  %-9d  %-9s  %-11s  %d\n",
			d.Name, d.GoalNumberOfSuccesses,
			clock(d.InitialGameTimer), clock(d.InitialFeedTimer), d.Points)
	}

	fmt.Println()
	fmt.Println("Run 'pocketdragon play --difficulty <name>' to play a tier.")
}

func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
