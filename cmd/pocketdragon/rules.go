package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-dragon/internal/platform/tui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(tui.RulesText)
		fmt.Println()
		fmt.Printf("Rules version: %s\n", tui.RulesVersion)
	},
}
