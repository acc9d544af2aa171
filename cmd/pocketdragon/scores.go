package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show recorded results",
	Long: `Display the best results for a difficulty, or a summary of every
difficulty when none is given.

Examples:
  pocketdragon scores
  pocketdragon scores hard
  pocketdragon scores easy --limit 20
  pocketdragon scores medium --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	d, err := difficulty.ByName(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pocketdragon difficulties' to see available tiers.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearResults(string(d.Name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all %s results.\n", d.Title())
		return
	}

	printTop(store, d)
}

func printTop(store *storage.Store, d difficulty.Config) {
	entries, err := store.TopResults(string(d.Name), flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", d.Title())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pocketdragon play --difficulty %s' to record the first one!\n", d.Name)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-4s  %-4s  %-8s  %-12s  %s\n", "Rank", "Result", "Total", "Base", "Time", "Duration", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-4s  %-4s  %-8s  %-12s  %s\n", "----", "------", "-----", "----", "----", "--------", "------", "----")

	for i, e := range entries {
		outcome := "lost"
		if e.Won {
			outcome = "won"
		}
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6s  %-5d  %-4d  %-4d  %-8s  %-12s  %s\n",
			i+1, outcome, e.Total, e.BasePoints, e.TimePoints,
			clock(e.DurationSecs),
			player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestTotal(string(d.Name)); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Results summary")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-5s  %-6s  %-4s  %-7s  %s\n", "Tier", "Played", "Won", "Win %", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-6s  %-5s  %-6s  %-4s  %-7s  %s\n", "----", "------", "---", "-----", "----", "-------", "-----------")

	for _, d := range difficulty.All() {
		st, ok := all[string(d.Name)]
		if !ok || st.Played == 0 {
			fmt.Printf("  %-8s  %-6d  %-5d  %-6s  %-4s  %-7s  %s\n", d.Title(), 0, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-5d  %-6.0f  %-4d  %-7.1f  %s\n",
			d.Title(), st.Played, st.Won, st.WinRate()*100, st.BestTotal, st.AvgTotal,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
