// pocketdragon is a terminal version of the Pocket Dragon companion game:
// keep the dragon fed while racing to log enough successes.
//
// Usage:
//
//	pocketdragon play                 - Play locally
//	pocketdragon serve                - Start SSH server for remote play
//	pocketdragon scores [difficulty]  - Show recorded results
//	pocketdragon difficulties         - List difficulty tiers
//	pocketdragon rules                - Print the rules
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.pocketdragon/config.yaml, ./configs/pocketdragon.yaml)
//	--db <path>     - Results database path (default: ~/.pocketdragon/results.db)
//	--seed <value>  - RNG seed for reproducible clue timers
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-dragon/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
	flagDebug  bool

	// Resolved before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocketdragon",
	Short: "Pocket Dragon - feed your dragon, log your successes",
	Long: `Pocket Dragon is a timer game played in your terminal.

Keep the dragon's feeder timer from running out while you log enough
successes to win before the game timer ends.

Available commands:
  play          - Play a game locally
  serve         - Start SSH server for remote play
  scores        - View recorded results
  difficulties  - List difficulty tiers
  rules         - Print the rules

Examples:
  pocketdragon play
  pocketdragon play --difficulty hard --mute
  pocketdragon serve --ssh :2222
  pocketdragon scores medium`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadConfig resolves the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocketdragon",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("config rejected, using defaults", "source", cfg.Source, "error", err)
		fallback := config.Default()
		fallback.DBPath, fallback.Seed = cfg.DBPath, cfg.Seed
		cfg = fallback
	}

	logger.Debug("config loaded", "source", cfg.Source, "difficulty", cfg.Difficulty, "db", cfg.DBPath)
	appConfig = cfg
	return nil
}
