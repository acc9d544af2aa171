package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-dragon/internal/audio"
	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/platform/tui"
	"github.com/vovakirdan/pocket-dragon/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Pocket Dragon. The game starts paused.

Controls:
  Space/S    - Start/Pause
  F          - Feed the dragon (feeder timer at 0:30 or less)
  L/Enter    - Log a success
  G          - Use a general clue (costs 1)
  C          - Use a specific clue (costs 2)
  1/2/3      - Easy/Medium/Hard (while paused)
  R          - Reset (while paused)
  M          - Sound on/off
  ?          - Rules
  T          - Results
  Q/Ctrl+C   - Quit

Examples:
  pocketdragon play
  pocketdragon play --difficulty medium
  pocketdragon play --mute --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard (default from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) {
	d, err := appConfig.DifficultyConfig()
	if flagDifficulty != "" {
		d, err = difficulty.ByName(flagDifficulty)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pocketdragon difficulties' to see available tiers.")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	gameLog, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.DBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := appConfig.Sound && !flagMute
	alerter := newLocalAlerter()

	runErr := tui.Run(tui.Options{
		Difficulty: d,
		Sound:      sound,
		Seed:       appConfig.Seed,
		Store:      store,
		Alerter:    alerter,
		Width:      width,
		Height:     height,
		Logger:     gameLog,
	})

	if sm, ok := alerter.(*audio.SoundManager); ok {
		sm.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLocalAlerter prefers the audio device and falls back to the terminal bell.
func newLocalAlerter() audio.Alerter {
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, using terminal bell", "error", err)
		return audio.NewBell(os.Stderr)
	}
	return sm
}

// fileLogger opens ~/.pocketdragon/pocketdragon.log for the duration of a game.
func fileLogger() (*log.Logger, func()) {
	nop := func() {}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), nop
	}
	dir := filepath.Join(home, ".pocketdragon")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), nop
	}

	f, err := os.OpenFile(filepath.Join(dir, "pocketdragon.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "error", err)
		return log.New(io.Discard), nop
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocketdragon",
	})
	l.SetLevel(logger.GetLevel())
	return l, func() { f.Close() }
}
