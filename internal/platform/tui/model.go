package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-dragon/internal/audio"
	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/dragon"
	"github.com/vovakirdan/pocket-dragon/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Difficulty difficulty.Config
	Sound      bool
	Seed       int64 // Zero means time-based
	Store      *storage.Store
	Alerter    audio.Alerter
	Player     string // SSH user, empty for local play
	Width      int
	Height     int
	Logger     *log.Logger

	// ScreenshotDir receives ctrl+s snapshots. Empty means ~/.pocketdragon/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one Pocket Dragon session.
type Model struct {
	state   dragon.State
	src     dragon.Source
	sound   bool
	alerter audio.Alerter
	store   *storage.Store
	player  string
	logger  *log.Logger
	shotDir string

	keys    KeyMap
	help    help.Model
	results table.Model

	showRules   bool
	showResults bool

	tickSeq  int
	saved    bool // Result of the current game already recorded
	savedID  int64
	newBest  bool
	saveErr  error
	width    int
	height   int
	quitting bool
}

// NewModel creates a model positioned at the initial state for opts.Difficulty.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d := opts.Difficulty
	if d.Name == "" {
		d = difficulty.Easy
	}

	alerter := opts.Alerter
	if alerter == nil {
		alerter = audio.Nop{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		state:   dragon.New(d),
		src:     rand.New(rand.NewSource(seed)), //nolint:gosec // Gameplay randomness
		sound:   opts.Sound,
		alerter: alerter,
		store:   opts.Store,
		player:  opts.Player,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		results: newResultsTable(),
		width:   opts.Width,
		height:  opts.Height,
	}
	m.keys.sync(m.state)
	return m
}

// State returns the current game state.
func (m Model) State() dragon.State {
	return m.state
}

// SoundEnabled reports whether alerts are played.
func (m Model) SoundEnabled() bool {
	return m.sound
}

// IsQuitting returns true once the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init starts paused; the first tick is scheduled by Start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case TickMsg:
		m, cmd = m.handleTick(msg)
	}

	m.keys.sync(m.state)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// The game-over dialog is modal
	if m.state.Result.IsOver() {
		if key.Matches(msg, m.keys.Close) {
			return m.transition(dragon.Apply(m.state, dragon.ActionCloseResult, m.src))
		}
		return m, nil
	}

	if m.showRules {
		if key.Matches(msg, m.keys.Back) {
			m.showRules = false
		}
		return m, nil
	}

	if m.showResults {
		if key.Matches(msg, m.keys.Back) {
			m.showResults = false
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.transition(dragon.Apply(m.state, dragon.ActionToggle, m.src))
	case key.Matches(msg, m.keys.Reset):
		return m.transition(dragon.Apply(m.state, dragon.ActionReset, m.src))
	case key.Matches(msg, m.keys.Feed):
		return m.transition(dragon.Apply(m.state, dragon.ActionFeed, m.src))
	case key.Matches(msg, m.keys.LogSuccess):
		return m.transition(dragon.Apply(m.state, dragon.ActionLogSuccess, m.src))
	case key.Matches(msg, m.keys.GeneralClue):
		return m.transition(dragon.Apply(m.state, dragon.ActionGeneralClue, m.src))
	case key.Matches(msg, m.keys.SpecificClue):
		return m.transition(dragon.Apply(m.state, dragon.ActionSpecificClue, m.src))
	case key.Matches(msg, m.keys.Easy, m.keys.Medium, m.keys.Hard):
		if d, ok := m.keys.difficultyFor(msg.String()); ok {
			return m.transition(dragon.SetDifficulty(m.state, d))
		}
	case key.Matches(msg, m.keys.Sound):
		m.sound = !m.sound
		if m.sound {
			m.alerter.Alert(dragon.AlertTier1)
		}
	case key.Matches(msg, m.keys.Rules):
		m.showRules = true
	case key.Matches(msg, m.keys.Results):
		m.openResults()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances the game by one second.
// Ticks from a cancelled schedule are dropped so a pause never loses or doubles a second.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.state.Running {
		return m, nil
	}

	next, alert := dragon.Tick(m.state, m.sound, m.src)
	if alert != dragon.AlertNone {
		m.alerter.Alert(alert)
	}

	if next.Running {
		m.state = next
		return m, tickCmd(m.tickSeq)
	}
	return m.transition(next)
}

// transition installs next and keeps the tick schedule and the ledger in step with it.
func (m Model) transition(next dragon.State) (Model, tea.Cmd) {
	wasRunning := m.state.Running
	m.state = next

	var cmd tea.Cmd
	switch {
	case !wasRunning && next.Running:
		m.tickSeq++
		cmd = tickCmd(m.tickSeq)
	case wasRunning && !next.Running:
		// Invalidate the tick already in flight
		m.tickSeq++
	}

	if next.Result.IsOver() {
		m.recordResult()
	} else {
		m.saved = false
		m.newBest = false
		m.saveErr = nil
	}
	return m, cmd
}

// recordResult saves the finished game to the ledger once.
func (m *Model) recordResult() {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	entry := storage.NewEntry(m.state, m.player)
	best, err := m.store.BestTotal(entry.Difficulty)
	if err != nil {
		m.logger.Warn("could not read best total", "difficulty", entry.Difficulty, "error", err)
	}

	id, err := m.store.SaveResult(entry)
	if err != nil {
		m.saveErr = err
		m.logger.Warn("could not save result", "difficulty", entry.Difficulty, "error", err)
		return
	}
	m.savedID = id
	m.newBest = entry.Won && entry.Total > best
	m.logger.Info("result saved",
		"id", id,
		"difficulty", entry.Difficulty,
		"won", entry.Won,
		"total", entry.Total,
		"player", entry.Player,
	)
}

// openResults loads the ledger for the selected difficulty into the results table.
func (m *Model) openResults() {
	m.showResults = true
	if m.store == nil {
		m.results.SetRows(nil)
		return
	}
	entries, err := m.store.TopResults(string(m.state.Difficulty.Name), maxResults)
	if err != nil {
		m.logger.Warn("could not load results", "error", err)
		entries = nil
	}
	m.results.SetRows(resultRows(entries))
	m.results.GotoTop()
}

// saveScreenshot writes the current view as plain text.
func (m *Model) saveScreenshot() {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".pocketdragon", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.state.Difficulty.Name, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.plainView()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
