package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/dragon"
	"github.com/vovakirdan/pocket-dragon/internal/storage"
)

// recorder collects alerts.
type recorder struct {
	alerts []dragon.Alert
}

func (r *recorder) Alert(a dragon.Alert) {
	r.alerts = append(r.alerts, a)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, _ = update(t, m, runeKey(k))
	return m
}

// tick delivers n ticks from the current schedule.
func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{Seq: m.tickSeq})
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	s := m.State()
	if s.Difficulty.Name != difficulty.NameEasy {
		t.Errorf("difficulty = %s, expected easy", s.Difficulty.Name)
	}
	if s.Running {
		t.Error("new model should be paused")
	}
	if !m.keys.Toggle.Enabled() {
		t.Error("toggle should be enabled")
	}
	if m.keys.Feed.Enabled() || m.keys.LogSuccess.Enabled() {
		t.Error("feed and log success should be disabled while paused")
	}
	if m.Init() != nil {
		t.Error("Init() should not schedule a tick")
	}
}

func TestToggleSchedulesTick(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m, cmd := update(t, m, runeKey("s"))
	if !m.State().Running {
		t.Fatal("expected running after toggle")
	}
	if cmd == nil {
		t.Fatal("expected a tick command after start")
	}
	if !m.keys.LogSuccess.Enabled() {
		t.Error("log success should be enabled while running")
	}
	if m.keys.Easy.Enabled() || m.keys.Reset.Enabled() {
		t.Error("difficulty and reset should be disabled while running")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m = press(t, m, "s")
	first := m.tickSeq
	m = press(t, m, "s") // pause
	m = press(t, m, "s") // resume

	m, cmd := update(t, m, TickMsg{Seq: first})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if got := m.State().GameTimer; got != 300 {
		t.Errorf("GameTimer = %d after stale tick, expected 300", got)
	}

	m, cmd = update(t, m, TickMsg{Seq: m.tickSeq})
	if cmd == nil {
		t.Error("current tick should reschedule")
	}
	if got := m.State().GameTimer; got != 299 {
		t.Errorf("GameTimer = %d, expected 299", got)
	}
}

func TestTickWhilePausedIgnored(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m = press(t, m, "s")
	m = tick(t, m, 5)
	m = press(t, m, "s")

	seq := m.tickSeq
	m, _ = update(t, m, TickMsg{Seq: seq})
	if got := m.State().GameTimer; got != 295 {
		t.Errorf("GameTimer = %d, expected 295", got)
	}
}

func TestFeedBecomesAvailable(t *testing.T) {
	rec := &recorder{}
	m := NewModel(Options{Seed: 1, Sound: true, Alerter: rec})

	m = press(t, m, "s")
	m = tick(t, m, 89)
	if m.keys.Feed.Enabled() {
		t.Fatalf("feed enabled at FeedTimer=%d", m.State().FeedTimer)
	}
	m = press(t, m, "f")
	if got := m.State().FeedTimer; got != 31 {
		t.Fatalf("FeedTimer = %d, expected 31 (feed refused)", got)
	}

	m = tick(t, m, 1)
	if !m.keys.Feed.Enabled() {
		t.Fatal("feed should be enabled at 30")
	}
	if len(rec.alerts) != 1 || rec.alerts[0] != dragon.AlertTier1 {
		t.Errorf("alerts = %v, expected [Tier1]", rec.alerts)
	}

	m = press(t, m, "f")
	if got := m.State().FeedTimer; got != 90 {
		t.Errorf("FeedTimer = %d after feeding, expected 90", got)
	}
}

func TestSoundOffSuppressesAlerts(t *testing.T) {
	rec := &recorder{}
	m := NewModel(Options{Seed: 1, Sound: false, Alerter: rec})

	m = press(t, m, "s")
	m = tick(t, m, 110)
	if len(rec.alerts) != 0 {
		t.Errorf("alerts = %v, expected none", rec.alerts)
	}
}

func TestSoundToggle(t *testing.T) {
	rec := &recorder{}
	m := NewModel(Options{Seed: 1, Alerter: rec})

	m = press(t, m, "m")
	if !m.SoundEnabled() {
		t.Fatal("sound should be on")
	}
	if len(rec.alerts) != 1 || rec.alerts[0] != dragon.AlertTier1 {
		t.Errorf("alerts = %v, expected a preview cling", rec.alerts)
	}

	m = press(t, m, "m")
	if m.SoundEnabled() {
		t.Error("sound should be off")
	}
	if len(rec.alerts) != 1 {
		t.Errorf("disabling sound should not alert, got %v", rec.alerts)
	}
}

func TestDifficultyKeys(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m = press(t, m, "3")
	if got := m.State().Difficulty.Name; got != difficulty.NameHard {
		t.Fatalf("difficulty = %s, expected hard", got)
	}
	if got := m.State().GameTimer; got != 420 {
		t.Errorf("GameTimer = %d, expected 420", got)
	}

	m = press(t, m, "s")
	m = press(t, m, "1")
	if got := m.State().Difficulty.Name; got != difficulty.NameHard {
		t.Errorf("difficulty changed while running to %s", got)
	}
}

func TestWinSavesResultOnce(t *testing.T) {
	store := openStore(t)
	m := NewModel(Options{Seed: 1, Store: store, Player: "alice"})

	m = press(t, m, "s")
	m = tick(t, m, 10)
	for range difficulty.Easy.GoalNumberOfSuccesses {
		m = press(t, m, "l")
	}

	s := m.State()
	if s.Result != dragon.Won || s.Running {
		t.Fatalf("result = %s running = %v, expected won and stopped", s.Result, s.Running)
	}
	if !m.keys.Close.Enabled() {
		t.Error("close should be enabled on the result dialog")
	}
	if !m.newBest {
		t.Error("first win should be a new best")
	}

	// Keys other than close are swallowed by the dialog
	m = press(t, m, "l")
	m = press(t, m, "s")
	if m.State().Result != dragon.Won {
		t.Fatal("dialog should stay open")
	}

	entries, err := store.TopResults("easy", 10)
	if err != nil {
		t.Fatalf("TopResults() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("saved %d results, expected 1", len(entries))
	}
	e := entries[0]
	if !e.Won || e.Player != "alice" || e.BasePoints != 1 || e.TimePoints != 29 || e.Total != 30 {
		t.Errorf("entry = %+v", e)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s = m.State()
	if s.Result != dragon.NoResult || s.Running || s.GameTimer != 300 {
		t.Errorf("after close = %+v, expected a fresh easy game", s)
	}
	if m.saved {
		t.Error("saved flag should clear for the next game")
	}
}

func TestLossIsRecorded(t *testing.T) {
	store := openStore(t)
	m := NewModel(Options{Seed: 1, Store: store})

	m = press(t, m, "s")
	m, cmd := update(t, m, TickMsg{Seq: m.tickSeq})
	for i := 1; i < 120; i++ {
		m, cmd = update(t, m, TickMsg{Seq: m.tickSeq})
	}
	if cmd != nil {
		t.Error("losing tick should not reschedule")
	}
	if m.State().Result != dragon.Lost {
		t.Fatalf("result = %s, expected lost", m.State().Result)
	}

	stats, err := store.GetStats("easy")
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Played != 1 || stats.Won != 0 {
		t.Errorf("stats = %+v, expected one loss", stats)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.State().Result != dragon.NoResult {
		t.Error("esc should close the dialog")
	}
}

func TestOverlays(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m = press(t, m, "?")
	if !m.showRules {
		t.Fatal("rules overlay should open")
	}
	if v := m.View(); !strings.Contains(v, "Rules version: "+RulesVersion) {
		t.Error("rules view missing version")
	}
	m = press(t, m, "s")
	if m.State().Running {
		t.Error("game keys should be ignored under the rules overlay")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.showRules {
		t.Error("esc should close the rules overlay")
	}

	m = press(t, m, "t")
	if !m.showResults {
		t.Fatal("results overlay should open")
	}
	if v := m.View(); !strings.Contains(v, "No results ledger") {
		t.Error("results view should report a missing ledger")
	}
	m = press(t, m, "t")
	if m.showResults {
		t.Error("t should close the results overlay")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(Options{Seed: 1})

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestView(t *testing.T) {
	m := NewModel(Options{Seed: 1, Difficulty: difficulty.Medium})

	v := m.plainView()
	for _, want := range []string{"Pocket Dragon", "Game time left", "6:00", "Feeder time left", "2:00", "5 / 5", "Rules version: 1.0.1", "2 Medium"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{Seed: 1, ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "easy_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("found %d screenshots, expected 1", len(matches))
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{-3, "0:00"},
		{9, "0:09"},
		{120, "2:00"},
		{419, "6:59"},
	}

	for _, tt := range tests {
		if got := formatClock(tt.secs); got != tt.want {
			t.Errorf("formatClock(%d) = %q, expected %q", tt.secs, got, tt.want)
		}
	}
}

func TestResultRows(t *testing.T) {
	rows := resultRows([]storage.ResultEntry{
		{Won: true, Total: 20, BasePoints: 8, TimePoints: 12, GameTimer: 123, Player: ""},
		{Won: false, Total: 0, Player: "bob"},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "won" || rows[0][2] != "20" || rows[0][5] != "2:03" || rows[0][6] != "local" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "lost" || rows[1][6] != "bob" {
		t.Errorf("row 1 = %v", rows[1])
	}
}
