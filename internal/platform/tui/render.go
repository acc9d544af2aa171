package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/dragon"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	valueStyle    = lipgloss.NewStyle().Bold(true)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	goodStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	activeTab     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4).Align(lipgloss.Center)
	overlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
)

// formatClock renders seconds as m:ss. Negative values render as 0:00.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.state.Result.IsOver():
		body = m.renderResultDialog()
	case m.showRules:
		body = m.renderRules()
	case m.showResults:
		body = m.renderResults()
	default:
		body = m.renderGame()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// plainView is View without styling, used for screenshots.
func (m Model) plainView() string {
	m.width, m.height = 0, 0
	return ansi.Strip(m.View())
}

// renderGame renders the main game panel.
func (m Model) renderGame() string {
	s := m.state
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Dragon"))
	b.WriteString("\n\n")
	b.WriteString(m.renderDifficultyTabs())
	b.WriteString("\n\n")

	status := "Paused"
	if s.Running {
		status = "Running"
	}
	b.WriteString(row("Status", valueStyle.Render(status)))
	b.WriteString(row("Game time left", valueStyle.Render(formatClock(s.GameTimer))))

	feed := valueStyle.Render(formatClock(s.FeedTimer))
	if dragon.IsFeedingAllowed(s) {
		feed = warnStyle.Render(formatClock(s.FeedTimer) + "  feed me!")
	}
	b.WriteString(row("Feeder time left", feed))
	b.WriteString(row("Successes left", valueStyle.Render(fmt.Sprintf("%d / %d", max(s.SuccessesUntilVictory, 0), s.Difficulty.GoalNumberOfSuccesses))))
	b.WriteString(row("Remaining clues", valueStyle.Render(fmt.Sprintf("%d", s.RemainingClues))))

	sound := "off"
	if m.sound {
		sound = "on"
	}
	b.WriteString(row("Sound", valueStyle.Render(sound)))

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Rules version: " + RulesVersion))

	return panelStyle.Render(b.String())
}

func row(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

// renderDifficultyTabs renders the difficulty selector.
func (m Model) renderDifficultyTabs() string {
	tiers := difficulty.All()
	tabs := make([]string, len(tiers))
	for i, d := range tiers {
		label := fmt.Sprintf("%d %s", i+1, d.Title())
		if d.Name == m.state.Difficulty.Name {
			tabs[i] = activeTab.Render(label)
		} else {
			tabs[i] = inactiveTab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderResultDialog renders the game-over dialog.
func (m Model) renderResultDialog() string {
	s := m.state
	score := dragon.ScoreOf(s)

	heading := badStyle.Render(s.Result.Heading())
	border := lipgloss.Color("9")
	if s.Result.IsWon() {
		heading = goodStyle.Render(s.Result.Heading())
		border = lipgloss.Color("10")
	}

	lines := []string{
		heading,
		"",
		s.Result.Text(),
		"",
		fmt.Sprintf("Base points: %d", score.Base),
		fmt.Sprintf("Time points: %d", score.Time),
		valueStyle.Render(fmt.Sprintf("Total: %d", score.Total())),
	}
	if m.newBest {
		lines = append(lines, warnStyle.Render("New best for "+s.Difficulty.Title()+"!"))
	}
	if m.saveErr != nil {
		lines = append(lines, mutedStyle.Render("Result not saved"))
	}
	lines = append(lines, "", activeTab.Render(s.Result.ButtonLabel()))

	return dialogStyle.BorderForeground(border).Render(strings.Join(lines, "\n"))
}

// renderRules renders the rules overlay.
func (m Model) renderRules() string {
	var b strings.Builder
	b.WriteString(overlayHeader.Render("Rules"))
	b.WriteString("\n")
	b.WriteString(RulesText)
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Rules version: " + RulesVersion + "  |  esc: back"))
	return panelStyle.Render(b.String())
}

// renderResults renders the results ledger overlay.
func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(overlayHeader.Render("Results - " + m.state.Difficulty.Title()))
	b.WriteString("\n")
	switch {
	case m.store == nil:
		b.WriteString(mutedStyle.Render("No results ledger available."))
	case len(m.results.Rows()) == 0:
		b.WriteString(mutedStyle.Render("No games recorded yet."))
	default:
		b.WriteString(m.results.View())
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("up/down: scroll  |  esc: back"))
	return panelStyle.Render(b.String())
}
