package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-dragon/internal/storage"
)

// Results panel layout constants
const (
	maxResults   = 50 // Max ledger rows to load
	resultsRowsH = 10 // Visible table rows
)

// newResultsTable creates the ledger table shown in the results overlay.
func newResultsTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 7},
		{Title: "Total", Width: 6},
		{Title: "Base", Width: 5},
		{Title: "Time", Width: 5},
		{Title: "Left", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(resultsRowsH),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows converts ledger entries to table rows, ranked in order.
func resultRows(entries []storage.ResultEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		outcome := "lost"
		if e.Won {
			outcome = "won"
		}
		player := e.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			outcome,
			strconv.Itoa(e.Total),
			strconv.Itoa(e.BasePoints),
			strconv.Itoa(e.TimePoints),
			formatClock(e.GameTimer),
			player,
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	return rows
}
