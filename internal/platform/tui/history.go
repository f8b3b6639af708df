package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

// historyColumns lays out one recorded game per row.
var historyColumns = []table.Column{
	{Title: "ID", Width: 5},
	{Title: "Date", Width: 16},
	{Title: "Player", Width: 12},
	{Title: "Grid", Width: 7},
	{Title: "Outcome", Width: 7},
	{Title: "Length", Width: 6},
	{Title: "Ticks", Width: 6},
}

// HistoryTable renders records as a static table followed by a summary line.
// height is the number of visible rows; 0 shows them all.
func HistoryTable(records []storage.GameRecord, sum storage.Summary, height int) string {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Player,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Outcome,
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Ticks),
		}
	}

	if height <= 0 {
		height = len(rows)
	}

	width := 0
	for _, c := range historyColumns {
		width += c.Width + 2 // cell padding
	}

	t := table.New(
		table.WithColumns(historyColumns),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(height+2), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is focused in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	summary := fmt.Sprintf("Played: %d  Won: %d  Lost: %d  Longest: %d",
		sum.Played, sum.Won, sum.Lost, sum.Longest)

	return lipgloss.JoinVertical(lipgloss.Left,
		t.View(),
		"",
		helpStyle.Render(summary),
	)
}
