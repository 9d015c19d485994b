// Package tui renders a rename report as a browsable table, plus the styled
// end-of-run summary block for the terminal.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldavies/renamekit/internal/renamer"
	"github.com/ldavies/renamekit/internal/runner"
)

const maxTableHeight = 20

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Viewer is the bubbletea model for browsing one rename report.
type Viewer struct {
	title string
	table table.Model
}

// NewViewer builds a viewer over the rows of one report file.
func NewViewer(title string, outcomes []renamer.Outcome) Viewer {
	columns := []table.Column{
		{Title: "Original Path", Width: 42},
		{Title: "New Path", Width: 42},
		{Title: "Status", Width: 26},
		{Title: "Error", Width: 32},
	}
	rows := make([]table.Row, 0, len(outcomes))
	for _, out := range outcomes {
		rows = append(rows, table.Row{out.OriginalPath, out.NewPath, string(out.Status), out.Error})
	}
	height := len(rows) + 1
	if height > maxTableHeight {
		height = maxTableHeight
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	return Viewer{title: title, table: t}
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd { return nil }

// Update implements tea.Model; q, esc, and ctrl+c quit, everything else goes
// to the table for scrolling.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v Viewer) View() string {
	head := titleStyle.Render(v.title)
	foot := mutedStyle.Render(fmt.Sprintf("%d entries · up/down to scroll · q to quit", len(v.table.Rows())))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, v.table.View(), foot)) + "\n"
}

// RenderSummary formats the end-of-run totals for the terminal.
func RenderSummary(sum runner.Summary) string {
	mode := "live"
	if sum.DryRun {
		mode = "dry-run"
	}
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Rename pass complete (%s)", mode)),
		fmt.Sprintf("matched    %d", sum.Matched),
		fmt.Sprintf("renamed    %d", sum.Renamed),
		fmt.Sprintf("simulated  %d", sum.Simulated),
	}
	failed := fmt.Sprintf("failed     %d", sum.Failed)
	if sum.Failed > 0 {
		failed = failedStyle.Render(failed)
	}
	lines = append(lines, failed)
	if sum.ReportPath != "" {
		lines = append(lines, mutedStyle.Render("report: "+sum.ReportPath))
	}
	lines = append(lines, mutedStyle.Render("log:    "+sum.LogPath))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
