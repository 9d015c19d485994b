package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldavies/renamekit/internal/renamer"
	"github.com/ldavies/renamekit/internal/runner"
)

func sampleOutcomes() []renamer.Outcome {
	return []renamer.Outcome{
		{OriginalPath: "/drive/a.txt", NewPath: "/drive/b.txt", Status: renamer.StatusRenamed},
		{OriginalPath: "/drive/x.txt", NewPath: "/drive/y.txt", Status: renamer.StatusFailed, Error: "permission denied"},
	}
}

func TestViewerPopulatesTableRows(t *testing.T) {
	v := NewViewer("rename_report_20250101_120000.xlsx", sampleOutcomes())
	if got := len(v.table.Rows()); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}
	view := v.View()
	if !strings.Contains(view, "rename_report_20250101_120000.xlsx") {
		t.Fatal("view is missing the report title")
	}
	if !strings.Contains(view, "2 entries") {
		t.Fatal("view is missing the entry count")
	}
}

func TestViewerQuitsOnQ(t *testing.T) {
	v := NewViewer("report.xlsx", sampleOutcomes())
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("cmd = nil, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestRenderSummaryShowsTotalsAndPaths(t *testing.T) {
	out := RenderSummary(runner.Summary{
		Matched:    3,
		Simulated:  3,
		DryRun:     true,
		ReportPath: "/logs/rename_report_x.xlsx",
		LogPath:    "/logs/file_renamer_x.log",
	})
	for _, want := range []string{"dry-run", "matched", "simulated", "/logs/rename_report_x.xlsx", "/logs/file_renamer_x.log"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
