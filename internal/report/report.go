// Package report serializes the outcomes of a rename pass to an xlsx audit
// report, and reads reports back for the interactive viewer.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ldavies/renamekit/internal/logbook"
	"github.com/ldavies/renamekit/internal/renamer"
)

var header = []string{"OriginalPath", "NewPath", "Status", "Error"}

// Write serializes outcomes to `rename_report_<timestamp>.xlsx` under dir,
// creating dir if absent, one row per outcome in order. When there are no
// outcomes no file is produced at all. Returns the written path, or "" when
// the report was suppressed.
func Write(dir string, outcomes []renamer.Outcome, log *logbook.Logbook) (string, error) {
	if len(outcomes) == 0 {
		log.Info("No report entries to write.")
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: ensure report dir: %w", err)
	}
	name := fmt.Sprintf("rename_report_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("report: write header: %w", err)
	}
	for i, out := range outcomes {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("report: cell name for row %d: %w", i+2, err)
		}
		row := []any{out.OriginalPath, out.NewPath, string(out.Status), out.Error}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			return "", fmt.Errorf("report: write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}

	log.Info("Rename report exported to: %s", path)
	return path, nil
}

// Read loads a previously written report back into outcomes, in row order.
func Read(path string) ([]renamer.Outcome, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report: %s has no header row", path)
	}

	var outcomes []renamer.Outcome
	for _, row := range rows[1:] {
		out := renamer.Outcome{
			OriginalPath: cell(row, 0),
			NewPath:      cell(row, 1),
			Status:       renamer.Status(cell(row, 2)),
			Error:        cell(row, 3),
		}
		if out.OriginalPath == "" {
			continue
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
