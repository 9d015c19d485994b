// Package mapping loads the filename mapping workbook that drives a rename
// pass. The workbook's first sheet must carry a CurrentFilename column and a
// NewFilename column; everything else is ignored.
package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ldavies/renamekit/internal/logbook"
)

// Required header names, matched exactly and order-independently.
const (
	ColumnCurrent = "CurrentFilename"
	ColumnNew     = "NewFilename"
)

// ErrMissingColumn reports a workbook whose header row lacks a required
// column. It aborts the run before any directory traversal.
var ErrMissingColumn = errors.New("mapping: missing required column")

// Table maps a current base name to its replacement. Keys are case-sensitive
// base names; the table is immutable once loaded.
type Table map[string]string

// Load reads the first sheet of the workbook at path and builds the mapping
// table. Rows with an empty CurrentFilename cell are skipped. A duplicate
// CurrentFilename keeps the later row's value; each collision is logged at
// WARN level so the overwrite is visible in the audit trail.
func Load(path string, log *logbook.Logbook) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Error("Failed to load mapping workbook: %v", err)
		return nil, fmt.Errorf("mapping: open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Error("Failed to read mapping sheet %q: %v", sheet, err)
		return nil, fmt.Errorf("mapping: read sheet %s: %w", sheet, err)
	}

	currentIdx, newIdx := -1, -1
	if len(rows) > 0 {
		for i, name := range rows[0] {
			switch strings.TrimSpace(name) {
			case ColumnCurrent:
				currentIdx = i
			case ColumnNew:
				newIdx = i
			}
		}
	}
	if currentIdx < 0 || newIdx < 0 {
		missing := missingColumns(currentIdx, newIdx)
		log.Error("Mapping workbook is missing column(s): %s", missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, missing)
	}

	table := make(Table)
	for _, row := range rows[1:] {
		current := cell(row, currentIdx)
		if current == "" {
			continue
		}
		next := cell(row, newIdx)
		if prev, ok := table[current]; ok {
			log.Warn("Duplicate mapping for %q: %q replaces %q", current, next, prev)
		}
		table[current] = next
	}

	log.Info("Loaded %d filename mappings.", len(table))
	return table, nil
}

func missingColumns(currentIdx, newIdx int) string {
	var missing []string
	if currentIdx < 0 {
		missing = append(missing, ColumnCurrent)
	}
	if newIdx < 0 {
		missing = append(missing, ColumnNew)
	}
	return strings.Join(missing, ", ")
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
