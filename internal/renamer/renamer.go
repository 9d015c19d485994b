// Package renamer walks a directory tree and renames every regular file
// whose base name appears in the mapping table. The walk and the rename are
// fused into a single pass; files the mapping does not name are never
// touched and produce no outcome.
package renamer

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ldavies/renamekit/internal/logbook"
	"github.com/ldavies/renamekit/internal/mapping"
)

// Status classifies the outcome of one matched file.
type Status string

const (
	StatusSimulated Status = "Dry-run: Rename simulated"
	StatusRenamed   Status = "Renamed"
	StatusFailed    Status = "Failed"
)

// Outcome records what happened to one file that matched the mapping.
// Error is non-empty only when Status is StatusFailed.
type Outcome struct {
	OriginalPath string
	NewPath      string
	Status       Status
	Error        string
}

// Engine performs the fused walk-and-rename pass. Fs is injected so tests
// can run against an in-memory filesystem.
type Engine struct {
	Fs     afero.Fs
	Log    *logbook.Logbook
	DryRun bool
}

// Run visits every regular file under root, unbounded depth, and attempts a
// rename (or a simulation) for each one whose base name is in the table. The
// new path keeps the parent directory and swaps only the base name, so two
// files with the same base name in different directories are each renamed in
// place. A missing root is a soft failure: it is logged and Run returns with
// no outcomes. A failed rename is recorded and the walk continues.
//
// Outcomes come back in walk order, together with the count of files
// actually renamed (always zero in dry-run mode).
func (e *Engine) Run(root string, table mapping.Table) ([]Outcome, int) {
	exists, err := afero.DirExists(e.Fs, root)
	if err != nil || !exists {
		e.Log.Error("Shared drive path not found: %s", root)
		return nil, 0
	}

	var outcomes []Outcome
	renamed := 0

	walkErr := afero.Walk(e.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped, never fatal.
			e.Log.Error("Walk error at %s: %v", path, err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		current := filepath.Base(path)
		newName, ok := table[current]
		if !ok {
			e.Log.Debug("Skipped (not in mapping): %s", current)
			return nil
		}

		newPath := filepath.Join(filepath.Dir(path), newName)
		out := Outcome{OriginalPath: path, NewPath: newPath}
		switch {
		case e.DryRun:
			out.Status = StatusSimulated
			e.Log.Info("[Dry-run] Would rename: %s -> %s", current, newName)
		default:
			if renameErr := e.Fs.Rename(path, newPath); renameErr != nil {
				out.Status = StatusFailed
				out.Error = renameErr.Error()
				e.Log.Error("Failed to rename %s to %s: %v", current, newName, renameErr)
			} else {
				renamed++
				out.Status = StatusRenamed
				e.Log.Info("Renamed: %s -> %s", current, newName)
			}
		}
		outcomes = append(outcomes, out)
		return nil
	})
	if walkErr != nil {
		e.Log.Error("Walk aborted: %v", walkErr)
	}

	return outcomes, renamed
}
