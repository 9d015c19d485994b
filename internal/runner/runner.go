// Package runner wires the mapping loader, the rename engine, and the report
// writer into one sequential pass.
package runner

import (
	"github.com/spf13/afero"

	"github.com/ldavies/renamekit/internal/config"
	"github.com/ldavies/renamekit/internal/logbook"
	"github.com/ldavies/renamekit/internal/mapping"
	"github.com/ldavies/renamekit/internal/renamer"
	"github.com/ldavies/renamekit/internal/report"
)

// Summary totals one completed pass for the CLI.
type Summary struct {
	Matched    int
	Renamed    int
	Simulated  int
	Failed     int
	DryRun     bool
	ReportPath string
	LogPath    string
}

// Run executes one rename pass: load the mapping, walk and rename, write the
// report. A mapping or report error is fatal and propagates; a missing root
// and per-file rename failures are absorbed by the engine, so a run that
// reaches the walk always reaches the report phase too.
func Run(cfg config.Run, log *logbook.Logbook, fs afero.Fs) (Summary, error) {
	table, err := mapping.Load(cfg.ExcelMappingPath, log)
	if err != nil {
		return Summary{}, err
	}

	if cfg.DryRun {
		log.Info("Dry-run mode enabled.")
	} else {
		log.Info("Live mode enabled.")
	}

	engine := &renamer.Engine{Fs: fs, Log: log, DryRun: cfg.DryRun}
	outcomes, renamed := engine.Run(cfg.SharedDrivePath, table)
	log.Info("Renaming process complete. Total files renamed: %d", renamed)

	reportPath, err := report.Write(cfg.LogDir, outcomes, log)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Matched:    len(outcomes),
		Renamed:    renamed,
		DryRun:     cfg.DryRun,
		ReportPath: reportPath,
		LogPath:    log.Path(),
	}
	for _, out := range outcomes {
		switch out.Status {
		case renamer.StatusSimulated:
			sum.Simulated++
		case renamer.StatusFailed:
			sum.Failed++
		}
	}
	return sum, nil
}
