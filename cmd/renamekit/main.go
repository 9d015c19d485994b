// cmd/renamekit/main.go
//
// Entry point for the renamekit CLI.
//
// `renamekit run` performs one rename pass over a directory tree, driven by
// an xlsx mapping of current filenames to new ones. Runs simulate by default;
// pass --live to actually touch the filesystem.
//
// `renamekit view` opens a finished rename report in an interactive table.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/ldavies/renamekit/internal/config"
	"github.com/ldavies/renamekit/internal/logbook"
	"github.com/ldavies/renamekit/internal/report"
	"github.com/ldavies/renamekit/internal/runner"
	"github.com/ldavies/renamekit/internal/tui"
)

type runCmd struct {
	Config  string `arg:"-c,--config" help:"optional yaml config file"`
	Root    string `arg:"-r,--root" help:"directory tree to scan (shared_drive_path)"`
	Mapping string `arg:"-m,--mapping" help:"xlsx mapping workbook (excel_mapping_path)"`
	Live    bool   `arg:"--live" help:"actually rename files instead of simulating"`
	LogDir  string `arg:"--log-dir" help:"directory for the process log and the report"`
}

type viewCmd struct {
	Report string `arg:"positional,required" help:"rename report xlsx to browse"`
}

type args struct {
	Run  *runCmd  `arg:"subcommand:run" help:"execute a rename pass (dry-run by default)"`
	View *viewCmd `arg:"subcommand:view" help:"browse a rename report"`
}

func (args) Description() string {
	return "Bulk-renames files under a directory tree using an xlsx mapping of current to new filenames."
}

func main() {
	var parsed args
	p := arg.MustParse(&parsed)

	var err error
	switch {
	case parsed.Run != nil:
		err = executeRun(parsed.Run)
	case parsed.View != nil:
		err = executeView(parsed.View)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "renamekit: %v\n", err)
		os.Exit(1)
	}
}

func executeRun(cmd *runCmd) error {
	cfg, err := config.Load(cmd.Config, config.Overrides{
		Root:    cmd.Root,
		Mapping: cmd.Mapping,
		Live:    cmd.Live,
		LogDir:  cmd.LogDir,
	})
	if err != nil {
		return err
	}

	log, err := logbook.Open(cfg.LogDir)
	if err != nil {
		return err
	}
	defer log.Close()

	sum, err := runner.Run(cfg, log, afero.NewOsFs())
	if err != nil {
		// The logbook already has the detail; point the operator at it.
		return fmt.Errorf("%w (see %s)", err, log.Path())
	}
	fmt.Println(tui.RenderSummary(sum))
	return nil
}

func executeView(cmd *viewCmd) error {
	outcomes, err := report.Read(cmd.Report)
	if err != nil {
		return err
	}
	viewer := tui.NewViewer(filepath.Base(cmd.Report), outcomes)
	_, err = tea.NewProgram(viewer, tea.WithAltScreen()).Run()
	return err
}
