// internal/config/config.go
//
// Run configuration for a rename pass. Values come from an optional yaml
// file, with command-line overrides applied on top.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLogDir receives the process log and the rename report unless the
// caller picks another directory.
const DefaultLogDir = "./logs"

// fileSchema models the yaml config file. DryRun is a pointer so an explicit
// `dry_run: false` is distinguishable from the key being absent.
type fileSchema struct {
	SharedDrivePath  string `yaml:"shared_drive_path"`
	ExcelMappingPath string `yaml:"excel_mapping_path"`
	DryRun           *bool  `yaml:"dry_run"`
	LogDir           string `yaml:"log_dir"`
}

// Run holds the settings for one rename pass, immutable once built.
type Run struct {
	// SharedDrivePath is the root of the directory tree to scan.
	SharedDrivePath string

	// ExcelMappingPath locates the xlsx workbook declaring the
	// CurrentFilename -> NewFilename pairs.
	ExcelMappingPath string

	// DryRun simulates renames without touching the filesystem. It defaults
	// to true; live runs must be requested explicitly.
	DryRun bool

	// LogDir receives the process log and the rename report.
	LogDir string
}

// Overrides carries command-line values that beat the config file.
type Overrides struct {
	Root    string
	Mapping string
	Live    bool
	LogDir  string
}

// Load builds a Run from the yaml file at path (skipped when path is empty)
// and the given overrides.
func Load(path string, ovr Overrides) (Run, error) {
	run := Run{DryRun: true, LogDir: DefaultLogDir}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Run{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var parsed fileSchema
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Run{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if parsed.SharedDrivePath != "" {
			run.SharedDrivePath = parsed.SharedDrivePath
		}
		if parsed.ExcelMappingPath != "" {
			run.ExcelMappingPath = parsed.ExcelMappingPath
		}
		if parsed.DryRun != nil {
			run.DryRun = *parsed.DryRun
		}
		if parsed.LogDir != "" {
			run.LogDir = parsed.LogDir
		}
	}

	if ovr.Root != "" {
		run.SharedDrivePath = ovr.Root
	}
	if ovr.Mapping != "" {
		run.ExcelMappingPath = ovr.Mapping
	}
	if ovr.Live {
		run.DryRun = false
	}
	if ovr.LogDir != "" {
		run.LogDir = ovr.LogDir
	}

	run.normalize()
	if err := run.validate(); err != nil {
		return Run{}, fmt.Errorf("config: %w", err)
	}
	return run, nil
}

func (r *Run) normalize() {
	r.SharedDrivePath = cleanPath(r.SharedDrivePath)
	r.ExcelMappingPath = cleanPath(r.ExcelMappingPath)
	r.LogDir = cleanPath(r.LogDir)
	if r.LogDir == "" {
		r.LogDir = filepath.Clean(DefaultLogDir)
	}
}

func (r Run) validate() error {
	if r.SharedDrivePath == "" {
		return fmt.Errorf("shared_drive_path is required")
	}
	if r.ExcelMappingPath == "" {
		return fmt.Errorf("excel_mapping_path is required")
	}
	return nil
}

func cleanPath(candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(trimmed)
}
