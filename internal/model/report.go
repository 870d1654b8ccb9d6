package model

import (
	"time"

	"github.com/google/uuid"
)

// Report is the persisted summary of a rewrite run.
type Report struct {
	ID     string       `yaml:"id,omitempty"`
	RunAt  time.Time    `yaml:"run_at"`
	Root   Path         `yaml:"root"`
	DryRun bool         `yaml:"dry_run"`
	Stats  Stats        `yaml:"stats"`
	Files  []FileReport `yaml:"files,omitempty"`
}

// FileReport is the per-file entry of a Report. Only touched or failed files
// are recorded.
type FileReport struct {
	Path      Path   `yaml:"path"`
	Rewritten int    `yaml:"rewritten"`
	Skipped   int    `yaml:"skipped"`
	Error     string `yaml:"error,omitempty"`
}

// NewReport builds a Report from a finished run.
func NewReport(root Path, dryRun bool, runAt time.Time, stats Stats, results []FileResult) Report {
	report := Report{
		ID:     uuid.NewString(),
		RunAt:  runAt,
		Root:   root,
		DryRun: dryRun,
		Stats:  stats,
	}

	for _, result := range results {
		if result.Err == nil && result.Rewritten == 0 {
			continue
		}

		entry := FileReport{
			Path:      Path(result.Source.Display()),
			Rewritten: result.Rewritten,
			Skipped:   result.Skipped,
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}

		report.Files = append(report.Files, entry)
	}

	return report
}
