// Package controller provides the user-facing displays for rewrite and
// extraction runs.
package controller

import (
	"context"

	m "github.com/mouse-blink/textmig/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRewrite StartMode = iota
	ModeExtract
	ModeReport
)

func (s StartMode) String() string {
	switch s {
	case ModeRewrite:
		return "rewrite"
	case ModeExtract:
		return "extract"
	case ModeReport:
		return "report"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	total  int
	dryRun bool
	cancel context.CancelFunc
}

// WithRewriteMode sets the UI to rewrite mode.
func WithRewriteMode(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
		c.dryRun = dryRun
	}
}

// WithExtractMode sets the UI to extraction mode.
func WithExtractMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExtract
	}
}

// WithReportMode sets the UI to report viewing mode.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithTotal sets the number of files the run will process.
func WithTotal(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

// WithCancel lets the UI stop the run, e.g. on ctrl+c.
func WithCancel(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// UI defines how runs are presented. Implementations can use different
// output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	// Close marks the run finished.
	Close()
	// Wait blocks until the UI has shut down.
	Wait() error
	DisplayLog(line string)
	DisplayFileResult(result m.FileResult)
	DisplayRewriteSummary(stats m.Stats)
	DisplayExtraction(summary m.ExtractSummary)
	DisplayReport(report m.Report, path m.Path)
	DisplayError(err error)
}
