package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/textmig/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writers.
type SimpleUI struct {
	cmd     *cobra.Command
	config  StartConfig
	results []m.FileResult
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)
	s.results = nil

	switch s.config.mode {
	case ModeRewrite:
		if s.config.dryRun {
			s.printf("Rewriting %d file(s) (dry run, nothing is written)\n", s.config.total)
		} else {
			s.printf("Rewriting %d file(s)\n", s.config.total)
		}
	case ModeExtract:
		s.printf("Extracting texts from %d file(s)\n", s.config.total)
	case ModeReport:
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; SimpleUI has nothing running.
func (s *SimpleUI) Wait() error {
	return nil
}

// DisplayLog prints one run log line.
func (s *SimpleUI) DisplayLog(line string) {
	s.printf("%s\n", line)
}

// DisplayFileResult records the result and prints its diff, if any.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	s.results = append(s.results, result)

	if result.Diff != "" {
		s.printf("\n%s", result.Diff)
	}
}

// DisplayRewriteSummary prints a table of touched and failed files followed
// by the totals.
func (s *SimpleUI) DisplayRewriteSummary(stats m.Stats) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Rewritten", "Skipped", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, result := range s.results {
		if !result.Touched() && result.Err == nil && result.Skipped == 0 {
			continue
		}

		table.Append([]string{
			result.Source.Display(),
			fmt.Sprintf("%d", result.Rewritten),
			fmt.Sprintf("%d", result.Skipped),
			fileStatus(result, s.config.dryRun),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", stats.FilesProcessed),
		fmt.Sprintf("%d", stats.Rewritten),
		fmt.Sprintf("%d", stats.LambdaSkipped),
		fmt.Sprintf("%d touched, %d failed", stats.FilesTouched, stats.FilesFailed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayExtraction prints the per-file text counts and where the texts went.
func (s *SimpleUI) DisplayExtraction(summary m.ExtractSummary) {
	paths := make([]string, 0, len(summary.PerFile))
	for path := range summary.PerFile {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Texts"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, path := range paths {
		count := summary.PerFile[path]
		total += count

		table.Append([]string{path, fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("%d unique text(s), %d already known, written to %s\n", len(summary.Texts), summary.Known, summary.Output)

	if summary.Failed > 0 {
		s.printf("%d file(s) could not be read\n", summary.Failed)
	}
}

// DisplayReport prints a saved run report.
func (s *SimpleUI) DisplayReport(report m.Report, path m.Path) {
	mode := "write"
	if report.DryRun {
		mode = "dry run"
	}

	s.printf("Report %s\n", path)
	s.printf("Run at %s on %s (%s)\n", report.RunAt.Format("2006-01-02 15:04:05"), report.Root, mode)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Rewritten", "Skipped", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, file := range report.Files {
		table.Append([]string{
			string(file.Path),
			fmt.Sprintf("%d", file.Rewritten),
			fmt.Sprintf("%d", file.Skipped),
			file.Error,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", report.Stats.FilesProcessed),
		fmt.Sprintf("%d", report.Stats.Rewritten),
		fmt.Sprintf("%d", report.Stats.LambdaSkipped),
		fmt.Sprintf("%d failed", report.Stats.FilesFailed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayError prints err to the command's error writer.
func (s *SimpleUI) DisplayError(err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
}

func fileStatus(result m.FileResult, dryRun bool) string {
	switch {
	case result.Err != nil:
		return "failed: " + strings.TrimSpace(result.Err.Error())
	case result.Touched() && dryRun:
		return "would rewrite"
	case result.Touched():
		return "rewritten"
	default:
		return "unchanged"
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
