// Package domain holds the rewrite and extraction workflows.
package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mouse-blink/textmig/internal/adapter"
	"github.com/mouse-blink/textmig/internal/controller"
	m "github.com/mouse-blink/textmig/internal/model"
	"go.uber.org/zap"
)

const defaultOutputPerm os.FileMode = 0o644

const (
	defaultTableName   = "language"
	defaultScriptExt   = ".cs"
	defaultExcludeFile = "Util.cs"
)

// ScanArgs selects the script files of a run.
type ScanArgs struct {
	Root             m.Path
	Extension        string
	ExcludeFile      string
	Exclude          []string
	RespectGitignore bool
}

// RewriteArgs configures a rewrite run.
type RewriteArgs struct {
	ScanArgs
	// DryRun computes every change and renders diffs without writing.
	DryRun bool
	// Reports is the directory a run report is saved to; empty skips saving.
	Reports m.Path
}

// ExtractArgs configures a text extraction run.
type ExtractArgs struct {
	ScanArgs
	Output m.Path
	// LanguageTable is a table file, or a directory searched for TableName.
	LanguageTable m.Path
	TableName     string
	Filters       ExtractFilters
	// TableDir holds the reference tables searched for TargetColumns. Empty
	// falls back to the location of LanguageTable.
	TableDir m.Path
	// TargetColumns names table columns whose cells are extracted too.
	TargetColumns []string
	// IncludeComments also extracts the prose of comments.
	IncludeComments bool
}

// ErrNoTableDir is returned when table columns are requested without any
// table location.
var ErrNoTableDir = errors.New("no table directory configured")

// ReportArgs configures the report command.
type ReportArgs struct {
	Reports m.Path
}

// Workflow defines the batch operations exposed to the CLI.
type Workflow interface {
	Rewrite(ctx context.Context, args RewriteArgs) (m.Stats, error)
	Extract(ctx context.Context, args ExtractArgs) (m.ExtractSummary, error)
	Report(args ReportArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	tables      adapter.TableAdapter
	ui          controller.UI
	rewriter    Rewriter
	log         *RunLog
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	tables adapter.TableAdapter,
	ui controller.UI,
	rewriter Rewriter,
	log *RunLog,
) Workflow {
	if log == nil {
		log = NewRunLog(DefaultLogLimit, nil)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		tables:      tables,
		ui:          ui,
		rewriter:    rewriter,
		log:         log,
		now:         time.Now,
	}
}

// Rewrite runs every pass over each selected file, one file at a time.
// A failing file is reported and left untouched; the batch continues.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) (m.Stats, error) {
	sources, err := w.sources(args.ScanArgs)
	if err != nil {
		return m.Stats{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.log.Reset()

	if err := w.ui.Start(controller.WithRewriteMode(args.DryRun), controller.WithTotal(len(sources)), controller.WithCancel(cancel)); err != nil {
		return m.Stats{}, fmt.Errorf("start ui: %w", err)
	}

	var stats m.Stats

	results := make([]m.FileResult, 0, len(sources))

	w.logf("found %d script(s) under %s", len(sources), args.Root)

	runErr := w.forEachSource(ctx, sources, func(source m.Source) {
		result := w.rewriteFile(source, args.DryRun)
		stats.FilesProcessed++
		stats.Rewritten += result.Rewritten
		stats.LambdaSkipped += result.Skipped

		switch {
		case result.Err != nil:
			stats.FilesFailed++
			w.logf("failed %s: %v", source.Display(), result.Err)
			w.log.Logger().Warn("file left untouched", zap.String("file", source.Display()), zap.Error(result.Err))
		case result.Touched():
			stats.FilesTouched++
			w.logf("rewrote %s: %d rewritten, %d skipped", source.Display(), result.Rewritten, result.Skipped)
		case result.Skipped > 0:
			w.logf("left %s unchanged: %d skipped in lambdas", source.Display(), result.Skipped)
		}

		results = append(results, result)
		w.ui.DisplayFileResult(result)
	})

	w.logf("done: %d file(s) touched, %d call(s) rewritten, %d lambda skip(s)",
		stats.FilesTouched, stats.Rewritten, stats.LambdaSkipped)
	w.ui.DisplayRewriteSummary(stats)

	if args.Reports != "" {
		report := m.NewReport(args.Root, args.DryRun, w.now(), stats, results)

		path, err := w.reportStore.SaveReport(args.Reports, report)
		if err != nil {
			w.ui.DisplayError(err)
			runErr = errors.Join(runErr, fmt.Errorf("save report: %w", err))
		} else {
			w.logf("report saved to %s", path)
		}
	}

	return stats, w.finish(runErr)
}

// rewriteFile never returns an error; failures are recorded on the result.
func (w *workflow) rewriteFile(source m.Source, dryRun bool) m.FileResult {
	result := m.FileResult{Source: source}

	content, err := w.fsAdapter.ReadFile(source.Path)
	if err != nil {
		result.Err = fmt.Errorf("read: %w", err)

		return result
	}

	outcome, err := w.rewriter.Rewrite(string(content))
	if err != nil {
		result.Err = fmt.Errorf("rewrite: %w", err)

		return result
	}

	result.Rewritten = outcome.Rewritten
	result.Skipped = outcome.Skipped
	result.Changes = outcome.Changes

	for _, change := range outcome.Changes {
		switch change.Action {
		case m.ActionSkippedLambda:
			w.logf("skipped %s.text at %s:%d (inside lambda)", change.Receiver, source.Display(), change.Line)
		case m.ActionUnbalanced:
			w.logf("left %s.text at %s:%d unchanged (unbalanced result)", change.Receiver, source.Display(), change.Line)
		case m.ActionIgnored, m.ActionRewritten:
		}
	}

	if outcome.Rewritten == 0 {
		return result
	}

	if dryRun {
		diff, err := unifiedDiff(source.Display(), string(content), outcome.Text)
		if err != nil {
			result.Err = fmt.Errorf("diff: %w", err)

			return result
		}

		result.Diff = diff

		return result
	}

	perm := defaultOutputPerm
	if info, err := w.fsAdapter.FileInfo(source.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fsAdapter.WriteFile(source.Path, []byte(outcome.Text), perm); err != nil {
		// Nothing reached the file, so none of its rewrites count.
		result.Err = fmt.Errorf("write: %w", err)
		result.Rewritten = 0
	}

	return result
}

// Extract collects candidate texts from every selected file and writes the
// unique ones, sorted, to args.Output.
func (w *workflow) Extract(ctx context.Context, args ExtractArgs) (m.ExtractSummary, error) {
	sources, err := w.sources(args.ScanArgs)
	if err != nil {
		return m.ExtractSummary{}, err
	}

	w.log.Reset()

	known, err := w.knownTexts(args)
	if err != nil {
		return m.ExtractSummary{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithExtractMode(), controller.WithTotal(len(sources)), controller.WithCancel(cancel)); err != nil {
		return m.ExtractSummary{}, fmt.Errorf("start ui: %w", err)
	}

	var options []ExtractorOption
	if args.IncludeComments {
		options = append(options, WithComments())
	}

	extractor := NewExtractor(args.Filters, options...)
	summary := m.ExtractSummary{PerFile: make(map[string]int), Output: args.Output}

	var texts []m.ExtractedText

	runErr := w.forEachSource(ctx, sources, func(source m.Source) {
		content, err := w.fsAdapter.ReadFile(source.Path)
		if err != nil {
			summary.Failed++
			w.logf("failed %s: %v", source.Display(), err)
			w.log.Logger().Warn("file skipped", zap.String("file", source.Display()), zap.Error(err))
			w.ui.DisplayFileResult(m.FileResult{Source: source, Err: err})

			return
		}

		if class, ok := extractor.FilteredClass(source, string(content)); ok {
			w.logf("skipped %s (class filter %s)", source.Display(), class)

			return
		}

		found := extractor.Extract(source, string(content))
		if len(found) > 0 {
			summary.PerFile[source.Display()] = len(found)
		}

		texts = append(texts, found...)
	})

	if runErr == nil && len(args.TargetColumns) > 0 {
		found, err := w.tableTexts(args, extractor, summary.PerFile)
		if err != nil {
			w.ui.DisplayError(err)
			runErr = err
		}

		texts = append(texts, found...)
	}

	summary.Texts, summary.Known = uniqueTexts(texts, known)

	if runErr == nil && args.Output != "" {
		if err := w.writeTexts(args.Output, summary.Texts); err != nil {
			w.ui.DisplayError(err)
			runErr = err
		} else {
			w.logf("wrote %d unique text(s) to %s", len(summary.Texts), args.Output)
		}
	}

	w.ui.DisplayExtraction(summary)

	return summary, w.finish(runErr)
}

func (w *workflow) knownTexts(args ExtractArgs) (map[string]struct{}, error) {
	if args.LanguageTable == "" {
		return nil, nil
	}

	path := args.LanguageTable

	info, err := w.fsAdapter.FileInfo(path)
	if err != nil {
		return nil, fmt.Errorf("language table: %w", err)
	}

	if info.IsDir() {
		name := args.TableName
		if name == "" {
			name = defaultTableName
		}

		path, err = w.tables.FindTable(path, name)
		if err != nil {
			return nil, err
		}
	}

	known, err := w.tables.FirstColumn(path)
	if err != nil {
		return nil, fmt.Errorf("language table: %w", err)
	}

	w.logf("loaded %d known text(s) from %s", len(known), path)

	return known, nil
}

// tableTexts extracts the target columns of every reference table. A table
// that cannot be read is logged and skipped.
func (w *workflow) tableTexts(args ExtractArgs, extractor *Extractor, perFile map[string]int) ([]m.ExtractedText, error) {
	dir := args.TableDir
	if dir == "" {
		dir = args.LanguageTable
	}

	if dir == "" {
		return nil, ErrNoTableDir
	}

	info, err := w.fsAdapter.FileInfo(dir)
	if err != nil {
		return nil, fmt.Errorf("table dir: %w", err)
	}

	if !info.IsDir() {
		dir = m.Path(filepath.Dir(string(dir)))
	}

	tables, err := w.tables.ListTables(dir)
	if err != nil {
		return nil, fmt.Errorf("table dir: %w", err)
	}

	var texts []m.ExtractedText

	for _, column := range args.TargetColumns {
		matched := 0

		for _, table := range tables {
			cells, err := w.tables.Column(table, column)
			if errors.Is(err, adapter.ErrColumnNotFound) {
				continue
			}

			if err != nil {
				w.logf("failed %s: %v", table, err)
				w.log.Logger().Warn("table skipped", zap.String("table", string(table)), zap.Error(err))

				continue
			}

			matched++

			source := m.Source{Path: table, Rel: m.Path(tableLabel(table, column))}

			found := extractor.TableTexts(source, cells)
			if len(found) > 0 {
				perFile[source.Display()] += len(found)
			}

			texts = append(texts, found...)
		}

		w.logf("column %q found in %d table(s)", column, matched)
	}

	return texts, nil
}

// tableLabel names a table column as "<table>.<column>".
func tableLabel(table m.Path, column string) string {
	base := filepath.Base(string(table))

	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + column
}

func (w *workflow) writeTexts(output m.Path, texts []string) error {
	var b strings.Builder
	for _, text := range texts {
		b.WriteString(text)
		b.WriteByte('\n')
	}

	if err := w.fsAdapter.WriteFile(output, []byte(b.String()), defaultOutputPerm); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	return nil
}

// Report shows the most recent saved run report.
func (w *workflow) Report(args ReportArgs) error {
	report, path, err := w.reportStore.LoadLatest(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.Start(controller.WithReportMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	w.ui.DisplayReport(report, path)

	return w.finish(nil)
}

func (w *workflow) sources(args ScanArgs) ([]m.Source, error) {
	exclude, err := compilePatterns(args.Exclude)
	if err != nil {
		return nil, err
	}

	ext := args.Extension
	if ext == "" {
		ext = defaultScriptExt
	}

	excludeFile := args.ExcludeFile
	if excludeFile == "" {
		excludeFile = defaultExcludeFile
	}

	sources, err := w.fsAdapter.Get(adapter.SourceQuery{
		Root:             args.Root,
		Extension:        ext,
		ExcludeFile:      excludeFile,
		Exclude:          exclude,
		RespectGitignore: args.RespectGitignore,
	})
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	return sources, nil
}

// forEachSource runs fn over sources in order on the calling goroutine,
// stopping before the next file once ctx is done.
func (w *workflow) forEachSource(ctx context.Context, sources []m.Source, fn func(m.Source)) error {
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			w.logf("cancelled after %d of %d file(s)", i, len(sources))

			return err
		}

		fn(source)
	}

	return nil
}

func (w *workflow) finish(runErr error) error {
	w.ui.Close()

	if err := w.ui.Wait(); err != nil {
		return errors.Join(runErr, fmt.Errorf("ui: %w", err))
	}

	return runErr
}

func (w *workflow) logf(format string, args ...any) {
	w.ui.DisplayLog(w.log.Add(format, args...))
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}
