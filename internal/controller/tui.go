package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/textmig/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrUIStarted is returned by Start when a previous run has not been waited on.
var ErrUIStarted = errors.New("ui already started")

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	final   runModel
}

// NewTUI creates a new TUI writing to output. Extra program options are
// appended to the defaults.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return ErrUIStarted
	}

	width, height, _ := terminalSize(t.output)
	model := newRunModel(newStartConfig(options...), width)
	model.height = height

	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	program := tea.NewProgram(model, programOptions...)

	group := &errgroup.Group{}
	group.Go(func() error {
		final, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("tui: %w", err)
		}

		if rm, ok := final.(runModel); ok {
			t.mu.Lock()
			t.final = rm
			t.mu.Unlock()
		}

		return nil
	})

	t.program = program
	t.group = group

	return nil
}

// Close tells the program the run is over; it renders the summary and exits.
func (t *TUI) Close() {
	t.send(doneMsg{})
}

// Wait blocks until the program has exited.
func (t *TUI) Wait() error {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return nil
	}

	err := group.Wait()

	t.mu.Lock()
	t.program = nil
	t.group = nil
	t.mu.Unlock()

	return err
}

// DisplayLog appends a run log line to the log box.
func (t *TUI) DisplayLog(line string) {
	t.send(logMsg{line: line})
}

// DisplayFileResult advances the progress bar.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplayRewriteSummary shows the run totals.
func (t *TUI) DisplayRewriteSummary(stats m.Stats) {
	t.send(rewriteSummaryMsg{stats: stats})
}

// DisplayExtraction shows the extraction totals.
func (t *TUI) DisplayExtraction(summary m.ExtractSummary) {
	t.send(extractionMsg{summary: summary})
}

// DisplayReport shows a saved run report.
func (t *TUI) DisplayReport(report m.Report, path m.Path) {
	t.send(reportMsg{report: report, path: path})
}

// DisplayError shows err below the progress.
func (t *TUI) DisplayError(err error) {
	t.send(errorMsg{err: err})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

func (t *TUI) lastModel() runModel {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.final
}
