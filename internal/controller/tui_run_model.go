package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/textmig/internal/model"
)

const (
	maxLogLines     = 8
	defaultTUIWidth = 80
)

var (
	accentColor  = lipgloss.Color("6")
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// runModel renders the progress of a rewrite or extract run and, once the
// run is done, its summary.
type runModel struct {
	config   StartConfig
	width    int
	height   int
	spinner  spinner.Model
	progress progress.Model

	completed int
	current   string
	rewritten int
	skipped   int
	failed    int
	logs      []string
	lastDiff  string
	diffPath  string
	errs      []string

	stats      *m.Stats
	extraction *m.ExtractSummary
	report     *m.Report
	reportPath m.Path

	finished  bool
	cancelled bool
}

func newRunModel(config StartConfig, width int) runModel {
	if width <= 0 {
		width = defaultTUIWidth
	}

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(accentStyle),
	)

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(max(20, width-8)),
		progress.WithoutPercentage(),
	)

	return runModel{
		config:   config,
		width:    width,
		spinner:  spin,
		progress: prog,
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.progress.Width = max(20, rm.width-8)

	case tea.KeyMsg:
		return rm.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd

		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case logMsg:
		rm.logs = append(rm.logs, msg.line)
		if len(rm.logs) > maxLogLines {
			rm.logs = rm.logs[len(rm.logs)-maxLogLines:]
		}

	case fileResultMsg:
		rm = rm.handleFileResult(msg.result)

	case rewriteSummaryMsg:
		stats := msg.stats
		rm.stats = &stats

	case extractionMsg:
		summary := msg.summary
		rm.extraction = &summary

	case reportMsg:
		report := msg.report
		rm.report = &report
		rm.reportPath = msg.path

	case errorMsg:
		if msg.err != nil {
			rm.errs = append(rm.errs, msg.err.Error())
		}

	case doneMsg:
		rm.finished = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if !rm.finished && rm.config.cancel != nil {
			rm.config.cancel()
		}

		rm.cancelled = !rm.finished

		return rm, tea.Quit
	default:
		return rm, nil
	}
}

func (rm runModel) handleFileResult(result m.FileResult) runModel {
	rm.completed++
	rm.current = result.Source.Display()
	rm.rewritten += result.Rewritten
	rm.skipped += result.Skipped

	if result.Err != nil {
		rm.failed++
	}

	if result.Diff != "" {
		rm.lastDiff = result.Diff
		rm.diffPath = result.Source.Display()
	}

	return rm
}

func (rm runModel) percent() float64 {
	if rm.config.total <= 0 {
		return 0
	}

	return min(1, float64(rm.completed)/float64(rm.config.total))
}

func (rm runModel) View() string {
	if rm.config.mode == ModeReport {
		return rm.viewReport()
	}

	sections := []string{
		titleStyle.Render(rm.title()),
		summaryStyle.Render(rm.counters()),
		lipgloss.NewStyle().Padding(0, 2).Render(rm.progress.ViewAs(rm.percent())),
	}

	if !rm.finished && rm.current != "" {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(
			fmt.Sprintf("%s %s", rm.spinner.View(), truncateFile(rm.current, rm.width-8)),
		))
	}

	if box := rm.renderLogBox(); box != "" {
		sections = append(sections, box)
	}

	if box := rm.renderDiffBox(); box != "" {
		sections = append(sections, box)
	}

	for _, e := range rm.errs {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(errorStyle.Render("error: "+e)))
	}

	sections = append(sections, rm.footer())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (rm runModel) title() string {
	switch rm.config.mode {
	case ModeExtract:
		return "textmig extract"
	case ModeRewrite:
		if rm.config.dryRun {
			return "textmig rewrite (dry run)"
		}

		return "textmig rewrite"
	case ModeReport:
		return "textmig report"
	default:
		return "textmig"
	}
}

func (rm runModel) counters() string {
	files := fmt.Sprintf("Files: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.config.total)),
	)

	if rm.config.mode == ModeExtract {
		return files
	}

	return fmt.Sprintf("%s  •  Rewritten: %s  •  Lambda skips: %s  •  Failed: %s",
		files,
		accentStyle.Render(fmt.Sprintf("%d", rm.rewritten)),
		accentStyle.Render(fmt.Sprintf("%d", rm.skipped)),
		accentStyle.Render(fmt.Sprintf("%d", rm.failed)),
	)
}

func (rm runModel) footer() string {
	style := mutedStyle.Padding(0, 2)

	switch {
	case rm.cancelled:
		return style.Render("Cancelled")
	case rm.stats != nil:
		return style.Render(fmt.Sprintf("Done: %d file(s) touched, %d call(s) rewritten, %d lambda skip(s)",
			rm.stats.FilesTouched, rm.stats.Rewritten, rm.stats.LambdaSkipped))
	case rm.extraction != nil:
		return style.Render(fmt.Sprintf("Done: %d unique text(s), %d already known, written to %s",
			len(rm.extraction.Texts), rm.extraction.Known, rm.extraction.Output))
	case rm.finished:
		return style.Render("Done")
	default:
		return style.Render("Press q to cancel")
	}
}

func (rm runModel) renderLogBox() string {
	if len(rm.logs) == 0 {
		return ""
	}

	width := max(10, rm.width-4)
	lines := make([]string, 0, len(rm.logs))

	for _, line := range rm.logs {
		lines = append(lines, mutedStyle.Render(truncateFile(line, width-4)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 0, 0).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (rm runModel) diffMaxLines() int {
	maxLines := rm.height / 3

	return min(20, max(6, maxLines))
}

func (rm runModel) renderDiffBox() string {
	diff := strings.TrimSpace(rm.lastDiff)
	if diff == "" {
		return ""
	}

	width := max(10, rm.width-4)
	contentWidth := max(10, width-4)
	lines := strings.Split(diff, "\n")
	truncated := false

	if maxLines := rm.diffMaxLines(); len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	body := make([]string, 0, len(lines)+2)
	body = append(body, mutedStyle.Bold(true).Render(truncateFile("Diff • "+rm.diffPath, contentWidth)))

	for _, line := range lines {
		body = append(body, renderDiffLine(line, contentWidth))
	}

	if truncated {
		body = append(body, mutedStyle.Render("…"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 0, 0).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func (rm runModel) viewReport() string {
	if rm.report == nil {
		return titleStyle.Render(rm.title()) + "\n"
	}

	r := rm.report
	mode := "write"

	if r.DryRun {
		mode = "dry run"
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("textmig report • %s", rm.reportPath)),
		summaryStyle.Render(fmt.Sprintf("Run at %s on %s (%s)  •  Files: %s  •  Touched: %s  •  Rewritten: %s  •  Lambda skips: %s  •  Failed: %s",
			r.RunAt.Format("2006-01-02 15:04:05"), r.Root, mode,
			accentStyle.Render(fmt.Sprintf("%d", r.Stats.FilesProcessed)),
			accentStyle.Render(fmt.Sprintf("%d", r.Stats.FilesTouched)),
			accentStyle.Render(fmt.Sprintf("%d", r.Stats.Rewritten)),
			accentStyle.Render(fmt.Sprintf("%d", r.Stats.LambdaSkipped)),
			accentStyle.Render(fmt.Sprintf("%d", r.Stats.FilesFailed)),
		)),
	}

	for _, file := range r.Files {
		line := fmt.Sprintf("%4d  %4d  %s", file.Rewritten, file.Skipped, truncateFile(string(file.Path), rm.width-16))
		if file.Error != "" {
			line += "  " + errorStyle.Render(file.Error)
		}

		lines = append(lines, lipgloss.NewStyle().Padding(0, 2).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func truncateFile(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return style.Render(truncateFile(line, width))
}
