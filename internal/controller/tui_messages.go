package controller

import m "github.com/mouse-blink/textmig/internal/model"

// Message types.
type logMsg struct {
	line string
}

type fileResultMsg struct {
	result m.FileResult
}

type rewriteSummaryMsg struct {
	stats m.Stats
}

type extractionMsg struct {
	summary m.ExtractSummary
}

type reportMsg struct {
	report m.Report
	path   m.Path
}

type errorMsg struct {
	err error
}

type doneMsg struct{}
