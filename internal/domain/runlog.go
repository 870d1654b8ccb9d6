package domain

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultLogLimit is the number of run log lines retained by default.
const DefaultLogLimit = 1000

// RunLog keeps the most recent timestamped lines of a batch run and mirrors
// each one to a structured logger.
type RunLog struct {
	mu     sync.Mutex
	limit  int
	lines  []string
	logger *zap.Logger
	now    func() time.Time
}

// NewRunLog creates a RunLog retaining at most limit lines.
func NewRunLog(limit int, logger *zap.Logger) *RunLog {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &RunLog{
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Add formats and appends a line, dropping the oldest when full.
// It returns the stored line.
func (l *RunLog) Add(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	line := fmt.Sprintf("[%s] %s", l.now().Format("15:04:05"), msg)
	l.lines = append(l.lines, line)

	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	l.mu.Unlock()

	l.logger.Debug(msg)

	return line
}

// Logger returns the structured logger lines are mirrored to.
func (l *RunLog) Logger() *zap.Logger {
	return l.logger
}

// Lines returns a copy of the retained lines, oldest first.
func (l *RunLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.lines...)
}

// Reset clears the log.
func (l *RunLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
}
