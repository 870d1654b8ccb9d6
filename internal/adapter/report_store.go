package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/textmig/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	reportPrefix     = "report-"
	reportExt        = ".yaml"
	reportTimeLayout = "20060102-150405"
)

// ErrNoReports is returned when a reports directory holds no run report.
var ErrNoReports = errors.New("no reports found")

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	// SaveReport writes report into dir and returns the file path.
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	// LoadLatest reads the most recent report in dir.
	LoadLatest(dir m.Path) (m.Report, m.Path, error)
}

type reportStore struct{}

// NewReportStore constructs a YAML-file ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := reportPrefix + report.RunAt.Format(reportTimeLayout)
	if report.ID != "" {
		name += "-" + shortID(report.ID)
	}

	name += reportExt
	path := filepath.Join(string(dir), name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

func (rs *reportStore) LoadLatest(dir m.Path) (m.Report, m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return m.Report{}, "", fmt.Errorf("%w in %s", ErrNoReports, dir)
		}

		return m.Report{}, "", fmt.Errorf("read reports dir: %w", err)
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, reportPrefix) || !strings.HasSuffix(name, reportExt) {
			continue
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return m.Report{}, "", fmt.Errorf("%w in %s", ErrNoReports, dir)
	}

	// The timestamp layout sorts lexically.
	sort.Strings(names)
	path := filepath.Join(string(dir), names[len(names)-1])

	// #nosec G304 - path is built from the configured reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, "", fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, "", fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, m.Path(path), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
