package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	runAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	results := []FileResult{
		{Source: Source{Path: "/p/A.cs", Rel: "A.cs"}, Rewritten: 2, Skipped: 1},
		{Source: Source{Path: "/p/B.cs", Rel: "B.cs"}, Skipped: 3},
		{Source: Source{Path: "/p/C.cs"}, Err: errors.New("write: denied")},
	}

	report := NewReport("/p", true, runAt, Stats{FilesProcessed: 3}, results)

	_, err := uuid.Parse(report.ID)
	require.NoError(t, err)
	assert.Equal(t, runAt, report.RunAt)
	assert.True(t, report.DryRun)
	assert.Equal(t, []FileReport{
		{Path: "A.cs", Rewritten: 2, Skipped: 1},
		{Path: "/p/C.cs", Error: "write: denied"},
	}, report.Files)
}

func TestNewReport_DistinctIDs(t *testing.T) {
	a := NewReport("/p", false, time.Time{}, Stats{}, nil)
	b := NewReport("/p", false, time.Time{}, Stats{}, nil)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Files)
}
