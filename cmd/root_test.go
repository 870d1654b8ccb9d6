package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/mouse-blink/textmig/internal/config"
	"github.com/mouse-blink/textmig/internal/domain"
	domainmocks "github.com/mouse-blink/textmig/internal/domain/mocks"
	m "github.com/mouse-blink/textmig/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRoot(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow, originalLogger, originalSettings := workflow, logger, settings
	workflow = mockWorkflow
	logger = zap.NewNop()

	t.Cleanup(func() {
		workflow, logger, settings = originalWorkflow, originalLogger, originalSettings
	})

	cmd := newRootCmd()
	cmd.AddCommand(newRewriteCmd(), newExtractCmd(), newReportCmd(), newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRewriteCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	mockWorkflow.EXPECT().
		Rewrite(mock.Anything, domain.RewriteArgs{
			ScanArgs: domain.ScanArgs{
				Root:        m.Path("."),
				Extension:   ".cs",
				ExcludeFile: "Util.cs",
			},
			Reports: m.Path(".textmig-reports"),
		}).
		Return(m.Stats{}, nil)

	cmd.SetArgs([]string{"rewrite", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, cmd.Execute())
}

func TestRewriteCmd_DryRunWithRoot(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	mockWorkflow.On("Rewrite", mock.Anything, mock.MatchedBy(func(args domain.RewriteArgs) bool {
		return args.DryRun &&
			args.Root == m.Path("Assets/Scripts") &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "Editor/" &&
			args.Exclude[1] == "Plugins/"
	})).Return(m.Stats{}, nil)

	cmd.SetArgs([]string{
		"rewrite", "-n", "-x", "Editor/", "--exclude", "Plugins/",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"Assets/Scripts",
	})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRewriteCmd_FlagsOverrideConfig(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	path := writeConfig(t, `root: Assets
extension: .cs
exclude_patterns: ["Generated/"]
respect_gitignore: true
reports: cfg-reports
`)

	mockWorkflow.On("Rewrite", mock.Anything, mock.MatchedBy(func(args domain.RewriteArgs) bool {
		return args.Root == m.Path("Assets") &&
			args.Extension == ".txt" &&
			!args.RespectGitignore &&
			assert.ObjectsAreEqual([]string{"Generated/", "Tests/"}, args.Exclude) &&
			args.Reports == m.Path("out")
	})).Return(m.Stats{}, nil)

	cmd.SetArgs([]string{
		"rewrite", "--config", path, "--ext", ".txt", "--gitignore=false",
		"-x", "Tests/", "--reports", "out",
	})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRewriteCmd_ReturnsWorkflowError(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	boom := errors.New("boom")
	mockWorkflow.On("Rewrite", mock.Anything, mock.Anything).Return(m.Stats{}, boom)

	cmd.SetArgs([]string{"rewrite", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRewriteCmd_TooManyArgs(t *testing.T) {
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"rewrite", "a", "b"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	cmd, _ := newTestRoot(t)

	path := writeConfig(t, "log_limit: -1\n")

	cmd.SetArgs([]string{"rewrite", "--config", path})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidConfig)
}

func TestExtractCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	path := writeConfig(t, `extract:
  language_table: Tables
  method_filters: []
  class_filters: [Boot]
  target_columns: [Name]
`)

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		defaults := domain.DefaultExtractFilters()

		return args.Output == m.Path("texts.txt") &&
			args.LanguageTable == m.Path("Tables") &&
			args.TableName == "lang" &&
			args.Filters.Methods != nil && len(args.Filters.Methods) == 0 &&
			assert.ObjectsAreEqual(defaults.Calls, args.Filters.Calls) &&
			assert.ObjectsAreEqual(defaults.Texts, args.Filters.Texts) &&
			assert.ObjectsAreEqual([]string{"Boot"}, args.Filters.Classes) &&
			assert.ObjectsAreEqual([]string{"Desc", "Title"}, args.TargetColumns) &&
			args.TableDir == m.Path("Refdata") &&
			args.IncludeComments
	})).Return(m.ExtractSummary{}, nil)

	cmd.SetArgs([]string{
		"extract", "--config", path, "-o", "texts.txt", "--table-name", "lang",
		"--table-dir", "Refdata", "--column", "Desc", "--column", "Title", "--comments",
	})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestReportCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	mockWorkflow.EXPECT().Report(domain.ReportArgs{Reports: m.Path("runs")}).Return(nil)

	cmd.SetArgs([]string{"report", "--reports", "runs", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, cmd.Execute())
}

func TestReportCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"report", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestNewWorkflow(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.NotNil(t, newWorkflow(cmd, config.DefaultConfig(), zap.NewNop()))
}

func TestInitCmd(t *testing.T) {
	cmd, _ := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "conf", config.FileName)

	cmd.SetArgs([]string{"init", "--config", path})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	filters := domain.DefaultExtractFilters()
	assert.Equal(t, ".cs", cfg.Extension)
	assert.Equal(t, 300, cfg.Lambda.LookBehind)
	assert.Equal(t, []string{"DOTween.To", ".To(", "Tween.", "LeanTween.", "iTween."}, cfg.Lambda.Markers)
	assert.Equal(t, filters.Calls, cfg.Extract.CallFilters)
	assert.Equal(t, filters.Classes, cfg.Extract.ClassFilters)

	cmd.SetArgs([]string{"init", "--config", path})
	assert.ErrorIs(t, cmd.Execute(), errConfigExists)
}

func TestInitCmd_ForceReplacesInvalidConfig(t *testing.T) {
	cmd, _ := newTestRoot(t)
	path := writeConfig(t, "log_limit: -1\n")

	cmd.SetArgs([]string{"init", "--config", path, "--force"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.LogLimit)
}

func TestShutdownSignals(t *testing.T) {
	assert.Contains(t, shutdownSignals, os.Interrupt)
	assert.Contains(t, shutdownSignals, os.Signal(syscall.SIGTERM))
}
