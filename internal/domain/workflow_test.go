package domain

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/mouse-blink/textmig/internal/adapter"
	adaptermocks "github.com/mouse-blink/textmig/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/textmig/internal/controller/mocks"
	m "github.com/mouse-blink/textmig/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubFileInfo struct {
	mode os.FileMode
	dir  bool
}

func (s stubFileInfo) Name() string       { return "stub" }
func (s stubFileInfo) Size() int64        { return 0 }
func (s stubFileInfo) Mode() os.FileMode  { return s.mode }
func (s stubFileInfo) ModTime() time.Time { return time.Time{} }
func (s stubFileInfo) IsDir() bool        { return s.dir }
func (s stubFileInfo) Sys() any           { return nil }

type workflowFixture struct {
	fs     *adaptermocks.MockSourceFSAdapter
	store  *adaptermocks.MockReportStore
	tables *adaptermocks.MockTableAdapter
	ui     *controllermocks.MockUI
	wf     Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		fs:     adaptermocks.NewMockSourceFSAdapter(t),
		store:  adaptermocks.NewMockReportStore(t),
		tables: adaptermocks.NewMockTableAdapter(t),
		ui:     controllermocks.NewMockUI(t),
	}
	f.wf = NewWorkflow(f.fs, f.store, f.tables, f.ui, NewRewriter(nil), NewRunLog(DefaultLogLimit, nil))

	return f
}

// expectRun sets up the UI lifecycle of a run started with n options.
func (f *workflowFixture) expectRun(n int) {
	anys := make([]interface{}, n)
	for i := range anys {
		anys[i] = mock.Anything
	}

	f.ui.EXPECT().Start(anys...).Return(nil).Once()
	f.ui.EXPECT().DisplayLog(mock.Anything).Maybe()
	f.ui.EXPECT().Close().Once()
	f.ui.EXPECT().Wait().Return(nil).Once()
}

var rewriteSources = []m.Source{
	{Path: "/proj/A.cs", Rel: "A.cs"},
	{Path: "/proj/B.cs", Rel: "B.cs"},
	{Path: "/proj/C.cs", Rel: "C.cs"},
}

func TestWorkflow_Rewrite(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.MatchedBy(func(q adapter.SourceQuery) bool {
		return q.Root == "/proj" && q.Extension == ".cs" && q.ExcludeFile == "Util.cs" && len(q.Exclude) == 1
	})).Return(rewriteSources, nil)

	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`lbl.text = "Hello";`), nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/B.cs")).Return([]byte(`lbl.SetText("Hello");`), nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/C.cs")).Return(nil, os.ErrPermission)
	f.fs.EXPECT().FileInfo(m.Path("/proj/A.cs")).Return(stubFileInfo{mode: 0o640}, nil)
	f.fs.EXPECT().WriteFile(m.Path("/proj/A.cs"), []byte(`lbl.SetText("Hello");`), os.FileMode(0o640)).Return(nil)

	var results []m.FileResult

	f.ui.EXPECT().DisplayFileResult(mock.Anything).Run(func(result m.FileResult) {
		results = append(results, result)
	}).Times(3)

	want := m.Stats{FilesProcessed: 3, FilesTouched: 1, FilesFailed: 1, Rewritten: 1}
	f.ui.EXPECT().DisplayRewriteSummary(want).Once()

	stats, err := f.wf.Rewrite(context.Background(), RewriteArgs{
		ScanArgs: ScanArgs{Root: "/proj", Exclude: []string{`^Editor/`}},
	})

	require.NoError(t, err)
	assert.Equal(t, want, stats)
	require.Len(t, results, 3)
	assert.True(t, results[0].Touched())
	assert.False(t, results[1].Touched())
	assert.ErrorIs(t, results[2].Err, os.ErrPermission)
}

func TestWorkflow_Rewrite_WriteFailureDiscardsCount(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`a.text = "x"; b.text = y;`), nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/A.cs")).Return(stubFileInfo{mode: 0o644}, nil)
	f.fs.EXPECT().WriteFile(m.Path("/proj/A.cs"), mock.Anything, os.FileMode(0o644)).Return(os.ErrPermission)

	var result m.FileResult

	f.ui.EXPECT().DisplayFileResult(mock.Anything).Run(func(r m.FileResult) {
		result = r
	}).Once()

	want := m.Stats{FilesProcessed: 1, FilesFailed: 1}
	f.ui.EXPECT().DisplayRewriteSummary(want).Once()

	stats, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}})

	require.NoError(t, err)
	assert.Equal(t, want, stats)
	assert.ErrorIs(t, result.Err, os.ErrPermission)
	assert.Zero(t, result.Rewritten)
	assert.False(t, result.Touched())
}

func TestWorkflow_Rewrite_DryRun(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte("lbl.text = \"Hello\";\n"), nil)

	var result m.FileResult

	f.ui.EXPECT().DisplayFileResult(mock.Anything).Run(func(r m.FileResult) {
		result = r
	}).Once()
	f.ui.EXPECT().DisplayRewriteSummary(mock.Anything).Once()

	stats, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}, DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesTouched)
	assert.Contains(t, result.Diff, "--- a/A.cs")
	assert.Contains(t, result.Diff, "-lbl.text = \"Hello\";")
	assert.Contains(t, result.Diff, "+lbl.SetText(\"Hello\");")
	f.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Rewrite_LambdaSkipNotWritten(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`tween.To(x => { lbl.text = "Hi"; }, 1f);`), nil)
	f.ui.EXPECT().DisplayFileResult(mock.Anything).Once()
	f.ui.EXPECT().DisplayRewriteSummary(m.Stats{FilesProcessed: 1, LambdaSkipped: 1}).Once()

	stats, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.LambdaSkipped)
	assert.Zero(t, stats.FilesTouched)
}

func TestWorkflow_Rewrite_Cancelled(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources, nil)
	f.ui.EXPECT().DisplayRewriteSummary(m.Stats{}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := f.wf.Rewrite(ctx, RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.FilesProcessed)
}

func TestWorkflow_Rewrite_SavesReport(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`a.text = b;`), nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/A.cs")).Return(nil, os.ErrNotExist)
	f.fs.EXPECT().WriteFile(m.Path("/proj/A.cs"), []byte(`a.SetText(b);`), os.FileMode(0o644)).Return(nil)
	f.ui.EXPECT().DisplayFileResult(mock.Anything).Once()
	f.ui.EXPECT().DisplayRewriteSummary(mock.Anything).Once()

	f.store.EXPECT().SaveReport(m.Path(".textmig-reports"), mock.MatchedBy(func(r m.Report) bool {
		return r.Root == "/proj" && r.Stats.Rewritten == 1 && len(r.Files) == 1 && r.Files[0].Path == "A.cs"
	})).Return(m.Path(".textmig-reports/report.yaml"), nil)

	_, err := f.wf.Rewrite(context.Background(), RewriteArgs{
		ScanArgs: ScanArgs{Root: "/proj"},
		Reports:  ".textmig-reports",
	})

	require.NoError(t, err)
}

func TestWorkflow_Rewrite_ReportError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	boom := errors.New("disk full")

	f.fs.EXPECT().Get(mock.Anything).Return(nil, nil)
	f.ui.EXPECT().DisplayRewriteSummary(m.Stats{}).Once()
	f.ui.EXPECT().DisplayError(mock.Anything).Once()
	f.store.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(m.Path(""), boom)

	_, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}, Reports: "r"})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save report")
}

func TestWorkflow_Rewrite_GetSourcesError(t *testing.T) {
	f := newWorkflowFixture(t)

	f.fs.EXPECT().Get(mock.Anything).Return(nil, adapter.ErrInvalidRoot)

	_, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/missing"}})

	require.ErrorIs(t, err, adapter.ErrInvalidRoot)
	assert.Contains(t, err.Error(), "get sources")
}

func TestWorkflow_Rewrite_InvalidExclude(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj", Exclude: []string{"("}}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestWorkflow_Extract(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	sources := []m.Source{{Path: "/proj/A.cs", Rel: "A.cs"}, {Path: "/proj/B.cs", Rel: "B.cs"}}

	f.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/Refdata")).Return(stubFileInfo{dir: true}, nil)
	f.tables.EXPECT().FindTable(m.Path("/proj/Refdata"), "language").Return(m.Path("/proj/Refdata/Language.txt"), nil)
	f.tables.EXPECT().FirstColumn(m.Path("/proj/Refdata/Language.txt")).Return(map[string]struct{}{"Welcome back": {}}, nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`a.SetText("Tap here"); b.SetText("Welcome back");`), nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/B.cs")).Return([]byte(`c.SetText("Buy now"); d.SetText("Tap here");`), nil)
	f.fs.EXPECT().WriteFile(m.Path("out.txt"), []byte("Buy now\nTap here\n"), os.FileMode(0o644)).Return(nil)

	var shown m.ExtractSummary

	f.ui.EXPECT().DisplayExtraction(mock.Anything).Run(func(s m.ExtractSummary) {
		shown = s
	}).Once()

	summary, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:      ScanArgs{Root: "/proj"},
		Output:        "out.txt",
		LanguageTable: "/proj/Refdata",
		Filters:       DefaultExtractFilters(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Buy now", "Tap here"}, summary.Texts)
	assert.Equal(t, 1, summary.Known)
	assert.Equal(t, map[string]int{"A.cs": 2, "B.cs": 2}, summary.PerFile)
	assert.Equal(t, summary, shown)
}

func TestWorkflow_Extract_TableNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	f.fs.EXPECT().Get(mock.Anything).Return(nil, nil)
	f.fs.EXPECT().FileInfo(m.Path("tables")).Return(stubFileInfo{dir: true}, nil)
	f.tables.EXPECT().FindTable(m.Path("tables"), "lang").Return(m.Path(""), adapter.ErrTableNotFound)

	_, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:      ScanArgs{Root: "/proj"},
		LanguageTable: "tables",
		TableName:     "lang",
	})

	assert.ErrorIs(t, err, adapter.ErrTableNotFound)
}

func TestWorkflow_Extract_TableColumnsAndClassFilter(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	sources := []m.Source{{Path: "/proj/A.cs", Rel: "A.cs"}, {Path: "/proj/IAPManager.cs", Rel: "IAPManager.cs"}}
	tables := []m.Path{"/proj/Refdata/shop.txt", "/proj/Refdata/task.txt"}

	f.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(`x.SetText("Tap here");`), nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/IAPManager.cs")).Return([]byte(`y.SetText("Restore purchases");`), nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/Refdata")).Return(stubFileInfo{dir: true}, nil)
	f.tables.EXPECT().ListTables(m.Path("/proj/Refdata")).Return(tables, nil)
	f.tables.EXPECT().Column(tables[0], "Desc").Return([]m.TableCell{{Text: "Lots of gold", Line: 3}, {Text: "Gold", Line: 4}}, nil)
	f.tables.EXPECT().Column(tables[1], "Desc").Return(nil, adapter.ErrColumnNotFound)
	f.ui.EXPECT().DisplayExtraction(mock.Anything).Once()

	summary, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:      ScanArgs{Root: "/proj"},
		Filters:       DefaultExtractFilters(),
		TableDir:      "/proj/Refdata",
		TargetColumns: []string{"Desc"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Lots of gold", "Tap here"}, summary.Texts)
	assert.Equal(t, map[string]int{"A.cs": 1, "shop.Desc": 1}, summary.PerFile)
}

func TestWorkflow_Extract_TableColumnsUseLanguageTableDir(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(nil, nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/Refdata/language.txt")).Return(stubFileInfo{}, nil)
	f.tables.EXPECT().FirstColumn(m.Path("/proj/Refdata/language.txt")).Return(map[string]struct{}{"Lots of gold": {}}, nil)
	f.tables.EXPECT().ListTables(m.Path("/proj/Refdata")).Return([]m.Path{"/proj/Refdata/shop.txt"}, nil)
	f.tables.EXPECT().Column(m.Path("/proj/Refdata/shop.txt"), "Desc").Return([]m.TableCell{{Text: "Lots of gold", Line: 3}}, nil)
	f.ui.EXPECT().DisplayExtraction(mock.Anything).Once()

	summary, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:      ScanArgs{Root: "/proj"},
		LanguageTable: "/proj/Refdata/language.txt",
		TargetColumns: []string{"Desc"},
	})

	require.NoError(t, err)
	assert.Empty(t, summary.Texts)
	assert.Equal(t, 1, summary.Known)
}

func TestWorkflow_Extract_TableColumnsNeedDir(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(nil, nil)
	f.ui.EXPECT().DisplayError(mock.Anything).Once()
	f.ui.EXPECT().DisplayExtraction(mock.Anything).Once()

	_, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:      ScanArgs{Root: "/proj"},
		Output:        "out.txt",
		TargetColumns: []string{"Desc"},
	})

	assert.ErrorIs(t, err, ErrNoTableDir)
}

func TestWorkflow_Extract_IncludeComments(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte("// Opens the shop window\nx.SetText(\"Tap here\");\n"), nil)
	f.ui.EXPECT().DisplayExtraction(mock.Anything).Once()

	summary, err := f.wf.Extract(context.Background(), ExtractArgs{
		ScanArgs:        ScanArgs{Root: "/proj"},
		Filters:         DefaultExtractFilters(),
		IncludeComments: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Opens the shop window", "Tap here"}, summary.Texts)
	assert.Equal(t, map[string]int{"A.cs": 2}, summary.PerFile)
}

func TestWorkflow_Extract_ReadFailureCounted(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return(nil, os.ErrPermission)
	f.ui.EXPECT().DisplayFileResult(mock.Anything).Once()
	f.ui.EXPECT().DisplayExtraction(mock.Anything).Once()

	summary, err := f.wf.Extract(context.Background(), ExtractArgs{ScanArgs: ScanArgs{Root: "/proj"}})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, summary.Texts)
}

func TestWorkflow_Report(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(1)

	report := m.Report{Root: "/proj", Stats: m.Stats{Rewritten: 4}}

	f.store.EXPECT().LoadLatest(m.Path("reports")).Return(report, m.Path("reports/report-1.yaml"), nil)
	f.ui.EXPECT().DisplayReport(report, m.Path("reports/report-1.yaml")).Once()

	require.NoError(t, f.wf.Report(ReportArgs{Reports: "reports"}))
}

func TestWorkflow_Report_NoReports(t *testing.T) {
	f := newWorkflowFixture(t)

	f.store.EXPECT().LoadLatest(m.Path("reports")).Return(m.Report{}, m.Path(""), adapter.ErrNoReports)

	err := f.wf.Report(ReportArgs{Reports: "reports"})
	assert.ErrorIs(t, err, adapter.ErrNoReports)
}

func TestWorkflow_Rewrite_FailureLoggedWithFields(t *testing.T) {
	f := newWorkflowFixture(t)
	core, logs := observer.New(zapcore.WarnLevel)
	f.wf = NewWorkflow(f.fs, f.store, f.tables, f.ui, NewRewriter(nil), NewRunLog(10, zap.New(core)))
	f.expectRun(3)

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[2:], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/C.cs")).Return(nil, os.ErrPermission)
	f.ui.EXPECT().DisplayFileResult(mock.Anything).Once()
	f.ui.EXPECT().DisplayRewriteSummary(mock.Anything).Once()

	_, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}})
	require.NoError(t, err)

	entries := logs.FilterField(zap.String("file", "C.cs")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "file left untouched", entries[0].Message)
}

func TestWorkflow_Rewrite_IgnoredAssignmentKept(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectRun(3)

	content := "// textmig:ignore literal\nusing UnityEngine;\nlbl.text = \"Hi\";\nlbl.text = name;\n"

	f.fs.EXPECT().Get(mock.Anything).Return(rewriteSources[:1], nil)
	f.fs.EXPECT().ReadFile(m.Path("/proj/A.cs")).Return([]byte(content), nil)
	f.fs.EXPECT().FileInfo(m.Path("/proj/A.cs")).Return(nil, os.ErrNotExist)
	f.fs.EXPECT().WriteFile(
		m.Path("/proj/A.cs"),
		[]byte("// textmig:ignore literal\nusing UnityEngine;\nlbl.text = \"Hi\";\nlbl.SetText(name);\n"),
		os.FileMode(0o644),
	).Return(nil)
	f.ui.EXPECT().DisplayFileResult(mock.Anything).Once()
	f.ui.EXPECT().DisplayRewriteSummary(mock.Anything).Once()

	stats, err := f.wf.Rewrite(context.Background(), RewriteArgs{ScanArgs: ScanArgs{Root: "/proj"}})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rewritten)
}
