package domain_test

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typest.dev/pkg/typest/internal/adapter"
	"typest.dev/pkg/typest/internal/controller"
	"typest.dev/pkg/typest/internal/domain"
	m "typest.dev/pkg/typest/internal/model"
)

// replayRegistry builds checkers that print the recorded output stored next
// to each source (case.py -> case.mypy, case.pyright) instead of running the
// real tools.
func replayRegistry() *adapter.CheckerRegistry {
	return adapter.NewCheckerRegistry(
		adapter.NewMypy("sh", "-c", `cat "${1%.py}.mypy"`, "sh"),
		adapter.NewPyright("sh", "-c", `cat "${1%.py}.pyright"`, "sh"),
	)
}

func newExamplesWorkflow(t *testing.T) (domain.Workflow, *bytes.Buffer) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	orchestrator := domain.NewOrchestrator(
		adapter.NewLocalPythonCommentAdapter(),
		adapter.NewLocalCheckerRunnerAdapter(10*time.Second),
	)

	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalReportStore(),
		controller.NewSimpleUI(cmd),
		orchestrator,
		replayRegistry(),
	)

	return wf, out
}

func examplesPath(parts ...string) m.Path {
	return m.Path(filepath.Join(append([]string{"..", "..", "examples"}, parts...)...))
}

func TestExamples_PassingCase(t *testing.T) {
	wf, out := newExamplesWorkflow(t)
	reports := m.Path(t.TempDir())

	err := wf.Run(context.Background(), domain.RunArgs{
		Paths:   []m.Path{examplesPath("passing")},
		Threads: 2,
		Reports: reports,
	})
	require.NoError(t, err, out.String())
	assert.Contains(t, out.String(), "All type assertions passed.")

	stored, err := adapter.NewLocalReportStore().LoadReport(context.Background(), reports)
	require.NoError(t, err)
	require.Len(t, stored.Files, 2)
	assert.Equal(t, []string{adapter.MypyName, adapter.PyrightName}, stored.Checkers)

	for _, file := range stored.Files {
		assert.Equal(t, m.Passed, file.Status, file.Checker)
		assert.Len(t, file.Verdicts, 5, file.Checker)
	}
}

func TestExamples_FailingCase(t *testing.T) {
	wf, out := newExamplesWorkflow(t)

	err := wf.Run(context.Background(), domain.RunArgs{
		Paths:    []m.Path{examplesPath("failing", "case.py")},
		Checkers: []string{adapter.MypyName},
		Threads:  1,
	})
	require.ErrorIs(t, err, domain.ErrAssertionsFailed)

	output := out.String()
	assert.Contains(t, output, "=== LINE 6 ===")
	assert.Contains(t, output, "=== LINE 7 ===")
	assert.Contains(t, output, "No error found.")
	assert.Contains(t, output, "1 file check(s) failed.")
}

func TestExamples_WholeTreeWithExclude(t *testing.T) {
	wf, out := newExamplesWorkflow(t)
	reports := m.Path(t.TempDir())

	err := wf.Run(context.Background(), domain.RunArgs{
		Paths:    []m.Path{examplesPath() + "/..."},
		Exclude:  []string{"failing"},
		Checkers: []string{adapter.PyrightName},
		Threads:  4,
		Reports:  reports,
	})
	require.NoError(t, err, out.String())

	stored, err := adapter.NewLocalReportStore().LoadReport(context.Background(), reports)
	require.NoError(t, err)

	statuses := make(map[string]m.FileStatus, len(stored.Files))
	for _, file := range stored.Files {
		statuses[filepath.Base(string(file.Source.Origin.FullPath))] = file.Status
	}

	assert.Equal(t, map[string]m.FileStatus{
		"case.py":  m.Passed,
		"empty.py": m.Unsupported,
		"plain.py": m.NoAssertions,
	}, statuses)
}

func TestExamples_List(t *testing.T) {
	wf, out := newExamplesWorkflow(t)

	err := wf.List(context.Background(), domain.ListArgs{
		Paths: []m.Path{examplesPath()},
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "case.py")
	assert.Contains(t, output, "plain.py")
	assert.Contains(t, output, "empty.py")
}
