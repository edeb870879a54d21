package adapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript writes an executable shell script standing in for a checker.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	path := filepath.Join(t.TempDir(), "checker.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))

	return path
}

func TestLocalCheckerRunnerAdapter_RunChecker_Success(t *testing.T) {
	script := writeScript(t, `echo "case.py:3: note: Revealed type is \"builtins.int\""`)
	runner := NewLocalCheckerRunnerAdapter(10 * time.Second)

	out, err := runner.RunChecker(context.Background(), t.TempDir(), []string{script, "case.py"})
	require.NoError(t, err)
	assert.Contains(t, out, `Revealed type is "builtins.int"`)
}

func TestLocalCheckerRunnerAdapter_RunChecker_DiagnosticsExitStatus(t *testing.T) {
	script := writeScript(t, "echo 'case.py:3: error: boom'\nexit 1")
	runner := NewLocalCheckerRunnerAdapter(10 * time.Second)

	out, err := runner.RunChecker(context.Background(), t.TempDir(), []string{script})
	require.NoError(t, err, "exit status 1 means diagnostics were reported")
	assert.Contains(t, out, "error: boom")
}

func TestLocalCheckerRunnerAdapter_RunChecker_FatalExitStatus(t *testing.T) {
	script := writeScript(t, "echo 'usage: bad flag' >&2\nexit 2")
	runner := NewLocalCheckerRunnerAdapter(10 * time.Second)

	_, err := runner.RunChecker(context.Background(), t.TempDir(), []string{script})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckerFailed)
	assert.Contains(t, err.Error(), "usage: bad flag")
}

func TestLocalCheckerRunnerAdapter_RunChecker_MissingBinary(t *testing.T) {
	runner := NewLocalCheckerRunnerAdapter(0)

	_, err := runner.RunChecker(context.Background(), t.TempDir(), []string{"typest-no-such-checker-binary"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckerFailed)
}

func TestLocalCheckerRunnerAdapter_RunChecker_EmptyCommand(t *testing.T) {
	runner := NewLocalCheckerRunnerAdapter(0)

	_, err := runner.RunChecker(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrCheckerFailed)
}

func TestLocalCheckerRunnerAdapter_RunChecker_Timeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5")
	runner := NewLocalCheckerRunnerAdapter(100 * time.Millisecond)

	_, err := runner.RunChecker(context.Background(), t.TempDir(), []string{script})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckerFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
