package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ErrCheckerFailed reports that a checker could not produce diagnostics:
// the binary is missing, it crashed, timed out, or exited with a status
// that does not mean "diagnostics were reported".
var ErrCheckerFailed = errors.New("checker failed")

// DefaultCheckerTimeout bounds a single checker invocation.
const DefaultCheckerTimeout = 2 * time.Minute

// highestDiagnosticExitCode is the largest exit status mypy and pyright use
// for a completed run (1 means errors were reported).
const highestDiagnosticExitCode = 1

// CheckerRunnerAdapter abstracts running a checker process.
type CheckerRunnerAdapter interface {
	// RunChecker runs argv in workDir and returns the full stdout.
	RunChecker(ctx context.Context, workDir string, argv []string) (output string, err error)
}

// LocalCheckerRunnerAdapter runs checkers with os/exec.
type LocalCheckerRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalCheckerRunnerAdapter constructs a runner. A non-positive timeout
// selects DefaultCheckerTimeout.
func NewLocalCheckerRunnerAdapter(timeout time.Duration) *LocalCheckerRunnerAdapter {
	if timeout <= 0 {
		timeout = DefaultCheckerTimeout
	}

	return &LocalCheckerRunnerAdapter{timeout: timeout}
}

// RunChecker blocks until the process exits and buffers its stdout.
func (a *LocalCheckerRunnerAdapter) RunChecker(ctx context.Context, workDir string, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrCheckerFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - argv comes from the configured checker backends
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running checker", "argv", argv, "workDir", workDir)

	err := cmd.Run()
	output := stdout.String()

	if err == nil {
		return output, nil
	}

	if ctx.Err() != nil {
		slog.Warn("Checker interrupted", "argv", argv, "error", ctx.Err())
		return output, fmt.Errorf("%w: %s: %w", ErrCheckerFailed, argv[0], ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 && exitErr.ExitCode() <= highestDiagnosticExitCode {
		return output, nil
	}

	slog.Error("Checker failed", "argv", argv, "error", err, "stderr", stderr.String())

	detail := strings.TrimSpace(stderr.String())
	if detail == "" {
		detail = strings.TrimSpace(output)
	}

	if detail != "" {
		return output, fmt.Errorf("%w: %s: %w: %s", ErrCheckerFailed, argv[0], err, detail)
	}

	return output, fmt.Errorf("%w: %s: %w", ErrCheckerFailed, argv[0], err)
}
