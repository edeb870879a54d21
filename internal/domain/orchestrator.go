package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"typest.dev/pkg/typest/internal/adapter"
	m "typest.dev/pkg/typest/internal/model"
)

// ErrNoAssertionsFound signals that a file declares no expectations. It is
// not a failure.
var ErrNoAssertionsFound = errors.New("no assertions found")

// Orchestrator checks a single source file: it reads the expectations from
// its comments, runs a checker over it and reconciles both.
type Orchestrator interface {
	// Expectations returns the expectations declared in source, or
	// ErrNoAssertionsFound when there are none.
	Expectations(ctx context.Context, source m.Source) ([]m.Outcome, error)
	// CheckFile runs checker over source and reconciles its findings
	// against expected.
	CheckFile(ctx context.Context, source m.Source, expected []m.Outcome, checker adapter.Checker) m.FileReport
}

type orchestrator struct {
	commentAdapter adapter.CommentAdapter
	runnerAdapter  adapter.CheckerRunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// comment and checker runner adapters.
func NewOrchestrator(commentAdapter adapter.CommentAdapter, runnerAdapter adapter.CheckerRunnerAdapter) Orchestrator {
	return &orchestrator{
		commentAdapter: commentAdapter,
		runnerAdapter:  runnerAdapter,
	}
}

func (o *orchestrator) Expectations(ctx context.Context, source m.Source) ([]m.Outcome, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	comments, err := o.commentAdapter.ExtractComments(ctx, source.Origin.FullPath)
	if err != nil {
		return nil, err
	}

	expectations, err := ExpectationsFromComments(comments)
	if err != nil {
		slog.Error("Malformed expectation", "path", source.Origin.ShortPath, "error", err)
		return nil, fmt.Errorf("%s: %w", source.Origin.ShortPath, err)
	}

	if len(expectations) == 0 {
		return nil, ErrNoAssertionsFound
	}

	return expectations, nil
}

func (o *orchestrator) CheckFile(ctx context.Context, source m.Source, expected []m.Outcome, checker adapter.Checker) m.FileReport {
	report := m.FileReport{Source: source, Checker: checker.Name()}

	if err := validateSource(source); err != nil {
		return ReportForError(report, err)
	}

	output, err := o.runnerAdapter.RunChecker(ctx, "", checker.Command(source.Origin.FullPath))
	if err != nil {
		slog.Error("Checker failed", "checker", checker.Name(), "path", source.Origin.ShortPath, "error", err)
		return ReportForError(report, err)
	}

	actual := adapter.ExtractOutcomes(checker, output)
	report.Verdicts = Reconcile(expected, actual)
	report.Status = m.Passed

	if len(report.Discrepancies()) > 0 {
		report.Status = m.Failed
	}

	slog.Debug("Checked file",
		"checker", checker.Name(),
		"path", source.Origin.ShortPath,
		"expected", len(expected),
		"actual", len(actual),
		"status", report.Status.String())

	return report
}

// ReportForError fills report with the status matching err.
func ReportForError(report m.FileReport, err error) m.FileReport {
	report.Err = err

	switch {
	case errors.Is(err, ErrNoAssertionsFound):
		report.Status = m.NoAssertions
	case errors.Is(err, adapter.ErrUnsupportedSource):
		report.Status = m.Unsupported
	default:
		report.Status = m.Error
	}

	return report
}

func validateSource(source m.Source) error {
	if source.Origin == nil {
		return fmt.Errorf("source origin is nil")
	}

	return nil
}
