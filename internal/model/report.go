package model

import (
	"fmt"
	"time"
)

// Verdict is the result of reconciling one expectation. Found is nil when
// the checker reported nothing on the expectation's line.
type Verdict struct {
	Expected Outcome
	Found    Outcome
	Passed   bool
}

// Discrepancy pairs an unmet expectation with what the checker reported on
// that line, if anything.
type Discrepancy struct {
	Path     Path
	Expected Outcome
	Found    Outcome
}

// Line returns the line of the expectation.
func (d Discrepancy) Line() int {
	return d.Expected.Line()
}

// FileStatus is the outcome of checking one file with one checker.
type FileStatus int

const (
	// Passed indicates every assertion was satisfied.
	Passed FileStatus = iota
	// Failed indicates at least one discrepancy.
	Failed
	// NoAssertions indicates the file declares no expectations.
	NoAssertions
	// Unsupported indicates the file could not be scanned for comments.
	Unsupported
	// Error indicates the checker or the assertions could not be processed.
	Error
)

func (s FileStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case NoAssertions:
		return "no assertions"
	case Unsupported:
		return "unsupported"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseFileStatus is the inverse of FileStatus.String.
func ParseFileStatus(text string) (FileStatus, error) {
	for _, status := range []FileStatus{Passed, Failed, NoAssertions, Unsupported, Error} {
		if status.String() == text {
			return status, nil
		}
	}

	return Error, fmt.Errorf("unknown file status %q", text)
}

// Successful reports whether the status counts as a pass for the exit code.
func (s FileStatus) Successful() bool {
	return s == Passed || s == NoAssertions || s == Unsupported
}

// FileReport holds the result of one (file, checker) pair.
type FileReport struct {
	Source   Source
	Checker  string
	Status   FileStatus
	Verdicts []Verdict
	Err      error
}

// Discrepancies returns the failed verdicts as discrepancies, in order.
func (r FileReport) Discrepancies() []Discrepancy {
	var path Path
	if r.Source.Origin != nil {
		path = r.Source.Origin.ShortPath
	}

	var discrepancies []Discrepancy

	for _, verdict := range r.Verdicts {
		if verdict.Passed {
			continue
		}

		discrepancies = append(discrepancies, Discrepancy{
			Path:     path,
			Expected: verdict.Expected,
			Found:    verdict.Found,
		})
	}

	return discrepancies
}

// RunReport is a complete run over a set of files and checkers.
type RunReport struct {
	ID       string
	Started  time.Time
	Checkers []string
	Files    []FileReport
}

// Successful reports whether every file report counts as a pass.
func (r RunReport) Successful() bool {
	for _, file := range r.Files {
		if !file.Status.Successful() {
			return false
		}
	}

	return true
}
