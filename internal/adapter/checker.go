// Package adapter contains the checker backends and infrastructure adapters
// (filesystem, subprocess, comments, report storage) for the typest CLI.
package adapter

import (
	"fmt"
	"slices"
	"strings"

	m "typest.dev/pkg/typest/internal/model"
)

// Checker translates one static type checker's invocation and output format
// into outcomes. Every extractor returns false when the line does not match.
type Checker interface {
	// Name is the short identifier used to select the checker.
	Name() string

	// Command returns the argv that checks the file at path.
	Command(path m.Path) []string

	// ExtractLineNumber parses the file:line prefix of an output line.
	ExtractLineNumber(line string) (int, bool)

	// ExtractRevealedType recognizes the checker's revealed type note.
	ExtractRevealedType(line string, lineNumber int) (m.RevealedType, bool)

	// ExtractFlaw recognizes any error diagnostic.
	ExtractFlaw(line string, lineNumber int) (m.Flaw, bool)

	// ExtractMismatch recognizes the checker's incompatible assignment error.
	ExtractMismatch(line string, lineNumber int) (m.Mismatch, bool)
}

// ExtractOutcomes parses every line of a checker's output. A single line may
// yield several outcomes, e.g. a Flaw and a Mismatch for the same error.
func ExtractOutcomes(checker Checker, output string) []m.Outcome {
	var outcomes []m.Outcome

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		lineNumber, ok := checker.ExtractLineNumber(line)
		if !ok {
			continue
		}

		if flaw, ok := checker.ExtractFlaw(line, lineNumber); ok {
			outcomes = append(outcomes, flaw)
		}

		if mismatch, ok := checker.ExtractMismatch(line, lineNumber); ok {
			outcomes = append(outcomes, mismatch)
		}

		if revealed, ok := checker.ExtractRevealedType(line, lineNumber); ok {
			outcomes = append(outcomes, revealed)
		}
	}

	return outcomes
}

// CheckerRegistry holds the available checkers by name.
type CheckerRegistry struct {
	checkers map[string]Checker
	names    []string
}

// NewCheckerRegistry registers checkers in the given order. Later checkers
// replace earlier ones with the same name.
func NewCheckerRegistry(checkers ...Checker) *CheckerRegistry {
	registry := &CheckerRegistry{checkers: make(map[string]Checker, len(checkers))}

	for _, checker := range checkers {
		if _, ok := registry.checkers[checker.Name()]; !ok {
			registry.names = append(registry.names, checker.Name())
		}

		registry.checkers[checker.Name()] = checker
	}

	return registry
}

// Names returns the registered names in registration order.
func (r *CheckerRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Get looks a checker up by name.
func (r *CheckerRegistry) Get(name string) (Checker, bool) {
	checker, ok := r.checkers[name]
	return checker, ok
}

// Select resolves names to checkers. An empty selection means all checkers.
func (r *CheckerRegistry) Select(names []string) ([]Checker, error) {
	if len(names) == 0 {
		names = r.names
	}

	selected := make([]Checker, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		checker, ok := r.checkers[name]
		if !ok {
			return nil, fmt.Errorf("unknown checker %q (available: %s)", name, strings.Join(r.names, ", "))
		}

		seen[name] = struct{}{}
		selected = append(selected, checker)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no checker selected")
	}

	return selected, nil
}
