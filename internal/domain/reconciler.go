package domain

import (
	m "typest.dev/pkg/typest/internal/model"
)

// Reconcile pairs every expectation with the actual outcomes on its line,
// keeping the order of expected.
//
// An expectation passes when any actual outcome on its line equals it.
// Otherwise Found is the first actual outcome of the same kind on that line,
// else the first actual outcome on that line, else nil.
func Reconcile(expected, actual []m.Outcome) []m.Verdict {
	byLine := make(map[int][]m.Outcome, len(actual))
	for _, outcome := range actual {
		byLine[outcome.Line()] = append(byLine[outcome.Line()], outcome)
	}

	verdicts := make([]m.Verdict, 0, len(expected))

	for _, want := range expected {
		verdicts = append(verdicts, reconcileOne(want, byLine[want.Line()]))
	}

	return verdicts
}

func reconcileOne(want m.Outcome, candidates []m.Outcome) m.Verdict {
	var sameKind m.Outcome

	for _, candidate := range candidates {
		if want.Equal(candidate) {
			return m.Verdict{Expected: want, Found: candidate, Passed: true}
		}

		if sameKind == nil && candidate.Kind() == want.Kind() {
			sameKind = candidate
		}
	}

	found := sameKind
	if found == nil && len(candidates) > 0 {
		found = candidates[0]
	}

	return m.Verdict{Expected: want, Found: found}
}

// Discrepancies reconciles expected against actual and keeps only the
// failures, attributed to path.
func Discrepancies(path m.Path, expected, actual []m.Outcome) []m.Discrepancy {
	report := m.FileReport{
		Source:   m.Source{Origin: &m.File{ShortPath: path}},
		Verdicts: Reconcile(expected, actual),
	}

	return report.Discrepancies()
}
