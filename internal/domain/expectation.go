package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "typest.dev/pkg/typest/internal/model"
	"typest.dev/pkg/typest/internal/typexpr"
)

const (
	revealedTypeMarker = "expect-type:"
	flawMarker         = "expect-error"
	mismatchMarker     = "expect-mismatch:"
	mismatchSeparator  = "<>"
	markerPrefix       = "expect-"
)

var (
	revealedTypePattern = regexp.MustCompile(regexp.QuoteMeta(revealedTypeMarker) + `(.*)$`)
	flawPattern         = regexp.MustCompile(`^` + regexp.QuoteMeta(flawMarker) + `(?::(.*))?$`)
	mismatchPattern     = regexp.MustCompile(regexp.QuoteMeta(mismatchMarker) + `(.*?)` + mismatchSeparator + `(.*)$`)
)

// RevealedTypeFromComment reads an "expect-type: T" marker anywhere in text.
// The error is non-nil only when T has unbalanced brackets.
func RevealedTypeFromComment(line int, text string) (m.RevealedType, bool, error) {
	match := revealedTypePattern.FindStringSubmatch(text)
	if match == nil {
		return m.RevealedType{}, false, nil
	}

	t, err := typexpr.Parse(match[1])
	if err != nil {
		return m.RevealedType{}, false, err
	}

	return m.RevealedType{LineNumber: line, Type: t}, true, nil
}

// FlawFromComment reads an "expect-error" comment, optionally followed by
// ": message".
func FlawFromComment(line int, text string) (m.Flaw, bool) {
	match := flawPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return m.Flaw{}, false
	}

	return m.Flaw{LineNumber: line, Message: strings.TrimSpace(match[1])}, true
}

// MismatchFromComment reads an "expect-mismatch: A <> D" marker anywhere in
// text. Both sides must be non-empty.
func MismatchFromComment(line int, text string) (m.Mismatch, bool, error) {
	match := mismatchPattern.FindStringSubmatch(text)
	if match == nil {
		return m.Mismatch{}, false, nil
	}

	assignedText := strings.TrimSpace(match[1])
	declaredText := strings.TrimSpace(match[2])

	if assignedText == "" || declaredText == "" {
		return m.Mismatch{}, false, nil
	}

	assigned, err := typexpr.Parse(assignedText)
	if err != nil {
		return m.Mismatch{}, false, err
	}

	declared, err := typexpr.Parse(declaredText)
	if err != nil {
		return m.Mismatch{}, false, err
	}

	return m.Mismatch{LineNumber: line, Assigned: assigned, Declared: declared}, true, nil
}

// OutcomeFromComment tries each expectation form in order: revealed type,
// flaw, mismatch.
func OutcomeFromComment(line int, text string) (m.Outcome, error) {
	if revealed, ok, err := RevealedTypeFromComment(line, text); err != nil || ok {
		if err != nil {
			return nil, err
		}

		return revealed, nil
	}

	if flaw, ok := FlawFromComment(line, text); ok {
		return flaw, nil
	}

	mismatch, ok, err := MismatchFromComment(line, text)
	if err != nil || !ok {
		return nil, err
	}

	return mismatch, nil
}

// ExpectationsFromComments collects expectations in file order. Each
// segment of a comment (see commentSegments) may carry one expectation.
func ExpectationsFromComments(comments []m.Comment) ([]m.Outcome, error) {
	var expectations []m.Outcome

	for _, comment := range comments {
		for _, segment := range commentSegments(comment.Text) {
			outcome, err := OutcomeFromComment(comment.Line, segment)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", comment.Line, err)
			}

			if outcome != nil {
				expectations = append(expectations, outcome)
			}
		}
	}

	return expectations, nil
}

// commentSegments splits text at every "#" that introduces another
// expectation marker. Other "#" characters, such as those inside type text,
// are kept.
func commentSegments(text string) []string {
	var segments []string

	start := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '#' {
			continue
		}

		if !strings.HasPrefix(strings.TrimLeft(text[i+1:], " \t"), markerPrefix) {
			continue
		}

		segments = append(segments, text[start:i])
		start = i + 1
	}

	return append(segments, text[start:])
}
