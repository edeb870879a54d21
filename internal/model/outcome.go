package model

import "fmt"

// OutcomeKind names an Outcome variant.
type OutcomeKind string

const (
	// KindRevealedType is a revealed type note.
	KindRevealedType OutcomeKind = "revealed-type"
	// KindFlaw is a diagnostic of unspecified content.
	KindFlaw OutcomeKind = "flaw"
	// KindMismatch is an assignment type incompatibility.
	KindMismatch OutcomeKind = "mismatch"
)

// Outcome is an assertion anchored to a 1-based source line. It is either
// an expectation read from a comment or a finding read from checker output.
// The variants are RevealedType, Flaw and Mismatch.
type Outcome interface {
	Line() int
	Kind() OutcomeKind
	Equal(other Outcome) bool
	String() string
	isOutcome()
}

// RevealedType asserts the checker reveals Type at LineNumber.
type RevealedType struct {
	LineNumber int
	Type       Type
}

func (RevealedType) isOutcome() {}

// Line implements Outcome.
func (r RevealedType) Line() int { return r.LineNumber }

// Kind implements Outcome.
func (RevealedType) Kind() OutcomeKind { return KindRevealedType }

// Equal implements Outcome.
func (r RevealedType) Equal(other Outcome) bool {
	o, ok := other.(RevealedType)
	if !ok || o.LineNumber != r.LineNumber {
		return false
	}

	return equalTypes(r.Type, o.Type)
}

func (r RevealedType) String() string {
	return fmt.Sprintf("RevealedType(%d, %s)", r.LineNumber, r.Type)
}

// Flaw asserts some diagnostic occurs at LineNumber. Message is
// informational and never takes part in equality.
type Flaw struct {
	LineNumber int
	Message    string
}

func (Flaw) isOutcome() {}

// Line implements Outcome.
func (f Flaw) Line() int { return f.LineNumber }

// Kind implements Outcome.
func (Flaw) Kind() OutcomeKind { return KindFlaw }

// Equal implements Outcome.
func (f Flaw) Equal(other Outcome) bool {
	o, ok := other.(Flaw)

	return ok && o.LineNumber == f.LineNumber
}

func (f Flaw) String() string {
	return fmt.Sprintf("Flaw(%d)", f.LineNumber)
}

// Mismatch asserts an incompatible assignment at LineNumber: Assigned is the
// type of the assigned expression, Declared the type of the target.
type Mismatch struct {
	LineNumber int
	Assigned   Type
	Declared   Type
}

func (Mismatch) isOutcome() {}

// Line implements Outcome.
func (m Mismatch) Line() int { return m.LineNumber }

// Kind implements Outcome.
func (Mismatch) Kind() OutcomeKind { return KindMismatch }

// Equal implements Outcome. The two roles are not interchangeable.
func (m Mismatch) Equal(other Outcome) bool {
	o, ok := other.(Mismatch)
	if !ok || o.LineNumber != m.LineNumber {
		return false
	}

	return equalTypes(m.Assigned, o.Assigned) && equalTypes(m.Declared, o.Declared)
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Mismatch(%d, %s <> %s)", m.LineNumber, m.Assigned, m.Declared)
}
