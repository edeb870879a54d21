package adapter

import (
	"regexp"
	"slices"

	"typest.dev/pkg/typest/internal/typexpr"

	m "typest.dev/pkg/typest/internal/model"
)

// PyrightName identifies the pyright backend.
const PyrightName = "pyright"

var (
	pyrightLinePattern     = regexp.MustCompile(`\.pyi?:(\d+):\d+ - `)
	pyrightRevealedPattern = regexp.MustCompile(`\.pyi?:\d+:\d+ - information: Type of ".*?" is "(.*)"`)
	pyrightErrorPattern    = regexp.MustCompile(`\.pyi?:\d+:\d+ - error: (.*)`)
	pyrightMismatchPattern = regexp.MustCompile(
		` - error: (?:Expression of type|Type) "(.*)" (?:cannot be assigned to|is not assignable to) declared type "(.*)"`,
	)
	pyrightRuleSuffix = regexp.MustCompile(`\s+\(report\w+\)\s*$`)
)

// Pyright reads pyright's CLI output format:
//
//	/abs/case.py:10:13 - information: Type of "c" is "int | float"
//	/abs/case.py:12:10 - error: Expression of type "int" cannot be assigned to declared type "str"
type Pyright struct {
	executable string
	args       []string
}

// NewPyright builds a pyright backend. An empty executable defaults to "pyright".
func NewPyright(executable string, args ...string) *Pyright {
	if executable == "" {
		executable = PyrightName
	}

	return &Pyright{executable: executable, args: slices.Clone(args)}
}

// Name implements Checker.
func (c *Pyright) Name() string {
	return PyrightName
}

// Command implements Checker.
func (c *Pyright) Command(path m.Path) []string {
	argv := append([]string{c.executable}, c.args...)
	return append(argv, string(path))
}

// ExtractLineNumber implements Checker.
func (c *Pyright) ExtractLineNumber(line string) (int, bool) {
	return submatchInt(pyrightLinePattern, line)
}

// ExtractRevealedType implements Checker.
func (c *Pyright) ExtractRevealedType(line string, lineNumber int) (m.RevealedType, bool) {
	match := pyrightRevealedPattern.FindStringSubmatch(stripRuleSuffix(line))
	if match == nil {
		return m.RevealedType{}, false
	}

	return m.RevealedType{LineNumber: lineNumber, Type: typexpr.ParseLenient(match[1])}, true
}

// ExtractFlaw implements Checker.
func (c *Pyright) ExtractFlaw(line string, lineNumber int) (m.Flaw, bool) {
	match := pyrightErrorPattern.FindStringSubmatch(line)
	if match == nil {
		return m.Flaw{}, false
	}

	return m.Flaw{LineNumber: lineNumber, Message: match[1]}, true
}

// ExtractMismatch implements Checker. Pyright names the expression type
// first and the declared type second.
func (c *Pyright) ExtractMismatch(line string, lineNumber int) (m.Mismatch, bool) {
	match := pyrightMismatchPattern.FindStringSubmatch(stripRuleSuffix(line))
	if match == nil {
		return m.Mismatch{}, false
	}

	return m.Mismatch{
		LineNumber: lineNumber,
		Assigned:   typexpr.ParseLenient(match[1]),
		Declared:   typexpr.ParseLenient(match[2]),
	}, true
}

func stripRuleSuffix(line string) string {
	return pyrightRuleSuffix.ReplaceAllString(line, "")
}
