package adapter

import (
	"regexp"
	"slices"
	"strconv"

	"typest.dev/pkg/typest/internal/typexpr"

	m "typest.dev/pkg/typest/internal/model"
)

// MypyName identifies the mypy backend.
const MypyName = "mypy"

var (
	mypyLinePattern     = regexp.MustCompile(`\.pyi?:(\d+):`)
	mypyRevealedPattern = regexp.MustCompile(`\.pyi?:\d+:(?:\d+:)? note: Revealed type is "(.*)"`)
	mypyErrorPattern    = regexp.MustCompile(`\.pyi?:\d+:(?:\d+:)? error: (.*)`)
	mypyMismatchPattern = regexp.MustCompile(
		`error: Incompatible types in assignment \(expression has type "(.*)", variable has type "(.*)"\)`,
	)
)

// Mypy reads mypy's default output format:
//
//	case.py:10: note: Revealed type is "Union[builtins.int, builtins.float]"
//	case.py:12: error: Incompatible types in assignment (expression has type "int", variable has type "str")  [assignment]
type Mypy struct {
	executable string
	args       []string
}

// NewMypy builds a mypy backend. An empty executable defaults to "mypy".
func NewMypy(executable string, args ...string) *Mypy {
	if executable == "" {
		executable = MypyName
	}

	return &Mypy{executable: executable, args: slices.Clone(args)}
}

// Name implements Checker.
func (c *Mypy) Name() string {
	return MypyName
}

// Command implements Checker.
func (c *Mypy) Command(path m.Path) []string {
	argv := append([]string{c.executable}, c.args...)
	return append(argv, string(path))
}

// ExtractLineNumber implements Checker.
func (c *Mypy) ExtractLineNumber(line string) (int, bool) {
	return submatchInt(mypyLinePattern, line)
}

// ExtractRevealedType implements Checker.
func (c *Mypy) ExtractRevealedType(line string, lineNumber int) (m.RevealedType, bool) {
	match := mypyRevealedPattern.FindStringSubmatch(line)
	if match == nil {
		return m.RevealedType{}, false
	}

	return m.RevealedType{LineNumber: lineNumber, Type: typexpr.ParseLenient(match[1])}, true
}

// ExtractFlaw implements Checker.
func (c *Mypy) ExtractFlaw(line string, lineNumber int) (m.Flaw, bool) {
	match := mypyErrorPattern.FindStringSubmatch(line)
	if match == nil {
		return m.Flaw{}, false
	}

	return m.Flaw{LineNumber: lineNumber, Message: match[1]}, true
}

// ExtractMismatch implements Checker.
func (c *Mypy) ExtractMismatch(line string, lineNumber int) (m.Mismatch, bool) {
	match := mypyMismatchPattern.FindStringSubmatch(line)
	if match == nil {
		return m.Mismatch{}, false
	}

	return m.Mismatch{
		LineNumber: lineNumber,
		Assigned:   typexpr.ParseLenient(match[1]),
		Declared:   typexpr.ParseLenient(match[2]),
	}, true
}

func submatchInt(pattern *regexp.Regexp, line string) (int, bool) {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return n, true
}
