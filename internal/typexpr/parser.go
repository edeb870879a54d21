// Package typexpr parses the textual type syntax printed by Python type
// checkers and written in assertion comments into comparable model types.
package typexpr

import (
	"errors"
	"fmt"
	"strings"

	m "typest.dev/pkg/typest/internal/model"
)

// ErrUnbalancedBrackets is returned when a type expression has mismatched
// square brackets.
var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

// Parse converts type text into a model type.
//
// Unrecognized text becomes m.Opaque. The only failure is unbalanced
// brackets, which is reported as ErrUnbalancedBrackets.
func Parse(text string) (m.Type, error) {
	text = strings.TrimSpace(text)

	if err := checkBrackets(text); err != nil {
		return nil, err
	}

	return parse(text), nil
}

// ParseLenient is Parse for text produced by a checker: malformed text
// degrades to m.Opaque instead of failing.
func ParseLenient(text string) m.Type {
	typ, err := Parse(text)
	if err != nil {
		return m.Opaque{Text: strings.TrimSpace(text)}
	}

	return typ
}

// ParseArgList parses a comma separated argument list, splitting only on
// commas outside nested brackets.
func ParseArgList(text string) ([]m.Type, error) {
	if err := checkBrackets(text); err != nil {
		return nil, err
	}

	return parseArgs(text), nil
}

// SplitTopLevel splits text on sep wherever sep occurs at bracket depth
// zero. Segments are trimmed.
func SplitTopLevel(text string, sep rune) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range text {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(text[start:i]))
				start = i + len(string(sep))
			}
		}
	}

	return append(parts, strings.TrimSpace(text[start:]))
}

// checkBrackets verifies that brackets balance and never close before
// they open.
func checkBrackets(text string) error {
	depth := 0

	for _, r := range text {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w in %q", ErrUnbalancedBrackets, text)
			}
		}
	}

	if depth != 0 {
		return fmt.Errorf("%w in %q", ErrUnbalancedBrackets, text)
	}

	return nil
}

// parse assumes trimmed text with balanced brackets.
func parse(text string) m.Type {
	if name, ok := m.LookupBuiltin(text); ok {
		return m.NewBuiltin(name)
	}

	if alternatives := SplitTopLevel(text, '|'); len(alternatives) > 1 {
		members := make([]m.Type, 0, len(alternatives))
		for _, alternative := range alternatives {
			members = append(members, parse(alternative))
		}

		return m.NewUnion(members...)
	}

	open := strings.IndexByte(text, '[')
	if open < 0 || !strings.HasSuffix(text, "]") {
		return m.Opaque{Text: text}
	}

	head := strings.TrimSpace(text[:open])
	interior := text[open+1 : len(text)-1]

	switch head {
	case "Optional", "typing.Optional":
		return m.NewUnion(m.NoneType(), parse(strings.TrimSpace(interior)))
	case "Union", "typing.Union":
		return m.NewUnion(parseArgs(interior)...)
	default:
		return m.NewGeneric(head, parseArgs(interior)...)
	}
}

func parseArgs(text string) []m.Type {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	segments := SplitTopLevel(text, ',')

	args := make([]m.Type, 0, len(segments))
	for _, segment := range segments {
		args = append(args, parse(segment))
	}

	return args
}
