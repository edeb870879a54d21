package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typest.dev/pkg/typest/internal/model"
)

func revealed(line int, t m.Type) m.RevealedType {
	return m.RevealedType{LineNumber: line, Type: t}
}

func TestReconcile(t *testing.T) {
	intType := m.NewBuiltin("int")
	strType := m.NewBuiltin("str")

	tests := []struct {
		name      string
		expected  []m.Outcome
		actual    []m.Outcome
		passed    []bool
		wantFound []m.Outcome
	}{
		{
			name:      "exact match",
			expected:  []m.Outcome{revealed(2, intType)},
			actual:    []m.Outcome{revealed(2, intType)},
			passed:    []bool{true},
			wantFound: []m.Outcome{revealed(2, intType)},
		},
		{
			name:      "missing actual",
			expected:  []m.Outcome{revealed(2, intType)},
			actual:    []m.Outcome{revealed(3, intType)},
			passed:    []bool{false},
			wantFound: []m.Outcome{nil},
		},
		{
			name:      "later equal candidate on the same line wins",
			expected:  []m.Outcome{revealed(2, intType)},
			actual:    []m.Outcome{revealed(2, strType), revealed(2, intType)},
			passed:    []bool{true},
			wantFound: []m.Outcome{revealed(2, intType)},
		},
		{
			name:      "found prefers the same kind",
			expected:  []m.Outcome{revealed(2, intType)},
			actual:    []m.Outcome{m.Flaw{LineNumber: 2}, revealed(2, strType)},
			passed:    []bool{false},
			wantFound: []m.Outcome{revealed(2, strType)},
		},
		{
			name:      "found falls back to first candidate",
			expected:  []m.Outcome{m.Mismatch{LineNumber: 4, Assigned: intType, Declared: strType}},
			actual:    []m.Outcome{m.Flaw{LineNumber: 4}},
			passed:    []bool{false},
			wantFound: []m.Outcome{m.Flaw{LineNumber: 4}},
		},
		{
			name:      "flaw ignores message",
			expected:  []m.Outcome{m.Flaw{LineNumber: 5, Message: "anything"}},
			actual:    []m.Outcome{m.Flaw{LineNumber: 5, Message: "Argument 1 has incompatible type"}},
			passed:    []bool{true},
			wantFound: []m.Outcome{m.Flaw{LineNumber: 5, Message: "Argument 1 has incompatible type"}},
		},
		{
			name:      "flaw is not satisfied by a revealed type",
			expected:  []m.Outcome{m.Flaw{LineNumber: 5}},
			actual:    []m.Outcome{revealed(5, intType)},
			passed:    []bool{false},
			wantFound: []m.Outcome{revealed(5, intType)},
		},
		{
			name:     "expectations keep their order",
			expected: []m.Outcome{revealed(9, intType), revealed(1, strType)},
			actual:   []m.Outcome{revealed(1, strType)},
			passed:   []bool{false, true},
			wantFound: []m.Outcome{
				nil,
				revealed(1, strType),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts := Reconcile(tt.expected, tt.actual)
			require.Len(t, verdicts, len(tt.expected))

			for i, verdict := range verdicts {
				assert.True(t, tt.expected[i].Equal(verdict.Expected))
				assert.Equal(t, tt.passed[i], verdict.Passed, "verdict %d", i)

				if tt.wantFound[i] == nil {
					assert.Nil(t, verdict.Found, "verdict %d", i)
				} else {
					require.NotNil(t, verdict.Found, "verdict %d", i)
					assert.True(t, tt.wantFound[i].Equal(verdict.Found), "verdict %d found %s", i, verdict.Found)
				}
			}
		})
	}
}

func TestReconcile_MismatchRolesAreNotInterchangeable(t *testing.T) {
	expected := []m.Outcome{m.Mismatch{LineNumber: 3, Assigned: m.NewBuiltin("int"), Declared: m.NewBuiltin("str")}}
	actual := []m.Outcome{m.Mismatch{LineNumber: 3, Assigned: m.NewBuiltin("str"), Declared: m.NewBuiltin("int")}}

	discrepancies := Discrepancies("case.py", expected, actual)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, m.Path("case.py"), discrepancies[0].Path)
	assert.Equal(t, 3, discrepancies[0].Line())
	assert.True(t, actual[0].Equal(discrepancies[0].Found))
}

func TestDiscrepancies_Empty(t *testing.T) {
	expected := []m.Outcome{m.Flaw{LineNumber: 1}}
	actual := []m.Outcome{m.Flaw{LineNumber: 1}}

	assert.Empty(t, Discrepancies("ok.py", expected, actual))
}
