package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typest.dev/pkg/typest/internal/model"
)

func TestMypy_Command(t *testing.T) {
	assert.Equal(t, []string{"mypy", "tests/case.py"}, NewMypy("").Command("tests/case.py"))
	assert.Equal(t, []string{"/venv/bin/mypy", "--strict", "case.py"}, NewMypy("/venv/bin/mypy", "--strict").Command("case.py"))
}

func TestMypy_Extractors(t *testing.T) {
	checker := NewMypy("")

	t.Run("line number", func(t *testing.T) {
		n, ok := checker.ExtractLineNumber("tests/case.py:10: note: Revealed type is \"builtins.int\"")
		require.True(t, ok)
		assert.Equal(t, 10, n)

		n, ok = checker.ExtractLineNumber("stubs/mod.pyi:4:7: error: oops")
		require.True(t, ok)
		assert.Equal(t, 4, n)

		_, ok = checker.ExtractLineNumber("Found 1 error in 1 file (checked 1 source file)")
		assert.False(t, ok)
	})

	t.Run("revealed type", func(t *testing.T) {
		got, ok := checker.ExtractRevealedType(`tests/case.py:10: note: Revealed type is "Union[builtins.int, builtins.float]"`, 10)
		require.True(t, ok)
		assert.True(t, got.Equal(m.RevealedType{LineNumber: 10, Type: m.NewUnion(m.NewBuiltin("float"), m.NewBuiltin("int"))}))

		got, ok = checker.ExtractRevealedType(`tests/case.py:10:5: note: Revealed type is "builtins.str"`, 10)
		require.True(t, ok)
		assert.True(t, m.NewBuiltin("str").Equal(got.Type))

		_, ok = checker.ExtractRevealedType(`tests/case.py:10: error: Name "x" is not defined  [name-defined]`, 10)
		assert.False(t, ok)
	})

	t.Run("malformed revealed type degrades to opaque", func(t *testing.T) {
		got, ok := checker.ExtractRevealedType(`tests/case.py:2: note: Revealed type is "list[int"`, 2)
		require.True(t, ok)
		assert.Equal(t, m.Opaque{Text: "list[int"}, got.Type)
	})

	t.Run("flaw", func(t *testing.T) {
		got, ok := checker.ExtractFlaw(`tests/case.py:13: error: Unsupported operand types  [operator]`, 13)
		require.True(t, ok)
		assert.Equal(t, 13, got.Line())
		assert.Equal(t, "Unsupported operand types  [operator]", got.Message)

		_, ok = checker.ExtractFlaw(`tests/case.py:13: note: Revealed type is "builtins.int"`, 13)
		assert.False(t, ok)
	})

	t.Run("mismatch", func(t *testing.T) {
		line := `tests/case.py:14: error: Incompatible types in assignment (expression has type "Union[int, float]", variable has type "str")  [assignment]`

		got, ok := checker.ExtractMismatch(line, 14)
		require.True(t, ok)
		assert.True(t, got.Equal(m.Mismatch{
			LineNumber: 14,
			Assigned:   m.NewUnion(m.NewBuiltin("int"), m.NewBuiltin("float")),
			Declared:   m.NewBuiltin("str"),
		}))

		_, ok = checker.ExtractMismatch(`tests/case.py:14: error: Name "x" is not defined`, 14)
		assert.False(t, ok)
	})
}

func TestPyright_Extractors(t *testing.T) {
	checker := NewPyright("")

	t.Run("line number", func(t *testing.T) {
		n, ok := checker.ExtractLineNumber(`  /work/tests/case.py:10:13 - information: Type of "c" is "int | float"`)
		require.True(t, ok)
		assert.Equal(t, 10, n)

		_, ok = checker.ExtractLineNumber("0 errors, 0 warnings, 1 informations")
		assert.False(t, ok)
	})

	t.Run("revealed type", func(t *testing.T) {
		got, ok := checker.ExtractRevealedType(`  /work/tests/case.py:10:13 - information: Type of "c" is "int | float"`, 10)
		require.True(t, ok)
		assert.True(t, m.NewUnion(m.NewBuiltin("int"), m.NewBuiltin("float")).Equal(got.Type))
	})

	t.Run("flaw", func(t *testing.T) {
		got, ok := checker.ExtractFlaw(`  /work/tests/case.py:13:10 - error: Operator "+" not supported (reportOperatorIssue)`, 13)
		require.True(t, ok)
		assert.Equal(t, 13, got.Line())

		_, ok = checker.ExtractFlaw(`  /work/tests/case.py:13:10 - warning: Import could not be resolved`, 13)
		assert.False(t, ok)
	})

	t.Run("mismatch older phrasing", func(t *testing.T) {
		line := `  /work/tests/case.py:14:10 - error: Expression of type "int | float" cannot be assigned to declared type "str"`

		got, ok := checker.ExtractMismatch(line, 14)
		require.True(t, ok)
		assert.True(t, m.NewUnion(m.NewBuiltin("int"), m.NewBuiltin("float")).Equal(got.Assigned))
		assert.True(t, m.NewBuiltin("str").Equal(got.Declared))
	})

	t.Run("mismatch newer phrasing with rule suffix", func(t *testing.T) {
		line := `  /work/tests/case.py:14:10 - error: Type "int" is not assignable to declared type "str" (reportAssignmentType)`

		got, ok := checker.ExtractMismatch(line, 14)
		require.True(t, ok)
		assert.True(t, m.NewBuiltin("int").Equal(got.Assigned))
		assert.True(t, m.NewBuiltin("str").Equal(got.Declared))
	})
}

func TestExtractOutcomes(t *testing.T) {
	output := "tests/case.py:10: note: Revealed type is \"Union[builtins.int, builtins.float]\"\n" +
		"tests/case.py:13: error: Incompatible types in assignment (expression has type \"int\", variable has type \"str\")  [assignment]\r\n" +
		"Found 1 error in 1 file (checked 1 source file)\n"

	outcomes := ExtractOutcomes(NewMypy(""), output)
	require.Len(t, outcomes, 3)

	assert.Equal(t, m.KindRevealedType, outcomes[0].Kind())
	assert.Equal(t, 10, outcomes[0].Line())
	assert.Equal(t, m.KindFlaw, outcomes[1].Kind())
	assert.Equal(t, 13, outcomes[1].Line())
	assert.Equal(t, m.KindMismatch, outcomes[2].Kind())
	assert.Equal(t, 13, outcomes[2].Line())
}

func TestCheckerRegistry(t *testing.T) {
	registry := NewCheckerRegistry(NewMypy(""), NewPyright(""))

	assert.Equal(t, []string{MypyName, PyrightName}, registry.Names())

	checker, ok := registry.Get(PyrightName)
	require.True(t, ok)
	assert.Equal(t, PyrightName, checker.Name())

	all, err := registry.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := registry.Select([]string{" pyright ", "pyright"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, PyrightName, one[0].Name())

	_, err = registry.Select([]string{"pytype"})
	assert.ErrorContains(t, err, "unknown checker")

	_, err = registry.Select([]string{""})
	assert.Error(t, err)
}
