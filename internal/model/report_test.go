package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReport_Discrepancies(t *testing.T) {
	missing := Flaw{LineNumber: 4}
	wrong := RevealedType{LineNumber: 9, Type: NewBuiltin("int")}
	found := RevealedType{LineNumber: 9, Type: NewBuiltin("str")}

	report := FileReport{
		Source: Source{Origin: &File{FullPath: "/abs/case.py", ShortPath: "case.py"}},
		Verdicts: []Verdict{
			{Expected: Flaw{LineNumber: 1}, Found: Flaw{LineNumber: 1}, Passed: true},
			{Expected: missing},
			{Expected: wrong, Found: found},
		},
	}

	discrepancies := report.Discrepancies()
	require.Len(t, discrepancies, 2)
	assert.Equal(t, Path("case.py"), discrepancies[0].Path)
	assert.Equal(t, 4, discrepancies[0].Line())
	assert.Nil(t, discrepancies[0].Found)
	assert.Equal(t, found, discrepancies[1].Found)
}

func TestFileStatus_Successful(t *testing.T) {
	assert.True(t, Passed.Successful())
	assert.True(t, NoAssertions.Successful())
	assert.True(t, Unsupported.Successful())
	assert.False(t, Failed.Successful())
	assert.False(t, Error.Successful())
}

func TestRunReport_Successful(t *testing.T) {
	assert.True(t, RunReport{}.Successful())
	assert.True(t, RunReport{Files: []FileReport{{Status: Passed}, {Status: NoAssertions}}}.Successful())
	assert.False(t, RunReport{Files: []FileReport{{Status: Passed}, {Status: Failed}}}.Successful())
}

func TestParseFileStatus(t *testing.T) {
	for _, status := range []FileStatus{Passed, Failed, NoAssertions, Unsupported, Error} {
		got, err := ParseFileStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := ParseFileStatus("bogus")
	assert.Error(t, err)
}
