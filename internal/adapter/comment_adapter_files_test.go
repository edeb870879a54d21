package adapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"typest.dev/pkg/typest/internal/adapter"
	adaptermocks "typest.dev/pkg/typest/internal/adapter/mocks"
	m "typest.dev/pkg/typest/internal/model"
)

func TestPythonCommentAdapter_ReadsThroughSourceFS(t *testing.T) {
	files := adaptermocks.NewMockSourceFSAdapter(t)
	files.EXPECT().ReadFile(mock.Anything, m.Path("pkg/case.py")).
		Return([]byte("x = 1  # expect-type: int\ny = '#'\n# expect-error\n"), nil).
		Once()

	comments, err := adapter.NewPythonCommentAdapter(files).ExtractComments(context.Background(), "pkg/case.py")
	require.NoError(t, err)
	assert.Equal(t, []m.Comment{
		{Line: 1, Text: " expect-type: int"},
		{Line: 3, Text: " expect-error"},
	}, comments)
}

func TestPythonCommentAdapter_ReadError(t *testing.T) {
	readErr := errors.New("permission denied")

	files := adaptermocks.NewMockSourceFSAdapter(t)
	files.EXPECT().ReadFile(mock.Anything, m.Path("case.py")).Return(nil, readErr).Once()

	_, err := adapter.NewPythonCommentAdapter(files).ExtractComments(context.Background(), "case.py")
	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read case.py")
}

func TestPythonCommentAdapter_BlankContentIsUnsupported(t *testing.T) {
	files := adaptermocks.NewMockSourceFSAdapter(t)
	files.EXPECT().ReadFile(mock.Anything, m.Path("blank.py")).Return([]byte("\n\n  \n"), nil).Once()

	_, err := adapter.NewPythonCommentAdapter(files).ExtractComments(context.Background(), "blank.py")
	require.ErrorIs(t, err, adapter.ErrUnsupportedSource)
}

func TestPythonCommentAdapter_NonPythonSkipsRead(t *testing.T) {
	files := adaptermocks.NewMockSourceFSAdapter(t)

	_, err := adapter.NewPythonCommentAdapter(files).ExtractComments(context.Background(), "notes.txt")
	require.ErrorIs(t, err, adapter.ErrUnsupportedSource)
}
