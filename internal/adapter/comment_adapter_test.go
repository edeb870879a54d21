package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "typest.dev/pkg/typest/internal/model"
)

func TestScanPythonComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []m.Comment
	}{
		{
			name: "trailing comments",
			src:  "c = func(12, 7)\nreveal_type(c)  # expect-type: int | float\n",
			want: []m.Comment{{Line: 2, Text: " expect-type: int | float"}},
		},
		{
			name: "full line comment and crlf",
			src:  "# fmt: off\r\nx = 1  # expect-error\r\n",
			want: []m.Comment{{Line: 1, Text: " fmt: off"}, {Line: 2, Text: " expect-error"}},
		},
		{
			name: "hash inside strings",
			src:  "a = '#not'\nb = \"also # not\"  # yes\n",
			want: []m.Comment{{Line: 2, Text: " yes"}},
		},
		{
			name: "escaped quotes",
			src:  "a = 'it\\'s # still string'  # real\n",
			want: []m.Comment{{Line: 1, Text: " real"}},
		},
		{
			name: "triple quoted strings span lines",
			src:  "doc = \"\"\"\n# inside\nstill inside\n\"\"\"\nx = 1  # after\n",
			want: []m.Comment{{Line: 5, Text: " after"}},
		},
		{
			name: "raw string with escaped quote",
			src:  "p = r'\\'#'  # c\n",
			want: []m.Comment{{Line: 1, Text: " c"}},
		},
		{
			name: "unterminated string stops at line end",
			src:  "s = 'oops\n# next\n",
			want: []m.Comment{{Line: 2, Text: " next"}},
		},
		{
			name: "comment at end of file without newline",
			src:  "x = 1 # last",
			want: []m.Comment{{Line: 1, Text: " last"}},
		},
		{
			name: "empty strings",
			src:  "a = ''  # one\nb = \"\"\"\"\"\"  # two\n",
			want: []m.Comment{{Line: 1, Text: " one"}, {Line: 2, Text: " two"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanPythonComments([]byte(tt.src)))
		})
	}
}

func TestLocalPythonCommentAdapter_ExtractComments(t *testing.T) {
	adapter := NewLocalPythonCommentAdapter()
	dir := t.TempDir()

	t.Run("python file", func(t *testing.T) {
		path := filepath.Join(dir, "case.py")
		require.NoError(t, os.WriteFile(path, []byte("x = 1  # expect-type: int\n"), 0o600))

		comments, err := adapter.ExtractComments(context.Background(), m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []m.Comment{{Line: 1, Text: " expect-type: int"}}, comments)
	})

	t.Run("non python file", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("# hello\n"), 0o600))

		_, err := adapter.ExtractComments(context.Background(), m.Path(path))
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.py")
		require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o600))

		_, err := adapter.ExtractComments(context.Background(), m.Path(path))
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ExtractComments(context.Background(), m.Path(filepath.Join(dir, "missing.py")))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.ExtractComments(ctx, m.Path(filepath.Join(dir, "case.py")))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsPythonSource(t *testing.T) {
	assert.True(t, IsPythonSource("a/b.py"))
	assert.True(t, IsPythonSource("stub.PYI"))
	assert.False(t, IsPythonSource("main.go"))
	assert.False(t, IsPythonSource("py"))
}
