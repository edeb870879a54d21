package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "typest.dev/pkg/typest/internal/model"
)

// ErrUnsupportedSource reports a file whose comments cannot be scanned:
// it is not Python source, or it is empty.
var ErrUnsupportedSource = errors.New("file format not supported or file empty")

// pythonExtensions lists the source extensions scanned for assertions.
var pythonExtensions = map[string]struct{}{
	".py":  {},
	".pyi": {},
}

// CommentAdapter extracts comments from source files.
type CommentAdapter interface {
	// ExtractComments returns the comments of the file in source order.
	ExtractComments(ctx context.Context, path m.Path) ([]m.Comment, error)
}

// LocalPythonCommentAdapter scans Python files read through a SourceFSAdapter.
type LocalPythonCommentAdapter struct {
	files SourceFSAdapter
}

// NewLocalPythonCommentAdapter constructs a LocalPythonCommentAdapter that
// reads from disk.
func NewLocalPythonCommentAdapter() *LocalPythonCommentAdapter {
	return NewPythonCommentAdapter(NewLocalSourceFSAdapter())
}

// NewPythonCommentAdapter constructs a LocalPythonCommentAdapter over files.
func NewPythonCommentAdapter(files SourceFSAdapter) *LocalPythonCommentAdapter {
	return &LocalPythonCommentAdapter{files: files}
}

// IsPythonSource reports whether path has a Python source extension.
func IsPythonSource(path m.Path) bool {
	_, ok := pythonExtensions[strings.ToLower(filepath.Ext(string(path)))]
	return ok
}

// ExtractComments implements CommentAdapter.
func (a *LocalPythonCommentAdapter) ExtractComments(ctx context.Context, path m.Path) ([]m.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !IsPythonSource(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	content, err := a.files.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	return ScanPythonComments(content), nil
}

// ScanPythonComments returns the "#" comments of Python source, skipping
// "#" characters inside string literals. Comment text excludes the "#".
func ScanPythonComments(src []byte) []m.Comment {
	var comments []m.Comment

	line := 1

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\n':
			line++
		case '#':
			end := bytes.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}

			text := strings.TrimRight(string(src[i+1:i+end]), "\r")
			comments = append(comments, m.Comment{Line: line, Text: text})
			i += end - 1
		case '\'', '"':
			var skipped int
			i, skipped = skipString(src, i)
			line += skipped
		}
	}

	return comments
}

// skipString returns the index of the last byte of the literal opening at
// start and the number of newlines it spans. Unterminated single-quoted
// literals end at the line break. A backslash always escapes the next byte,
// which also holds for raw literals as far as tokenizing is concerned.
func skipString(src []byte, start int) (int, int) {
	quote := src[start]
	triple := start+2 < len(src) && src[start+1] == quote && src[start+2] == quote

	i := start + 1
	if triple {
		i = start + 3
	}

	newlines := 0

	for ; i < len(src); i++ {
		c := src[i]

		switch {
		case c == '\\' && i+1 < len(src):
			if src[i+1] == '\n' {
				newlines++
			}

			i++
		case c == '\n':
			if !triple {
				return i - 1, newlines
			}

			newlines++
		case c == quote:
			if !triple {
				return i, newlines
			}

			if i+2 < len(src) && src[i+1] == quote && src[i+2] == quote {
				return i + 2, newlines
			}
		}
	}

	return len(src) - 1, newlines
}
