// Package model defines the data structures for type assertion testing.
package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a Python file that may carry assertion comments.
type Source struct {
	Origin *File
}

// Comment is one comment extracted from a source file. Text excludes the
// leading comment marker.
type Comment struct {
	Line int
	Text string
}
