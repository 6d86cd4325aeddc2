// Package source implements the source manager: an immutable source file
// with offset-to-(line, column) bookkeeping, and the Span type diagnostics
// are built from (spec §3, §4.B).
package source

import (
	"fmt"
	"sort"
	"sync"
)

// RangeError reports an out-of-bounds offset, position, or span argument.
// Range errors are programming errors per spec §7: the caller violated a
// precondition, so they are returned rather than silently clamped, and
// callers that can't happen to hit one should let it propagate.
type RangeError struct {
	Op     string
	Value  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("source: %s: value %d out of range [0, %d]", e.Op, e.Value, e.Length)
}

// SourceFile is an immutable (contents, optional origin) pair. It memoizes
// a line-start table on first query; the table is never invalidated since
// contents never change after construction (spec §3).
type SourceFile struct {
	contents string
	origin   string
	hasOrigin bool

	once       sync.Once
	lineStarts []int
}

// New returns a SourceFile over contents with no origin URL.
func New(contents string) *SourceFile {
	return &SourceFile{contents: contents}
}

// NewWithOrigin returns a SourceFile over contents whose Origin is origin.
func NewWithOrigin(contents, origin string) *SourceFile {
	return &SourceFile{contents: contents, origin: origin, hasOrigin: true}
}

// Contents returns the full text of the file.
func (f *SourceFile) Contents() string {
	return f.contents
}

// Length returns the number of code units (bytes) in the file.
func (f *SourceFile) Length() int {
	return len(f.contents)
}

// Origin returns the file's origin URL, if any. ok is false for sources
// constructed with New.
func (f *SourceFile) Origin() (origin string, ok bool) {
	return f.origin, f.hasOrigin
}

// buildLineStarts performs the single left-to-right pass described in spec
// §4.B: LF terminates a line; a bare CR (not followed by LF) also
// terminates a line; CR+LF counts as one terminator at the LF. Each
// terminator pushes position+1 as the next line's start offset.
func (f *SourceFile) buildLineStarts() {
	f.once.Do(func() {
		var starts []int
		s := f.contents
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '\n':
				starts = append(starts, i+1)
			case '\r':
				if i+1 < len(s) && s[i+1] == '\n' {
					i++
				}
				starts = append(starts, i+1)
			}
		}
		f.lineStarts = starts
	})
}

// lineStartsTable exposes the memoized table, building it on first call.
func (f *SourceFile) lineStartsTable() []int {
	f.buildLineStarts()
	return f.lineStarts
}

// Span returns the span of contents[start:end]. It fails with a *RangeError
// if either endpoint is negative, exceeds Length, or end < start.
func (f *SourceFile) Span(start, end int) (*FileSpan, error) {
	if start < 0 || start > len(f.contents) {
		return nil, &RangeError{Op: "Span start", Value: start, Length: len(f.contents)}
	}
	if end < 0 || end > len(f.contents) {
		return nil, &RangeError{Op: "Span end", Value: end, Length: len(f.contents)}
	}
	if end < start {
		return nil, &RangeError{Op: "Span end<start", Value: end, Length: len(f.contents)}
	}
	return &FileSpan{file: f, offset: start, text: f.contents[start:end]}, nil
}

// ComputeLine returns the zero-based line number containing offset: the
// count of stored line starts at or before offset, so 0 for any offset on
// the first line, which has no entry of its own per spec §4.B. Fails with
// *RangeError if offset is outside [0, Length].
func (f *SourceFile) ComputeLine(offset int) (int, error) {
	if offset < 0 || offset > len(f.contents) {
		return 0, &RangeError{Op: "ComputeLine", Value: offset, Length: len(f.contents)}
	}
	starts := f.lineStartsTable()
	// Index of the first line-start entry strictly greater than offset;
	// the number of entries at-or-before offset is the line index.
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	return idx, nil
}

// ComputeColumn returns the number of code units between offset and the
// start of its line. For the first line, column equals offset. Fails with
// *RangeError if offset is outside [0, Length].
func (f *SourceFile) ComputeColumn(offset int) (int, error) {
	line, err := f.ComputeLine(offset)
	if err != nil {
		return 0, err
	}
	if line == 0 {
		return offset, nil
	}
	starts := f.lineStartsTable()
	return offset - starts[line-1], nil
}
