// Package lexer implements the forward-cursor Scanner and the Lexer built
// on top of it (spec §4.D, §4.E).
package lexer

import "github.com/lukeod/fen/source"

const sentinel rune = -1

// Scanner is a forward cursor over a source file's contents. It is the
// offset-only primitive spec §4.D describes: peek/advance/match, nothing
// else. Line and column are never tracked here — that bookkeeping belongs
// to source.SourceFile, which can answer it for any offset in O(log n)
// instead of only for the cursor's current position.
//
// Grounded on the teacher's next/peek/backup/acceptRun, simplified: the
// teacher's backup() has a documented bug restoring column across a
// newline ("Simplified: reset column"); dropping column-tracking from the
// scanner removes the whole bug class.
type Scanner struct {
	file     *source.SourceFile
	contents string
	position int
}

// NewScanner returns a Scanner positioned at the start of file.
func NewScanner(file *source.SourceFile) *Scanner {
	return &Scanner{file: file, contents: file.Contents(), position: 0}
}

// File returns the source file the scanner is reading.
func (s *Scanner) File() *source.SourceFile {
	return s.file
}

// Position returns the scanner's current offset.
func (s *Scanner) Position() int {
	return s.position
}

// SetPosition moves the cursor to pos. Fails with *source.RangeError if pos
// is outside [0, length].
func (s *Scanner) SetPosition(pos int) error {
	if pos < 0 || pos > len(s.contents) {
		return &source.RangeError{Op: "Scanner.SetPosition", Value: pos, Length: len(s.contents)}
	}
	s.position = pos
	return nil
}

// Reset sets the cursor back to offset 0.
func (s *Scanner) Reset() {
	s.position = 0
}

// HasNext reports whether there is at least one more code unit to read.
func (s *Scanner) HasNext() bool {
	return s.position < len(s.contents)
}

// Peek returns the code unit at position+k without consuming it. Out of
// range yields a sentinel for which every classifier predicate in package
// token returns false.
func (s *Scanner) Peek(k int) rune {
	i := s.position + k
	if i < 0 || i >= len(s.contents) {
		return sentinel
	}
	return rune(s.contents[i])
}

// Advance returns the code unit at the current position, then moves past
// it. Calling Advance when !HasNext() returns the sentinel and does not
// move the cursor.
func (s *Scanner) Advance() rune {
	if !s.HasNext() {
		return sentinel
	}
	c := rune(s.contents[s.position])
	s.position++
	return c
}

// MatchChar advances and returns true if the next code unit is c.
func (s *Scanner) MatchChar(c rune) bool {
	if s.Peek(0) != c {
		return false
	}
	s.position++
	return true
}

// MatchStr advances past lit and returns true if contents starts with lit
// at the current position.
func (s *Scanner) MatchStr(lit string) bool {
	if len(lit) == 0 {
		return true
	}
	end := s.position + len(lit)
	if end > len(s.contents) {
		return false
	}
	if s.contents[s.position:end] != lit {
		return false
	}
	s.position = end
	return true
}

// MatchPred advances and returns true if pred holds for the next code unit.
func (s *Scanner) MatchPred(pred func(rune) bool) bool {
	if !pred(s.Peek(0)) {
		return false
	}
	s.position++
	return true
}

// Substring returns contents[start:end]. A negative start (e.g. -1)
// means the current position and a negative end means length.
func (s *Scanner) Substring(start, end int) string {
	if start < 0 {
		start = s.position
	}
	if end < 0 {
		end = len(s.contents)
	}
	return s.contents[start:end]
}
