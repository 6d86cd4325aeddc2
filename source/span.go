package source

import (
	"strings"

	participleLexer "github.com/alecthomas/participle/v2/lexer"
)

// Span is a contiguous slice of source text with derived (line, column)
// (spec §4.C). StringSpan and FileSpan are the two concrete flavors; both
// satisfy this interface so diagnostics code can treat them uniformly.
type Span interface {
	Offset() int
	Text() string
	Length() int
	Line() (int, error)
	Column() (int, error)
	IsMultiLine() bool
	// Lines returns (line, text) pairs for each line the span covers.
	// Precondition: callers should check IsMultiLine first (spec §4.C);
	// both implementations remain correct for single-line spans regardless.
	Lines() ([]LineText, error)
}

// LineText pairs a line number with its text. The span's first line
// carries the span's own line number; each following line adds one.
type LineText struct {
	Line int
	Text string
}

func isMultiLine(text string) bool {
	return strings.ContainsAny(text, "\n\r")
}

func computeMultiLines(startLine int, text string) []LineText {
	var out []LineText
	line := startLine
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			out = append(out, LineText{Line: line, Text: text[start:i]})
			line++
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			out = append(out, LineText{Line: line, Text: text[start:i]})
			line++
			start = i + 1
		}
	}
	out = append(out, LineText{Line: line, Text: text[start:]})
	return out
}

// StringSpan owns its text literally; offset, line, column, and text are
// all precomputed at construction (spec §4.C).
type StringSpan struct {
	offset int
	line   int
	column int
	text   string
}

// NewStringSpan builds a StringSpan anchored at (line, column, offset) in
// some notional document that the caller already knows the position of
// (e.g. synthetic source, REPL input).
func NewStringSpan(offset, line, column int, text string) *StringSpan {
	return &StringSpan{offset: offset, line: line, column: column, text: text}
}

func (s *StringSpan) Offset() int            { return s.offset }
func (s *StringSpan) Text() string           { return s.text }
func (s *StringSpan) Length() int            { return len(s.text) }
func (s *StringSpan) Line() (int, error)     { return s.line, nil }
func (s *StringSpan) Column() (int, error)   { return s.column, nil }
func (s *StringSpan) IsMultiLine() bool      { return isMultiLine(s.text) }
func (s *StringSpan) Lines() ([]LineText, error) {
	return computeMultiLines(s.line, s.text), nil
}

// FileSpan owns a reference to a SourceFile and an offset; line and column
// are computed lazily via the file, and text is stored to avoid re-slicing
// (spec §4.C).
type FileSpan struct {
	file   *SourceFile
	offset int
	text   string
}

func (s *FileSpan) Offset() int  { return s.offset }
func (s *FileSpan) Text() string { return s.text }
func (s *FileSpan) Length() int  { return len(s.text) }

func (s *FileSpan) Line() (int, error) {
	return s.file.ComputeLine(s.offset)
}

func (s *FileSpan) Column() (int, error) {
	return s.file.ComputeColumn(s.offset)
}

func (s *FileSpan) IsMultiLine() bool {
	return isMultiLine(s.text)
}

func (s *FileSpan) Lines() ([]LineText, error) {
	line, err := s.Line()
	if err != nil {
		return nil, err
	}
	return computeMultiLines(line, s.text), nil
}

// Position renders s as a participle lexer.Position, the pack's ready-made
// (filename, offset, line, column) tuple, for callers that want to hand a
// span off to participle-aware tooling or print it the way the teacher's
// AST nodes do (every node there carries a lexer.Position).
func (s *FileSpan) Position() (participleLexer.Position, error) {
	line, err := s.Line()
	if err != nil {
		return participleLexer.Position{}, err
	}
	column, err := s.Column()
	if err != nil {
		return participleLexer.Position{}, err
	}
	filename, _ := s.file.Origin()
	return participleLexer.Position{
		Filename: filename,
		Offset:   s.offset,
		Line:     line + 1,
		Column:   column + 1,
	}, nil
}
