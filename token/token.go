package token

import "fmt"

// Comment is a line comment buffered by the lexer until it can be attached
// to the next significant token (spec §3, "attached-comments").
type Comment struct {
	Lexeme string
	Offset int
}

// Token is the unit the lexer produces: a kind, the literal source slice it
// covers, the comments that preceded it, and the offset of its first
// character. Line and column are deliberately not stored here — they are
// derived from a source.SourceFile on demand (spec §4.C).
type Token struct {
	Kind     Kind
	Lexeme   string
	Comments []Comment
	Offset   int
}

// End returns the offset one past the token's last character. For STRING
// tokens this does not account for the stripped quotes; callers needing the
// original source extent should use the originating Span instead.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

// String renders t for debug output, in the same spirit as the teacher's
// Token.String (kind, truncated value, position).
func (t Token) String() string {
	lexeme := t.Lexeme
	if len(lexeme) > 40 {
		lexeme = lexeme[:37] + "..."
	}
	return fmt.Sprintf("%s(%q)@%d", t.Kind, lexeme, t.Offset)
}

// IsSignificant reports whether t is anything other than EOF. The lexer
// never emits whitespace or comment tokens (spec glossary: "significant
// token"), so this only exists to let callers express "not EOF" clearly.
func (t Token) IsSignificant() bool {
	return t.Kind != EOF
}
