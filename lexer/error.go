package lexer

import (
	"fmt"

	"github.com/lukeod/fen/source"
)

// LexError is a lexical error: an unexpected character or an unterminated
// string. Lexical errors are non-fatal by the contract of onError (spec
// §7); the default reporter happens to raise by panicking with *LexError,
// which Tokenize recovers and surfaces as a normal Go error.
type LexError struct {
	Span    *source.FileSpan
	Message string
}

func (e *LexError) Error() string {
	line, lerr := e.Span.Line()
	column, cerr := e.Span.Column()
	if lerr != nil || cerr != nil {
		return fmt.Sprintf("%s %q", e.Message, e.Span.Text())
	}
	return fmt.Sprintf("%s %q at %d:%d", e.Message, e.Span.Text(), line+1, column+1)
}

// ErrorReporter receives a one-character span and a message for every
// lexical error encountered. It may raise (panic) to abort tokenization or
// return normally to let the lexer continue (spec §4.E, §7).
type ErrorReporter func(span *source.FileSpan, message string)

// raisingReporter is the default reporter: it panics with *LexError,
// rendering the spec §7 message format `<message> "<span.text>" at
// <line>:<column>`.
func raisingReporter(span *source.FileSpan, message string) {
	panic(&LexError{Span: span, Message: message})
}
