package lexer

import (
	"fmt"
	"io"
	"sync"

	participleLexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/fen/source"
	"github.com/lukeod/fen/token"
)

// ParticipleDefinition adapts this package's Lexer to participle/v2's
// lexer.Definition interface, exactly the role the teacher's
// LexerDefinition played in parser/lexer/lexer.go: tokens produced by a
// hand-rolled lexer handed off to a participle-based grammar. Spec §1
// puts the grammar itself out of scope; this is the contract boundary
// spec §6 describes as "handed off to the parser," made concrete.
type ParticipleDefinition struct{}

// Lex implements lexer.Definition.
func (d *ParticipleDefinition) Lex(filename string, r io.Reader) (participleLexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lexer: read %s: %w", filename, err)
	}
	return d.LexString(filename, string(data))
}

// LexString implements lexer.Definition.
func (d *ParticipleDefinition) LexString(filename string, input string) (participleLexer.Lexer, error) {
	file := source.NewWithOrigin(input, filename)
	tokens, err := Tokenize(file, nil)
	if err != nil {
		return nil, err
	}
	return &tokenStream{file: file, tokens: tokens}, nil
}

// LexBytes implements lexer.Definition.
func (d *ParticipleDefinition) LexBytes(filename string, input []byte) (participleLexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

var (
	symbolsOnce   sync.Once
	cachedSymbols map[string]participleLexer.TokenType
)

// Symbols implements lexer.Definition, caching the result like the
// teacher's LexerDefinition.Symbols does.
func (d *ParticipleDefinition) Symbols() map[string]participleLexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = make(map[string]participleLexer.TokenType)
		for name, k := range token.Symbols() {
			cachedSymbols[name] = participleLexer.TokenType(k)
		}
	})
	return cachedSymbols
}

// tokenStream implements participle/v2's lexer.Lexer over a slice of
// already-scanned Tokens.
type tokenStream struct {
	file   *source.SourceFile
	tokens []token.Token
	pos    int
}

// Next implements lexer.Lexer.
func (s *tokenStream) Next() (participleLexer.Token, error) {
	if s.pos >= len(s.tokens) {
		return participleLexer.Token{Type: participleLexer.EOF}, nil
	}
	t := s.tokens[s.pos]
	s.pos++

	pt := participleLexer.Token{
		Type:  participleLexer.TokenType(t.Kind),
		Value: t.Lexeme,
		Pos:   participleLexer.Position{Offset: t.Offset},
	}
	if t.Kind == token.EOF {
		pt.Type = participleLexer.EOF
	}

	if span, err := s.file.Span(t.Offset, t.Offset+len(t.Lexeme)); err == nil {
		if pos, err := span.Position(); err == nil {
			pt.Pos = pos
		}
	}
	return pt, nil
}
