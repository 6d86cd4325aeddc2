// Package testutil holds helpers for table-driven tests over lexer token
// streams.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukeod/fen/lexer"
	"github.com/lukeod/fen/token"
)

// MustTokenize lexes src and fails the test immediately if tokenization
// reports an error, mirroring mustParseSnippet's "stop on first problem"
// contract for callers that only care about the happy path.
func MustTokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := lexer.TokenizeString(src, nil)
	require.NoError(t, err, "MustTokenize failed unexpectedly for input:\n%s", src)
	return tokens
}

// Kinds extracts the Kind of each token, for compact comparison against a
// []token.Kind literal in table-driven tests.
func Kinds(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

// FindByKind returns the first token of the given kind. It fails the test
// via require.FailNow if none is found, so callers can use the result
// without a second nil/ok check.
func FindByKind(t *testing.T, tokens []token.Token, kind token.Kind) token.Token {
	t.Helper()
	for _, tok := range tokens {
		if tok.Kind == kind {
			return tok
		}
	}
	require.FailNowf(t, "token not found", "no token of kind %s in %v", kind, tokens)
	return token.Token{}
}
