package lexer

import (
	"strings"

	"github.com/lukeod/fen/source"
	"github.com/lukeod/fen/token"
)

// Lexer consumes a Scanner and produces a Token stream terminated by a
// synthetic EOF (spec §4.E). Grounded on the teacher's Next()-dispatch
// lexer in parser/lexer/lexer.go, retargeted at this spec's token set and
// given a real error-reporter contract (the teacher's recordError is a
// fmt.Printf stub).
type Lexer struct {
	program *Scanner
	file    *source.SourceFile
	onError ErrorReporter

	// position is the lexeme anchor: the scanner's position at the start
	// of the token currently being built. Distinct from program.Position(),
	// the live cursor.
	position int

	lastComments []token.Comment
	tokens       []token.Token
}

func newLexer(file *source.SourceFile, onError ErrorReporter) *Lexer {
	if onError == nil {
		onError = raisingReporter
	}
	return &Lexer{
		program: NewScanner(file),
		file:    file,
		onError: onError,
	}
}

// Tokenize runs the lexer over file and returns the resulting token
// sequence, terminated by EOF. If onError is nil, the default reporter is
// used, which raises (via panic, recovered here) on the first lexical
// error; Tokenize then returns the tokens produced so far along with that
// error. A custom onError that returns normally instead of panicking lets
// tokenization continue to completion despite errors.
func Tokenize(file *source.SourceFile, onError ErrorReporter) (tokens []token.Token, err error) {
	l := newLexer(file, onError)
	defer func() {
		if r := recover(); r != nil {
			le, ok := r.(*LexError)
			if !ok {
				panic(r)
			}
			tokens = l.tokens
			err = le
		}
	}()
	tokens = l.run()
	return tokens, nil
}

// TokenizeString is the convenience entry point matching spec §6's
// `tokenize(program: string, onError?)` signature; it wraps program in a
// fresh source.SourceFile with no origin.
func TokenizeString(program string, onError ErrorReporter) ([]token.Token, error) {
	return Tokenize(source.New(program), onError)
}

func (l *Lexer) run() []token.Token {
	for l.program.HasNext() {
		tok, ok := l.scanToken()
		if ok {
			l.tokens = append(l.tokens, tok)
		}
	}
	l.tokens = append(l.tokens, token.Token{
		Kind:   token.EOF,
		Offset: l.program.Position(),
	})
	return l.tokens
}

// scanToken reads one code unit and dispatches on it, returning (token,
// true) when a significant token was produced, or (zero, false) for
// whitespace, comments, and reported errors.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.program.Advance()

	switch {
	case c == '(':
		return l.createToken(token.LEFT_PAREN, nil), true
	case c == ')':
		return l.createToken(token.RIGHT_PAREN, nil), true
	case c == '{':
		return l.createToken(token.LEFT_CURLY, nil), true
	case c == '}':
		return l.createToken(token.RIGHT_CURLY, nil), true
	case c == '.':
		return l.createToken(token.PERIOD, nil), true

	case c == '+':
		switch {
		case l.program.MatchChar('='):
			return l.createToken(token.PLUS_BY, nil), true
		case l.program.MatchChar('+'):
			return l.createToken(token.INCREMENT, nil), true
		default:
			return l.createToken(token.PLUS, nil), true
		}
	case c == '-':
		switch {
		case l.program.MatchChar('>'):
			return l.createToken(token.ARROW, nil), true
		case l.program.MatchChar('='):
			return l.createToken(token.MINUS_BY, nil), true
		case l.program.MatchChar('-'):
			return l.createToken(token.DECREMENT, nil), true
		default:
			return l.createToken(token.MINUS, nil), true
		}
	case c == '*':
		if l.program.MatchChar('=') {
			return l.createToken(token.STAR_BY, nil), true
		}
		return l.createToken(token.STAR, nil), true
	case c == '%':
		if l.program.MatchChar('=') {
			return l.createToken(token.MODULUS_BY, nil), true
		}
		return l.createToken(token.MODULUS, nil), true
	case c == '=':
		if l.program.MatchChar('=') {
			if l.program.MatchChar('=') {
				return l.createToken(token.IDENTICAL, nil), true
			}
			return l.createToken(token.EQUALS, nil), true
		}
		return l.createToken(token.ASSIGN, nil), true
	case c == '!':
		if l.program.MatchChar('=') {
			if l.program.MatchChar('=') {
				return l.createToken(token.NOT_IDENTICAL, nil), true
			}
			return l.createToken(token.NOT_EQUALS, nil), true
		}
		return l.createToken(token.LOGICAL_NOT, nil), true
	case c == '<':
		switch {
		case l.program.MatchChar('='):
			return l.createToken(token.LESS_THAN_OR_EQUAL, nil), true
		case l.program.MatchChar('<'):
			return l.createToken(token.LEFT_SHIFT, nil), true
		default:
			return l.createToken(token.LESS_THAN, nil), true
		}
	case c == '>':
		switch {
		case l.program.MatchChar('='):
			return l.createToken(token.GREATER_THAN_OR_EQUAL, nil), true
		case l.program.MatchChar('>'):
			return l.createToken(token.RIGHT_SHIFT, nil), true
		default:
			return l.createToken(token.GREATER_THAN, nil), true
		}
	case c == '/':
		return l.scanSlash()
	case c == '|':
		if l.program.MatchChar('|') {
			return l.createToken(token.LOGICAL_OR, nil), true
		}
		return l.createToken(token.OR, nil), true
	case c == '&':
		if l.program.MatchChar('&') {
			return l.createToken(token.LOGICAL_AND, nil), true
		}
		return l.createToken(token.AND, nil), true
	case c == '~':
		return l.createToken(token.NEGATE, nil), true
	case c == '^':
		return l.createToken(token.LOGICAL_XOR, nil), true

	case c == '\'':
		return l.scanString()

	case token.IsDigit(c):
		return l.scanNumber()

	case token.IsWhiteSpace(c):
		l.position = l.program.Position()
		return token.Token{}, false

	case token.IsIdentifierStart(c):
		return l.scanIdentifier()

	default:
		l.reportError("Unexpected character", l.position)
		l.position = l.program.Position()
		return token.Token{}, false
	}
}

// scanSlash implements the slash handler: a line comment, /=, or /.
func (l *Lexer) scanSlash() (token.Token, bool) {
	if l.program.MatchChar('/') {
		anchor := l.position
		for l.program.HasNext() {
			p := l.program.Peek(0)
			if p == '\n' || p == '\r' {
				break
			}
			l.program.Advance()
		}
		lexeme := strings.TrimSpace(l.program.Substring(anchor, l.program.Position()))
		l.lastComments = append(l.lastComments, token.Comment{Lexeme: lexeme, Offset: anchor})
		l.position = l.program.Position()
		return token.Token{}, false
	}
	if l.program.MatchChar('=') {
		return l.createToken(token.SLASH_BY, nil), true
	}
	return l.createToken(token.SLASH, nil), true
}

// scanString consumes a '...' literal. The emitted lexeme excludes the
// surrounding quotes; an unterminated string still emits a (possibly
// truncated) STRING token to aid downstream recovery (spec §4.E).
func (l *Lexer) scanString() (token.Token, bool) {
	anchor := l.position
	terminated := false
	for l.program.HasNext() {
		if l.program.Advance() == '\'' {
			terminated = true
			break
		}
	}
	end := l.program.Position()
	contentEnd := end
	if terminated {
		contentEnd = end - 1
	}
	content := l.program.Substring(anchor+1, contentEnd)
	if !terminated {
		l.reportError("Unterminated string", anchor)
	}
	return l.createToken(token.STRING, &content), true
}

// scanNumber implements spec §4.E's three-armed number scanner, including
// the two documented-but-preserved open-question behaviors: the exponent
// branch does not first consume the mantissa (see DESIGN.md), and the
// decimal-point branch performs no special handling at all — it simply
// doesn't consume the '.', which the top-level dispatcher then tokenizes
// as a separate PERIOD on the next scanToken call.
func (l *Lexer) scanNumber() (token.Token, bool) {
	anchor := l.position
	first := l.program.contents[anchor]

	switch {
	case first == '0' && (l.program.Peek(0) == 'x' || l.program.Peek(0) == 'X'):
		l.program.Advance()
		l.scanDigitsPred(token.IsHexadecimal)
	case l.program.Peek(0) == 'e' || l.program.Peek(0) == 'E':
		l.program.Advance()
		l.scanDigits()
	default:
		l.scanDigits()
	}
	return l.createToken(token.NUMBER, nil), true
}

func (l *Lexer) scanDigits() {
	l.scanDigitsPred(token.IsDigit)
}

func (l *Lexer) scanDigitsPred(pred func(rune) bool) {
	for pred(l.program.Peek(0)) {
		l.program.Advance()
	}
}

// scanIdentifier consumes identifier-continuation characters and resolves
// the result against the keyword table.
func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for token.IsIdentifier(l.program.Peek(0)) {
		l.program.Advance()
	}
	lexeme := l.program.Substring(l.position, l.program.Position())
	kind, ok := token.Keywords[lexeme]
	if !ok {
		kind = token.IDENTIFIER
	}
	return l.createToken(kind, nil), true
}

// createToken builds a Token anchored at l.position. content overrides the
// default lexeme (the substring between the anchor and the current scanner
// position) for cases like STRING where the lexeme must exclude delimiters.
// Attached comments are drained from lastComments; the anchor then advances
// to the scanner's current position.
func (l *Lexer) createToken(kind token.Kind, content *string) token.Token {
	oldAnchor := l.position
	pos := l.program.Position()

	lexeme := l.program.Substring(oldAnchor, pos)
	if content != nil {
		lexeme = *content
	}

	comments := l.lastComments
	l.lastComments = nil
	l.position = pos

	return token.Token{
		Kind:     kind,
		Lexeme:   lexeme,
		Comments: comments,
		Offset:   oldAnchor,
	}
}

// reportError invokes onError with the one-character span [offset,
// offset+1) and msg, per spec §4.E/§7.
func (l *Lexer) reportError(msg string, offset int) {
	end := offset + 1
	if end > l.file.Length() {
		end = l.file.Length()
	}
	span, err := l.file.Span(offset, end)
	if err != nil {
		// offset came from the lexer's own bookkeeping, which never
		// exceeds the file it is scanning; a RangeError here means the
		// lexer itself is broken, not the input.
		panic(err)
	}
	l.onError(span, msg)
}
