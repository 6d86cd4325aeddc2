package token

// The classifier is pure ASCII, per spec: no locale, no Unicode identifier
// classes. Grounded on the teacher's isIdentifierStart/isIdentifierChar/
// isHexDigit free functions, extended to the full predicate set.

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexadecimal reports whether c is a digit or a..f/A..F.
func IsHexadecimal(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentifierStart reports whether c may begin an identifier.
func IsIdentifierStart(c rune) bool {
	return IsLetter(c) || c == '_'
}

// IsIdentifier reports whether c may continue an identifier.
func IsIdentifier(c rune) bool {
	return IsIdentifierStart(c) || IsDigit(c)
}

// IsWhiteSpace reports whether c is a space, tab, LF, or CR.
func IsWhiteSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
