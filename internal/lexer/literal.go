package lexer

import (
	"github.com/kievzenit/goop-frontend/internal/errors"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// scanStringLiteral scans a double-quoted interpreted string literal.
// The opening quote has already been consumed; pos is its position.
// Grounded on velour-stop's interpertedStringLiteral/unicodeValue escape
// grammar.
func (l *Lexer) scanStringLiteral(pos token.Position) token.Token {
	var runes []token.RuneValue
	for {
		r, rpos, ok := l.rawNext()
		if !ok {
			errors.Fail(&errors.LexError{Pos: pos, Message: "unterminated string literal"})
		}
		if r == '"' {
			break
		}
		if r == '\n' {
			errors.Fail(&errors.LexError{Pos: rpos, Message: "newline in string literal"})
		}
		if r == '\\' {
			runes = append(runes, l.scanEscape(rpos, '"'))
			continue
		}
		runes = append(runes, token.RuneValue{CodePoint: r, EscapeKind: token.Plain})
	}
	return token.Token{Kind: token.StringLiteral, Pos: pos, Runes: runes}
}

// scanRawStringLiteral scans a backtick-quoted raw string literal: no
// escapes are recognized, carriage returns are discarded, and any
// newline inside is legal and makes Multiline true.
func (l *Lexer) scanRawStringLiteral(pos token.Position) token.Token {
	var runes []token.RuneValue
	multiline := false
	for {
		r, rpos, ok := l.rawNext()
		if !ok {
			errors.Fail(&errors.LexError{Pos: pos, Message: "unterminated raw string literal"})
		}
		if r == '`' {
			break
		}
		if r == '\r' {
			continue
		}
		if r == '\n' {
			multiline = true
		}
		runes = append(runes, token.RuneValue{CodePoint: r, EscapeKind: token.Plain})
		_ = rpos
	}
	return token.Token{Kind: token.StringLiteral, Pos: pos, Runes: runes, Multiline: multiline}
}

// scanRuneLiteral scans a single-quoted rune literal.
func (l *Lexer) scanRuneLiteral(pos token.Position) token.Token {
	r, rpos, ok := l.rawNext()
	if !ok {
		errors.Fail(&errors.LexError{Pos: pos, Message: "unterminated rune literal"})
	}
	var rv token.RuneValue
	if r == '\'' {
		errors.Fail(&errors.LexError{Pos: pos, Message: "empty rune literal"})
	}
	if r == '\\' {
		rv = l.scanEscape(rpos, '\'')
	} else {
		rv = token.RuneValue{CodePoint: r, EscapeKind: token.Plain}
	}
	closing, cpos, ok := l.rawNext()
	if !ok || closing != '\'' {
		errors.Fail(&errors.LexError{Pos: cpos, Message: "rune literal contains more than one code point"})
	}
	return token.Token{Kind: token.RuneLiteral, Pos: pos, Runes: []token.RuneValue{rv}}
}

// scanEscape decodes a backslash escape sequence. backslashPos is the
// position of the backslash itself, already consumed; quote is the
// enclosing literal's quote character, which is also a valid short
// escape target (\' inside a rune literal, \" inside a string literal).
func (l *Lexer) scanEscape(backslashPos token.Position, quote rune) token.RuneValue {
	r, pos, ok := l.rawNext()
	if !ok {
		errors.Fail(&errors.LexError{Pos: backslashPos, Message: "unterminated escape sequence"})
	}
	switch r {
	case 'a':
		return token.RuneValue{CodePoint: '\a', EscapeKind: token.ShortEscape}
	case 'b':
		return token.RuneValue{CodePoint: '\b', EscapeKind: token.ShortEscape}
	case 'f':
		return token.RuneValue{CodePoint: '\f', EscapeKind: token.ShortEscape}
	case 'n':
		return token.RuneValue{CodePoint: '\n', EscapeKind: token.ShortEscape}
	case 'r':
		return token.RuneValue{CodePoint: '\r', EscapeKind: token.ShortEscape}
	case 't':
		return token.RuneValue{CodePoint: '\t', EscapeKind: token.ShortEscape}
	case 'v':
		return token.RuneValue{CodePoint: '\v', EscapeKind: token.ShortEscape}
	case '\\':
		return token.RuneValue{CodePoint: '\\', EscapeKind: token.ShortEscape}
	case quote:
		return token.RuneValue{CodePoint: quote, EscapeKind: token.ShortEscape}
	case 'x':
		return token.RuneValue{CodePoint: l.scanHexEscape(pos, 2), EscapeKind: token.HexByte}
	case 'u':
		return token.RuneValue{CodePoint: l.scanHexEscape(pos, 4), EscapeKind: token.LittleUnicode}
	case 'U':
		return token.RuneValue{CodePoint: l.scanHexEscape(pos, 8), EscapeKind: token.BigUnicode}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return token.RuneValue{CodePoint: l.scanOctalEscape(r, pos), EscapeKind: token.OctalByte}
	default:
		errors.Fail(&errors.LexError{Pos: pos, Message: "unknown escape sequence"})
		panic("unreachable")
	}
}

func (l *Lexer) scanHexEscape(pos token.Position, n int) rune {
	var v rune
	for i := 0; i < n; i++ {
		r, rpos, ok := l.rawNext()
		if !ok || !isHexDigit(r) {
			errors.Fail(&errors.LexError{Pos: pos, Message: "malformed hex escape: too few digits"})
		}
		v = v*16 + rune(hexDigitValue(r))
		_ = rpos
	}
	return v
}

func (l *Lexer) scanOctalEscape(first rune, pos token.Position) rune {
	v := first - '0'
	for i := 0; i < 2; i++ {
		r, rpos, ok := l.rawNext()
		if !ok || !isOctalDigit(r) {
			errors.Fail(&errors.LexError{Pos: pos, Message: "malformed octal escape: too few digits"})
		}
		v = v*8 + (r - '0')
		_ = rpos
	}
	return v
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}
