// Package lexer turns a source.Source into a stream of token.Tokens: a
// Lexer performs the scan itself, and a TokenStream buffers its output
// for the parser's backtracking lookahead.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/kievzenit/goop-frontend/internal/errors"
	"github.com/kievzenit/goop-frontend/internal/source"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// Lexer scans one token.Token at a time from a source.Source, inserting
// semicolons automatically at line breaks where the grammar requires
// them.
type Lexer struct {
	src  source.Source
	path string

	line, col, offset int
	posStack          []token.Position

	// prevSignificant is the last non-comment token returned by next,
	// used by the semicolon-insertion rule. haveSignificant is false
	// before the first token and right after an inserted semicolon.
	prevSignificant token.Token
	haveSignificant bool

	// pendingSemicolon, when set, is returned by the next call to next
	// before any further scanning happens.
	pendingSemicolon bool
	atEOF            bool
}

// NewLexer returns a Lexer that scans src. path is used only to label
// positions in tokens and errors.
func NewLexer(src source.Source, path string) *Lexer {
	return &Lexer{src: src, path: path, line: 1, col: 1}
}

// Tokenize scans src to completion and returns every token, including a
// trailing EOF token. Like NewTokenStream, it recovers a Fail'd panic
// into a returned error, per the teacher's
// fail-fast-out-of-deep-recursion mechanism scoped to one call instead of
// the whole process.
func Tokenize(src source.Source, path string) (toks []token.Token, err error) {
	defer errors.Recover(&err)
	l := NewLexer(src, path)
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks, nil
}

func (l *Lexer) rawNext() (rune, token.Position, bool) {
	r, ok := l.src.Next()
	if !ok {
		return 0, l.currentPos(), false
	}
	if n := len(l.posStack); n > 0 {
		pos := l.posStack[n-1]
		l.posStack = l.posStack[:n-1]
		return r, pos, true
	}
	pos := l.currentPos()
	l.advance(r)
	return r, pos, true
}

func (l *Lexer) rawUnget(r rune, pos token.Position) {
	l.src.Unget(r)
	l.posStack = append(l.posStack, pos)
}

func (l *Lexer) advance(r rune) {
	l.offset++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Path: l.path, Line: l.line, Column: l.col, Offset: l.offset}
}

// next is the top-level recognizer loop: it skips whitespace and
// comments while watching for a line break that should trigger automatic
// semicolon insertion, then dispatches to the first recognizer whose
// lead code point matches.
func (l *Lexer) next() token.Token {
	if l.pendingSemicolon {
		l.pendingSemicolon = false
		t := token.Token{Kind: token.Punctuation, PunctuationKind: token.SEMICOLON, Pos: l.currentPos()}
		l.setPrev(t)
		return t
	}
	if l.atEOF {
		return token.Token{Kind: token.EOF, Pos: l.currentPos()}
	}

	sawNewline := false
	for {
		r, pos, ok := l.rawNext()
		if !ok {
			l.atEOF = true
			if l.needsSemicolonBefore() {
				l.haveSignificant = false
				return token.Token{Kind: token.Punctuation, PunctuationKind: token.SEMICOLON, Pos: pos}
			}
			return token.Token{Kind: token.EOF, Pos: pos}
		}
		switch {
		case r == '\n':
			sawNewline = true
			continue
		case unicode.IsSpace(r):
			continue
		case r == '/':
			r2, pos2, ok2 := l.rawNext()
			if ok2 && r2 == '/' {
				l.scanLineComment()
				continue
			}
			if ok2 && r2 == '*' {
				spansNewline := l.scanBlockComment()
				if spansNewline {
					sawNewline = true
				}
				continue
			}
			if ok2 {
				l.rawUnget(r2, pos2)
			}
			if sawNewline && l.needsSemicolonBefore() {
				l.rawUnget(r, pos)
				l.haveSignificant = false
				return token.Token{Kind: token.Punctuation, PunctuationKind: token.SEMICOLON, Pos: pos}
			}
			t := l.scanPunctuationFrom(r, pos)
			l.setPrev(t)
			return t
		default:
			if sawNewline && l.needsSemicolonBefore() {
				l.rawUnget(r, pos)
				l.haveSignificant = false
				return token.Token{Kind: token.Punctuation, PunctuationKind: token.SEMICOLON, Pos: pos}
			}
			t := l.scanFrom(r, pos)
			l.setPrev(t)
			return t
		}
	}
}

func (l *Lexer) setPrev(t token.Token) {
	l.prevSignificant = t
	l.haveSignificant = true
}

// needsSemicolonBefore implements the automatic semicolon insertion rule,
// grounded on velour-stop's Lexer.Next: a line break (or EOF) terminates
// a statement if the last significant token could end one.
func (l *Lexer) needsSemicolonBefore() bool {
	if !l.haveSignificant {
		return false
	}
	t := l.prevSignificant
	switch t.Kind {
	case token.Identifier, token.IntLiteral, token.FloatLiteral, token.ImaginaryLiteral,
		token.RuneLiteral, token.StringLiteral:
		return true
	case token.Keyword:
		switch t.KeywordKind {
		case token.BREAK, token.CONTINUE, token.FALLTHROUGH, token.RETURN:
			return true
		}
		return false
	case token.Punctuation:
		switch t.PunctuationKind {
		case token.INC, token.DEC, token.RPAREN, token.RBRACKET, token.RBRACE:
			return true
		}
		return false
	default:
		return false
	}
}

// scanFrom dispatches on the already-consumed lead code point r at pos.
func (l *Lexer) scanFrom(r rune, pos token.Position) token.Token {
	switch {
	case r == '"':
		return l.scanStringLiteral(pos)
	case r == '`':
		return l.scanRawStringLiteral(pos)
	case r == '\'':
		return l.scanRuneLiteral(pos)
	case unicode.IsDigit(r):
		l.rawUnget(r, pos)
		return l.scanNumber()
	case r == '.':
		// Could be PERIOD/ELLIPSIS (punctuation) or the start of a float
		// literal (".5"); peek one rune to disambiguate.
		r2, pos2, ok2 := l.rawNext()
		if ok2 {
			l.rawUnget(r2, pos2)
		}
		if ok2 && unicode.IsDigit(r2) {
			l.rawUnget(r, pos)
			return l.scanNumber()
		}
		return l.scanPunctuationFrom(r, pos)
	case isIdentStart(r):
		return l.scanIdentifierOrKeyword(r, pos)
	case startsPunctuation(r):
		return l.scanPunctuationFrom(r, pos)
	default:
		errors.Fail(&errors.LexError{Pos: pos, Message: "unexpected character " + quoteRune(r)})
		panic("unreachable")
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) scanIdentifierOrKeyword(first rune, pos token.Position) token.Token {
	runes := []rune{first}
	for {
		r, p, ok := l.rawNext()
		if !ok {
			break
		}
		if !isIdentCont(r) {
			l.rawUnget(r, p)
			break
		}
		runes = append(runes, r)
	}
	name := string(runes)
	if kw, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: token.Keyword, KeywordKind: kw, Pos: pos}
	}
	return token.Token{Kind: token.Identifier, Name: name, Pos: pos}
}

func (l *Lexer) scanPunctuationFrom(first rune, pos token.Position) token.Token {
	l.rawUnget(first, pos)

	var posStack []token.Position
	nextFn := func() (rune, bool) {
		r, p, ok := l.rawNext()
		if ok {
			posStack = append(posStack, p)
		}
		return r, ok
	}
	ungetFn := func(r rune) {
		n := len(posStack)
		p := posStack[n-1]
		posStack = posStack[:n-1]
		l.rawUnget(r, p)
	}

	kind, ok := walkPunctuation(nextFn, ungetFn)
	if !ok {
		errors.Fail(&errors.LexError{Pos: pos, Message: "unexpected character " + quoteRune(first)})
	}
	return token.Token{Kind: token.Punctuation, PunctuationKind: kind, Pos: pos}
}

// scanLineComment consumes a "//" comment through (but not including)
// the terminating newline or EOF.
func (l *Lexer) scanLineComment() {
	for {
		r, pos, ok := l.rawNext()
		if !ok {
			return
		}
		if r == '\n' {
			l.rawUnget(r, pos)
			return
		}
	}
}

// scanBlockComment consumes a "/*" comment through its closing "*/" and
// reports whether it spanned a newline, which matters for semicolon
// insertion: a /*...*/ comment containing a newline counts as a line
// break the way a // comment always does.
func (l *Lexer) scanBlockComment() bool {
	sawNewline := false
	for {
		r, pos, ok := l.rawNext()
		if !ok {
			errors.Fail(&errors.LexError{Pos: pos, Message: "unterminated block comment"})
		}
		if r == '\n' {
			sawNewline = true
			continue
		}
		if r == '*' {
			r2, pos2, ok2 := l.rawNext()
			if ok2 && r2 == '/' {
				return sawNewline
			}
			if ok2 {
				l.rawUnget(r2, pos2)
			}
		}
	}
}

func quoteRune(r rune) string {
	buf := make([]byte, utf8.UTFMax+2)
	buf[0] = '\''
	n := utf8.EncodeRune(buf[1:], r)
	buf[1+n] = '\''
	return string(buf[:2+n])
}
