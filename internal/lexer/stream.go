package lexer

import (
	"github.com/kievzenit/goop-frontend/internal/errors"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// TokenStream is a buffered view over a Lexer's output that supports the
// parser's backtracking lookahead: Mark/Reset save and restore a cursor
// position, and Unget pushes a single token back for one-token lookahead
// without needing a saved mark. Grounded on the teacher's TokenScanner
// (Read/Unread), generalized to the richer vocabulary the parser needs,
// which is also, call-for-call, the tokens::TokenStream API used by the
// original parser's recognizers.
type TokenStream struct {
	toks []token.Token
	pos  int
}

// NewTokenStream buffers every token produced by l, including the
// trailing EOF, up front.
func NewTokenStream(l *Lexer) (*TokenStream, error) {
	toks, err := tokenizeAll(l)
	if err != nil {
		return nil, err
	}
	return &TokenStream{toks: toks}, nil
}

// NewTokenStreamFromTokens wraps an already-scanned token slice, useful
// for tests that want to hand-build input.
func NewTokenStreamFromTokens(toks []token.Token) *TokenStream {
	return &TokenStream{toks: toks}
}

func tokenizeAll(l *Lexer) (toks []token.Token, err error) {
	defer errors.Recover(&err)
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks, nil
}

// Read returns the next token in the stream and advances the cursor. At
// end of stream it repeatedly returns the trailing EOF token.
func (ts *TokenStream) Read() token.Token {
	if ts.pos >= len(ts.toks) {
		return ts.toks[len(ts.toks)-1]
	}
	t := ts.toks[ts.pos]
	ts.pos++
	return t
}

// Peek returns the next token without advancing the cursor.
func (ts *TokenStream) Peek() token.Token {
	if ts.pos >= len(ts.toks) {
		return ts.toks[len(ts.toks)-1]
	}
	return ts.toks[ts.pos]
}

// Unget moves the cursor back by one, so the next Read returns t again.
// t is expected to be the token most recently Read; Unget does not
// support ungetting an arbitrary token out of order.
func (ts *TokenStream) Unget(t token.Token) {
	if ts.pos > 0 {
		ts.pos--
	}
}

// Mark returns a cursor value that Reset can later restore, for
// backtracking recognizers that need to try a production speculatively.
func (ts *TokenStream) Mark() int { return ts.pos }

// Reset restores the cursor to a value previously returned by Mark.
func (ts *TokenStream) Reset(mark int) { ts.pos = mark }

// Match consumes and returns the next token if it satisfies pred,
// leaving the cursor unmoved otherwise.
func (ts *TokenStream) Match(pred func(token.Token) bool) (token.Token, bool) {
	t := ts.Peek()
	if !pred(t) {
		return token.Token{}, false
	}
	ts.Read()
	return t, true
}

// MatchKeyword consumes the next token if it is the keyword k.
func (ts *TokenStream) MatchKeyword(k token.KeywordKind) (token.Token, bool) {
	return ts.Match(func(t token.Token) bool {
		return t.Kind == token.Keyword && t.KeywordKind == k
	})
}

// MatchPunctuation consumes the next token if it is one of kinds.
func (ts *TokenStream) MatchPunctuation(kinds ...token.PunctuationKind) (token.Token, bool) {
	return ts.Match(func(t token.Token) bool {
		if t.Kind != token.Punctuation {
			return false
		}
		for _, k := range kinds {
			if t.PunctuationKind == k {
				return true
			}
		}
		return false
	})
}

// PeekPunctuation reports whether the next token is one of kinds,
// without consuming it.
func (ts *TokenStream) PeekPunctuation(kinds ...token.PunctuationKind) bool {
	t := ts.Peek()
	if t.Kind != token.Punctuation {
		return false
	}
	for _, k := range kinds {
		if t.PunctuationKind == k {
			return true
		}
	}
	return false
}

// PeekKeyword reports whether the next token is the keyword k, without
// consuming it.
func (ts *TokenStream) PeekKeyword(k token.KeywordKind) bool {
	t := ts.Peek()
	return t.Kind == token.Keyword && t.KeywordKind == k
}

// MatchIdentifier consumes the next token if it is an identifier.
func (ts *TokenStream) MatchIdentifier() (token.Token, bool) {
	return ts.Match(func(t token.Token) bool { return t.Kind == token.Identifier })
}

// AtEOF reports whether the stream's cursor is at the trailing EOF token.
func (ts *TokenStream) AtEOF() bool {
	return ts.Peek().Kind == token.EOF
}
