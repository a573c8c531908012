package lexer

import "github.com/kievzenit/goop-frontend/internal/token"

// trieNode is one node of the punctuation trie, materialized as data
// from the fixed spelling table in internal/token rather than a
// switch-per-leading-character cascade, per the maximal-munch recognizer
// the scanner needs: every punctuation spelling shares this one trie, and
// recognizing a token is a walk that stops at the longest spelling that
// is a prefix of what's in the source.
type trieNode struct {
	kind       token.PunctuationKind
	isTerminal bool
	children   map[rune]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// punctuationTrie is the root of the trie built once at package init time
// from every entry in token's spelling table.
var punctuationTrie = buildPunctuationTrie()

func buildPunctuationTrie() *trieNode {
	root := newTrieNode()
	for kind, spelling := range allPunctuationSpellings() {
		node := root
		for _, r := range spelling {
			next, ok := node.children[r]
			if !ok {
				next = newTrieNode()
				node.children[r] = next
			}
			node = next
		}
		node.kind = kind
		node.isTerminal = true
	}
	return root
}

// allPunctuationSpellings enumerates every PunctuationKind's spelling.
// Kept local to the lexer package (rather than exported from token) so
// the trie-construction detail doesn't leak into the token data model.
func allPunctuationSpellings() map[token.PunctuationKind]string {
	kinds := []token.PunctuationKind{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR, token.AND_NOT,
		token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN,
		token.REM_ASSIGN, token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN,
		token.SHL_ASSIGN, token.SHR_ASSIGN, token.AND_NOT_ASSIGN,
		token.LAND, token.LOR, token.ARROW, token.INC, token.DEC,
		token.EQ, token.LT, token.GT, token.ASSIGN, token.NOT, token.TILDE,
		token.NEQ, token.LEQ, token.GEQ, token.DEFINE, token.ELLIPSIS,
		token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET,
		token.LBRACE, token.RBRACE, token.COMMA, token.SEMICOLON,
		token.PERIOD, token.COLON,
	}
	m := make(map[token.PunctuationKind]string, len(kinds))
	for _, k := range kinds {
		m[k] = k.Spelling()
	}
	return m
}

// startsPunctuation reports whether r can begin some punctuation
// spelling, so the top-level dispatch knows to hand off to the trie
// walker.
func startsPunctuation(r rune) bool {
	_, ok := punctuationTrie.children[r]
	return ok
}

// walkPunctuation performs the maximal-munch trie walk starting from the
// source's current position (the caller has already consumed nothing of
// the punctuation itself). It reads code points from src one at a time,
// descending the trie, remembering the most recent terminal node seen and
// how many code points have been consumed since that terminal. If the
// walk runs off the trie (no outgoing edge for the next code point, or
// EOF) before finding a longer match, every code point consumed since the
// last terminal is pushed back so the source is left positioned exactly
// after the longest valid spelling.
//
// walkPunctuation assumes the first code point does start some
// punctuation spelling; callers check startsPunctuation first.
func walkPunctuation(next func() (rune, bool), unget func(rune)) (token.PunctuationKind, bool) {
	node := punctuationTrie
	var lastKind token.PunctuationKind
	lastFound := false
	var sinceLast []rune

	for {
		r, ok := next()
		if !ok {
			break
		}
		child, ok := node.children[r]
		if !ok {
			unget(r)
			break
		}
		node = child
		sinceLast = append(sinceLast, r)
		if node.isTerminal {
			lastKind = node.kind
			lastFound = true
			sinceLast = sinceLast[:0]
		}
	}

	for i := len(sinceLast) - 1; i >= 0; i-- {
		unget(sinceLast[i])
	}
	return lastKind, lastFound
}
