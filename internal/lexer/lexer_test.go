package lexer

import (
	"strings"
	"testing"

	"github.com/kievzenit/goop-frontend/internal/source"
	"github.com/kievzenit/goop-frontend/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	s, err := source.NewRuneSource(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("NewRuneSource: %v", err)
	}
	toks, err := Tokenize(s, "test")
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func nonEOF(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].Kind == token.EOF {
		return toks[:len(toks)-1]
	}
	return toks
}

// TestNumericLiterals implements spec.md §8.2 scenario S5.
func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		src   string
		check func(t *testing.T, tok token.Token)
	}{
		{"0b1010", func(t *testing.T, tok token.Token) {
			wantIntLiteral(t, tok, "1010", 2, false)
		}},
		{"0o17", func(t *testing.T, tok token.Token) {
			wantIntLiteral(t, tok, "17", 8, false)
		}},
		{"0xBEEF", func(t *testing.T, tok token.Token) {
			wantIntLiteral(t, tok, "BEEF", 16, false)
		}},
		{"0_1_2", func(t *testing.T, tok token.Token) {
			wantIntLiteral(t, tok, "012", 8, true)
		}},
		{"1_000", func(t *testing.T, tok token.Token) {
			wantIntLiteral(t, tok, "1000", 10, false)
		}},
		{"0.5e-3", func(t *testing.T, tok token.Token) {
			if tok.Kind != token.FloatLiteral {
				t.Fatalf("Kind = %v, want FloatLiteral", tok.Kind)
			}
			if tok.Mantissa != "0.5" || tok.Exponent != "3" || !tok.ExponentNegative || tok.ExponentChar != 'e' || tok.FloatRadix != 10 {
				t.Errorf("got %+v", tok)
			}
		}},
		{"0x1.8p1", func(t *testing.T, tok token.Token) {
			if tok.Kind != token.FloatLiteral {
				t.Fatalf("Kind = %v, want FloatLiteral", tok.Kind)
			}
			if tok.Mantissa != "1.8" || tok.Exponent != "1" || tok.ExponentNegative || tok.ExponentChar != 'p' || tok.FloatRadix != 16 {
				t.Errorf("got %+v", tok)
			}
		}},
		{"42i", func(t *testing.T, tok token.Token) {
			if tok.Kind != token.ImaginaryLiteral {
				t.Fatalf("Kind = %v, want ImaginaryLiteral", tok.Kind)
			}
			wantIntLiteral(t, *tok.Imaginary, "42", 10, false)
		}},
		{"0.0i", func(t *testing.T, tok token.Token) {
			if tok.Kind != token.ImaginaryLiteral {
				t.Fatalf("Kind = %v, want ImaginaryLiteral", tok.Kind)
			}
			if tok.Imaginary.Kind != token.FloatLiteral || tok.Imaginary.Mantissa != "0.0" {
				t.Errorf("got %+v", *tok.Imaginary)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := nonEOF(tokenize(t, tt.src))
			if len(toks) != 2 {
				t.Fatalf("tokenize(%q) produced %d tokens, want 2 (the literal and the semicolon inserted at end of input)", tt.src, len(toks))
			}
			if toks[1].Kind != token.Punctuation || toks[1].PunctuationKind != token.SEMICOLON {
				t.Errorf("token 1 = %+v, want the SEMICOLON inserted at end of input", toks[1])
			}
			tt.check(t, toks[0])
		})
	}
}

func wantIntLiteral(t *testing.T, tok token.Token, digits string, radix int, implicit bool) {
	t.Helper()
	if tok.Kind != token.IntLiteral {
		t.Fatalf("Kind = %v, want IntLiteral", tok.Kind)
	}
	if tok.Digits != digits || tok.Radix != radix || tok.RadixImplicit != implicit {
		t.Errorf("got {Digits: %q, Radix: %d, RadixImplicit: %v}, want {%q, %d, %v}",
			tok.Digits, tok.Radix, tok.RadixImplicit, digits, radix, implicit)
	}
}

// TestPunctuationMaximalMunch exercises the trie's longest-match behavior
// and its pushback on a failed descent.
func TestPunctuationMaximalMunch(t *testing.T) {
	tests := []struct {
		src  string
		want []token.PunctuationKind
	}{
		{"...", []token.PunctuationKind{token.ELLIPSIS}},
		{"..", []token.PunctuationKind{token.PERIOD, token.PERIOD}},
		{".", []token.PunctuationKind{token.PERIOD}},
		{"<<=", []token.PunctuationKind{token.SHL_ASSIGN}},
		{"<<", []token.PunctuationKind{token.SHL}},
		{"<", []token.PunctuationKind{token.LT}},
		{"&^=", []token.PunctuationKind{token.AND_NOT_ASSIGN}},
		{"&^", []token.PunctuationKind{token.AND_NOT}},
		{"&&", []token.PunctuationKind{token.LAND}},
		{"&", []token.PunctuationKind{token.AMP}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := nonEOF(tokenize(t, tt.src))
			if len(toks) != len(tt.want) {
				t.Fatalf("tokenize(%q) produced %d tokens, want %d", tt.src, len(toks), len(tt.want))
			}
			for i, k := range tt.want {
				if toks[i].Kind != token.Punctuation || toks[i].PunctuationKind != k {
					t.Errorf("token %d = %v, want %v", i, toks[i].PunctuationKind, k)
				}
			}
		})
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := nonEOF(tokenize(t, "package foo"))
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3 (package, foo, and the semicolon inserted at end of input)", len(toks))
	}
	if toks[0].Kind != token.Keyword || toks[0].KeywordKind != token.PACKAGE {
		t.Errorf("first token = %+v, want keyword PACKAGE", toks[0])
	}
	if toks[1].Kind != token.Identifier || toks[1].Name != "foo" {
		t.Errorf("second token = %+v, want identifier foo", toks[1])
	}
}

func TestStringAndRuneEscapes(t *testing.T) {
	toks := nonEOF(tokenize(t, `"a\nb\x41é" 'x' '\n' 'é'`))
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5 (four literals and the semicolon inserted at end of input)", len(toks))
	}
	if toks[0].Kind != token.StringLiteral || toks[0].String() != "a\nbAé" {
		t.Errorf("string literal decoded to %q", toks[0].String())
	}
	if toks[1].Kind != token.RuneLiteral || toks[1].String() != "x" {
		t.Errorf("rune literal decoded to %q", toks[1].String())
	}
	if toks[2].String() != "\n" {
		t.Errorf("escaped rune literal decoded to %q", toks[2].String())
	}
	if toks[3].String() != "é" {
		t.Errorf("unicode rune literal decoded to %q", toks[3].String())
	}
}

func TestRawStringLiteral(t *testing.T) {
	toks := nonEOF(tokenize(t, "`line1\nline2`"))
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (the literal and the semicolon inserted at end of input)", len(toks))
	}
	if !toks[0].Multiline {
		t.Error("raw string literal spanning a newline should set Multiline")
	}
	if toks[0].String() != "line1\nline2" {
		t.Errorf("decoded to %q", toks[0].String())
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := nonEOF(tokenize(t, "x // a line comment\ny /* a block comment */ z"))
	// The newline ending the line comment and the end of input each insert
	// a SEMICOLON; the comments themselves produce no tokens.
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want [x, ;, y, z, ;], comments should be dropped", len(toks))
	}
	for _, want := range []struct {
		i    int
		name string
	}{{0, "x"}, {2, "y"}, {3, "z"}} {
		if toks[want.i].Kind != token.Identifier || toks[want.i].Name != want.name {
			t.Errorf("token %d = %+v, want identifier %q", want.i, toks[want.i], want.name)
		}
	}
	for _, i := range []int{1, 4} {
		if toks[i].Kind != token.Punctuation || toks[i].PunctuationKind != token.SEMICOLON {
			t.Errorf("token %d = %+v, want SEMICOLON", i, toks[i])
		}
	}
}

// TestSemicolonInsertion is grounded on spec.md's automatic-semicolon
// rule: a newline after an identifier, literal, or one of a fixed set of
// keywords/punctuation inserts a SEMICOLON, and so does the end of input.
func TestSemicolonInsertion(t *testing.T) {
	toks := nonEOF(tokenize(t, "x\ny"))
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want [x, ;, y, ;]", len(toks))
	}
	if toks[1].Kind != token.Punctuation || toks[1].PunctuationKind != token.SEMICOLON {
		t.Errorf("token 1 = %+v, want SEMICOLON", toks[1])
	}
	if toks[3].Kind != token.Punctuation || toks[3].PunctuationKind != token.SEMICOLON {
		t.Errorf("token 3 = %+v, want SEMICOLON", toks[3])
	}

	toks = nonEOF(tokenize(t, "x +\ny"))
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want [x, +, y, ;] with no semicolon inserted after '+'", len(toks))
	}
	if toks[1].Kind != token.Punctuation || toks[1].PunctuationKind != token.PLUS {
		t.Errorf("token 1 = %+v, want PLUS", toks[1])
	}
}

func TestUnterminatedStringFails(t *testing.T) {
	s, _ := source.NewRuneSource(strings.NewReader(`"abc`), "test")
	if _, err := Tokenize(s, "test"); err == nil {
		t.Error("expected an error for an unterminated string literal")
	}
}

func TestDigitSeparatorPlacementFails(t *testing.T) {
	for _, src := range []string{"1_", "1__2", "0x_1"} {
		s, _ := source.NewRuneSource(strings.NewReader(src), "test")
		if _, err := Tokenize(s, "test"); err == nil {
			t.Errorf("Tokenize(%q): expected an error for a misplaced '_' separator", src)
		}
	}
}
