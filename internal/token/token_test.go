package token

import (
	"math/big"
	"testing"
)

func TestIntLiteralValue(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		radix  int
		want   string
	}{
		{"binary", "1010", 2, "10"},
		{"octal", "17", 8, "15"},
		{"hex", "BEEF", 16, "48879"},
		{"implicit octal", "012", 8, "10"},
		{"decimal with separators stripped", "1000", 10, "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Token{Kind: IntLiteral, Digits: tt.digits, Radix: tt.radix}
			got := tok.Value()
			want, ok := new(big.Int).SetString(tt.want, 10)
			if !ok {
				t.Fatalf("bad want constant %q", tt.want)
			}
			if got.Cmp(want) != 0 {
				t.Errorf("Value() = %s, want %s", got, want)
			}
		})
	}
}

func TestIntLiteralValuePanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Value() to panic on a non-IntLiteral token")
		}
	}()
	Token{Kind: FloatLiteral}.Value()
}

func TestFloatLiteralValue(t *testing.T) {
	tok := Token{
		Kind:       FloatLiteral,
		Mantissa:   "0.5",
		FloatRadix: 10,
		Exponent:   "3", ExponentNegative: true, ExponentChar: 'e',
	}
	got, _ := tok.FloatValue().Float64()
	const want = 0.5e-3
	if got != want {
		t.Errorf("FloatValue() = %v, want %v", got, want)
	}
}

func TestLookupKeyword(t *testing.T) {
	for name, want := range keywordNames {
		got, ok := LookupKeyword(want)
		if !ok {
			t.Fatalf("LookupKeyword(%q) reported absent", want)
		}
		if got != name {
			t.Errorf("LookupKeyword(%q) = %v, want %v", want, got, name)
		}
	}
	if _, ok := LookupKeyword("notakeyword"); ok {
		t.Error("LookupKeyword(\"notakeyword\") should report absent")
	}
}

func TestPunctuationSpellingRoundTrip(t *testing.T) {
	for k, spelling := range punctuationSpellings {
		if k.Spelling() != spelling {
			t.Errorf("%v.Spelling() = %q, want %q", k, k.Spelling(), spelling)
		}
	}
}

func TestIsAssignOp(t *testing.T) {
	if !ADD_ASSIGN.IsAssignOp() {
		t.Error("ADD_ASSIGN should be an assign op")
	}
	if PLUS.IsAssignOp() {
		t.Error("PLUS should not be an assign op")
	}
	if ASSIGN.IsAssignOp() {
		t.Error("bare ASSIGN is not itself a compound assign op")
	}
}
