package token

import (
	"fmt"
	"io"
	"strings"
)

// Print writes t in "Kind(field: value, …)" debug form, grounded on the
// teacher's Token.String() switch but widened to the per-variant payload
// fields this Token carries.
func Print(w io.Writer, t Token) {
	fmt.Fprintf(w, "%s", t.Kind)
	fields := fieldStrings(t)
	if len(fields) == 0 {
		return
	}
	fmt.Fprintf(w, "(%s)", strings.Join(fields, ", "))
}

func fieldStrings(t Token) []string {
	switch t.Kind {
	case Keyword:
		return []string{fmt.Sprintf("keyword: %s", t.KeywordKind)}
	case Punctuation:
		return []string{fmt.Sprintf("punctuation: %s", t.PunctuationKind)}
	case Identifier:
		return []string{fmt.Sprintf("name: %q", t.Name)}
	case IntLiteral:
		fs := []string{fmt.Sprintf("digits: %q", t.Digits), fmt.Sprintf("radix: %d", t.Radix)}
		if t.RadixImplicit {
			fs = append(fs, "implicit: true")
		}
		return fs
	case FloatLiteral:
		fs := []string{fmt.Sprintf("mantissa: %q", t.Mantissa), fmt.Sprintf("radix: %d", t.FloatRadix)}
		if t.Exponent != "" {
			sign := "+"
			if t.ExponentNegative {
				sign = "-"
			}
			fs = append(fs, fmt.Sprintf("exponent: %c%s%s", t.ExponentChar, sign, t.Exponent))
		}
		return fs
	case ImaginaryLiteral:
		var inner string
		if t.Imaginary != nil {
			var b strings.Builder
			Print(&b, *t.Imaginary)
			inner = b.String()
		}
		return []string{fmt.Sprintf("value: %s", inner)}
	case RuneLiteral, StringLiteral:
		fs := []string{fmt.Sprintf("value: %q", t.String())}
		if t.Kind == StringLiteral && t.Multiline {
			fs = append(fs, "raw: true")
		}
		return fs
	case Comment:
		return []string{fmt.Sprintf("text: %q", t.Text)}
	default:
		return nil
	}
}
