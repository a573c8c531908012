package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/lexer"
	"github.com/kievzenit/goop-frontend/internal/parser"
	"github.com/kievzenit/goop-frontend/internal/source"
)

func printSource(t *testing.T, src string) string {
	t.Helper()
	s, err := source.NewRuneSource(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("NewRuneSource: %v", err)
	}
	l := lexer.NewLexer(s, "test")
	ts, err := lexer.NewTokenStream(l)
	if err != nil {
		t.Fatalf("NewTokenStream: %v", err)
	}
	f, err := parser.ParseSourceFile(ts)
	if err != nil {
		t.Fatalf("ParseSourceFile(%q): %v", src, err)
	}
	var buf bytes.Buffer
	PrintSourceFile(&buf, f)
	return buf.String()
}

// TestMinimalFileOutput checks the exact "NodeName [ … ]" form spec.md
// §6.3 describes, for the smallest possible source file.
func TestMinimalFileOutput(t *testing.T) {
	got := printSource(t, "package p\n")
	want := strings.Join([]string{
		"SourceFile [",
		"  PackageClause [",
		"    Name: p",
		"  ]",
		"  Imports [",
		"  ]",
		"  Decls [",
		"  ]",
		"]",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// TestBracketsBalance checks that every "NodeName [" line is eventually
// closed by a "]" line at the same indentation, for a source file
// exercising declarations, expressions, and statements together.
func TestBracketsBalance(t *testing.T) {
	got := printSource(t, `package p

import "fmt"

type Point struct {
	X, Y int
}

func (p *Point) Sum() int {
	if p.X > 0 {
		return p.X + p.Y
	}
	return 0
}
`)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	var stack []int
	for _, line := range lines {
		indent := (len(line) - len(strings.TrimLeft(line, " "))) / 2
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasSuffix(trimmed, "["):
			stack = append(stack, indent)
		case trimmed == "]":
			if len(stack) == 0 {
				t.Fatalf("unmatched ']' at indent %d", indent)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open != indent {
				t.Fatalf("closing ']' at indent %d does not match its opening indent %d", indent, open)
			}
		}
	}
	if len(stack) != 0 {
		t.Fatalf("%d unclosed '[' remain after printing", len(stack))
	}
}

func TestFuncDeclFieldsAppear(t *testing.T) {
	got := printSource(t, `package p

func Add(a, b int) int {
	return a + b
}
`)
	for _, want := range []string{
		"FuncDecl [",
		"Name: Add",
		"ParamDecl [",
		"Names: a, b",
		"ReturnStatement [",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, got)
		}
	}
}

func TestNilOptionalFieldPrintsNilLine(t *testing.T) {
	got := printSource(t, `package p

func F() {}
`)
	if !strings.Contains(got, "nil") {
		t.Error("a plain function with no receiver and no body statements should print a nil receiver line")
	}
}

// TestChannelDirectionNaming checks spec.md's debug form names channel
// directions by word, not by the raw AST enum value.
func TestChannelDirectionNaming(t *testing.T) {
	got := printSource(t, "package p; var x <-chan int")
	if !strings.Contains(got, "Dir: recv") {
		t.Errorf("output missing \"Dir: recv\"\nfull output:\n%s", got)
	}
}

func TestCompositeLiteralPrintsElements(t *testing.T) {
	got := printSource(t, "package p; var x = []int{1, 2, 3}")
	if !strings.Contains(got, "CompositeLiteral [") {
		t.Errorf("output missing CompositeLiteral\nfull output:\n%s", got)
	}
	if !strings.Contains(got, "Elements [") {
		t.Errorf("output missing Elements\nfull output:\n%s", got)
	}
	if n := strings.Count(got, "CompositeElement ["); n != 3 {
		t.Errorf("got %d CompositeElement entries, want 3", n)
	}
}

func ensureNoPanicOnNode(t *testing.T, n ast.Node) {
	t.Helper()
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.node(n)
}

func TestPrinterHandlesTypedNilPointerDirectly(t *testing.T) {
	var fd *ast.FuncDecl
	ensureNoPanicOnNode(t, fd)
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.node(fd)
	if strings.TrimSpace(buf.String()) != "nil" {
		t.Errorf("got %q, want a bare nil line for a typed-nil *ast.FuncDecl", buf.String())
	}
}
