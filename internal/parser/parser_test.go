package parser

import (
	"strings"
	"testing"

	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/lexer"
	"github.com/kievzenit/goop-frontend/internal/source"
)

func parse(t *testing.T, src string) *ast.SourceFile {
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
	f, err := ParseSourceFile(ts)
	if err != nil {
		t.Fatalf("ParseSourceFile(%q): %v", src, err)
	}
	return f
}

// TestMinimalFile implements spec.md §8.2 scenario S1.
func TestMinimalFile(t *testing.T) {
	f := parse(t, "package p\n")
	if f.Package.Name != "p" {
		t.Errorf("package name = %q, want p", f.Package.Name)
	}
	if len(f.Imports) != 0 || len(f.Decls) != 0 {
		t.Errorf("got Imports=%v Decls=%v, want both empty", f.Imports, f.Decls)
	}
}

// TestGroupedImports implements spec.md §8.2 scenario S2.
func TestGroupedImports(t *testing.T) {
	f := parse(t, `package p; import ( "a"; x "b"; . "c" )`)
	if len(f.Imports) != 1 {
		t.Fatalf("got %d ImportDecls, want 1", len(f.Imports))
	}
	specs := f.Imports[0].Specs
	if len(specs) != 3 {
		t.Fatalf("got %d ImportSpecs, want 3", len(specs))
	}
	if specs[0].Path != "a" || specs[0].Dot || specs[0].LocalName != "" {
		t.Errorf("spec 0 = %+v", specs[0])
	}
	if specs[1].Path != "b" || specs[1].LocalName != "x" || specs[1].Dot {
		t.Errorf("spec 1 = %+v", specs[1])
	}
	if specs[2].Path != "c" || !specs[2].Dot || specs[2].LocalName != "" {
		t.Errorf("spec 2 = %+v", specs[2])
	}
	for i, s := range specs {
		if s.Dot && s.LocalName != "" {
			t.Errorf("spec %d has both Dot and LocalName set", i)
		}
	}
}

// TestPrecedence implements spec.md §8.2 scenario S3: "1 + 2 * 3 == 7 && y"
// must parse as "(((1 + (2*3)) == 7) && y)".
func TestPrecedence(t *testing.T) {
	f := parse(t, "package p; var x = 1 + 2 * 3 == 7 && y")
	vd := f.Decls[0].(*ast.VarDecl)
	rhs := vd.Specs[0].Values[0]

	land := rhs.(*ast.BinaryExpression)
	if land.Op.Spelling() != "&&" {
		t.Fatalf("root op = %q, want &&", land.Op.Spelling())
	}

	eq := land.Left.(*ast.BinaryExpression)
	if eq.Op.Spelling() != "==" {
		t.Fatalf("second level op = %q, want ==", eq.Op.Spelling())
	}

	plus := eq.Left.(*ast.BinaryExpression)
	if plus.Op.Spelling() != "+" {
		t.Fatalf("third level op = %q, want +", plus.Op.Spelling())
	}

	mul := plus.Right.(*ast.BinaryExpression)
	if mul.Op.Spelling() != "*" {
		t.Fatalf("fourth level op = %q, want *", mul.Op.Spelling())
	}

	if _, ok := land.Right.(*ast.BinaryExpression); ok {
		t.Error("right operand of && should be the leaf y, not another BinaryExpression")
	}
}

// TestLeftAssociativity checks spec.md §8.1: operators of equal level
// associate left, so "a - b - c" parses as "(a - b) - c".
func TestLeftAssociativity(t *testing.T) {
	f := parse(t, "package p; var x = a - b - c")
	vd := f.Decls[0].(*ast.VarDecl)
	top := vd.Specs[0].Values[0].(*ast.BinaryExpression)
	if top.Op.Spelling() != "-" {
		t.Fatalf("top op = %q, want -", top.Op.Spelling())
	}
	left, ok := top.Left.(*ast.BinaryExpression)
	if !ok || left.Op.Spelling() != "-" {
		t.Fatalf("left child = %+v, want a nested '-' BinaryExpression", top.Left)
	}
	if _, ok := top.Right.(*ast.BinaryExpression); ok {
		t.Error("right child should be the leaf c, not another BinaryExpression")
	}
}

// TestGenericInstantiationVsIndex implements spec.md §8.2 scenario S4.
func TestGenericInstantiationVsIndex(t *testing.T) {
	f := parse(t, "package p; var x = F[int]")
	vd := f.Decls[0].(*ast.VarDecl)
	pe := vd.Specs[0].Values[0].(*ast.PrimaryExpression)
	if len(pe.Outer) != 0 {
		t.Errorf("got %d Outer postfixes, want 0", len(pe.Outer))
	}
	op, ok := pe.Inner.(*ast.NamedOperand)
	if !ok {
		t.Fatalf("Inner = %T, want *ast.NamedOperand", pe.Inner)
	}
	if op.Name.Name != "F" || len(op.TypeArgs) != 1 {
		t.Errorf("got %+v", op)
	}
	if _, ok := op.TypeArgs[0].(*ast.NamedType); !ok {
		t.Errorf("TypeArgs[0] = %T, want *ast.NamedType", op.TypeArgs[0])
	}
}

// TestIndexStillParsesAsIndex ensures the NamedOperand speculative parse
// correctly backs off for an ordinary index expression on a non-type
// operand, per the pushback invariant (spec.md §8.1).
func TestIndexStillParsesAsIndex(t *testing.T) {
	f := parse(t, "package p; var x = a[0]")
	vd := f.Decls[0].(*ast.VarDecl)
	pe := vd.Specs[0].Values[0].(*ast.PrimaryExpression)
	if _, ok := pe.Inner.(*ast.IdentOrQualified); !ok {
		t.Fatalf("Inner = %T, want *ast.IdentOrQualified", pe.Inner)
	}
	if len(pe.Outer) != 1 {
		t.Fatalf("got %d Outer postfixes, want 1", len(pe.Outer))
	}
	if _, ok := pe.Outer[0].(*ast.Index); !ok {
		t.Errorf("Outer[0] = %T, want *ast.Index", pe.Outer[0])
	}
}

// TestStructFieldDisambiguation implements spec.md §8.2 scenario S6.
func TestStructFieldDisambiguation(t *testing.T) {
	f := parse(t, "package p; type T = struct { x int; Y; *Z }")
	td := f.Decls[0].(*ast.TypeDecl)
	alias := td.Specs[0].(*ast.AliasDecl)
	if alias.Name != "T" {
		t.Fatalf("alias name = %q, want T", alias.Name)
	}
	st, ok := alias.Type.(*ast.StructType)
	if !ok {
		t.Fatalf("alias.Type = %T, want *ast.StructType", alias.Type)
	}
	if len(st.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(st.Fields))
	}

	named, ok := st.Fields[0].(*ast.Field)
	if !ok || len(named.Names) != 1 || named.Names[0] != "x" {
		t.Fatalf("field 0 = %+v (%T), want named field x", st.Fields[0], st.Fields[0])
	}
	if nt, ok := named.Type.(*ast.NamedType); !ok || nt.Name.Name != "int" {
		t.Errorf("field 0 type = %+v, want NamedType int", named.Type)
	}

	embY, ok := st.Fields[1].(*ast.EmbeddedField)
	if !ok || embY.Pointer || embY.Type.Name.Name != "Y" {
		t.Fatalf("field 1 = %+v (%T), want embedded Y", st.Fields[1], st.Fields[1])
	}

	embZ, ok := st.Fields[2].(*ast.EmbeddedField)
	if !ok || !embZ.Pointer || embZ.Type.Name.Name != "Z" {
		t.Fatalf("field 2 = %+v (%T), want embedded pointer *Z", st.Fields[2], st.Fields[2])
	}
}

// TestStructFieldDisambiguationGenericEmbed covers an embedded field whose
// single identifier is followed by a type-argument list rather than a
// field type: the speculative Type parse must fail cleanly and fall back
// to EmbeddedField instead of cascading a parse failure.
func TestStructFieldDisambiguationGenericEmbed(t *testing.T) {
	f := parse(t, "package p; type T = struct { Foo[int] }")
	td := f.Decls[0].(*ast.TypeDecl)
	alias := td.Specs[0].(*ast.AliasDecl)
	st := alias.Type.(*ast.StructType)
	if len(st.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(st.Fields))
	}
	emb, ok := st.Fields[0].(*ast.EmbeddedField)
	if !ok || emb.Type.Name.Name != "Foo" {
		t.Fatalf("field 0 = %+v (%T), want embedded Foo", st.Fields[0], st.Fields[0])
	}
	if len(emb.Type.TypeArgs) != 1 {
		t.Fatalf("got %d type args, want 1", len(emb.Type.TypeArgs))
	}
	if nt, ok := emb.Type.TypeArgs[0].(*ast.NamedType); !ok || nt.Name.Name != "int" {
		t.Errorf("type arg 0 = %+v, want NamedType int", emb.Type.TypeArgs[0])
	}
}

func TestImportSpecNeverHasBothDotAndLocalName(t *testing.T) {
	f := parse(t, `package p; import . "c"`)
	spec := f.Imports[0].Specs[0]
	if spec.Dot && spec.LocalName != "" {
		t.Error("ImportSpec has both Dot and LocalName set")
	}
}

func TestFuncDeclWithReceiverAndBody(t *testing.T) {
	f := parse(t, `package p

func (r *T) M(x int) (int, error) {
	return x, nil
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	if fd.Name != "M" {
		t.Fatalf("func name = %q, want M", fd.Name)
	}
	if fd.Receiver == nil || fd.Receiver.Names[0] != "r" {
		t.Fatalf("receiver = %+v", fd.Receiver)
	}
	if len(fd.Signature.Params) != 1 || len(fd.Signature.Results) != 2 {
		t.Fatalf("signature = %+v", fd.Signature)
	}
	if fd.Body == nil || len(fd.Body.Stmts) != 1 {
		t.Fatalf("body = %+v", fd.Body)
	}
	ret, ok := fd.Body.Stmts[0].(*ast.ReturnStatement)
	if !ok || len(ret.Results) != 2 {
		t.Fatalf("body statement = %+v (%T)", fd.Body.Stmts[0], fd.Body.Stmts[0])
	}
	if !ret.Terminates() {
		t.Error("a ReturnStatement must report Terminates() == true")
	}
}

func TestIfElseChainTerminates(t *testing.T) {
	f := parse(t, `package p

func F() int {
	if x {
		return 1
	} else if y {
		return 2
	} else {
		return 3
	}
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	ifStmt := fd.Body.Stmts[0].(*ast.IfStatement)
	if !ifStmt.Terminates() {
		t.Error("an if/else-if/else chain where every branch returns must terminate")
	}
}

func TestIfWithoutElseNeverTerminates(t *testing.T) {
	f := parse(t, `package p

func F() int {
	if x {
		return 1
	}
	return 2
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	ifStmt := fd.Body.Stmts[0].(*ast.IfStatement)
	if ifStmt.Terminates() {
		t.Error("an if statement with no else must never terminate")
	}
}

func TestForRangeStatement(t *testing.T) {
	f := parse(t, `package p

func F() {
	for k, v := range m {
		use(k, v)
	}
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	forStmt := fd.Body.Stmts[0].(*ast.ForStatement)
	if forStmt.Range == nil {
		t.Fatal("expected a RangeClause")
	}
	if !forStmt.Range.Define {
		t.Error("range clause should use ':=' here")
	}
	if forStmt.Range.Key == nil || forStmt.Range.Value == nil {
		t.Errorf("range clause = %+v", forStmt.Range)
	}
}

func TestThreeClauseForStatement(t *testing.T) {
	f := parse(t, `package p

func F() {
	for i := 0; i < 10; i++ {
		use(i)
	}
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	forStmt := fd.Body.Stmts[0].(*ast.ForStatement)
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Post == nil {
		t.Fatalf("got %+v, want all three clauses present", forStmt)
	}
	if _, ok := forStmt.Post.(*ast.IncDecStatement); !ok {
		t.Errorf("Post = %T, want *ast.IncDecStatement", forStmt.Post)
	}
}

func TestSwitchStatementDefaultRequiredToTerminate(t *testing.T) {
	f := parse(t, `package p

func F() int {
	switch x {
	case 1:
		return 1
	default:
		return 2
	}
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	sw := fd.Body.Stmts[0].(*ast.SwitchStatement)
	if !sw.Terminates() {
		t.Error("a switch where every case (including default) returns must terminate")
	}
}

func TestLabeledStatement(t *testing.T) {
	f := parse(t, `package p

func F() {
loop:
	for {
		break loop
	}
}
`)
	fd := f.Decls[0].(*ast.FuncDecl)
	labeled, ok := fd.Body.Stmts[0].(*ast.LabeledStatement)
	if !ok || labeled.Label != "loop" {
		t.Fatalf("got %+v (%T), want labeled statement \"loop\"", fd.Body.Stmts[0], fd.Body.Stmts[0])
	}
	forStmt, ok := labeled.Stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("labeled statement wraps %T, want *ast.ForStatement", labeled.Stmt)
	}
	brk, ok := forStmt.Body.Stmts[0].(*ast.BreakStatement)
	if !ok || brk.Label != "loop" {
		t.Errorf("got %+v (%T), want break loop", forStmt.Body.Stmts[0], forStmt.Body.Stmts[0])
	}
}

func TestCompositeLiteralWithNestedElidedType(t *testing.T) {
	f := parse(t, `package p; var x = []Point{{1, 2}, {3, 4}}`)
	vd := f.Decls[0].(*ast.VarDecl)
	pe := vd.Specs[0].Values[0].(*ast.PrimaryExpression)
	cl, ok := pe.Inner.(*ast.CompositeLiteral)
	if !ok {
		t.Fatalf("Inner = %T, want *ast.CompositeLiteral", pe.Inner)
	}
	if _, ok := cl.LiteralType.(*ast.SliceType); !ok {
		t.Fatalf("LiteralType = %T, want *ast.SliceType", cl.LiteralType)
	}
	if len(cl.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(cl.Elements))
	}
	for i, elem := range cl.Elements {
		nestedPE := elem.Value.(*ast.PrimaryExpression)
		nested, ok := nestedPE.Inner.(*ast.CompositeLiteral)
		if !ok {
			t.Fatalf("element %d = %T, want *ast.CompositeLiteral", i, nestedPE.Inner)
		}
		if nested.LiteralType != nil {
			t.Errorf("element %d nested literal type = %v, want nil (elided)", i, nested.LiteralType)
		}
		if len(nested.Elements) != 2 {
			t.Errorf("element %d has %d nested elements, want 2", i, len(nested.Elements))
		}
	}
}

func TestReceiveOnlyChannelType(t *testing.T) {
	f := parse(t, "package p; var x <-chan int")
	vd := f.Decls[0].(*ast.VarDecl)
	ch, ok := vd.Specs[0].Type.(*ast.ChannelType)
	if !ok {
		t.Fatalf("Type = %T, want *ast.ChannelType", vd.Specs[0].Type)
	}
	if ch.Dir != ast.RECV {
		t.Errorf("Dir = %v, want RECV", ch.Dir)
	}
	if _, ok := ch.Elem.(*ast.NamedType); !ok {
		t.Errorf("Elem = %T, want *ast.NamedType int, not left unset", ch.Elem)
	}
}

func TestEmptySliceHasNilLow(t *testing.T) {
	f := parse(t, "package p; var x = a[:]")
	vd := f.Decls[0].(*ast.VarDecl)
	pe := vd.Specs[0].Values[0].(*ast.PrimaryExpression)
	sl := pe.Outer[0].(*ast.Slice)
	if sl.Low != nil {
		t.Errorf("Low = %v, want nil", sl.Low)
	}
	if sl.High != nil || sl.ThreeForm {
		t.Errorf("High/ThreeForm = %v/%v, want both absent", sl.High, sl.ThreeForm)
	}
}
