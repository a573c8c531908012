package ast

import "github.com/kievzenit/goop-frontend/internal/token"

// Expression is an abstract family: concretely UnaryExpression,
// BinaryExpression, or PrimaryExpression (which every expression
// bottoms out at).
type Expression interface {
	Node
	exprNode()
}

// ExpressionList is an ordered sequence of expressions; a zero-length
// list is permitted syntactically in contexts that allow it.
type ExpressionList []Expression

// IdentOrQualified is either a bare Identifier or a package-qualified
// "Identifier '.' Identifier".
type IdentOrQualified struct {
	PosVal    token.Position
	Package   string // empty unless qualified
	Name      string
}

func (i *IdentOrQualified) Pos() token.Position { return i.PosVal }

// Qualified reports whether this is a package-qualified name.
func (i *IdentOrQualified) Qualified() bool { return i.Package != "" }

// UnaryExpression is "{ unary_op } PrimaryExpression", right-associative.
type UnaryExpression struct {
	Op       token.PunctuationKind
	OpPos    token.Position
	Operand  Expression // another UnaryExpression, or the terminal PrimaryExpression
}

func (e *UnaryExpression) Pos() token.Position { return e.OpPos }
func (e *UnaryExpression) exprNode()           {}

// BinaryExpression is one step of the Pratt-climbed binary-operator tree.
// Level is the operator's precedence level (1..5) from the table the
// climber consults.
type BinaryExpression struct {
	Left  Expression
	Op    token.PunctuationKind
	OpPos token.Position
	Level int
	Right Expression
}

func (e *BinaryExpression) Pos() token.Position { return e.Left.Pos() }
func (e *BinaryExpression) exprNode()           {}

// PrimaryExpression is an inner operand plus an ordered list of postfix
// operations.
type PrimaryExpression struct {
	Inner Inner
	Outer []OuterOp
}

func (e *PrimaryExpression) Pos() token.Position { return e.Inner.Pos() }
func (e *PrimaryExpression) exprNode()           {}

// Inner is one of the alternatives tried, in order, at the start of a
// PrimaryExpression.
type Inner interface {
	Node
	innerNode()
}

// NamedOperand wraps an IdentOrQualified immediately followed by a
// bracketed type-argument list: generic instantiation, distinguished
// from Index by the absence of any Outer form (S4).
type NamedOperand struct {
	Name     *IdentOrQualified
	TypeArgs []Type
}

func (n *NamedOperand) Pos() token.Position { return n.Name.Pos() }
func (n *NamedOperand) innerNode()          {}

func (i *IdentOrQualified) innerNode() {}

// ParenExpression is "'(' Expression ')'".
type ParenExpression struct {
	LParen token.Position
	Inner  Expression
}

func (p *ParenExpression) Pos() token.Position { return p.LParen }
func (p *ParenExpression) innerNode()          {}

// BasicLiteral wraps a single int, float, imaginary, rune, or string
// literal token as an Inner.
type BasicLiteral struct {
	Token token.Token
}

func (b *BasicLiteral) Pos() token.Position { return b.Token.Pos }
func (b *BasicLiteral) innerNode()          {}

// CompositeLiteral is "LiteralType '{' [ElementList] '}'".
type CompositeLiteral struct {
	LiteralType Type
	LBrace      token.Position
	Elements    []CompositeElement
}

func (c *CompositeLiteral) Pos() token.Position { return c.LBrace }
func (c *CompositeLiteral) innerNode()          {}

// CompositeElement is one "[Key ':'] Value" entry in a composite
// literal's element list. Key is nil when no key was given. Value may
// itself be a nested CompositeLiteral with its LiteralType elided.
type CompositeElement struct {
	Key   Expression // nil if unkeyed
	Value Expression
}

// FunctionLiteral is "'func' Signature Block".
type FunctionLiteral struct {
	Keyword   token.Position
	Signature *Signature
	Body      *BlockStatement
}

func (f *FunctionLiteral) Pos() token.Position { return f.Keyword }
func (f *FunctionLiteral) innerNode()          {}

// OuterOp is one postfix operation following a PrimaryExpression's Inner.
type OuterOp interface {
	Pos() token.Position
}

// Selector is "'.' Identifier".
type Selector struct {
	Dot  token.Position
	Name string
}

func (s *Selector) Pos() token.Position { return s.Dot }

// Index is "'[' Expression ']'".
type Index struct {
	LBracket token.Position
	Value    Expression
}

func (x *Index) Pos() token.Position { return x.LBracket }

// Slice is "'[' [Low] ':' [High] [':' Max] ']'" — the two- and
// three-index forms. Low/High/Max are nil when omitted; a nil Low means
// "from the start" (spec.md's empty-slice decision).
type Slice struct {
	LBracket  token.Position
	Low       Expression
	High      Expression
	Max       Expression // nil unless the three-index form was used
	ThreeForm bool
}

func (s *Slice) Pos() token.Position { return s.LBracket }

// TypeAssertion is "'.' '(' Type ')'".
type TypeAssertion struct {
	Dot  token.Position
	Type Type
}

func (a *TypeAssertion) Pos() token.Position { return a.Dot }

// Arguments is "'(' ExpressionList [ '...' ] ')'".
type Arguments struct {
	LParen  token.Position
	Args    ExpressionList
	Splat   bool
}

func (a *Arguments) Pos() token.Position { return a.LParen }
