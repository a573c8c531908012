package ast

import "github.com/kievzenit/goop-frontend/internal/token"

// Type is one of NamedType or a TypeLit.
type Type interface {
	Node
	typeNode()
}

// TypeLit is a type written out structurally rather than by name.
type TypeLit interface {
	Type
	typeLitNode()
	innerNode()
}

// NamedType references a type by a possibly-qualified name, optionally
// instantiated with type arguments (generics).
type NamedType struct {
	Name     *IdentOrQualified
	TypeArgs []Type // nil if no bracketed type-argument list was present
}

func (t *NamedType) Pos() token.Position { return t.Name.Pos() }
func (t *NamedType) typeNode()           {}

// ParenType is a type written as "( Type )", used only where the grammar
// needs to disambiguate a type from a following expression.
type ParenType struct {
	LParen token.Position
	Inner  Type
}

func (t *ParenType) Pos() token.Position { return t.LParen }
func (t *ParenType) typeNode()           {}

// ArrayType is "'[' Expression ']' Type" — a fixed-length array. An
// empty-bracket form parses as SliceType instead.
type ArrayType struct {
	LBracket    token.Position
	Size        Expression
	ElementType Type
}

func (t *ArrayType) Pos() token.Position { return t.LBracket }
func (t *ArrayType) typeNode()           {}
func (t *ArrayType) typeLitNode()        {}
func (t *ArrayType) innerNode()           {}

// SliceType is "'[' ']' Type".
type SliceType struct {
	LBracket    token.Position
	ElementType Type
}

func (t *SliceType) Pos() token.Position { return t.LBracket }
func (t *SliceType) typeNode()           {}
func (t *SliceType) typeLitNode()        {}
func (t *SliceType) innerNode()           {}

// PointerType is "'*' Type".
type PointerType struct {
	Star token.Position
	Elem Type
}

func (t *PointerType) Pos() token.Position { return t.Star }
func (t *PointerType) typeNode()           {}
func (t *PointerType) typeLitNode()        {}
func (t *PointerType) innerNode()           {}

// MapType is "'map' '[' Type ']' Type".
type MapType struct {
	Keyword token.Position
	Key     Type
	Value   Type
}

func (t *MapType) Pos() token.Position { return t.Keyword }
func (t *MapType) typeNode()           {}
func (t *MapType) typeLitNode()        {}
func (t *MapType) innerNode()           {}

// ChannelDir is the direction of a ChannelType.
type ChannelDir int

const (
	SEND ChannelDir = iota
	RECV
	BIDI
)

// ChannelType is "'chan' Type", "'chan' '<-' Type", or "'<-' 'chan' Type".
type ChannelType struct {
	Keyword token.Position
	Dir     ChannelDir
	Elem    Type
}

func (t *ChannelType) Pos() token.Position { return t.Keyword }
func (t *ChannelType) typeNode()           {}
func (t *ChannelType) typeLitNode()        {}
func (t *ChannelType) innerNode()           {}

// StructType is "'struct' '{' { StructFieldDecl ';' } '}'".
type StructType struct {
	Keyword token.Position
	Fields  []StructFieldDecl
}

func (t *StructType) Pos() token.Position { return t.Keyword }
func (t *StructType) typeNode()           {}
func (t *StructType) typeLitNode()        {}
func (t *StructType) innerNode()           {}

// StructFieldDecl is one field inside a StructType: either an
// EmbeddedField or a Field, each with an optional string tag.
type StructFieldDecl interface {
	Node
	structFieldNode()
	Tag() *token.Token
}

// EmbeddedField is a struct field introduced by embedding a NamedType
// directly, optionally through a pointer.
type EmbeddedField struct {
	PosVal    token.Position
	Pointer   bool
	Type      *NamedType
	TagToken  *token.Token
}

func (f *EmbeddedField) Pos() token.Position { return f.PosVal }
func (f *EmbeddedField) structFieldNode()    {}
func (f *EmbeddedField) Tag() *token.Token   { return f.TagToken }

// Field is a struct field naming one or more identifiers of a shared
// Type.
type Field struct {
	PosVal     token.Position
	Names      []string
	Type       Type
	TagToken   *token.Token
}

func (f *Field) Pos() token.Position { return f.PosVal }
func (f *Field) structFieldNode()    {}
func (f *Field) Tag() *token.Token   { return f.TagToken }

// FunctionType is "'func' Signature".
type FunctionType struct {
	Keyword   token.Position
	Signature *Signature
}

func (t *FunctionType) Pos() token.Position { return t.Keyword }
func (t *FunctionType) typeNode()           {}
func (t *FunctionType) typeLitNode()        {}
func (t *FunctionType) innerNode()           {}

// Signature is a function's parameter and result lists, shared between
// FunctionType and FuncDecl.
type Signature struct {
	Params  []*ParamDecl
	Results []*ParamDecl // empty if the function returns nothing
}

func (s *Signature) Pos() token.Position {
	if len(s.Params) > 0 {
		return s.Params[0].Pos()
	}
	if len(s.Results) > 0 {
		return s.Results[0].Pos()
	}
	return token.Position{}
}

// ParamDecl is one parameter (or result) declaration; Names may be empty
// for an unnamed parameter/result.
type ParamDecl struct {
	PosVal   token.Position
	Names    []string
	Type     Type
	Variadic bool // true for the "..." form, legal only on the last param
}

func (p *ParamDecl) Pos() token.Position { return p.PosVal }

// InterfaceType is "'interface' '{' { MethodSpec ';' } '}'", parsed down
// to its method-set syntax; method bodies are never semantically
// resolved here.
type InterfaceType struct {
	Keyword token.Position
	Methods []*MethodSpec
}

func (t *InterfaceType) Pos() token.Position { return t.Keyword }
func (t *InterfaceType) typeNode()           {}
func (t *InterfaceType) typeLitNode()        {}
func (t *InterfaceType) innerNode()           {}

// MethodSpec is one method signature, or an embedded interface named by
// NamedType, inside an InterfaceType's body.
type MethodSpec struct {
	PosVal    token.Position
	Name      string     // empty for an embedded interface
	Signature *Signature // nil for an embedded interface
	Embedded  *NamedType // nil unless this spec embeds another interface
}

func (m *MethodSpec) Pos() token.Position { return m.PosVal }
