package ast

import "github.com/kievzenit/goop-frontend/internal/token"

// ConstDecl is "'const' ( ConstSpec | '(' { ConstSpec ';' } ')' )".
type ConstDecl struct {
	Keyword token.Position
	Specs   []*ConstSpec
}

func (d *ConstDecl) Pos() token.Position { return d.Keyword }
func (d *ConstDecl) topLevelDeclNode()   {}

// ConstSpec is "IdentifierList [ [ Type ] '=' ExpressionList ]"; Values
// is nil for the identifier-only form legal inside a grouped const block.
type ConstSpec struct {
	PosVal token.Position
	Names  []string
	Type   Type // nil if omitted
	Values ExpressionList
}

func (s *ConstSpec) Pos() token.Position { return s.PosVal }

// VarDecl is "'var' ( VarSpec | '(' { VarSpec ';' } ')' )".
type VarDecl struct {
	Keyword token.Position
	Specs   []*VarSpec
}

func (d *VarDecl) Pos() token.Position { return d.Keyword }
func (d *VarDecl) topLevelDeclNode()   {}

// VarSpec is "IdentifierList ( Type [ '=' ExpressionList ] | '=' ExpressionList )".
type VarSpec struct {
	PosVal token.Position
	Names  []string
	Type   Type // nil if the spec has no explicit type
	Values ExpressionList
}

func (s *VarSpec) Pos() token.Position { return s.PosVal }

// TypeDecl is "'type' ( TypeSpec | '(' { TypeSpec ';' } ')' )".
type TypeDecl struct {
	Keyword token.Position
	Specs   []TypeSpec
}

func (d *TypeDecl) Pos() token.Position { return d.Keyword }
func (d *TypeDecl) topLevelDeclNode()   {}

// TypeSpec is either an AliasDecl or a TypeDef.
type TypeSpec interface {
	Node
	typeSpecNode()
}

// AliasDecl is "Identifier '=' Type".
type AliasDecl struct {
	PosVal token.Position
	Name   string
	Type   Type
}

func (d *AliasDecl) Pos() token.Position { return d.PosVal }
func (d *AliasDecl) typeSpecNode()       {}

// TypeDef is "Identifier [ TypeParams ] Type" — the non-alias form,
// extended here with the bracketed type-parameter list NamedType's own
// generic-instantiation grammar already needs.
type TypeDef struct {
	PosVal     token.Position
	Name       string
	TypeParams []*ParamDecl // empty if the type introduces no parameters
	Type       Type
}

func (d *TypeDef) Pos() token.Position { return d.PosVal }
func (d *TypeDef) typeSpecNode()       {}

// FuncDecl is a function or method declaration: a supplement to
// spec.md's TopLevelDecl union, since function syntax (as opposed to
// semantic analysis of function bodies) is not named by any Non-goal.
type FuncDecl struct {
	Keyword    token.Position
	Receiver   *ParamDecl // nil for a plain function
	Name       string
	TypeParams []*ParamDecl
	Signature  *Signature
	Body       *BlockStatement // nil for a declaration with no body
}

func (d *FuncDecl) Pos() token.Position { return d.Keyword }
func (d *FuncDecl) topLevelDeclNode()   {}
