// Package ast defines the abstract syntax tree produced by the parser: a
// tree of tagged-variant nodes, single ownership, no cycles, built
// bottom-up and handed back as an immutable value. Grounded on the
// teacher's marker-interface style (AstNode/ExprNode/StmtNode/TopStmtNode,
// a StartToken-derived position accessor) generalized to the Go-like
// grammar this parser accepts.
package ast

import "github.com/kievzenit/goop-frontend/internal/token"

// Node is implemented by every AST node; Pos identifies the node's
// leading token, generalizing the teacher's FirstToken().
type Node interface {
	Pos() token.Position
}

// TopLevelDecl is one of ConstDecl, VarDecl, TypeDecl, or FuncDecl (the
// last a supplement: function declarations are syntax, not semantic
// analysis, so they are not out of scope).
type TopLevelDecl interface {
	Node
	topLevelDeclNode()
}

// SourceFile is the parser's top-level result: a package clause, its
// ordered imports, and its ordered top-level declarations.
type SourceFile struct {
	Package *PackageClause
	Imports []*ImportDecl
	Decls   []TopLevelDecl
}

func (f *SourceFile) Pos() token.Position { return f.Package.Pos() }

// PackageClause is the mandatory "package Identifier" header.
type PackageClause struct {
	Keyword token.Position
	Name    string
}

func (p *PackageClause) Pos() token.Position { return p.Keyword }

// ImportDecl is one "import" declaration, holding one or more specs
// (more than one when the parenthesized grouped form was used).
type ImportDecl struct {
	Keyword token.Position
	Specs   []*ImportSpec
}

func (d *ImportDecl) Pos() token.Position { return d.Keyword }

// ImportSpec names one imported package. At most one of Dot and LocalName
// is set, per spec.
type ImportSpec struct {
	Dot       bool
	LocalName string // empty if no local name was given
	Path      string
	PosVal    token.Position
}

func (s *ImportSpec) Pos() token.Position { return s.PosVal }
