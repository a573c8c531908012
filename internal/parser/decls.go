package parser

import (
	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// parseConstDecl implements "ConstDecl = 'const' ( ConstSpec | '('
// { ConstSpec ';' } ')' )".
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	kw := p.expectKeyword(token.CONST)
	if _, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
		var specs []*ast.ConstSpec
		for !p.ts.PeekPunctuation(token.RPAREN) {
			specs = append(specs, p.parseConstSpec())
			p.expectSemicolon()
		}
		p.expectPunctuation(token.RPAREN)
		return &ast.ConstDecl{Keyword: kw.Pos, Specs: specs}
	}
	return &ast.ConstDecl{Keyword: kw.Pos, Specs: []*ast.ConstSpec{p.parseConstSpec()}}
}

// parseConstSpec implements "ConstSpec = IdentifierList [ [ Type ] '='
// ExpressionList ]" — identifier-only when no '=' follows and the next
// token is a statement terminator or group closer.
func (p *Parser) parseConstSpec() *ast.ConstSpec {
	pos := p.peek().Pos
	names := p.parseIdentifierList()
	spec := &ast.ConstSpec{PosVal: pos, Names: names}

	if p.ts.PeekPunctuation(token.SEMICOLON, token.RPAREN) {
		return spec
	}

	if !p.ts.PeekPunctuation(token.ASSIGN) {
		spec.Type = p.parseType()
	}
	p.expectPunctuation(token.ASSIGN)
	spec.Values = p.parseExpressionList()
	return spec
}

// parseVarDecl implements "VarDecl = 'var' ( VarSpec | '(' { VarSpec ';' } ')' )".
func (p *Parser) parseVarDecl() *ast.VarDecl {
	kw := p.expectKeyword(token.VAR)
	if _, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
		var specs []*ast.VarSpec
		for !p.ts.PeekPunctuation(token.RPAREN) {
			specs = append(specs, p.parseVarSpec())
			p.expectSemicolon()
		}
		p.expectPunctuation(token.RPAREN)
		return &ast.VarDecl{Keyword: kw.Pos, Specs: specs}
	}
	return &ast.VarDecl{Keyword: kw.Pos, Specs: []*ast.VarSpec{p.parseVarSpec()}}
}

// parseVarSpec implements "VarSpec = IdentifierList ( Type [ '='
// ExpressionList ] | '=' ExpressionList )".
func (p *Parser) parseVarSpec() *ast.VarSpec {
	pos := p.peek().Pos
	names := p.parseIdentifierList()
	spec := &ast.VarSpec{PosVal: pos, Names: names}

	if _, ok := p.ts.MatchPunctuation(token.ASSIGN); ok {
		spec.Values = p.parseExpressionList()
		return spec
	}
	spec.Type = p.parseType()
	if _, ok := p.ts.MatchPunctuation(token.ASSIGN); ok {
		spec.Values = p.parseExpressionList()
	}
	return spec
}

// parseTypeDecl implements "TypeDecl = 'type' ( TypeSpec | '('
// { TypeSpec ';' } ')' )".
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	kw := p.expectKeyword(token.TYPE)
	if _, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
		var specs []ast.TypeSpec
		for !p.ts.PeekPunctuation(token.RPAREN) {
			specs = append(specs, p.parseTypeSpec())
			p.expectSemicolon()
		}
		p.expectPunctuation(token.RPAREN)
		return &ast.TypeDecl{Keyword: kw.Pos, Specs: specs}
	}
	return &ast.TypeDecl{Keyword: kw.Pos, Specs: []ast.TypeSpec{p.parseTypeSpec()}}
}

// parseTypeSpec implements "TypeSpec = AliasDecl | TypeDef"; AliasDecl =
// "Identifier '=' Type"; TypeDef = "Identifier [ TypeParams ] Type" (the
// Open Question resolved per SPEC_FULL: reuses the generic
// type-parameter list grammar).
func (p *Parser) parseTypeSpec() ast.TypeSpec {
	name := p.expectIdentifier()

	if _, ok := p.ts.MatchPunctuation(token.ASSIGN); ok {
		return &ast.AliasDecl{PosVal: name.Pos, Name: name.Name, Type: p.parseType()}
	}

	var typeParams []*ast.ParamDecl
	if mark := p.mark(); p.ts.PeekPunctuation(token.LBRACKET) {
		if tp, ok := p.tryTypeParams(); ok {
			typeParams = tp
		} else {
			p.reset(mark)
		}
	}

	return &ast.TypeDef{PosVal: name.Pos, Name: name.Name, TypeParams: typeParams, Type: p.parseType()}
}

// tryTypeParams speculatively parses a bracketed type-parameter list
// "'[' Identifier Type { ',' Identifier Type } ']'" used by TypeDef and
// FuncDecl, distinct from NamedType's type-argument list (which holds
// Types, not parameter declarations). Returns false, restoring nothing
// itself (the caller owns the mark), if what follows '[' doesn't fit.
func (p *Parser) tryTypeParams() ([]*ast.ParamDecl, bool) {
	if _, ok := p.ts.MatchPunctuation(token.LBRACKET); !ok {
		return nil, false
	}
	var params []*ast.ParamDecl
	for {
		nameTok, ok := p.ts.MatchIdentifier()
		if !ok {
			return nil, false
		}
		names := []string{nameTok.Name}
		for {
			if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
				break
			}
			n, ok := p.ts.MatchIdentifier()
			if !ok {
				return nil, false
			}
			names = append(names, n.Name)
		}
		typ, ok := p.tryType()
		if !ok {
			return nil, false
		}
		params = append(params, &ast.ParamDecl{PosVal: nameTok.Pos, Names: names, Type: typ})
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
	}
	if _, ok := p.ts.MatchPunctuation(token.RBRACKET); !ok {
		return nil, false
	}
	return params, true
}

// parseIdentifierList implements "IdentifierList = Identifier { ','
// Identifier }".
func (p *Parser) parseIdentifierList() []string {
	first := p.expectIdentifier()
	names := []string{first.Name}
	for {
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
		names = append(names, p.expectIdentifier().Name)
	}
	return names
}

// parseFuncDecl implements a function or method declaration, a
// supplement grounded on original_source's parse_function_decl:
// "'func' [Receiver] Identifier [TypeParams] Signature [Block]".
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	kw := p.expectKeyword(token.FUNC)
	d := &ast.FuncDecl{Keyword: kw.Pos}

	if p.ts.PeekPunctuation(token.LPAREN) {
		d.Receiver = p.parseReceiver()
	}

	name := p.expectIdentifier()
	d.Name = name.Name

	if mark := p.mark(); p.ts.PeekPunctuation(token.LBRACKET) {
		if tp, ok := p.tryTypeParams(); ok {
			d.TypeParams = tp
		} else {
			p.reset(mark)
		}
	}

	d.Signature = p.parseSignature()

	if p.ts.PeekPunctuation(token.LBRACE) {
		d.Body = p.parseBlockStatement()
	}
	return d
}

// parseReceiver implements "'(' [Identifier] ['*'] NamedType ')'".
func (p *Parser) parseReceiver() *ast.ParamDecl {
	lparen := p.expectPunctuation(token.LPAREN)
	decl := &ast.ParamDecl{PosVal: lparen.Pos}

	mark := p.mark()
	if name, ok := p.ts.MatchIdentifier(); ok {
		if typ, ok := p.tryType(); ok {
			decl.Names = []string{name.Name}
			decl.Type = typ
			p.expectPunctuation(token.RPAREN)
			return decl
		}
		p.reset(mark)
	}

	decl.Type = p.parseType()
	p.expectPunctuation(token.RPAREN)
	return decl
}

// parseSignature implements "Signature = '(' [ParamList] ')' [Result]".
func (p *Parser) parseSignature() *ast.Signature {
	p.expectPunctuation(token.LPAREN)
	sig := &ast.Signature{}
	for !p.ts.PeekPunctuation(token.RPAREN) {
		sig.Params = append(sig.Params, p.parseParamDecl())
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
	}
	p.expectPunctuation(token.RPAREN)

	if p.ts.PeekPunctuation(token.LPAREN) {
		p.expectPunctuation(token.LPAREN)
		for !p.ts.PeekPunctuation(token.RPAREN) {
			sig.Results = append(sig.Results, p.parseParamDecl())
			if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
				break
			}
		}
		p.expectPunctuation(token.RPAREN)
	} else if typ, ok := p.tryType(); ok {
		sig.Results = []*ast.ParamDecl{{PosVal: typ.Pos(), Type: typ}}
	}
	return sig
}

// parseParamDecl implements one parameter: "[IdentifierList] ['...'] Type",
// where the identifier list is optional (unnamed parameters are legal).
func (p *Parser) parseParamDecl() *ast.ParamDecl {
	pos := p.peek().Pos
	decl := &ast.ParamDecl{PosVal: pos}

	mark := p.mark()
	if name, ok := p.ts.MatchIdentifier(); ok {
		names := []string{name.Name}
		for {
			if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
				break
			}
			n, ok := p.ts.MatchIdentifier()
			if !ok {
				p.reset(mark)
				names = nil
				break
			}
			names = append(names, n.Name)
		}
		if names != nil {
			if _, ok := p.ts.MatchPunctuation(token.ELLIPSIS); ok {
				decl.Variadic = true
			}
			if typ, ok := p.tryType(); ok {
				decl.Names = names
				decl.Type = typ
				return decl
			}
			p.reset(mark)
		}
	}

	if _, ok := p.ts.MatchPunctuation(token.ELLIPSIS); ok {
		decl.Variadic = true
	}
	decl.Type = p.parseType()
	return decl
}
