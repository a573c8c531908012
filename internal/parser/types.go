package parser

import (
	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// parseType requires a Type to be present, failing hard (committed) if
// not. Used everywhere the grammar has already committed to a type
// position (e.g. a VarSpec with no '=', or a MapType's key).
func (p *Parser) parseType() ast.Type {
	t, ok := p.tryType()
	if !ok {
		p.fail("expected a type, got %s", describe(p.peek()))
	}
	return t
}

// tryType implements "Type = NamedType | TypeLit | '(' Type ')'".
func (p *Parser) tryType() (ast.Type, bool) {
	if lparen, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
		inner := p.parseType()
		p.expectPunctuation(token.RPAREN)
		return &ast.ParenType{LParen: lparen.Pos, Inner: inner}, true
	}
	if lit, ok := p.tryTypeLit(); ok {
		return lit, true
	}
	return p.tryNamedType()
}

// tryNamedType implements "NamedType = IdentOrQualified [ '[' TypeList
// ']' ]".
func (p *Parser) tryNamedType() (*ast.NamedType, bool) {
	ident, ok := p.tryIdentOrQualified()
	if !ok {
		return nil, false
	}
	nt := &ast.NamedType{Name: ident}
	mark := p.mark()
	if _, ok := p.ts.MatchPunctuation(token.LBRACKET); ok {
		args, ok := p.tryTypeListClose()
		if !ok {
			p.reset(mark)
			return nt, true
		}
		nt.TypeArgs = args
	}
	return nt, true
}

func (p *Parser) tryIdentOrQualified() (*ast.IdentOrQualified, bool) {
	first, ok := p.ts.MatchIdentifier()
	if !ok {
		return nil, false
	}
	mark := p.mark()
	if _, ok := p.ts.MatchPunctuation(token.PERIOD); ok {
		if second, ok := p.ts.MatchIdentifier(); ok {
			return &ast.IdentOrQualified{PosVal: first.Pos, Package: first.Name, Name: second.Name}, true
		}
		p.reset(mark)
	}
	return &ast.IdentOrQualified{PosVal: first.Pos, Name: first.Name}, true
}

// tryTypeListClose parses "TypeList ']'" — the caller has already
// consumed the opening '['. Used both by NamedType's type arguments and
// by NamedOperand in expression position.
func (p *Parser) tryTypeListClose() ([]ast.Type, bool) {
	var types []ast.Type
	first, ok := p.tryType()
	if !ok {
		return nil, false
	}
	types = append(types, first)
	for {
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
		t, ok := p.tryType()
		if !ok {
			return nil, false
		}
		types = append(types, t)
	}
	if _, ok := p.ts.MatchPunctuation(token.RBRACKET); !ok {
		return nil, false
	}
	return types, true
}

// tryTypeLit dispatches on the leading token per spec.md §4.4.3.
func (p *Parser) tryTypeLit() (ast.TypeLit, bool) {
	switch {
	case p.ts.PeekPunctuation(token.ASTERISK):
		star := p.mustMatchPunctuation(token.ASTERISK)
		return &ast.PointerType{Star: star.Pos, Elem: p.parseType()}, true

	case p.ts.PeekPunctuation(token.LBRACKET):
		return p.parseArrayOrSliceType(), true

	case p.ts.PeekKeyword(token.MAP):
		kw := p.mustMatchKeyword(token.MAP)
		p.expectPunctuation(token.LBRACKET)
		key := p.parseType()
		p.expectPunctuation(token.RBRACKET)
		return &ast.MapType{Keyword: kw.Pos, Key: key, Value: p.parseType()}, true

	case p.ts.PeekKeyword(token.CHAN):
		kw := p.mustMatchKeyword(token.CHAN)
		dir := ast.BIDI
		if _, ok := p.ts.MatchPunctuation(token.ARROW); ok {
			dir = ast.SEND
		}
		return &ast.ChannelType{Keyword: kw.Pos, Dir: dir, Elem: p.parseType()}, true

	case p.ts.PeekPunctuation(token.ARROW):
		mark := p.mark()
		arrow := p.mustMatchPunctuation(token.ARROW)
		if kw, ok := p.ts.MatchKeyword(token.CHAN); ok {
			return &ast.ChannelType{Keyword: kw.Pos, Dir: ast.RECV, Elem: p.parseType()}, true
		}
		p.reset(mark)
		_ = arrow
		return nil, false

	case p.ts.PeekKeyword(token.STRUCT):
		return p.parseStructType(), true

	case p.ts.PeekKeyword(token.FUNC):
		kw := p.mustMatchKeyword(token.FUNC)
		return &ast.FunctionType{Keyword: kw.Pos, Signature: p.parseSignature()}, true

	case p.ts.PeekKeyword(token.INTERFACE):
		return p.parseInterfaceType(), true

	default:
		return nil, false
	}
}

func (p *Parser) mustMatchPunctuation(k token.PunctuationKind) token.Token {
	t, _ := p.ts.MatchPunctuation(k)
	return t
}

func (p *Parser) mustMatchKeyword(k token.KeywordKind) token.Token {
	t, _ := p.ts.MatchKeyword(k)
	return t
}

// parseArrayOrSliceType implements "'[' [ Expression ] ']' Type": an
// empty bracket pair is a SliceType, a length expression present is an
// ArrayType (SPEC_FULL's resolution of spec.md's deferred Open Question).
func (p *Parser) parseArrayOrSliceType() ast.TypeLit {
	lbracket := p.expectPunctuation(token.LBRACKET)
	if _, ok := p.ts.MatchPunctuation(token.RBRACKET); ok {
		return &ast.SliceType{LBracket: lbracket.Pos, ElementType: p.parseType()}
	}
	size := p.parseExpression()
	p.expectPunctuation(token.RBRACKET)
	return &ast.ArrayType{LBracket: lbracket.Pos, Size: size, ElementType: p.parseType()}
}

// parseStructType implements the StructType body and its per-field
// disambiguation rule from spec.md §4.4.3. The ';' after the last field
// may be omitted before the closing '}'.
func (p *Parser) parseStructType() *ast.StructType {
	kw := p.mustMatchKeyword(token.STRUCT)
	p.expectPunctuation(token.LBRACE)
	var fields []ast.StructFieldDecl
	for !p.ts.PeekPunctuation(token.RBRACE) {
		fields = append(fields, p.parseStructFieldDecl())
		if !p.ts.PeekPunctuation(token.RBRACE) {
			p.expectSemicolon()
		}
	}
	p.expectPunctuation(token.RBRACE)
	return &ast.StructType{Keyword: kw.Pos, Fields: fields}
}

// parseStructFieldDecl implements: "'*' NamedType" (embedded pointer),
// "NamedType" (embedded value), or "IdentifierList Type" (named fields),
// disambiguated per spec.md §4.4.3: read identifiers first; more than one
// forces a named field; exactly one tries a Type and falls back to
// reinterpreting the identifier as an embedded NamedType on failure.
func (p *Parser) parseStructFieldDecl() ast.StructFieldDecl {
	pos := p.peek().Pos

	if star, ok := p.ts.MatchPunctuation(token.ASTERISK); ok {
		nt, ok := p.tryNamedType()
		if !ok {
			p.fail("expected a named type after '*' in embedded field")
		}
		return &ast.EmbeddedField{PosVal: star.Pos, Pointer: true, Type: nt, TagToken: p.tryFieldTag()}
	}

	first := p.expectIdentifier()
	names := []string{first.Name}
	for {
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
		names = append(names, p.expectIdentifier().Name)
	}

	if len(names) > 1 {
		typ := p.parseType()
		return &ast.Field{PosVal: pos, Names: names, Type: typ, TagToken: p.tryFieldTag()}
	}

	if typ, ok := attempt(p, func() ast.Type { return p.parseType() }); ok {
		return &ast.Field{PosVal: pos, Names: names, Type: typ, TagToken: p.tryFieldTag()}
	}

	nt := &ast.NamedType{Name: &ast.IdentOrQualified{PosVal: first.Pos, Name: first.Name}}
	if mark2 := p.mark(); p.ts.PeekPunctuation(token.LBRACKET) {
		if args, ok := p.tryTypeArgsFromBracket(); ok {
			nt.TypeArgs = args
		} else {
			p.reset(mark2)
		}
	}
	return &ast.EmbeddedField{PosVal: pos, Type: nt, TagToken: p.tryFieldTag()}
}

func (p *Parser) tryTypeArgsFromBracket() ([]ast.Type, bool) {
	if _, ok := p.ts.MatchPunctuation(token.LBRACKET); !ok {
		return nil, false
	}
	return p.tryTypeListClose()
}

func (p *Parser) tryFieldTag() *token.Token {
	t, ok := p.ts.Match(func(t token.Token) bool { return t.Kind == token.StringLiteral })
	if !ok {
		return nil
	}
	return &t
}

// parseInterfaceType implements "'interface' '{' { MethodSpec ';' } '}'".
func (p *Parser) parseInterfaceType() *ast.InterfaceType {
	kw := p.mustMatchKeyword(token.INTERFACE)
	p.expectPunctuation(token.LBRACE)
	var methods []*ast.MethodSpec
	for !p.ts.PeekPunctuation(token.RBRACE) {
		methods = append(methods, p.parseMethodSpec())
		p.expectSemicolon()
	}
	p.expectPunctuation(token.RBRACE)
	return &ast.InterfaceType{Keyword: kw.Pos, Methods: methods}
}

// parseMethodSpec implements "Identifier Signature" (a method) or
// "NamedType" (an embedded interface).
func (p *Parser) parseMethodSpec() *ast.MethodSpec {
	pos := p.peek().Pos
	name := p.expectIdentifier()
	if p.ts.PeekPunctuation(token.LPAREN) {
		return &ast.MethodSpec{PosVal: pos, Name: name.Name, Signature: p.parseSignature()}
	}
	nt := &ast.NamedType{Name: &ast.IdentOrQualified{PosVal: name.Pos, Name: name.Name}}
	return &ast.MethodSpec{PosVal: pos, Embedded: nt}
}
