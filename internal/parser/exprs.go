package parser

import (
	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// binaryLevel is the precedence table from spec.md §4.4.4: higher level
// binds tighter, every operator left-associative.
var binaryLevel = map[token.PunctuationKind]int{
	token.ASTERISK: 5, token.SLASH: 5, token.PERCENT: 5, token.SHL: 5, token.SHR: 5, token.AMP: 5, token.AND_NOT: 5,
	token.PLUS: 4, token.MINUS: 4, token.PIPE: 4, token.CARET: 4,
	token.EQ: 3, token.NEQ: 3, token.LT: 3, token.LEQ: 3, token.GT: 3, token.GEQ: 3,
	token.LAND: 2,
	token.LOR:  1,
}

var unaryOps = map[token.PunctuationKind]bool{
	token.PLUS: true, token.MINUS: true, token.NOT: true, token.CARET: true,
	token.ASTERISK: true, token.AMP: true, token.ARROW: true,
}

// parseExpression is the grammar's single expression entry point: the
// Pratt climber called with minimum binding power zero.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements the climber: track left_bp = 2*level,
// right_bp = 2*level+1, recursing with right_bp for the right operand and
// breaking when the next operator's left_bp is below minBP. Grounded on
// the teacher's bindingPowerLookup + parseBinaryExpr, already structured
// this way; only the precedence table changes here.
func (p *Parser) parseBinaryExpr(minBP int) ast.Expression {
	left := p.parseUnaryExpr()
	for {
		t := p.peek()
		if t.Kind != token.Punctuation {
			break
		}
		level, ok := binaryLevel[t.PunctuationKind]
		if !ok {
			break
		}
		leftBP := 2 * level
		if leftBP < minBP {
			break
		}
		p.ts.Read()
		right := p.parseBinaryExpr(2*level + 1)
		left = &ast.BinaryExpression{Left: left, Op: t.PunctuationKind, OpPos: t.Pos, Level: level, Right: right}
	}
	return left
}

// parseUnaryExpr implements "UnaryExpression = { unary_op }
// PrimaryExpression", right-associative via direct recursion.
func (p *Parser) parseUnaryExpr() ast.Expression {
	t := p.peek()
	if t.Kind == token.Punctuation && unaryOps[t.PunctuationKind] {
		p.ts.Read()
		return &ast.UnaryExpression{Op: t.PunctuationKind, OpPos: t.Pos, Operand: p.parseUnaryExpr()}
	}
	return p.parsePrimaryExpr()
}

// parsePrimaryExpr implements "PrimaryExpression = Inner { Outer }".
func (p *Parser) parsePrimaryExpr() ast.Expression {
	pe := &ast.PrimaryExpression{Inner: p.parseInner()}
	for {
		op, ok := p.tryOuterOp()
		if !ok {
			break
		}
		pe.Outer = append(pe.Outer, op)
	}
	return pe
}

// parseInner tries the Inner alternatives: a type, composite, or function
// literal first, then a parenthesized expression, a basic literal, and
// last an IdentOrQualified (a NamedOperand when a type-argument list
// follows it).
func (p *Parser) parseInner() ast.Inner {
	if lit, ok := p.tryExprTypeLit(); ok {
		return lit
	}
	if paren, ok := p.tryParenExpression(); ok {
		return paren
	}
	if lit, ok := p.tryBasicLiteral(); ok {
		return lit
	}
	if ident, ok := p.tryIdentOrQualified(); ok {
		mark := p.mark()
		if _, ok := p.ts.MatchPunctuation(token.LBRACKET); ok {
			if args, ok := p.tryTypeListClose(); ok {
				return &ast.NamedOperand{Name: ident, TypeArgs: args}
			}
			p.reset(mark)
		}
		return ident
	}
	p.fail("expected an operand, got %s", describe(p.peek()))
	panic("unreachable")
}

// tryExprTypeLit implements the over-acceptance ambiguity #3 from
// spec.md §4.4.5: a type literal (or function literal) is admitted as
// Inner, with an immediately following '{' making it a CompositeLiteral
// or FunctionLiteral instead of a bare type reference used for
// conversion.
func (p *Parser) tryExprTypeLit() (ast.Inner, bool) {
	if p.ts.PeekKeyword(token.FUNC) {
		kw := p.mustMatchKeyword(token.FUNC)
		sig := p.parseSignature()
		if p.ts.PeekPunctuation(token.LBRACE) {
			return &ast.FunctionLiteral{Keyword: kw.Pos, Signature: sig, Body: p.parseBlockStatement()}, true
		}
		return &ast.FunctionType{Keyword: kw.Pos, Signature: sig}, true
	}
	lit, ok := p.tryTypeLit()
	if !ok {
		return nil, false
	}
	if p.ts.PeekPunctuation(token.LBRACE) {
		return p.parseCompositeLiteralBody(lit), true
	}
	return lit, true
}

func (p *Parser) tryParenExpression() (ast.Inner, bool) {
	lparen, ok := p.ts.MatchPunctuation(token.LPAREN)
	if !ok {
		return nil, false
	}
	inner := p.parseExpression()
	p.expectPunctuation(token.RPAREN)
	return &ast.ParenExpression{LParen: lparen.Pos, Inner: inner}, true
}

func (p *Parser) tryBasicLiteral() (ast.Inner, bool) {
	t, ok := p.ts.Match(func(t token.Token) bool {
		switch t.Kind {
		case token.IntLiteral, token.FloatLiteral, token.ImaginaryLiteral, token.RuneLiteral, token.StringLiteral:
			return true
		}
		return false
	})
	if !ok {
		return nil, false
	}
	return &ast.BasicLiteral{Token: t}, true
}

// parseCompositeLiteralBody implements "'{' [ElementList] '}'" given an
// already-parsed (possibly nil, for an elided nested type) LiteralType.
func (p *Parser) parseCompositeLiteralBody(literalType ast.Type) *ast.CompositeLiteral {
	lbrace := p.expectPunctuation(token.LBRACE)
	var elems []ast.CompositeElement
	for !p.ts.PeekPunctuation(token.RBRACE) {
		elems = append(elems, p.parseCompositeElement())
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
	}
	p.expectPunctuation(token.RBRACE)
	return &ast.CompositeLiteral{LiteralType: literalType, LBrace: lbrace.Pos, Elements: elems}
}

func (p *Parser) parseCompositeElement() ast.CompositeElement {
	val := p.parseCompositeValue()
	if _, ok := p.ts.MatchPunctuation(token.COLON); ok {
		return ast.CompositeElement{Key: val, Value: p.parseCompositeValue()}
	}
	return ast.CompositeElement{Value: val}
}

// parseCompositeValue handles the nested-literal elision: "{...}"
// directly, with no LiteralType, inside an enclosing composite literal.
func (p *Parser) parseCompositeValue() ast.Expression {
	if p.ts.PeekPunctuation(token.LBRACE) {
		return &ast.PrimaryExpression{Inner: p.parseCompositeLiteralBody(nil)}
	}
	return p.parseExpression()
}

// tryOuterOp implements the postfix dispatch from spec.md §4.4.4.
func (p *Parser) tryOuterOp() (ast.OuterOp, bool) {
	if dot, ok := p.ts.MatchPunctuation(token.PERIOD); ok {
		if _, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
			typ := p.parseType()
			p.expectPunctuation(token.RPAREN)
			return &ast.TypeAssertion{Dot: dot.Pos, Type: typ}, true
		}
		name := p.expectIdentifier()
		return &ast.Selector{Dot: dot.Pos, Name: name.Name}, true
	}
	if lbracket, ok := p.ts.MatchPunctuation(token.LBRACKET); ok {
		return p.parseIndexOrSlice(lbracket), true
	}
	if lparen, ok := p.ts.MatchPunctuation(token.LPAREN); ok {
		return p.parseArguments(lparen), true
	}
	return nil, false
}

// parseIndexOrSlice implements Index and both Slice forms, with the
// opening '[' already consumed.
func (p *Parser) parseIndexOrSlice(lbracket token.Token) ast.OuterOp {
	if _, ok := p.ts.MatchPunctuation(token.COLON); ok {
		return p.finishSlice(lbracket, nil)
	}
	expr := p.parseExpression()
	if _, ok := p.ts.MatchPunctuation(token.COLON); ok {
		return p.finishSlice(lbracket, expr)
	}
	p.ts.MatchPunctuation(token.COMMA) // tolerated trailing comma
	p.expectPunctuation(token.RBRACKET)
	return &ast.Index{LBracket: lbracket.Pos, Value: expr}
}

// finishSlice implements the tail of both Slice forms once Low and the
// first ':' are already consumed (low may be nil — the empty-slice
// Open Question's resolution: nil Low means "from the start").
func (p *Parser) finishSlice(lbracket token.Token, low ast.Expression) *ast.Slice {
	s := &ast.Slice{LBracket: lbracket.Pos, Low: low}
	if !p.ts.PeekPunctuation(token.RBRACKET, token.COLON) {
		s.High = p.parseExpression()
	}
	if _, ok := p.ts.MatchPunctuation(token.COLON); ok {
		s.ThreeForm = true
		s.Max = p.parseExpression()
	}
	p.expectPunctuation(token.RBRACKET)
	return s
}

// parseArguments implements "'(' ExpressionList [ '...' ] ')'".
func (p *Parser) parseArguments(lparen token.Token) *ast.Arguments {
	args := &ast.Arguments{LParen: lparen.Pos}
	for !p.ts.PeekPunctuation(token.RPAREN) {
		args.Args = append(args.Args, p.parseExpression())
		if _, ok := p.ts.MatchPunctuation(token.ELLIPSIS); ok {
			args.Splat = true
			p.ts.MatchPunctuation(token.COMMA)
			break
		}
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
	}
	p.expectPunctuation(token.RPAREN)
	return args
}

// parseExpressionList implements "ExpressionList = Expression { ','
// Expression }".
func (p *Parser) parseExpressionList() ast.ExpressionList {
	list := ast.ExpressionList{p.parseExpression()}
	for {
		if _, ok := p.ts.MatchPunctuation(token.COMMA); !ok {
			break
		}
		list = append(list, p.parseExpression())
	}
	return list
}

// tryExpressionList parses an ExpressionList that may legally be empty
// (e.g. a bare "return"), deciding by whether the next token could
// plausibly start an expression.
func (p *Parser) tryExpressionList() ast.ExpressionList {
	if !p.canStartExpression() {
		return nil
	}
	return p.parseExpressionList()
}

func (p *Parser) canStartExpression() bool {
	t := p.peek()
	switch t.Kind {
	case token.EOF:
		return false
	case token.Punctuation:
		switch t.PunctuationKind {
		case token.SEMICOLON, token.RBRACE, token.RPAREN, token.RBRACKET, token.COLON, token.COMMA:
			return false
		}
		return true
	case token.Keyword:
		switch t.KeywordKind {
		case token.ELSE, token.CASE, token.DEFAULT:
			return false
		}
		return true
	default:
		return true
	}
}
