package parser

import (
	"github.com/kievzenit/goop-frontend/internal/ast"
	"github.com/kievzenit/goop-frontend/internal/token"
)

// assignOps lists every punctuation that can head an AssignmentStatement,
// the plain '=' and ':=' plus every compound op spec.md §6.2 lists.
var assignOps = []token.PunctuationKind{
	token.ASSIGN, token.DEFINE,
	token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN, token.REM_ASSIGN,
	token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN, token.AND_NOT_ASSIGN,
}

// parseBlockStatement implements "Block = '{' StatementList '}'".
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	lbrace := p.expectPunctuation(token.LBRACE)
	var stmts []ast.Statement
	for !p.ts.PeekPunctuation(token.RBRACE) {
		stmts = append(stmts, p.parseStatement())
		p.expectSemicolon()
	}
	p.expectPunctuation(token.RBRACE)
	return &ast.BlockStatement{LBrace: lbrace.Pos, Stmts: stmts}
}

// parseStatement dispatches on the leading token per spec.md §4.5,
// trying the labeled-statement form (Identifier ':' Statement) before
// falling back to a simple statement.
func (p *Parser) parseStatement() ast.Statement {
	if p.ts.PeekPunctuation(token.SEMICOLON) {
		return &ast.EmptyStatement{PosVal: p.peek().Pos}
	}

	t := p.peek()
	if t.Kind == token.Keyword {
		switch t.KeywordKind {
		case token.GO:
			kw := p.mustMatchKeyword(token.GO)
			return &ast.GoStatement{Keyword: kw.Pos, Call: p.parseExpression()}
		case token.DEFER:
			kw := p.mustMatchKeyword(token.DEFER)
			return &ast.DeferStatement{Keyword: kw.Pos, Call: p.parseExpression()}
		case token.RETURN:
			kw := p.mustMatchKeyword(token.RETURN)
			return &ast.ReturnStatement{Keyword: kw.Pos, Results: p.tryExpressionList()}
		case token.BREAK:
			kw := p.mustMatchKeyword(token.BREAK)
			label := ""
			if id, ok := p.ts.MatchIdentifier(); ok {
				label = id.Name
			}
			return &ast.BreakStatement{Keyword: kw.Pos, Label: label}
		case token.CONTINUE:
			kw := p.mustMatchKeyword(token.CONTINUE)
			label := ""
			if id, ok := p.ts.MatchIdentifier(); ok {
				label = id.Name
			}
			return &ast.ContinueStatement{Keyword: kw.Pos, Label: label}
		case token.GOTO:
			kw := p.mustMatchKeyword(token.GOTO)
			return &ast.GotoStatement{Keyword: kw.Pos, Label: p.expectIdentifier().Name}
		case token.FALLTHROUGH:
			kw := p.mustMatchKeyword(token.FALLTHROUGH)
			return &ast.FallthroughStatement{Keyword: kw.Pos}
		case token.IF:
			return p.parseIfStatement()
		case token.SWITCH:
			return p.parseSwitchStatement()
		case token.SELECT:
			return p.parseSelectStatement()
		case token.FOR:
			return p.parseForStatement()
		case token.VAR:
			return &ast.DeclStatement{Decl: p.parseVarDecl()}
		case token.CONST:
			return &ast.DeclStatement{Decl: p.parseConstDecl()}
		case token.TYPE:
			return &ast.DeclStatement{Decl: p.parseTypeDecl()}
		}
	}

	if p.ts.PeekPunctuation(token.LBRACE) {
		return p.parseBlockStatement()
	}

	if t.Kind == token.Identifier {
		mark := p.mark()
		name, _ := p.ts.MatchIdentifier()
		if _, ok := p.ts.MatchPunctuation(token.COLON); ok {
			return &ast.LabeledStatement{PosVal: name.Pos, Label: name.Name, Stmt: p.parseStatement()}
		}
		p.reset(mark)
	}

	return p.parseSimpleStatement()
}

// parseSimpleStatement implements the SimpleStmt alternatives: empty
// (handled by the caller), send, inc/dec, assignment, and expression
// statement, disambiguated by parsing a full ExpressionList first since
// an assignment's left side may have more than one operand.
func (p *Parser) parseSimpleStatement() ast.Statement {
	lhs := p.parseExpressionList()

	if op, ok := p.ts.MatchPunctuation(assignOps...); ok {
		rhs := p.parseExpressionList()
		return &ast.AssignmentStatement{Lhs: lhs, Op: op.PunctuationKind, OpPos: op.Pos, Rhs: rhs}
	}

	if len(lhs) != 1 {
		p.fail("unexpected ',' in statement")
	}
	expr := lhs[0]

	if arrow, ok := p.ts.MatchPunctuation(token.ARROW); ok {
		return &ast.SendStatement{Channel: expr, Arrow: arrow.Pos, Value: p.parseExpression()}
	}
	if op, ok := p.ts.MatchPunctuation(token.INC, token.DEC); ok {
		return &ast.IncDecStatement{X: expr, Op: op.PunctuationKind, OpPos: op.Pos}
	}
	return &ast.ExpressionStatement{X: expr}
}

// parseIfStatement implements "'if' [SimpleStmt ';'] Expression Block
// ['else' (IfStatement | Block)]".
func (p *Parser) parseIfStatement() *ast.IfStatement {
	kw := p.mustMatchKeyword(token.IF)
	init, cond := p.parseHeader()
	stmt := &ast.IfStatement{Keyword: kw.Pos, Init: init, Cond: cond, Body: p.parseBlockStatement()}
	if _, ok := p.ts.MatchKeyword(token.ELSE); ok {
		if p.ts.PeekKeyword(token.IF) {
			stmt.Else = p.parseIfStatement()
		} else {
			stmt.Else = p.parseBlockStatement()
		}
	}
	return stmt
}

// parseHeader implements the shared "[SimpleStmt ';'] Expression" header
// shape used by if: try the header as a
// bare Expression first (succeeds whenever there's no init clause), and
// fall back to parsing a full SimpleStmt followed by ';' and the
// Expression proper when that's not what follows.
func (p *Parser) parseHeader() (ast.Statement, ast.Expression) {
	if cond, ok := p.tryConditionOnly(); ok {
		return nil, cond
	}
	first := p.parseSimpleStatement()
	if _, ok := p.ts.MatchPunctuation(token.SEMICOLON); ok {
		return first, p.parseExpression()
	}
	exprStmt, ok := first.(*ast.ExpressionStatement)
	if !ok {
		p.fail("expected ';' after init statement")
	}
	return nil, exprStmt.X
}

// tryConditionOnly speculatively parses a bare Expression and succeeds
// only if it is immediately followed by '{', so that a three-clause
// for-loop's init statement (which may itself look like an expression,
// e.g. a bare call) is never mistaken for a tagless condition.
func (p *Parser) tryConditionOnly() (ast.Expression, bool) {
	mark := p.mark()
	cond, ok := attempt(p, func() ast.Expression { return p.parseExpression() })
	if !ok {
		return nil, false
	}
	if !p.ts.PeekPunctuation(token.LBRACE) {
		p.reset(mark)
		return nil, false
	}
	return cond, true
}

// parseSwitchStatement implements "'switch' [SimpleStmt ';'] [Expression]
// '{' {SwitchCase} '}'", the tag itself optional even when there is no
// init clause (a tagless switch).
func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	kw := p.mustMatchKeyword(token.SWITCH)
	stmt := &ast.SwitchStatement{Keyword: kw.Pos}
	if !p.ts.PeekPunctuation(token.LBRACE) {
		stmt.Init, stmt.Tag = p.parseSwitchHeader()
	}
	p.expectPunctuation(token.LBRACE)
	for !p.ts.PeekPunctuation(token.RBRACE) {
		stmt.Cases = append(stmt.Cases, p.parseSwitchCase())
	}
	p.expectPunctuation(token.RBRACE)
	return stmt
}

func (p *Parser) parseSwitchHeader() (ast.Statement, ast.Expression) {
	if tag, ok := p.tryConditionOnly(); ok {
		return nil, tag
	}
	first := p.parseSimpleStatement()
	if _, ok := p.ts.MatchPunctuation(token.SEMICOLON); ok {
		if p.ts.PeekPunctuation(token.LBRACE) {
			return first, nil
		}
		return first, p.parseExpression()
	}
	exprStmt, ok := first.(*ast.ExpressionStatement)
	if !ok {
		p.fail("expected ';' after switch's init statement")
	}
	return nil, exprStmt.X
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	pos := p.peek().Pos
	c := &ast.SwitchCase{PosVal: pos}
	if _, ok := p.ts.MatchKeyword(token.DEFAULT); ok {
		c.IsDefault = true
	} else {
		p.expectKeyword(token.CASE)
		c.Values = p.parseExpressionList()
	}
	p.expectPunctuation(token.COLON)
	for !p.ts.PeekKeyword(token.CASE) && !p.ts.PeekKeyword(token.DEFAULT) && !p.ts.PeekPunctuation(token.RBRACE) {
		c.Body = append(c.Body, p.parseStatement())
		p.expectSemicolon()
	}
	return c
}

// parseSelectStatement implements "'select' '{' {SelectCase} '}'".
func (p *Parser) parseSelectStatement() *ast.SelectStatement {
	kw := p.mustMatchKeyword(token.SELECT)
	p.expectPunctuation(token.LBRACE)
	var cases []*ast.SelectCase
	for !p.ts.PeekPunctuation(token.RBRACE) {
		cases = append(cases, p.parseSelectCase())
	}
	p.expectPunctuation(token.RBRACE)
	return &ast.SelectStatement{Keyword: kw.Pos, Cases: cases}
}

func (p *Parser) parseSelectCase() *ast.SelectCase {
	pos := p.peek().Pos
	c := &ast.SelectCase{PosVal: pos}
	if _, ok := p.ts.MatchKeyword(token.DEFAULT); ok {
		c.IsDefault = true
	} else {
		p.expectKeyword(token.CASE)
		c.Comm = p.parseSimpleStatement()
	}
	p.expectPunctuation(token.COLON)
	for !p.ts.PeekKeyword(token.CASE) && !p.ts.PeekKeyword(token.DEFAULT) && !p.ts.PeekPunctuation(token.RBRACE) {
		c.Body = append(c.Body, p.parseStatement())
		p.expectSemicolon()
	}
	return c
}

// parseForStatement implements all three ForStatement shapes plus the
// RangeClause form: bare Block (infinite), Expression Block (while-style),
// ForClause Block (three-clause), and RangeClause Block.
func (p *Parser) parseForStatement() *ast.ForStatement {
	kw := p.mustMatchKeyword(token.FOR)
	stmt := &ast.ForStatement{Keyword: kw.Pos}

	if p.ts.PeekPunctuation(token.LBRACE) {
		stmt.Body = p.parseBlockStatement()
		return stmt
	}

	if rc, ok := p.tryRangeClause(); ok {
		stmt.Range = rc
		stmt.Body = p.parseBlockStatement()
		return stmt
	}

	if cond, ok := p.tryConditionOnly(); ok {
		stmt.Cond = cond
		stmt.Body = p.parseBlockStatement()
		return stmt
	}

	if !p.ts.PeekPunctuation(token.SEMICOLON) {
		stmt.Init = p.parseSimpleStatement()
	}
	p.expectPunctuation(token.SEMICOLON)
	if !p.ts.PeekPunctuation(token.SEMICOLON) {
		stmt.Cond = p.parseExpression()
	}
	p.expectPunctuation(token.SEMICOLON)
	if !p.ts.PeekPunctuation(token.LBRACE) {
		stmt.Post = p.parseSimpleStatement()
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// tryRangeClause implements "[ExpressionList (':=' | '=')] 'range'
// Expression", including the key-and-value-omitted "for range x" form.
func (p *Parser) tryRangeClause() (*ast.RangeClause, bool) {
	mark := p.mark()

	if _, ok := p.ts.MatchKeyword(token.RANGE); ok {
		return &ast.RangeClause{X: p.parseExpression()}, true
	}

	list, ok := attempt(p, func() ast.ExpressionList { return p.parseExpressionList() })
	if !ok {
		return nil, false
	}

	define := false
	if _, ok := p.ts.MatchPunctuation(token.DEFINE); ok {
		define = true
	} else if _, ok := p.ts.MatchPunctuation(token.ASSIGN); !ok {
		p.reset(mark)
		return nil, false
	}

	if _, ok := p.ts.MatchKeyword(token.RANGE); !ok {
		p.reset(mark)
		return nil, false
	}

	rc := &ast.RangeClause{Define: define, X: p.parseExpression()}
	if len(list) >= 1 {
		rc.Key = list[0]
	}
	if len(list) >= 2 {
		rc.Value = list[1]
	}
	return rc, true
}
