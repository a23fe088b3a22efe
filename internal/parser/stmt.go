package parser

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/token"
)

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet, token.KwConst, token.KwVar:
		return p.parseLet()
	case token.KwFunction:
		return p.parseFunction()
	case token.KwReturn:
		return p.parseReturn()
	case token.LBrace:
		return p.parseBlock()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseLet handles `let|const|var name (: Type)? (= expr)? ;`.
func (p *Parser) parseLet() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a variable name")
	if !ok {
		return ast.NoStmtID, false
	}

	data := ast.StmtLetData{
		Name:     p.strings.Intern(name.Text),
		NameSpan: name.Span,
		Const:    kw.Kind == token.KwConst,
	}

	if p.at(token.Colon) {
		p.advance()
		ann, ok := p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Ann = ann
	}
	if p.at(token.Assign) {
		p.advance()
		init, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Init = init
	}

	end := p.lastSpan
	p.eatSemicolon()
	return p.arenas.Stmts.NewLet(kw.Span.Cover(end), data), true
}

// parseFunction handles `function name(params) (: Type)? { body }`.
func (p *Parser) parseFunction() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a function name")
	if !ok {
		return ast.NoStmtID, false
	}

	params, ok := p.parseParamList()
	if !ok {
		return ast.NoStmtID, false
	}

	data := ast.StmtFunctionData{
		Name:     p.strings.Intern(name.Text),
		NameSpan: name.Span,
		Params:   params,
	}
	if p.at(token.Colon) {
		p.advance()
		ret, ok := p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Ret = ret
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open the function body"); !ok {
		return ast.NoStmtID, false
	}
	data.Body = p.parseStmtListUntilRBrace()

	return p.arenas.Stmts.NewFunction(kw.Span.Cover(p.lastSpan), data), true
}

// parseParamList parses `( name (: Type)?, ... )`.
func (p *Parser) parseParamList() ([]ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '('"); !ok {
		return nil, false
	}
	params := make([]ast.Param, 0, 4)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		name, ok := p.expect(token.Ident, diag.SynExpectParamName, "expected a parameter name")
		if !ok {
			return nil, false
		}
		param := ast.Param{
			Name: p.strings.Intern(name.Text),
			Span: name.Span,
		}
		if p.at(token.Colon) {
			p.advance()
			ann, ok := p.parseType()
			if !ok {
				return nil, false
			}
			param.Ann = ann
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
	}
	end := p.lastSpan
	p.eatSemicolon()
	return p.arenas.Stmts.NewReturn(kw.Span.Cover(end), value), true
}

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open := p.advance() // '{'
	stmts := p.parseStmtListUntilRBrace()
	return p.arenas.Stmts.NewBlock(open.Span.Cover(p.lastSpan), stmts), true
}

// parseStmtListUntilRBrace collects statements until the matching '}'.
// Statement errors are contained: the list keeps growing after resync.
func (p *Parser) parseStmtListUntilRBrace() []ast.StmtID {
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.resync()
			continue
		}
		stmts = append(stmts, stmt)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	return stmts
}

// parseAssignOrExprStmt distinguishes `name = expr;` from a plain
// expression statement.
func (p *Parser) parseAssignOrExprStmt() (ast.StmtID, bool) {
	if p.at(token.Ident) {
		save := p.lx.Save()
		lastSpan := p.lastSpan
		name := p.advance()
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			end := p.lastSpan
			p.eatSemicolon()
			return p.arenas.Stmts.NewAssign(name.Span.Cover(end), ast.StmtAssignData{
				Name:     p.strings.Intern(name.Text),
				NameSpan: name.Span,
				Value:    value,
			}), true
		}
		p.lx.Restore(save)
		p.lastSpan = lastSpan
	}

	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	end := p.lastSpan
	p.eatSemicolon()
	sp := p.arenas.Exprs.Get(expr).Span.Cover(end)
	return p.arenas.Stmts.NewExpr(sp, expr), true
}
