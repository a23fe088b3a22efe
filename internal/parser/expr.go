package parser

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/token"
)

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(0)
}

// parseBinary is a precedence climbing loop over the operator table.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		kind := p.lx.Peek().Kind
		prec, rightAssoc := binaryPrec(kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		p.advance()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right, ok := p.parseBinary(next)
		if !ok {
			return ast.NoExprID, false
		}
		sp := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(sp, binaryOp(kind), left, right)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	var op ast.ExprUnaryOp
	switch p.lx.Peek().Kind {
	case token.Minus:
		op = ast.UnNeg
	case token.Bang:
		op = ast.UnNot
	case token.KwTypeof:
		op = ast.UnTypeof
	default:
		return p.parsePostfix()
	}
	tok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	sp := tok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
	return p.arenas.Exprs.NewUnary(sp, op, operand), true
}

// parsePostfix applies call and index suffixes to a primary.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				args = append(args, arg)
				if !p.at(token.Comma) {
					break
				}
				p.advance()
			}
			close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.arenas.Exprs.Get(expr).Span.Cover(close.Span)
			expr = p.arenas.Exprs.NewCall(sp, expr, args)

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
			if !ok {
				return ast.NoExprID, false
			}
			sp := p.arenas.Exprs.Get(expr).Span.Cover(close.Span)
			expr = p.arenas.Exprs.NewIndex(sp, expr, index)

		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitNumber, p.strings.Intern(tok.Text)), true
	case token.BigIntLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitBigInt, p.strings.Intern(tok.Text)), true
	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, p.strings.Intern(tok.Text)), true
	case token.KwTrue:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitTrue, p.strings.Intern(tok.Text)), true
	case token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitFalse, p.strings.Intern(tok.Text)), true
	case token.KwNull:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitNull, p.strings.Intern(tok.Text)), true
	case token.KwUndefined:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitUndefined, p.strings.Intern(tok.Text)), true

	case token.Ident:
		return p.parseIdentOrArrow()

	case token.LBracket:
		return p.parseArrayLit()

	case token.LParen:
		return p.parseGroupOrArrow()

	default:
		p.err(diag.SynExpectExpression, "expected an expression, found "+tok.Kind.String())
		return ast.NoExprID, false
	}
}

// parseIdentOrArrow handles a bare identifier and the single-parameter
// arrow shorthand `x => expr`.
func (p *Parser) parseIdentOrArrow() (ast.ExprID, bool) {
	name := p.advance()
	if !p.at(token.Arrow) {
		return p.arenas.Exprs.NewIdent(name.Span, p.strings.Intern(name.Text)), true
	}
	p.advance() // '=>'
	body, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	params := []ast.Param{{Name: p.strings.Intern(name.Text), Span: name.Span}}
	sp := name.Span.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Exprs.NewArrow(sp, params, ast.NoTypeID, body), true
}

func (p *Parser) parseArrayLit() (ast.ExprID, bool) {
	open := p.advance() // '['
	var elems []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(open.Span.Cover(close.Span), elems), true
}

// parseGroupOrArrow disambiguates `(x: T) => e` from `(expr)`. The
// arrow header is tried silently first; on failure the lexer rewinds
// and the parenthesized expression path runs with normal reporting.
func (p *Parser) parseGroupOrArrow() (ast.ExprID, bool) {
	save := p.lx.Save()
	lastSpan := p.lastSpan
	open := p.advance() // '('

	if params, ok := p.tryArrowHeader(); ok {
		ret := ast.NoTypeID
		if p.at(token.Colon) {
			p.advance()
			ann, ok := p.parseType()
			if !ok {
				return ast.NoExprID, false
			}
			ret = ann
		}
		if _, ok := p.expect(token.Arrow, diag.SynExpectArrow, "expected '=>'"); !ok {
			return ast.NoExprID, false
		}
		body, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		sp := open.Span.Cover(p.arenas.Exprs.Get(body).Span)
		return p.arenas.Exprs.NewArrow(sp, params, ret, body), true
	}

	p.lx.Restore(save)
	p.lastSpan = lastSpan
	p.advance() // '('
	inner, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewGroup(open.Span.Cover(close.Span), inner), true
}

// tryArrowHeader speculatively parses `name (: Type)?, ... )` after an
// already consumed '(' and checks that an arrow follows. It reports
// nothing; the caller rewinds when it returns false.
func (p *Parser) tryArrowHeader() ([]ast.Param, bool) {
	saved := p.opts.Reporter
	p.opts.Reporter = nil
	defer func() { p.opts.Reporter = saved }()

	params := make([]ast.Param, 0, 4)
	for !p.at(token.RParen) {
		if !p.at(token.Ident) {
			return nil, false
		}
		name := p.advance()
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
	if !p.at(token.RParen) {
		return nil, false
	}
	p.advance()
	// The header is only an arrow header when '=>' (or ': Ret =>')
	// follows; otherwise `(x)` is a plain group.
	if !p.at(token.Arrow) && !p.at(token.Colon) {
		return nil, false
	}
	return params, true
}
