package parser

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/token"
)

// parseType parses a type annotation: a union of postfix types.
func (p *Parser) parseType() (ast.TypeID, bool) {
	first, ok := p.parseTypePostfix()
	if !ok {
		return ast.NoTypeID, false
	}
	if !p.at(token.Pipe) {
		return first, true
	}
	members := []ast.TypeID{first}
	for p.at(token.Pipe) {
		p.advance()
		member, ok := p.parseTypePostfix()
		if !ok {
			return ast.NoTypeID, false
		}
		members = append(members, member)
	}
	sp := p.arenas.Types.Get(first).Span.Cover(p.arenas.Types.Get(members[len(members)-1]).Span)
	return p.arenas.Types.NewUnion(sp, members), true
}

// parseTypePostfix parses a primary type followed by any number of
// `[]` array suffixes.
func (p *Parser) parseTypePostfix() (ast.TypeID, bool) {
	t, ok := p.parseTypePrimary()
	if !ok {
		return ast.NoTypeID, false
	}
	for p.at(token.LBracket) {
		save := p.lx.Save()
		lastSpan := p.lastSpan
		p.advance()
		if !p.at(token.RBracket) {
			// '[' not followed by ']' is not an array suffix here.
			p.lx.Restore(save)
			p.lastSpan = lastSpan
			return t, true
		}
		close := p.advance()
		sp := p.arenas.Types.Get(t).Span.Cover(close.Span)
		t = p.arenas.Types.NewArray(sp, t)
	}
	return t, true
}

func (p *Parser) parseTypePrimary() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident, token.KwNull, token.KwUndefined:
		p.advance()
		return p.arenas.Types.NewName(tok.Span, p.strings.Intern(tok.Text)), true

	case token.KwTrue:
		p.advance()
		return p.arenas.Types.NewLit(tok.Span, ast.ExprLitTrue, p.strings.Intern(tok.Text)), true
	case token.KwFalse:
		p.advance()
		return p.arenas.Types.NewLit(tok.Span, ast.ExprLitFalse, p.strings.Intern(tok.Text)), true
	case token.NumberLit:
		p.advance()
		return p.arenas.Types.NewLit(tok.Span, ast.ExprLitNumber, p.strings.Intern(tok.Text)), true
	case token.StringLit:
		p.advance()
		return p.arenas.Types.NewLit(tok.Span, ast.ExprLitString, p.strings.Intern(tok.Text)), true
	case token.Minus:
		// Negative number literal type, e.g. -1.
		minus := p.advance()
		num, ok := p.expect(token.NumberLit, diag.SynExpectType, "expected a number after '-'")
		if !ok {
			return ast.NoTypeID, false
		}
		sp := minus.Span.Cover(num.Span)
		return p.arenas.Types.NewLit(sp, ast.ExprLitNumber, p.strings.Intern("-"+num.Text)), true

	case token.LBracket:
		return p.parseTupleType()

	case token.LParen:
		return p.parseFnOrGroupType()

	default:
		p.err(diag.SynExpectType, "expected a type, found "+tok.Kind.String())
		return ast.NoTypeID, false
	}
}

// parseTupleType parses `[T, U, ...]`. An empty tuple `[]` is legal.
func (p *Parser) parseTupleType() (ast.TypeID, bool) {
	open := p.advance() // '['
	var elems []ast.TypeID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	close, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in tuple type")
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewTuple(open.Span.Cover(close.Span), elems), true
}

// parseFnOrGroupType disambiguates `(p: T) => R` and `() => R` from a
// parenthesized type like `(A | B)[]`.
func (p *Parser) parseFnOrGroupType() (ast.TypeID, bool) {
	save := p.lx.Save()
	lastSpan := p.lastSpan
	open := p.advance() // '('

	if p.isFnTypeHeader() {
		params := make([]ast.Param, 0, 4)
		for !p.at(token.RParen) && !p.at(token.EOF) {
			name, ok := p.expect(token.Ident, diag.SynExpectParamName, "expected a parameter name")
			if !ok {
				return ast.NoTypeID, false
			}
			if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' after parameter name"); !ok {
				return ast.NoTypeID, false
			}
			ann, ok := p.parseType()
			if !ok {
				return ast.NoTypeID, false
			}
			params = append(params, ast.Param{
				Name: p.strings.Intern(name.Text),
				Ann:  ann,
				Span: name.Span,
			})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
			return ast.NoTypeID, false
		}
		if _, ok := p.expect(token.Arrow, diag.SynExpectArrow, "expected '=>' in function type"); !ok {
			return ast.NoTypeID, false
		}
		ret, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		sp := open.Span.Cover(p.arenas.Types.Get(ret).Span)
		return p.arenas.Types.NewFn(sp, params, ret), true
	}

	p.lx.Restore(save)
	p.lastSpan = lastSpan
	p.advance() // '('
	inner, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoTypeID, false
	}
	// The group node itself is transparent; only its span widens.
	return inner, true
}

// isFnTypeHeader peeks past the already consumed '(' to decide whether
// a function type follows: `()` or `name :`.
func (p *Parser) isFnTypeHeader() bool {
	save := p.lx.Save()
	lastSpan := p.lastSpan
	defer func() {
		p.lx.Restore(save)
		p.lastSpan = lastSpan
	}()

	if p.at(token.RParen) {
		return true
	}
	if !p.at(token.Ident) {
		return false
	}
	p.advance()
	return p.at(token.Colon)
}
