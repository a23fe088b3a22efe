package lexer

import (
	"fmt"

	"tscheck/internal/diag"
	"tscheck/internal/token"
)

// scanOperatorOrPunct scans the longest operator at the cursor.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
		if lx.cursor.Eat('*') {
			kind = token.StarStar
		}
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		} else if lx.cursor.Eat('=') {
			kind = token.EqEq
			if lx.cursor.Eat('=') {
				kind = token.EqEqEq
			}
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Eat('=') {
			kind = token.BangEq
			if lx.cursor.Eat('=') {
				kind = token.BangEqEq
			}
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Eat('=') {
			kind = token.LtEq
		} else if lx.cursor.Eat('<') {
			kind = token.Shl
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		} else if lx.cursor.Eat('>') {
			kind = token.Shr
			if lx.cursor.Eat('>') {
				kind = token.ShrZero
			}
		}
	case '&':
		kind = token.Amp
		if lx.cursor.Eat('&') {
			kind = token.AmpAmp
		}
	case '|':
		kind = token.Pipe
		if lx.cursor.Eat('|') {
			kind = token.PipePipe
		}
	case '^':
		kind = token.Caret
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.NewError(diag.LexUnknownChar, sp,
			fmt.Sprintf("unknown character %q", ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(start)}
	}

	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.Text(start),
	}
}
