package lexer

import (
	"tscheck/internal/diag"
	"tscheck/internal/token"
)

// scanNumber handles decimal literals: integers, floats with an
// optional fraction and exponent, and bigints (digits followed by 'n').
// A bigint with a fraction or exponent is malformed.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	sawDot := false
	sawExp := false

	if lx.cursor.Peek() == '.' {
		sawDot = true
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !sawDot && lx.isNumberAfterDot() {
		sawDot = true
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if lx.scanExponent() {
			sawExp = true
		}
	}

	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		if sawDot || sawExp {
			lx.report(diag.NewError(diag.LexBadNumber, sp,
				"bigint literal must be an integer"))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(start)}
		}
		return token.Token{Kind: token.BigIntLit, Span: sp, Text: lx.cursor.Text(start)}
	}

	// A trailing identifier character makes the literal malformed,
	// e.g. "12abc".
	if !lx.cursor.EOF() && isIdentStartByte(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.NewError(diag.LexBadNumber, sp,
			"malformed number literal "+lx.cursor.Text(start)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(start)}
	}

	return token.Token{
		Kind: token.NumberLit,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.Text(start),
	}
}

// scanExponent consumes "e[+-]?digits". If no digits follow, the
// cursor is restored and false is returned.
func (lx *Lexer) scanExponent() bool {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // 'e' | 'E'
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Off = uint32(mark)
		return false
	}
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return true
}
