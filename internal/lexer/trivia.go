package lexer

import "tscheck/internal/diag"

// skipTrivia consumes whitespace and comments. An unterminated block
// comment is reported once and the rest of the file is consumed.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isSpaceByte(ch):
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.skipLineComment()
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.Eat('*') {
			if lx.cursor.Eat('/') {
				return
			}
			continue
		}
		lx.cursor.Bump()
	}
	lx.report(diag.NewError(diag.LexUnknownChar, lx.cursor.SpanFrom(start),
		"unterminated block comment"))
}
