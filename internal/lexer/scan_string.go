package lexer

import (
	"tscheck/internal/diag"
	"tscheck/internal/token"
)

// scanString scans a single or double quoted literal. Text carries the
// cooked value, with quotes stripped and escapes resolved.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var buf []byte
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
		if ch == quote {
			return token.Token{
				Kind: token.StringLit,
				Span: lx.cursor.SpanFrom(start),
				Text: string(buf),
			}
		}
		if ch == '\\' && !lx.cursor.EOF() {
			buf = append(buf, unescape(lx.cursor.Bump()))
			continue
		}
		buf = append(buf, ch)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.NewError(diag.LexUnterminatedString, sp, "unterminated string literal"))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(buf)}
}

func unescape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return b
	}
}
