// Package parser builds the AST for one file. It never aborts: on a
// syntax error it reports a diagnostic, resynchronizes at a statement
// boundary and keeps going.
package parser

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/lexer"
	"tscheck/internal/source"
	"tscheck/internal/token"
)

type Options struct {
	// MaxErrors caps reported syntax errors. Zero means no cap.
	MaxErrors     uint
	currentErrors uint
	Reporter      diag.Reporter
}

func (o *Options) enough() bool {
	return o.MaxErrors != 0 && o.currentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	strings  *source.Interner
	file     ast.FileID
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one source file into the shared builder arenas.
func ParseFile(file *source.File, arenas *ast.Builder, strings *source.Interner, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		lx:      lx,
		arenas:  arenas,
		strings: strings,
		opts:    opts,
	}
	p.file = arenas.NewFile(lx.Peek().Span)
	p.parseTopLevel()
	return Result{File: p.file}
}

func (p *Parser) parseTopLevel() {
	start := p.lx.Peek().Span
	for !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.resync()
			continue
		}
		p.arenas.PushStmt(p.file, stmt)
	}
	p.arenas.Files.Get(p.file).Span = start.Cover(p.lx.Peek().Span)
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes a token, remembering its span for diagnostics at EOF.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the best span for an error at the current position.
// At EOF it points just past the last consumed token.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code with msg.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.currentErrors++
	if p.opts.enough() {
		return
	}
	p.opts.Reporter.Report(diag.NewError(code, sp, msg))
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagSpan(), msg)
}

// resync skips ahead to the next statement boundary after an error.
func (p *Parser) resync() {
	for !p.at(token.EOF) {
		tok := p.advance()
		if tok.Kind == token.Semicolon || tok.Kind == token.RBrace {
			return
		}
		switch p.lx.Peek().Kind {
		case token.KwLet, token.KwConst, token.KwVar, token.KwFunction, token.KwReturn:
			return
		}
	}
}

// eatSemicolon consumes a statement terminator if present; missing
// semicolons before '}' or EOF are tolerated.
func (p *Parser) eatSemicolon() bool {
	if p.at(token.Semicolon) {
		p.advance()
		return true
	}
	if p.at(token.RBrace) || p.at(token.EOF) {
		return true
	}
	p.err(diag.SynExpectSemicolon, "expected ';'")
	return false
}
