package lexer

import "tscheck/internal/diag"

// Options configures error reporting for a lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. Nil means errors are
	// dropped but scanning continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(d diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
