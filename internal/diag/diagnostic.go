package diag

import (
	"tscheck/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported problem. SrcType and DstType carry the
// rendered type labels for assignability failures and are empty otherwise.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	SrcType  string
	DstType  string
	Notes    []Note
}
