// Package diagfmt renders diagnostic bags for humans and machines.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tscheck/internal/diag"
	"tscheck/internal/source"
)

// Pretty writes bag in a human readable layout, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by notes. Call bag.Sort() first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	severityColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}

	for _, d := range bag.Items() {
		loc := formatLocation(fs, d.Primary, opts.PathMode)
		sev := d.Severity.String()
		if opts.Color {
			if c, ok := severityColor[d.Severity]; ok {
				sev = c.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sev, d.Code, d.Message)

		if opts.ShowSource {
			writeSourceLine(w, fs, d.Primary, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  note: %s: %s\n", formatLocation(fs, note.Span, opts.PathMode), note.Msg)
			}
		}
	}
}

func formatLocation(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	path := f.Path
	switch mode {
	case PathModeBasename:
		path = filepath.Base(path)
	case PathModeAuto:
		path = f.RelPath(fs.BaseDir())
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// writeSourceLine prints the offending line with a caret run under the
// span. Spans wider than the line are clipped to its end.
func writeSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	markerLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		markerLen = int(end.Col - start.Col)
	}
	if remaining := len(line) - int(start.Col-1); markerLen > remaining && remaining > 0 {
		markerLen = remaining
	}
	marker := "^" + strings.Repeat("~", max(markerLen-1, 0))
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col-1)), marker)
}
