package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"tscheck/internal/diag"
	"tscheck/internal/source"
)

func fixture(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.ts", []byte("let x: number = \"oops\";\nlet y = 1;\n"))
	bag := diag.NewBag(16)
	bag.Add(diag.NewError(diag.SemaIncompatibleAssignment,
		source.Span{File: id, Start: 16, End: 22},
		`type '"oops"' is not assignable to type 'number'`).
		WithTypes(`"oops"`, "number").
		WithNote(source.Span{File: id, Start: 4, End: 5}, "declared here"))
	return bag, fs
}

func TestPrettyLayout(t *testing.T) {
	bag, fs := fixture(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true, ShowSource: true})
	out := sb.String()

	for _, want := range []string{
		"main.ts:1:17",
		"ERROR",
		"SEMA_INCOMPATIBLE_ASSIGNMENT",
		"not assignable",
		`let x: number = "oops";`,
		"^~~~~~",
		"note:",
		"declared here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyWithoutSource(t *testing.T) {
	bag, fs := fixture(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()
	if strings.Contains(out, "^") {
		t.Error("caret marker should be suppressed without ShowSource")
	}
	if strings.Contains(out, "note:") {
		t.Error("notes should be suppressed without ShowNotes")
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := fixture(t)
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "SEMA_INCOMPATIBLE_ASSIGNMENT" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %q/%q", d.Code, d.Severity)
	}
	if d.SrcType != `"oops"` || d.DstType != "number" {
		t.Errorf("types = %q -> %q", d.SrcType, d.DstType)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 17 {
		t.Errorf("location = %d:%d, want 1:17", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Notes) != 1 {
		t.Error("note should be included")
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.ts", []byte("x\n"))
	bag := diag.NewBag(16)
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewError(diag.SemaUndeclaredIdentifier, source.Span{File: id}, "m"))
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 || out.Count != 5 {
		t.Errorf("got %d diagnostics, count %d; want 2, 5", len(out.Diagnostics), out.Count)
	}
}
