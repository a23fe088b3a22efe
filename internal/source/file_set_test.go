package source

import (
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("let a = 1;\nlet b = 2;\n"))

	start, _ := fs.Resolve(Span{File: id, Start: 0, End: 3})
	if start.Line != 1 || start.Col != 1 {
		t.Fatalf("expected 1:1, got %d:%d", start.Line, start.Col)
	}

	// "let b" starts right after the first newline at offset 10.
	start, _ = fs.Resolve(Span{File: id, Start: 11, End: 14})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("expected 2:1, got %d:%d", start.Line, start.Col)
	}
}

func TestResolveMidLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", tt.off, tt.line, tt.col, start.Line, start.Col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4: got %q", got)
	}
}

func TestGetLatestKeepsNewestVersion(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dup.ts", []byte("old"))
	second := fs.AddVirtual("dup.ts", []byte("new"))

	id, ok := fs.GetLatest("dup.ts")
	if !ok || id != second {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", second, id, ok)
	}
}

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Fatalf("same string must intern to the same ID")
	}
	if s, ok := in.Lookup(a); !ok || s != "foo" {
		t.Fatalf("lookup mismatch: %q %v", s, ok)
	}
	if in.Intern("bar") == a {
		t.Fatalf("different strings must not share an ID")
	}
}
