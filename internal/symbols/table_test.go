package symbols

import (
	"errors"
	"testing"

	"tscheck/internal/source"
)

func TestDeclareAndResolve(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeFile, NoScopeID, source.Span{})
	name := table.Strings.Intern("x")

	id, _, err := table.Declare(root, Symbol{Name: name, Kind: SymbolLet})
	if err != nil {
		t.Fatalf("declare failed: %v", err)
	}

	got, ok := table.Resolve(root, name)
	if !ok || got != id {
		t.Fatalf("resolve returned %d (ok=%v), want %d", got, ok, id)
	}
}

func TestDuplicateInSameScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeFile, NoScopeID, source.Span{})
	name := table.Strings.Intern("x")

	first, _, err := table.Declare(root, Symbol{Name: name, Kind: SymbolLet})
	if err != nil {
		t.Fatalf("first declare failed: %v", err)
	}
	_, prev, err := table.Declare(root, Symbol{Name: name, Kind: SymbolLet})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if prev != first {
		t.Fatalf("expected previous symbol %d, got %d", first, prev)
	}
}

func TestShadowingResolvesInner(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeFile, NoScopeID, source.Span{})
	inner := table.Scopes.New(ScopeBlock, root, source.Span{})
	name := table.Strings.Intern("x")

	outerSym, _, err := table.Declare(root, Symbol{Name: name, Kind: SymbolLet})
	if err != nil {
		t.Fatalf("outer declare failed: %v", err)
	}
	innerSym, _, err := table.Declare(inner, Symbol{Name: name, Kind: SymbolLet})
	if err != nil {
		t.Fatalf("shadowing declare must succeed, got %v", err)
	}

	if got, _ := table.Resolve(inner, name); got != innerSym {
		t.Fatalf("inner scope should resolve to the shadow, got %d", got)
	}
	if got, _ := table.Resolve(root, name); got != outerSym {
		t.Fatalf("outer scope should still resolve to the original, got %d", got)
	}
}

func TestResolveWalksToRoot(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeFile, NoScopeID, source.Span{})
	fn := table.Scopes.New(ScopeFunction, root, source.Span{})
	block := table.Scopes.New(ScopeBlock, fn, source.Span{})
	name := table.Strings.Intern("deep")

	id, _, err := table.Declare(root, Symbol{Name: name, Kind: SymbolFunction})
	if err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	if got, ok := table.Resolve(block, name); !ok || got != id {
		t.Fatalf("resolve through two levels failed: %d %v", got, ok)
	}

	missing := table.Strings.Intern("missing")
	if _, ok := table.Resolve(block, missing); ok {
		t.Fatalf("unknown name must not resolve")
	}
}

func TestScopeTreeStructure(t *testing.T) {
	table := NewTable(Hints{}, nil)
	root := table.Scopes.New(ScopeFile, NoScopeID, source.Span{})
	a := table.Scopes.New(ScopeBlock, root, source.Span{})
	b := table.Scopes.New(ScopeBlock, root, source.Span{})

	rootScope := table.Scopes.Get(root)
	if len(rootScope.Children) != 2 || rootScope.Children[0] != a || rootScope.Children[1] != b {
		t.Fatalf("children not recorded: %v", rootScope.Children)
	}
	if table.Scopes.Get(a).Parent != root {
		t.Fatalf("parent back-reference wrong")
	}
}
