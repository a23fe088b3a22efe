package symbols

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"tscheck/internal/source"
)

// ErrDuplicate is returned by Declare when the name already exists directly
// in the target scope. Shadowing an outer scope's binding is not an error.
var ErrDuplicate = errors.New("symbols: duplicate declaration in scope")

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope and symbol arenas plus the shared string
// interner. One Table lives for exactly one check run.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
}

// Declare installs sym into scope. The symbol's Scope field is set by this
// call. Fails with ErrDuplicate when the name is already bound directly in
// that scope; the existing symbol is returned alongside the error so callers
// can point diagnostics at the previous declaration.
func (t *Table) Declare(scope ScopeID, sym Symbol) (SymbolID, SymbolID, error) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, NoSymbolID, fmt.Errorf("symbols: declare into invalid scope %d", scope)
	}
	if prev, ok := sc.NameIndex[sym.Name]; ok {
		return NoSymbolID, prev, ErrDuplicate
	}
	sym.Scope = scope
	id := t.Symbols.New(&sym)
	sc.Symbols = append(sc.Symbols, id)
	sc.NameIndex[sym.Name] = id
	return id, NoSymbolID, nil
}

// Resolve walks from scope to the root through parent links and returns the
// nearest symbol bound to name. The second result is false when no enclosing
// scope binds the name.
func (t *Table) Resolve(scope ScopeID, name source.StringID) (SymbolID, bool) {
	for scope.IsValid() {
		sc := t.Scopes.Get(scope)
		if sc == nil {
			break
		}
		if id, ok := sc.NameIndex[name]; ok {
			return id, true
		}
		scope = sc.Parent
	}
	return NoSymbolID, false
}

// HasDirect reports whether name is bound directly in scope, ignoring the
// parent chain.
func (t *Table) HasDirect(scope ScopeID, name source.StringID) bool {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return false
	}
	_, ok := sc.NameIndex[name]
	return ok
}
