// Package sema resolves names, infers expression types and checks
// assignability over a parsed file. Checking never aborts: every
// violation produces a diagnostic and recovers with any.
package sema

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/source"
	"tscheck/internal/symbols"
	"tscheck/internal/types"
)

// Options configure a semantic pass over one file.
type Options struct {
	Reporter diag.Reporter
	// Types may be shared across files; a fresh interner is allocated
	// when nil.
	Types *types.Interner
	// UnionPolicy controls whether any swallows union members.
	UnionPolicy types.UnionPolicy
}

// Result stores the artefacts of one Check call.
type Result struct {
	Types     *types.Interner
	Table     *symbols.Table
	FileScope symbols.ScopeID
	// ExprTypes maps every checked expression to its inferred type.
	ExprTypes map[ast.ExprID]types.TypeID
}

// Check runs the full semantic pass: hoist functions, declare bindings,
// infer expression types, report violations.
func Check(builder *ast.Builder, fileID ast.FileID, strings *source.Interner, opts Options) *Result {
	in := opts.Types
	if in == nil {
		in = types.NewInterner(strings)
	}
	res := &Result{
		Types:     in,
		Table:     symbols.NewTable(symbols.Hints{}, strings),
		ExprTypes: make(map[ast.ExprID]types.TypeID),
	}
	if builder == nil || !fileID.IsValid() {
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return res
	}

	tc := typeChecker{
		builder:   builder,
		in:        in,
		table:     res.Table,
		strings:   strings,
		reporter:  opts.Reporter,
		policy:    opts.UnionPolicy,
		result:    res,
		fnSymbols: make(map[ast.StmtID]symbols.SymbolID),
	}
	tc.initTypeNames()

	res.FileScope = res.Table.Scopes.New(symbols.ScopeFile, symbols.NoScopeID, file.Span)
	tc.pushScope(res.FileScope)
	tc.checkStmts(file.Stmts)
	tc.popScope()
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	in       *types.Interner
	table    *symbols.Table
	strings  *source.Interner
	reporter diag.Reporter
	policy   types.UnionPolicy
	result   *Result

	scopeStack []symbols.ScopeID
	// fnStack tracks the expected return type of each enclosing
	// function body; the innermost entry collects observed returns
	// when the return type is inferred.
	fnStack []*fnContext

	// typeNames maps builtin type-name strings to their TypeIDs.
	typeNames map[source.StringID]types.TypeID

	// fnSymbols maps each function declaration to the symbol its hoist
	// created, NoSymbolID when the hoist hit a duplicate name.
	fnSymbols map[ast.StmtID]symbols.SymbolID
}

// fnContext is the return checking state of one function body.
type fnContext struct {
	declared types.TypeID // NoTypeID when the return type is inferred
	observed []types.TypeID
}

func (tc *typeChecker) initTypeNames() {
	b := tc.in.Builtins()
	names := map[string]types.TypeID{
		"any":       b.Any,
		"unknown":   b.Unknown,
		"never":     b.Never,
		"number":    b.Number,
		"string":    b.String,
		"boolean":   b.Boolean,
		"bigint":    b.BigInt,
		"symbol":    b.Symbol,
		"null":      b.Null,
		"undefined": b.Undefined,
		"void":      b.Void,
		"object":    b.Object,
	}
	tc.typeNames = make(map[source.StringID]types.TypeID, len(names))
	for name, id := range names {
		tc.typeNames[tc.strings.Intern(name)] = id
	}
}

func (tc *typeChecker) pushScope(scope symbols.ScopeID) {
	tc.scopeStack = append(tc.scopeStack, scope)
}

func (tc *typeChecker) popScope() {
	tc.scopeStack = tc.scopeStack[:len(tc.scopeStack)-1]
}

func (tc *typeChecker) currentScope() symbols.ScopeID {
	if len(tc.scopeStack) == 0 {
		return symbols.NoScopeID
	}
	return tc.scopeStack[len(tc.scopeStack)-1]
}

func (tc *typeChecker) report(d diag.Diagnostic) {
	if tc.reporter != nil {
		tc.reporter.Report(d)
	}
}

func (tc *typeChecker) errorf(code diag.Code, sp source.Span, msg string) {
	tc.report(diag.NewError(code, sp, msg))
}

// label renders a type for a diagnostic message.
func (tc *typeChecker) label(id types.TypeID) string {
	return types.Label(tc.in, id)
}

func (tc *typeChecker) setExprType(id ast.ExprID, t types.TypeID) types.TypeID {
	tc.result.ExprTypes[id] = t
	return t
}
