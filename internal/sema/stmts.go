package sema

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/symbols"
	"tscheck/internal/types"
)

// checkStmts hoists sibling function declarations, then checks each
// statement in order.
func (tc *typeChecker) checkStmts(stmts []ast.StmtID) {
	for _, id := range stmts {
		if stmt := tc.builder.Stmts.Get(id); stmt != nil && stmt.Kind == ast.StmtFunction {
			tc.hoistFunction(id)
		}
	}
	for _, id := range stmts {
		tc.checkStmt(id)
	}
}

func (tc *typeChecker) checkStmt(id ast.StmtID) {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtLet:
		tc.checkLet(id)
	case ast.StmtFunction:
		tc.checkFunctionBody(id)
	case ast.StmtReturn:
		tc.checkReturn(id)
	case ast.StmtBlock:
		data, _ := tc.builder.Stmts.Block(id)
		scope := tc.table.Scopes.New(symbols.ScopeBlock, tc.currentScope(), stmt.Span)
		tc.pushScope(scope)
		tc.checkStmts(data.Stmts)
		tc.popScope()
	case ast.StmtAssign:
		tc.checkAssign(id)
	case ast.StmtExpr:
		data, _ := tc.builder.Stmts.Expr(id)
		tc.inferExpr(data.Expr)
	}
}

// checkLet declares one binding. The annotation wins over the inferred
// initializer type; without an annotation the symbol keeps the
// initializer's type, literals included.
func (tc *typeChecker) checkLet(id ast.StmtID) {
	data, _ := tc.builder.Stmts.Let(id)

	var declared types.TypeID
	switch {
	case data.Ann.IsValid() && data.Init.IsValid():
		declared = tc.lowerType(data.Ann)
		tc.checkExprAgainst(data.Init, declared)
	case data.Init.IsValid():
		declared = tc.inferExpr(data.Init)
	case data.Ann.IsValid():
		declared = tc.lowerType(data.Ann)
	default:
		declared = tc.in.Builtins().Any
	}

	kind := symbols.SymbolLet
	if data.Const {
		kind = symbols.SymbolConst
	}
	tc.declare(symbols.Symbol{
		Name: data.Name,
		Kind: kind,
		Span: data.NameSpan,
		Type: declared,
	})
}

// declare installs a symbol into the current scope, reporting a
// duplicate declaration with a note at the previous one.
func (tc *typeChecker) declare(sym symbols.Symbol) symbols.SymbolID {
	id, prev, err := tc.table.Declare(tc.currentScope(), sym)
	if err != nil {
		name := tc.strings.MustLookup(sym.Name)
		d := diag.NewError(diag.SemaDuplicateDeclaration, sym.Span,
			"'"+name+"' is already declared in this scope")
		if prevSym := tc.table.Symbols.Get(prev); prevSym != nil {
			d = d.WithNote(prevSym.Span, "previous declaration of '"+name+"'")
		}
		tc.report(d)
		return symbols.NoSymbolID
	}
	return id
}

// fnSignature lowers a function declaration's annotations. A missing
// return annotation yields any; the body pass refines it.
func (tc *typeChecker) fnSignature(data *ast.StmtFunctionData) (params []types.TypeID, ret types.TypeID) {
	params = make([]types.TypeID, len(data.Params))
	for i, param := range data.Params {
		if param.Ann.IsValid() {
			params[i] = tc.lowerType(param.Ann)
		} else {
			params[i] = tc.in.Builtins().Any
		}
	}
	ret = tc.in.Builtins().Any
	if data.Ret.IsValid() {
		ret = tc.lowerType(data.Ret)
	}
	return params, ret
}

// hoistFunction binds a function symbol before its sibling statements
// are checked, so earlier statements can call it.
func (tc *typeChecker) hoistFunction(id ast.StmtID) {
	data, _ := tc.builder.Stmts.Function(id)
	params, ret := tc.fnSignature(data)
	tc.fnSymbols[id] = tc.declare(symbols.Symbol{
		Name: data.Name,
		Kind: symbols.SymbolFunction,
		Span: data.NameSpan,
		Type: tc.in.Fn(params, ret),
	})
}

// checkFunctionBody checks a hoisted function's body in a fresh scope
// seeded with its parameters. When the return type is unannotated, the
// inferred union of return types replaces the hoisted placeholder.
func (tc *typeChecker) checkFunctionBody(id ast.StmtID) {
	stmt := tc.builder.Stmts.Get(id)
	data, _ := tc.builder.Stmts.Function(id)
	params, _ := tc.fnSignature(data)

	scope := tc.table.Scopes.New(symbols.ScopeFunction, tc.currentScope(), stmt.Span)
	tc.pushScope(scope)
	for i, param := range data.Params {
		tc.declare(symbols.Symbol{
			Name: param.Name,
			Kind: symbols.SymbolParam,
			Span: param.Span,
			Type: params[i],
		})
	}

	ctx := &fnContext{}
	if data.Ret.IsValid() {
		ctx.declared = tc.lowerType(data.Ret)
	}
	tc.fnStack = append(tc.fnStack, ctx)
	tc.checkStmts(data.Body)
	tc.fnStack = tc.fnStack[:len(tc.fnStack)-1]
	tc.popScope()

	if !data.Ret.IsValid() {
		ret := tc.in.Builtins().Void
		if len(ctx.observed) > 0 {
			ret = tc.in.Normalize(ctx.observed, tc.policy)
		}
		// Callers hoisted ahead of this body saw any; from here on the
		// symbol carries the inferred signature. Only the symbol this
		// declaration's hoist created is refined; a duplicate that failed
		// to declare must not touch the original binding.
		if sym := tc.table.Symbols.Get(tc.fnSymbols[id]); sym != nil && sym.Kind == symbols.SymbolFunction {
			sym.Type = tc.in.Fn(params, ret)
		}
	}
}

func (tc *typeChecker) checkReturn(id ast.StmtID) {
	stmt := tc.builder.Stmts.Get(id)
	data, _ := tc.builder.Stmts.Return(id)

	if len(tc.fnStack) == 0 {
		tc.errorf(diag.SemaMalformedInput, stmt.Span, "return outside of a function")
		if data.Value.IsValid() {
			tc.inferExpr(data.Value)
		}
		return
	}
	ctx := tc.fnStack[len(tc.fnStack)-1]

	value := tc.in.Builtins().Void
	sp := stmt.Span
	if data.Value.IsValid() {
		value = tc.inferExpr(data.Value)
		sp = tc.builder.Exprs.Get(data.Value).Span
	}

	if !ctx.declared.IsValid() {
		ctx.observed = append(ctx.observed, value)
		return
	}
	if ok, mis := types.Explain(tc.in, value, ctx.declared); !ok {
		rb := diag.ReportError(tc.reporter, diag.SemaIncompatibleAssignment, sp,
			"type '"+tc.label(value)+"' is not assignable to return type '"+tc.label(ctx.declared)+"'").
			WithTypes(tc.label(value), tc.label(ctx.declared))
		if mis.Src != value || mis.Dst != ctx.declared {
			rb.WithNote(sp, "'"+tc.label(mis.Src)+"' is not assignable to '"+tc.label(mis.Dst)+"'")
		}
		rb.Emit()
	}
}

func (tc *typeChecker) checkAssign(id ast.StmtID) {
	data, _ := tc.builder.Stmts.Assign(id)

	symID, ok := tc.table.Resolve(tc.currentScope(), data.Name)
	if !ok {
		name := tc.strings.MustLookup(data.Name)
		tc.errorf(diag.SemaUndeclaredIdentifier, data.NameSpan, "cannot find name '"+name+"'")
		tc.inferExpr(data.Value)
		return
	}
	sym := tc.table.Symbols.Get(symID)
	tc.checkExprAgainst(data.Value, sym.Type)
}
