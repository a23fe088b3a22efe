package sema

import (
	"fmt"
	"strconv"

	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/source"
	"tscheck/internal/symbols"
	"tscheck/internal/types"
)

// inferExpr computes and records the type of an expression. It never
// fails: unresolved or ill-typed expressions recover with any after
// reporting.
func (tc *typeChecker) inferExpr(id ast.ExprID) types.TypeID {
	any := tc.in.Builtins().Any
	if !id.IsValid() {
		return any
	}
	expr := tc.builder.Exprs.Get(id)
	if expr == nil {
		return any
	}

	switch expr.Kind {
	case ast.ExprIdent:
		return tc.setExprType(id, tc.inferIdent(id))
	case ast.ExprLit:
		return tc.setExprType(id, tc.inferLiteral(id))
	case ast.ExprArray:
		return tc.setExprType(id, tc.inferArray(id))
	case ast.ExprBinary:
		return tc.setExprType(id, tc.inferBinary(id))
	case ast.ExprUnary:
		return tc.setExprType(id, tc.inferUnary(id))
	case ast.ExprCall:
		return tc.setExprType(id, tc.inferCall(id))
	case ast.ExprIndex:
		return tc.setExprType(id, tc.inferIndex(id))
	case ast.ExprGroup:
		data, _ := tc.builder.Exprs.Group(id)
		return tc.setExprType(id, tc.inferExpr(data.Inner))
	case ast.ExprArrow:
		return tc.setExprType(id, tc.inferArrow(id))
	default:
		tc.errorf(diag.SemaMalformedInput, expr.Span, "malformed expression")
		return tc.setExprType(id, any)
	}
}

func (tc *typeChecker) inferIdent(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Ident(id)
	if symID, ok := tc.table.Resolve(tc.currentScope(), data.Name); ok {
		return tc.table.Symbols.Get(symID).Type
	}
	name := tc.strings.MustLookup(data.Name)
	tc.errorf(diag.SemaUndeclaredIdentifier, expr.Span, "cannot find name '"+name+"'")
	return tc.in.Builtins().Any
}

func (tc *typeChecker) inferLiteral(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Literal(id)
	b := tc.in.Builtins()

	switch data.Kind {
	case ast.ExprLitNumber:
		text := tc.strings.MustLookup(data.Value)
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			tc.errorf(diag.SemaMalformedInput, expr.Span, "malformed number literal "+text)
			return b.Number
		}
		return tc.in.NumberLit(value)
	case ast.ExprLitBigInt:
		return b.BigInt
	case ast.ExprLitString:
		return tc.in.StringLit(tc.strings.MustLookup(data.Value))
	case ast.ExprLitTrue:
		return tc.in.BoolLit(true)
	case ast.ExprLitFalse:
		return tc.in.BoolLit(false)
	case ast.ExprLitNull:
		return b.Null
	case ast.ExprLitUndefined:
		return b.Undefined
	default:
		tc.errorf(diag.SemaMalformedInput, expr.Span, "malformed literal")
		return b.Any
	}
}

// inferArray types a literal without a contextual target: the element
// type is the normalized union of the member types, never for [].
func (tc *typeChecker) inferArray(id ast.ExprID) types.TypeID {
	data, _ := tc.builder.Exprs.Array(id)
	if len(data.Elems) == 0 {
		return tc.in.Array(tc.in.Builtins().Never)
	}
	members := make([]types.TypeID, len(data.Elems))
	for i, elem := range data.Elems {
		members[i] = tc.inferExpr(elem)
	}
	return tc.in.Array(tc.in.Normalize(members, tc.policy))
}

func (tc *typeChecker) inferCall(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Call(id)
	b := tc.in.Builtins()

	callee := tc.inferExpr(data.Callee)
	if callee == b.Any {
		for _, arg := range data.Args {
			tc.inferExpr(arg)
		}
		return b.Any
	}

	info, ok := tc.in.FnInfo(callee)
	if !ok {
		tc.errorf(diag.SemaNotCallable, tc.builder.Exprs.Get(data.Callee).Span,
			"type '"+tc.label(callee)+"' is not callable")
		for _, arg := range data.Args {
			tc.inferExpr(arg)
		}
		return b.Any
	}

	// Arity first, then per-argument checks over the shared prefix.
	if len(data.Args) != len(info.Params) {
		tc.errorf(diag.SemaArityMismatch, expr.Span,
			fmt.Sprintf("expected %d arguments, got %d", len(info.Params), len(data.Args)))
	}
	n := min(len(data.Args), len(info.Params))
	for i := 0; i < n; i++ {
		tc.checkExprAgainst(data.Args[i], info.Params[i])
	}
	for i := n; i < len(data.Args); i++ {
		tc.inferExpr(data.Args[i])
	}
	return info.Result
}

// inferIndex types a[i]: element type for arrays, the addressed element
// for tuples with a literal index, string for string targets.
func (tc *typeChecker) inferIndex(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Index(id)
	b := tc.in.Builtins()

	target := tc.inferExpr(data.Target)
	index := tc.inferExpr(data.Index)
	targetSpan := expr.Span
	if t := tc.builder.Exprs.Get(data.Target); t != nil {
		targetSpan = t.Span
	}
	indexSpan := expr.Span
	if ix := tc.builder.Exprs.Get(data.Index); ix != nil {
		indexSpan = ix.Span
	}

	if target == b.Any {
		return b.Any
	}

	widenedIndex := tc.in.Widen(index)
	numberIndex := widenedIndex == b.Number || widenedIndex == b.Any

	targetT := tc.in.MustLookup(target)
	switch targetT.Kind {
	case types.KindArray:
		if !numberIndex {
			tc.errorf(diag.SemaInvalidOperation, indexSpan,
				"array index must be a number, got '"+tc.label(index)+"'")
		}
		return targetT.Elem

	case types.KindTuple:
		info, _ := tc.in.TupleInfo(target)
		if value, ok := tc.in.NumberLitValue(index); ok {
			i := int(value)
			if float64(i) != value || i < 0 || i >= len(info.Elems) {
				tc.errorf(diag.SemaInvalidOperation, indexSpan,
					fmt.Sprintf("index %v is out of range for '%s'", value, tc.label(target)))
				return b.Any
			}
			return info.Elems[i]
		}
		if !numberIndex {
			tc.errorf(diag.SemaInvalidOperation, indexSpan,
				"tuple index must be a number, got '"+tc.label(index)+"'")
			return b.Any
		}
		return tc.in.Normalize(info.Elems, tc.policy)

	case types.KindString, types.KindStringLit:
		if !numberIndex {
			tc.errorf(diag.SemaInvalidOperation, indexSpan,
				"string index must be a number, got '"+tc.label(index)+"'")
		}
		return b.String

	default:
		tc.errorf(diag.SemaInvalidOperation, targetSpan,
			"type '"+tc.label(target)+"' cannot be indexed")
		return b.Any
	}
}

// inferArrow types an arrow function; the body is a single expression
// checked in a fresh scope seeded with the parameters.
func (tc *typeChecker) inferArrow(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Arrow(id)
	b := tc.in.Builtins()

	params := make([]types.TypeID, len(data.Params))
	for i, param := range data.Params {
		if param.Ann.IsValid() {
			params[i] = tc.lowerType(param.Ann)
		} else {
			params[i] = b.Any
		}
	}

	scope := tc.table.Scopes.New(symbols.ScopeFunction, tc.currentScope(), expr.Span)
	tc.pushScope(scope)
	for i, param := range data.Params {
		tc.declare(symbols.Symbol{
			Name: param.Name,
			Kind: symbols.SymbolParam,
			Span: param.Span,
			Type: params[i],
		})
	}

	var ret types.TypeID
	if data.Ret.IsValid() {
		ret = tc.lowerType(data.Ret)
		tc.checkExprAgainst(data.Body, ret)
	} else {
		ret = tc.inferExpr(data.Body)
	}
	tc.popScope()

	return tc.in.Fn(params, ret)
}

// checkExprAgainst infers expr and checks it against dst. Array
// literals meeting a tuple target are checked position by position so
// each offending element gets its own diagnostic.
func (tc *typeChecker) checkExprAgainst(exprID ast.ExprID, dst types.TypeID) {
	if !exprID.IsValid() {
		return
	}
	expr := tc.builder.Exprs.Get(exprID)

	if expr.Kind == ast.ExprArray {
		if dstInfo, ok := tc.in.TupleInfo(dst); ok {
			data, _ := tc.builder.Exprs.Array(exprID)
			if len(data.Elems) != len(dstInfo.Elems) {
				src := tc.inferExpr(exprID)
				tc.reportNotAssignable(expr.Span, src, dst, types.Mismatch{Src: src, Dst: dst})
				return
			}
			for i, elem := range data.Elems {
				tc.checkExprAgainst(elem, dstInfo.Elems[i])
			}
			tc.setExprType(exprID, dst)
			return
		}
	}

	src := tc.inferExpr(exprID)
	if ok, mis := types.Explain(tc.in, src, dst); !ok {
		tc.reportNotAssignable(expr.Span, src, dst, mis)
	}
}

func (tc *typeChecker) reportNotAssignable(sp source.Span, src, dst types.TypeID, mis types.Mismatch) {
	rb := diag.ReportError(tc.reporter, diag.SemaIncompatibleAssignment, sp,
		"type '"+tc.label(src)+"' is not assignable to type '"+tc.label(dst)+"'").
		WithTypes(tc.label(src), tc.label(dst))
	if mis.Src != src || mis.Dst != dst {
		rb.WithNote(sp, "'"+tc.label(mis.Src)+"' is not assignable to '"+tc.label(mis.Dst)+"'")
	}
	rb.Emit()
}

// inferBinary applies the operator result table after widening literal
// operand types to their base primitives.
func (tc *typeChecker) inferBinary(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Binary(id)
	b := tc.in.Builtins()

	left := tc.in.Widen(tc.inferExpr(data.Left))
	right := tc.in.Widen(tc.inferExpr(data.Right))

	mixedBigInt := func() types.TypeID {
		if left == b.BigInt && right == b.BigInt {
			return b.BigInt
		}
		if left == b.Number && right == b.Number {
			return b.Number
		}
		if left == b.BigInt || right == b.BigInt {
			tc.errorf(diag.SemaInvalidOperation, expr.Span,
				"operator '"+data.Op.String()+"' cannot mix '"+tc.label(left)+"' and '"+tc.label(right)+"'")
			return b.Number
		}
		return types.NoTypeID
	}

	switch data.Op {
	case ast.BinAdd:
		if left == b.String || right == b.String {
			return b.String
		}
		if t := mixedBigInt(); t.IsValid() {
			return t
		}
		return b.Number

	case ast.BinSub, ast.BinMul, ast.BinDiv, ast.BinRem, ast.BinPow:
		if t := mixedBigInt(); t.IsValid() {
			return t
		}
		return b.Any

	case ast.BinBitAnd, ast.BinBitOr, ast.BinBitXor,
		ast.BinShl, ast.BinShr, ast.BinShrZero:
		if t := mixedBigInt(); t.IsValid() {
			return t
		}
		return b.Number

	case ast.BinLt, ast.BinLtEq, ast.BinGt, ast.BinGtEq,
		ast.BinEq, ast.BinNotEq, ast.BinStrictEq, ast.BinStrictNotEq,
		ast.BinLogicalAnd, ast.BinLogicalOr:
		return b.Boolean

	default:
		tc.errorf(diag.SemaMalformedInput, expr.Span, "malformed binary operator")
		return b.Any
	}
}

func (tc *typeChecker) inferUnary(id ast.ExprID) types.TypeID {
	expr := tc.builder.Exprs.Get(id)
	data, _ := tc.builder.Exprs.Unary(id)
	b := tc.in.Builtins()

	operand := tc.in.Widen(tc.inferExpr(data.Operand))
	switch data.Op {
	case ast.UnNeg:
		switch operand {
		case b.BigInt:
			return b.BigInt
		case b.Number, b.Any:
			return b.Number
		default:
			tc.errorf(diag.SemaInvalidOperation, expr.Span,
				"operator '-' cannot negate '"+tc.label(operand)+"'")
			return b.Number
		}
	case ast.UnNot:
		return b.Boolean
	case ast.UnTypeof:
		return b.String
	default:
		tc.errorf(diag.SemaMalformedInput, expr.Span, "malformed unary operator")
		return b.Any
	}
}
