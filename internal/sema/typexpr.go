package sema

import (
	"strconv"

	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/types"
)

// lowerType translates a type annotation node into a semantic type.
// Unknown names and malformed nodes report and recover with any.
func (tc *typeChecker) lowerType(id ast.TypeID) types.TypeID {
	any := tc.in.Builtins().Any
	if !id.IsValid() {
		return any
	}
	node := tc.builder.Types.Get(id)
	if node == nil {
		return any
	}

	switch node.Kind {
	case ast.TypeName:
		data, _ := tc.builder.Types.Name(id)
		if t, ok := tc.typeNames[data.Name]; ok {
			return t
		}
		name := tc.strings.MustLookup(data.Name)
		tc.errorf(diag.SemaUndeclaredIdentifier, node.Span, "unknown type name '"+name+"'")
		return any

	case ast.TypeLit:
		data, _ := tc.builder.Types.Lit(id)
		text := tc.strings.MustLookup(data.Value)
		switch data.Kind {
		case ast.ExprLitNumber:
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				tc.errorf(diag.SemaMalformedInput, node.Span, "malformed number literal type "+text)
				return any
			}
			return tc.in.NumberLit(value)
		case ast.ExprLitString:
			return tc.in.StringLit(text)
		case ast.ExprLitTrue:
			return tc.in.BoolLit(true)
		case ast.ExprLitFalse:
			return tc.in.BoolLit(false)
		default:
			tc.errorf(diag.SemaMalformedInput, node.Span, "unsupported literal type")
			return any
		}

	case ast.TypeArray:
		data, _ := tc.builder.Types.Array(id)
		return tc.in.Array(tc.lowerType(data.Elem))

	case ast.TypeTuple:
		data, _ := tc.builder.Types.Tuple(id)
		elems := make([]types.TypeID, len(data.Elems))
		for i, elem := range data.Elems {
			elems[i] = tc.lowerType(elem)
		}
		return tc.in.Tuple(elems)

	case ast.TypeUnion:
		data, _ := tc.builder.Types.Union(id)
		members := make([]types.TypeID, len(data.Members))
		for i, member := range data.Members {
			members[i] = tc.lowerType(member)
		}
		return tc.in.Normalize(members, tc.policy)

	case ast.TypeFn:
		data, _ := tc.builder.Types.Fn(id)
		params := make([]types.TypeID, len(data.Params))
		for i, param := range data.Params {
			params[i] = tc.lowerType(param.Ann)
		}
		return tc.in.Fn(params, tc.lowerType(data.Ret))

	default:
		tc.errorf(diag.SemaMalformedInput, node.Span, "malformed type annotation")
		return any
	}
}
