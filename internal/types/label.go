package types

import (
	"strconv"
	"strings"
)

// Label returns a user-friendly label for a TypeID, in source notation:
// `"hi"`, `42`, `number | string`, `number[]`, `[number, string]`,
// `(number) => string`.
func Label(in *Interner, id TypeID) string {
	return labelDepth(in, id, 0)
}

func labelDepth(in *Interner, id TypeID, depth int) string {
	if in == nil || id == NoTypeID {
		return "?"
	}
	if depth > 6 {
		return "..."
	}
	tt, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindAny, KindUnknown, KindNever, KindNumber, KindString, KindBoolean,
		KindBigInt, KindSymbol, KindNull, KindUndefined, KindVoid, KindObject:
		return tt.Kind.String()
	case KindNumberLit:
		if v, ok := in.NumberLitValue(id); ok {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return "?"
	case KindStringLit:
		if v, ok := in.StringLitValue(id); ok {
			return strconv.Quote(v)
		}
		return "?"
	case KindBoolLit:
		if v, ok := in.BoolLitValue(id); ok {
			return strconv.FormatBool(v)
		}
		return "?"
	case KindArray:
		elem := labelDepth(in, tt.Elem, depth+1)
		if needsParens(in, tt.Elem) {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case KindTuple:
		info, ok := in.TupleInfo(id)
		if !ok {
			return "[?]"
		}
		parts := make([]string, len(info.Elems))
		for i, elem := range info.Elems {
			parts[i] = labelDepth(in, elem, depth+1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindUnion:
		info, ok := in.UnionInfo(id)
		if !ok {
			return "?"
		}
		parts := make([]string, len(info.Display))
		for i, member := range info.Display {
			parts[i] = labelDepth(in, member, depth+1)
		}
		return strings.Join(parts, " | ")
	case KindFn:
		info, ok := in.FnInfo(id)
		if !ok {
			return "(?) => ?"
		}
		params := make([]string, len(info.Params))
		for i, param := range info.Params {
			params[i] = labelDepth(in, param, depth+1)
		}
		ret := labelDepth(in, info.Result, depth+1)
		return "(" + strings.Join(params, ", ") + ") => " + ret
	default:
		return "?"
	}
}

// needsParens reports whether the element label must be parenthesized inside
// an array suffix (union and function elements would parse differently).
func needsParens(in *Interner, id TypeID) bool {
	switch in.Kind(id) {
	case KindUnion, KindFn:
		return true
	default:
		return false
	}
}
