package types

// Mismatch pinpoints the innermost failing pair when a compound assignability
// check fails, so diagnostics can name the offending element or parameter
// rather than only the outermost types.
type Mismatch struct {
	Src TypeID
	Dst TypeID
}

// Assignable reports whether a value of type src may be used where dst is
// expected. Pure function over the interner; no mutation.
func Assignable(in *Interner, src, dst TypeID) bool {
	ok, _ := Explain(in, src, dst)
	return ok
}

// Explain is Assignable plus the first sub-mismatch found when the answer is
// false. For a false result the mismatch is always populated; it degenerates
// to the outer pair when the failure is not inside a compound type.
func Explain(in *Interner, src, dst TypeID) (bool, Mismatch) {
	outer := Mismatch{Src: src, Dst: dst}
	if in == nil {
		return false, outer
	}
	// Canonical interning makes reflexivity a handle comparison.
	if src == dst && src != NoTypeID {
		return true, Mismatch{}
	}

	srcT, okSrc := in.Lookup(src)
	dstT, okDst := in.Lookup(dst)
	if !okSrc || !okDst {
		return false, outer
	}

	// Escape hatches before any structural rule.
	if srcT.Kind == KindAny || dstT.Kind == KindAny {
		return true, Mismatch{}
	}
	if srcT.Kind == KindNever {
		return true, Mismatch{}
	}
	if dstT.Kind == KindUnknown {
		return true, Mismatch{}
	}

	// A union source must fit member-by-member, whatever the target is.
	if srcInfo, ok := in.UnionInfo(src); ok {
		for _, member := range srcInfo.Members {
			if memberOK, mis := Explain(in, member, dst); !memberOK {
				return false, mis
			}
		}
		return true, Mismatch{}
	}

	// A non-union source fits a union target when any member accepts it.
	if dstInfo, ok := in.UnionInfo(dst); ok {
		for _, member := range dstInfo.Members {
			if Assignable(in, src, member) {
				return true, Mismatch{}
			}
		}
		return false, outer
	}

	// Literal widening: a literal fits its base primitive. Literal-to-literal
	// with equal tag and value already hit the identity fast path.
	if srcT.Kind.IsLiteral() && srcT.Kind.LiteralBase() == dstT.Kind {
		return true, Mismatch{}
	}

	switch dstT.Kind {
	case KindArray:
		if srcT.Kind != KindArray {
			return false, outer
		}
		if ok, mis := Explain(in, srcT.Elem, dstT.Elem); !ok {
			return false, mis
		}
		return true, Mismatch{}

	case KindTuple:
		srcInfo, srcOK := in.TupleInfo(src)
		dstInfo, dstOK := in.TupleInfo(dst)
		if !srcOK || !dstOK || len(srcInfo.Elems) != len(dstInfo.Elems) {
			return false, outer
		}
		for i := range dstInfo.Elems {
			if ok, mis := Explain(in, srcInfo.Elems[i], dstInfo.Elems[i]); !ok {
				return false, mis
			}
		}
		return true, Mismatch{}

	case KindFn:
		srcInfo, srcOK := in.FnInfo(src)
		dstInfo, dstOK := in.FnInfo(dst)
		if !srcOK || !dstOK || len(srcInfo.Params) != len(dstInfo.Params) {
			return false, outer
		}
		// Parameters are contravariant, the return type covariant.
		for i := range dstInfo.Params {
			if ok, mis := Explain(in, dstInfo.Params[i], srcInfo.Params[i]); !ok {
				return false, mis
			}
		}
		if ok, mis := Explain(in, srcInfo.Result, dstInfo.Result); !ok {
			return false, mis
		}
		return true, Mismatch{}
	}

	// Remaining primitive pairings match by tag only, and the identity fast
	// path already handled that. Everything else is not assignable.
	return false, outer
}
