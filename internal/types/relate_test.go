package types

import "testing"

// vocabulary builds one representative of every supported type shape.
func vocabulary(in *Interner) []TypeID {
	b := in.Builtins()
	union := in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny)
	return []TypeID{
		b.Any, b.Unknown, b.Never, b.Number, b.String, b.Boolean, b.BigInt,
		b.Symbol, b.Null, b.Undefined, b.Void, b.Object,
		in.NumberLit(42), in.StringLit("hi"), in.BoolLit(true),
		union,
		in.Array(b.Number), in.Array(union),
		in.Tuple([]TypeID{b.Number, b.String}),
		in.Fn([]TypeID{b.Number}, b.String),
	}
}

func TestAssignableReflexive(t *testing.T) {
	in := NewInterner(nil)
	for _, id := range vocabulary(in) {
		if !Assignable(in, id, id) {
			t.Errorf("assignable(%s, %s) should hold", Label(in, id), Label(in, id))
		}
	}
}

func TestAnyNeverUnknownBoundary(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	for _, id := range vocabulary(in) {
		if !Assignable(in, b.Any, id) {
			t.Errorf("any should be assignable to %s", Label(in, id))
		}
		if !Assignable(in, id, b.Any) {
			t.Errorf("%s should be assignable to any", Label(in, id))
		}
		if !Assignable(in, b.Never, id) {
			t.Errorf("never should be assignable to %s", Label(in, id))
		}
		if !Assignable(in, id, b.Unknown) {
			t.Errorf("%s should be assignable to unknown", Label(in, id))
		}
		if id != b.Never && id != b.Any && Assignable(in, id, b.Never) {
			t.Errorf("%s should not be assignable to never", Label(in, id))
		}
	}
}

func TestPrimitiveTags(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	if Assignable(in, b.Number, b.String) {
		t.Fatalf("number must not fit string")
	}
	if Assignable(in, b.Null, b.Undefined) {
		t.Fatalf("null must not fit undefined")
	}
	if !Assignable(in, b.BigInt, b.BigInt) {
		t.Fatalf("bigint must fit bigint")
	}
}

func TestLiteralWidening(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()

	cases := []struct {
		lit  TypeID
		base TypeID
	}{
		{in.NumberLit(0), b.Number},
		{in.NumberLit(42.5), b.Number},
		{in.StringLit(""), b.String},
		{in.StringLit("hello"), b.String},
		{in.BoolLit(true), b.Boolean},
		{in.BoolLit(false), b.Boolean},
	}
	for _, c := range cases {
		if !Assignable(in, c.lit, c.base) {
			t.Errorf("%s should widen to %s", Label(in, c.lit), Label(in, c.base))
		}
		if Assignable(in, c.base, c.lit) {
			t.Errorf("%s must not narrow to %s", Label(in, c.base), Label(in, c.lit))
		}
	}

	if Assignable(in, in.NumberLit(42), in.NumberLit(43)) {
		t.Fatalf("distinct literals must not be assignable")
	}
	if !Assignable(in, in.StringLit("a"), in.StringLit("a")) {
		t.Fatalf("identical literals must be assignable")
	}
	if Assignable(in, in.NumberLit(42), b.String) {
		t.Fatalf("number literal must not fit string")
	}
}

func TestUnionDistributivity(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	ab := in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny)

	targets := []TypeID{b.Number, b.String, b.Boolean, ab,
		in.Normalize([]TypeID{b.Number, b.String, b.Boolean}, UnionAbsorbAny)}
	for _, target := range targets {
		want := Assignable(in, b.Number, target) && Assignable(in, b.String, target)
		if got := Assignable(in, ab, target); got != want {
			t.Errorf("assignable(number | string, %s) = %v, want %v", Label(in, target), got, want)
		}
	}

	// Non-union source into a union target: one matching member suffices.
	if !Assignable(in, b.String, ab) {
		t.Fatalf("string should fit number | string")
	}
	if Assignable(in, b.Boolean, ab) {
		t.Fatalf("boolean should not fit number | string")
	}
	if !Assignable(in, in.StringLit("hi"), ab) {
		t.Fatalf("string literal should fit number | string via widening")
	}
}

func TestArrayCovariance(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	if !Assignable(in, in.Array(b.Number), in.Array(b.Number)) {
		t.Fatalf("number[] should fit number[]")
	}
	if Assignable(in, in.Array(b.String), in.Array(b.Number)) {
		t.Fatalf("string[] must not fit number[]")
	}
	if !Assignable(in, in.Array(in.NumberLit(1)), in.Array(b.Number)) {
		t.Fatalf("1[] should fit number[] via element widening")
	}
	if Assignable(in, in.Array(b.Number), b.Number) {
		t.Fatalf("array must not fit a primitive")
	}
}

func TestTuplePairwise(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	numStr := in.Tuple([]TypeID{b.Number, b.String})

	if !Assignable(in, in.Tuple([]TypeID{in.NumberLit(1), in.StringLit("a")}), numStr) {
		t.Fatalf("[1, \"a\"] should fit [number, string]")
	}
	if Assignable(in, in.Tuple([]TypeID{b.String, b.Number}), numStr) {
		t.Fatalf("[string, number] must not fit [number, string]")
	}
	if Assignable(in, in.Tuple([]TypeID{b.Number}), numStr) {
		t.Fatalf("arity mismatch must not be assignable")
	}
	if Assignable(in, in.Array(b.Number), numStr) {
		t.Fatalf("array must not fit a tuple")
	}
}

func TestFunctionVariance(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	numLit := in.NumberLit(1)

	// Covariant return: a function returning 1 fits a slot wanting number.
	if !Assignable(in, in.Fn([]TypeID{b.Number}, numLit), in.Fn([]TypeID{b.Number}, b.Number)) {
		t.Fatalf("return covariance failed")
	}
	if Assignable(in, in.Fn([]TypeID{b.Number}, b.Number), in.Fn([]TypeID{b.Number}, numLit)) {
		t.Fatalf("return covariance must not invert")
	}

	// Contravariant parameters: a function accepting number fits a slot whose
	// callers pass only the literal 1.
	if !Assignable(in, in.Fn([]TypeID{b.Number}, b.Void), in.Fn([]TypeID{numLit}, b.Void)) {
		t.Fatalf("parameter contravariance failed")
	}
	if Assignable(in, in.Fn([]TypeID{numLit}, b.Void), in.Fn([]TypeID{b.Number}, b.Void)) {
		t.Fatalf("parameter contravariance must not invert")
	}

	// Arity must match exactly.
	if Assignable(in, in.Fn([]TypeID{b.Number}, b.Void), in.Fn([]TypeID{b.Number, b.Number}, b.Void)) {
		t.Fatalf("parameter count mismatch must fail")
	}
}

func TestExplainPointsAtInnerMismatch(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	src := in.Tuple([]TypeID{b.Number, b.Number})
	dst := in.Tuple([]TypeID{b.Number, b.String})

	ok, mis := Explain(in, src, dst)
	if ok {
		t.Fatalf("expected failure")
	}
	if mis.Src != b.Number || mis.Dst != b.String {
		t.Fatalf("expected inner number/string mismatch, got %s -> %s",
			Label(in, mis.Src), Label(in, mis.Dst))
	}
}
