package types

import "testing"

func TestNormalizeCollapsesSingleton(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	if got := in.Normalize([]TypeID{b.Number}, UnionAbsorbAny); got != b.Number {
		t.Fatalf("singleton should collapse to the member, got %v", got)
	}
	if got := in.Normalize([]TypeID{b.Number, b.Number}, UnionAbsorbAny); got != b.Number {
		t.Fatalf("duplicates then singleton should collapse, got %v", got)
	}
}

func TestNormalizeEmptyIsNever(t *testing.T) {
	in := NewInterner(nil)
	if got := in.Normalize(nil, UnionAbsorbAny); got != in.Builtins().Never {
		t.Fatalf("empty union should normalize to never, got %v", got)
	}
}

func TestNormalizeFlattensNestedUnions(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	inner := in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny)
	outer := in.Normalize([]TypeID{inner, b.Boolean}, UnionAbsorbAny)

	info, ok := in.UnionInfo(outer)
	if !ok {
		t.Fatalf("expected a union")
	}
	if len(info.Members) != 3 {
		t.Fatalf("expected 3 flattened members, got %d", len(info.Members))
	}
	for _, m := range info.Members {
		if in.Kind(m) == KindUnion {
			t.Fatalf("nested union survived normalization")
		}
	}
}

func TestNormalizeIdentityIgnoresMemberOrder(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()
	u1 := in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny)
	u2 := in.Normalize([]TypeID{b.String, b.Number}, UnionAbsorbAny)
	if u1 != u2 {
		t.Fatalf("member order must not affect union identity")
	}

	// Display order still reflects the first registration.
	info, _ := in.UnionInfo(u1)
	if len(info.Display) != 2 || info.Display[0] != b.Number {
		t.Fatalf("display order should preserve first registration")
	}
}

func TestNormalizeAnyPolicy(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()

	if got := in.Normalize([]TypeID{b.Any, b.Number}, UnionAbsorbAny); got != b.Any {
		t.Fatalf("absorb policy: union with any should collapse to any, got %v", got)
	}

	kept := in.Normalize([]TypeID{b.Any, b.Number}, UnionKeepAny)
	info, ok := in.UnionInfo(kept)
	if !ok || len(info.Members) != 2 {
		t.Fatalf("keep policy: any should stay a member, got %v", kept)
	}
}

func TestLabels(t *testing.T) {
	in := NewInterner(nil)
	b := in.Builtins()

	tests := []struct {
		id   TypeID
		want string
	}{
		{b.Number, "number"},
		{in.NumberLit(42), "42"},
		{in.StringLit("hi"), `"hi"`},
		{in.BoolLit(true), "true"},
		{in.Array(b.Number), "number[]"},
		{in.Tuple([]TypeID{b.Number, b.String}), "[number, string]"},
		{in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny), "number | string"},
		{in.Fn([]TypeID{b.Number}, b.String), "(number) => string"},
		{in.Array(in.Normalize([]TypeID{b.Number, b.String}, UnionAbsorbAny)), "(number | string)[]"},
	}
	for _, tt := range tests {
		if got := Label(in, tt.id); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
