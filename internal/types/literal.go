package types

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"tscheck/internal/source"
)

// NumberLit interns the literal type for a concrete numeric value.
// Dedup is keyed on the value's bit pattern, so 42 and 42.0 share one type.
func (in *Interner) NumberLit(value float64) TypeID {
	bits := math.Float64bits(value)
	if id, ok := in.numIndex[bits]; ok {
		return id
	}
	slot, err := safecast.Conv[uint32](len(in.numLits))
	if err != nil {
		panic(fmt.Errorf("number literal overflow: %w", err))
	}
	in.numLits = append(in.numLits, value)
	id := in.internRaw(Type{Kind: KindNumberLit, Payload: slot})
	in.numIndex[bits] = id
	return id
}

// NumberLitValue returns the numeric value of a number literal type.
func (in *Interner) NumberLitValue(id TypeID) (float64, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindNumberLit || int(tt.Payload) >= len(in.numLits) {
		return 0, false
	}
	return in.numLits[tt.Payload], true
}

// StringLit interns the literal type for a concrete string value.
// Identity rides on the string interner, so equal values share one type.
func (in *Interner) StringLit(value string) TypeID {
	sid := in.Strings.Intern(value)
	return in.Intern(Type{Kind: KindStringLit, Payload: uint32(sid)})
}

// StringLitValue returns the string value of a string literal type.
func (in *Interner) StringLitValue(id TypeID) (string, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindStringLit {
		return "", false
	}
	return in.Strings.Lookup(source.StringID(tt.Payload))
}

// BoolLit interns the literal type for true or false.
func (in *Interner) BoolLit(value bool) TypeID {
	payload := uint32(0)
	if value {
		payload = 1
	}
	return in.Intern(Type{Kind: KindBoolLit, Payload: payload})
}

// BoolLitValue returns the value of a boolean literal type.
func (in *Interner) BoolLitValue(id TypeID) (bool, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindBoolLit {
		return false, false
	}
	return tt.Payload == 1, true
}

// LiteralBase returns the interned primitive a literal type widens to.
func (in *Interner) LiteralBase(id TypeID) TypeID {
	switch in.Kind(id) {
	case KindNumberLit:
		return in.builtins.Number
	case KindStringLit:
		return in.builtins.String
	case KindBoolLit:
		return in.builtins.Boolean
	default:
		return NoTypeID
	}
}

// Widen maps literal types to their base primitive and leaves everything else
// untouched.
func (in *Interner) Widen(id TypeID) TypeID {
	if base := in.LiteralBase(id); base != NoTypeID {
		return base
	}
	return id
}
