package types

import (
	"fmt"

	"fortio.org/safecast"

	"tscheck/internal/source"
)

// Builtins stores TypeIDs for the primitive types every check run needs.
type Builtins struct {
	Invalid   TypeID
	Any       TypeID
	Unknown   TypeID
	Never     TypeID
	Number    TypeID
	String    TypeID
	Boolean   TypeID
	BigInt    TypeID
	Symbol    TypeID
	Null      TypeID
	Undefined TypeID
	Void      TypeID
	Object    TypeID
}

// Interner provides stable TypeIDs for structurally equal types: interning is
// canonical, so two types are structurally equal iff their TypeIDs match.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins

	numLits  []float64
	numIndex map[uint64]TypeID

	tuples []TupleInfo
	unions []UnionInfo
	fns    []FnInfo

	// Strings resolves string-literal payloads; shared with the front end.
	Strings *source.Interner
}

// NewInterner constructs an interner seeded with the built-in primitives.
// If strings is nil, a fresh string interner is allocated.
func NewInterner(strings *source.Interner) *Interner {
	if strings == nil {
		strings = source.NewInterner()
	}
	in := &Interner{
		index:    make(map[typeKey]TypeID, 64),
		numIndex: make(map[uint64]TypeID, 16),
		Strings:  strings,
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	in.builtins.Never = in.Intern(Type{Kind: KindNever})
	in.builtins.Number = in.Intern(Type{Kind: KindNumber})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Boolean = in.Intern(Type{Kind: KindBoolean})
	in.builtins.BigInt = in.Intern(Type{Kind: KindBigInt})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	in.builtins.Undefined = in.Intern(Type{Kind: KindUndefined})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Symbol = in.Intern(Type{Kind: KindSymbol})
	in.builtins.Object = in.Intern(Type{Kind: KindObject})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Kind returns the kind for id, or KindInvalid for unknown IDs.
func (in *Interner) Kind(id TypeID) Kind {
	tt, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}

// Array interns the array type elem[].
func (in *Interner) Array(elem TypeID) TypeID {
	return in.Intern(MakeArray(elem))
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Payload uint32
}

func cloneTypeIDs(ids []TypeID) []TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}
