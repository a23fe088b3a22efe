package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// UnionPolicy controls how Normalize treats an `any` member. The language
// reference leaves this open, so both behaviors are supported.
type UnionPolicy uint8

const (
	// UnionAbsorbAny collapses a union containing `any` to `any`.
	UnionAbsorbAny UnionPolicy = iota
	// UnionKeepAny keeps `any` as an ordinary member.
	UnionKeepAny
)

// UnionInfo stores the members of a union type. Members is the canonical
// (sorted) set used for identity; Display preserves the order the union was
// first written in.
type UnionInfo struct {
	Members []TypeID
	Display []TypeID
}

// Normalize reduces a member list to canonical form: nested unions are
// flattened, structural duplicates removed, a singleton collapses to its only
// member, and an empty list collapses to `never`. The result is a union TypeID
// only when two or more members survive.
func (in *Interner) Normalize(members []TypeID, policy UnionPolicy) TypeID {
	flat := make([]TypeID, 0, len(members))
	seen := make(map[TypeID]bool, len(members))

	var add func(id TypeID)
	add = func(id TypeID) {
		if id == NoTypeID {
			return
		}
		if info, ok := in.UnionInfo(id); ok {
			for _, m := range info.Display {
				add(m)
			}
			return
		}
		if seen[id] {
			return
		}
		seen[id] = true
		flat = append(flat, id)
	}
	for _, m := range members {
		add(m)
	}

	if policy == UnionAbsorbAny && seen[in.builtins.Any] {
		return in.builtins.Any
	}

	switch len(flat) {
	case 0:
		return in.builtins.Never
	case 1:
		return flat[0]
	}

	canonical := cloneTypeIDs(flat)
	slices.Sort(canonical)

	// Linear scan over registered unions: the canonical member set is the
	// identity, independent of display order.
	for id := TypeID(1); int(id) < len(in.types); id++ {
		if in.types[id].Kind != KindUnion {
			continue
		}
		info := in.unions[in.types[id].Payload]
		if slices.Equal(info.Members, canonical) {
			return id
		}
	}

	slot, err := safecast.Conv[uint32](len(in.unions))
	if err != nil {
		panic(fmt.Errorf("union info overflow: %w", err))
	}
	in.unions = append(in.unions, UnionInfo{
		Members: canonical,
		Display: cloneTypeIDs(flat),
	})
	return in.internRaw(Type{Kind: KindUnion, Payload: slot})
}

// UnionInfo returns member metadata for the provided union TypeID.
func (in *Interner) UnionInfo(id TypeID) (*UnionInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUnion {
		return nil, false
	}
	if int(tt.Payload) >= len(in.unions) {
		return nil, false
	}
	return &in.unions[tt.Payload], true
}
