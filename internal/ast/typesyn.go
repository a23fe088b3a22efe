package ast

import (
	"tscheck/internal/source"
)

// TypeKind enumerates type annotation syntax nodes. These are surface syntax;
// the checker lowers them into semantic types.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeName             // number, string, any, ...
	TypeLit              // literal type: "north", 42, true
	TypeArray            // T[]
	TypeTuple            // [T, U]
	TypeUnion            // A | B
	TypeFn               // (p: T) => R
)

// TypeNode is a type annotation node header.
type TypeNode struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

type TypeNameData struct {
	Name source.StringID
}

type TypeLitData struct {
	Kind  ExprLitKind // number, string, true, false
	Value source.StringID
}

type TypeArrayData struct {
	Elem TypeID
}

type TypeTupleData struct {
	Elems []TypeID
}

type TypeUnionData struct {
	Members []TypeID
}

type TypeFnData struct {
	Params []Param
	Ret    TypeID
}

// Types manages allocation of type annotation nodes.
type Types struct {
	Arena  *Arena[TypeNode]
	Names  *Arena[TypeNameData]
	Lits   *Arena[TypeLitData]
	Arrays *Arena[TypeArrayData]
	Tuples *Arena[TypeTupleData]
	Unions *Arena[TypeUnionData]
	Fns    *Arena[TypeFnData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Types{
		Arena:  NewArena[TypeNode](capHint),
		Names:  NewArena[TypeNameData](capHint),
		Lits:   NewArena[TypeLitData](capHint),
		Arrays: NewArena[TypeArrayData](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
		Unions: NewArena[TypeUnionData](capHint),
		Fns:    NewArena[TypeFnData](capHint),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeNode{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the type node with the given ID.
func (t *Types) Get(id TypeID) *TypeNode {
	return t.Arena.Get(uint32(id))
}

// NewName creates a named type reference.
func (t *Types) NewName(span source.Span, name source.StringID) TypeID {
	payload := t.Names.Allocate(TypeNameData{Name: name})
	return t.new(TypeName, span, PayloadID(payload))
}

// Name returns the name data for the given type node.
func (t *Types) Name(id TypeID) (*TypeNameData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeName {
		return nil, false
	}
	return t.Names.Get(uint32(node.Payload)), true
}

// NewLit creates a literal type node.
func (t *Types) NewLit(span source.Span, kind ExprLitKind, value source.StringID) TypeID {
	payload := t.Lits.Allocate(TypeLitData{Kind: kind, Value: value})
	return t.new(TypeLit, span, PayloadID(payload))
}

// Lit returns the literal data for the given type node.
func (t *Types) Lit(id TypeID) (*TypeLitData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeLit {
		return nil, false
	}
	return t.Lits.Get(uint32(node.Payload)), true
}

// NewArray creates an array type node.
func (t *Types) NewArray(span source.Span, elem TypeID) TypeID {
	payload := t.Arrays.Allocate(TypeArrayData{Elem: elem})
	return t.new(TypeArray, span, PayloadID(payload))
}

// Array returns the array data for the given type node.
func (t *Types) Array(id TypeID) (*TypeArrayData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(node.Payload)), true
}

// NewTuple creates a tuple type node.
func (t *Types) NewTuple(span source.Span, elems []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{Elems: elems})
	return t.new(TypeTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for the given type node.
func (t *Types) Tuple(id TypeID) (*TypeTupleData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(node.Payload)), true
}

// NewUnion creates a union type node.
func (t *Types) NewUnion(span source.Span, members []TypeID) TypeID {
	payload := t.Unions.Allocate(TypeUnionData{Members: members})
	return t.new(TypeUnion, span, PayloadID(payload))
}

// Union returns the union data for the given type node.
func (t *Types) Union(id TypeID) (*TypeUnionData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeUnion {
		return nil, false
	}
	return t.Unions.Get(uint32(node.Payload)), true
}

// NewFn creates a function type node.
func (t *Types) NewFn(span source.Span, params []Param, ret TypeID) TypeID {
	payload := t.Fns.Allocate(TypeFnData{Params: params, Ret: ret})
	return t.new(TypeFn, span, PayloadID(payload))
}

// Fn returns the function data for the given type node.
func (t *Types) Fn(id TypeID) (*TypeFnData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeFn {
		return nil, false
	}
	return t.Fns.Get(uint32(node.Payload)), true
}
