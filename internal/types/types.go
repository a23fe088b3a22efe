package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindAny
	KindUnknown
	KindNever
	KindNumber
	KindString
	KindBoolean
	KindBigInt
	KindSymbol
	KindNull
	KindUndefined
	KindVoid
	KindObject
	KindNumberLit
	KindStringLit
	KindBoolLit
	KindArray
	KindTuple
	KindUnion
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindNever:
		return "never"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindBigInt:
		return "bigint"
	case KindSymbol:
		return "symbol"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindVoid:
		return "void"
	case KindObject:
		return "object"
	case KindNumberLit:
		return "number literal"
	case KindStringLit:
		return "string literal"
	case KindBoolLit:
		return "boolean literal"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindFn:
		return "function"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsPrimitive reports whether the kind is a non-literal primitive.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindNumber, KindString, KindBoolean, KindBigInt, KindSymbol,
		KindNull, KindUndefined, KindVoid, KindObject:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind is a literal type.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindNumberLit, KindStringLit, KindBoolLit:
		return true
	default:
		return false
	}
}

// LiteralBase returns the primitive kind a literal type widens to.
func (k Kind) LiteralBase() Kind {
	switch k {
	case KindNumberLit:
		return KindNumber
	case KindStringLit:
		return KindString
	case KindBoolLit:
		return KindBoolean
	default:
		return KindInvalid
	}
}

// Type is a compact descriptor for any supported type. Compound types keep
// their element lists in interner side tables addressed by Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // for arrays
	Payload uint32 // side-table slot, literal value slot, or bool literal value
}

// MakeArray describes an array of the given element type (T[]).
func MakeArray(elem TypeID) Type {
	return Type{Kind: KindArray, Elem: elem}
}
