package ast

import (
	"tscheck/internal/source"
)

// ExprKind enumerates expression node kinds. The set is closed; the checker
// dispatches over it exhaustively.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIdent
	ExprLit
	ExprArray
	ExprBinary
	ExprUnary
	ExprCall
	ExprIndex
	ExprGroup
	ExprArrow
)

// ExprLitKind distinguishes literal expression flavors.
type ExprLitKind uint8

const (
	ExprLitNumber ExprLitKind = iota
	ExprLitBigInt
	ExprLitString
	ExprLitTrue
	ExprLitFalse
	ExprLitNull
	ExprLitUndefined
)

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	BinAdd ExprBinaryOp = iota // +
	BinSub                    // -
	BinMul                    // *
	BinDiv                    // /
	BinRem                    // %
	BinPow                    // **
	BinLt                     // <
	BinLtEq                   // <=
	BinGt                     // >
	BinGtEq                   // >=
	BinEq                     // ==
	BinNotEq                  // !=
	BinStrictEq               // ===
	BinStrictNotEq            // !==
	BinBitAnd                 // &
	BinBitOr                  // |
	BinBitXor                 // ^
	BinShl                    // <<
	BinShr                    // >>
	BinShrZero                // >>>
	BinLogicalAnd             // &&
	BinLogicalOr              // ||
)

var binaryOpNames = [...]string{
	BinAdd:         "+",
	BinSub:         "-",
	BinMul:         "*",
	BinDiv:         "/",
	BinRem:         "%",
	BinPow:         "**",
	BinLt:          "<",
	BinLtEq:        "<=",
	BinGt:          ">",
	BinGtEq:        ">=",
	BinEq:          "==",
	BinNotEq:       "!=",
	BinStrictEq:    "===",
	BinStrictNotEq: "!==",
	BinBitAnd:      "&",
	BinBitOr:       "|",
	BinBitXor:      "^",
	BinShl:         "<<",
	BinShr:         ">>",
	BinShrZero:     ">>>",
	BinLogicalAnd:  "&&",
	BinLogicalOr:   "||",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// ExprUnaryOp enumerates unary operators.
type ExprUnaryOp uint8

const (
	UnNeg ExprUnaryOp = iota // -
	UnNot                    // !
	UnTypeof                 // typeof
)

func (op ExprUnaryOp) String() string {
	switch op {
	case UnNeg:
		return "-"
	case UnNot:
		return "!"
	case UnTypeof:
		return "typeof"
	default:
		return "?"
	}
}

// Expr is an expression node header; kind-specific data lives in the payload
// arenas below.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // raw source text of the literal
}

type ExprArrayData struct {
	Elems []ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprArrowData is an arrow function expression with an expression body:
// (p: T, ...) => expr. An omitted parameter annotation is NoTypeID.
type ExprArrowData struct {
	Params []Param
	Ret    TypeID // NoTypeID when the return type is inferred
	Body   ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Arrays   *Arena[ExprArrayData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Calls    *Arena[ExprCallData]
	Indices  *Arena[ExprIndexData]
	Groups   *Arena[ExprGroupData]
	Arrows   *Arena[ExprArrowData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Indices:  NewArena[ExprIndexData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Arrows:   NewArena[ExprArrowData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewArray creates a new array literal expression.
func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array literal data for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewGroup creates a parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group data for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewArrow creates an arrow function expression.
func (e *Exprs) NewArrow(span source.Span, params []Param, ret TypeID, body ExprID) ExprID {
	payload := e.Arrows.Allocate(ExprArrowData{Params: params, Ret: ret, Body: body})
	return e.new(ExprArrow, span, PayloadID(payload))
}

// Arrow returns the arrow function data for the given expression ID.
func (e *Exprs) Arrow(id ExprID) (*ExprArrowData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArrow {
		return nil, false
	}
	return e.Arrows.Get(uint32(expr.Payload)), true
}
