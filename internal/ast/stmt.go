package ast

import (
	"tscheck/internal/source"
)

// StmtKind enumerates statement node kinds.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtLet
	StmtFunction
	StmtReturn
	StmtBlock
	StmtAssign
	StmtExpr
)

// Stmt is a statement node header; kind-specific data lives in payload arenas.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// Param is one function or arrow parameter. Ann is NoTypeID when the
// parameter carries no annotation.
type Param struct {
	Name source.StringID
	Ann  TypeID
	Span source.Span
}

// StmtLetData covers let/const/var declarations. Ann and Init may each be
// absent independently.
type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Ann      TypeID
	Init     ExprID
	Const    bool
}

// StmtFunctionData is a function declaration with a block body.
type StmtFunctionData struct {
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Ret      TypeID // NoTypeID when the return type is inferred
	Body     []StmtID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type StmtBlockData struct {
	Stmts []StmtID
}

// StmtAssignData is `name = value;`.
type StmtAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type StmtExprData struct {
	Expr ExprID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena     *Arena[Stmt]
	Lets      *Arena[StmtLetData]
	Functions *Arena[StmtFunctionData]
	Returns   *Arena[StmtReturnData]
	Blocks    *Arena[StmtBlockData]
	Assigns   *Arena[StmtAssignData]
	Exprs     *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Lets:      NewArena[StmtLetData](capHint),
		Functions: NewArena[StmtFunctionData](capHint),
		Returns:   NewArena[StmtReturnData](capHint),
		Blocks:    NewArena[StmtBlockData](capHint),
		Assigns:   NewArena[StmtAssignData](capHint),
		Exprs:     NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewLet creates a let/const/var declaration statement.
func (s *Stmts) NewLet(span source.Span, data StmtLetData) StmtID {
	payload := s.Lets.Allocate(data)
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the declaration data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewFunction creates a function declaration statement.
func (s *Stmts) NewFunction(span source.Span, data StmtFunctionData) StmtID {
	payload := s.Functions.Allocate(data)
	return s.new(StmtFunction, span, PayloadID(payload))
}

// Function returns the function data for the given statement ID.
func (s *Stmts) Function(id StmtID) (*StmtFunctionData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFunction {
		return nil, false
	}
	return s.Functions.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given statement ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, data StmtAssignData) StmtID {
	payload := s.Assigns.Allocate(data)
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}
