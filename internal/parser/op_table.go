package parser

import (
	"tscheck/internal/ast"
	"tscheck/internal/token"
)

// Binding powers for binary operators, higher binds tighter.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precBitwiseOr      = 3 // |
	precBitwiseXor     = 4 // ^
	precBitwiseAnd     = 5 // &
	precEquality       = 6 // == != === !==
	precComparison     = 7 // < <= > >=
	precShift          = 8 // << >> >>>
	precAdditive       = 9 // + -
	precMultiplicative = 10 // * / %
	precExponent       = 11 // ** (right associative)
)

// binaryPrec returns the precedence and right-associativity of kind,
// or -1 when kind is not a binary operator.
func binaryPrec(kind token.Kind) (prec int, rightAssoc bool) {
	switch kind {
	case token.PipePipe:
		return precLogicalOr, false
	case token.AmpAmp:
		return precLogicalAnd, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Shl, token.Shr, token.ShrZero:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precExponent, true
	default:
		return -1, false
	}
}

func binaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinRem
	case token.StarStar:
		return ast.BinPow
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLtEq
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGtEq
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNotEq
	case token.EqEqEq:
		return ast.BinStrictEq
	case token.BangEqEq:
		return ast.BinStrictNotEq
	case token.Amp:
		return ast.BinBitAnd
	case token.Pipe:
		return ast.BinBitOr
	case token.Caret:
		return ast.BinBitXor
	case token.Shl:
		return ast.BinShl
	case token.Shr:
		return ast.BinShr
	case token.ShrZero:
		return ast.BinShrZero
	case token.AmpAmp:
		return ast.BinLogicalAnd
	case token.PipePipe:
		return ast.BinLogicalOr
	default:
		return ast.BinAdd
	}
}
