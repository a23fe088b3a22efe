package diag

import "fmt"

// Code identifies a diagnostic category. Codes are partitioned by phase:
// 1000s lexer, 2000s parser, 3000s semantic analysis.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical errors.
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax errors.
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynUnclosedParen      Code = 2006
	SynUnclosedBrace      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynExpectParamName    Code = 2009
	SynExpectArrow        Code = 2010

	// Semantic errors.
	SemaDuplicateDeclaration   Code = 3001
	SemaUndeclaredIdentifier   Code = 3002
	SemaIncompatibleAssignment Code = 3003
	SemaArityMismatch          Code = 3004
	SemaInvalidOperation       Code = 3005
	SemaNotCallable            Code = 3006
	SemaMalformedInput         Code = 3007
)

var codeNames = map[Code]string{
	UnknownCode:                "UNKNOWN",
	LexUnknownChar:             "LEX_UNKNOWN_CHAR",
	LexUnterminatedString:      "LEX_UNTERMINATED_STRING",
	LexBadNumber:               "LEX_BAD_NUMBER",
	SynUnexpectedToken:         "SYN_UNEXPECTED_TOKEN",
	SynExpectIdentifier:        "SYN_EXPECT_IDENTIFIER",
	SynExpectSemicolon:         "SYN_EXPECT_SEMICOLON",
	SynExpectType:              "SYN_EXPECT_TYPE",
	SynExpectExpression:        "SYN_EXPECT_EXPRESSION",
	SynUnclosedParen:           "SYN_UNCLOSED_PAREN",
	SynUnclosedBrace:           "SYN_UNCLOSED_BRACE",
	SynUnclosedBracket:         "SYN_UNCLOSED_BRACKET",
	SynExpectParamName:         "SYN_EXPECT_PARAM_NAME",
	SynExpectArrow:             "SYN_EXPECT_ARROW",
	SemaDuplicateDeclaration:   "SEMA_DUPLICATE_DECLARATION",
	SemaUndeclaredIdentifier:   "SEMA_UNDECLARED_IDENTIFIER",
	SemaIncompatibleAssignment: "SEMA_INCOMPATIBLE_ASSIGNMENT",
	SemaArityMismatch:          "SEMA_ARITY_MISMATCH",
	SemaInvalidOperation:       "SEMA_INVALID_OPERATION",
	SemaNotCallable:            "SEMA_NOT_CALLABLE",
	SemaMalformedInput:         "SEMA_MALFORMED_INPUT",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE_%04d", uint16(c))
}
