package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' literal keyword.
	KwUndefined // undefined
	// KwTypeof represents the 'typeof' operator keyword.
	KwTypeof // typeof

	// NumberLit represents a numeric literal.
	NumberLit
	// BigIntLit represents a bigint literal (digits followed by 'n').
	BigIntLit
	// StringLit represents a quoted string literal.
	StringLit

	// Punctuation and operators.
	Plus        // +
	Minus       // -
	Star        // *
	StarStar    // **
	Slash       // /
	Percent     // %
	Assign      // =
	EqEq        // ==
	EqEqEq      // ===
	Bang        // !
	BangEq      // !=
	BangEqEq    // !==
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	Shl         // <<
	Shr         // >>
	ShrZero     // >>>
	Amp         // &
	AmpAmp      // &&
	Pipe        // |
	PipePipe    // ||
	Caret       // ^
	Question    // ?
	Colon       // :
	Semicolon   // ;
	Comma       // ,
	Dot         // .
	Arrow       // =>
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
)

var kindNames = map[Kind]string{
	Invalid:     "invalid",
	EOF:         "eof",
	Ident:       "identifier",
	KwLet:       "let",
	KwConst:     "const",
	KwVar:       "var",
	KwFunction:  "function",
	KwReturn:    "return",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	KwUndefined: "undefined",
	KwTypeof:    "typeof",
	NumberLit:   "number literal",
	BigIntLit:   "bigint literal",
	StringLit:   "string literal",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	StarStar:    "**",
	Slash:       "/",
	Percent:     "%",
	Assign:      "=",
	EqEq:        "==",
	EqEqEq:      "===",
	Bang:        "!",
	BangEq:      "!=",
	BangEqEq:    "!==",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	Shl:         "<<",
	Shr:         ">>",
	ShrZero:     ">>>",
	Amp:         "&",
	AmpAmp:      "&&",
	Pipe:        "|",
	PipePipe:    "||",
	Caret:       "^",
	Question:    "?",
	Colon:       ":",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",
	Arrow:       "=>",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Keywords maps source text to keyword kinds.
var Keywords = map[string]Kind{
	"let":       KwLet,
	"const":     KwConst,
	"var":       KwVar,
	"function":  KwFunction,
	"return":    KwReturn,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"undefined": KwUndefined,
	"typeof":    KwTypeof,
}
