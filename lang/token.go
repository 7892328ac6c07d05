package lang

import "strconv"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// KindEOF marks the end of the token stream.
	KindEOF Kind = iota

	// KindIdent is an identifier (letters only).
	KindIdent

	// KindNumber is a decimal numeric literal.
	KindNumber

	// KindString is a double-quoted string literal.
	KindString

	// Operators.

	KindPlus      // +
	KindMinus     // -
	KindStar      // *
	KindSlash     // /
	KindAssign    // =
	KindGreater   // >
	KindGreaterEq // >=
	KindLess      // <
	KindLessEq    // <=
	KindLParen    // (
	KindRParen    // )
	KindComma     // ,

	// Keywords.

	KindIf       // if
	KindThen     // then
	KindElse     // else
	KindEndIf    // endif
	KindWhile    // while
	KindEndWhile // endwhile
)

// kindNames maps each kind to its display name used in diagnostics.
var kindNames = map[Kind]string{
	KindEOF:       "end of input",
	KindIdent:     "identifier",
	KindNumber:    "number",
	KindString:    "string",
	KindPlus:      `"+"`,
	KindMinus:     `"-"`,
	KindStar:      `"*"`,
	KindSlash:     `"/"`,
	KindAssign:    `"="`,
	KindGreater:   `">"`,
	KindGreaterEq: `">="`,
	KindLess:      `"<"`,
	KindLessEq:    `"<="`,
	KindLParen:    `"("`,
	KindRParen:    `")"`,
	KindComma:     `","`,
	KindIf:        `"if"`,
	KindThen:      `"then"`,
	KindElse:      `"else"`,
	KindEndIf:     `"endif"`,
	KindWhile:     `"while"`,
	KindEndWhile:  `"endwhile"`,
}

// String returns the display name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}

	return name
}

// keywords is the fixed reserved-word set. An identifier lexeme matching one
// of these keys is always lexed as the corresponding keyword.
var keywords = map[string]Kind{
	"if":       KindIf,
	"then":     KindThen,
	"else":     KindElse,
	"endif":    KindEndIf,
	"while":    KindWhile,
	"endwhile": KindEndWhile,
}

// isComparison reports whether the kind is one of the comparison operators
// permitted in a conditional.
func (k Kind) isComparison() bool {
	switch k {
	case KindGreater, KindGreaterEq, KindLess, KindLessEq:
		return true
	default:
		return false
	}
}

// closesBlock reports whether the kind terminates an enclosing block without
// being part of it.
func (k Kind) closesBlock() bool {
	switch k {
	case KindEOF, KindElse, KindEndIf, KindEndWhile:
		return true
	default:
		return false
	}
}

// Position locates a token or AST node in the source text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in runes, starting at 1
}

// String returns the position formatted as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is the smallest lexical unit produced by the Lexer.
type Token struct {
	Kind Kind
	Lit  string // original lexeme; string tokens exclude the quotes
	Pos  Position
}

// String returns the token's display form for diagnostics and trace logs.
func (t Token) String() string {
	switch t.Kind {
	case KindIdent:
		return "identifier " + strconv.Quote(t.Lit)
	case KindNumber:
		return "number " + t.Lit
	case KindString:
		return "string " + strconv.Quote(t.Lit)
	default:
		return t.Kind.String()
	}
}
