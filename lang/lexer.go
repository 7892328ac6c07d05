package lang

import (
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// Lexer converts raw source text into a finite sequence of tokens.
//
// A Lexer is single-use: it scans forward only and cannot be rewound.
// Create a new Lexer to restart from the beginning of the source.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		input: []byte(src),
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Tokens scans the entire source and returns the token stream, terminated by
// a KindEOF token. Scanning stops at the first lexical error.
func (l *Lexer) Tokens() ([]Token, error) {
	toks := make([]Token, 0, len(l.input)/2)

	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == KindEOF {
			return toks, nil
		}
	}
}

// Next scans and returns the next token. After the end of input is reached,
// it returns KindEOF tokens indefinitely.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	pos := l.position()

	if l.eof() {
		return Token{Kind: KindEOF, Pos: pos}, nil
	}

	ch := l.peek()

	switch {
	case unicode.IsLetter(ch):
		return l.scanWord(pos), nil

	case unicode.IsDigit(ch):
		return l.scanNumber(pos), nil

	case ch == '"':
		return l.scanString(pos)
	}

	return l.scanOperator(pos)
}

// scanWord scans a maximal run of letters and classifies it as a keyword or
// an identifier. Keywords never match a prefix of a longer word since the
// run is maximal.
func (l *Lexer) scanWord(pos Position) Token {
	start := l.pos

	for !l.eof() && unicode.IsLetter(l.peek()) {
		l.advance()
	}

	lit := string(l.input[start:l.pos])

	if kind, ok := keywords[lit]; ok {
		return Token{Kind: kind, Lit: lit, Pos: pos}
	}

	return Token{Kind: KindIdent, Lit: lit, Pos: pos}
}

// scanNumber scans a decimal literal with an optional fractional part.
// Scientific notation is not part of the language.
func (l *Lexer) scanNumber(pos Position) Token {
	start := l.pos

	for !l.eof() && unicode.IsDigit(l.peek()) {
		l.advance()
	}

	// Fractional part only when the dot is followed by a digit, so that a
	// trailing dot is left for the operator scanner to reject.
	if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		l.advance()

		for !l.eof() && unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}

	return Token{Kind: KindNumber, Lit: string(l.input[start:l.pos]), Pos: pos}
}

// scanString scans a double-quoted string literal. The content between the
// quotes is opaque: no escape sequences are processed.
func (l *Lexer) scanString(pos Position) (Token, error) {
	l.advance() // opening quote

	start := l.pos

	for !l.eof() {
		if l.peek() == '"' {
			lit := string(l.input[start:l.pos])
			l.advance() // closing quote

			return Token{Kind: KindString, Lit: lit, Pos: pos}, nil
		}

		l.advance()
	}

	return Token{}, ErrLex.WithPosition(pos).
		With(slog.String("reason", "unterminated string"))
}

// scanOperator scans the single- and double-character operators.
func (l *Lexer) scanOperator(pos Position) (Token, error) {
	ch := l.peek()
	l.advance()

	switch ch {
	case '+':
		return Token{Kind: KindPlus, Lit: "+", Pos: pos}, nil

	case '-':
		return Token{Kind: KindMinus, Lit: "-", Pos: pos}, nil

	case '*':
		return Token{Kind: KindStar, Lit: "*", Pos: pos}, nil

	case '/':
		return Token{Kind: KindSlash, Lit: "/", Pos: pos}, nil

	case '=':
		return Token{Kind: KindAssign, Lit: "=", Pos: pos}, nil

	case '(':
		return Token{Kind: KindLParen, Lit: "(", Pos: pos}, nil

	case ')':
		return Token{Kind: KindRParen, Lit: ")", Pos: pos}, nil

	case ',':
		return Token{Kind: KindComma, Lit: ",", Pos: pos}, nil

	case '>':
		if l.peek() == '=' {
			l.advance()

			return Token{Kind: KindGreaterEq, Lit: ">=", Pos: pos}, nil
		}

		return Token{Kind: KindGreater, Lit: ">", Pos: pos}, nil

	case '<':
		if l.peek() == '=' {
			l.advance()

			return Token{Kind: KindLessEq, Lit: "<=", Pos: pos}, nil
		}

		return Token{Kind: KindLess, Lit: "<", Pos: pos}, nil
	}

	return Token{}, ErrLex.WithPosition(pos).
		With(slog.String("reason", "unexpected character"),
			slog.String("character", string(ch)))
}

// Helper methods

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(l.input[l.pos:])

	return r
}

// peekAt returns the rune n runes past the current position, or 0 past the
// end of input.
func (l *Lexer) peekAt(n int) rune {
	pos := l.pos

	for ; n > 0 && pos < len(l.input); n-- {
		_, size := utf8.DecodeRune(l.input[pos:])
		pos += size
	}

	if pos >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRune(l.input[pos:])

	return r
}

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRune(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.eof() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}
