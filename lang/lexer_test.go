package lang

import (
	"errors"
	"testing"
)

func TestLexerTokens_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "assignment",
			input: "x = 1",
			want:  []Kind{KindIdent, KindAssign, KindNumber, KindEOF},
		},
		{
			name:  "arithmetic operators",
			input: "a + b - c * d / e",
			want: []Kind{
				KindIdent, KindPlus, KindIdent, KindMinus, KindIdent,
				KindStar, KindIdent, KindSlash, KindIdent, KindEOF,
			},
		},
		{
			name:  "comparison operators",
			input: "a > b >= c < d <= e",
			want: []Kind{
				KindIdent, KindGreater, KindIdent, KindGreaterEq, KindIdent,
				KindLess, KindIdent, KindLessEq, KindIdent, KindEOF,
			},
		},
		{
			name:  "keywords",
			input: "if then else endif while endwhile",
			want: []Kind{
				KindIf, KindThen, KindElse, KindEndIf,
				KindWhile, KindEndWhile, KindEOF,
			},
		},
		{
			name:  "keyword prefix is an identifier",
			input: "iffy whiles endwhiles",
			want:  []Kind{KindIdent, KindIdent, KindIdent, KindEOF},
		},
		{
			name:  "function call",
			input: `print("hi", x)`,
			want: []Kind{
				KindIdent, KindLParen, KindString, KindComma,
				KindIdent, KindRParen, KindEOF,
			},
		},
		{
			name:  "fractional number",
			input: "x = 3.14",
			want:  []Kind{KindIdent, KindAssign, KindNumber, KindEOF},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Kind{KindEOF},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  []Kind{KindEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := NewLexer(tt.input).Tokens()
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if len(toks) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v",
					len(tt.want), len(toks), toks)
			}

			for i, kind := range tt.want {
				if toks[i].Kind != kind {
					t.Errorf("token %d: expected %v, got %v",
						i, kind, toks[i].Kind)
				}
			}
		})
	}
}

func TestLexerTokens_Literals(t *testing.T) {
	toks, err := NewLexer(`count = min(read, "total is", 12.5)`).Tokens()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	want := []string{"count", "=", "min", "(", "read", ",",
		"total is", ",", "12.5", ")"}

	for i, lit := range want {
		if toks[i].Lit != lit {
			t.Errorf("token %d: expected literal %q, got %q",
				i, lit, toks[i].Lit)
		}
	}
}

func TestLexerTokens_Positions(t *testing.T) {
	toks, err := NewLexer("x = 1\ny = 2").Tokens()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	tests := []struct {
		index  int
		line   int
		column int
	}{
		{index: 0, line: 1, column: 1}, // x
		{index: 1, line: 1, column: 3}, // =
		{index: 2, line: 1, column: 5}, // 1
		{index: 3, line: 2, column: 1}, // y
		{index: 5, line: 2, column: 5}, // 2
	}

	for _, tt := range tests {
		pos := toks[tt.index].Pos
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("token %d: expected %d:%d, got %d:%d",
				tt.index, tt.line, tt.column, pos.Line, pos.Column)
		}
	}
}

func TestLexerTokens_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unterminated string", input: `print("oops`},
		{name: "unexpected character", input: "x = 1 ! 2"},
		{name: "bare dot", input: "x = ."},
		{name: "trailing dot after digits", input: "x = 12."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input).Tokens()
			if !errors.Is(err, ErrLex) {
				t.Fatalf("expected ErrLex, got %v", err)
			}

			ee := &Error{}
			if !errors.As(err, &ee) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if _, ok := ee.Position(); !ok {
				t.Error("expected error to carry a position")
			}
		})
	}
}

func TestLexerNext_EOFRepeats(t *testing.T) {
	lex := NewLexer("x")

	if tok, err := lex.Next(); err != nil || tok.Kind != KindIdent {
		t.Fatalf("expected identifier, got %v (%v)", tok, err)
	}

	for range 3 {
		tok, err := lex.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if tok.Kind != KindEOF {
			t.Fatalf("expected EOF, got %v", tok)
		}
	}
}
