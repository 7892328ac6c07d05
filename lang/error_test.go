package lang

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestError_SentinelMatching(t *testing.T) {
	derived := ErrDivisionByZero.
		WithPosition(Position{Line: 3, Column: 5}).
		With(slog.String("operator", "/"))

	if !errors.Is(derived, ErrDivisionByZero) {
		t.Error("expected derived error to match its sentinel")
	}

	if errors.Is(derived, ErrTypeMismatch) {
		t.Error("expected derived error not to match other sentinels")
	}

	wrapped := ErrCancelled.Wrap(errors.New("context canceled"))
	if !errors.Is(wrapped, ErrCancelled) {
		t.Error("expected wrapped error to match its sentinel")
	}
}

func TestError_MessageIncludesPosition(t *testing.T) {
	err := ErrUndefinedVar.WithPosition(Position{Line: 2, Column: 7})

	if got := err.Error(); !strings.Contains(got, "2:7") {
		t.Errorf("expected position in message, got %q", got)
	}
}

func TestError_Immutability(t *testing.T) {
	base := NewError("base")
	derived := base.WithPosition(Position{Line: 1, Column: 1})

	if _, ok := base.Position(); ok {
		t.Error("expected WithPosition to leave the receiver unchanged")
	}

	if _, ok := derived.Position(); !ok {
		t.Error("expected derived error to carry the position")
	}
}

func TestSyntaxError_Snippet(t *testing.T) {
	src := "x = 1\ny = 1 +"

	_, err := ParseString(t.Context(), src)

	se := &SyntaxError{}
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}

	msg := err.Error()

	if !strings.Contains(msg, "2 | y = 1 +") {
		t.Errorf("expected offending line in message, got:\n%s", msg)
	}

	if !strings.Contains(msg, "^") {
		t.Errorf("expected caret marker in message, got:\n%s", msg)
	}
}

func TestSyntaxError_CaretColumn(t *testing.T) {
	// The undefined construct starts at column 5 of line 1.
	src := `x = "oops`

	_, err := ParseString(t.Context(), src)

	se := &SyntaxError{}
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}

	lines := strings.Split(err.Error(), "\n")
	caretLine := lines[len(lines)-1]

	// "  1 | " is 6 characters wide, so column 5 puts the caret at index 10.
	if idx := strings.IndexByte(caretLine, '^'); idx != 10 {
		t.Errorf("expected caret at index 10, got %d in %q", idx, caretLine)
	}
}

func TestWrapError(t *testing.T) {
	plain := errors.New("plain")

	wrapped := WrapError(plain)
	if !errors.Is(wrapped, plain) {
		t.Error("expected wrapped plain error to unwrap to the original")
	}

	// Wrapping an error chain that already contains an *Error returns that
	// *Error unchanged.
	derived := ErrParse.WithPosition(Position{Line: 1, Column: 1})
	if got := WrapError(derived); got != derived {
		t.Error("expected WrapError to extract the existing *Error")
	}
}
