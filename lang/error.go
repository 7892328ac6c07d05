package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	// Compile-time errors.
	ErrLex   = NewError("lex error")
	ErrParse = NewError("parse error")

	// Runtime errors.
	ErrUndefinedVar   = NewError("undefined variable")
	ErrTypeMismatch   = NewError("type mismatch")
	ErrDivisionByZero = NewError("division by zero")
	ErrCancelled      = NewError("evaluation cancelled")
	ErrLoopLimit      = NewError("loop iteration limit exceeded")

	// Invocation errors raised by a host function registry.
	ErrUnknownFunction = NewError("unknown function")
	ErrArityMismatch   = NewError("arity mismatch")
	ErrArgType         = NewError("argument type mismatch")

	// Embedding errors.
	ErrReadInput = NewError("failed to read input")
)

// Error represents an error with an optional source position and optional
// structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	pos   *Position   // Source position of the offending construct
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if e.pos != nil {
			msg += " at " + e.pos.String()
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e matches target. Two Errors match when they share the
// same base message, so errors derived via With, WithPosition, or Wrap still
// satisfy errors.Is against their sentinel.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.msg == te.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.pos != nil {
		attrs = append(attrs, slog.String("position", e.pos.String()))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Position returns the source position attached to the error, if any.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		pos:   e.pos,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		pos:   e.pos,
		attrs: newAttrs,
	}
}

// WithPosition attaches a source position to the error.
// This creates a new Error instance to maintain immutability.
func (e *Error) WithPosition(pos Position) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		pos:   &pos,
		attrs: e.attrs,
	}
}

// SyntaxError decorates a lex or parse error with the original source text so
// the failing line can be rendered with a caret marker.
type SyntaxError struct {
	Err    *Error
	Source string
}

// NewSyntaxError wraps err with the source text it was produced from.
// Errors without an *Error in their chain are returned unchanged.
func NewSyntaxError(err error, source string) error {
	ee := &Error{}
	if !errors.As(err, &ee) {
		return err
	}

	return &SyntaxError{Err: ee, Source: source}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	pos, ok := e.Err.Position()
	if !ok || e.Source == "" {
		return e.Err.Error()
	}

	return e.Err.Error() + ":\n" + e.snippet(pos)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SyntaxError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer by delegating to the wrapped error.
func (e *SyntaxError) LogValue() slog.Value { return e.Err.LogValue() }

// snippet renders the offending source line with a caret under the column.
func (e *SyntaxError) snippet(pos Position) string {
	lines := strings.Split(e.Source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	var buf strings.Builder

	line := lines[pos.Line-1]

	// Print the line with line number
	buf.WriteString("  ")
	buf.WriteString(strconv.Itoa(pos.Line))
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// Print marker pointing to the column
	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	lineNumWidth := len(strconv.Itoa(pos.Line))
	padding := strings.Repeat(" ", lineNumWidth+5)

	if pos.Column > 0 {
		padding += strings.Repeat(" ", pos.Column-1)
	}

	buf.WriteString(padding + "^")

	return buf.String()
}
