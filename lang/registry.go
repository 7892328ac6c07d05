package lang

import (
	"context"
	"log/slog"
)

// Registry supplies host functions callable from func_call productions.
// The evaluator treats the registry as opaque: it evaluates arguments
// left-to-right, invokes by name, and propagates whatever result or error
// the registry returns. Whether a Boolean argument is acceptable is the
// registry's contract, not the evaluator's.
//
// Implementations invoked from concurrent evaluation sessions must be safe
// for concurrent use, or each session must own a private instance.
type Registry interface {
	Invoke(ctx context.Context, name string, args []Value) (Value, error)
}

// Func is a single host function.
type Func func(ctx context.Context, args []Value) (Value, error)

// Funcs is a minimal Registry backed by a map. It is convenient for tests
// and small embeddings; the builtin package provides the standard table.
type Funcs map[string]Func

// Invoke implements Registry.
func (f Funcs) Invoke(ctx context.Context, name string, args []Value) (Value, error) {
	fn, ok := f[name]
	if !ok {
		return Value{}, ErrUnknownFunction.
			With(slog.String("function", name))
	}

	return fn(ctx, args)
}
