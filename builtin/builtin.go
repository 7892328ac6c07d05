// Package builtin provides the standard host-function table available to
// every evaluated program: print, min, max, and abs.
package builtin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/calwe/ocr-interpretor/lang"
)

// Table is the standard builtin registry. It implements lang.Registry.
//
// A Table is safe for concurrent use as long as its output writer is.
type Table struct {
	out   io.Writer
	funcs lang.Funcs
}

// Option configures a Table.
type Option func(*Table)

// WithOutput directs print output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Table) { t.out = w }
}

// New creates the standard builtin table.
func New(opts ...Option) *Table {
	t := &Table{out: os.Stdout}

	for _, opt := range opts {
		opt(t)
	}

	t.funcs = lang.Funcs{
		"print": t.print,
		"min":   t.min,
		"max":   t.max,
		"abs":   t.abs,
	}

	return t
}

// Invoke implements lang.Registry.
func (t *Table) Invoke(
	ctx context.Context, name string, args []lang.Value,
) (lang.Value, error) {
	return t.funcs.Invoke(ctx, name, args)
}

// Names returns the defined function names in sorted order.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.funcs))
}

// print writes its arguments separated by single spaces, followed by a
// newline. It returns the number of arguments written.
func (t *Table) print(_ context.Context, args []lang.Value) (lang.Value, error) {
	part := make([]string, len(args))
	for i, arg := range args {
		part[i] = arg.String()
	}

	if _, err := fmt.Fprintln(t.out, strings.Join(part, " ")); err != nil {
		return lang.Value{}, lang.WrapError(err)
	}

	return lang.NumberValue(float64(len(args))), nil
}

// min returns the smallest of its numeric arguments.
func (t *Table) min(_ context.Context, args []lang.Value) (lang.Value, error) {
	nums, err := numbers("min", args, 1)
	if err != nil {
		return lang.Value{}, err
	}

	return lang.NumberValue(slices.Min(nums)), nil
}

// max returns the largest of its numeric arguments.
func (t *Table) max(_ context.Context, args []lang.Value) (lang.Value, error) {
	nums, err := numbers("max", args, 1)
	if err != nil {
		return lang.Value{}, err
	}

	return lang.NumberValue(slices.Max(nums)), nil
}

// abs returns the absolute value of its single numeric argument.
func (t *Table) abs(_ context.Context, args []lang.Value) (lang.Value, error) {
	if len(args) != 1 {
		return lang.Value{}, lang.ErrArityMismatch.With(
			slog.String("function", "abs"),
			slog.Int("want", 1),
			slog.Int("have", len(args)),
		)
	}

	nums, err := numbers("abs", args, 1)
	if err != nil {
		return lang.Value{}, err
	}

	return lang.NumberValue(math.Abs(nums[0])), nil
}

// numbers converts args to float64, requiring at least minArity arguments
// and that every argument is a Number.
func numbers(name string, args []lang.Value, minArity int) ([]float64, error) {
	if len(args) < minArity {
		return nil, lang.ErrArityMismatch.With(
			slog.String("function", name),
			slog.Int("want", minArity),
			slog.Int("have", len(args)),
		)
	}

	nums := make([]float64, len(args))

	for i, arg := range args {
		num, ok := arg.Number()
		if !ok {
			return nil, lang.ErrArgType.With(
				slog.String("function", name),
				slog.Int("argument", i+1),
				slog.String("type", arg.Type().String()),
			)
		}

		nums[i] = num
	}

	return nums, nil
}
