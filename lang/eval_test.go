package lang

import (
	"context"
	"errors"
	"testing"
)

// run parses src and executes it against a fresh environment, returning the
// environment for inspection.
func run(t *testing.T, src string, reg Registry, opts ...Option) (*Env, error) {
	t.Helper()

	block, err := ParseString(t.Context(), src, opts...)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := NewEnv()

	return env, NewInterp(reg, opts...).Run(t.Context(), block, env)
}

func TestInterpRun_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars map[string]float64
	}{
		{
			name: "literal",
			src:  "x = 42",
			vars: map[string]float64{"x": 42},
		},
		{
			name: "multiplication binds tighter than addition",
			src:  "x = 1 + 2 * 3",
			vars: map[string]float64{"x": 7},
		},
		{
			name: "subtraction chain associates right",
			src:  "y = 10 - 3 - 2",
			vars: map[string]float64{"y": 9},
		},
		{
			name: "division chain associates right",
			src:  "z = 8 / 4 / 2",
			vars: map[string]float64{"z": 4},
		},
		{
			name: "parentheses override grouping",
			src:  "y = (10 - 3) - 2",
			vars: map[string]float64{"y": 5},
		},
		{
			name: "variable reference",
			src:  "x = 2\ny = x * x + 1",
			vars: map[string]float64{"x": 2, "y": 5},
		},
		{
			name: "fractional arithmetic",
			src:  "x = 1.5 + 2.25",
			vars: map[string]float64{"x": 3.75},
		},
		{
			name: "reassignment replaces value",
			src:  "x = 1\nx = x + 1\nx = x + 1",
			vars: map[string]float64{"x": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := run(t, tt.src, nil)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}

			for name, want := range tt.vars {
				value, ok := env.Get(name)
				if !ok {
					t.Fatalf("variable %q not bound", name)
				}

				num, ok := value.Number()
				if !ok {
					t.Fatalf("variable %q: expected Number, got %v",
						name, value.Type())
				}

				if num != want {
					t.Errorf("variable %q: expected %v, got %v",
						name, want, num)
				}
			}
		})
	}
}

func TestInterpRun_Conditionals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars map[string]float64
	}{
		{
			name: "then branch taken",
			src:  "x = 5\nif x > 3 then\n  y = 1\nelse\n  y = 2\nendif",
			vars: map[string]float64{"y": 1},
		},
		{
			name: "else branch taken",
			src:  "x = 2\nif x > 3 then\n  y = 1\nelse\n  y = 2\nendif",
			vars: map[string]float64{"y": 2},
		},
		{
			name: "false without else is a no-op",
			src:  "x = 2\ny = 9\nif x > 3 then\n  y = 1\nendif",
			vars: map[string]float64{"y": 9},
		},
		{
			name: "boundary comparison",
			src:  "x = 3\nif x >= 3 then\n  y = 1\nendif",
			vars: map[string]float64{"y": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := run(t, tt.src, nil)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}

			for name, want := range tt.vars {
				value, ok := env.Get(name)
				if !ok {
					t.Fatalf("variable %q not bound", name)
				}

				if num, _ := value.Number(); num != want {
					t.Errorf("variable %q: expected %v, got %v",
						name, want, num)
				}
			}
		})
	}
}

func TestInterpRun_While(t *testing.T) {
	src := "i = 0\nwhile i < 3\n  i = i + 1\nendwhile"

	env, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	value, _ := env.Get("i")
	if num, _ := value.Number(); num != 3 {
		t.Errorf("expected i = 3 after loop, got %v", num)
	}
}

func TestInterpRun_WhileFalseInitially(t *testing.T) {
	src := "i = 10\nn = 0\nwhile i < 3\n  n = n + 1\nendwhile"

	env, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	value, _ := env.Get("n")
	if num, _ := value.Number(); num != 0 {
		t.Errorf("expected body never executed, got n = %v", num)
	}
}

func TestInterpRun_BooleanAssignment(t *testing.T) {
	env, err := run(t, "x = 7\nb = x > 3", nil)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	value, ok := env.Get("b")
	if !ok {
		t.Fatal("variable b not bound")
	}

	hold, ok := value.Boolean()
	if !ok {
		t.Fatalf("expected Boolean, got %v", value.Type())
	}

	if !hold {
		t.Error("expected b = true")
	}
}

func TestInterpRun_FuncCall(t *testing.T) {
	var (
		gotName string
		gotArgs []Value
	)

	reg := Funcs{
		"print": func(_ context.Context, args []Value) (Value, error) {
			gotName = "print"
			gotArgs = args

			return NumberValue(float64(len(args))), nil
		},
	}

	src := "x = 1 + 2 * 3\nprint(\"hello\", x)"

	env, err := run(t, src, reg)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if gotName != "print" {
		t.Fatalf("expected print to be invoked, got %q", gotName)
	}

	if len(gotArgs) != 2 {
		t.Fatalf("expected 2 args, got %d", len(gotArgs))
	}

	if text, ok := gotArgs[0].Text(); !ok || text != "hello" {
		t.Errorf("arg 0: expected Text \"hello\", got %v", gotArgs[0])
	}

	if num, ok := gotArgs[1].Number(); !ok || num != 7 {
		t.Errorf("arg 1: expected Number 7, got %v", gotArgs[1])
	}

	// A call in statement position must not bind its result anywhere.
	if env.Len() != 1 {
		t.Errorf("expected only x bound, got %v", env.Names())
	}
}

func TestInterpRun_FuncCallExpression(t *testing.T) {
	reg := Funcs{
		"double": func(_ context.Context, args []Value) (Value, error) {
			num, _ := args[0].Number()

			return NumberValue(num * 2), nil
		},
	}

	env, err := run(t, "x = double(4) + 1", reg)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	value, _ := env.Get("x")
	if num, _ := value.Number(); num != 9 {
		t.Errorf("expected x = 9, got %v", num)
	}
}

func TestInterpRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *Error
	}{
		{
			name: "undefined variable",
			src:  "x = y + 1",
			want: ErrUndefinedVar,
		},
		{
			name: "undefined variable in condition",
			src:  "if y > 0 then\n  x = 1\nendif",
			want: ErrUndefinedVar,
		},
		{
			name: "division by zero",
			src:  "x = 5 / 0",
			want: ErrDivisionByZero,
		},
		{
			name: "division by zero via variable",
			src:  "d = 0\nx = 5 / d",
			want: ErrDivisionByZero,
		},
		{
			name: "boolean operand in arithmetic",
			src:  "x = 7\nb = x > 3\nz = b + 1",
			want: ErrTypeMismatch,
		},
		{
			name: "boolean operand in comparison",
			src:  "b = 1 > 0\nif b > 0 then\n  x = 1\nendif",
			want: ErrTypeMismatch,
		},
		{
			name: "call without registry",
			src:  "print(\"hi\")",
			want: ErrUnknownFunction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
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

func TestInterpRun_ErrorStopsExecution(t *testing.T) {
	env, err := run(t, "a = 1\nb = a / 0\nc = 2", nil)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}

	if _, ok := env.Get("c"); ok {
		t.Error("expected execution to stop before binding c")
	}

	// Bindings made before the failure remain visible.
	if _, ok := env.Get("a"); !ok {
		t.Error("expected a to remain bound")
	}
}

func TestInterpRun_RegistryErrorGainsPosition(t *testing.T) {
	reg := Funcs{
		"boom": func(_ context.Context, _ []Value) (Value, error) {
			return Value{}, ErrArgType
		},
	}

	_, err := run(t, "x = 1\nboom(x)", reg)
	if !errors.Is(err, ErrArgType) {
		t.Fatalf("expected ErrArgType, got %v", err)
	}

	ee := &Error{}
	if !errors.As(err, &ee) {
		t.Fatalf("expected *Error, got %T", err)
	}

	pos, ok := ee.Position()
	if !ok {
		t.Fatal("expected error to carry the call position")
	}

	if pos.Line != 2 {
		t.Errorf("expected error on line 2, got line %d", pos.Line)
	}
}

func TestInterpRun_Cancellation(t *testing.T) {
	block, err := ParseString(t.Context(), "i = 0\nwhile i >= 0\n  i = i + 1\nendwhile")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err = NewInterp(nil).Run(ctx, block, NewEnv())
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestInterpRun_LoopLimit(t *testing.T) {
	src := "i = 0\nwhile i >= 0\n  i = i + 1\nendwhile"

	_, err := run(t, src, nil, WithMaxLoopIterations(100))
	if !errors.Is(err, ErrLoopLimit) {
		t.Fatalf("expected ErrLoopLimit, got %v", err)
	}
}

func TestInterpRun_UnknownFunction(t *testing.T) {
	reg := Funcs{}

	_, err := run(t, "nope()", reg)
	if !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
}
