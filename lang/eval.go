package lang

import (
	"context"
	"log/slog"
)

// Interp is a tree-walking evaluator. It executes a parsed Block against a
// caller-owned Env and a host function Registry.
//
// Evaluation is a strict recursive walk with no state beyond the Env and the
// Go call stack. A single Interp may run many sessions sequentially;
// concurrent sessions must not share an Env.
type Interp struct {
	reg Registry
	cfg settings
}

// NewInterp creates an evaluator that dispatches function calls to reg.
// A nil registry is valid for programs that never call functions; any call
// then fails with ErrUnknownFunction.
func NewInterp(reg Registry, opts ...Option) *Interp {
	return &Interp{
		reg: reg,
		cfg: applyOptions(opts...),
	}
}

// Run executes the program against env. Execution stops at the first
// runtime error; the error carries the source position of the offending
// node. The context is checked once per while-loop iteration and once per
// function call, and cancellation surfaces as ErrCancelled.
func (in *Interp) Run(ctx context.Context, block *Block, env *Env) error {
	in.cfg.logger.TraceContext(ctx, "eval start",
		slog.Int("statement_count", len(block.Stmts)))

	if err := in.execBlock(ctx, block, env); err != nil {
		return err
	}

	in.cfg.logger.TraceContext(ctx, "eval complete",
		slog.Int("variable_count", env.Len()))

	return nil
}

// execBlock executes each statement in order.
func (in *Interp) execBlock(ctx context.Context, block *Block, env *Env) error {
	for _, stmt := range block.Stmts {
		if err := in.execStmt(ctx, stmt, env); err != nil {
			return err
		}
	}

	return nil
}

// execStmt executes a single statement.
func (in *Interp) execStmt(ctx context.Context, stmt Stmt, env *Env) error {
	switch node := stmt.(type) {
	case *Assign:
		return in.execAssign(ctx, node, env)

	case *If:
		return in.execIf(ctx, node, env)

	case *While:
		return in.execWhile(ctx, node, env)

	case *FuncCall:
		// Statement position: the result, if any, is discarded.
		_, err := in.evalCall(ctx, node, env)

		return err

	default:
		return ErrTypeMismatch.WithPosition(stmt.Position()).
			With(slog.String("reason", "unknown statement node"))
	}
}

// execAssign evaluates the right-hand side and stores the result under the
// target name. An Expr yields a Number; a Conditional yields a Boolean.
func (in *Interp) execAssign(ctx context.Context, node *Assign, env *Env) error {
	value, err := in.evalExpr(ctx, node.Value, env)
	if err != nil {
		return err
	}

	env.Set(node.Name, value)

	in.cfg.logger.TraceContext(ctx, "assign",
		slog.String("name", node.Name),
		slog.String("type", value.Type().String()),
		slog.String("value", value.String()))

	return nil
}

// execIf evaluates the conditional and executes the matching branch.
func (in *Interp) execIf(ctx context.Context, node *If, env *Env) error {
	hold, err := in.evalCond(ctx, node.Cond, env)
	if err != nil {
		return err
	}

	if hold {
		return in.execBlock(ctx, node.Then, env)
	}

	if node.Else != nil {
		return in.execBlock(ctx, node.Else, env)
	}

	return nil
}

// execWhile re-evaluates the conditional before every iteration. The
// language imposes no iteration cap; the context (and the optional
// WithMaxLoopIterations bound) is the embedding's liveness guarantee.
func (in *Interp) execWhile(ctx context.Context, node *While, env *Env) error {
	for iterations := 0; ; iterations++ {
		if err := ctx.Err(); err != nil {
			return ErrCancelled.WithPosition(node.Pos).Wrap(err)
		}

		if in.cfg.maxLoop > 0 && iterations >= in.cfg.maxLoop {
			return ErrLoopLimit.WithPosition(node.Pos).
				With(slog.Int("limit", in.cfg.maxLoop))
		}

		hold, err := in.evalCond(ctx, node.Cond, env)
		if err != nil {
			return err
		}

		if !hold {
			return nil
		}

		if err := in.execBlock(ctx, node.Body, env); err != nil {
			return err
		}
	}
}

// evalExpr evaluates an expression node to a Value.
func (in *Interp) evalExpr(ctx context.Context, expr Expr, env *Env) (Value, error) {
	switch node := expr.(type) {
	case *NumberLit:
		return NumberValue(node.Value), nil

	case *StringLit:
		// Reachable only from argument position; the factor production
		// excludes strings.
		return TextValue(node.Value), nil

	case *VarRef:
		value, ok := env.Get(node.Name)
		if !ok {
			return Value{}, ErrUndefinedVar.WithPosition(node.Pos).
				With(slog.String("name", node.Name))
		}

		return value, nil

	case *Binary:
		return in.evalBinary(ctx, node, env)

	case *Compare:
		hold, err := in.evalCond(ctx, node, env)
		if err != nil {
			return Value{}, err
		}

		return BooleanValue(hold), nil

	case *FuncCall:
		return in.evalCall(ctx, node, env)

	default:
		return Value{}, ErrTypeMismatch.WithPosition(expr.Position()).
			With(slog.String("reason", "unknown expression node"))
	}
}

// evalBinary evaluates an arithmetic expression. Both operands must be
// Numbers; there is no coercion from Boolean or Text. Division by zero is a
// dedicated error, never an infinite or NaN value.
func (in *Interp) evalBinary(ctx context.Context, node *Binary, env *Env) (Value, error) {
	left, err := in.evalOperand(ctx, node.Left, env, node.Op)
	if err != nil {
		return Value{}, err
	}

	right, err := in.evalOperand(ctx, node.Right, env, node.Op)
	if err != nil {
		return Value{}, err
	}

	switch node.Op {
	case KindPlus:
		return NumberValue(left + right), nil

	case KindMinus:
		return NumberValue(left - right), nil

	case KindStar:
		return NumberValue(left * right), nil

	case KindSlash:
		if right == 0 {
			return Value{}, ErrDivisionByZero.WithPosition(node.Pos)
		}

		return NumberValue(left / right), nil

	default:
		return Value{}, ErrTypeMismatch.WithPosition(node.Pos).
			With(slog.String("operator", node.Op.String()))
	}
}

// evalCond evaluates a conditional. Both operands must be Numbers; the
// comparison is numeric and yields a Boolean.
func (in *Interp) evalCond(ctx context.Context, node *Compare, env *Env) (bool, error) {
	left, err := in.evalOperand(ctx, node.Left, env, node.Op)
	if err != nil {
		return false, err
	}

	right, err := in.evalOperand(ctx, node.Right, env, node.Op)
	if err != nil {
		return false, err
	}

	switch node.Op {
	case KindGreater:
		return left > right, nil

	case KindGreaterEq:
		return left >= right, nil

	case KindLess:
		return left < right, nil

	case KindLessEq:
		return left <= right, nil

	default:
		return false, ErrTypeMismatch.WithPosition(node.Pos).
			With(slog.String("operator", node.Op.String()))
	}
}

// evalOperand evaluates one side of an arithmetic or comparison operator and
// requires the result to be a Number.
func (in *Interp) evalOperand(
	ctx context.Context,
	expr Expr,
	env *Env,
	op Kind,
) (float64, error) {
	value, err := in.evalExpr(ctx, expr, env)
	if err != nil {
		return 0, err
	}

	num, ok := value.Number()
	if !ok {
		return 0, ErrTypeMismatch.WithPosition(expr.Position()).
			With(slog.String("operator", op.String()),
				slog.String("operand", value.Type().String()))
	}

	return num, nil
}

// evalCall evaluates each argument left-to-right and invokes the registry.
// Registry errors are propagated unchanged aside from gaining the call's
// source position.
func (in *Interp) evalCall(ctx context.Context, node *FuncCall, env *Env) (Value, error) {
	if err := ctx.Err(); err != nil {
		return Value{}, ErrCancelled.WithPosition(node.Pos).Wrap(err)
	}

	args := make([]Value, len(node.Args))

	for i, arg := range node.Args {
		value, err := in.evalExpr(ctx, arg, env)
		if err != nil {
			return Value{}, err
		}

		args[i] = value
	}

	in.cfg.logger.TraceContext(ctx, "invoke",
		slog.String("function", node.Name),
		slog.Int("arg_count", len(args)))

	if in.reg == nil {
		return Value{}, ErrUnknownFunction.WithPosition(node.Pos).
			With(slog.String("function", node.Name))
	}

	result, err := in.reg.Invoke(ctx, node.Name, args)
	if err != nil {
		return Value{}, WrapError(err).WithPosition(node.Pos)
	}

	return result, nil
}
