package lang

import (
	"context"
	"log/slog"
	"strconv"
)

// ParseString parses source text and returns the program's root Block.
// Options can be provided to customize parsing behavior. The result is
// cached for efficient repeated parsing of the same content when no options
// are used.
func ParseString(ctx context.Context, src string, opts ...Option) (*Block, error) {
	if len(opts) == 0 {
		return parseStringCached(ctx, src)
	}

	return parse(ctx, src, applyOptions(opts...))
}

// parse is the internal parsing implementation.
func parse(ctx context.Context, src string, cfg settings) (*Block, error) {
	p := &parser{
		lex: NewLexer(src),
		cfg: cfg,
	}

	p.cfg.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(src)))

	if err := p.advance(); err != nil {
		return nil, NewSyntaxError(err, src)
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, NewSyntaxError(err, src)
	}

	// A well-formed program consumes every token; anything left over is a
	// closing keyword with no construct to close.
	if p.tok.Kind != KindEOF {
		return nil, NewSyntaxError(p.unexpected("statement"), src)
	}

	p.cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("statement_count", len(block.Stmts)))

	return block, nil
}

// parser consumes the token sequence via one-token lookahead recursive
// descent.
type parser struct {
	lex *Lexer
	tok Token // single token of lookahead
	cfg settings
}

// advance pulls the next token from the lexer into the lookahead slot.
func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// expect consumes the lookahead token when it has the given kind, or fails
// with a parse error naming the expectation.
func (p *parser) expect(kind Kind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, p.unexpected(kind.String())
	}

	tok := p.tok

	return tok, p.advance()
}

// unexpected builds a parse error for the current lookahead token.
func (p *parser) unexpected(expected string) error {
	return ErrParse.WithPosition(p.tok.Pos).
		With(slog.String("expected", expected),
			slog.String("found", p.tok.String()))
}

// parseBlock parses zero or more statements, stopping at end-of-input or a
// token that closes an enclosing construct (else, endif, endwhile).
func (p *parser) parseBlock() (*Block, error) {
	block := &Block{Pos: p.tok.Pos}

	for !p.tok.Kind.closesBlock() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		block.Stmts = append(block.Stmts, stmt)
	}

	return block, nil
}

// parseStatement parses a single assignment, function call, if, or while
// statement.
func (p *parser) parseStatement() (Stmt, error) {
	switch p.tok.Kind {
	case KindIdent:
		ident := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		switch p.tok.Kind {
		case KindAssign:
			return p.parseAssign(ident)

		case KindLParen:
			return p.parseFuncCall(ident)

		default:
			return nil, p.unexpected(`"=" or "("`)
		}

	case KindIf:
		return p.parseIf()

	case KindWhile:
		return p.parseWhile()

	default:
		return nil, p.unexpected("statement")
	}
}

// parseAssign parses the remainder of: ident = root_expr.
// The identifier and "=" lookahead have already been consumed.
func (p *parser) parseAssign(ident Token) (*Assign, error) {
	if err := p.advance(); err != nil { // consume "="
		return nil, err
	}

	value, err := p.parseRootExpr()
	if err != nil {
		return nil, err
	}

	return &Assign{
		Name:  ident.Lit,
		Value: value,
		Pos:   ident.Pos,
	}, nil
}

// parseRootExpr parses: expr | conditional.
//
// The grammar defines conditional as expr <condition> expr, so both
// alternates begin with the same production. A leading expr is parsed
// unconditionally, then a single token of lookahead decides whether a
// trailing comparison completes a conditional. No backtracking occurs.
func (p *parser) parseRootExpr() (Expr, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.tok.Kind.isComparison() {
		return left, nil
	}

	op := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Compare{
		Op:    op.Kind,
		Left:  left,
		Right: right,
		Pos:   left.Position(),
	}, nil
}

// parseConditional parses a mandatory conditional for an if or while header,
// using the same lookahead resolution as parseRootExpr.
func (p *parser) parseConditional() (*Compare, error) {
	expr, err := p.parseRootExpr()
	if err != nil {
		return nil, err
	}

	cond, ok := expr.(*Compare)
	if !ok {
		return nil, ErrParse.WithPosition(expr.Position()).
			With(slog.String("expected", "comparison operator"),
				slog.String("found", p.tok.String()))
	}

	return cond, nil
}

// parseExpr parses: term | term ("+" | "-") expr.
//
// The production is right-recursive exactly as the grammar states it, so
// chains of same-precedence operators associate right-to-left. This is
// deliberate and pinned by tests; do not normalize to left associativity.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindPlus && p.tok.Kind != KindMinus {
		return left, nil
	}

	op := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Binary{
		Op:    op.Kind,
		Left:  left,
		Right: right,
		Pos:   left.Position(),
	}, nil
}

// parseTerm parses: factor | factor ("*" | "/") term.
// Right-recursive for the same reason as parseExpr.
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindStar && p.tok.Kind != KindSlash {
		return left, nil
	}

	op := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	return &Binary{
		Op:    op.Kind,
		Left:  left,
		Right: right,
		Pos:   left.Position(),
	}, nil
}

// parseFactor parses: NUMBER | identifier | "(" expr ")" | func_call.
// String literals are not factors; they are accepted only as call arguments.
func (p *parser) parseFactor() (Expr, error) {
	switch p.tok.Kind {
	case KindNumber:
		tok := p.tok

		value, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil {
			return nil, ErrParse.WithPosition(tok.Pos).Wrap(err).
				With(slog.String("found", tok.String()))
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		return &NumberLit{Value: value, Lit: tok.Lit, Pos: tok.Pos}, nil

	case KindIdent:
		ident := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.Kind == KindLParen {
			return p.parseFuncCall(ident)
		}

		return &VarRef{Name: ident.Lit, Pos: ident.Pos}, nil

	case KindLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(KindRParen); err != nil {
			return nil, err
		}

		return expr, nil

	default:
		return nil, p.unexpected("number, identifier, or \"(\"")
	}
}

// parseFuncCall parses the remainder of: ident "(" [arg {"," arg}] ")".
// The identifier has been consumed and "(" is the current lookahead.
func (p *parser) parseFuncCall(ident Token) (*FuncCall, error) {
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}

	call := &FuncCall{Name: ident.Lit, Pos: ident.Pos}

	if p.tok.Kind == KindRParen {
		return call, p.advance()
	}

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if p.tok.Kind != KindComma {
			break
		}

		if err := p.advance(); err != nil { // consume ","
			return nil, err
		}
	}

	if _, err := p.expect(KindRParen); err != nil {
		return nil, err
	}

	return call, nil
}

// parseArg parses: root_expr | string.
// This is the only place a string literal is accepted.
func (p *parser) parseArg() (Expr, error) {
	if p.tok.Kind == KindString {
		tok := p.tok

		return &StringLit{Value: tok.Lit, Pos: tok.Pos}, p.advance()
	}

	return p.parseRootExpr()
}

// parseIf parses: "if" conditional "then" block ["else" block] "endif".
func (p *parser) parseIf() (*If, error) {
	pos := p.tok.Pos
	if err := p.advance(); err != nil { // consume "if"
		return nil, err
	}

	cond, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindThen); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &If{Cond: cond, Then: then, Pos: pos}

	if p.tok.Kind == KindElse {
		if err := p.advance(); err != nil {
			return nil, err
		}

		stmt.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(KindEndIf); err != nil {
		return nil, err
	}

	return stmt, nil
}

// parseWhile parses: "while" conditional block "endwhile".
// The grammar has no separator keyword between the conditional and the body.
func (p *parser) parseWhile() (*While, error) {
	pos := p.tok.Pos
	if err := p.advance(); err != nil { // consume "while"
		return nil, err
	}

	cond, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindEndWhile); err != nil {
		return nil, err
	}

	return &While{Cond: cond, Body: body, Pos: pos}, nil
}
