package lang

import (
	"io"
	"strconv"
	"strings"
)

// Node is implemented by every AST node. Each node retains the source
// position of the token that introduced it for diagnostics.
type Node interface {
	Position() Position
}

// Stmt is implemented by nodes that can appear in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by nodes that can appear in expression position.
// Compare implements Expr so a conditional can form the right-hand side of
// an assignment; StringLit implements Expr so a string literal can appear as
// a call argument. Neither is ever produced by the factor production.
type Expr interface {
	Node
	exprNode()
}

// Block is an ordered sequence of statements.
type Block struct {
	Stmts []Stmt
	Pos   Position
}

// Assign stores the value of an expression or conditional under a variable
// name: target = value.
type Assign struct {
	Name  string
	Value Expr
	Pos   Position
}

// If executes Then when the conditional holds, otherwise Else (which may be
// nil): if cond then ... [else ...] endif.
type If struct {
	Cond *Compare
	Then *Block
	Else *Block // nil when no else branch is present
	Pos  Position
}

// While re-evaluates the conditional before every iteration of the body:
// while cond ... endwhile.
type While struct {
	Cond *Compare
	Body *Block
	Pos  Position
}

// FuncCall invokes a host function by name with an ordered argument list.
// It is valid both as a standalone statement (result discarded) and nested
// inside a factor (result feeds the enclosing expression).
type FuncCall struct {
	Name string
	Args []Expr
	Pos  Position
}

// Binary is an arithmetic expression: left op right, where op is one of
// + - * /.
type Binary struct {
	Op    Kind
	Left  Expr
	Right Expr
	Pos   Position
}

// Compare is a conditional: left op right, where op is one of > >= < <=.
// It yields a Boolean and may only appear where the grammar's root_expr or
// conditional productions allow it.
type Compare struct {
	Op    Kind
	Left  Expr
	Right Expr
	Pos   Position
}

// NumberLit is a decimal numeric literal.
type NumberLit struct {
	Value float64
	Lit   string // original lexeme
	Pos   Position
}

// StringLit is a double-quoted string literal, legal only in argument
// position.
type StringLit struct {
	Value string
	Pos   Position
}

// VarRef reads a variable from the environment.
type VarRef struct {
	Name string
	Pos  Position
}

// Position implementations.

func (b *Block) Position() Position     { return b.Pos }
func (a *Assign) Position() Position    { return a.Pos }
func (i *If) Position() Position        { return i.Pos }
func (w *While) Position() Position     { return w.Pos }
func (f *FuncCall) Position() Position  { return f.Pos }
func (b *Binary) Position() Position    { return b.Pos }
func (c *Compare) Position() Position   { return c.Pos }
func (n *NumberLit) Position() Position { return n.Pos }
func (s *StringLit) Position() Position { return s.Pos }
func (v *VarRef) Position() Position    { return v.Pos }

func (*Assign) stmtNode()   {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*FuncCall) stmtNode() {}

func (*FuncCall) exprNode()  {}
func (*Binary) exprNode()    {}
func (*Compare) exprNode()   {}
func (*NumberLit) exprNode() {}
func (*StringLit) exprNode() {}
func (*VarRef) exprNode()    {}

func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, err := io.WriteString(w, strings.Join(item, ": ")+eol)
		if err != nil {
			panic(err)
		}
	}
}

// Print writes a formatted representation of the block to the writer.
func (b *Block) Print(w io.Writer) {
	b.PrintIndent(w, 0)
}

// PrintIndent writes a formatted representation of the block to the writer
// with the specified indentation.
func (b *Block) PrintIndent(w io.Writer, indent int) {
	for _, stmt := range b.Stmts {
		printNode(stmt, w, indent)
	}
}

// printNode writes a formatted representation of a single node.
func printNode(n Node, w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	switch node := n.(type) {
	case *Assign:
		put("\n", prefix+"Assign", node.Name)
		printNode(node.Value, w, indent+1)

	case *If:
		put(":\n", prefix+"If")
		printNode(node.Cond, w, indent+1)
		put(":\n", prefix+"  Then")
		node.Then.PrintIndent(w, indent+2)

		if node.Else != nil {
			put(":\n", prefix+"  Else")
			node.Else.PrintIndent(w, indent+2)
		}

	case *While:
		put(":\n", prefix+"While")
		printNode(node.Cond, w, indent+1)
		put(":\n", prefix+"  Body")
		node.Body.PrintIndent(w, indent+2)

	case *FuncCall:
		put("\n", prefix+"FuncCall", node.Name)

		for _, arg := range node.Args {
			printNode(arg, w, indent+1)
		}

	case *Binary:
		put("\n", prefix+"Binary", node.Op.String())
		printNode(node.Left, w, indent+1)
		printNode(node.Right, w, indent+1)

	case *Compare:
		put("\n", prefix+"Compare", node.Op.String())
		printNode(node.Left, w, indent+1)
		printNode(node.Right, w, indent+1)

	case *NumberLit:
		put("\n", prefix+"Number", node.Lit)

	case *StringLit:
		put("\n", prefix+"String", strconv.Quote(node.Value))

	case *VarRef:
		put("\n", prefix+"VarRef", node.Name)

	default:
		put("\n", prefix+"(unknown)")
	}
}
