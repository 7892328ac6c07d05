// Package lang implements the front-end and execution engine for the OCR
// reference scripting language: a lexer, a one-token-lookahead recursive
// descent parser producing an abstract syntax tree, and a tree-walking
// evaluator with a flat variable environment and a pluggable host-function
// call boundary.
//
// # Grammar
//
// Informal EBNF, as implemented:
//
//	block       → { assign | func_call | if_stmt | while_stmt }
//	assign      → identifier "=" root_expr
//	root_expr   → expr | conditional
//	conditional → expr ( ">" | ">=" | "<" | "<=" ) expr
//	expr        → term | term ( "+" | "-" ) expr
//	term        → factor | factor ( "*" | "/" ) term
//	factor      → NUMBER | identifier | "(" expr ")" | func_call
//	func_call   → identifier "(" [ arg { "," arg } ] ")"
//	arg         → root_expr | STRING
//	if_stmt     → "if" conditional "then" block [ "else" block ] "endif"
//	while_stmt  → "while" conditional block "endwhile"
//
// # Associativity
//
// expr and term are right-recursive exactly as the grammar states them, so
// chains of same-precedence operators associate right-to-left: 10 - 3 - 2
// evaluates to 9, not 5. Whether this is a deliberate language design choice
// or a grammar-authoring artifact is unresolved upstream; the implementation
// follows the grammar literally rather than guessing.
//
// # Values and environment
//
// The runtime types are Number, Text, and Boolean, with no implicit
// coercion between them. Text exists only as literal call arguments: the
// factor production excludes strings, so a string can never be the result
// of a general expression or be assigned to a variable. All variables live
// in one flat, caller-owned Env; reading an unbound name is an error.
//
// # Sessions
//
// Programs parse once (cached by source hash) and may be evaluated many
// times. Independent sessions can run concurrently when each owns a private
// Env and a private or thread-safe Registry. The evaluator checks its
// context once per while-loop iteration and once per function call, so a
// deadline or cancellation bounds otherwise unbounded loops.
package lang
