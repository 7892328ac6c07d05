// Package cmd provides the run, tokens, ast, and repl subcommands for the
// ocrint command line interface.
package cmd
