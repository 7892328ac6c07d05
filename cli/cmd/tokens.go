package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/calwe/ocr-interpretor/lang"
)

// Tokens prints the token stream of a program without evaluating it.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Program file or '-' for stdin"`
}

// Run executes the tokens command.
func (t *Tokens) Run(_ context.Context) error {
	src, err := readSource(t.Source)
	if err != nil {
		return err
	}

	tokens, err := lang.NewLexer(src).Tokens()
	if err != nil {
		return lang.NewSyntaxError(err, src)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for _, tok := range tokens {
		fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Pos, tok.Kind, tok.Lit)
	}

	return w.Flush()
}
