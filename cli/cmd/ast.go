package cmd

import (
	"context"
	"os"

	"github.com/calwe/ocr-interpretor/lang"
)

// Ast prints the syntax tree of a program without evaluating it.
type Ast struct {
	Source string `arg:"" default:"-" help:"Program file or '-' for stdin"`
}

// Run executes the ast command.
func (a *Ast) Run(ctx context.Context) error {
	file, err := openSource(a.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	program, err := lang.ParseReader(ctx, file)
	if err != nil {
		return err
	}

	program.Print(os.Stdout)

	return nil
}
