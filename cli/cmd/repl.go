package cmd

import (
	"context"

	"github.com/calwe/ocr-interpretor/cli/cmd/repl"
	"github.com/calwe/ocr-interpretor/log"
)

// Repl starts an interactive session.
type Repl struct {
	CacheDir string `default:"${cache}" help:"Directory for REPL history" hidden:""`
	MaxLoop  int    `default:"100000"   help:"Abort while loops after this many iterations (0 = unlimited)"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.CacheDir, r.MaxLoop, log.Default())
}
