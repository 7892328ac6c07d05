package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/calwe/ocr-interpretor/builtin"
	"github.com/calwe/ocr-interpretor/lang"
	"github.com/calwe/ocr-interpretor/log"
)

// Run executes a program from a source file.
type Run struct {
	Source   string `arg:"" default:"-"       help:"Program file or '-' for stdin"                        type:"string"`
	Snapshot string `       enum:",yaml,json" help:"Print final variable bindings" placeholder:"yaml|json"`
	MaxLoop  int    `       default:"0"       help:"Abort while loops after this many iterations (0 = unlimited)"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := openSource(r.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	opts := []lang.Option{lang.WithLogger(log.Default())}
	if r.MaxLoop > 0 {
		opts = append(opts, lang.WithMaxLoopIterations(r.MaxLoop))
	}

	// Parse errors are already decorated with a source snippet.
	program, err := lang.ParseReader(ctx, file, opts...)
	if err != nil {
		return err
	}

	env := lang.NewEnv()
	interp := lang.NewInterp(builtin.New(), opts...)

	if err := interp.Run(ctx, program, env); err != nil {
		return lang.WrapError(err).
			With(
				slog.String("command", "run"),
				slog.String("source", r.Source),
			)
	}

	if r.Snapshot != "" {
		return writeSnapshot(os.Stdout, env, r.Snapshot)
	}

	return nil
}

// writeSnapshot serializes the final variable bindings to w.
func writeSnapshot(w io.Writer, env *lang.Env, format string) error {
	bindings := env.ToMap()

	var (
		out []byte
		err error
	)

	switch format {
	case "json":
		out, err = json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		out = append(out, '\n')

	default:
		out, err = yaml.Marshal(bindings)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	}

	if _, err := w.Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
