package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/calwe/ocr-interpretor/lang"
)

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory.
const CacheIdentifier = "cache"

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the program source at path, or stdin when path is "-".
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err)
	}

	return file, nil
}

// readSource returns the full program text at path, or stdin when path
// is "-".
func readSource(path string) (string, error) {
	r, err := openSource(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	src, err := io.ReadAll(r)
	if err != nil {
		return "", lang.ErrReadInput.Wrap(err)
	}

	return string(src), nil
}
