package lang

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// astCache stores parsed programs keyed by the xxh3 hash of their source.
// Parsed blocks are never mutated after parsing, so a cached block can be
// shared by concurrent evaluation sessions; each session still owns its
// private Env.
//
//nolint:gochecknoglobals
var astCache sync.Map

// parseStringCached parses source text through the shared program cache.
// Only default-option parses are cached; failures are not.
func parseStringCached(ctx context.Context, src string) (*Block, error) {
	key := xxh3.HashString(src)

	if cached, ok := astCache.Load(key); ok {
		return cached.(*Block), nil
	}

	block, err := parse(ctx, src, settings{})
	if err != nil {
		return nil, err
	}

	block, _ = loadOrStore(key, block)

	return block, nil
}

// loadOrStore inserts the block unless another goroutine won the race, in
// which case the first-stored block is returned so all callers share one.
func loadOrStore(key uint64, block *Block) (*Block, bool) {
	actual, loaded := astCache.LoadOrStore(key, block)

	return actual.(*Block), loaded
}

// PurgeCache discards all cached programs. Intended for tests and
// long-running embeddings that evaluate many distinct sources.
func PurgeCache() {
	astCache.Range(func(key, _ any) bool {
		astCache.Delete(key)

		return true
	})
}

// ParseReader parses a program from an io.Reader.
// The reader is wrapped with asynchronous read-ahead so input can be
// pre-fetched while earlier chunks are consumed.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Block, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...)
}
