package lang

import "github.com/calwe/ocr-interpretor/log"

// settings holds configuration shared by parsing and evaluation.
type settings struct {
	logger  log.Logger
	maxLoop int // 0 means unbounded
}

// Option configures parsing or evaluation behavior.
type Option func(*settings)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMaxLoopIterations bounds the number of iterations any single while
// loop may run before evaluation fails. The language itself imposes no
// bound; embeddings that must guarantee liveness can set one here or cancel
// the evaluation context.
func WithMaxLoopIterations(n int) Option {
	return func(s *settings) {
		s.maxLoop = n
	}
}

// applyOptions builds a settings value from functional options.
func applyOptions(opts ...Option) settings {
	var s settings

	for _, opt := range opts {
		opt(&s)
	}

	return s
}
