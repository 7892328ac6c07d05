package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Config holds the profiler parameters gathered from the command line.
// The zero value disables profiling.
type Config struct {
	Mode  string // one of Modes, empty disables profiling
	Path  string // output directory for profile data
	Quiet bool   // suppress profiler status messages
}

// Start launches the profiler described by c. The returned stopper is always
// safe to call. Without build tag pprof, or with an empty or unknown mode, it
// is a no-op.
func (c Config) Start() interface{ Stop() } {
	if c.Mode == "" {
		return nop{}
	}

	return start(c)
}

type nop struct{}

func (nop) Stop() {}
