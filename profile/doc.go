// Package profile provides optional runtime profiling for the ocrint
// application.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead.
//
// The following modes are supported when built with the pprof tag:
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, trace.
// Use [Modes] to retrieve the list programmatically.
//
//	cfg := profile.Config{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof). Analyze them with:
//
//	go tool pprof ./ocrint /tmp/profiles/cpu.pprof
package profile
