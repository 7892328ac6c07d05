// Package cli contains the command line interface for ocrint.
//
// # Usage
//
// The default command runs a program file (or stdin via "-"):
//
//	ocrint run program.ocr
//	ocrint run - < program.ocr
//	ocrint program.ocr
//
// Inspection commands print the intermediate representations:
//
//	ocrint tokens program.ocr
//	ocrint ast program.ocr
//
// An interactive session with completion and history:
//
//	ocrint repl
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//
// # Examples
//
//	# Run with trace logging of each step
//	ocrint --log-level=trace run program.ocr
//
//	# Dump final variable bindings as YAML
//	ocrint run --snapshot=yaml program.ocr
package cli
