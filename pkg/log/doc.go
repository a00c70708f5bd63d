// Package log provides the countdown event trace.
//
// This package defines the Logger interface and Event types for capturing
// what happened during a countdown run: the accepted duration, every tick,
// completion, interruption and rejected input. It is separate from
// operational logging (slog) - the event trace is a machine-readable record
// for later inspection with the countdown-log tool.
//
// # Basic Usage
//
// Runners receive a Logger implementation:
//
//	// For development: log to console via slog
//	opts.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to binary file
//	opts.Logger, _ = log.NewFileLogger("/tmp/countdown.clog")
//
//	// Both: use MultiLogger
//	opts.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Kinds
//
// Every run produces exactly one terminal event:
//   - START then TICK x N then DONE for a completed countdown
//   - START, some TICKs, then INTERRUPTED when the run context is cancelled
//   - INTERRUPTED alone when the user cancelled at the prompt
//   - REJECTED alone when the input was not a valid duration
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .clog extension.
// START events carry the format version; readers refuse files written with
// a different major version. A FileLogger stops at its first failed write
// and reports that failure from Close.
package log
