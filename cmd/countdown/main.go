// Command countdown asks for a number of seconds and counts down to zero,
// printing one line per second.
//
// Usage:
//
//	countdown [flags]
//
// Flags:
//
//	-config string      YAML configuration file
//	-interval duration  Pause between lines (default 1s)
//	-log-level string   Log level: debug, info, warn, error (default "warn")
//	-event-log string   Append the CBOR event trace to this file
//	-version            Print version and exit
//
// Exit codes:
//
//	0    countdown completed
//	1    input was not a non-negative whole number
//	2    invalid flags or configuration
//	3    event log could not be opened
//	4    input could not be read
//	130  interrupted
//
// Examples:
//
//	# Interactive
//	countdown
//
//	# Scripted, with a trace for countdown-log
//	echo 10 | countdown -event-log run.clog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mash-protocol/countdown/cmd/countdown/interactive"
	"github.com/mash-protocol/countdown/internal/config"
	"github.com/mash-protocol/countdown/pkg/countdown"
	"github.com/mash-protocol/countdown/pkg/duration"
	"github.com/mash-protocol/countdown/pkg/log"
	"github.com/mash-protocol/countdown/pkg/version"
)

// Exit codes
const (
	ExitSuccess       = 0
	ExitInvalidInput  = 1
	ExitInvalidArgs   = 2
	ExitEventLogError = 3
	ExitInputError    = 4
	ExitInterrupted   = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	// After the first signal, a second one terminates immediately.
	context.AfterFunc(ctx, stop)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "YAML configuration file")
	interval := fs.Duration("interval", countdown.DefaultInterval, "Pause between lines")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	eventLog := fs.String("event-log", "", "Append the CBOR event trace to this file")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitInvalidArgs
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return ExitInvalidArgs
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("countdown"))
		return ExitSuccess
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFromFile(*configFile); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	// Only flags given on the command line override file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.Interval = *interval
		case "log-level":
			cfg.LogLevel = *logLevel
		case "event-log":
			cfg.EventLog = *eventLog
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	events, closeEvents, err := openEventLogger(cfg, level, logger)
	if err != nil {
		logger.Error("failed to open event log", slog.String("path", cfg.EventLog), slog.String("error", err.Error()))
		return ExitEventLogError
	}
	defer closeEvents()

	input, err := interactive.New(stdin, stdout, "> ")
	if err != nil {
		logger.Error("failed to open input", slog.String("error", err.Error()))
		return ExitInputError
	}
	defer input.Close()

	runner := countdown.NewRunner(countdown.Options{
		Output:   stdout,
		Interval: cfg.Interval,
		Logger:   events,
		Messages: cfg.Messages,
	})
	logger.Debug("countdown starting",
		slog.String("run_id", runner.RunID()),
		slog.Duration("interval", cfg.Interval),
		slog.Bool("interactive", input.Interactive()),
	)

	err = runner.Start(ctx, input)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, duration.ErrInvalidDuration):
		logger.Info("input rejected", slog.String("error", err.Error()))
		return ExitInvalidInput
	case errors.Is(err, countdown.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Warn("countdown interrupted", slog.String("run_id", runner.RunID()))
		return ExitInterrupted
	default:
		logger.Error("failed to read input", slog.String("error", err.Error()))
		return ExitInputError
	}
}

// openEventLogger builds the event trace sink: slog at debug level, a
// CBOR file when configured, both through a MultiLogger, or a no-op.
func openEventLogger(cfg config.Config, level slog.Level, logger *slog.Logger) (log.Logger, func(), error) {
	var sinks []log.Logger
	closeFn := func() {}

	if level <= slog.LevelDebug {
		sinks = append(sinks, log.NewSlogAdapter(logger))
	}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, closeFn, err
		}
		sinks = append(sinks, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				logger.Error("event log incomplete",
					slog.String("path", cfg.EventLog),
					slog.Int("events", fl.Written()),
					slog.String("error", err.Error()),
				)
				return
			}
			logger.Debug("event log closed", slog.String("path", cfg.EventLog), slog.Int("events", fl.Written()))
		}
	}

	switch len(sinks) {
	case 0:
		return log.NoopLogger{}, closeFn, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return log.NewMultiLogger(sinks...), closeFn, nil
	}
}
