package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes countdown events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("kind", event.Kind.String()),
	}

	switch {
	case event.Start != nil:
		attrs = append(attrs,
			slog.Uint64("seconds", event.Start.Seconds),
			slog.Duration("interval", event.Start.Interval),
			slog.String("format", event.Start.FormatVersion),
		)
	case event.Tick != nil:
		attrs = append(attrs, slog.Uint64("remaining", event.Tick.Remaining))
	case event.Done != nil:
		attrs = append(attrs,
			slog.Uint64("ticks", event.Done.Ticks),
			slog.Duration("elapsed", event.Done.Elapsed),
		)
	case event.Interrupted != nil:
		attrs = append(attrs,
			slog.Uint64("remaining", event.Interrupted.Remaining),
			slog.Duration("elapsed", event.Interrupted.Elapsed),
		)
		if event.Interrupted.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Interrupted.Reason))
		}
	case event.Rejected != nil:
		attrs = append(attrs,
			slog.String("input", event.Rejected.Input),
			slog.String("reason", event.Rejected.Reason),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "countdown", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
