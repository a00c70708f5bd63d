// Package commands implements the countdown-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind  *log.Kind
	RunID string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{Kind: f.Kind, RunID: f.RunID}
}

// formatEvent writes one line describing the event to w.
// Format: timestamp [run:id] KIND details
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-11s", ts, shortenRunID(event.RunID), event.Kind.String())

	switch {
	case event.Start != nil:
		fmt.Fprintf(w, " seconds=%d interval=%s format=%s",
			event.Start.Seconds, event.Start.Interval, event.Start.FormatVersion)
	case event.Tick != nil:
		fmt.Fprintf(w, " remaining=%d", event.Tick.Remaining)
	case event.Done != nil:
		fmt.Fprintf(w, " ticks=%d elapsed=%s", event.Done.Ticks, formatDuration(event.Done.Elapsed))
	case event.Interrupted != nil:
		fmt.Fprintf(w, " remaining=%d elapsed=%s", event.Interrupted.Remaining, formatDuration(event.Interrupted.Elapsed))
		if event.Interrupted.Reason != "" {
			fmt.Fprintf(w, " reason=%q", event.Interrupted.Reason)
		}
	case event.Rejected != nil:
		fmt.Fprintf(w, " input=%q reason=%q", event.Rejected.Input, event.Rejected.Reason)
	}

	fmt.Fprintln(w)
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseKindFlag parses a kind string from a command-line flag (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	for _, k := range log.Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid kind: %s (must be start, tick, done, interrupted, or rejected)", s)
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
