package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Runs         map[string]*runSummary
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// runSummary holds statistics for a single run.
type runSummary struct {
	FirstSeen time.Time
	Started   bool
	Seconds   uint64
	Ticks     int
	Outcome   log.Kind
	Elapsed   time.Duration
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Runs:         make(map[string]*runSummary),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			// Outcome stays START until a terminal event arrives.
			run = &runSummary{FirstSeen: event.Timestamp, Outcome: log.KindStart}
			stats.Runs[event.RunID] = run
		}

		switch {
		case event.Start != nil:
			run.Started = true
			run.Seconds = event.Start.Seconds
		case event.Tick != nil:
			run.Ticks++
		case event.Done != nil:
			run.Outcome = log.KindDone
			run.Elapsed = event.Done.Elapsed
		case event.Interrupted != nil:
			run.Outcome = log.KindInterrupted
			run.Elapsed = event.Interrupted.Elapsed
		case event.Rejected != nil:
			run.Outcome = log.KindRejected
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Countdown Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range log.Kinds() {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-13s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	outcomes := make(map[log.Kind]int)
	for _, r := range stats.Runs {
		outcomes[r.Outcome]++
	}
	fmt.Fprintf(w, "Runs: %d (completed %d, interrupted %d, rejected %d, unfinished %d)\n",
		len(stats.Runs),
		outcomes[log.KindDone],
		outcomes[log.KindInterrupted],
		outcomes[log.KindRejected],
		outcomes[log.KindStart],
	)

	if len(stats.Runs) == 0 {
		return
	}

	type runInfo struct {
		id    string
		stats *runSummary
	}
	runs := make([]runInfo, 0, len(stats.Runs))
	for id, rs := range stats.Runs {
		runs = append(runs, runInfo{id, rs})
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, r := range runs {
		if r.stats.Outcome == log.KindRejected {
			fmt.Fprintf(w, "  [%s] rejected input\n", shortenRunID(r.id))
			continue
		}
		if !r.stats.Started && r.stats.Outcome == log.KindInterrupted {
			fmt.Fprintf(w, "  [%s] interrupted at prompt\n", shortenRunID(r.id))
			continue
		}
		fmt.Fprintf(w, "  [%s] %ds, %d ticks, %s after %s\n",
			shortenRunID(r.id), r.stats.Seconds, r.stats.Ticks,
			outcomeLabel(r.stats.Outcome), r.stats.Elapsed.Round(time.Millisecond))
	}
}

func outcomeLabel(k log.Kind) string {
	switch k {
	case log.KindDone:
		return "completed"
	case log.KindInterrupted:
		return "interrupted"
	default:
		return "unfinished"
	}
}
