package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.clog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// completedRun returns the events of a finished n-second run.
func completedRun(runID string, n uint64, at time.Time) []log.Event {
	events := []log.Event{{
		Timestamp: at,
		RunID:     runID,
		Kind:      log.KindStart,
		Start:     &log.StartEvent{Seconds: n, Interval: time.Second, FormatVersion: "1.0"},
	}}
	for i := n; i > 0; i-- {
		events = append(events, log.Event{
			Timestamp: at.Add(time.Duration(n-i) * time.Second),
			RunID:     runID,
			Kind:      log.KindTick,
			Tick:      &log.TickEvent{Remaining: i},
		})
	}
	return append(events, log.Event{
		Timestamp: at.Add(time.Duration(n) * time.Second),
		RunID:     runID,
		Kind:      log.KindDone,
		Done:      &log.DoneEvent{Ticks: n, Elapsed: time.Duration(n) * time.Second},
	})
}

func interruptedRun(runID string, at time.Time) []log.Event {
	return []log.Event{
		{
			Timestamp: at,
			RunID:     runID,
			Kind:      log.KindStart,
			Start:     &log.StartEvent{Seconds: 10, Interval: time.Second, FormatVersion: "1.0"},
		},
		{Timestamp: at, RunID: runID, Kind: log.KindTick, Tick: &log.TickEvent{Remaining: 10}},
		{
			Timestamp:   at.Add(500 * time.Millisecond),
			RunID:       runID,
			Kind:        log.KindInterrupted,
			Interrupted: &log.InterruptedEvent{Remaining: 10, Elapsed: 500 * time.Millisecond, Reason: "context canceled"},
		},
	}
}

func rejectedRun(runID string, at time.Time) []log.Event {
	return []log.Event{{
		Timestamp: at,
		RunID:     runID,
		Kind:      log.KindRejected,
		Rejected:  &log.RejectedEvent{Input: "abc\n", Reason: "invalid duration"},
	}}
}
