package log

import (
	"path/filepath"
	"testing"
	"time"
)

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)

// runEvents returns a complete trace for one finished run of n seconds.
func runEvents(runID string, n uint64, at time.Time) []Event {
	events := []Event{{
		Timestamp: at,
		RunID:     runID,
		Kind:      KindStart,
		Start:     &StartEvent{Seconds: n, Interval: time.Second, FormatVersion: "1.0"},
	}}
	for i := n; i > 0; i-- {
		at = at.Add(time.Second)
		events = append(events, Event{
			Timestamp: at,
			RunID:     runID,
			Kind:      KindTick,
			Tick:      &TickEvent{Remaining: i},
		})
	}
	events = append(events, Event{
		Timestamp: at,
		RunID:     runID,
		Kind:      KindDone,
		Done:      &DoneEvent{Ticks: n, Elapsed: time.Duration(n) * time.Second},
	})
	return events
}

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.clog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close test log: %v", err)
	}
	return path
}
