package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

func TestStatsCountsByKind(t *testing.T) {
	path := createTestLogFile(t, completedRun("run-one", 3, testTime))

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"START:", "TICK:", "DONE:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "INTERRUPTED:") {
		t.Errorf("did not expect INTERRUPTED count, got:\n%s", output)
	}
	if !strings.Contains(output, "Total Events: 5") {
		t.Errorf("expected 5 total events, got:\n%s", output)
	}
}

func TestStatsRunOutcomes(t *testing.T) {
	var events []log.Event
	events = append(events, completedRun("11111111-a", 2, testTime)...)
	events = append(events, interruptedRun("22222222-b", testTime.Add(time.Minute))...)
	events = append(events, rejectedRun("33333333-c", testTime.Add(2*time.Minute))...)
	// START without a terminal event.
	events = append(events, log.Event{
		Timestamp: testTime.Add(3 * time.Minute),
		RunID:     "44444444-d",
		Kind:      log.KindStart,
		Start:     &log.StartEvent{Seconds: 7, FormatVersion: "1.0"},
	})

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Runs: 4 (completed 1, interrupted 1, rejected 1, unfinished 1)") {
		t.Errorf("unexpected run summary:\n%s", output)
	}
	if !strings.Contains(output, "[11111111] 2s, 2 ticks, completed after 2s") {
		t.Errorf("expected completed run line:\n%s", output)
	}
	if !strings.Contains(output, "[22222222] 10s, 1 ticks, interrupted after 500ms") {
		t.Errorf("expected interrupted run line:\n%s", output)
	}
	if !strings.Contains(output, "[33333333] rejected input") {
		t.Errorf("expected rejected run line:\n%s", output)
	}
	if !strings.Contains(output, "[44444444] 7s, 0 ticks, unfinished") {
		t.Errorf("expected unfinished run line:\n%s", output)
	}

	first := strings.Index(output, "[11111111]")
	last := strings.Index(output, "[44444444]")
	if first > last {
		t.Errorf("expected runs in chronological order:\n%s", output)
	}
}

func TestStatsInterruptedAtPrompt(t *testing.T) {
	events := []log.Event{{
		Timestamp:   testTime,
		RunID:       "55555555-e",
		Kind:        log.KindInterrupted,
		Interrupted: &log.InterruptedEvent{Reason: "input interrupted"},
	}}
	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Runs: 1 (completed 0, interrupted 1, rejected 0, unfinished 0)") {
		t.Errorf("unexpected run summary:\n%s", output)
	}
	if !strings.Contains(output, "[55555555] interrupted at prompt") {
		t.Errorf("expected prompt interruption line:\n%s", output)
	}
}

func TestStatsTimeRange(t *testing.T) {
	path := createTestLogFile(t, completedRun("run-one", 2, testTime))

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "2026-01-28T10:15:32Z to 2026-01-28T10:15:34Z") {
		t.Errorf("expected time range, got:\n%s", output)
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Total Events: 0") {
		t.Errorf("expected zero events, got:\n%s", output)
	}
	if strings.Contains(output, "Time Range") {
		t.Errorf("did not expect time range for empty log:\n%s", output)
	}
}
