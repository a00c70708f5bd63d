package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/countdown/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open filtered log: %v", err)
	}
	defer reader.Close()

	events, err := reader.All()
	if err != nil {
		t.Fatalf("failed to read filtered log: %v", err)
	}
	return events
}

func TestFilterByRunID(t *testing.T) {
	events := append(completedRun("run-one", 2, testTime), interruptedRun("run-two", testTime.Add(time.Minute))...)
	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	count, err := RunFilter(path, FilterOptions{Output: outPath, RunID: "run-two"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 events written, got %d", count)
	}

	for _, e := range readAll(t, outPath) {
		if e.RunID != "run-two" {
			t.Errorf("expected only run-two events, got %s", e.RunID)
		}
	}
}

func TestFilterByKindAndTimeRange(t *testing.T) {
	path := createTestLogFile(t, completedRun("run-one", 5, testTime))
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	count, err := RunFilter(path, FilterOptions{
		Output:    outPath,
		Kind:      "tick",
		TimeStart: "2026-01-28T10:15:33Z",
		TimeEnd:   "2026-01-28T10:15:35Z",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 ticks in range, got %d", count)
	}

	got := readAll(t, outPath)
	if got[0].Tick.Remaining != 4 || got[1].Tick.Remaining != 3 {
		t.Errorf("unexpected ticks: %d, %d", got[0].Tick.Remaining, got[1].Tick.Remaining)
	}
}

func TestFilterErrors(t *testing.T) {
	path := createTestLogFile(t, completedRun("run-one", 1, testTime))
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	tests := []struct {
		name string
		opts FilterOptions
		want string
	}{
		{"missing output", FilterOptions{}, "output file is required"},
		{"bad kind", FilterOptions{Output: outPath, Kind: "nope"}, "invalid kind"},
		{"bad time-start", FilterOptions{Output: outPath, TimeStart: "yesterday"}, "invalid time-start"},
		{"bad time-end", FilterOptions{Output: outPath, TimeEnd: "tomorrow"}, "invalid time-end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunFilter(path, tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestFilterRefusesInputAsOutput(t *testing.T) {
	path := createTestLogFile(t, completedRun("run-one", 1, testTime))
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	_, err = RunFilter(path, FilterOptions{Output: path})
	if err == nil || !strings.Contains(err.Error(), "is the input file") {
		t.Fatalf("expected same-file error, got %v", err)
	}

	// A second name for the same file is caught as well.
	if runtime.GOOS != "windows" {
		link := filepath.Join(t.TempDir(), "alias.clog")
		if err := os.Symlink(path, link); err != nil {
			t.Fatalf("symlink failed: %v", err)
		}
		if _, err := RunFilter(path, FilterOptions{Output: link}); err == nil {
			t.Error("expected same-file error for symlinked output")
		}
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if after.Size() != before.Size() {
		t.Errorf("input size changed from %d to %d", before.Size(), after.Size())
	}
}

func TestFilterMissingInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	_, err := RunFilter(filepath.Join(t.TempDir(), "missing.clog"), FilterOptions{Output: outPath})
	if err == nil || !strings.Contains(err.Error(), "failed to open log file") {
		t.Fatalf("expected open error, got %v", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("expected no output file for missing input")
	}
}
