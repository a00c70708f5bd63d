package log

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileLogger appends events to a .clog trace file. It is safe for
// concurrent use.
//
// The first encode or write failure ends the trace: later events are
// dropped and the failure is returned by Close, so a truncated trace is
// never mistaken for a complete one.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	written int
	err     error
	closed  bool
}

// NewFileLogger opens path for appending, creating it if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	return &FileLogger{file: f}, nil
}

// Log appends one event.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.err != nil {
		return
	}

	data, err := encodeEvent(event)
	if err == nil {
		_, err = l.file.Write(data)
	}
	if err != nil {
		l.err = fmt.Errorf("event log: %s event %d: %w", event.Kind, l.written+1, err)
		return
	}
	l.written++
}

// Written returns the number of events stored so far.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Close closes the file and reports the first failed Log, if any.
// Calling Close again returns nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return errors.Join(l.err, l.file.Close())
}

var _ Logger = (*FileLogger)(nil)
