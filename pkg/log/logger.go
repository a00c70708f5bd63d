package log

// Logger is the interface runners use to emit countdown events.
// Pass NoopLogger to disable the trace.
type Logger interface {
	// Log records an event. Implementations must be thread-safe and must
	// not block for long; the countdown tick is emitted while time runs.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
