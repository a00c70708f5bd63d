package log

import "time"

// Event represents a countdown trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies one program run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Kind-specific payload (exactly one is set).
	Start       *StartEvent       `cbor:"10,keyasint,omitempty"`
	Tick        *TickEvent        `cbor:"11,keyasint,omitempty"`
	Done        *DoneEvent        `cbor:"12,keyasint,omitempty"`
	Interrupted *InterruptedEvent `cbor:"13,keyasint,omitempty"`
	Rejected    *RejectedEvent    `cbor:"14,keyasint,omitempty"`
}

// Kind classifies an event.
type Kind uint8

const (
	// KindStart marks an accepted duration, before the first tick.
	KindStart Kind = 0
	// KindTick marks one remaining-seconds line.
	KindTick Kind = 1
	// KindDone marks normal completion.
	KindDone Kind = 2
	// KindInterrupted marks a run cancelled before completion.
	KindInterrupted Kind = 3
	// KindRejected marks input that did not parse as a duration.
	KindRejected Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "START"
	case KindTick:
		return "TICK"
	case KindDone:
		return "DONE"
	case KindInterrupted:
		return "INTERRUPTED"
	case KindRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindStart, KindTick, KindDone, KindInterrupted, KindRejected}
}

// StartEvent captures the accepted countdown.
type StartEvent struct {
	// Seconds is the parsed duration.
	Seconds uint64 `cbor:"1,keyasint"`

	// Interval is the pause between ticks.
	Interval time.Duration `cbor:"2,keyasint"`

	// FormatVersion is the event-log format version of the writer.
	FormatVersion string `cbor:"3,keyasint"`
}

// TickEvent captures one printed remaining-seconds line.
type TickEvent struct {
	// Remaining is the value printed on this line.
	Remaining uint64 `cbor:"1,keyasint"`
}

// DoneEvent captures normal completion.
type DoneEvent struct {
	// Ticks is the number of countdown lines printed.
	Ticks uint64 `cbor:"1,keyasint"`

	// Elapsed is the wall-clock time from START to DONE.
	Elapsed time.Duration `cbor:"2,keyasint"`
}

// InterruptedEvent captures a cancelled run.
type InterruptedEvent struct {
	// Remaining is the last value printed before cancellation, or zero
	// when the run was cancelled at the prompt.
	Remaining uint64 `cbor:"1,keyasint"`

	// Elapsed is the wall-clock time from START to cancellation.
	Elapsed time.Duration `cbor:"2,keyasint"`

	// Reason is the context error text.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// RejectedEvent captures invalid input.
type RejectedEvent struct {
	// Input is the raw line as read, before trimming.
	Input string `cbor:"1,keyasint"`

	// Reason is the parse error text.
	Reason string `cbor:"2,keyasint"`
}
