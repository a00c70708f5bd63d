package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(data []byte) (Event, error) {
	var event Event
	err := newTraceDecoder(bytes.NewReader(data)).Decode(&event)
	return event, err
}

func TestEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: testTime,
		RunID:     "abc12345-def6-7890-abcd-ef1234567890",
		Kind:      KindStart,
		Start:     &StartEvent{Seconds: 5, Interval: time.Second, FormatVersion: "1.0"},
	}

	data, err := encodeEvent(original)
	require.NoError(t, err)

	decoded, err := decodeOne(data)
	require.NoError(t, err)

	assert.True(t, decoded.Timestamp.Equal(original.Timestamp), "timestamp keeps nanoseconds")
	assert.Equal(t, original.RunID, decoded.RunID)
	assert.Equal(t, original.Kind, decoded.Kind)
	require.NotNil(t, decoded.Start)
	assert.Equal(t, *original.Start, *decoded.Start)
	assert.Nil(t, decoded.Tick)
	assert.Nil(t, decoded.Done)
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	data, err := encodeEvent(Event{
		Timestamp: testTime,
		RunID:     "run-1",
		Kind:      KindTick,
		Tick:      &TickEvent{Remaining: 3},
	})
	require.NoError(t, err)

	var raw map[any]any
	require.NoError(t, cbor.Unmarshal(data, &raw))

	for k := range raw {
		if _, ok := k.(uint64); !ok {
			t.Errorf("key %v (%T) is not an integer", k, k)
		}
	}
	// Timestamp, RunID, Kind, Tick; nil payloads are omitted.
	assert.Len(t, raw, 4)
}

func TestRejectedEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: testTime,
		RunID:     "run-2",
		Kind:      KindRejected,
		Rejected:  &RejectedEvent{Input: "abc\n", Reason: `invalid duration: "abc"`},
	}

	data, err := encodeEvent(original)
	require.NoError(t, err)
	decoded, err := decodeOne(data)
	require.NoError(t, err)

	require.NotNil(t, decoded.Rejected)
	assert.Equal(t, "abc\n", decoded.Rejected.Input)
	assert.Equal(t, original.Rejected.Reason, decoded.Rejected.Reason)
}

func TestTraceDecoderRejectsGarbage(t *testing.T) {
	_, err := decodeOne([]byte{0xff, 0x00, 0x13})
	assert.Error(t, err)
}

func TestTraceDecoderSkipsUnknownKeys(t *testing.T) {
	// An event from a newer minor version with an extra field.
	data, err := cbor.Marshal(map[int]any{2: "run-3", 3: uint8(KindTick), 11: map[int]any{1: 4}, 40: "extra"})
	require.NoError(t, err)

	decoded, err := decodeOne(data)
	require.NoError(t, err)
	assert.Equal(t, "run-3", decoded.RunID)
	assert.Equal(t, KindTick, decoded.Kind)
	require.NotNil(t, decoded.Tick)
	assert.Equal(t, uint64(4), decoded.Tick.Remaining)
}

func TestTraceEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: testTime,
		RunID:     "run-4",
		Kind:      KindDone,
		Done:      &DoneEvent{Ticks: 2, Elapsed: 2 * time.Second},
	}

	first, err := encodeEvent(event)
	require.NoError(t, err)
	second, err := encodeEvent(event)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
