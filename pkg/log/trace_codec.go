package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A .clog trace is a headerless sequence of CBOR-encoded Events, one per
// Log call. Timestamps are RFC3339Nano text so a trace can be inspected
// with any CBOR diagnostic tool; durations are integer nanoseconds.
// Unknown integer keys are skipped on decode, which lets a reader accept
// traces from a newer minor format version.
var traceEnc, traceDec = mustTraceModes()

func mustTraceModes() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{
		Sort: cbor.SortCoreDeterministic,
		Time: cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace encoder: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace decoder: %v", err))
	}
	return enc, dec
}

func encodeEvent(event Event) ([]byte, error) {
	return traceEnc.Marshal(event)
}

func newTraceDecoder(r io.Reader) *cbor.Decoder {
	return traceDec.NewDecoder(r)
}
