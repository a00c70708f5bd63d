package duration

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when input is not a non-negative whole
// number of seconds.
var ErrInvalidDuration = errors.New("invalid duration")

// MaxSeconds is the largest accepted duration.
const MaxSeconds Seconds = math.MaxUint64

// Seconds is a countdown length in whole seconds.
type Seconds uint64

// ParseSeconds parses user input as a base-10 unsigned integer with an
// optional leading '+'. Surrounding whitespace is ignored.
func ParseSeconds(input string) (Seconds, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	// One explicit plus sign is allowed; ParseUint rejects any other sign.
	n, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, trimmed)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, trimmed)
	}
	return Seconds(n), nil
}

// Descending yields the remaining-seconds values s, s-1, ..., 1.
func (s Seconds) Descending() iter.Seq[Seconds] {
	return func(yield func(Seconds) bool) {
		for i := s; i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}
