// Package duration parses and iterates countdown durations.
//
// A countdown duration is a whole, non-negative number of seconds entered
// by a user. It is held as [Seconds], an unsigned 64-bit value, so the
// full range 0..18446744073709551615 is accepted and anything outside it
// is rejected.
//
// # Parsing
//
// [ParseSeconds] trims surrounding whitespace and accepts base-10 digits
// with at most one leading '+'. Empty input, a minus sign, fractions,
// exponents and values that overflow uint64 fail with an error wrapping
// [ErrInvalidDuration].
//
//	s, err := duration.ParseSeconds("  7  \n")
//	if errors.Is(err, duration.ErrInvalidDuration) {
//	    // reject
//	}
//
// # Iteration
//
// [Seconds.Descending] yields N, N-1, ..., 1. A zero duration yields
// nothing.
package duration
