package countdown

import (
	"errors"
	"strings"
)

// ErrBadRemainingFormat is returned when a remaining-line format does not
// contain exactly one %d verb.
var ErrBadRemainingFormat = errors.New("remaining format must contain exactly one %d verb")

// Messages holds the user-visible lines for each phase.
type Messages struct {
	// Banner is printed first.
	Banner string

	// Prompt asks for the duration.
	Prompt string

	// Remaining is a fmt format with a single %d for the seconds left.
	Remaining string

	// Invalid is printed when input does not parse.
	Invalid string

	// Done is printed after the countdown.
	Done string
}

// DefaultMessages returns the stock texts.
func DefaultMessages() Messages {
	return Messages{
		Banner:    "⏳ Countdown Timer",
		Prompt:    "Enter countdown time in seconds:",
		Remaining: "Time remaining: %d seconds",
		Invalid:   "❌ Please enter a valid number.",
		Done:      "⏰ Time's up!",
	}
}

// WithDefaults returns m with every empty field replaced by the stock text.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	if m.Banner == "" {
		m.Banner = d.Banner
	}
	if m.Prompt == "" {
		m.Prompt = d.Prompt
	}
	if m.Remaining == "" {
		m.Remaining = d.Remaining
	}
	if m.Invalid == "" {
		m.Invalid = d.Invalid
	}
	if m.Done == "" {
		m.Done = d.Done
	}
	return m
}

// ValidateRemainingFormat checks that f formats exactly one integer.
func ValidateRemainingFormat(f string) error {
	// %% is a literal percent sign and does not count as a verb.
	stripped := strings.ReplaceAll(f, "%%", "")
	if strings.Count(stripped, "%") != 1 || strings.Count(stripped, "%d") != 1 {
		return ErrBadRemainingFormat
	}
	return nil
}
