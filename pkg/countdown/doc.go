// Package countdown implements the countdown runner.
//
// A run has three phases:
//
//  1. Start prints the banner and prompt, reads one line of input and
//     parses it with [duration.ParseSeconds]. Invalid input prints the
//     invalid message and ends the run with an error wrapping
//     [duration.ErrInvalidDuration]. There is no retry.
//  2. Run prints one remaining-seconds line per value N..1 and pauses for
//     the configured interval after each line. The pause is a plain
//     blocking wait; it is not shortened to compensate for print time.
//  3. After the last pause the done message is printed.
//
// Every phase emits events to a [log.Logger] tagged with the run ID.
//
// # Output Format
//
//	⏳ Countdown Timer
//	Enter countdown time in seconds:
//	Time remaining: 3 seconds
//	Time remaining: 2 seconds
//	Time remaining: 1 seconds
//	⏰ Time's up!
package countdown
