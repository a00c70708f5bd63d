package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mash-protocol/countdown/pkg/clock"
	"github.com/mash-protocol/countdown/pkg/duration"
	"github.com/mash-protocol/countdown/pkg/log"
	"github.com/mash-protocol/countdown/pkg/version"
)

// DefaultInterval is the pause between remaining-seconds lines.
const DefaultInterval = time.Second

var (
	// ErrReadInput is returned when the input line could not be read.
	ErrReadInput = errors.New("read input")

	// ErrInterrupted is returned by a LineReader when the user cancels
	// at the prompt.
	ErrInterrupted = errors.New("input interrupted")
)

// LineReader supplies one line of user input. Implementations return
// io.EOF together with any partial line when input ends without a newline.
type LineReader interface {
	ReadLine() (string, error)
}

// Options configures a Runner.
type Options struct {
	// Output receives all user-visible lines.
	// Default: os.Stdout
	Output io.Writer

	// Interval is the pause after each remaining-seconds line.
	// Zero disables the pause; negative values are treated as zero.
	Interval time.Duration

	// Clock provides time and the blocking pause.
	// Default: clock.NewSystem()
	Clock clock.Clock

	// Logger receives the event trace.
	// Default: log.NoopLogger{}
	Logger log.Logger

	// Messages overrides user-visible texts. Empty fields use the defaults.
	Messages Messages

	// RunID tags every event of this run.
	// Default: a random UUID
	RunID string
}

// Runner executes one countdown.
type Runner struct {
	opts Options
}

// NewRunner creates a runner, filling unset options with defaults.
func NewRunner(opts Options) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Interval < 0 {
		opts.Interval = 0
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.Logger == nil {
		opts.Logger = log.NoopLogger{}
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	opts.Messages = opts.Messages.WithDefaults()

	return &Runner{opts: opts}
}

// RunID returns the identifier attached to this run's events.
func (r *Runner) RunID() string {
	return r.opts.RunID
}

// Start prints the banner and prompt, reads and parses one line from in,
// then runs the countdown. Invalid input prints the invalid message and
// returns an error wrapping duration.ErrInvalidDuration. A LineReader
// returning ErrInterrupted ends the run with an INTERRUPTED event.
func (r *Runner) Start(ctx context.Context, in LineReader) error {
	fmt.Fprintln(r.opts.Output, r.opts.Messages.Banner)
	fmt.Fprintln(r.opts.Output, r.opts.Messages.Prompt)

	line, err := in.ReadLine()
	switch {
	case errors.Is(err, ErrInterrupted):
		r.emit(log.Event{
			Kind:        log.KindInterrupted,
			Interrupted: &log.InterruptedEvent{Reason: err.Error()},
		})
		return err
	case err != nil && !errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	seconds, err := duration.ParseSeconds(line)
	if err != nil {
		fmt.Fprintln(r.opts.Output, r.opts.Messages.Invalid)
		r.emit(log.Event{
			Kind:     log.KindRejected,
			Rejected: &log.RejectedEvent{Input: line, Reason: err.Error()},
		})
		return err
	}

	return r.Run(ctx, seconds)
}

// Run prints seconds, seconds-1, ..., 1 with a pause after each line and
// then the done message. A zero duration prints only the done message.
// If ctx is cancelled during a pause Run returns ctx.Err() without
// printing the done message.
func (r *Runner) Run(ctx context.Context, seconds duration.Seconds) error {
	started := r.opts.Clock.Now()
	r.emit(log.Event{
		Kind: log.KindStart,
		Start: &log.StartEvent{
			Seconds:       uint64(seconds),
			Interval:      r.opts.Interval,
			FormatVersion: version.Current,
		},
	})

	var ticks uint64
	for remaining := range seconds.Descending() {
		fmt.Fprintf(r.opts.Output, r.opts.Messages.Remaining+"\n", uint64(remaining))
		r.emit(log.Event{
			Kind: log.KindTick,
			Tick: &log.TickEvent{Remaining: uint64(remaining)},
		})
		ticks++

		if err := r.opts.Clock.Sleep(ctx, r.opts.Interval); err != nil {
			r.emit(log.Event{
				Kind: log.KindInterrupted,
				Interrupted: &log.InterruptedEvent{
					Remaining: uint64(remaining),
					Elapsed:   r.opts.Clock.Now().Sub(started),
					Reason:    err.Error(),
				},
			})
			return err
		}
	}

	fmt.Fprintln(r.opts.Output, r.opts.Messages.Done)
	r.emit(log.Event{
		Kind: log.KindDone,
		Done: &log.DoneEvent{
			Ticks:   ticks,
			Elapsed: r.opts.Clock.Now().Sub(started),
		},
	})
	return nil
}

func (r *Runner) emit(event log.Event) {
	event.Timestamp = r.opts.Clock.Now()
	event.RunID = r.opts.RunID
	r.opts.Logger.Log(event)
}
