// Package interactive reads the countdown duration from the user.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/countdown/pkg/countdown"
)

// Input reads a single line, with line editing when attached to a terminal.
type Input struct {
	rl     *readline.Instance
	reader *bufio.Reader
}

// New returns an Input for stdin. When stdin is a terminal the line is read
// through readline with the given prompt; otherwise stdin is read as a
// plain stream and no prompt is drawn.
func New(stdin io.Reader, stdout io.Writer, prompt string) (*Input, error) {
	if f, ok := stdin.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			InterruptPrompt: "^C",
			Stdin:           f,
			Stdout:          stdout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create readline: %w", err)
		}
		return &Input{rl: rl}, nil
	}

	return &Input{reader: bufio.NewReader(stdin)}, nil
}

// Interactive reports whether input comes from a terminal.
func (in *Input) Interactive() bool {
	return in.rl != nil
}

// ReadLine returns the next line including its newline, if any.
// At end of input it returns what was read so far together with io.EOF.
func (in *Input) ReadLine() (string, error) {
	if in.rl == nil {
		return in.reader.ReadString('\n')
	}

	line, err := in.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", countdown.ErrInterrupted
		}
		return line, err
	}
	return line + "\n", nil
}

// Close releases the terminal.
func (in *Input) Close() error {
	if in.rl == nil {
		return nil
	}
	return in.rl.Close()
}
