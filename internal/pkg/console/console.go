// Package console provides the prompting and printing surface the games
// talk to the player through. Orchestrators depend on the Console interface
// so tests can script the player's side of the conversation.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=consolemock github.com/KirkDiggler/rpg-cli/internal/pkg/console Console

// Console is the player-facing I/O surface
type Console interface {
	// Print writes formatted text to the player
	Print(format string, args ...any)

	// Prompt prints the label and returns the next line, trimmed.
	// An error is returned only when the input stream fails (e.g. EOF);
	// malformed answers are the caller's concern.
	Prompt(label string) (string, error)

	// PromptInt prints the label and reads an integer in [low, high],
	// re-prompting with the invalid message until the answer is valid.
	// Only a read failure produces an error.
	PromptInt(label string, low, high int, invalid string) (int, error)
}

// Stdio implements Console over a reader/writer pair
type Stdio struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewStdio creates a console over the given streams
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Print writes formatted text to the output stream
func (c *Stdio) Print(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Prompt prints the label and returns the next input line, trimmed
func (c *Stdio) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", errors.Internal("input stream closed")
	}

	return strings.TrimSpace(c.in.Text()), nil
}

// PromptInt reads a validated integer, re-prompting until the answer parses
// and falls inside [low, high]
func (c *Stdio) PromptInt(label string, low, high int, invalid string) (int, error) {
	for {
		answer, err := c.Prompt(label)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		if err == nil && value >= low && value <= high {
			return value, nil
		}

		fmt.Fprintln(c.out, invalid)
	}
}
