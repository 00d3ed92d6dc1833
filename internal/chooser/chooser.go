// Package chooser asks the user to pick among candidates, or picks the
// first one on its own in batch mode
package chooser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	// ErrNoChoices is returned when there is nothing to choose from
	ErrNoChoices = errors.New("no choices")
	// ErrUserAbort is returned when input ends or the user interrupts a prompt
	ErrUserAbort = errors.New("aborted by user")
)

var (
	indexColor  = color.New(color.FgCyan)
	chosenColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
)

type line struct {
	text string
	err  error
}

// UI reads answers from in and writes prompts to out
type UI struct {
	in    *bufio.Reader
	out   io.Writer
	batch bool

	// a read still waiting for input after its prompt was interrupted
	pending chan line
}

// New creates a chooser. In batch mode no prompt is ever shown.
func New(in io.Reader, out io.Writer, batch bool) *UI {
	return &UI{
		in:    bufio.NewReader(in),
		out:   out,
		batch: batch,
	}
}

// Select returns the index of the chosen label. A single label, or batch
// mode, picks the first one without asking.
func (u *UI) Select(ctx context.Context, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, ErrNoChoices
	}

	choice := 0
	if len(labels) > 1 && !u.batch {
		width := len(strconv.Itoa(len(labels)))
		for i, label := range labels {
			fmt.Fprintf(u.out, "%s : %s\n", indexColor.Sprintf("%*d", width, i+1), label)
		}

		for {
			fmt.Fprint(u.out, "> ")
			answer, err := u.readLine(ctx)
			if err != nil {
				return 0, err
			}

			n, err := strconv.Atoi(answer)
			if err == nil && n >= 1 && n <= len(labels) {
				choice = n - 1
				break
			}
			errorColor.Fprintln(u.out, "bad response")
		}
	}

	chosenColor.Fprintln(u.out, labels[choice])
	return choice, nil
}

// Confirm asks a yes/no question. An empty answer means no, batch mode
// always answers yes.
func (u *UI) Confirm(ctx context.Context, question string) (bool, error) {
	if u.batch {
		return true, nil
	}

	for {
		fmt.Fprintf(u.out, "%s [yn]> ", question)
		answer, err := u.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n", "":
			return false, nil
		}
		errorColor.Fprintln(u.out, "bad answer")
	}
}

// readLine waits for the next input line or for ctx to be done, whichever
// comes first
func (u *UI) readLine(ctx context.Context) (string, error) {
	if u.pending == nil {
		u.pending = make(chan line, 1)
		go func(ch chan<- line) {
			text, err := u.in.ReadString('\n')
			ch <- line{text: text, err: err}
		}(u.pending)
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(u.out)
		return "", ErrUserAbort
	case l := <-u.pending:
		u.pending = nil
		if l.err != nil {
			if !errors.Is(l.err, io.EOF) {
				return "", fmt.Errorf("failed to read answer: %w", l.err)
			}
			if l.text == "" {
				return "", ErrUserAbort
			}
		}
		return strings.TrimSpace(l.text), nil
	}
}
