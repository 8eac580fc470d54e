// Package console implements line-oriented prompts that repeat until the
// answer is valid.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in, one per line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Out returns the writer prompts are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted text to the output
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the output
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// ReadLine prints question and returns the next input line without its
// surrounding whitespace.
func (p *Prompter) ReadLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Ask repeats question until parse accepts the answer. Rejected answers print
// invalid and ask again; only a read failure ends the loop early.
func Ask[T any](p *Prompter, question, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.ReadLine(question)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprint(p.out, invalid)
	}
}

var errNotYesNo = errors.New("expected yes or no")

// ParseYesNo accepts "yes" and "no" in any case.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, errNotYesNo
}

// AskYesNo repeats question until the answer is yes or no.
func AskYesNo(p *Prompter, question, invalid string) (bool, error) {
	return Ask(p, question, invalid, ParseYesNo)
}
