// Package cli holds the pieces shared by the command entry points.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ExitError is an error that carries a specific exit code. An empty Message
// means the user has already been told what went wrong.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError wraps a flag parsing failure with exit code 2.
func UsageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// ParseFlags parses args and reports whether the program should stop
// cleanly, which is the case when help was requested.
func ParseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, UsageError(err)
	}
	return false, nil
}

// Code returns the exit code for err and writes its message to w.
func Code(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(w, exitErr.Message)
		}
		return exitErr.Code
	}

	fmt.Fprintln(w, err)
	return 1
}

// Exit terminates the process with the code for err.
func Exit(err error) {
	os.Exit(Code(os.Stderr, err))
}
