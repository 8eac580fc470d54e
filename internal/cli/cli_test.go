package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{"nil", nil, 0, ""},
		{"plain error", errors.New("boom"), 1, "boom\n"},
		{"exit error", &ExitError{Code: 2, Message: "bad flag"}, 2, "bad flag\n"},
		{"silent exit error", &ExitError{Code: 1}, 1, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tc.code, Code(&buf, tc.err))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	newSet := func() *flag.FlagSet {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.String("city", "", "")
		return fs
	}

	stop, err := ParseFlags(newSet(), []string{"-city", "chicago"})
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = ParseFlags(newSet(), []string{"-h"})
	require.NoError(t, err)
	assert.True(t, stop)

	_, err = ParseFlags(newSet(), []string{"-nope"})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
