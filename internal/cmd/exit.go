package cmd

import (
	"errors"
	"fmt"
	"io"

	"calkit/internal/calendar"
)

// Report prints err the way the binaries do and returns the process exit code.
// Calendar argument errors are part of the tool's normal output and go to stdout;
// anything else goes to stderr with an "Error:" prefix.
func Report(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var argErr *calendar.ArgError
	if errors.As(err, &argErr) {
		fmt.Fprintln(stdout, err)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
