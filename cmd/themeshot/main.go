package main

import (
	"errors"
	"fmt"
	"os"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ferr *failureError
		if !errors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// failureError ends a command that already reported its failures, so main
// only sets the exit status.
type failureError struct {
	msg string
}

func (e *failureError) Error() string { return e.msg }

func failures(format string, args ...any) error {
	return &failureError{msg: fmt.Sprintf(format, args...)}
}
