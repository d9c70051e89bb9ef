package cli

import (
	"context"
	"errors"

	"github.com/bjaus/mdtable"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// userError marks failures caused by bad arguments or input.
type userError struct {
	err error
}

func (e userError) Error() string { return e.err.Error() }

func (e userError) Unwrap() error { return e.err }

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ue userError
	if errors.As(err, &ue) {
		return ExitUser
	}
	switch {
	case errors.Is(err, mdtable.ErrDecode),
		errors.Is(err, mdtable.ErrUnsupportedFormat),
		errors.Is(err, mdtable.ErrUnsupportedMeasure):
		return ExitUser
	}
	return ExitSystem
}
