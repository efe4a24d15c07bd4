package command

import (
	"errors"

	"github.com/kestrel-labs/portmantout/portmantout"
)

// classifyErr maps a domain error to its process exit code per the error
// handling design: IoFailure and CorruptInput are real failures (exit 1 and
// 2 respectively, so they're distinguishable in scripts); UsageError exits 0
// after usage has already been printed by the caller.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, portmantout.ErrUsage):
		return NewExitError(0, err)
	case errors.Is(err, portmantout.ErrCorruptInput):
		return NewExitError(2, err)
	case errors.Is(err, portmantout.ErrIoFailure):
		return NewExitError(1, err)
	default:
		return err
	}
}
