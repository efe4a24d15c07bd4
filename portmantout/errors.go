package portmantout

import (
	"errors"
	"fmt"
)

// Taxonomy sentinels, checked with errors.Is against wrapped errors
// returned from I/O boundaries and the core algorithms.
var (
	// ErrIoFailure marks a file-not-found, read/write, or short-read
	// entropy-source failure.
	ErrIoFailure = errors.New("portmantout: io failure")

	// ErrUsage marks a wrong-argument-count or malformed-flag condition;
	// callers print usage and exit 0.
	ErrUsage = errors.New("portmantout: usage error")

	// ErrCorruptInput marks input that violates a documented contract:
	// a resume file missing a particle, or a joiner gap the padding
	// search assumed could not happen.
	ErrCorruptInput = errors.New("portmantout: corrupt input")

	// ErrInvariantViolation marks a SanityCheck assertion failure. It
	// indicates a bug, not bad input, and is never expected to surface
	// to a caller except via panic/recover at the process boundary.
	ErrInvariantViolation = errors.New("portmantout: invariant violation")
)

// VerificationFailure is a negative verifier result: not a failure of
// the verifier itself, but a value describing where/what failed. Word
// is non-empty for a completeness failure; otherwise Index carries the
// byte offset the cover check failed at.
type VerificationFailure struct {
	// Index is set by the cover check: the byte offset coverage first
	// failed at.
	Index int
	// Word is set by the completeness check: the first dictionary word
	// that could not be located in the portmantout.
	Word string
}

func (f *VerificationFailure) Error() string {
	if f.Word != "" {
		return "portmantout: word not covered: " + f.Word
	}
	return fmt.Sprintf("portmantout: cover check failed at byte offset %d", f.Index)
}
