package internal

import "github.com/pkg/errors"

// The guards are pure predicates, and a bad index is a caller bug, not a
// geometric answer. Rather than give every guard an error return, we panic with
// a GuardError, and the public API recovers to convert to an error.

type GuardError struct {
	err error
}

func (e GuardError) Error() string { return e.err.Error() }
func (e GuardError) Unwrap() error { return e.err }

// Panic with a GuardError.
func fatalf(format string, args ...interface{}) {
	panic(GuardError{errors.Errorf(format, args...)})
}

// Only GuardError panics are converted. Anything else, runtime errors
// included, is a real bug and panics again.
func HandleGuardPanicRecover(r interface{}) error {
	if r != nil {
		if guardError, ok := r.(GuardError); ok {
			return guardError
		}
		panic(r)
	}
	return nil
}

func checkIndex(name string, index, lo, hi int) {
	if index < lo || index > hi {
		fatalf("%s %d out of range [%d, %d]", name, index, lo, hi)
	}
}
