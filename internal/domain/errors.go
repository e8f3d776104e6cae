package domain

import (
	"errors"
	"fmt"
)

// ErrAddressMismatch is returned when the reference implementation derives a
// different address than the local computation.
var ErrAddressMismatch = errors.New("reference address mismatch")

// LengthError reports an identity secret of the wrong size. No partial parse
// is attempted; the file is either exactly SecretSize bytes or rejected.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("identity secret must be %d bytes, got %d", e.Expected, e.Actual)
}

// NewLengthError returns a LengthError against SecretSize.
func NewLengthError(actual int) *LengthError {
	return &LengthError{Expected: SecretSize, Actual: actual}
}
