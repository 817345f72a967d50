package dlx

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is wrapped by errors returned when an input grid has the
// wrong shape or contains a value outside [0, maxValue].
var ErrInvalidGrid = errors.New("dlx: invalid grid")

// ErrNoSolution is returned by Solve when the search exhausts the matrix
// without finding a completion.
var ErrNoSolution = errors.New("dlx: no solution")

// invariantViolation reports a programming error: a broken link invariant
// or a candidate lookup that should have been guaranteed to succeed by an
// already-validated grid. These never occur on valid input and are not
// recoverable locally, so they panic rather than return an error.
func invariantViolation(format string, a ...any) {
	panic(fmt.Sprintf("dlx: internal consistency violation: "+format, a...))
}
