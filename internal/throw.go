package internal

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors up and down all the mesh surgery during insertion and
// repair would add a ton of complexity to the code. Instead, we use panics, and
// the public API recovers to convert to an error.
//
// There are two kinds of panic. A TriangulateError is a failure caused by the
// input (degenerate geometry, constraints that cannot be honored), and is
// converted to an error. An InvariantViolation means the mesh code itself is
// broken, and is re-panicked so it fails loudly.

type TriangulateError error

var (
	// Coincident points, or geometry where a circumcircle or split is undefined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// A constrained edge that is malformed or cannot appear in the mesh.
	ErrInvalidConstraint = errors.New("invalid constraint")
)

type InvariantViolation struct {
	Message string
}

func (v InvariantViolation) String() string {
	return "triangulation invariant violated: " + v.Message
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a TriangulateError wrapping ErrDegenerateGeometry.
func degeneratef(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrDegenerateGeometry, format, args...))
}

// Panic with a TriangulateError wrapping ErrInvalidConstraint.
func constraintf(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvalidConstraint, format, args...))
}

// Panic with an InvariantViolation. This is never recovered.
func assertf(format string, args ...interface{}) {
	panic(InvariantViolation{fmt.Sprintf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors are errors too, but they are bugs, not bad input
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
