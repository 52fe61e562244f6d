package veccmp

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Tolerance bounds the Euclidean distance under which two vectors
// compare equal. Comparison is strict: a distance of exactly Tolerance
// is not equal.
const Tolerance = 1e-6

// Output receives the size-mismatch diagnostic. Tests redirect it to
// capture the message.
var Output io.Writer = os.Stdout

// VectorEq reports whether observed matches expected element-wise
// within Tolerance, measured as the Euclidean norm of the difference.
// If the lengths differ, a diagnostic naming both sizes is written to
// Output and the result is false; no norm is computed on that path.
func VectorEq(observed mat.Vector, expected []float64) bool {
	if observed.Len() != len(expected) {
		fmt.Fprintf(Output, "veccmp: wrong size. observed size = %d, expected size = %d\n",
			observed.Len(), len(expected))

		return false
	}

	// Zero-dimension vectors match trivially; gonum refuses to build them.
	if len(expected) == 0 {
		return true
	}

	diff := mat.NewVecDense(len(expected), nil)
	diff.SubVec(observed, mat.NewVecDense(len(expected), expected))

	return mat.Norm(diff, 2) < Tolerance
}
