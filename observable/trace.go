// SPDX-License-Identifier: MIT

package observable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
)

var (
	// ErrNoStates indicates an empty state sequence.
	ErrNoStates = errors.New("observable: empty state sequence")

	// ErrNilSolver indicates a missing Solver.
	ErrNilSolver = errors.New("observable: nil solver")
)

const (
	opTraceInner  = "TraceInner"
	opTraceInners = "TraceInners"
)

// TraceInner returns tr(a·b) for square a, b of equal size without forming
// the product: Σᵢⱼ a[i,j]·b[j,i].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1) for *Dense inputs.
func TraceInner(a, b matrix.Matrix) (complex128, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, fmt.Errorf("%s: %w", opTraceInner, err)
	}
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return 0, fmt.Errorf("%s: %w", opTraceInner, err)
	}
	n := a.Rows()
	var sum complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := a.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", opTraceInner, err)
			}
			y, err := b.At(j, i)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", opTraceInner, err)
			}
			sum += x * y
		}
	}

	return sum, nil
}

// TraceInners returns tr(sᵢ·b) for each state sᵢ.
//
// Errors:
//   - ErrNoStates for an empty sequence; otherwise the first TraceInner
//     error, tagged with its index.
func TraceInners(states []matrix.Matrix, b matrix.Matrix) ([]complex128, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%s: %w", opTraceInners, ErrNoStates)
	}
	out := make([]complex128, len(states))
	var err error
	for i, s := range states {
		if out[i], err = TraceInner(s, b); err != nil {
			return nil, fmt.Errorf("%s: state %d: %w", opTraceInners, i, err)
		}
	}

	return out, nil
}
