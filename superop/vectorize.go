// SPDX-License-Identifier: MIT

package superop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qdyn/matrix"
)

const (
	opVectorize   = "Vectorize"
	opUnvectorize = "Unvectorize"
	opLiouvillian = "Liouvillian"
)

// Vectorize flattens m column by column into a fresh vector of length r·c.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Vectorize(m matrix.Matrix) ([]complex128, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorize, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]complex128, 0, rows*cols)
	var (
		v   complex128
		err error
	)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opVectorize, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Unvectorize is the inverse of Vectorize for a square matrix whose size is
// inferred from len(v).
//
// Policy:
//   - len(v) == 1 → 1×1 matrix.
//   - odd len(v) ≠ 1 → ErrShape.
//   - even len(v) that is not a perfect square → ErrShape.
//
// Complexity:
//   - Time O(n), Space O(n).
func Unvectorize(v []complex128) (*matrix.Dense, error) {
	if err := checkLength(v); err != nil {
		return nil, err
	}
	if len(v) == 1 {
		return fill(v, 1, 1)
	}
	side := int(math.Sqrt(float64(len(v))))
	// Guard against sqrt rounding on either side of the true root.
	for side*side > len(v) {
		side--
	}
	for (side+1)*(side+1) <= len(v) {
		side++
	}
	if side*side != len(v) {
		return nil, fmt.Errorf("%s: length %d is not a perfect square; give a column count: %w",
			opUnvectorize, len(v), ErrShape)
	}

	return fill(v, side, side)
}

// UnvectorizeCols reshapes v into a matrix with the given number of columns;
// the row count is len(v)/columns. Column-major fill.
//
// Errors:
//   - ErrEmpty for an empty v.
//   - ErrShape for odd len(v) ≠ 1, columns ≤ 0, or columns not dividing len(v).
//
// Complexity:
//   - Time O(n), Space O(n).
func UnvectorizeCols(v []complex128, columns int) (*matrix.Dense, error) {
	if err := checkLength(v); err != nil {
		return nil, err
	}
	if columns <= 0 || len(v)%columns != 0 {
		return nil, fmt.Errorf("%s: %d columns cannot split length %d evenly: %w",
			opUnvectorize, columns, len(v), ErrShape)
	}

	return fill(v, len(v)/columns, columns)
}

// checkLength applies the length rules shared by both Unvectorize forms.
func checkLength(v []complex128) error {
	switch {
	case len(v) == 0:
		return fmt.Errorf("%s: %w", opUnvectorize, ErrEmpty)
	case len(v)%2 != 0 && len(v) != 1:
		return fmt.Errorf("%s: odd number of elements (%d): %w", opUnvectorize, len(v), ErrShape)
	}

	return nil
}

// fill writes v into a fresh rows×cols matrix in column-major order.
func fill(v []complex128, rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUnvectorize, err)
	}
	for j := 0; j < cols; j++ {
		if err = m.SetCol(j, v[j*rows:(j+1)*rows]); err != nil {
			return nil, fmt.Errorf("%s: %w", opUnvectorize, err)
		}
	}

	return m, nil
}

// Liouvillian returns the n²×n² generator I⊗H − Hᵀ⊗I of unitary
// Liouville-von Neumann dynamics in column-stacked form.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (H not square).
//
// Complexity:
//   - Time O(n⁴), Space O(n⁴).
func Liouvillian(h matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(h); err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}
	id, err := matrix.IdentityLike(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}
	ht, err := matrix.Transpose(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}
	left, err := matrix.Kron(id, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}
	right, err := matrix.Kron(ht, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}
	l, err := matrix.Sub(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLiouvillian, err)
	}

	return l, nil
}
