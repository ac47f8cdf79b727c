// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
)

const (
	opArnoldi = "Arnoldi"
	opLanczos = "Lanczos"
	opExpmV   = "ExpmV"
)

// prepare validates A and b, materializes A once and returns ‖b‖₂.
func prepare(a matrix.Matrix, b []complex128) (*matrix.Dense, float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, 0, err
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, 0, err
	}
	d, err := matrix.ToDense(a)
	if err != nil {
		return nil, 0, err
	}
	beta := matrix.Norm2(b)
	if beta == 0 {
		return nil, 0, ErrZeroVector
	}

	return d, beta, nil
}

// Arnoldi builds an orthonormal basis of K_m(A, b) and the upper Hessenberg
// projection H = Vᴴ·A·V.
//
// Implementation:
//   - Stage 1: v₀ = b/‖b‖₂.
//   - Stage 2: for j = 0…m−1, w = A·vⱼ; for i = 0…j (modified Gram-Schmidt)
//     H[i,j] = ⟨vᵢ, w⟩ and w ← w − H[i,j]·vᵢ.
//   - Stage 3: for j < m−1, H[j+1,j] = ‖w‖₂. At or below the breakdown
//     tolerance the build stops with Order = j+1; otherwise vⱼ₊₁ = w/H[j+1,j].
//
// Behavior highlights:
//   - A·V[:, :Order−1] = V·H[:, :Order−1] up to rounding.
//   - Breakdown is reported in the Basis (and logged at debug level), not as
//     an error.
//
// Inputs:
//   - a: square n×n matrix; b: length-n, non-zero.
//   - opts: WithOrder, WithBreakdownTol, WithLogger.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrZeroVector.
//
// Complexity:
//   - Time O(m·n² + m²·n), Space O(n·m + m²).
func Arnoldi(a matrix.Matrix, b []complex128, opts ...Option) (*Basis, error) {
	d, beta, err := prepare(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opArnoldi, err)
	}
	basis, err := arnoldi(d, b, beta, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opArnoldi, err)
	}

	return basis, nil
}

func arnoldi(a *matrix.Dense, b []complex128, beta float64, o options) (*Basis, error) {
	n := a.Rows()
	m := o.dimension(n)
	h := newSquare(m)
	cols := make([][]complex128, 0, m)

	v, err := matrix.Scal(complex(1/beta, 0), b)
	if err != nil {
		return nil, err
	}
	cols = append(cols, v)

	var w []complex128
	var hij complex128
	order, broke := m, false
	for j := 0; j < m; j++ {
		if w, err = matrix.MatVec(a, cols[j]); err != nil {
			return nil, err
		}
		for i := 0; i <= j; i++ {
			if hij, err = matrix.Dot(cols[i], w); err != nil {
				return nil, err
			}
			h[i][j] = hij
			if err = matrix.Axpy(-hij, cols[i], w); err != nil {
				return nil, err
			}
		}
		if j == m-1 {
			break
		}
		norm := matrix.Norm2(w)
		h[j+1][j] = complex(norm, 0)
		if norm <= o.breakdownTol {
			order, broke = j+1, true
			o.logger.Debug().Str("builder", opArnoldi).Int("order", order).Float64("norm", norm).
				Msg("krylov breakdown")
			break
		}
		if v, err = matrix.Scal(complex(1/norm, 0), w); err != nil {
			return nil, err
		}
		cols = append(cols, v)
	}

	return assemble(n, m, cols[:order], h, order, broke)
}

// newSquare allocates an m×m zero matrix as rows.
func newSquare(m int) [][]complex128 {
	h := make([][]complex128, m)
	for i := range h {
		h[i] = make([]complex128, m)
	}

	return h
}

// assemble packs basis columns and projected rows into a Basis.
func assemble(n, m int, cols [][]complex128, h [][]complex128, order int, broke bool) (*Basis, error) {
	v, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for j, c := range cols {
		if err = v.SetCol(j, c); err != nil {
			return nil, err
		}
	}
	hm, err := matrix.NewFromRows(h)
	if err != nil {
		return nil, err
	}

	return &Basis{V: v, H: hm, Order: order, Breakdown: broke}, nil
}
