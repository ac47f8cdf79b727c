// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
)

// Lanczos builds an orthonormal basis of K_m(A, b) for Hermitian A and the
// real tridiagonal projection T = diag(α) + diag(β, ±1).
//
// Implementation:
//   - Stage 1: reject A unless it is Hermitian within hermitianTol.
//   - Stage 2: v₀ = b/‖b‖₂, w = A·v₀, α₀ = Re⟨v₀, w⟩, w ← w − α₀·v₀.
//   - Stage 3: for j = 1…m−1, βⱼ = ‖w‖₂. At or below the breakdown
//     tolerance the build stops with Order = j. Otherwise vⱼ = w/βⱼ,
//     w = A·vⱼ, αⱼ = Re⟨vⱼ, w⟩, w ← w − αⱼ·vⱼ − βⱼ·vⱼ₋₁.
//
// Behavior highlights:
//   - No reorthogonalization; orthogonality degrades as Ritz values
//     converge, which is harmless for moderate m.
//   - Breakdown is reported in the Basis (and logged at debug level).
//
// Errors:
//   - ErrNotHermitian, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     ErrZeroVector.
//
// Complexity:
//   - Time O(m·n²), Space O(n·m + m²).
func Lanczos(a matrix.Matrix, b []complex128, opts ...Option) (*Basis, error) {
	d, beta, err := prepare(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLanczos, err)
	}
	o := gatherOptions(opts...)
	if err = matrix.ValidateHermitianWith(d, o.hermitian()); err != nil {
		return nil, fmt.Errorf("%s: %w", opLanczos, err)
	}
	basis, err := lanczos(d, b, beta, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLanczos, err)
	}

	return basis, nil
}

func lanczos(a *matrix.Dense, b []complex128, beta float64, o options) (*Basis, error) {
	n := a.Rows()
	m := o.dimension(n)
	t := newSquare(m)
	cols := make([][]complex128, 0, m)

	v, err := matrix.Scal(complex(1/beta, 0), b)
	if err != nil {
		return nil, err
	}
	cols = append(cols, v)
	w, alpha, err := rayleigh(a, v)
	if err != nil {
		return nil, err
	}
	t[0][0] = complex(alpha, 0)

	order, broke := m, false
	for j := 1; j < m; j++ {
		norm := matrix.Norm2(w)
		if norm <= o.breakdownTol {
			order, broke = j, true
			o.logger.Debug().Str("builder", opLanczos).Int("order", order).Float64("norm", norm).
				Msg("krylov breakdown")
			break
		}
		t[j][j-1] = complex(norm, 0)
		t[j-1][j] = complex(norm, 0)
		if v, err = matrix.Scal(complex(1/norm, 0), w); err != nil {
			return nil, err
		}
		cols = append(cols, v)
		if w, alpha, err = rayleigh(a, v); err != nil {
			return nil, err
		}
		t[j][j] = complex(alpha, 0)
		if err = matrix.Axpy(complex(-norm, 0), cols[j-1], w); err != nil {
			return nil, err
		}
	}

	return assemble(n, m, cols, t, order, broke)
}

// rayleigh returns w = A·v − α·v with α = Re⟨v, A·v⟩.
func rayleigh(a *matrix.Dense, v []complex128) ([]complex128, float64, error) {
	w, err := matrix.MatVec(a, v)
	if err != nil {
		return nil, 0, err
	}
	dot, err := matrix.Dot(v, w)
	if err != nil {
		return nil, 0, err
	}
	alpha := real(dot)
	if err = matrix.Axpy(complex(-alpha, 0), v, w); err != nil {
		return nil, 0, err
	}

	return w, alpha, nil
}
