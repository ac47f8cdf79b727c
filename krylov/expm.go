// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
)

// ExpmV approximates exp(A)·b in a Krylov subspace.
//
// Implementation:
//   - Stage 1: validate; Hermitian A (within hermitianTol) goes to Lanczos,
//     anything else to Arnoldi.
//   - Stage 2: exponentiate the leading Order×Order block Hₖ of the
//     projection with the configured Exponentiator.
//   - Stage 3: return ‖b‖₂ · Vₖ · exp(Hₖ)·e₁.
//
// Behavior highlights:
//   - With the full order (default) and exact arithmetic the result equals
//     exp(A)·b; after a breakdown the k-dimensional subspace is invariant and
//     the reduced result is exact as well.
//
// Inputs:
//   - a: square n×n; b: length-n, non-zero.
//   - opts: WithOrder, WithBreakdownTol, WithHermitianTol, WithExponentiator,
//     WithLogger.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrZeroVector.
//   - ErrBadExponential, or any error from the Exponentiator (for the Padé
//     default, matrix.ErrSingular).
//
// Complexity:
//   - Time O(m·n² + m²·n + cost(exp, m)), Space O(n·m + m²).
func ExpmV(a matrix.Matrix, b []complex128, opts ...Option) ([]complex128, error) {
	d, beta, err := prepare(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	o := gatherOptions(opts...)
	herm, err := matrix.IsHermitianWith(d, o.hermitian())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}

	var basis *Basis
	if herm {
		basis, err = lanczos(d, b, beta, o)
	} else {
		basis, err = arnoldi(d, b, beta, o)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	o.logger.Debug().Bool("hermitian", herm).Int("n", d.Rows()).Int("order", basis.Order).
		Bool("breakdown", basis.Breakdown).Msg("krylov projection")

	v, h, err := basis.Reduced()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	e, err := o.exp.Exp(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	if e == nil || e.Rows() != h.Rows() || e.Cols() != h.Cols() {
		return nil, fmt.Errorf("%s: %w", opExpmV, ErrBadExponential)
	}
	e1, err := matrix.Basis(h.Rows(), 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	first, err := matrix.MatVec(e, e1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	first, err = matrix.Scal(complex(beta, 0), first)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}
	out, err := matrix.MatVec(v, first)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpmV, err)
	}

	return out, nil
}
