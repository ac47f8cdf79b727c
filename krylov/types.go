// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/katalvlaran/qdyn/pade"
)

// Basis is the result of a Krylov projection.
//
//   - V is n×m; its first Order columns are orthonormal, the rest are zero.
//   - H is m×m; upper Hessenberg (Arnoldi) or real tridiagonal (Lanczos).
//     The leading Order×Order block is the projected operator.
//   - Breakdown reports an early stop (Order < m).
type Basis struct {
	V         *matrix.Dense
	H         *matrix.Dense
	Order     int
	Breakdown bool
}

// Reduced returns copies of the valid part of the basis: V[:, :Order] and
// H[:Order, :Order].
func (b *Basis) Reduced() (*matrix.Dense, *matrix.Dense, error) {
	v, err := b.V.Submatrix(0, 0, b.V.Rows(), b.Order)
	if err != nil {
		return nil, nil, fmt.Errorf("Basis.Reduced: %w", err)
	}
	h, err := b.H.Submatrix(0, 0, b.Order, b.Order)
	if err != nil {
		return nil, nil, fmt.Errorf("Basis.Reduced: %w", err)
	}

	return v, h, nil
}

// Exponentiator computes the dense matrix exponential of a small square
// matrix. pade.Approximant and pade.ScalingSquaring satisfy it.
type Exponentiator interface {
	Exp(a *matrix.Dense) (*matrix.Dense, error)
}

// ExponentiatorFunc adapts a plain function to Exponentiator.
type ExponentiatorFunc func(a *matrix.Dense) (*matrix.Dense, error)

// Exp calls f(a).
func (f ExponentiatorFunc) Exp(a *matrix.Dense) (*matrix.Dense, error) { return f(a) }

var (
	_ Exponentiator = ExponentiatorFunc(nil)
	_ Exponentiator = pade.Approximant{}
	_ Exponentiator = pade.ScalingSquaring{}
)
