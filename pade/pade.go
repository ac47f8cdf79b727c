// SPDX-License-Identifier: MIT

package pade

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qdyn/matrix"
)

// ErrBadOrder indicates a negative numerator or denominator order.
var ErrBadOrder = errors.New("pade: orders must be non-negative")

const (
	opExpm            = "Expm"
	opScalingSquaring = "ScalingSquaring"
)

// Coefficients returns c₀…c_p of the (p,q) numerator. Swap p and q to get
// the denominator coefficients d₀…d_q.
//
// The ratio cᵢ/cᵢ₋₁ = (p−i+1) / (i·(p+q−i+1)) is used instead of raw
// factorials so large orders do not overflow.
func Coefficients(p, q int) ([]float64, error) {
	if p < 0 || q < 0 {
		return nil, ErrBadOrder
	}
	c := make([]float64, p+1)
	c[0] = 1
	for i := 1; i <= p; i++ {
		c[i] = c[i-1] * float64(p-i+1) / (float64(i) * float64(p+q-i+1))
	}

	return c, nil
}

// Expm returns the (p,q) Padé approximant D⁻¹·N of exp(a).
//
// Errors:
//   - ErrBadOrder for p < 0 or q < 0.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (a not square).
//   - matrix.ErrSingular when D is not invertible.
//
// Complexity:
//   - Time O(max(p,q)·n³), Space O(n²).
func Expm(a matrix.Matrix, p, q int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	cn, err := Coefficients(p, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}
	cd, err := Coefficients(q, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	num, err := polynomial(a, cn, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: numerator: %w", opExpm, err)
	}
	den, err := polynomial(a, cd, -1)
	if err != nil {
		return nil, fmt.Errorf("%s: denominator: %w", opExpm, err)
	}
	out, err := matrix.Solve(den, num)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpm, err)
	}

	return out, nil
}

// polynomial evaluates Σ coeff[i]·(sign·a)ⁱ with one running power.
func polynomial(a matrix.Matrix, coeff []float64, sign float64) (*matrix.Dense, error) {
	acc, err := matrix.IdentityLike(a)
	if err != nil {
		return nil, err
	}
	acc, err = matrix.Scale(acc, complex(coeff[0], 0))
	if err != nil {
		return nil, err
	}
	if len(coeff) == 1 {
		return acc, nil
	}
	step, err := matrix.Scale(a, complex(sign, 0))
	if err != nil {
		return nil, err
	}
	power := step
	var term *matrix.Dense
	for i := 1; i < len(coeff); i++ {
		if i > 1 {
			if power, err = matrix.Mul(power, step); err != nil {
				return nil, err
			}
		}
		if term, err = matrix.Scale(power, complex(coeff[i], 0)); err != nil {
			return nil, err
		}
		if acc, err = matrix.Add(acc, term); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Approximant exponentiates with a fixed (P,Q) Padé approximant and no
// scaling. Accurate only for small-norm inputs.
type Approximant struct {
	P, Q int
}

// Exp implements the Krylov engine's exponentiator capability.
func (ap Approximant) Exp(a *matrix.Dense) (*matrix.Dense, error) {
	return Expm(a, ap.P, ap.Q)
}

// ScalingSquaring exponentiates with exp(A) = (exp(A/2ˢ))^(2ˢ), choosing s so
// that ‖A/2ˢ‖₁ ≤ MaxNorm and evaluating the inner exponential with the
// (P,Q) Padé approximant.
type ScalingSquaring struct {
	P, Q int
}

// MaxNorm is the 1-norm bound after scaling.
const MaxNorm = 0.5

// DefaultOrder is the diagonal Padé order used by Default.
const DefaultOrder = 6

// Default returns the (6,6) scaling-and-squaring exponentiator.
func Default() ScalingSquaring {
	return ScalingSquaring{P: DefaultOrder, Q: DefaultOrder}
}

// Exp implements the Krylov engine's exponentiator capability.
//
// Errors:
//   - Same as Expm; matrix.ErrNaNInf when a holds non-finite norms.
//
// Complexity:
//   - Time O((max(P,Q) + s)·n³), Space O(n²).
func (ss ScalingSquaring) Exp(a *matrix.Dense) (*matrix.Dense, error) {
	norm, err := matrix.Norm1(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScalingSquaring, err)
	}
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%s: %w", opScalingSquaring, matrix.ErrNaNInf)
	}
	s := 0
	if norm > MaxNorm {
		s = int(math.Ceil(math.Log2(norm / MaxNorm)))
	}
	scaled, err := matrix.Scale(a, complex(math.Ldexp(1, -s), 0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScalingSquaring, err)
	}
	e, err := Expm(scaled, ss.P, ss.Q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScalingSquaring, err)
	}
	for ; s > 0; s-- {
		if e, err = matrix.Mul(e, e); err != nil {
			return nil, fmt.Errorf("%s: %w", opScalingSquaring, err)
		}
	}

	return e, nil
}
