// SPDX-License-Identifier: MIT

// Package matrix - vector helpers over []complex128.
//
// Purpose:
//   - Supply the inner products and norms that Krylov orthogonalization needs
//     without wrapping vectors in n×1 matrices.
//
// Conventions:
//   - Dot is conjugate-linear in its first argument: Dot(x, y) = Σ conj(xᵢ)·yᵢ.
//   - Helpers that return a vector allocate it; Axpy updates y in place.

package matrix

import (
	"math"
	"math/cmplx"
)

const (
	opDot   = "Dot"
	opAxpy  = "Axpy"
	opScal  = "Scal"
	opBasis = "Basis"
)

// Dot returns ⟨x, y⟩ = Σ conj(x[i])·y[i].
//
// Errors:
//   - ErrNilMatrix (nil argument), ErrDimensionMismatch (length mismatch).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(x, y []complex128) (complex128, error) {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	sum := ZeroSum
	for i := range x {
		sum += cmplx.Conj(x[i]) * y[i]
	}

	return sum, nil
}

// Norm2 returns the Euclidean norm ‖x‖₂, scaled to avoid overflow on
// large entries.
//
// Complexity:
//   - Time O(n), Space O(1).
func Norm2(x []complex128) float64 {
	scale, ssq := NormZero, 1.0
	var a, r float64
	for _, v := range x {
		for _, part := range [2]float64{real(v), imag(v)} {
			if part == 0 {
				continue
			}
			a = math.Abs(part)
			if scale < a {
				r = scale / a
				ssq = 1 + ssq*r*r
				scale = a
			} else {
				r = a / scale
				ssq += r * r
			}
		}
	}

	return scale * math.Sqrt(ssq)
}

// Axpy performs y ← y + alpha·x in place.
//
// Errors:
//   - ErrNilMatrix (nil argument), ErrDimensionMismatch (length mismatch).
//
// Complexity:
//   - Time O(n), Space O(1).
func Axpy(alpha complex128, x, y []complex128) error {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return matrixErrorf(opAxpy, err)
	}
	if y == nil {
		return matrixErrorf(opAxpy, ErrNilMatrix)
	}
	if alpha == 0 {
		return nil
	}
	for i := range x {
		y[i] += alpha * x[i]
	}

	return nil
}

// Scal returns alpha·x as a fresh vector.
//
// Errors:
//   - ErrNaNInf when alpha is not finite.
func Scal(alpha complex128, x []complex128) ([]complex128, error) {
	if !isFinite(alpha) {
		return nil, matrixErrorf(opScal, ErrNaNInf)
	}
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = alpha * v
	}

	return out, nil
}

// Basis returns the i-th standard basis vector eᵢ of length n.
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0), ErrOutOfRange (i ∉ [0,n)).
func Basis(n, i int) ([]complex128, error) {
	if n <= 0 {
		return nil, matrixErrorf(opBasis, ErrInvalidDimensions)
	}
	if i < 0 || i >= n {
		return nil, matrixErrorf(opBasis, ErrOutOfRange)
	}
	e := make([]complex128, n)
	e[i] = 1

	return e, nil
}
