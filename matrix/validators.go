// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/Hermitian checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The Hermitian check runs O(n²) on the upper triangle (diagonal included).
//
// AI-Hints:
//  - Use ValidateHermitian before Lanczos to fail fast on non-Hermitian input.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix (the "nil argument" sentinel).
// Complexity: O(1).
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// IsHermitian reports whether |A[i,j] − conj(A[j,i])| ≤ tol for all i ≤ j.
// The diagonal is included, so a diagonal entry with an imaginary part
// larger than tol fails the test. tol == 0 is an exact equality test.
//
// Inputs:
//   - m: non-nil square matrix.
//   - tol: finite tolerance; negative values are normalized to |tol|.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square), ErrNaNInf (bad tol).
//
// Complexity:
//   - Time O(n²), Space O(1) for *Dense (one materialized copy otherwise).
func IsHermitian(m Matrix, tol float64) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, validatorErrorf("IsHermitian", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, validatorErrorf("IsHermitian", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}
	d, err := asDense(m)
	if err != nil {
		return false, validatorErrorf("IsHermitian", err)
	}

	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			// Exact path keeps bitwise semantics (no rounding from Abs).
			if tol == 0 {
				if d.data[i*n+j] != cmplx.Conj(d.data[j*n+i]) {
					return false, nil
				}
				continue
			}
			if cmplx.Abs(d.data[i*n+j]-cmplx.Conj(d.data[j*n+i])) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// ValidateHermitian is the error-returning form of IsHermitian.
// Returns ErrNotHermitian when the check fails.
func ValidateHermitian(m Matrix, tol float64) error {
	ok, err := IsHermitian(m, tol)
	if err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	if !ok {
		return validatorErrorf("ValidateHermitian", ErrNotHermitian)
	}

	return nil
}

// IsHermitianWith is IsHermitian with the tolerance taken from opts
// (WithEpsilon); without options it uses DefaultEpsilon.
func IsHermitianWith(m Matrix, opts ...Option) (bool, error) {
	return IsHermitian(m, gatherOptions(opts...).eps)
}

// ValidateHermitianWith is the error-returning form of IsHermitianWith.
func ValidateHermitianWith(m Matrix, opts ...Option) error {
	return ValidateHermitian(m, gatherOptions(opts...).eps)
}
