// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// (conjugate) transpose, scalar scaling, Kronecker products and LU-based
// solves. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Every kernel materializes non-*Dense operands once (asDense) and then
//     runs a single flat-slice loop nest with a fixed order.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitution loops and dot products.
const ZeroSum complex128 = 0

// ZeroPivot is the sentinel for detecting a vanished pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opMatVec        = "MatVec"
	opKron          = "Kron"
	opLU            = "LU"
	opSolve         = "Solve"
	opTrace         = "Trace"
	opNorm1         = "Norm1"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// transpose is shared by Transpose and ConjTranspose.
func transpose(m Matrix, conj bool, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var i, j, baseSrc int
	var v complex128
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			v = dm.data[baseSrc+j]
			if conj {
				v = cmplx.Conj(v)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// No conjugation is applied; see ConjTranspose for mᴴ.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) { return transpose(m, false, opTranspose) }

// ConjTranspose returns the conjugate (Hermitian) transpose mᴴ.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ConjTranspose(m Matrix) (*Dense, error) { return transpose(m, true, opConjTranspose) }

// Scale returns alpha*m as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if !isFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]complex128, dm.r)
	var i, j, base int
	var sum complex128
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			sum += dm.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Kron returns the Kronecker product a ⊗ b of shape (ra*rb)×(ca*cb):
//
//	(a⊗b)[i*rb+k, j*cb+l] = a[i,j]·b[k,l].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space O(ra*ca*rb*cb).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := da.r*db.r, da.c*db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var i, j, k, l int
	var av complex128
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			if av == 0 {
				continue // block stays zero
			}
			for k = 0; k < db.r; k++ {
				for l = 0; l < db.c; l++ {
					res.data[(i*db.r+k)*cols+j*db.c+l] = av * db.data[k*db.c+l]
				}
			}
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		sum = ZeroSum
		v   complex128
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		v, err = m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Norm1 returns the maximum absolute column sum ‖m‖₁.
// Used to pick scaling exponents for dense exponentials.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Norm1(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}
	best := NormZero
	var s float64
	for j := 0; j < dm.c; j++ {
		s = NormZero
		for i := 0; i < dm.r; i++ {
			s += cmplx.Abs(dm.data[i*dm.c+j])
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}

// LUFactors holds a row-pivoted Doolittle factorization P·A = L·U packed
// into one n×n buffer (unit diagonal of L implicit) plus the row permutation.
type LUFactors struct {
	n    int
	lu   []complex128 // row-major; strict lower part = L, upper part = U
	perm []int        // perm[i] = source row of A placed at row i
}

// LU computes P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy data into the packed buffer.
//   - Stage 2: For each column k pick the row with the largest |A[i,k]|, swap,
//     then eliminate below the pivot (right-looking, fixed i→j order).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (column without a nonzero pivot).
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := dm.r
	f := &LUFactors{n: n, lu: make([]complex128, n*n), perm: make([]int, n)}
	copy(f.lu, dm.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	var (
		i, j, k, p int
		best, mag  float64
		pivot, l   complex128
	)
	for k = 0; k < n; k++ {
		// Pivot search on column k.
		p, best = k, cmplx.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			mag = cmplx.Abs(f.lu[i*n+k])
			if mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}

		// Eliminate below the pivot.
		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			l = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= l * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// SolveVec solves A·x = b using the stored factors.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors) SolveVec(b []complex128) ([]complex128, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]complex128, n)
	var i, k int
	var sum complex128
	// Forward substitution: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Solve returns X with A·X = B, column by column through one LU factorization.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A not square or B.Rows != n), ErrSingular.
//
// Complexity:
//   - Time O(n³ + n²·c), Space O(n² + n·c).
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	res, err := NewDense(db.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var col, x []complex128
	for j := 0; j < db.c; j++ {
		if col, err = db.Col(j); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if x, err = f.SolveVec(col); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if err = res.SetCol(j, x); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	return res, nil
}
