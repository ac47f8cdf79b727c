// SPDX-License-Identifier: MIT

// Package matrix provides the complex-valued dense linear algebra that the
// rest of qdyn is built on.
//
// The package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked accessors
//     (At/Set return errors, never panic on user input).
//   - Kernels: Add, Sub, Mul, Scale, Transpose, ConjTranspose, MatVec, Kron,
//     LU (partial pivoting), Solve, Trace, Norm1.
//   - Vector helpers on []complex128: Dot (conjugate-linear in the first
//     argument), Norm2, Axpy, Scal, Basis.
//   - Predicates: IsHermitian and AllClose with explicit tolerances;
//     IsHermitianWith reads the tolerance from WithEpsilon instead.
//
// Conventions:
//   - Every kernel allocates a fresh result; inputs are never mutated.
//   - Kernels take the Matrix interface and run a flat-slice fast path for
//     *Dense operands; any other implementation is materialized once.
//   - Errors are package sentinels (errors.go) wrapped with an operation tag,
//     so callers match them with errors.Is.
//
// Vectorization and Kronecker products follow the column-stacking
// convention: vec(A·X·B) = (Bᵀ ⊗ A)·vec(X).
package matrix
