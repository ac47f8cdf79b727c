// SPDX-License-Identifier: MIT

// Package krylov approximates the action of the matrix exponential,
// exp(A)·b, without forming exp(A).
//
// The engine projects A onto the Krylov subspace
//
//	K_m(A, b) = span{b, A·b, A²·b, …, A^(m−1)·b}
//
// with an orthonormal basis V (n×m) and a small projected operator H (m×m)
// satisfying A·V ≈ V·H. Then
//
//	exp(A)·b ≈ ‖b‖₂ · V · exp(H) · e₁
//
// where exp(H) is evaluated by a dense Exponentiator (Padé scaling and
// squaring by default).
//
// Two basis builders are provided:
//
//   - Arnoldi: modified Gram-Schmidt against every previous column; H is
//     upper Hessenberg. Works for any square A.
//   - Lanczos: three-term recurrence for Hermitian A; H is real
//     tridiagonal. Cheaper per step, rejects non-Hermitian input.
//
// Both stop early when the next basis vector's norm falls to the breakdown
// tolerance. Breakdown means the subspace is A-invariant, so the reduced
// problem on the leading Order×Order block is exact rather than a failure.
//
// ExpmV dispatches between the two with a tolerance-based Hermitian test.
// All calls allocate their own result and are safe to run concurrently.
package krylov
