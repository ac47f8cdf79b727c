// SPDX-License-Identifier: MIT

// Package superop maps density matrices to vectors and Hamiltonians to
// Liouville-space generators.
//
// Vectorization stacks columns (column-major order): for an r×c matrix M,
//
//	vec(M) = [M[0,0], M[1,0], …, M[r-1,0], M[0,1], …, M[r-1,c-1]].
//
// With this convention vec(A·X·B) = (Bᵀ ⊗ A)·vec(X), so the
// Liouville-von Neumann commutator H·ρ − ρ·H becomes the matrix-vector
// product Liouvillian(H)·vec(ρ) with
//
//	Liouvillian(H) = I ⊗ H − Hᵀ ⊗ I.
//
// Unvectorize keeps the historical shape policy: a vector of odd length
// other than 1 is rejected even when it could form a square matrix.
package superop
