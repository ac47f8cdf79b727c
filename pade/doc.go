// SPDX-License-Identifier: MIT

// Package pade approximates the matrix exponential with (p,q) Padé
// rational approximants.
//
// The (p,q) approximant of exp(A) is D(A)⁻¹·N(A) with
//
//	N(A) = Σ_{i=0..p} cᵢ·Aⁱ,   cᵢ = (p+q−i)!·p! / ((p+q)!·i!·(p−i)!)
//	D(A) = Σ_{i=0..q} dᵢ·(−A)ⁱ, dᵢ = (p+q−i)!·q! / ((p+q)!·i!·(q−i)!)
//
// Expm evaluates the approximant directly and is accurate only for small
// ‖A‖. ScalingSquaring wraps it with the classic scale-and-square scheme and
// is the general-purpose dense exponential used for the small projected
// matrices of the Krylov engine.
//
// A singular denominator is fatal and surfaces as matrix.ErrSingular.
package pade
