// SPDX-License-Identifier: MIT

// Package quadrature integrates the scalar drive envelopes of a
// time-dependent Hamiltonian H(t) = X(t)·σx + Y(t)·σy + Z·σz.
//
// Two rules are provided:
//
//   - GaussLegendre: a fixed-degree Gauss-Legendre rule. Nodes are the roots
//     of the Legendre polynomial Pₙ found by Newton iteration; the rule is
//     exact for polynomials of degree ≤ 2n−1.
//   - Adaptive: globally adaptive Gauss-Kronrod (7/15) bisection with
//     absolute and relative tolerances, accepting infinite bounds.
//
// PreIntegrate applies either rule piecewise over a time grid and returns one
// [∫X, ∫Y, Z·Δt] triple per interval. Timesteps builds such a grid.
//
// Everything here is synchronous and allocation-local; rules can be shared
// between goroutines once built.
package quadrature
