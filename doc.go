// Package qdyn is a toolbox of numerical primitives for open quantum-system
// dynamics: propagate density matrices, build superoperators and integrate
// drive envelopes without leaving pure Go.
//
// 🚀 What is qdyn?
//
//	A small, dependency-light library that brings together:
//		• Complex dense matrices: kernels, LU, Kronecker products, validators
//		• Vectorization: column-stacking vec/unvec and Liouvillians
//		• Krylov engine: Arnoldi & Lanczos bases, exp(A)·b without exp(A)
//		• Padé exponentials: plain (p,q) approximants and scaling & squaring
//		• Quadrature: Gauss-Legendre, adaptive Gauss-Kronrod, pre-integration
//		• Observables: trace inner products and Bloch-sphere coordinates
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/      complex128 Dense matrix, sentinel errors, kernels
//	superop/     Vectorize, Unvectorize, Liouvillian
//	krylov/      Arnoldi, Lanczos, ExpmV
//	pade/        Expm, Approximant, ScalingSquaring
//	quadrature/  GaussLegendre, Adaptive, PreIntegrate, Timesteps
//	observable/  TraceInner, Pauli matrices, BlochCoordinates
//	cmd/qdyn     command-line front end (YAML problem files)
//
// Quick tour:
//
//	ρ₀ ──vec──▶ b ──ExpmV(−i·L·t, b)──▶ b(t) ──unvec──▶ ρ(t) ──▶ Bloch (x,y,z)
//	             ▲
//	H ──Liouvillian──▶ L = I⊗H − Hᵀ⊗I
//
// See examples/rabi for a driven qubit end to end.
//
//	go get github.com/katalvlaran/qdyn
package qdyn
