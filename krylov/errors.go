// SPDX-License-Identifier: MIT

package krylov

import (
	"errors"

	"github.com/katalvlaran/qdyn/matrix"
)

var (
	// ErrZeroVector indicates a zero start vector; it spans no subspace.
	ErrZeroVector = errors.New("krylov: start vector has zero norm")

	// ErrNotHermitian is returned by Lanczos for non-Hermitian input. It is
	// the matrix package sentinel, so either name matches with errors.Is.
	ErrNotHermitian = matrix.ErrNotHermitian

	// ErrBadExponential indicates an Exponentiator returned a result whose
	// shape differs from its input.
	ErrBadExponential = errors.New("krylov: exponentiator returned wrong shape")
)
