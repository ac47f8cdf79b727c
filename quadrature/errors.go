// SPDX-License-Identifier: MIT

package quadrature

import "errors"

var (
	// ErrBadDegree indicates a Gauss-Legendre degree below 1.
	ErrBadDegree = errors.New("quadrature: degree must be >= 1")

	// ErrBadInterval indicates a NaN integration bound.
	ErrBadInterval = errors.New("quadrature: invalid integration interval")

	// ErrNoConvergence indicates the adaptive rule hit its subdivision limit
	// before reaching the requested tolerance. The partial value is still
	// returned alongside this error.
	ErrNoConvergence = errors.New("quadrature: tolerance not reached within subdivision limit")

	// ErrNonFinite indicates the integrand produced a NaN or infinite value
	// or error estimate.
	ErrNonFinite = errors.New("quadrature: integrand is not finite")

	// ErrTimeGrid indicates a time grid that is too short, not strictly
	// increasing or not finite.
	ErrTimeGrid = errors.New("quadrature: invalid time grid")

	// ErrCoeffCount indicates a coefficient count that does not match the
	// number of grid intervals.
	ErrCoeffCount = errors.New("quadrature: coefficient count does not match intervals")

	// ErrUnknownMethod indicates an integration method outside the
	// supported set.
	ErrUnknownMethod = errors.New("quadrature: unknown integration method")
)
