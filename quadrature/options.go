// SPDX-License-Identifier: MIT

package quadrature

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultDegree is the Gauss-Legendre degree used when none is given.
	DefaultDegree = 100

	// DefaultAbsTol and DefaultRelTol bound the adaptive error estimate.
	DefaultAbsTol = 1.49e-8
	DefaultRelTol = 1.49e-8

	// DefaultMaxIntervals caps adaptive bisection.
	DefaultMaxIntervals = 50
)

const (
	panicDegree       = "quadrature: WithDegree: degree must be >= 1"
	panicTolerance    = "quadrature: WithTolerance: tolerances must be finite and non-negative"
	panicMaxIntervals = "quadrature: WithMaxIntervals: limit must be >= 1"
)

// Option configures Adaptive and PreIntegrate.
type Option func(*options)

type options struct {
	degree       int
	absTol       float64
	relTol       float64
	maxIntervals int
	logger       zerolog.Logger
}

// WithDegree sets the Gauss-Legendre degree used by PreIntegrate.
// Panics when n < 1.
func WithDegree(n int) Option {
	if n < 1 {
		panic(panicDegree)
	}

	return func(o *options) { o.degree = n }
}

// WithTolerance sets the absolute and relative tolerances of Adaptive.
// Panics on negative or non-finite values.
func WithTolerance(abs, rel float64) Option {
	if !validTol(abs) || !validTol(rel) {
		panic(panicTolerance)
	}

	return func(o *options) {
		o.absTol = abs
		o.relTol = rel
	}
}

// WithMaxIntervals caps the number of subintervals Adaptive may create.
// Panics when n < 1.
func WithMaxIntervals(n int) Option {
	if n < 1 {
		panic(panicMaxIntervals)
	}

	return func(o *options) { o.maxIntervals = n }
}

// WithLogger routes non-convergence and unknown-method warnings to l.
// Without it nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func validTol(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func gatherOptions(user ...Option) options {
	o := options{
		degree:       DefaultDegree,
		absTol:       DefaultAbsTol,
		relTol:       DefaultRelTol,
		maxIntervals: DefaultMaxIntervals,
		logger:       zerolog.Nop(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
