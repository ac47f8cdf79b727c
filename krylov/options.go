// SPDX-License-Identifier: MIT

package krylov

import (
	"math"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/katalvlaran/qdyn/pade"
	"github.com/rs/zerolog"
)

const (
	// DefaultBreakdownTol is the subdiagonal norm at or below which a
	// builder stops.
	DefaultBreakdownTol = 1e-12

	// DefaultHermitianTol is the tolerance of the Hermitian test used by
	// Lanczos and by ExpmV's dispatch. Zero means exact equality.
	DefaultHermitianTol = matrix.DefaultEpsilon
)

const (
	panicOrder         = "krylov: WithOrder: order must be >= 0"
	panicBreakdownTol  = "krylov: WithBreakdownTol: tol must be finite and non-negative"
	panicHermitianTol  = "krylov: WithHermitianTol: tol must be finite and non-negative"
	panicExponentiator = "krylov: WithExponentiator: nil exponentiator"
)

// Option configures Arnoldi, Lanczos and ExpmV.
type Option func(*options)

type options struct {
	order        int // 0 = full dimension
	breakdownTol float64
	hermitianTol float64
	exp          Exponentiator
	logger       zerolog.Logger
}

// WithOrder sets the Krylov dimension m. Zero selects the full dimension n;
// values above n are clamped to n. Panics when m < 0.
func WithOrder(m int) Option {
	if m < 0 {
		panic(panicOrder)
	}

	return func(o *options) { o.order = m }
}

// WithBreakdownTol sets the breakdown threshold on ‖w‖₂.
// Panics on negative or non-finite tol.
func WithBreakdownTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicBreakdownTol)
	}

	return func(o *options) { o.breakdownTol = tol }
}

// WithHermitianTol sets the Hermitian test tolerance; 0 restores exact
// equality. Panics on negative or non-finite tol.
func WithHermitianTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicHermitianTol)
	}

	return func(o *options) { o.hermitianTol = tol }
}

// WithExponentiator replaces the dense exponential applied to the projected
// operator. Panics on nil.
func WithExponentiator(e Exponentiator) Option {
	if e == nil {
		panic(panicExponentiator)
	}

	return func(o *options) { o.exp = e }
}

// WithLogger routes breakdown and projection diagnostics to l. Without it
// nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		breakdownTol: DefaultBreakdownTol,
		hermitianTol: DefaultHermitianTol,
		exp:          pade.Default(),
		logger:       zerolog.Nop(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// hermitian is the matrix option carrying hermitianTol.
func (o options) hermitian() matrix.Option {
	return matrix.WithEpsilon(o.hermitianTol)
}

// dimension resolves the requested order against n.
func (o options) dimension(n int) int {
	if o.order == 0 || o.order > n {
		return n
	}

	return o.order
}
