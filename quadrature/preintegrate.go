// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	opPreIntegrate = "PreIntegrate"
	opParseMethod  = "ParseMethod"
)

// Method selects the rule PreIntegrate applies on each interval.
type Method int

const (
	// MethodAdaptive integrates with Adaptive (Gauss-Kronrod bisection).
	MethodAdaptive Method = iota + 1
	// MethodGaussLegendre integrates with a fixed-degree Gauss-Legendre rule.
	MethodGaussLegendre
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodAdaptive:
		return "adaptive"
	case MethodGaussLegendre:
		return "gauss-legendre"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name onto a Method. Accepted names are the
// canonical ones plus the legacy aliases "scipy" (adaptive) and "me"
// (Gauss-Legendre); matching ignores case and surrounding space.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adaptive", "scipy":
		return MethodAdaptive, nil
	case "gauss-legendre", "gausslegendre", "legendre", "me":
		return MethodGaussLegendre, nil
	default:
		return 0, fmt.Errorf("%s(%q): %w", opParseMethod, s, ErrUnknownMethod)
	}
}

// Coeff holds the drive envelopes of one interval: X and Y multiply σx and
// σy and are integrated; Z multiplies σz and is constant on the interval.
// A nil X or Y is the zero function.
type Coeff struct {
	X func(float64) float64
	Y func(float64) float64
	Z float64
}

// PreIntegrate returns, for every interval [tlist[i], tlist[i+1]], the triple
// [∫X, ∫Y, Z·Δt] of coeffs[i].
//
// Implementation:
//   - Stage 1: validate method, grid (≥ 2 finite, strictly increasing points)
//     and that there is exactly one Coeff per interval.
//   - Stage 2: integrate X and Y per interval with the selected rule. The
//     Gauss-Legendre rule is built once and reused for all intervals.
//
// Behavior highlights:
//   - Adaptive non-convergence is not fatal: the best value is kept and the
//     warning is logged by Adaptive.
//   - An unknown method is logged at warn level and returned as
//     ErrUnknownMethod with a nil result.
//
// Errors:
//   - ErrUnknownMethod, ErrTimeGrid, ErrCoeffCount, ErrBadInterval, ErrNonFinite.
//
// Complexity:
//   - Time O(len(coeffs)·cost(rule)), Space O(len(coeffs)).
func PreIntegrate(coeffs []Coeff, tlist []float64, method Method, opts ...Option) ([][3]float64, error) {
	o := gatherOptions(opts...)
	var integrate func(f func(float64) float64, a, b float64) (float64, error)
	switch method {
	case MethodAdaptive:
		integrate = func(f func(float64) float64, a, b float64) (float64, error) {
			v, _, err := Adaptive(f, a, b, opts...)
			if errors.Is(err, ErrNoConvergence) {
				return v, nil
			}
			return v, err
		}
	case MethodGaussLegendre:
		rule, err := NewLegendreRule(o.degree)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opPreIntegrate, err)
		}
		integrate = func(f func(float64) float64, a, b float64) (float64, error) {
			return rule.Integrate(f, a, b), nil
		}
	default:
		o.logger.Warn().Stringer("method", method).Msg("invalid integration method")
		return nil, fmt.Errorf("%s: %v: %w", opPreIntegrate, method, ErrUnknownMethod)
	}

	if err := validateGrid(tlist); err != nil {
		return nil, fmt.Errorf("%s: %w", opPreIntegrate, err)
	}
	if len(coeffs) != len(tlist)-1 {
		return nil, fmt.Errorf("%s: %d coefficients for %d intervals: %w",
			opPreIntegrate, len(coeffs), len(tlist)-1, ErrCoeffCount)
	}

	out := make([][3]float64, len(coeffs))
	var t0, t1 float64
	var err error
	for i, c := range coeffs {
		t0, t1 = tlist[i], tlist[i+1]
		if c.X != nil {
			if out[i][0], err = integrate(c.X, t0, t1); err != nil {
				return nil, fmt.Errorf("%s: interval %d: %w", opPreIntegrate, i, err)
			}
		}
		if c.Y != nil {
			if out[i][1], err = integrate(c.Y, t0, t1); err != nil {
				return nil, fmt.Errorf("%s: interval %d: %w", opPreIntegrate, i, err)
			}
		}
		out[i][2] = c.Z * (t1 - t0)
	}

	return out, nil
}

// validateGrid checks len ≥ 2, finiteness and strict increase.
func validateGrid(tlist []float64) error {
	if len(tlist) < 2 {
		return fmt.Errorf("need at least 2 points, got %d: %w", len(tlist), ErrTimeGrid)
	}
	for i, t := range tlist {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("point %d is not finite: %w", i, ErrTimeGrid)
		}
		if i > 0 && t <= tlist[i-1] {
			return fmt.Errorf("point %d does not increase: %w", i, ErrTimeGrid)
		}
	}

	return nil
}
