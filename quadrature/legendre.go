// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

const (
	opGaussLegendre = "GaussLegendre"
	opNewRule       = "NewLegendreRule"
)

// newton iteration limits for Legendre roots
const (
	rootTol      = 1e-15
	rootMaxSteps = 100
)

// Rule is an n-point Gauss-Legendre rule on [-1, 1].
// Nodes are sorted ascending; Weights[i] belongs to Nodes[i].
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// NewLegendreRule computes the degree-n Gauss-Legendre nodes and weights.
//
// Implementation:
//   - Stage 1: for each root in the positive half, start from the
//     Tricomi estimate cos(π(i−¼)/(n+½)).
//   - Stage 2: Newton-iterate on Pₙ using the three-term recurrence
//     (k)Pₖ = (2k−1)x·Pₖ₋₁ − (k−1)Pₖ₋₂ and Pₙ' = n(x·Pₙ − Pₙ₋₁)/(x²−1).
//   - Stage 3: weight wᵢ = 2 / ((1−xᵢ²)·Pₙ'(xᵢ)²); mirror to the negative half.
//
// Errors:
//   - ErrBadDegree for n < 1.
//
// Complexity:
//   - Time O(n²) (n/2 roots × O(n) recurrence × few Newton steps), Space O(n).
func NewLegendreRule(n int) (*Rule, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", opNewRule, n, ErrBadDegree)
	}
	r := &Rule{Nodes: make([]float64, n), Weights: make([]float64, n)}
	half := (n + 1) / 2
	var x, p, dp, dx float64
	for i := 1; i <= half; i++ {
		x = math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
		for step := 0; step < rootMaxSteps; step++ {
			p, dp = legendre(n, x)
			dx = p / dp
			x -= dx
			if math.Abs(dx) <= rootTol {
				break
			}
		}
		_, dp = legendre(n, x)
		w := 2 / ((1 - x*x) * dp * dp)
		r.Nodes[i-1], r.Weights[i-1] = -x, w
		r.Nodes[n-i], r.Weights[n-i] = x, w
	}

	return r, nil
}

// legendre returns Pₙ(x) and Pₙ'(x) for n ≥ 1 and |x| < 1.
func legendre(n int, x float64) (float64, float64) {
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p0, p1 = p1, (float64(2*k-1)*x*p1-float64(k-1)*p0)/float64(k)
	}

	return p1, float64(n) * (x*p1 - p0) / (x*x - 1)
}

// Integrate maps the rule onto [a, b] and returns h·Σ wᵢ·f(h·xᵢ + c) with
// h = (b−a)/2 and c = (a+b)/2. Reversed bounds yield the negated integral.
// Complexity: O(n) evaluations of f.
func (r *Rule) Integrate(f func(float64) float64, a, b float64) float64 {
	h := (b - a) / 2
	c := (a + b) / 2
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(h*x+c)
	}

	return sum * h
}

// GaussLegendre integrates f over [a, b] with a degree-point Gauss-Legendre
// rule. The result is exact, up to rounding, for polynomials of degree
// ≤ 2·degree−1.
//
// Errors:
//   - ErrBadDegree for degree < 1.
//
// Complexity:
//   - Time O(degree²) to build the rule plus degree evaluations of f.
func GaussLegendre(f func(float64) float64, a, b float64, degree int) (float64, error) {
	r, err := NewLegendreRule(degree)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opGaussLegendre, err)
	}

	return r.Integrate(f, a, b), nil
}
