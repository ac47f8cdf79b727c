// SPDX-License-Identifier: MIT

package observable

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
)

const (
	opBloch       = "BlochCoordinates"
	opBlochSphere = "BlochSphereCoordinates"
)

// Solver evolves an initial density matrix under a Hamiltonian and returns
// one state per time point. Implementations wrap a master-equation solver.
type Solver interface {
	Evolve(ctx context.Context, h, rho0 matrix.Matrix, tlist []float64) ([]*matrix.Dense, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, h, rho0 matrix.Matrix, tlist []float64) ([]*matrix.Dense, error)

// Evolve calls f.
func (f SolverFunc) Evolve(ctx context.Context, h, rho0 matrix.Matrix, tlist []float64) ([]*matrix.Dense, error) {
	return f(ctx, h, rho0, tlist)
}

// BlochCoordinates returns Re tr(ρσₖ)/2 for k = x, y, z and every state.
//
// Errors:
//   - ErrNoStates; matrix.ErrDimensionMismatch for a state that is not 2×2.
//
// Complexity:
//   - Time O(len(states)), Space O(len(states)).
func BlochCoordinates(states []*matrix.Dense) (x, y, z []float64, err error) {
	if len(states) == 0 {
		return nil, nil, nil, fmt.Errorf("%s: %w", opBloch, ErrNoStates)
	}
	generic := make([]matrix.Matrix, len(states))
	for i, s := range states {
		generic[i] = s
	}
	axes := [3]*matrix.Dense{SigmaX(), SigmaY(), SigmaZ()}
	var coords [3][]float64
	var tr []complex128
	for k, sigma := range axes {
		if tr, err = TraceInners(generic, sigma); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", opBloch, err)
		}
		coords[k] = make([]float64, len(tr))
		for i, v := range tr {
			coords[k][i] = real(v) / 2
		}
	}

	return coords[0], coords[1], coords[2], nil
}

// BlochSphereCoordinates evolves rho0 under h with solver and projects the
// trajectory onto the Bloch sphere.
//
// Errors:
//   - ErrNilSolver; the solver's error, or any BlochCoordinates error.
func BlochSphereCoordinates(ctx context.Context, solver Solver, h, rho0 matrix.Matrix, tlist []float64) (x, y, z []float64, err error) {
	if solver == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opBlochSphere, ErrNilSolver)
	}
	states, err := solver.Evolve(ctx, h, rho0, tlist)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opBlochSphere, err)
	}

	x, y, z, err = BlochCoordinates(states)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opBlochSphere, err)
	}

	return x, y, z, nil
}
