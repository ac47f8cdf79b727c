// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qdyn/krylov"
	"github.com/katalvlaran/qdyn/matrix"
	"github.com/spf13/cobra"
)

// ErrMissingOperand indicates a problem section without the operand a
// command needs.
var ErrMissingOperand = errors.New("missing operand in problem section")

// NewExpmVCommand creates the expmv command.
func NewExpmVCommand(opts *RootOptions) *cobra.Command {
	var tm float64

	cmd := &cobra.Command{
		Use:   "expmv",
		Short: "Compute exp(t·A)·b in a Krylov subspace",
		Long: `Compute exp(t·A)·b for problem.matrix (A) and problem.vector (b).
Hermitian A uses Lanczos, anything else Arnoldi; the krylov and pade
sections tune the projection and the small dense exponential.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Problem.Matrix) == 0 || len(cfg.Problem.Vector) == 0 {
				return fmt.Errorf("expmv needs problem.matrix and problem.vector: %w", ErrMissingOperand)
			}
			a, err := cfg.Problem.Matrix.Dense()
			if err != nil {
				return fmt.Errorf("problem.matrix: %w", err)
			}
			if tm != 1 {
				if a, err = matrix.Scale(a, complex(tm, 0)); err != nil {
					return err
				}
			}

			out, err := krylov.ExpmV(a, cfg.Problem.Vector.Complex128(), cfg.KrylovOptions(logger)...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, v := range out {
				fmt.Fprintln(w, formatComplex(v))
			}

			return nil
		},
	}

	cmd.Flags().Float64VarP(&tm, "time", "t", 1, "time factor t in exp(t·A)")

	return cmd
}
