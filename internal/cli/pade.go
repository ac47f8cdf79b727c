// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/katalvlaran/qdyn/pade"
	"github.com/spf13/cobra"
)

// NewPadeCommand creates the pade command.
func NewPadeCommand(opts *RootOptions) *cobra.Command {
	var (
		p, q    int
		scaling bool
	)

	cmd := &cobra.Command{
		Use:   "pade",
		Short: "Print the (p,q) Padé exponential of problem.matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Problem.Matrix) == 0 {
				return fmt.Errorf("pade needs problem.matrix: %w", ErrMissingOperand)
			}
			a, err := cfg.Problem.Matrix.Dense()
			if err != nil {
				return fmt.Errorf("problem.matrix: %w", err)
			}
			if !cmd.Flags().Changed("p") {
				p = cfg.Pade.P
			}
			if !cmd.Flags().Changed("q") {
				q = cfg.Pade.Q
			}
			logger.Debug().Int("p", p).Int("q", q).Bool("scaling", scaling).Msg("pade exponential")

			var e *matrix.Dense
			if scaling {
				e, err = pade.ScalingSquaring{P: p, Q: q}.Exp(a)
			} else {
				e, err = pade.Expm(a, p, q)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), e)

			return nil
		},
	}

	cmd.Flags().IntVar(&p, "p", pade.DefaultOrder, "numerator order (default from config)")
	cmd.Flags().IntVar(&q, "q", pade.DefaultOrder, "denominator order (default from config)")
	cmd.Flags().BoolVar(&scaling, "scaling", true, "use scaling and squaring")

	return cmd
}
