// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/qdyn/superop"
	"github.com/spf13/cobra"
)

// NewLiouvillianCommand creates the liouvillian command.
func NewLiouvillianCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "liouvillian",
		Short: "Print I⊗H − Hᵀ⊗I for problem.hamiltonian",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Problem.Hamiltonian) == 0 {
				return fmt.Errorf("liouvillian needs problem.hamiltonian: %w", ErrMissingOperand)
			}
			h, err := cfg.Problem.Hamiltonian.Dense()
			if err != nil {
				return fmt.Errorf("problem.hamiltonian: %w", err)
			}
			l, err := superop.Liouvillian(h)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), l)

			return nil
		},
	}
}
