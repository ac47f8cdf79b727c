// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/qdyn/quadrature"
	"github.com/spf13/cobra"
)

// NewTimegridCommand creates the timegrid command.
func NewTimegridCommand(opts *RootOptions) *cobra.Command {
	var (
		step, final float64
		midpoint    bool
	)

	cmd := &cobra.Command{
		Use:   "timegrid",
		Short: "Print an evenly spaced time grid on [0, final]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := opts.setup(cmd); err != nil {
				return err
			}
			times, err := quadrature.Timesteps(step, final, midpoint)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range times {
				fmt.Fprintf(w, "%.15g\n", t)
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&step, "step", 0.1, "step size h")
	cmd.Flags().Float64Var(&final, "final", 1, "final time")
	cmd.Flags().BoolVar(&midpoint, "midpoint", false, "print interval midpoints instead")

	return cmd
}
