// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qdyn/quadrature"
	"github.com/spf13/cobra"
)

// NewIntegrateCommand creates the integrate command.
func NewIntegrateCommand(opts *RootOptions) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate quadrature.polynomial over quadrature.interval",
		Long: `Integrate the polynomial c0 + c1·t + c2·t² + … from the quadrature
section with the configured rule. Methods: gauss-legendre (alias "me")
or adaptive (alias "scipy").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			q := cfg.Quadrature
			if method != "" {
				q.Method = method
			}
			m, err := q.ParsedMethod()
			if err != nil {
				logger.Warn().Str("method", q.Method).Msg("invalid integration method")
				return err
			}
			f := q.Integrand()
			a, b := q.Interval[0], q.Interval[1]
			w := cmd.OutOrStdout()

			switch m {
			case quadrature.MethodGaussLegendre:
				v, err := quadrature.GaussLegendre(f, a, b, q.Degree)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%.12g\n", v)
			case quadrature.MethodAdaptive:
				v, est, err := quadrature.Adaptive(f, a, b, quadrature.WithLogger(logger))
				if err != nil && !errors.Is(err, quadrature.ErrNoConvergence) {
					return err
				}
				fmt.Fprintf(w, "%.12g\t± %.3g\n", v, est)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "override quadrature.method")

	return cmd
}
