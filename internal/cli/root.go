// SPDX-License-Identifier: MIT

// Package cli implements the qdyn command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qdyn/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string // overrides log_level and QDYN_LOG_LEVEL when set
}

// NewRootCommand creates the root command for the qdyn CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "qdyn",
		Short: "qdyn - numerical primitives for open quantum-system dynamics",
		Long: `Krylov matrix-exponential actions, Padé exponentials, Liouvillian
superoperators and quadrature of drive envelopes.

Operands are read from the problem section of a YAML file (--config).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "problem/config YAML file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (trace|debug|info|warn|error)")

	cmd.AddCommand(NewExpmVCommand(opts))
	cmd.AddCommand(NewLiouvillianCommand(opts))
	cmd.AddCommand(NewPadeCommand(opts))
	cmd.AddCommand(NewIntegrateCommand(opts))
	cmd.AddCommand(NewTimegridCommand(opts))

	return cmd
}

// setup loads the configuration and builds a console logger on the
// command's error stream.
func (o *RootOptions) setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	logger.Debug().Str("config", o.ConfigPath).Msg("configuration loaded")

	return cfg, logger, nil
}

// formatComplex renders v with 12 significant digits per part.
func formatComplex(v complex128) string {
	return fmt.Sprintf("%.12g%+.12gi", real(v), imag(v))
}
