// SPDX-License-Identifier: MIT

// Package config loads qdyn problem files.
//
// A file is decoded over Default(), so omitted keys keep their defaults and
// an explicit zero (hermitian_tol: 0) is honoured. The environment variable
// QDYN_LOG_LEVEL overrides log_level. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/qdyn/krylov"
	"github.com/katalvlaran/qdyn/pade"
	"github.com/katalvlaran/qdyn/quadrature"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides Config.LogLevel when set and non-empty.
const EnvLogLevel = "QDYN_LOG_LEVEL"

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of a problem file.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Krylov     KrylovConfig     `yaml:"krylov"`
	Pade       PadeConfig       `yaml:"pade"`
	Problem    ProblemConfig    `yaml:"problem"`
	Quadrature QuadratureConfig `yaml:"quadrature"`
}

// KrylovConfig tunes the Krylov engine. Order 0 selects the full dimension.
type KrylovConfig struct {
	Order        int     `yaml:"order"`
	BreakdownTol float64 `yaml:"breakdown_tol"`
	HermitianTol float64 `yaml:"hermitian_tol"`
}

// PadeConfig selects the Padé orders of the dense exponential.
type PadeConfig struct {
	P int `yaml:"p"`
	Q int `yaml:"q"`
}

// ProblemConfig holds the operands of the CLI commands.
type ProblemConfig struct {
	Matrix      Rows   `yaml:"matrix"`
	Vector      Vector `yaml:"vector"`
	Hamiltonian Rows   `yaml:"hamiltonian"`
}

// QuadratureConfig describes a polynomial integrand c₀ + c₁t + c₂t² + … on
// Interval and the rule to integrate it with.
type QuadratureConfig struct {
	Method     string     `yaml:"method"`
	Degree     int        `yaml:"degree"`
	Polynomial []float64  `yaml:"polynomial"`
	Interval   [2]float64 `yaml:"interval"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: zerolog.LevelInfoValue,
		Krylov: KrylovConfig{
			BreakdownTol: krylov.DefaultBreakdownTol,
			HermitianTol: krylov.DefaultHermitianTol,
		},
		Pade: PadeConfig{P: pade.DefaultOrder, Q: pade.DefaultOrder},
		Quadrature: QuadratureConfig{
			Method:   quadrature.MethodGaussLegendre.String(),
			Degree:   quadrature.DefaultDegree,
			Interval: [2]float64{0, 1},
		},
	}
}

// Load reads path, applies the environment override and validates.
// An empty path yields Default() with the override applied.
func Load(path string) (*Config, error) {
	if path == "" {
		c := Default()
		c.applyEnv(os.LookupEnv)
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes YAML data over Default(), applies the environment override
// and validates.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.applyEnv(os.LookupEnv)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	k := c.Krylov
	if k.Order < 0 {
		return fmt.Errorf("krylov.order %d: %w", k.Order, ErrInvalid)
	}
	if !nonNegative(k.BreakdownTol) {
		return fmt.Errorf("krylov.breakdown_tol %g: %w", k.BreakdownTol, ErrInvalid)
	}
	if !nonNegative(k.HermitianTol) {
		return fmt.Errorf("krylov.hermitian_tol %g: %w", k.HermitianTol, ErrInvalid)
	}
	if c.Pade.P < 0 || c.Pade.Q < 0 {
		return fmt.Errorf("pade orders (%d,%d): %w", c.Pade.P, c.Pade.Q, ErrInvalid)
	}
	q := c.Quadrature
	if _, err := q.ParsedMethod(); err != nil {
		return fmt.Errorf("quadrature.method: %w: %w", ErrInvalid, err)
	}
	if q.Degree < 1 {
		return fmt.Errorf("quadrature.degree %d: %w", q.Degree, ErrInvalid)
	}
	if math.IsNaN(q.Interval[0]) || math.IsNaN(q.Interval[1]) {
		return fmt.Errorf("quadrature.interval: %w", ErrInvalid)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}

	return lvl, nil
}

// KrylovOptions translates the krylov and pade sections into engine options.
func (c *Config) KrylovOptions(logger zerolog.Logger) []krylov.Option {
	return []krylov.Option{
		krylov.WithOrder(c.Krylov.Order),
		krylov.WithBreakdownTol(c.Krylov.BreakdownTol),
		krylov.WithHermitianTol(c.Krylov.HermitianTol),
		krylov.WithExponentiator(pade.ScalingSquaring{P: c.Pade.P, Q: c.Pade.Q}),
		krylov.WithLogger(logger),
	}
}

// ParsedMethod resolves Method, legacy names included.
func (q QuadratureConfig) ParsedMethod() (quadrature.Method, error) {
	return quadrature.ParseMethod(q.Method)
}

// Integrand returns the polynomial as a function evaluated by Horner's rule.
func (q QuadratureConfig) Integrand() func(float64) float64 {
	c := append([]float64(nil), q.Polynomial...)

	return func(t float64) float64 {
		var v float64
		for k := len(c) - 1; k >= 0; k-- {
			v = v*t + c[k]
		}
		return v
	}
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
