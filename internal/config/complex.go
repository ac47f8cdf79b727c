// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qdyn/matrix"
	"gopkg.in/yaml.v3"
)

// Complex is a complex scalar decoded from YAML. Accepted forms:
//
//	1.5        real number
//	"1+2i"     complex literal (also "2i", "(1-0.5i)")
//	[1, 2]     [re, im] pair
type Complex complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Complex) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		v, err := parseScalar(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = Complex(v)
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: complex pair needs 2 values, got %d: %w",
				value.Line, len(value.Content), ErrInvalid)
		}
		var parts [2]float64
		for i, n := range value.Content {
			if err := n.Decode(&parts[i]); err != nil {
				return fmt.Errorf("line %d: %w", n.Line, err)
			}
		}
		*c = Complex(complex(parts[0], parts[1]))
		return nil
	default:
		return fmt.Errorf("line %d: complex scalar must be a number, string or pair: %w", value.Line, ErrInvalid)
	}
}

func parseScalar(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return complex(f, 0), nil
	}
	v, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("parse complex %q: %w", s, ErrInvalid)
	}

	return v, nil
}

// Vector is a YAML list of complex scalars.
type Vector []Complex

// Complex128 returns a fresh []complex128 copy.
func (v Vector) Complex128() []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex128(x)
	}

	return out
}

// Rows is a YAML list of rows of complex scalars.
type Rows [][]Complex

// Dense converts the rows to a matrix. Ragged or empty input is rejected by
// the matrix constructors.
func (r Rows) Dense() (*matrix.Dense, error) {
	rows := make([][]complex128, len(r))
	for i, row := range r {
		rows[i] = Vector(row).Complex128()
	}

	return matrix.NewFromRows(rows)
}
