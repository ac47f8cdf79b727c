// SPDX-License-Identifier: MIT

package observable

import "github.com/katalvlaran/qdyn/matrix"

// SigmaX returns the Pauli matrix σx = [[0, 1], [1, 0]].
func SigmaX() *matrix.Dense { return pauli(0, 1, 1, 0) }

// SigmaY returns the Pauli matrix σy = [[0, −i], [i, 0]].
func SigmaY() *matrix.Dense { return pauli(0, -1i, 1i, 0) }

// SigmaZ returns the Pauli matrix σz = [[1, 0], [0, −1]].
func SigmaZ() *matrix.Dense { return pauli(1, 0, 0, -1) }

// pauli builds a fresh 2×2 matrix; constant finite entries cannot fail.
func pauli(a, b, c, d complex128) *matrix.Dense {
	m, err := matrix.NewFromRows([][]complex128{{a, b}, {c, d}})
	if err != nil {
		panic(err)
	}

	return m
}
