// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowsColsShape verifies that Rows(), Cols() and Shape() agree.
func TestRowsColsShape(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89-2i))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89-2i, val)
}

// TestNewDiagonal places values on the main diagonal only.
func TestNewDiagonal(t *testing.T) {
	d, err := matrix.NewDiagonal([]complex128{1, 2i, -3})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := MustAt(t, d, i, j)
			if i != j {
				require.Zero(t, v)
			}
		}
	}
	require.Equal(t, 2i, MustAt(t, d, 1, 1))

	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m := MustRows(t, [][]complex128{{1, 2i}, {-0.5, 3 + 4i}})
	require.Equal(t, "[(1+0i), (0+2i)]\n[(-0.5+0i), (3+4i)]\n", m.String())
}

// TestToDense shares *Dense storage and materializes other implementations.
func TestToDense(t *testing.T) {
	m := MustRows(t, [][]complex128{{1, 2}, {3, 4}})
	same, err := matrix.ToDense(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	copied, err := matrix.ToDense(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, copied)
	ok, err := matrix.AllClose(m, copied, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.ToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
