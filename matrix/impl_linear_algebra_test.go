// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Equal(t, complex128(0), MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_Set_RejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, cmplx.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, complex(math.Inf(1), 0)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, cmplx.Inf()))
}

func TestDense_ColSetColSubmatrix(t *testing.T) {
	m := MustReal(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2, 5, 8}, col)

	require.NoError(t, m.SetCol(0, []complex128{-1, -2, -3}))
	assert.Equal(t, complex128(-2), MustAt(t, m, 1, 0))
	require.ErrorIs(t, m.SetCol(0, []complex128{1}), matrix.ErrDimensionMismatch)

	sub, err := m.Submatrix(1, 1, 2, 2)
	require.NoError(t, err)
	RequireClose(t, MustReal(t, [][]float64{{5, 6}, {8, 9}}), sub)

	_, err = m.Submatrix(2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_IsDeep(t *testing.T) {
	m := MustReal(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 42))
	assert.Equal(t, complex128(1), MustAt(t, c, 0, 0))
}

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]complex128{{1 + 1i, 2}, {3, 4 - 2i}})
	b := MustRows(t, [][]complex128{{1, 1i}, {-3, 2i}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{2 + 1i, 2 + 1i}, {0, 4}}), sum)

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1i, 2 - 1i}, {6, 4 - 4i}}), diff)

	_, err = matrix.Add(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_FastPathMatchesFallback ensures the hidden (generic) path and the
// *Dense path produce identical products.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 4, 3)
	b := MustDense(t, 3, 5)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	RequireClose(t, fast, slow)
	require.Equal(t, 4, fast.Rows())
	require.Equal(t, 5, fast.Cols())
}

func TestMul_Known(t *testing.T) {
	a := MustRows(t, [][]complex128{{1, 1i}, {0, 2}})
	b := MustRows(t, [][]complex128{{1i, 0}, {1, 1}})
	// [[1*i + i*1, i], [2, 2]]
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{2i, 1i}, {2, 2}}), got)

	_, err = matrix.Mul(a, MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeAndConjTranspose(t *testing.T) {
	m := MustRows(t, [][]complex128{{1 + 2i, 3}, {4i, 5}, {6, 7 - 1i}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1 + 2i, 4i, 6}, {3, 5, 7 - 1i}}), tr)

	ct, err := matrix.ConjTranspose(m)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1 - 2i, -4i, 6}, {3, 5, 7 + 1i}}), ct)
}

func TestScaleAndMatVec(t *testing.T) {
	m := MustReal(t, [][]float64{{1, 2}, {3, 4}})
	s, err := matrix.Scale(m, 1i)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1i, 2i}, {3i, 4i}}), s)

	_, err = matrix.Scale(m, cmplx.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	y, err := matrix.MatVec(m, []complex128{1, 1i})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 2i, 3 + 4i}, y)

	_, err = matrix.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKron(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := MustReal(t, [][]float64{{0, 5}, {6, 7}})
	got, err := matrix.Kron(a, b)
	require.NoError(t, err)
	want := MustReal(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
		{0, 15, 0, 20},
		{18, 21, 24, 28},
	})
	RequireClose(t, want, got)

	// Rectangular shapes multiply.
	k, err := matrix.Kron(MustDense(t, 1, 3), MustDense(t, 2, 1))
	require.NoError(t, err)
	require.Equal(t, 2, k.Rows())
	require.Equal(t, 3, k.Cols())
}

func TestTraceNorm1(t *testing.T) {
	m := MustRows(t, [][]complex128{{1, -2}, {3i, 4}})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, complex128(5), tr)

	n1, err := matrix.Norm1(m)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, n1, tol)

	_, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_Solve(t *testing.T) {
	t.Parallel()

	// Zero leading entry forces a row swap.
	a := MustRows(t, [][]complex128{
		{0, 2, 1i},
		{1, 1, 0},
		{3, 0, 1},
	})
	id, _ := matrix.NewIdentity(3)
	inv, err := matrix.Solve(a, id)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	RequireClose(t, id, prod)

	f, err := matrix.LU(a)
	require.NoError(t, err)
	b := []complex128{1, 2, 3}
	x, err := f.SolveVec(b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	ok, err := matrix.AllCloseVec(ax, b, 0, tol)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLU_Singular(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.LU(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(MustDense(t, 2, 2), MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestIsHermitian(t *testing.T) {
	h := MustRows(t, [][]complex128{{1, 2 - 1i}, {2 + 1i, -3}})
	ok, err := matrix.IsHermitian(h, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	near := MustRows(t, [][]complex128{{1, 2 - 1i}, {2 + 1i + 1e-14, -3}})
	ok, err = matrix.IsHermitian(near, 0)
	require.NoError(t, err)
	assert.False(t, ok, "exact test must reject a perturbed entry")
	ok, err = matrix.IsHermitian(near, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	imagDiag := MustRows(t, [][]complex128{{1i, 0}, {0, 1}})
	require.ErrorIs(t, matrix.ValidateHermitian(imagDiag, 1e-12), matrix.ErrNotHermitian)

	_, err = matrix.IsHermitian(MustDense(t, 2, 3), 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.IsHermitian(h, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestValidateNotNil_TypedNil(t *testing.T) {
	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
}

func TestVectorHelpers(t *testing.T) {
	x := []complex128{1i, 2}
	y := []complex128{1, 1i}
	d, err := matrix.Dot(x, y)
	require.NoError(t, err)
	// conj(i)*1 + 2*i = -i + 2i = i
	assert.Equal(t, complex128(1i), d)

	assert.InDelta(t, math.Sqrt(5), matrix.Norm2(x), tol)
	assert.InDelta(t, 5e200, matrix.Norm2([]complex128{3e200, 4e200i}), 1e190)
	assert.Equal(t, 0.0, matrix.Norm2(nil))

	require.NoError(t, matrix.Axpy(2, x, y))
	assert.Equal(t, []complex128{1 + 2i, 4 + 1i}, y)
	require.ErrorIs(t, matrix.Axpy(1, x, []complex128{1}), matrix.ErrDimensionMismatch)

	e, err := matrix.Basis(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 1, 0}, e)
	_, err = matrix.Basis(3, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAllClose_Policy(t *testing.T) {
	a := MustReal(t, [][]float64{{1, 2}})
	b := MustReal(t, [][]float64{{1, 2 + 1e-9}})
	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = matrix.AllClose(a, b, 1e-6, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
