// SPDX-License-Identifier: MIT
// Package krylov_test fixtures: deterministic random operators and
// comparison helpers shared by the builder and ExpmV tests.

package krylov_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qdyn/matrix"
	"github.com/katalvlaran/qdyn/pade"
	"github.com/stretchr/testify/require"
)

var padeDefault = pade.Default()

// tol is the absolute tolerance for basis identities.
const tol = 1e-9

// hide forces the generic Matrix path.
type hide struct{ matrix.Matrix }

func mustReal(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromReal(rows)
	require.NoError(t, err)

	return m
}

// randomGeneral returns an n×n complex matrix with entries scaled by s.
func randomGeneral(t testing.TB, n int, s float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, complex(s*rng.NormFloat64(), s*rng.NormFloat64())))
		}
	}

	return m
}

// randomHermitian returns (G + Gᴴ)/2 for a random G, which is exactly
// Hermitian in floating point.
func randomHermitian(t testing.TB, n int, s float64, seed int64) *matrix.Dense {
	t.Helper()
	g := randomGeneral(t, n, s, seed)
	gh, err := matrix.ConjTranspose(g)
	require.NoError(t, err)
	sum, err := matrix.Add(g, gh)
	require.NoError(t, err)
	h, err := matrix.Scale(sum, 0.5)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		d, _ := h.At(i, i)
		require.NoError(t, h.Set(i, i, complex(real(d), 0)))
	}

	return h
}

func randomVector(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]complex128, n)
	for i := range v {
		v[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	return v
}

// requireOrthonormal checks Vᴴ·V ≈ I on the first k columns.
func requireOrthonormal(t *testing.T, v *matrix.Dense, k int) {
	t.Helper()
	vk, err := v.Submatrix(0, 0, v.Rows(), k)
	require.NoError(t, err)
	vh, err := matrix.ConjTranspose(vk)
	require.NoError(t, err)
	gram, err := matrix.Mul(vh, vk)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(k)
	require.NoError(t, err)
	ok, err := matrix.AllClose(gram, id, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "VᴴV != I:\n%v", gram)
}

// requireKrylovRelation checks A·V[:, :k] ≈ V·H[:, :k].
func requireKrylovRelation(t *testing.T, a *matrix.Dense, v, h *matrix.Dense, k int) {
	t.Helper()
	av, err := matrix.Mul(a, v)
	require.NoError(t, err)
	vh, err := matrix.Mul(v, h)
	require.NoError(t, err)
	left, err := av.Submatrix(0, 0, av.Rows(), k)
	require.NoError(t, err)
	right, err := vh.Submatrix(0, 0, vh.Rows(), k)
	require.NoError(t, err)
	ok, err := matrix.AllClose(left, right, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "A·V != V·H on %d columns", k)
}

// denseExpmV computes exp(A)·b with the dense scaling-and-squaring Padé.
func denseExpmV(t *testing.T, a *matrix.Dense, b []complex128) []complex128 {
	t.Helper()
	e, err := padeDefault.Exp(a)
	require.NoError(t, err)
	out, err := matrix.MatVec(e, b)
	require.NoError(t, err)

	return out
}

func requireCloseVec(t *testing.T, want, got []complex128, atol float64) {
	t.Helper()
	ok, err := matrix.AllCloseVec(got, want, 1e-9, atol)
	require.NoError(t, err)
	require.True(t, ok, "want %v\ngot  %v", want, got)
}
