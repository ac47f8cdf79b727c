package quadrature_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/qdyn/quadrature"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(t float64) float64 { return t }
func one(float64) float64        { return 1 }
func square(t float64) float64   { return t * t }

func TestPreIntegrateBothMethods(t *testing.T) {
	coeffs := []quadrature.Coeff{
		{X: identity, Y: one, Z: 2},
		{X: square, Y: nil, Z: -1},
	}
	tlist := []float64{0, 1, 3}
	want := [][3]float64{
		{0.5, 1, 2},
		{26.0 / 3, 0, -2},
	}
	for _, m := range []quadrature.Method{quadrature.MethodAdaptive, quadrature.MethodGaussLegendre} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := quadrature.PreIntegrate(coeffs, tlist, m)
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				for k := 0; k < 3; k++ {
					assert.InDelta(t, want[i][k], got[i][k], 1e-10, "interval %d component %d", i, k)
				}
			}
		})
	}
}

func TestPreIntegrateUsesEachIntervalsOwnZ(t *testing.T) {
	coeffs := []quadrature.Coeff{{Z: 1}, {Z: 10}, {Z: 100}}
	got, err := quadrature.PreIntegrate(coeffs, []float64{0, 0.5, 1.5, 1.75}, quadrature.MethodGaussLegendre,
		quadrature.WithDegree(4))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got[0][2], tol)
	assert.InDelta(t, 10, got[1][2], tol)
	assert.InDelta(t, 25, got[2][2], tol)
}

func TestPreIntegrateUnknownMethod(t *testing.T) {
	for _, m := range []quadrature.Method{0, 42} {
		t.Run(m.String(), func(t *testing.T) {
			var buf bytes.Buffer
			got, err := quadrature.PreIntegrate(
				[]quadrature.Coeff{{X: one}}, []float64{0, 1}, m,
				quadrature.WithLogger(zerolog.New(&buf)),
			)
			require.ErrorIs(t, err, quadrature.ErrUnknownMethod)
			assert.Nil(t, got)
			assert.Contains(t, buf.String(), "invalid integration method")
		})
	}
}

func TestPreIntegrateSilentByDefault(t *testing.T) {
	var global bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&global)
	t.Cleanup(func() { log.Logger = saved })

	_, err := quadrature.PreIntegrate([]quadrature.Coeff{{X: one}}, []float64{0, 1}, quadrature.Method(42))
	require.ErrorIs(t, err, quadrature.ErrUnknownMethod)
	_, _, err = quadrature.Adaptive(math.Sqrt, 0, 1, quadrature.WithMaxIntervals(1), quadrature.WithTolerance(1e-14, 0))
	require.ErrorIs(t, err, quadrature.ErrNoConvergence)
	assert.Empty(t, global.String())
}

func TestPreIntegrateBogusNameViaParse(t *testing.T) {
	m, err := quadrature.ParseMethod("bogus")
	require.ErrorIs(t, err, quadrature.ErrUnknownMethod)
	got, err := quadrature.PreIntegrate([]quadrature.Coeff{{X: one}}, []float64{0, 1}, m,
		quadrature.WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
	assert.Nil(t, got)
}

func TestPreIntegrateValidation(t *testing.T) {
	c := quadrature.Coeff{X: one}
	for _, tc := range []struct {
		name   string
		coeffs []quadrature.Coeff
		tlist  []float64
		want   error
	}{
		{"single point", []quadrature.Coeff{}, []float64{0}, quadrature.ErrTimeGrid},
		{"repeated point", []quadrature.Coeff{c}, []float64{0, 0}, quadrature.ErrTimeGrid},
		{"decreasing", []quadrature.Coeff{c}, []float64{1, 0}, quadrature.ErrTimeGrid},
		{"nan", []quadrature.Coeff{c}, []float64{0, math.NaN()}, quadrature.ErrTimeGrid},
		{"infinite", []quadrature.Coeff{c}, []float64{0, math.Inf(1)}, quadrature.ErrTimeGrid},
		{"too few coeffs", []quadrature.Coeff{c}, []float64{0, 1, 2}, quadrature.ErrCoeffCount},
		{"too many coeffs", []quadrature.Coeff{c, c}, []float64{0, 1}, quadrature.ErrCoeffCount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quadrature.PreIntegrate(tc.coeffs, tc.tlist, quadrature.MethodGaussLegendre)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]quadrature.Method{
		"scipy":          quadrature.MethodAdaptive,
		"adaptive":       quadrature.MethodAdaptive,
		" Adaptive ":     quadrature.MethodAdaptive,
		"me":             quadrature.MethodGaussLegendre,
		"gauss-legendre": quadrature.MethodGaussLegendre,
		"Legendre":       quadrature.MethodGaussLegendre,
	} {
		got, err := quadrature.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := quadrature.ParseMethod("")
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "adaptive", quadrature.MethodAdaptive.String())
	assert.Equal(t, "gauss-legendre", quadrature.MethodGaussLegendre.String())
	assert.Equal(t, "Method(9)", quadrature.Method(9).String())
}
