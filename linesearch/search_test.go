package linesearch

import (
	"testing"

	"github.com/lempiji/numeric/cost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadraticCost is F(x) = x0^2 + x1^2, a simple convex bowl with
// gradient 2x — enough to drive a line search along steepest descent
// without needing the full L-BFGS driver.
func quadraticCost() cost.Cost[float64] {
	return cost.NewNumericDiffCost(2, func(x []float64) float64 {
		return x[0]*x[0] + x[1]*x[1]
	})
}

func TestSearchArmijoAcceptsDescentStep(t *testing.T) {
	s, err := New(DefaultOptions[float64]())
	require.NoError(t, err)

	c := quadraticCost()
	xp := []float64{1, 1}
	gp := []float64{2, 2}
	d := []float64{-2, -2}
	fp := 2.0
	xc, gc := make([]float64, 2), make([]float64, 2)

	res := s.Search(c, xp, gp, d, fp, 1.0, xc, gc)
	require.True(t, res.Success)
	assert.Less(t, res.Cost, fp)
	assert.Less(t, xc[0]*xc[0]+xc[1]*xc[1], fp)
}

func TestSearchRejectsAscentDirection(t *testing.T) {
	s, err := New(DefaultOptions[float64]())
	require.NoError(t, err)

	c := quadraticCost()
	xp := []float64{1, 1}
	gp := []float64{2, 2}
	d := []float64{2, 2} // same sign as gradient: ascent direction
	xc, gc := make([]float64, 2), make([]float64, 2)

	res := s.Search(c, xp, gp, d, 2.0, 1.0, xc, gc)
	assert.False(t, res.Success)
}

func TestSearchStrongWolfeSatisfiesBothConditions(t *testing.T) {
	opts := DefaultOptions[float64]()
	opts.Mode = StrongWolfe
	opts.MaxIterations = 30
	s, err := New(opts)
	require.NoError(t, err)

	c := quadraticCost()
	xp := []float64{3, 3}
	gp := []float64{6, 6}
	d := []float64{-6, -6}
	fp := 18.0
	xc, gc := make([]float64, 2), make([]float64, 2)

	res := s.Search(c, xp, gp, d, fp, 1.0, xc, gc)
	require.True(t, res.Success)

	g0 := -6.0*6.0 + -6.0*6.0
	gd := gc[0]*d[0] + gc[1]*d[1]
	assert.LessOrEqual(t, res.Cost, fp+opts.C1*res.StepSize*g0)
	assert.LessOrEqual(t, abs(gd), opts.C2*abs(g0))
}

func TestOptionsValidation(t *testing.T) {
	bad := DefaultOptions[float64]()
	bad.MaxIterations = 0
	_, err := New(bad)
	assert.Error(t, err)

	bad = DefaultOptions[float64]()
	bad.Mode = StrongWolfe
	bad.C2 = bad.C1
	_, err = New(bad)
	assert.Error(t, err)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
