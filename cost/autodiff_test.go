package cost

import (
	"testing"

	"github.com/lempiji/numeric/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadratic(x []dual.Value[float64]) dual.Value[float64] {
	t1 := x[0].Add(x[1]).AddScalar(-1).Square()
	t2 := x[1].Add(x[2]).AddScalar(5).Square()
	t3 := x[2].Add(x[0]).AddScalar(3).Square()
	return t1.Add(t2).Add(t3)
}

func TestAutoDiffCostMatchesClosedFormGradient(t *testing.T) {
	c := NewAutoDiffCost(3, dual.Func[float64](quadratic))
	x := []float64{0.5, 0.5, 0.5}
	g := make([]float64, 3)
	f := c.Evaluate(x, g)

	a, b, d := x[0]+x[1]-1, x[1]+x[2]+5, x[2]+x[0]+3
	require.InDelta(t, a*a+b*b+d*d, f, 1e-12)
	// d/dx0 = 2a + 2d, d/dx1 = 2a + 2b, d/dx2 = 2b + 2d
	assert.InDelta(t, 2*a+2*d, g[0], 1e-9)
	assert.InDelta(t, 2*a+2*b, g[1], 1e-9)
	assert.InDelta(t, 2*b+2*d, g[2], 1e-9)
}

func TestAutoDiffCostReusableAcrossCalls(t *testing.T) {
	c := NewAutoDiffCost(2, dual.Func[float64](func(x []dual.Value[float64]) dual.Value[float64] {
		return x[0].Mul(x[1])
	}))
	g := make([]float64, 2)

	f1 := c.Evaluate([]float64{2, 3}, g)
	assert.InDelta(t, 6.0, f1, 1e-12)
	assert.InDelta(t, 3.0, g[0], 1e-12)
	assert.InDelta(t, 2.0, g[1], 1e-12)

	f2 := c.Evaluate([]float64{5, 7}, g)
	assert.InDelta(t, 35.0, f2, 1e-12)
	assert.InDelta(t, 7.0, g[0], 1e-12)
	assert.InDelta(t, 5.0, g[1], 1e-12)
}

func TestAutoDiffCostDimensionMismatchPanics(t *testing.T) {
	c := NewAutoDiffCost(3, dual.Func[float64](quadratic))
	assert.Panics(t, func() { c.Evaluate([]float64{1, 2}, make([]float64, 3)) })
}
