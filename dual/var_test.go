package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	v := Seed(3.0, 1, 3)
	assert.Equal(t, 3.0, v.Value())
	assert.Equal(t, []float64{0, 1, 0}, v.Grad())
}

func TestSeedOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Seed(1.0, 3, 3) })
	assert.Panics(t, func() { Seed(1.0, -1, 3) })
}

func TestNewVarZeroGradient(t *testing.T) {
	v := NewVar(5.0, 4)
	assert.Equal(t, 5.0, v.Value())
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Grad())
}

func TestAddSubMulDiv(t *testing.T) {
	x := Seed(2.0, 0, 2)
	y := Seed(3.0, 1, 2)

	sum := Add(x, y)
	assert.Equal(t, 5.0, sum.Value())
	assert.Equal(t, []float64{1, 1}, sum.Grad())

	diff := Sub(x, y)
	assert.Equal(t, -1.0, diff.Value())
	assert.Equal(t, []float64{1, -1}, diff.Grad())

	prod := Mul(x, y)
	assert.Equal(t, 6.0, prod.Value())
	assert.Equal(t, []float64{3, 2}, prod.Grad())

	quot := Div(x, y)
	require.InDelta(t, 2.0/3.0, quot.Value(), 1e-12)
	assert.InDelta(t, 1.0/3.0, quot.Grad()[0], 1e-12)
	assert.InDelta(t, -2.0/9.0, quot.Grad()[1], 1e-12)
}

func TestScalarOps(t *testing.T) {
	x := Seed(4.0, 0, 1)

	assert.Equal(t, 7.0, AddScalar(x, 3).Value())
	assert.Equal(t, 1.0, SubScalar(x, 3).Value())
	assert.Equal(t, []float64{-1}, ScalarSub(3, x).Grad())
	assert.Equal(t, 12.0, MulScalar(x, 3).Value())
	assert.InDelta(t, 4.0/3.0, DivScalar(x, 3).Value(), 1e-12)

	sd := ScalarDiv(8.0, x)
	assert.InDelta(t, 2.0, sd.Value(), 1e-12)
	assert.InDelta(t, -0.5, sd.Grad()[0], 1e-12)
}

func TestScalarDivIsNotMirrorOfDivScalar(t *testing.T) {
	x := Seed(2.0, 0, 1)
	ds := DivScalar(x, 4)
	sd := ScalarDiv(4, x)
	assert.NotEqual(t, ds.Grad()[0], sd.Grad()[0])
}

func TestCompoundAssign(t *testing.T) {
	x := Seed(2.0, 0, 2)
	y := Seed(3.0, 1, 2)

	z := x
	z.AddAssign(y)
	assert.Equal(t, 5.0, z.Value())
	assert.Equal(t, []float64{1, 1}, z.Grad())

	w := x
	w.MulScalarAssign(10)
	assert.Equal(t, 20.0, w.Value())
	assert.Equal(t, []float64{10, 0}, w.Grad())
}

func TestSetScalarResetsGradient(t *testing.T) {
	x := Seed(2.0, 0, 3)
	x.SetScalar(9)
	assert.Equal(t, 9.0, x.Value())
	assert.Equal(t, []float64{0, 0, 0}, x.Grad())
}

func TestDimensionMismatchPanics(t *testing.T) {
	x := Seed(1.0, 0, 2)
	y := Seed(1.0, 0, 3)
	assert.Panics(t, func() { Add(x, y) })
}
