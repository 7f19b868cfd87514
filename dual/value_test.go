package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sumOfSquares is written once against Value[T] and run under both
// the AD-backed and the plain-scalar-backed carrier.
func sumOfSquares[T Number](x []Value[T]) Value[T] {
	acc := x[0].Square()
	for _, xi := range x[1:] {
		acc = acc.Add(xi.Square())
	}
	return acc
}

func TestValueTraitRunsUnderVarAndRaw(t *testing.T) {
	vars := []Value[float64]{Seed(2.0, 0, 2), Seed(3.0, 1, 2)}
	vy := sumOfSquares(vars).(Var[float64])
	assert.InDelta(t, 13.0, vy.Value(), 1e-12)
	assert.InDelta(t, 4.0, vy.Grad()[0], 1e-12)
	assert.InDelta(t, 6.0, vy.Grad()[1], 1e-12)

	raws := []Value[float64]{NewRaw(2.0), NewRaw(3.0)}
	ry := sumOfSquares(raws).(Raw[float64])
	assert.InDelta(t, 13.0, ry.Float(), 1e-12)
}
