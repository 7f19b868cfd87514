package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// elementary pairs each chain-rule implementation with a
// reference math.* function and its closed-form derivative, so the
// same table drives the check for every elementary function.
type elementary struct {
	name string
	f    func(Var[float64]) Var[float64]
	fa   func(float64) float64
	dfa  func(float64) float64
	at   float64
}

func TestElementaryFunctionsChainRule(t *testing.T) {
	cases := []elementary{
		{"Square", Square[float64], func(a float64) float64 { return a * a }, func(a float64) float64 { return 2 * a }, 1.7},
		{"Sqrt", Sqrt[float64], math.Sqrt, func(a float64) float64 { return 1 / (2 * math.Sqrt(a)) }, 2.3},
		{"Exp", Exp[float64], math.Exp, math.Exp, 0.5},
		{"Log", Log[float64], math.Log, func(a float64) float64 { return 1 / a }, 2.1},
		{"Sin", Sin[float64], math.Sin, math.Cos, 0.8},
		{"Cos", Cos[float64], math.Cos, func(a float64) float64 { return -math.Sin(a) }, 0.8},
		{"Tan", Tan[float64], math.Tan, func(a float64) float64 { return 1 / (math.Cos(a) * math.Cos(a)) }, 0.4},
		{"Sinh", Sinh[float64], math.Sinh, math.Cosh, 0.6},
		{"Cosh", Cosh[float64], math.Cosh, math.Sinh, 0.6},
		{"Tanh", Tanh[float64], math.Tanh, func(a float64) float64 { t := math.Tanh(a); return 1 - t*t }, 0.6},
		{"Asinh", Asinh[float64], math.Asinh, func(a float64) float64 { return 1 / math.Sqrt(a*a+1) }, 1.2},
		{"Acosh", Acosh[float64], math.Acosh, func(a float64) float64 { return 1 / math.Sqrt(a*a-1) }, 1.5},
		{"Atanh", Atanh[float64], math.Atanh, func(a float64) float64 { return 1 / (1 - a*a) }, 0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := Seed(c.at, 0, 1)
			y := c.f(x)
			assert.InDelta(t, c.fa(c.at), y.Value(), 1e-9)
			assert.InDelta(t, c.dfa(c.at), y.Grad()[0], 1e-9)
		})
	}
}

func TestSinDerivativeOnlyTouchesSeededDim(t *testing.T) {
	x := Seed(2.0, 0, 2)
	y := Sin(x)
	assert.InDelta(t, 0.909297427, y.Value(), 1e-9)
	assert.InDelta(t, math.Cos(2.0), y.Grad()[0], 1e-9)
	assert.Equal(t, 0.0, y.Grad()[1])
}

func TestCompositeChainRule(t *testing.T) {
	// f(x) = sin(x^2); f'(x) = cos(x^2) * 2x
	x := Seed(1.3, 0, 1)
	y := Sin(Square(x))
	want := math.Cos(1.3*1.3) * 2 * 1.3
	assert.InDelta(t, want, y.Grad()[0], 1e-9)
}
