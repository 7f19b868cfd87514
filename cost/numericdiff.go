package cost

import (
	"github.com/lempiji/numeric/internal/blas"
	"github.com/lempiji/numeric/numdiff"
)

// NumericDiffCost wraps a plain-scalar function and approximates its
// gradient by finite differences, using the bound-aware
// numdiff.GradientApprox engine. The engine works in float64
// internally regardless of T; the scratch buffers below absorb the
// conversion so Evaluate itself never allocates.
type NumericDiffCost[T blas.Number] struct {
	n    int
	f    func(x []T) T
	grad numdiff.GradientApprox

	xt     []T       // scratch: float64 trial point converted back to T for F
	xf, gf []float64 // scratch: x and gradient in the engine's float64 domain
}

// NumericDiffOption configures a NumericDiffCost at construction.
type NumericDiffOption func(*numdiff.GradientApprox)

// WithMethod selects forward or central differencing. The default is
// central, matching the reference numerical-differentiation behavior.
func WithMethod(m numdiff.Method) NumericDiffOption {
	return func(g *numdiff.GradientApprox) { g.Method = m }
}

// WithStep fixes an absolute step size h, overriding the engine's
// automatic machine-epsilon-derived default.
func WithStep(h float64) NumericDiffOption {
	return func(g *numdiff.GradientApprox) { g.AbsStep = h }
}

// WithBounds constrains x to lie within [lower[i], upper[i]] for each
// coordinate; the engine shrinks or one-sides the step near a bound
// instead of evaluating F outside it.
func WithBounds[T blas.Number](lower, upper []T) NumericDiffOption {
	return func(g *numdiff.GradientApprox) {
		b := make([]numdiff.Bound, len(lower))
		for i := range b {
			b[i] = numdiff.Bound{float64(lower[i]), float64(upper[i])}
		}
		g.Bounds = b
	}
}

// NewNumericDiffCost builds a NumericDiffCost over an n-dimensional
// input for the given scalar function.
func NewNumericDiffCost[T blas.Number](n int, f func(x []T) T, opts ...NumericDiffOption) *NumericDiffCost[T] {
	if n <= 0 {
		panic("cost: NumericDiffCost dimension must be positive")
	}
	if f == nil {
		panic("cost: NumericDiffCost function is required")
	}
	c := &NumericDiffCost[T]{
		n:  n,
		f:  f,
		xt: make([]T, n),
		xf: make([]float64, n),
		gf: make([]float64, n),
	}
	c.grad.N = n
	c.grad.Method = numdiff.Central
	c.grad.Object = func(x []float64) float64 {
		for i, xi := range x {
			c.xt[i] = T(xi)
		}
		return float64(f(c.xt))
	}
	for _, opt := range opts {
		opt(&c.grad)
	}
	return c
}

// Evaluate returns F(x) directly, then approximates the gradient by
// symmetric central difference (or one-sided forward difference, if
// configured) through the wrapped numdiff.GradientApprox.
func (c *NumericDiffCost[T]) Evaluate(x, g []T) T {
	if len(x) != c.n || len(g) != c.n {
		panic("cost: NumericDiffCost dimension mismatch")
	}
	value := c.f(x)
	for i, xi := range x {
		c.xf[i] = float64(xi)
	}
	if err := c.grad.Diff(c.xf, c.gf); err != nil {
		panic("cost: NumericDiffCost: " + err.Error())
	}
	for i, gi := range c.gf {
		g[i] = T(gi)
	}
	return value
}
