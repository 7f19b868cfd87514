package cost

import "github.com/lempiji/numeric/dual"

// AutoDiffCost wraps a dual.Value[T]-polymorphic function body and
// exposes it as a Cost[T] by seeding a fresh dual.Var[T] for every
// coordinate and reading the value and gradient back off the single
// dual.Var[T] the function body returns. F must be expressible purely
// in terms of the dual.Value[T] operators and the elementary
// functions in package dual — anything else (a type switch on the
// concrete operand, a call into math directly) breaks the gradient
// silently or panics on the type assertion in Evaluate.
type AutoDiffCost[T dual.Number] struct {
	n int
	f dual.Func[T]
	x []dual.Value[T]
}

// NewAutoDiffCost builds an AutoDiffCost over an n-dimensional input
// for the given function body.
func NewAutoDiffCost[T dual.Number](n int, f dual.Func[T]) *AutoDiffCost[T] {
	if n <= 0 {
		panic("cost: AutoDiffCost dimension must be positive")
	}
	if f == nil {
		panic("cost: AutoDiffCost function is required")
	}
	return &AutoDiffCost[T]{n: n, f: f, x: make([]dual.Value[T], n)}
}

// Evaluate seeds x[i] as the i-th independent variable, calls F, and
// copies the resulting value and gradient into g.
func (c *AutoDiffCost[T]) Evaluate(x, g []T) T {
	if len(x) != c.n || len(g) != c.n {
		panic("cost: AutoDiffCost dimension mismatch")
	}
	for i, xi := range x {
		c.x[i] = dual.Seed(xi, i, c.n)
	}
	result, ok := c.f(c.x).(dual.Var[T])
	if !ok {
		panic("cost: AutoDiffCost function did not return a dual.Var[T] — did it branch on the concrete operand type?")
	}
	copy(g, result.Grad())
	return result.Value()
}
