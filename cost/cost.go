// Package cost gives the optimizer a single uniform view of an
// objective function: evaluate it at a point and get back both the
// value and the gradient in one call. The two concrete
// implementations get there by different means — AutoDiffCost drives
// the dual-number forward-mode differentiation in package dual,
// NumericDiffCost drives the finite-difference engine in package
// numdiff — but a caller holding a Cost[T] never needs to know which.
package cost

import "github.com/lempiji/numeric/internal/blas"

// Cost is the evaluate(x, out g) -> value contract every optimizer in
// this module is written against. len(x) == len(g) == the problem
// dimension; implementations overwrite g in place and must not retain
// x or g between calls.
type Cost[T blas.Number] interface {
	// Evaluate writes the gradient of the objective at x into g and
	// returns the objective value. Calling Evaluate repeatedly from
	// the same goroutine at different x must not carry state forward
	// from one call to the next.
	Evaluate(x, g []T) T
}
