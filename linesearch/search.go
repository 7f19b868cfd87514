// Package linesearch implements the one-dimensional step search
// Driver C5 calls at the end of every outer iteration: given a base
// point, a descent direction and an initial step, find a step length
// that makes sufficient progress along that direction. Two modes are
// supported — plain Armijo backtracking, and a Strong-Wolfe search
// ported from the MINPACK dcsrch/dcstep bracketing-and-zoom routine
// used by the reference L-BFGS-B line search, stripped of its bound
// handling since this module's driver is unconstrained.
package linesearch

import (
	"math"

	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/internal/blas"
)

// Searcher runs one line-search mode with a fixed set of tolerances.
// A Searcher holds no per-call state and is safe to reuse across
// calls and across goroutines provided the wrapped Cost is.
type Searcher[T blas.Number] struct {
	opts Options[T]
}

// New validates opts and returns a ready Searcher.
func New[T blas.Number](opts Options[T]) (*Searcher[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Searcher[T]{opts: opts}, nil
}

func absT[T blas.Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrtT[T blas.Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

func minT[T blas.Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T blas.Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Search looks for a step along d from xp that satisfies the
// configured conditions, writing the accepted point and its gradient
// into xc and gc. g0 = gp·d must be negative — d must be a descent
// direction — or Search fails immediately without evaluating c.
func (s *Searcher[T]) Search(c cost.Cost[T], xp, gp, d []T, fp, alpha0 T, xc, gc []T) Result[T] {
	g0 := blas.Dot(gp, d)
	if g0 >= 0 {
		return Result[T]{Success: false}
	}
	if s.opts.Mode == StrongWolfe {
		return s.searchStrongWolfe(c, xp, d, fp, g0, alpha0, xc, gc)
	}
	return s.searchArmijo(c, xp, d, fp, g0, alpha0, xc, gc)
}

// searchArmijo shrinks alpha by Rho until the sufficient-decrease
// condition holds, failing if it underflows StepMin or the iteration
// budget runs out first.
func (s *Searcher[T]) searchArmijo(c cost.Cost[T], xp, d []T, fp, g0, alpha T, xc, gc []T) Result[T] {
	opts := s.opts
	gTest := opts.C1 * g0
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		if alpha < opts.StepMin {
			return Result[T]{Success: false, Iterations: iter}
		}
		for i := range xc {
			xc[i] = xp[i] + alpha*d[i]
		}
		f := c.Evaluate(xc, gc)
		if f <= fp+alpha*gTest {
			return Result[T]{Success: true, Iterations: iter, Cost: f, StepSize: alpha}
		}
		alpha *= opts.Rho
	}
	return Result[T]{Success: false, Iterations: opts.MaxIterations}
}
