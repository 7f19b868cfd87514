// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linesearch

import (
	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/internal/blas"
)

const (
	wolfeArmijoStage = 1
	wolfeCurveStage  = 2
	wolfeXtrapLo     = 1.1
	wolfeXtrapHi     = 4.0
)

// searchStrongWolfe is a MINPACK dcsrch/dcstep bracketing-and-zoom
// search (Nocedal & Wright §3.5; More-Thuente 1994), adapted from the
// reference L-BFGS-B line search with the bound-projection machinery
// removed — this driver has no feasible region to stay inside, only
// [StepMin, StepMax] on the step itself.
//
// The search tracks an interval [stx, sty] known to bracket a point
// satisfying both Wolfe conditions once some evaluated step makes the
// modified function psi(alpha) = phi(alpha) - phi(0) - c1*alpha*phi'(0)
// nonpositive with phi'(alpha) >= 0, and narrows that interval by
// safeguarded cubic/quadratic interpolation (dcstep) each iteration.
func (s *Searcher[T]) searchStrongWolfe(c cost.Cost[T], xp, d []T, fp, g0, alpha T, xc, gc []T) Result[T] {
	opts := s.opts
	c1, c2 := opts.C1, opts.C2
	stepMin, stepMax := opts.StepMin, opts.StepMax

	alpha = minT(maxT(alpha, stepMin), stepMax)

	stx, fx, gx := T(0), fp, g0
	sty, fy, gy := T(0), fp, g0
	bracket := false
	stage := wolfeArmijoStage

	width := stepMax - stepMin
	width1 := width / 0.5
	boundLo, boundHi := T(0), alpha+wolfeXtrapHi*alpha

	gTest := c1 * g0

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		for i := range xc {
			xc[i] = xp[i] + alpha*d[i]
		}
		f := c.Evaluate(xc, gc)
		gd := blas.Dot(gc, d)

		fTest := fp + alpha*gTest

		switch {
		case bracket && (alpha <= boundLo || alpha >= boundHi):
			return Result[T]{Success: false, Iterations: iter}
		case alpha == stepMax && f <= fTest && gd <= gTest:
			return Result[T]{Success: false, Iterations: iter}
		case alpha == stepMin && (f > fTest || gd >= gTest):
			return Result[T]{Success: false, Iterations: iter}
		case f <= fTest && absT(gd) <= c2*(-g0):
			return Result[T]{Success: true, Iterations: iter, Cost: f, StepSize: alpha}
		}

		if stage == wolfeArmijoStage && f <= fTest && gd >= 0 {
			stage = wolfeCurveStage
		}

		if stage == wolfeArmijoStage && f <= fx && f > fTest {
			// Work with the Armijo-shifted function psi so the
			// bracket captures a minimizer of psi, not of phi, while
			// still in the Armijo stage.
			fm, fxm, fym := f-alpha*gTest, fx-stx*gTest, fy-sty*gTest
			gm, gxm, gym := gd-gTest, gx-gTest, gy-gTest
			dcstep(&stx, &fxm, &gxm, &sty, &fym, &gym, &alpha, fm, gm, &bracket, boundLo, boundHi)
			fx, fy = fxm+stx*gTest, fym+sty*gTest
			gx, gy = gxm+gTest, gym+gTest
		} else {
			dcstep(&stx, &fx, &gx, &sty, &fy, &gy, &alpha, f, gd, &bracket, boundLo, boundHi)
		}

		if bracket {
			if absT(sty-stx) >= 0.66*width1 {
				alpha = stx + 0.5*(sty-stx)
			}
			width1 = width
			width = absT(sty - stx)
		}

		if bracket {
			boundLo, boundHi = minT(stx, sty), maxT(stx, sty)
		} else {
			boundLo = alpha + wolfeXtrapLo*(alpha-stx)
			boundHi = alpha + wolfeXtrapHi*(alpha-stx)
		}
		alpha = minT(maxT(alpha, stepMin), stepMax)

		if bracket && (alpha <= boundLo || alpha >= boundHi) {
			alpha = stx
		}
	}
	return Result[T]{Success: false, Iterations: opts.MaxIterations}
}

