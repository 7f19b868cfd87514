// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linesearch

import "github.com/lempiji/numeric/internal/blas"

// dcstep computes a safeguarded interpolation step for
// searchStrongWolfe and updates the bracket [stx, sty] known to
// contain a step satisfying the Wolfe conditions. Ported from the
// reference L-BFGS-B line search's scalarStep (MINPACK dcstep),
// generalized over T; the interpolation cases are unchanged.
//
// stx is the best step found so far; if bracket is true, a minimizer
// is known to lie between stx and sty. stp is the step just
// evaluated, with function value fp and derivative dp. The derivative
// at stx must be negative in the direction of stp - stx.
func dcstep[T blas.Number](
	stx, fx, dx *T,
	sty, fy, dy *T,
	stp *T, fp, dp T,
	bracket *bool, stpMin, stpMax T,
) {
	var gamma, p, q, r, s, sgnd, stpc, stpf, stpq, theta T

	sgnd = dp * (*dx / absT(*dx))

	switch {
	case fp > *fx:
		// A higher function value: the minimum is bracketed. Take the
		// cubic step if it is closer to stx than the quadratic step,
		// otherwise their average.
		theta = 3*(*fx-fp)/(*stp-*stx) + *dx + dp
		s = maxT(maxT(absT(theta), absT(*dx)), absT(dp))
		gamma = s * sqrtT((theta/s)*(theta/s)-(*dx/s)*(dp/s))
		if *stp < *stx {
			gamma = -gamma
		}
		p = (gamma - *dx) + theta
		q = ((gamma - *dx) + gamma) + dp
		r = p / q
		stpc = *stx + r*(*stp-*stx)
		stpq = *stx + ((*dx/((*fx-fp)/(*stp-*stx)+*dx))/2)*(*stp-*stx)
		if absT(stpc-*stx) < absT(stpq-*stx) {
			stpf = stpc
		} else {
			stpf = stpc + (stpq-stpc)/2
		}
		*bracket = true

	case sgnd < 0:
		// A lower function value and derivatives of opposite sign: the
		// minimum is bracketed. Take the cubic step if it is farther
		// from stp than the secant step, otherwise the secant step.
		theta = 3*(*fx-fp)/(*stp-*stx) + *dx + dp
		s = maxT(maxT(absT(theta), absT(*dx)), absT(dp))
		gamma = s * sqrtT((theta/s)*(theta/s)-(*dx/s)*(dp/s))
		if *stp > *stx {
			gamma = -gamma
		}
		p = (gamma - dp) + theta
		q = ((gamma - dp) + gamma) + *dx
		r = p / q
		stpc = *stp + r*(*stx-*stp)
		stpq = *stp + (dp/(dp-*dx))*(*stx-*stp)
		if absT(stpc-*stp) > absT(stpq-*stp) {
			stpf = stpc
		} else {
			stpf = stpq
		}
		*bracket = true

	case absT(dp) < absT(*dx):
		// A lower function value, derivatives of the same sign, and
		// the derivative's magnitude decreases. The cubic step is used
		// unless it heads away from the bracket or off to infinity, in
		// which case the secant step is used instead.
		theta = 3*(*fx-fp)/(*stp-*stx) + *dx + dp
		s = maxT(maxT(absT(theta), absT(*dx)), absT(dp))
		gamma = s * sqrtT(maxT(0, (theta/s)*(theta/s)-(*dx/s)*(dp/s)))
		if *stp > *stx {
			gamma = -gamma
		}
		p = (gamma - dp) + theta
		q = (gamma + (*dx - dp)) + gamma
		r = p / q
		if r < 0 && gamma != 0 {
			stpc = *stp + r*(*stx-*stp)
		} else if *stp > *stx {
			stpc = stpMax
		} else {
			stpc = stpMin
		}
		stpq = *stp + (dp/(dp-*dx))*(*stx-*stp)
		if *bracket {
			if absT(stpc-*stp) < absT(stpq-*stp) {
				stpf = stpc
			} else {
				stpf = stpq
			}
			if *stp > *stx {
				stpf = minT(*stp+0.66*(*sty-*stp), stpf)
			} else {
				stpf = maxT(*stp+0.66*(*sty-*stp), stpf)
			}
		} else {
			if absT(stpc-*stp) > absT(stpq-*stp) {
				stpf = stpc
			} else {
				stpf = stpq
			}
			stpf = minT(stpMax, stpf)
			stpf = maxT(stpMin, stpf)
		}

	default:
		// A lower function value, derivatives of the same sign, and
		// the derivative's magnitude does not decrease. If the minimum
		// is not yet bracketed, the step goes to whichever bound is in
		// the direction of travel; otherwise take the cubic step.
		if *bracket {
			theta = 3*(fp-*fy)/(*sty-*stp) + *dy + dp
			s = maxT(maxT(absT(theta), absT(*dy)), absT(dp))
			gamma = s * sqrtT((theta/s)*(theta/s)-(*dy/s)*(dp/s))
			if *stp > *sty {
				gamma = -gamma
			}
			p = (gamma - dp) + theta
			q = ((gamma - dp) + gamma) + *dy
			r = p / q
			stpf = *stp + r*(*sty-*stp)
		} else if *stp > *stx {
			stpf = stpMax
		} else {
			stpf = stpMin
		}
	}

	if fp > *fx {
		*sty, *fy, *dy = *stp, fp, dp
	} else {
		if sgnd < 0 {
			*sty, *fy, *dy = *stx, *fx, *dx
		}
		*stx, *fx, *dx = *stp, fp, dp
	}

	*stp = stpf
}
