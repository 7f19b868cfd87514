// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lbfgs implements the outer optimization loop (component
// C5): it evaluates a cost.Cost, maintains the L-BFGS circular
// history buffer, computes the search direction via the classic
// two-loop recursion, calls a linesearch.Searcher, and decides
// convergence, degeneracy and line-search failure. Everything here
// is single-threaded and synchronous, in the style of the reference
// driver it is modeled on: a *Solver[T] owns a fixed set of
// preallocated buffers and is meant for one logical caller at a time.
package lbfgs

import (
	"math"

	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/internal/blas"
	"github.com/lempiji/numeric/linesearch"
)

func sqrtT[T blas.Number](x T) T { return T(math.Sqrt(float64(x))) }

func maxT[T blas.Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Solver drives an unconstrained minimization of a cost.Cost[T] with
// limited-memory BFGS. Construct one with NewSolver and call Solve
// for each starting point; a single Solver is not safe for concurrent
// use, though distinct Solvers over independently-instantiated costs
// may run on different goroutines.
type Solver[T blas.Number] struct {
	cost   cost.Cost[T]
	opts   SolverOptions[T]
	search *linesearch.Searcher[T]

	n int

	xc, gc []T // current point and gradient
	xp, gp []T // point and gradient at the start of the iteration
	sv     []T // search direction
	q, r   []T // two-loop recursion scratch

	hist  []HistorySlot[T]
	head  int // index the next correction pair will be written to
	count int // number of valid slots, 0 <= count <= len(hist)
}

// NewSolver builds a Solver for an n-dimensional cost, allocating
// every hot-path buffer once so Solve itself never allocates except
// to grow SolverResult.Iterations.
func NewSolver[T blas.Number](c cost.Cost[T], n int, opts SolverOptions[T]) (*Solver[T], error) {
	if n <= 0 {
		return nil, errDim()
	}
	if c == nil {
		return nil, errCost()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	search, err := linesearch.New(opts.LineSearch)
	if err != nil {
		return nil, err
	}

	hist := make([]HistorySlot[T], opts.History)
	for i := range hist {
		hist[i].S = make([]T, n)
		hist[i].Y = make([]T, n)
	}

	return &Solver[T]{
		cost:   c,
		opts:   opts,
		search: search,
		n:      n,
		xc:     make([]T, n),
		gc:     make([]T, n),
		xp:     make([]T, n),
		gp:     make([]T, n),
		sv:     make([]T, n),
		q:      make([]T, n),
		r:      make([]T, n),
		hist:   hist,
	}, nil
}

// Solve runs the optimizer in place: on return x holds the best point
// reached, whether or not the run converged.
func (s *Solver[T]) Solve(x []T) SolverResult[T] {
	if len(x) != s.n {
		panic("lbfgs: Solve dimension mismatch")
	}

	opts := s.opts
	tol := opts.GradientTolerance
	log := opts.Logger

	copy(s.xc, x)
	f := s.cost.Evaluate(s.xc, s.gc)

	result := SolverResult[T]{FirstCost: f, FinalCost: f}

	xNorm2 := blas.SumSq(s.xc)
	gNorm2 := blas.SumSq(s.gc)
	if gNorm2 < maxT(xNorm2, 1)*tol {
		result.Success = true
		if log.enabled(LogSummary) {
			log.logf("lbfgs: converged immediately, cost=%v\n", f)
		}
		return result
	}

	for i := range s.sv {
		s.sv[i] = -s.gc[i]
	}
	alpha := s.initialStep(gNorm2)

	s.head, s.count = 0, 0

	for k := 0; ; {
		copy(s.xp, s.xc)
		copy(s.gp, s.gc)

		ls := s.search.Search(s.cost, s.xp, s.gp, s.sv, f, alpha, s.xc, s.gc)
		if !ls.Success {
			copy(s.xc, s.xp)
			copy(s.gc, s.gp)
			result.Iterations = append(result.Iterations, SolverIteration[T]{
				Success:              false,
				LineSearchIterations: ls.Iterations,
				StepSize:             ls.StepSize,
				Cost:                 f,
				ParamNorm:            sqrtT(blas.SumSq(s.xp)),
				GradientNorm:         sqrtT(blas.SumSq(s.gp)),
			})
			result.Success, result.FinalCost = false, f
			copy(x, s.xc)
			s.report(log, k, &result)
			return result
		}
		f = ls.Cost

		xNorm2 = blas.SumSq(s.xc)
		gNorm2 = blas.SumSq(s.gc)
		converged := gNorm2 < maxT(xNorm2, 1)*tol

		result.Iterations = append(result.Iterations, SolverIteration[T]{
			Success:              true,
			LineSearchIterations: ls.Iterations,
			StepSize:             ls.StepSize,
			Cost:                 f,
			ParamNorm:            sqrtT(xNorm2),
			GradientNorm:         sqrtT(gNorm2),
		})
		if log.enabled(LogIteration) {
			log.logf("lbfgs: iter=%d cost=%v |g|=%v step=%v\n", k, f, sqrtT(gNorm2), ls.StepSize)
		}

		if converged {
			result.Success, result.FinalCost = true, f
			copy(x, s.xc)
			s.report(log, k, &result)
			return result
		}

		k++
		if k >= opts.MaxIterations {
			result.Success, result.FinalCost = false, f
			copy(x, s.xc)
			s.report(log, k, &result)
			return result
		}

		if len(s.hist) > 0 {
			if !s.updateHistory() {
				result.Success, result.FinalCost = false, f
				copy(x, s.xc)
				s.report(log, k, &result)
				return result
			}
			s.twoLoopRecursion()
		} else {
			for i := range s.sv {
				s.sv[i] = -s.gc[i]
			}
		}

		alpha = s.initialStep(blas.SumSq(s.sv))
	}
}

func (s *Solver[T]) initialStep(dirNormSq T) T {
	if s.opts.EstimateStepSize {
		return 1 / sqrtT(dirNormSq)
	}
	return s.opts.InitialStepSize
}

func (s *Solver[T]) report(log *Logger, k int, result *SolverResult[T]) {
	if log.enabled(LogSummary) {
		log.logf("lbfgs: done success=%v iterations=%d first=%v final=%v\n",
			result.Success, k, result.FirstCost, result.FinalCost)
	}
}

// updateHistory stores the current (s, y) = (xc-xp, gc-gp) pair into
// the circular buffer, using the conventional L-BFGS assignment (not
// the swapped one some reference sources use — see the module's
// design notes). It reports false if the curvature pair is degenerate
// (s·y == 0), which the driver treats as a fatal abort.
func (s *Solver[T]) updateHistory() bool {
	m := len(s.hist)
	slot := &s.hist[s.head]
	for i := range slot.S {
		slot.S[i] = s.xc[i] - s.xp[i]
		slot.Y[i] = s.gc[i] - s.gp[i]
	}
	ys := blas.Dot(slot.Y, slot.S)
	if ys == 0 {
		return false
	}
	slot.Rho = 1 / ys
	s.head = (s.head + 1) % m
	if s.count < m {
		s.count++
	}
	return true
}

// twoLoopRecursion computes the new search direction sv = -H·gc from
// the stored correction pairs, walking most-recent-first then
// oldest-first as described in the module's design notes.
func (s *Solver[T]) twoLoopRecursion() {
	m := len(s.hist)
	newest := (s.head - 1 + m) % m
	oldest := (s.head - s.count + m) % m

	gamma := s.hessianScale(newest)

	copy(s.q, s.gc)
	blas.Scal(T(-1), s.q)

	idx := newest
	for i := 0; i < s.count; i++ {
		slot := &s.hist[idx]
		a := slot.Rho * blas.Dot(slot.S, s.q)
		slot.Alpha = a
		blas.Axpy(-a, slot.Y, s.q)
		idx = (idx - 1 + m) % m
	}

	copy(s.r, s.q)
	blas.Scal(gamma, s.r)

	idx = oldest
	for i := 0; i < s.count; i++ {
		slot := &s.hist[idx]
		b := slot.Rho * blas.Dot(slot.Y, s.r)
		blas.Axpy(slot.Alpha-b, slot.S, s.r)
		idx = (idx + 1) % m
	}

	copy(s.sv, s.r)
}

// hessianScale computes gamma = s·y / y·y from the most recently
// stored pair, the initial scaling for the implicit inverse Hessian.
func (s *Solver[T]) hessianScale(newest int) T {
	slot := &s.hist[newest]
	yy := blas.Dot(slot.Y, slot.Y)
	return (1 / slot.Rho) / yy
}
