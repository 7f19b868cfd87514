package lbfgs

import "github.com/lempiji/numeric/internal/blas"

// HistorySlot holds one (s, y) correction pair of the L-BFGS circular
// buffer, plus the scratch Alpha the two-loop recursion fills in on
// its first pass and reads back on its second — storing it here
// instead of a separate slice keeps twoLoopRecursion allocation-free.
type HistorySlot[T blas.Number] struct {
	S, Y  []T
	Alpha T
	Rho   T
}

// SolverIteration records the outcome of one outer iteration,
// including the terminal failed one if the solver did not converge.
type SolverIteration[T blas.Number] struct {
	Success              bool
	LineSearchIterations int
	StepSize             T
	Cost                 T
	ParamNorm            T
	GradientNorm         T
}

// SolverResult is what Solve returns: whether the run converged, the
// cost before and after, and the full per-iteration trace in
// execution order.
type SolverResult[T blas.Number] struct {
	Success    bool
	FirstCost  T
	FinalCost  T
	Iterations []SolverIteration[T]
}
