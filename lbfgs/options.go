package lbfgs

import (
	"errors"

	"github.com/lempiji/numeric/internal/blas"
	"github.com/lempiji/numeric/linesearch"
)

// SolverOptions configures a Solver. Start from DefaultOptions[T]()
// and override what you need; NewSolver validates the result and
// returns an error rather than panicking on a bad configuration,
// since these are caller mistakes discoverable before any hot-path
// code runs.
type SolverOptions[T blas.Number] struct {
	// MaxIterations bounds the number of outer iterations.
	MaxIterations int
	// GradientTolerance is the convergence threshold tol in
	// ‖gc‖² < tol·max(‖xc‖², 1).
	GradientTolerance T
	// EstimateStepSize, when true, initializes each line search's step
	// at 1/‖direction‖ instead of InitialStepSize.
	EstimateStepSize bool
	// InitialStepSize is the initial step of every line search when
	// EstimateStepSize is false; it is not used otherwise.
	InitialStepSize T
	// LineSearch configures the line search called at the end of
	// every outer iteration.
	LineSearch linesearch.Options[T]
	// History is the L-BFGS memory size M. History == 0 degrades the
	// driver to steepest descent.
	History int
	// Logger optionally reports solver progress. nil disables output.
	Logger *Logger
}

// DefaultOptions returns the reference defaults: 20 iterations,
// gradient tolerance 1e-10, a fixed initial step of 1, Armijo line
// search, and a history of 6 correction pairs.
func DefaultOptions[T blas.Number]() SolverOptions[T] {
	return SolverOptions[T]{
		MaxIterations:     20,
		GradientTolerance: 1e-10,
		EstimateStepSize:  false,
		InitialStepSize:   1,
		LineSearch:        linesearch.DefaultOptions[T](),
		History:           6,
	}
}

func (o SolverOptions[T]) validate() error {
	switch {
	case o.MaxIterations <= 0:
		return errors.New("lbfgs: MaxIterations must be positive")
	case o.GradientTolerance <= 0:
		return errors.New("lbfgs: GradientTolerance must be positive")
	case o.InitialStepSize <= 0:
		return errors.New("lbfgs: InitialStepSize must be positive")
	case o.History < 0:
		return errors.New("lbfgs: History must be non-negative")
	}
	return nil
}
