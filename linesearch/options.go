package linesearch

import (
	"errors"

	"github.com/lempiji/numeric/internal/blas"
)

// Mode selects which pair of conditions a step must satisfy before
// the search accepts it.
type Mode int

const (
	// Armijo accepts the first backtracked step satisfying the
	// sufficient-decrease condition alone.
	Armijo Mode = iota
	// StrongWolfe additionally requires the strong curvature
	// condition, using a MINPACK-style bracketing/zoom search rather
	// than plain backtracking.
	StrongWolfe
)

// Options configures a Searcher. Zero-valued fields are invalid;
// start from DefaultOptions[T]() and override what you need.
type Options[T blas.Number] struct {
	Mode Mode
	// MaxIterations bounds the number of cost evaluations a single
	// Search call may perform.
	MaxIterations int
	// C1 is the Armijo sufficient-decrease parameter.
	C1 T
	// C2 is the strong-curvature parameter; only consulted in
	// StrongWolfe mode.
	C2 T
	// Rho is the backtracking contraction factor; only consulted in
	// Armijo mode.
	Rho T
	// StepMin and StepMax bound the trial steps. In Armijo mode a step
	// below StepMin ends the search in failure and StepMax is not
	// consulted. In StrongWolfe mode every trial step is clamped into
	// [StepMin, StepMax], and the search fails if a step at either end
	// cannot meet the conditions.
	StepMin, StepMax T
}

// DefaultOptions returns the reference defaults: Armijo mode, 20
// iterations, c1=1e-4, c2=0.9, rho=0.5, step bounds [1e-20, 1e20].
func DefaultOptions[T blas.Number]() Options[T] {
	return Options[T]{
		Mode:          Armijo,
		MaxIterations: 20,
		C1:            1e-4,
		C2:            0.9,
		Rho:           0.5,
		StepMin:       1e-20,
		StepMax:       1e20,
	}
}

func (o Options[T]) validate() error {
	switch {
	case o.MaxIterations <= 0:
		return errors.New("linesearch: MaxIterations must be positive")
	case o.C1 <= 0:
		return errors.New("linesearch: C1 must be positive")
	case o.Mode == StrongWolfe && o.C2 <= o.C1:
		return errors.New("linesearch: C2 must exceed C1 in StrongWolfe mode")
	case o.Mode == Armijo && (o.Rho <= 0 || o.Rho >= 1):
		return errors.New("linesearch: Rho must lie in (0,1) in Armijo mode")
	case o.StepMin <= 0:
		return errors.New("linesearch: StepMin must be positive")
	case o.StepMax <= o.StepMin:
		return errors.New("linesearch: StepMax must exceed StepMin")
	}
	return nil
}

// Result reports the outcome of a Search call.
type Result[T blas.Number] struct {
	Success    bool
	Iterations int
	Cost       T
	StepSize   T
}
