package lbfgs

import "errors"

func errDim() error  { return errors.New("lbfgs: problem dimension must be positive") }
func errCost() error { return errors.New("lbfgs: cost is required") }
