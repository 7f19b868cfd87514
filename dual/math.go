package dual

import "math"

func chain[T Number](v Var[T], fa, dfa T) Var[T] {
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = dfa * di
	}
	return Var[T]{a: fa, d: d}
}

// Square returns v^2. d(x^2) = 2x.
func Square[T Number](v Var[T]) Var[T] {
	return chain(v, v.a*v.a, 2*v.a)
}

// Sqrt returns sqrt(v). d(sqrt(x)) = 1/(2*sqrt(x)).
func Sqrt[T Number](v Var[T]) Var[T] {
	fa := T(math.Sqrt(float64(v.a)))
	return chain(v, fa, 1/(2*fa))
}

// Exp returns e^v. d(e^x) = e^x.
func Exp[T Number](v Var[T]) Var[T] {
	fa := T(math.Exp(float64(v.a)))
	return chain(v, fa, fa)
}

// Log returns ln(v). d(ln(x)) = 1/x.
func Log[T Number](v Var[T]) Var[T] {
	return chain(v, T(math.Log(float64(v.a))), 1/v.a)
}

// Sin returns sin(v). d(sin(x)) = cos(x).
func Sin[T Number](v Var[T]) Var[T] {
	return chain(v, T(math.Sin(float64(v.a))), T(math.Cos(float64(v.a))))
}

// Cos returns cos(v). d(cos(x)) = -sin(x).
func Cos[T Number](v Var[T]) Var[T] {
	return chain(v, T(math.Cos(float64(v.a))), -T(math.Sin(float64(v.a))))
}

// Tan returns tan(v). d(tan(x)) = 1 + tan(x)^2.
func Tan[T Number](v Var[T]) Var[T] {
	fa := T(math.Tan(float64(v.a)))
	return chain(v, fa, 1+fa*fa)
}

// Sinh returns sinh(v). d(sinh(x)) = cosh(x).
func Sinh[T Number](v Var[T]) Var[T] {
	return chain(v, T(math.Sinh(float64(v.a))), T(math.Cosh(float64(v.a))))
}

// Cosh returns cosh(v). d(cosh(x)) = sinh(x).
func Cosh[T Number](v Var[T]) Var[T] {
	return chain(v, T(math.Cosh(float64(v.a))), T(math.Sinh(float64(v.a))))
}

// Tanh returns tanh(v). d(tanh(x)) = 1 - tanh(x)^2.
func Tanh[T Number](v Var[T]) Var[T] {
	fa := T(math.Tanh(float64(v.a)))
	return chain(v, fa, 1-fa*fa)
}

// Asinh returns asinh(v). d(asinh(x)) = 1/sqrt(x^2+1).
func Asinh[T Number](v Var[T]) Var[T] {
	fa := T(math.Asinh(float64(v.a)))
	return chain(v, fa, 1/T(math.Sqrt(float64(v.a*v.a+1))))
}

// Acosh returns acosh(v). d(acosh(x)) = 1/sqrt(x^2-1), defined for x>1.
func Acosh[T Number](v Var[T]) Var[T] {
	fa := T(math.Acosh(float64(v.a)))
	return chain(v, fa, 1/T(math.Sqrt(float64(v.a*v.a-1))))
}

// Atanh returns atanh(v). d(atanh(x)) = 1/(1-x^2), defined for |x|<1.
func Atanh[T Number](v Var[T]) Var[T] {
	fa := T(math.Atanh(float64(v.a)))
	return chain(v, fa, 1/(1-v.a*v.a))
}
