// Package dual implements forward-mode automatic differentiation over
// a dual-number carrier: a value paired with a gradient against a
// fixed set of independent variables. Every arithmetic operation and
// elementary function propagates the gradient alongside the value in
// the same pass, so a cost function written once against Value[T]
// yields both the objective and its gradient with no separate
// backward pass.
//
// Go has no const generics, so the gradient dimension N that the
// reference design fixes at compile time is instead carried at
// runtime as len(d). See the module's DESIGN.md for the tradeoff.
package dual

import "github.com/lempiji/numeric/internal/blas"

// Number is the scalar element type Var[T] and the rest of this
// module are generic over.
type Number = blas.Number

// Var is a dual number: a primal value a paired with its gradient d
// against N independent variables, N = len(d). Var is a value type;
// every producing operation returns a new Var with a freshly
// allocated gradient slice, and the in-place methods (the *Assign
// methods and SetScalar) give the receiver a fresh slice before
// writing it, so an update through one copy never shows in another.
type Var[T Number] struct {
	a T
	d []T
}

// NewVar constructs a dual number with value v and a zero gradient of
// dimension n. Use NewVar for a constant that does not depend on any
// of the independent variables.
func NewVar[T Number](v T, n int) Var[T] {
	return Var[T]{a: v, d: make([]T, n)}
}

// Seed constructs a dual number declaring v as the i-th of n
// independent variables: the gradient is the i-th standard basis
// vector. Seed panics if i is out of [0, n).
func Seed[T Number](v T, i, n int) Var[T] {
	if i < 0 || i >= n {
		panic("dual: seed index out of range")
	}
	d := make([]T, n)
	d[i] = 1
	return Var[T]{a: v, d: d}
}

// Value returns the primal component.
func (v Var[T]) Value() T { return v.a }

// Grad returns the gradient. The returned slice aliases v's internal
// storage; callers must not mutate it.
func (v Var[T]) Grad() []T { return v.d }

// Dim returns the gradient dimension N.
func (v Var[T]) Dim() int { return len(v.d) }

// SetScalar reassigns the value to c and gives v a fresh zero gradient
// of the same dimension — the dual-number equivalent of "assignment of
// a plain scalar to a Var" from the reference design.
func (v *Var[T]) SetScalar(c T) {
	v.a = c
	v.d = make([]T, len(v.d))
}

func sameDim[T Number](a, b Var[T]) {
	if len(a.d) != len(b.d) {
		panic("dual: gradient dimension mismatch")
	}
}

// Neg returns -v.
func Neg[T Number](v Var[T]) Var[T] {
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = -di
	}
	return Var[T]{a: -v.a, d: d}
}

// Add returns v+w: (a,d)+(a',d') = (a+a', d+d').
func Add[T Number](v, w Var[T]) Var[T] {
	sameDim(v, w)
	d := make([]T, len(v.d))
	for i := range d {
		d[i] = v.d[i] + w.d[i]
	}
	return Var[T]{a: v.a + w.a, d: d}
}

// Sub returns v-w: (a,d)-(a',d') = (a-a', d-d').
func Sub[T Number](v, w Var[T]) Var[T] {
	sameDim(v, w)
	d := make([]T, len(v.d))
	for i := range d {
		d[i] = v.d[i] - w.d[i]
	}
	return Var[T]{a: v.a - w.a, d: d}
}

// Mul returns v*w: (a,d)*(a',d') = (a*a', d*a' + a*d').
func Mul[T Number](v, w Var[T]) Var[T] {
	sameDim(v, w)
	d := make([]T, len(v.d))
	for i := range d {
		d[i] = v.d[i]*w.a + v.a*w.d[i]
	}
	return Var[T]{a: v.a * w.a, d: d}
}

// Div returns v/w: (a,d)/(a',d') = (a/a', (d - (a/a')*d')/a').
func Div[T Number](v, w Var[T]) Var[T] {
	sameDim(v, w)
	q := v.a / w.a
	d := make([]T, len(v.d))
	for i := range d {
		d[i] = (v.d[i] - q*w.d[i]) / w.a
	}
	return Var[T]{a: q, d: d}
}

// AddScalar returns v+c. The gradient is unchanged.
func AddScalar[T Number](v Var[T], c T) Var[T] {
	d := make([]T, len(v.d))
	copy(d, v.d)
	return Var[T]{a: v.a + c, d: d}
}

// SubScalar returns v-c. The gradient is unchanged.
func SubScalar[T Number](v Var[T], c T) Var[T] {
	d := make([]T, len(v.d))
	copy(d, v.d)
	return Var[T]{a: v.a - c, d: d}
}

// ScalarSub returns c-v. This is not SubScalar with the sign flipped
// on the value alone: the gradient must flip too, since
// d(c-x) = -d(x).
func ScalarSub[T Number](c T, v Var[T]) Var[T] {
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = -di
	}
	return Var[T]{a: c - v.a, d: d}
}

// MulScalar returns v*c.
func MulScalar[T Number](v Var[T], c T) Var[T] {
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = di * c
	}
	return Var[T]{a: v.a * c, d: d}
}

// DivScalar returns v/c.
func DivScalar[T Number](v Var[T], c T) Var[T] {
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = di / c
	}
	return Var[T]{a: v.a / c, d: d}
}

// ScalarDiv returns c/v. Derived independently from DivScalar:
// d(c/x) = -c*d(x)/x^2, which is not the mirror image of
// d(x/c) = d(x)/c.
func ScalarDiv[T Number](c T, v Var[T]) Var[T] {
	q := c / v.a
	k := -q / v.a
	d := make([]T, len(v.d))
	for i, di := range v.d {
		d[i] = k * di
	}
	return Var[T]{a: q, d: d}
}

// detach gives v a private copy of its gradient, so an update written
// through v is never visible through another copy of the same Var.
func (v *Var[T]) detach() {
	d := make([]T, len(v.d))
	copy(d, v.d)
	v.d = d
}

// AddAssign sets v to v+w, writing into a fresh gradient slice.
func (v *Var[T]) AddAssign(w Var[T]) {
	sameDim(*v, w)
	v.detach()
	v.a += w.a
	for i := range v.d {
		v.d[i] += w.d[i]
	}
}

// SubAssign sets v to v-w, writing into a fresh gradient slice.
func (v *Var[T]) SubAssign(w Var[T]) {
	sameDim(*v, w)
	v.detach()
	v.a -= w.a
	for i := range v.d {
		v.d[i] -= w.d[i]
	}
}

// MulAssign sets v to v*w, writing into a fresh gradient slice.
func (v *Var[T]) MulAssign(w Var[T]) {
	sameDim(*v, w)
	v.detach()
	a := v.a
	v.a *= w.a
	for i := range v.d {
		v.d[i] = v.d[i]*w.a + a*w.d[i]
	}
}

// DivAssign sets v to v/w, writing into a fresh gradient slice.
func (v *Var[T]) DivAssign(w Var[T]) {
	sameDim(*v, w)
	v.detach()
	q := v.a / w.a
	v.a = q
	for i := range v.d {
		v.d[i] = (v.d[i] - q*w.d[i]) / w.a
	}
}

// AddScalarAssign sets v to v+c in place.
func (v *Var[T]) AddScalarAssign(c T) { v.a += c }

// SubScalarAssign sets v to v-c in place.
func (v *Var[T]) SubScalarAssign(c T) { v.a -= c }

// MulScalarAssign sets v to v*c, writing into a fresh gradient slice.
func (v *Var[T]) MulScalarAssign(c T) {
	v.detach()
	v.a *= c
	blas.Scal(c, v.d)
}

// DivScalarAssign sets v to v/c, writing into a fresh gradient slice.
func (v *Var[T]) DivScalarAssign(c T) {
	v.detach()
	v.a /= c
	blas.Scal(1/c, v.d)
}
