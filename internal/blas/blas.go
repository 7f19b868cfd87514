// Package blas provides the small set of loop-unrolled, unit-stride
// vector kernels the rest of the module is built on: axpy, dot, copy,
// scale and the Euclidean norm. They exist for one reason — every hot
// path in dual, linesearch and lbfgs bottoms out in one of these, and
// keeping them in one place keeps the unrolling pattern consistent.
package blas

import "math"

// Number is the floating-point element type every kernel in this
// package, and every package built on top of it, is generic over.
type Number interface {
	~float32 | ~float64
}

// Axpy computes y += a*x elementwise. x and y must have equal length;
// Axpy panics otherwise.
func Axpy[T Number](a T, x, y []T) {
	n := len(x)
	if n != len(y) {
		panic("blas: Axpy length mismatch")
	}
	if n == 0 || a == 0 {
		return
	}
	m := n % 4
	for i := 0; i < m; i++ {
		y[i] += a * x[i]
	}
	for i := m; i < n; i += 4 {
		xb, yb := x[i:i+4:i+4], y[i:i+4:i+4]
		yb[0] += a * xb[0]
		yb[1] += a * xb[1]
		yb[2] += a * xb[2]
		yb[3] += a * xb[3]
	}
}

// Dot computes the inner product of x and y. Two running partial
// sums are kept over blocks of 4 so the compiler has independent
// chains to pipeline before the final reduction.
func Dot[T Number](x, y []T) T {
	n := len(x)
	if n != len(y) {
		panic("blas: Dot length mismatch")
	}
	var acc0, acc1 T
	m := n % 4
	for i := 0; i < m; i++ {
		acc0 += x[i] * y[i]
	}
	for i := m; i < n; i += 4 {
		xb, yb := x[i:i+4:i+4], y[i:i+4:i+4]
		acc0 += xb[0]*yb[0] + xb[1]*yb[1]
		acc1 += xb[2]*yb[2] + xb[3]*yb[3]
	}
	return acc0 + acc1
}

// Copy copies src into dst. Both must have equal length.
func Copy[T Number](dst, src []T) {
	if len(dst) != len(src) {
		panic("blas: Copy length mismatch")
	}
	copy(dst, src)
}

// Scal scales x in place by a.
func Scal[T Number](a T, x []T) {
	n := len(x)
	m := n % 4
	for i := 0; i < m; i++ {
		x[i] *= a
	}
	for i := m; i < n; i += 4 {
		xb := x[i : i+4 : i+4]
		xb[0] *= a
		xb[1] *= a
		xb[2] *= a
		xb[3] *= a
	}
}

// Zero fills x with the zero value of T.
func Zero[T Number](x []T) {
	for i := range x {
		x[i] = 0
	}
}

// Nrm2 computes the Euclidean norm of x using the scaled
// sum-of-squares recurrence, which avoids overflow for large
// elements the naive sqrt(sum(x*x)) would square into infinity.
func Nrm2[T Number](x []T) T {
	if len(x) == 0 {
		return 0
	}
	if len(x) == 1 {
		return T(math.Abs(float64(x[0])))
	}
	var scale T = 0
	var ssq T = 1
	for _, xi := range x {
		axi := T(math.Abs(float64(xi)))
		if axi == 0 {
			continue
		}
		if scale < axi {
			r := scale / axi
			ssq = 1 + ssq*r*r
			scale = axi
		} else {
			r := axi / scale
			ssq += r * r
		}
	}
	return scale * T(math.Sqrt(float64(ssq)))
}

// SumSq returns the sum of squares of x, used wherever only the
// squared norm is needed and the extra sqrt would be wasted work.
func SumSq[T Number](x []T) T {
	var acc0, acc1 T
	n := len(x)
	m := n % 4
	for i := 0; i < m; i++ {
		acc0 += x[i] * x[i]
	}
	for i := m; i < n; i += 4 {
		xb := x[i : i+4 : i+4]
		acc0 += xb[0]*xb[0] + xb[1]*xb[1]
		acc1 += xb[2]*xb[2] + xb[3]*xb[3]
	}
	return acc0 + acc1
}
