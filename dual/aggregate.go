package dual

import "github.com/lempiji/numeric/internal/blas"

// Sum returns the sum of a plain scalar slice, using the same
// block-of-4 unrolled accumulation as internal/blas. Sum panics on an
// empty slice.
func Sum[T Number](x []T) T {
	if len(x) == 0 {
		panic("dual: Sum of empty slice")
	}
	var acc0, acc1 T
	n := len(x)
	m := n % 4
	for i := 0; i < m; i++ {
		acc0 += x[i]
	}
	for i := m; i < n; i += 4 {
		xb := x[i : i+4 : i+4]
		acc0 += xb[0] + xb[1]
		acc1 += xb[2] + xb[3]
	}
	return acc0 + acc1
}

// checkDim panics unless every element of x has gradient dimension n.
func checkDim[T Number](x []Var[T], n int) {
	for _, xi := range x {
		if xi.Dim() != n {
			panic("dual: gradient dimension mismatch")
		}
	}
}

// addGrad accumulates v's gradient into d elementwise: d += v.d.
func addGrad[T Number](d []T, v Var[T]) {
	for i, di := range v.d {
		d[i] += di
	}
}

// addScaledGrad accumulates c*v.d into d elementwise: d += c*v.d.
func addScaledGrad[T Number](d []T, c T, v Var[T]) {
	for i, di := range v.d {
		d[i] += c * di
	}
}

// SumVar returns the sum of a slice of dual numbers. All elements
// must share the same gradient dimension. Like internal/blas's plain-
// scalar kernels, the accumulation runs over independent partial sums
// so the compiler has separate chains to pipeline: blocks of 16 (four
// interleaved accumulators), then blocks of 4 (two), then a scalar
// tail for what's left.
func SumVar[T Number](x []Var[T]) Var[T] {
	if len(x) == 0 {
		panic("dual: SumVar of empty slice")
	}
	n := x[0].Dim()
	checkDim(x, n)
	d := make([]T, n)

	var acc0, acc1, acc2, acc3 T
	i, m := 0, len(x)
	for ; i+16 <= m; i += 16 {
		blk := x[i : i+16 : i+16]
		for j := 0; j < 16; j += 4 {
			q := blk[j : j+4 : j+4]
			acc0 += q[0].a
			acc1 += q[1].a
			acc2 += q[2].a
			acc3 += q[3].a
			addGrad(d, q[0])
			addGrad(d, q[1])
			addGrad(d, q[2])
			addGrad(d, q[3])
		}
	}
	for ; i+4 <= m; i += 4 {
		blk := x[i : i+4 : i+4]
		acc0 += blk[0].a + blk[1].a
		acc1 += blk[2].a + blk[3].a
		addGrad(d, blk[0])
		addGrad(d, blk[1])
		addGrad(d, blk[2])
		addGrad(d, blk[3])
	}
	for ; i < m; i++ {
		acc0 += x[i].a
		addGrad(d, x[i])
	}
	return Var[T]{a: acc0 + acc1 + acc2 + acc3, d: d}
}

// SumSq returns the sum of squares of a plain scalar slice. SumSq
// panics on an empty slice.
func SumSq[T Number](x []T) T {
	if len(x) == 0 {
		panic("dual: SumSq of empty slice")
	}
	return blas.SumSq(x)
}

// SumSqVar returns the sum of squares of a slice of dual numbers,
// i.e. SumVar of the elementwise Square, using the same blocks-of-16-
// then-4-then-tail accumulation as SumVar.
func SumSqVar[T Number](x []Var[T]) Var[T] {
	if len(x) == 0 {
		panic("dual: SumSqVar of empty slice")
	}
	n := x[0].Dim()
	checkDim(x, n)
	d := make([]T, n)

	var acc0, acc1, acc2, acc3 T
	i, m := 0, len(x)
	for ; i+16 <= m; i += 16 {
		blk := x[i : i+16 : i+16]
		for j := 0; j < 16; j += 4 {
			q := blk[j : j+4 : j+4]
			acc0 += q[0].a * q[0].a
			acc1 += q[1].a * q[1].a
			acc2 += q[2].a * q[2].a
			acc3 += q[3].a * q[3].a
			addScaledGrad(d, 2*q[0].a, q[0])
			addScaledGrad(d, 2*q[1].a, q[1])
			addScaledGrad(d, 2*q[2].a, q[2])
			addScaledGrad(d, 2*q[3].a, q[3])
		}
	}
	for ; i+4 <= m; i += 4 {
		blk := x[i : i+4 : i+4]
		acc0 += blk[0].a*blk[0].a + blk[1].a*blk[1].a
		acc1 += blk[2].a*blk[2].a + blk[3].a*blk[3].a
		addScaledGrad(d, 2*blk[0].a, blk[0])
		addScaledGrad(d, 2*blk[1].a, blk[1])
		addScaledGrad(d, 2*blk[2].a, blk[2])
		addScaledGrad(d, 2*blk[3].a, blk[3])
	}
	for ; i < m; i++ {
		acc0 += x[i].a * x[i].a
		addScaledGrad(d, 2*x[i].a, x[i])
	}
	return Var[T]{a: acc0 + acc1 + acc2 + acc3, d: d}
}

// Dot returns the inner product of two plain scalar slices.
func Dot[T Number](x, y []T) T { return blas.Dot(x, y) }

// DotVV returns the inner product of two dual-number slices,
// propagating the gradient of a bilinear form:
// d(sum a_i*b_i) = sum (da_i*b_i + a_i*db_i). Accumulation follows the
// same blocks-of-16-then-4-then-tail scheme as SumVar.
func DotVV[T Number](a, b []Var[T]) Var[T] {
	if len(a) != len(b) {
		panic("dual: DotVV length mismatch")
	}
	if len(a) == 0 {
		panic("dual: DotVV of empty slices")
	}
	n := a[0].Dim()
	checkDim(a, n)
	checkDim(b, n)
	d := make([]T, n)

	var acc0, acc1, acc2, acc3 T
	i, m := 0, len(a)
	for ; i+16 <= m; i += 16 {
		ablk, bblk := a[i:i+16:i+16], b[i:i+16:i+16]
		for j := 0; j < 16; j += 4 {
			aq, bq := ablk[j:j+4:j+4], bblk[j:j+4:j+4]
			acc0 += aq[0].a * bq[0].a
			acc1 += aq[1].a * bq[1].a
			acc2 += aq[2].a * bq[2].a
			acc3 += aq[3].a * bq[3].a
			addScaledGrad(d, bq[0].a, aq[0])
			addScaledGrad(d, aq[0].a, bq[0])
			addScaledGrad(d, bq[1].a, aq[1])
			addScaledGrad(d, aq[1].a, bq[1])
			addScaledGrad(d, bq[2].a, aq[2])
			addScaledGrad(d, aq[2].a, bq[2])
			addScaledGrad(d, bq[3].a, aq[3])
			addScaledGrad(d, aq[3].a, bq[3])
		}
	}
	for ; i+4 <= m; i += 4 {
		ablk, bblk := a[i:i+4:i+4], b[i:i+4:i+4]
		acc0 += ablk[0].a*bblk[0].a + ablk[1].a*bblk[1].a
		acc1 += ablk[2].a*bblk[2].a + ablk[3].a*bblk[3].a
		addScaledGrad(d, bblk[0].a, ablk[0])
		addScaledGrad(d, ablk[0].a, bblk[0])
		addScaledGrad(d, bblk[1].a, ablk[1])
		addScaledGrad(d, ablk[1].a, bblk[1])
		addScaledGrad(d, bblk[2].a, ablk[2])
		addScaledGrad(d, ablk[2].a, bblk[2])
		addScaledGrad(d, bblk[3].a, ablk[3])
		addScaledGrad(d, ablk[3].a, bblk[3])
	}
	for ; i < m; i++ {
		acc0 += a[i].a * b[i].a
		addScaledGrad(d, b[i].a, a[i])
		addScaledGrad(d, a[i].a, b[i])
	}
	return Var[T]{a: acc0 + acc1 + acc2 + acc3, d: d}
}

// DotVS returns the inner product of a dual-number slice with a
// plain scalar slice, treating the scalars as constants:
// d(sum a_i*c_i) = sum da_i*c_i. Accumulation follows the same
// blocks-of-16-then-4-then-tail scheme as SumVar.
func DotVS[T Number](a []Var[T], c []T) Var[T] {
	if len(a) != len(c) {
		panic("dual: DotVS length mismatch")
	}
	if len(a) == 0 {
		panic("dual: DotVS of empty slices")
	}
	n := a[0].Dim()
	checkDim(a, n)
	d := make([]T, n)

	var acc0, acc1, acc2, acc3 T
	i, m := 0, len(a)
	for ; i+16 <= m; i += 16 {
		ablk, cblk := a[i:i+16:i+16], c[i:i+16:i+16]
		for j := 0; j < 16; j += 4 {
			aq, cq := ablk[j:j+4:j+4], cblk[j:j+4:j+4]
			acc0 += aq[0].a * cq[0]
			acc1 += aq[1].a * cq[1]
			acc2 += aq[2].a * cq[2]
			acc3 += aq[3].a * cq[3]
			addScaledGrad(d, cq[0], aq[0])
			addScaledGrad(d, cq[1], aq[1])
			addScaledGrad(d, cq[2], aq[2])
			addScaledGrad(d, cq[3], aq[3])
		}
	}
	for ; i+4 <= m; i += 4 {
		ablk, cblk := a[i:i+4:i+4], c[i:i+4:i+4]
		acc0 += ablk[0].a*cblk[0] + ablk[1].a*cblk[1]
		acc1 += ablk[2].a*cblk[2] + ablk[3].a*cblk[3]
		addScaledGrad(d, cblk[0], ablk[0])
		addScaledGrad(d, cblk[1], ablk[1])
		addScaledGrad(d, cblk[2], ablk[2])
		addScaledGrad(d, cblk[3], ablk[3])
	}
	for ; i < m; i++ {
		acc0 += a[i].a * c[i]
		addScaledGrad(d, c[i], a[i])
	}
	return Var[T]{a: acc0 + acc1 + acc2 + acc3, d: d}
}

// DotSV returns the inner product of a plain scalar slice with a
// dual-number slice. DotSV(c, a) == DotVS(a, c) for all inputs.
func DotSV[T Number](c []T, a []Var[T]) Var[T] {
	return DotVS(a, c)
}
