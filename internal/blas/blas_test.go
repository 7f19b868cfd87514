package blas

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}
	y := []float64{7, 6, 5, 4, 3, 2, 1}
	want := 0.0
	for i := range x {
		want += x[i] * y[i]
	}
	if got := Dot(x, y); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Dot = %v, want %v", got, want)
	}
}

func TestAxpy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 10, 10, 10, 10}
	Axpy(2.0, x, y)
	want := []float64{12, 14, 16, 18, 20}
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("Axpy[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestScalAndZero(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	Scal(3.0, x)
	for i, v := range x {
		if want := float64(i+1) * 3; v != want {
			t.Fatalf("Scal[%d] = %v, want %v", i, v, want)
		}
	}
	Zero(x)
	for i, v := range x {
		if v != 0 {
			t.Fatalf("Zero[%d] = %v, want 0", i, v)
		}
	}
}

func TestNrm2(t *testing.T) {
	x := []float64{3, 4}
	if got := Nrm2(x); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Nrm2 = %v, want 5", got)
	}
	big := []float64{1e200, 1e200}
	if got := Nrm2(big); math.IsInf(got, 0) {
		t.Fatal("Nrm2 overflowed on large input")
	}
}

func TestSumSq(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	want := 1.0 + 4 + 9 + 16 + 25
	if got := SumSq(x); math.Abs(got-want) > 1e-12 {
		t.Fatalf("SumSq = %v, want %v", got, want)
	}
}

func TestMismatchedLengthsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched lengths")
		}
	}()
	Dot([]float64{1, 2}, []float64{1})
}
