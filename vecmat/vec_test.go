package vecmat

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func TestVecArith(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}

	if got, want := a.Add(b), (Vec4{5, 5, 5, 5}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec4{-3, -1, 1, 3}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Mul(b), (Vec4{4, 6, 6, 4}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := a.MulScalar(2), (Vec4{2, 4, 6, 8}); got != want {
		t.Errorf("MulScalar: got %v, want %v", got, want)
	}
	if got, want := a.DivScalar(2), (Vec4{0.5, 1, 1.5, 2}); got != want {
		t.Errorf("DivScalar: got %v, want %v", got, want)
	}
}

func TestFMA(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{2, 2, 2, 2}
	c := Vec4{1, 1, 1, 1}

	got := FMA(a, b, c)
	want := Vec4{3, 5, 7, 9}
	if got != want {
		t.Errorf("FMA: got %v, want %v", got, want)
	}

	gotSub := FMS(a, b, c)
	wantSub := Vec4{-1, -3, -5, -7}
	if gotSub != wantSub {
		t.Errorf("FMS: got %v, want %v", gotSub, wantSub)
	}

	gotScalar := FMAScalar(a, 3, c)
	wantScalar := Vec4{4, 7, 10, 13}
	if gotScalar != wantScalar {
		t.Errorf("FMAScalar: got %v, want %v", gotScalar, wantScalar)
	}
}

func TestDotCross(t *testing.T) {
	a := Vec4{1, 0, 0, 0}
	b := Vec4{0, 1, 0, 0}

	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot of orthogonal axes: got %v, want 0", got)
	}
	if got := Dot(a, a); got != 1 {
		t.Errorf("Dot of unit vector with itself: got %v, want 1", got)
	}

	cross := Cross(a, b)
	want := Vec4{0, 0, 1, 0}
	for i := range cross {
		if !scalar.EqualWithinAbsOrRel(cross[i], want[i], tol, tol) {
			t.Errorf("Cross: got %v, want %v", cross, want)
			break
		}
	}
}
