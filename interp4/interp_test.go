package interp4

import (
	"testing"

	"github.com/nilac16/gammaray/vecmat"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEvalSingleMidpoint(t *testing.T) {
	c := Corners{0, 0, 0, 0, 0, 0, 0, 1}
	got := EvalSingle(c, vecmat.Vec4{0.5, 0.5, 0.5, 0})
	want := 0.125
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-12) {
		t.Errorf("EvalSingle midpoint: got %v, want %v", got, want)
	}
}

func TestEvalSingleConstantField(t *testing.T) {
	const v = 3.5
	c := Corners{v, v, v, v, v, v, v, v}
	for _, tt := range []vecmat.Vec4{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0.25, 0.75, 0.1, 0},
	} {
		got := EvalSingle(c, tt)
		if !scalar.EqualWithinAbsOrRel(got, v, 1e-12, 1e-12) {
			t.Errorf("EvalSingle on constant field at %v: got %v, want %v", tt, got, v)
		}
	}
}

func TestEvalSingleCornerIdentity(t *testing.T) {
	c := Corners{1, 2, 3, 4, 5, 6, 7, 8}
	corners := []vecmat.Vec4{
		{0, 0, 0, 0}, {1, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0},
		{0, 0, 1, 0}, {1, 0, 1, 0}, {0, 1, 1, 0}, {1, 1, 1, 0},
	}
	for i, t4 := range corners {
		got := EvalSingle(c, t4)
		if !scalar.EqualWithinAbsOrRel(got, c[i], 1e-12, 1e-12) {
			t.Errorf("EvalSingle at corner %d (%v): got %v, want %v", i, t4, got, c[i])
		}
	}
}

func TestPrepareEvalMatchesSingle(t *testing.T) {
	c := Corners{1, 2, 3, 4, 5, 6, 7, 8}
	prepared := Prepare(c)
	for _, t4 := range []vecmat.Vec4{
		{0.1, 0.2, 0.3, 0},
		{0.9, 0.1, 0.5, 0},
		{0.5, 0.5, 0.5, 0},
	} {
		want := EvalSingle(c, t4)
		got := Eval(prepared, t4)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-9, 1e-9) {
			t.Errorf("Eval(Prepare(c), %v): got %v, want %v", t4, got, want)
		}
	}
}
