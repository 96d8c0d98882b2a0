package idx4

import "testing"

func TestComparisonMasks(t *testing.T) {
	a := Idx4{1, 2, 3, 4}
	b := Idx4{4, 2, 1, 4}

	lt := a.Lt(b)
	want := Idx4{maskTrue, maskFalse, maskFalse, maskFalse}
	if lt != want {
		t.Errorf("Lt: got %v, want %v", lt, want)
	}

	eq := a.Eq(b)
	wantEq := Idx4{maskFalse, maskTrue, maskFalse, maskTrue}
	if eq != wantEq {
		t.Errorf("Eq: got %v, want %v", eq, wantEq)
	}
}

func TestAnyAll(t *testing.T) {
	allTrue := Idx4{maskTrue, maskTrue, maskTrue, maskTrue}
	if allTrue.All() != maskTrue {
		t.Errorf("All of all-true mask: got %v, want %v", allTrue.All(), maskTrue)
	}
	mixed := Idx4{maskTrue, maskFalse, maskFalse, maskFalse}
	if mixed.All() != maskFalse {
		t.Errorf("All of mixed mask: got %v, want %v", mixed.All(), maskFalse)
	}
	if mixed.Any() != maskTrue {
		t.Errorf("Any of mixed mask: got %v, want %v", mixed.Any(), maskTrue)
	}
	allFalse := Idx4{maskFalse, maskFalse, maskFalse, maskFalse}
	if allFalse.Any() != maskFalse {
		t.Errorf("Any of all-false mask: got %v, want %v", allFalse.Any(), maskFalse)
	}
}

func TestHitTest(t *testing.T) {
	lo := Idx4{0, 0, 0, 0}
	hi := Idx4{5, 5, 5, 1 << 30}

	inBounds := Idx4{2, 2, 2, 1}
	if HitTest(inBounds, lo, hi).Any() != 0 {
		t.Errorf("in-bounds index flagged as hit: %v", inBounds)
	}

	outLow := Idx4{-1, 2, 2, 1}
	if HitTest(outLow, lo, hi).Any() == 0 {
		t.Errorf("below-lower-bound index not flagged: %v", outLow)
	}

	outHigh := Idx4{2, 5, 2, 1}
	if HitTest(outHigh, lo, hi).Any() == 0 {
		t.Errorf("at-or-above-upper-bound index not flagged: %v", outHigh)
	}
}
