package running

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/stat"
)

func TestStatisticsAgainstBatch(t *testing.T) {
	samples := []float64{0.1, 0.9, 1.0, 1.5, 2.25, 0.0, 3.3, 1.1}

	s := NewStatistics()
	for _, x := range samples {
		s.Add(x)
	}

	wantMean, wantVar := stat.PopMeanVariance(samples, nil)
	if math.Abs(s.Mean-wantMean) > 1e-9 {
		t.Errorf("Mean: got %v, want %v", s.Mean, wantMean)
	}
	if math.Abs(s.Variance()-wantVar) > 1e-9 {
		t.Errorf("Variance: got %v, want %v", s.Variance(), wantVar)
	}
	if s.Total != int64(len(samples)) {
		t.Errorf("Total: got %d, want %d", s.Total, len(samples))
	}
	if s.Min != 0.0 {
		t.Errorf("Min: got %v, want 0", s.Min)
	}
	if s.Max != 3.3 {
		t.Errorf("Max: got %v, want 3.3", s.Max)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	s := NewStatistics()
	if !math.IsInf(s.Min, 1) {
		t.Errorf("empty Min: got %v, want +Inf", s.Min)
	}
	if !math.IsInf(s.Max, -1) {
		t.Errorf("empty Max: got %v, want -Inf", s.Max)
	}
	if s.Total != 0 {
		t.Errorf("empty Total: got %v, want 0", s.Total)
	}
}

func TestMergeMatchesSequentialAdd(t *testing.T) {
	samples := []float64{4, 8, 15, 16, 23, 42, -3.5, 0.25, 9.9}

	seq := NewStatistics()
	for _, x := range samples {
		seq.Add(x)
	}

	a, b := NewStatistics(), NewStatistics()
	for i, x := range samples {
		if i%2 == 0 {
			a.Add(x)
		} else {
			b.Add(x)
		}
	}
	merged := Merge(a, b)

	// Merge and sequential Add must produce the same Statistics up to
	// floating-point rounding; cmp.Diff reports a structural diff of
	// the whole value rather than field-by-field comparisons.
	if diff := cmp.Diff(seq, merged, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Merge(a, b) differs from sequential Add (-want +got):\n%s", diff)
	}
}

func TestMergeWithEmpty(t *testing.T) {
	a := NewStatistics()
	a.Add(1)
	a.Add(2)

	empty := NewStatistics()

	got := Merge(a, empty)
	if got != a {
		t.Errorf("Merge(a, empty): got %v, want %v", got, a)
	}
	got2 := Merge(empty, a)
	if got2 != a {
		t.Errorf("Merge(empty, a): got %v, want %v", got2, a)
	}
}
