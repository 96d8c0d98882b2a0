// Package running provides a streaming count/min/max/mean/mean-of-squares
// accumulator, in the style of gonum's stat/running package, specialized
// to the unweighted case the gamma engine needs: every sample carries
// equal weight, and msqr-mean² is reported as a biased variance estimate.
package running

import "math"

// Statistics accumulates count, min, max, mean, and mean-of-squares over
// a stream of samples. The zero value is not usable; start from
// NewStatistics.
//
// Add is not safe for concurrent use. Concurrent producers should each
// keep a private Statistics and combine their results with Merge.
type Statistics struct {
	Total      int64
	Min        float64
	Max        float64
	Mean       float64
	MeanSquare float64
}

// NewStatistics returns an empty accumulator.
func NewStatistics() Statistics {
	return Statistics{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// Add folds x into s using the running-weighted update
//
//	mean' = (n·mean + x) / (n+1)
//	msqr' = (n·msqr + x²) / (n+1)
//
// chosen for numerical stability over a naive sum-of-squares
// accumulation once Total grows large.
func (s *Statistics) Add(x float64) {
	n := float64(s.Total)
	s.Total++
	if x < s.Min {
		s.Min = x
	}
	if x > s.Max {
		s.Max = x
	}
	s.Mean = (n*s.Mean + x) / float64(s.Total)
	s.MeanSquare = (n*s.MeanSquare + x*x) / float64(s.Total)
}

// Merge combines two independently accumulated Statistics into one,
// as if every sample folded into a or b had instead been folded into
// a single accumulator in some order. The combination is exact for
// Total, Min, and Max, and correct up to floating-point rounding for
// Mean and MeanSquare.
func Merge(a, b Statistics) Statistics {
	if a.Total == 0 {
		return b
	}
	if b.Total == 0 {
		return a
	}
	total := a.Total + b.Total
	ft := float64(total)
	return Statistics{
		Total:      total,
		Min:        math.Min(a.Min, b.Min),
		Max:        math.Max(a.Max, b.Max),
		Mean:       (float64(a.Total)*a.Mean + float64(b.Total)*b.Mean) / ft,
		MeanSquare: (float64(a.Total)*a.MeanSquare + float64(b.Total)*b.MeanSquare) / ft,
	}
}

// Variance returns the biased variance estimate MeanSquare - Mean².
func (s Statistics) Variance() float64 {
	return s.MeanSquare - s.Mean*s.Mean
}
