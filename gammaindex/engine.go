package gammaindex

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nilac16/gammaray/distrib"
	"github.com/nilac16/gammaray/running"
	"github.com/nilac16/gammaray/search"
	"github.com/nilac16/gammaray/vecmat"
)

// BelowThreshold is the sentinel gamma value reported for a voxel
// excluded by the low-dose threshold gate. It is always negative and
// therefore distinguishable from any real gamma, which lies in [0, ∞).
const BelowThreshold = -1.0

var axisBases = []vecmat.Vec4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
}

// Results accumulates the outcome of a Compute run: streaming
// statistics and pass count over every above-threshold voxel, plus
// (if requested) the per-voxel gamma distribution.
type Results struct {
	Stats running.Statistics
	Pass  int64
	// Dist, if non-nil, must be at least measured.Len() long; Compute
	// writes each voxel's gamma (or BelowThreshold) at its own linear
	// index.
	Dist []float64
}

// objective closes over everything gamma_pointwise needs to evaluate
// the combined dose-difference/distance metric at an arbitrary point,
// per spec.md's resolution of the seed/probe displacement question:
// the seed uses zero displacement (evaluated directly from rdose and
// the origin dose), while probes evaluate the actual displacement from
// origin.
type objective struct {
	ref    *distrib.Distribution
	ratio  float64
	mdose  float64
	origin vecmat.Vec4
}

func (o *objective) value(rdose float64, displacement vecmat.Vec4) float64 {
	diff := o.ratio * (rdose - o.mdose)
	return diff*diff + vecmat.Dot(displacement, displacement)
}

func (o *objective) at(p vecmat.Vec4) float64 {
	diff := p.Sub(o.origin)
	return o.value(o.ref.Interp(p), diff)
}

// pointwise computes the gamma value at one measured voxel, or
// BelowThreshold if the voxel is excluded by the low-dose gate.
func pointwise(params Params, options Options, ref, meas *distrib.Distribution, rthresh, mthresh float64, pos vecmat.Vec4, mdose float64) float64 {
	rdose := ref.Interp(pos)
	if rdose < rthresh && mdose < mthresh {
		return BelowThreshold
	}

	obj := objective{
		ref:    ref,
		ratio:  params.DTA / params.Diff,
		mdose:  mdose,
		origin: pos,
	}

	var denom float64
	switch params.Norm {
	case Local:
		denom = mdose
	case Absolute:
		denom = 1.0
	case Global:
		fallthrough
	default:
		denom = meas.Max()
	}
	// mdose == 0 under LOCAL normalization would divide by zero. The
	// threshold gate above only excludes a voxel when both doses are
	// below threshold, so a voxel whose reference dose clears the gate
	// can still arrive here with a zero measured dose; a zero measured
	// dose is below any positive threshold, so report it as such.
	if denom == 0 {
		return BelowThreshold
	}
	obj.ratio /= denom

	if params.Relative {
		obj.mdose *= ref.Max() / meas.Max()
	}

	init := search.Pair{
		Vec: pos,
		Val: obj.value(rdose, vecmat.Vec4{}),
	}

	var best search.Pair
	if options.PassOnly {
		best = search.RunPassOnly(obj.at, axisBases, init, params.DTA, options.Shrinks, params.DTA*params.DTA)
	} else {
		best = search.Run(obj.at, axisBases, init, params.DTA, options.Shrinks)
	}
	return math.Sqrt(best.Val) / params.DTA
}

// Compute populates results.Stats, results.Pass, and (if
// results.Dist is non-nil) results.Dist, evaluating the gamma index of
// every voxel of measured against reference. The measured voxel range
// is partitioned across options.Workers goroutines (runtime.GOMAXPROCS(0)
// if zero); each worker accumulates a private running.Statistics and
// pass count, merged deterministically by worker index once all
// workers finish, so that Pass is identical regardless of worker count.
//
// ctx is polled between voxel batches, not inside the per-voxel hot
// loop; if cancelled, Compute returns ctx.Err() alongside whatever
// partial results the completed voxels produced.
func Compute(ctx context.Context, params Params, options Options, reference, measured *distrib.Distribution, results *Results) error {
	if err := params.Validate(); err != nil {
		return err
	}
	start := time.Now()

	rthresh := params.Threshold * reference.Max()
	mthresh := params.Threshold * measured.Max()

	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := measured.Len()
	if workers > n {
		options.Logger.Warn().
			Int("requested", workers).
			Int("clipped_to", n).
			Msg("worker count clipped to voxel count")
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]running.Statistics, workers)
	passes := make([]int64, workers)
	for i := range partials {
		partials[i] = running.NewStatistics()
	}

	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			return measured.ForEachRange(gctx, lo, hi, func(pos vecmat.Vec4, dose float64, linear int) {
				value := pointwise(params, options, reference, measured, rthresh, mthresh, pos, dose)
				if value != BelowThreshold {
					partials[w].Add(value)
					if value < 1.0 {
						passes[w]++
					}
				}
				if results.Dist != nil {
					results.Dist[linear] = value
				}
			})
		})
	}

	err := g.Wait()

	stats := running.NewStatistics()
	var pass int64
	for i := range partials {
		stats = running.Merge(stats, partials[i])
		pass += passes[i]
	}
	results.Stats = stats
	results.Pass = pass

	options.Logger.Info().
		Dur("elapsed", time.Since(start)).
		Int64("pass", pass).
		Int64("total", stats.Total).
		Int("workers", workers).
		Msg("gamma index computed")

	return err
}
