// Package gammaindex composes a Distribution pair and a PatternSearch
// minimizer into the gamma-index evaluation loop: per-voxel threshold
// gating, normalization selection, the distance/dose-difference
// objective, and parallel reduction of pass count and statistics.
package gammaindex

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrConfig is the sentinel wrapped by configuration errors: an
// unrecognized normalization literal, or any other value rejected
// before a Compute run begins. Per the core's error taxonomy there are
// exactly two failure modes (the other being distrib.ErrSingularMatrix)
// and neither permits a partial Compute.
var ErrConfig = errors.New("gammaindex: invalid configuration")

// Normalization selects the denominator of the dose-difference term of
// the gamma objective.
type Normalization int

const (
	// Global normalizes by the measured distribution's maximum dose.
	Global Normalization = iota
	// Local normalizes by the current voxel's measured dose.
	Local
	// Absolute uses a fixed denominator of 1.
	Absolute
)

// String returns the case-sensitive literal ParseNormalization accepts
// for n ("GLOBAL", "LOCAL", or "ABSOLUTE").
func (n Normalization) String() string {
	switch n {
	case Global:
		return "GLOBAL"
	case Local:
		return "LOCAL"
	case Absolute:
		return "ABSOLUTE"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization decodes the case-sensitive literals "GLOBAL",
// "LOCAL", and "ABSOLUTE" into a Normalization. Any other value is
// rejected with an error wrapping ErrConfig; this is the only decoder
// spec.md names for the normalization enum's textual collaborator
// interface.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "GLOBAL":
		return Global, nil
	case "LOCAL":
		return Local, nil
	case "ABSOLUTE":
		return Absolute, nil
	default:
		return 0, fmt.Errorf("gammaindex: unrecognized normalization %q: %w", s, ErrConfig)
	}
}

// Params are the primary gamma-index criteria, treated as a read-only
// snapshot for the duration of a Compute call.
type Params struct {
	// Diff is the dose-difference criterion as a proportion (e.g. 0.03).
	Diff float64
	// DTA is the distance-to-agreement, in the physical units of the
	// distributions' affine embedding.
	DTA float64
	// Threshold is the low-dose threshold as a proportion (e.g. 0.10)
	// of each distribution's own maximum.
	Threshold float64
	// Norm selects the dose-difference normalization denominator.
	Norm Normalization
	// Relative, if set, rescales the measured dose into the reference
	// distribution's range before computing the objective.
	Relative bool
}

// Validate reports a ErrConfig-wrapping error if p cannot be used to
// run Compute: Diff, DTA and Threshold must all be strictly positive.
// A measured dose of exactly zero under LOCAL normalization is handled
// separately, inside the per-voxel evaluation, which reports such a
// voxel as BelowThreshold.
func (p Params) Validate() error {
	if p.Diff <= 0 {
		return fmt.Errorf("gammaindex: diff must be positive, got %v: %w", p.Diff, ErrConfig)
	}
	if p.DTA <= 0 {
		return fmt.Errorf("gammaindex: dta must be positive, got %v: %w", p.DTA, ErrConfig)
	}
	if p.Threshold <= 0 {
		return fmt.Errorf("gammaindex: threshold must be positive, got %v: %w", p.Threshold, ErrConfig)
	}
	return nil
}

// Options carries extra, non-criteria settings for a Compute run.
type Options struct {
	// PassOnly permits Compute to stop a voxel's minimization the
	// moment any probe demonstrates gamma <= 1, since the pass/fail
	// classification cannot change after that. The reported gamma for
	// such a voxel is then only an upper bound on the true minimum.
	PassOnly bool
	// Shrinks is the pattern-search shrink budget passed to every
	// per-voxel minimization.
	Shrinks int
	// Workers is the number of goroutines Compute partitions the
	// measured voxel range across. Zero means runtime.GOMAXPROCS(0).
	Workers int
	// WriteDist records that the caller wants the per-voxel gamma
	// distribution. Compute itself does not read it: it fills
	// Results.Dist whenever Results.Dist is non-nil, so a caller that
	// sets WriteDist must also allocate Results.Dist.
	WriteDist bool
	// Logger receives a one-line summary after Compute finishes, plus
	// any worker-count warnings. The zero value is a no-op logger; the
	// per-voxel hot path never logs regardless.
	Logger zerolog.Logger
}
