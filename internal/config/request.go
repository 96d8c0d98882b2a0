// Package config turns a flat, string-typed request — the shape a CLI
// flag set or an embedder's config file naturally produces — into the
// strongly-typed gammaindex.Params/Options a Compute call needs.
package config

import (
	"fmt"

	"github.com/nilac16/gammaray/gammaindex"
)

// Request mirrors cmd/gammacli's flag set before validation: every
// field is either a primitive or a string, so it can be populated
// directly from pflag values or decoded from a config file without any
// intermediate enum lookup.
type Request struct {
	Diff      float64
	DTA       float64
	Threshold float64
	Norm      string // "GLOBAL", "LOCAL", or "ABSOLUTE"
	Relative  bool

	PassOnly  bool
	Shrinks   int
	Workers   int
	WriteDist bool
}

// Decode validates r and produces the Params/Options pair Compute
// expects. Decode performs no I/O and no logging; it is the one place
// a string normalization literal is turned into the closed
// gammaindex.Normalization enum, via DecodeNormalization.
func Decode(r Request) (gammaindex.Params, gammaindex.Options, error) {
	norm, err := DecodeNormalization(r.Norm)
	if err != nil {
		return gammaindex.Params{}, gammaindex.Options{}, err
	}

	params := gammaindex.Params{
		Diff:      r.Diff,
		DTA:       r.DTA,
		Threshold: r.Threshold,
		Norm:      norm,
		Relative:  r.Relative,
	}
	if err := params.Validate(); err != nil {
		return gammaindex.Params{}, gammaindex.Options{}, err
	}

	options := gammaindex.Options{
		PassOnly:  r.PassOnly,
		Shrinks:   r.Shrinks,
		Workers:   r.Workers,
		WriteDist: r.WriteDist,
	}
	return params, options, nil
}

// DecodeNormalization wraps gammaindex.ParseNormalization with a
// config-specific error prefix, so a decode failure reads as a request
// problem rather than a Compute-time one, while still satisfying
// errors.Is(err, gammaindex.ErrConfig) for callers that only care about
// the sentinel.
func DecodeNormalization(s string) (gammaindex.Normalization, error) {
	n, err := gammaindex.ParseNormalization(s)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return n, nil
}
