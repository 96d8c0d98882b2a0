// Package search implements a derivative-free compass/pattern-search
// minimizer over a user-supplied objective and an orthonormal stencil of
// basis directions, with a geometric shrink schedule on failed rounds.
//
// Unlike gonum's optimize package, Run has no gradient machinery, no
// Method/Problem/Settings plumbing, and no convergence criteria beyond
// the shrink budget: it is the narrow primitive spec'd for gamma-index
// evaluation, not a general nonlinear optimizer (see optimize.NelderMead
// and optimize.Local for that shape of problem).
package search

import "github.com/nilac16/gammaray/vecmat"

// Objective is a pure scalar function of a point: same input always
// yields the same output. Run does not cache calls to Objective.
type Objective func(p vecmat.Vec4) float64

// Pair is a coordinate paired with its objective value.
type Pair struct {
	Vec vecmat.Vec4
	Val float64
}

// Run performs coordinate pattern search starting from init, probing
// along ±bases[i] at the current step size. A probe is accepted only if
// it strictly improves on the best point found so far in that round; if
// no probe in a round improves, the step halves and the shrink budget
// decrements. The search stops once shrinks falls below zero.
//
// Edge cases: if shrinks < 0 on entry, or bases is empty, init is
// returned unchanged.
func Run(f Objective, bases []vecmat.Vec4, init Pair, step float64, shrinks int) Pair {
	for shrinks >= 0 {
		cand := init
		found := false
		for _, b := range bases {
			plus := vecmat.FMAScalar(b, step, init.Vec)
			if p := probe(f, plus); p.Val < cand.Val {
				cand, found = p, true
			}
			minus := vecmat.FMSScalar(b, step, init.Vec)
			if p := probe(f, minus); p.Val < cand.Val {
				cand, found = p, true
			}
		}
		if found {
			init = cand
		} else {
			step /= 2
			shrinks--
		}
	}
	return init
}

// RunPassOnly behaves like Run, except it returns early, without
// completing the shrink schedule, the moment any probe's value is at
// most bound. This implements the pass_only optimization hook: the
// returned value is then only an upper bound on the true minimum, which
// is sufficient when only the < bound classification matters.
func RunPassOnly(f Objective, bases []vecmat.Vec4, init Pair, step float64, shrinks int, bound float64) Pair {
	if init.Val <= bound {
		return init
	}
	for shrinks >= 0 {
		cand := init
		found := false
		for _, b := range bases {
			plus := vecmat.FMAScalar(b, step, init.Vec)
			if p := probe(f, plus); p.Val < cand.Val {
				cand, found = p, true
				if cand.Val <= bound {
					return cand
				}
			}
			minus := vecmat.FMSScalar(b, step, init.Vec)
			if p := probe(f, minus); p.Val < cand.Val {
				cand, found = p, true
				if cand.Val <= bound {
					return cand
				}
			}
		}
		if found {
			init = cand
		} else {
			step /= 2
			shrinks--
		}
	}
	return init
}

func probe(f Objective, p vecmat.Vec4) Pair {
	return Pair{Vec: p, Val: f(p)}
}
