// Package interp4 implements trilinear interpolation over the 8 corner
// values of a unit lattice cell. See the Predictor-style split between
// "evaluate once" and "fit, then evaluate repeatedly" used throughout
// gonum's interp package for the shape this API follows.
package interp4

import "github.com/nilac16/gammaray/vecmat"

// Corners holds the eight values of a lattice cell's corners, indexed by
// (x,y,z) in {0,1}³ in the order c000, c100, c010, c110, c001, c101,
// c011, c111.
type Corners [8]float64

// EvalSingle evaluates the trilinear blend of c at fractional offset
// t = (tx, ty, tz) within the cell, where each component of t lies in
// [0,1]. The fourth lane of t is ignored.
//
// This is the one-shot form: it recomputes the (1-t) complements from
// scratch and does not mutate c, at the cost of being wasteful if the
// same cell is evaluated at many different offsets (see Prepare/Eval
// for that case).
func EvalSingle(c Corners, t vecmat.Vec4) float64 {
	ux, uy, uz := 1-t[0], 1-t[1], 1-t[2]

	b0 := c[0]*uz + c[4]*t[2]
	b1 := c[1]*uz + c[5]*t[2]
	b2 := c[2]*uz + c[6]*t[2]
	b3 := c[3]*uz + c[7]*t[2]

	b0 = b0*uy + b2*t[1]
	b1 = b1*uy + b3*t[1]

	return b0*ux + b1*t[0]
}

// Prepare folds the corner values of c into a forward-difference
// coefficient basis suitable for repeated evaluation within the same
// cell via Eval. It does not modify c.
func Prepare(c Corners) Corners {
	p := c
	p[4] -= p[0]
	p[5] -= p[1]
	p[6] -= p[2]
	p[7] -= p[3]

	p[2] -= p[0]
	p[3] -= p[1]
	p[6] -= p[4]
	p[7] -= p[5]

	p[1] -= p[0]
	p[3] -= p[2]
	p[5] -= p[4]
	p[7] -= p[6]
	return p
}

// Eval evaluates a cell prepared by Prepare at fractional offset t.
func Eval(prepared Corners, t vecmat.Vec4) float64 {
	p := prepared
	p[0] += p[4] * t[2]
	p[1] += p[5] * t[2]
	p[2] += p[6] * t[2]
	p[3] += p[7] * t[2]

	p[0] += p[2] * t[1]
	p[1] += p[3] * t[1]

	return p[0] + p[1]*t[0]
}
