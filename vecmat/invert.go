package vecmat

import (
	"errors"
	"math"
)

// ErrSingular is returned by Invert when the input matrix has no inverse.
var ErrSingular = errors.New("vecmat: matrix is singular")

// Invert returns the inverse of m using Gauss–Jordan elimination with
// partial pivoting by column maximum absolute value. If m is singular,
// Invert returns ErrSingular and the zero matrix; per the algorithm's
// contract there are no partial-output guarantees in that case.
func Invert(m Mat4) (Mat4, error) {
	lhs := m
	rhs := Identity4
	for k := 0; k < 4; k++ {
		if !eliminate(&lhs, &rhs, k) {
			return Mat4{}, ErrSingular
		}
	}
	return rhs, nil
}

// pivot finds, among columns [k,3], the one whose row-k entry has the
// greatest absolute value. It returns -1 if that maximum is zero.
func pivot(m *Mat4, k int) int {
	best := k
	max := math.Abs(m[k][k])
	for i := k + 1; i < 4; i++ {
		if v := math.Abs(m[i][k]); v > max {
			best, max = i, v
		}
	}
	if max == 0 {
		return -1
	}
	return best
}

// eliminate performs one Gauss–Jordan step on column k: it pivots lhs and
// rhs together, normalizes column k, then eliminates row k from every
// other column of both matrices. It reports false if lhs has no usable
// pivot in column k, i.e. lhs is singular.
func eliminate(lhs, rhs *Mat4, k int) bool {
	p := pivot(lhs, k)
	if p < 0 {
		return false
	}
	lhs[k], lhs[p] = lhs[p], lhs[k]
	rhs[k], rhs[p] = rhs[p], rhs[k]

	norm := lhs[k][k]
	lhs[k] = lhs[k].DivScalar(norm)
	rhs[k] = rhs[k].DivScalar(norm)

	for i := 0; i < 4; i++ {
		if i == k {
			continue
		}
		mult := lhs[i][k]
		lhs[i] = FMSScalar(lhs[k], mult, lhs[i])
		rhs[i] = FMSScalar(rhs[k], mult, rhs[i])
	}
	return true
}
