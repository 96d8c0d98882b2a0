// Package idx4 provides a 4-wide signed integer multi-index, used both
// as a discrete lattice coordinate and, via its comparison operators, as
// a component-wise boolean mask.
package idx4

// Idx4 is a 4-wide array of signed 32-bit integers. Comparison operators
// return an Idx4 mask: -1 (all bits set) per lane where the comparison
// holds, 0 where it does not.
type Idx4 [4]int32

const (
	maskTrue  int32 = -1
	maskFalse int32 = 0
)

func boolMask(b bool) int32 {
	if b {
		return maskTrue
	}
	return maskFalse
}

// Add returns the elementwise sum a+b.
func (a Idx4) Add(b Idx4) Idx4 {
	return Idx4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the elementwise difference a-b.
func (a Idx4) Sub(b Idx4) Idx4 {
	return Idx4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Or returns the elementwise bitwise-or of a and b.
func (a Idx4) Or(b Idx4) Idx4 {
	return Idx4{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

// And returns the elementwise bitwise-and of a and b.
func (a Idx4) And(b Idx4) Idx4 {
	return Idx4{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

// Lt returns the mask of a[l] < b[l].
func (a Idx4) Lt(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] < b[0]), boolMask(a[1] < b[1]), boolMask(a[2] < b[2]), boolMask(a[3] < b[3])}
}

// Leq returns the mask of a[l] <= b[l].
func (a Idx4) Leq(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] <= b[0]), boolMask(a[1] <= b[1]), boolMask(a[2] <= b[2]), boolMask(a[3] <= b[3])}
}

// Gt returns the mask of a[l] > b[l].
func (a Idx4) Gt(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] > b[0]), boolMask(a[1] > b[1]), boolMask(a[2] > b[2]), boolMask(a[3] > b[3])}
}

// Geq returns the mask of a[l] >= b[l].
func (a Idx4) Geq(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] >= b[0]), boolMask(a[1] >= b[1]), boolMask(a[2] >= b[2]), boolMask(a[3] >= b[3])}
}

// Eq returns the mask of a[l] == b[l].
func (a Idx4) Eq(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] == b[0]), boolMask(a[1] == b[1]), boolMask(a[2] == b[2]), boolMask(a[3] == b[3])}
}

// Neq returns the mask of a[l] != b[l].
func (a Idx4) Neq(b Idx4) Idx4 {
	return Idx4{boolMask(a[0] != b[0]), boolMask(a[1] != b[1]), boolMask(a[2] != b[2]), boolMask(a[3] != b[3])}
}

// Any reduces a by bitwise-or across its four lanes.
func (a Idx4) Any() int32 {
	return a[0] | a[1] | a[2] | a[3]
}

// All reduces a by bitwise-and across its four lanes.
func (a Idx4) All() int32 {
	return a[0] & a[1] & a[2] & a[3]
}

// HitTest returns a mask whose lane is nonzero iff x[l] < lo[l] or
// x[l] >= hi[l]. Callers that want a single in-bounds test check
// HitTest(x, lo, hi).Any() == 0.
func HitTest(x, lo, hi Idx4) Idx4 {
	below := x.Lt(lo)
	above := x.Geq(hi)
	return below.Or(above)
}
