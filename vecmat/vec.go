// Package vecmat provides the fixed 4-wide vector and 4×4 matrix algebra
// that the gamma-index core is built on: elementwise arithmetic, fused
// multiply-add/subtract, and an in-place Gauss–Jordan inverse.
//
// Vec4 and Mat4 are plain fixed-size arrays. The reference implementation
// this package is ported from aligns its vector type to 4×sizeof(double)
// to invite auto-vectorization; Go has no portable equivalent of alignas,
// so that hint is dropped here without changing any observable behavior.
package vecmat

// Vec4 is a 4-wide vector of Scalars.
type Vec4 [4]float64

// Add returns the elementwise sum a+b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the elementwise difference a-b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the elementwise product a*b.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns the elementwise quotient a/b.
func (a Vec4) Div(b Vec4) Vec4 {
	return Vec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// MulScalar returns a scaled elementwise by s.
func (a Vec4) MulScalar(s float64) Vec4 {
	return Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// DivScalar returns a divided elementwise by s.
func (a Vec4) DivScalar(s float64) Vec4 {
	return Vec4{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// FMA returns the fused multiply-add c + a*b, elementwise.
func FMA(a, b, c Vec4) Vec4 {
	return Vec4{
		c[0] + a[0]*b[0],
		c[1] + a[1]*b[1],
		c[2] + a[2]*b[2],
		c[3] + a[3]*b[3],
	}
}

// FMS returns the fused multiply-subtract c - a*b, elementwise.
func FMS(a, b, c Vec4) Vec4 {
	return Vec4{
		c[0] - a[0]*b[0],
		c[1] - a[1]*b[1],
		c[2] - a[2]*b[2],
		c[3] - a[3]*b[3],
	}
}

// FMAScalar returns the fused multiply-add c + a*b where b is a scalar.
func FMAScalar(a Vec4, b float64, c Vec4) Vec4 {
	return Vec4{
		c[0] + a[0]*b,
		c[1] + a[1]*b,
		c[2] + a[2]*b,
		c[3] + a[3]*b,
	}
}

// FMSScalar returns the fused multiply-subtract c - a*b where b is a scalar.
func FMSScalar(a Vec4, b float64, c Vec4) Vec4 {
	return Vec4{
		c[0] - a[0]*b,
		c[1] - a[1]*b,
		c[2] - a[2]*b,
		c[3] - a[3]*b,
	}
}

// Dot returns the dot product of a and b over all four lanes.
func Dot(a, b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross returns the 3-component cross product of a and b. The fourth
// lane of the result is always zero.
func Cross(a, b Vec4) Vec4 {
	return Vec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}
