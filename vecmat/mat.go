package vecmat

// Mat4 is a column-major 4×4 matrix: four Vec4 columns.
type Mat4 [4]Vec4

// Identity4 is the 4×4 identity matrix.
var Identity4 = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// MulVec returns the matrix-vector product m·v, computed as three fused
// multiply-adds accumulated over the columns of m.
func (m Mat4) MulVec(v Vec4) Vec4 {
	res := m[0].MulScalar(v[0])
	res = FMAScalar(m[1], v[1], res)
	res = FMAScalar(m[2], v[2], res)
	res = FMAScalar(m[3], v[3], res)
	return res
}
