// Package distrib implements the affine-embedded 3D scalar field: a
// dense dose (or any scalar) cube together with the pixel→physical
// transform that locates it in space, trilinear interpolation, and a
// single sequential voxel iterator that higher layers partition for
// parallel work.
package distrib

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/nilac16/gammaray/idx4"
	"github.com/nilac16/gammaray/interp4"
	"github.com/nilac16/gammaray/vecmat"
)

// ErrSingularMatrix is returned by New when the composed affine matrix
// has no inverse.
var ErrSingularMatrix = fmt.Errorf("distrib: singular affine matrix: %w", vecmat.ErrSingular)

// ErrShape is returned by New when data is too short for the given
// dimensions.
var ErrShape = errors.New("distrib: data shorter than nx*ny*nz")

// sentinel is forced into the unused fourth lane of dims so that
// HitTest's comparison against the homogeneous coordinate never trips.
const sentinel = math.MaxInt32

// AffineSpec describes the pixel→physical transform as 3×3 direction
// cosines, a spacing vector, and an origin, the shape spec.md's
// construction contract names explicitly. New composes these into the
// embedded 4×4 matrix.
type AffineSpec struct {
	// Direction holds the three unit direction-cosine columns; only
	// lanes 0-2 of each are read.
	Direction [3]vecmat.Vec4
	Spacing   [3]float64
	// Origin's homogeneous lane is ignored; New forces it to 1.
	Origin vecmat.Vec4
}

func (a AffineSpec) matrix() vecmat.Mat4 {
	var m vecmat.Mat4
	for k := 0; k < 3; k++ {
		col := a.Direction[k].MulScalar(a.Spacing[k])
		col[3] = 0
		m[k] = col
	}
	m[3] = vecmat.Vec4{a.Origin[0], a.Origin[1], a.Origin[2], 1}
	return m
}

// Distribution is a 3D scalar field embedded in ℝ³ via an affine
// pixel→physical transform. Distribution does not own data's backing
// array; the caller must keep it alive for the Distribution's lifetime.
type Distribution struct {
	matrix  vecmat.Mat4
	inverse vecmat.Mat4
	dims    idx4.Idx4
	length  int
	max     float64
	data    []float64
}

// New constructs a Distribution over data, a dense nx·ny·nz row-major
// cube (x fastest, then y, then z). It fails with ErrSingularMatrix if
// the composed affine matrix is not invertible, or ErrShape if data is
// too short for dims; in either case no Distribution is returned and
// no partial state is left behind.
func New(spec AffineSpec, dims [3]int32, data []float64) (*Distribution, error) {
	n := int(dims[0]) * int(dims[1]) * int(dims[2])
	if n < 0 || len(data) < n {
		return nil, ErrShape
	}

	m := spec.matrix()
	inv, err := vecmat.Invert(m)
	if err != nil {
		return nil, ErrSingularMatrix
	}

	max := math.Inf(-1)
	for _, v := range data[:n] {
		if v > max {
			max = v
		}
	}

	return &Distribution{
		matrix:  m,
		inverse: inv,
		dims:    idx4.Idx4{dims[0], dims[1], dims[2], sentinel},
		length:  n,
		max:     max,
		data:    data,
	}, nil
}

// Max returns the cached maximum value over the cube.
func (d *Distribution) Max() float64 { return d.max }

// Len returns nx*ny*nz.
func (d *Distribution) Len() int { return d.length }

func (d *Distribution) linear(idx idx4.Idx4) int {
	return int(idx[0]) + int(d.dims[0])*(int(idx[1])+int(d.dims[1])*int(idx[2]))
}

// At returns the voxel value at idx, or zero if idx lies outside
// [0, dims) in any lane. At never panics on out-of-range input.
func (d *Distribution) At(idx idx4.Idx4) float64 {
	zero := idx4.Idx4{}
	if idx4.HitTest(idx, zero, d.dims).Any() != 0 {
		return 0
	}
	return d.data[d.linear(idx)]
}

// Interp returns the trilinearly interpolated value of the field at the
// physical coordinate pos. Corners that fall outside the sampled volume
// contribute zero (zero-extension), matching the physical interpretation
// that no dose exists there.
func (d *Distribution) Interp(pos vecmat.Vec4) float64 {
	v := d.inverse.MulVec(pos)

	lat := idx4.Idx4{
		int32(math.Trunc(v[0])),
		int32(math.Trunc(v[1])),
		int32(math.Trunc(v[2])),
		1,
	}
	frac := vecmat.Vec4{
		v[0] - float64(lat[0]),
		v[1] - float64(lat[1]),
		v[2] - float64(lat[2]),
		0,
	}

	var c interp4.Corners
	offsets := [8]idx4.Idx4{
		{0, 0, 0, 0}, {1, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0},
		{0, 0, 1, 0}, {1, 0, 1, 0}, {0, 1, 1, 0}, {1, 1, 1, 0},
	}
	for i, off := range offsets {
		c[i] = d.At(lat.Add(off))
	}
	return interp4.EvalSingle(c, frac)
}

// VoxelFunc is called once per voxel of a ForEach iteration with the
// voxel's physical coordinates, its dose value, and its linear index
// into the cube's data slice.
type VoxelFunc func(pos vecmat.Vec4, dose float64, linear int)

// ForEach sequentially visits every voxel (i,j,k), k outermost, j
// middle, i innermost, invoking fn with the physical position
// matrix·(i,j,k,1), the voxel's stored value, and its linear index.
// Iteration order among voxels is not itself a guarantee callers may
// depend on; it is fixed here only so that ForEach is deterministic
// and so that parallel callers can partition by linear index ranges.
//
// ctx is polled once per voxel; if it is done, ForEach stops and
// returns ctx.Err(), having already invoked fn for every voxel visited
// so far.
func (d *Distribution) ForEach(ctx context.Context, fn VoxelFunc) error {
	nx, ny, nz := int(d.dims[0]), int(d.dims[1]), int(d.dims[2])
	n := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				pos := d.matrix.MulVec(vecmat.Vec4{float64(i), float64(j), float64(k), 1})
				fn(pos, d.data[n], n)
				n++
			}
		}
	}
	return nil
}

// ForEachRange is like ForEach but restricted to the half-open linear
// index range [lo, hi). gammaindex.Compute uses this to partition the
// voxel space across workers without duplicating the coordinate
// arithmetic of ForEach.
func (d *Distribution) ForEachRange(ctx context.Context, lo, hi int, fn VoxelFunc) error {
	nx, ny := int(d.dims[0]), int(d.dims[1])
	for n := lo; n < hi; n++ {
		if n%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		i := n % nx
		j := (n / nx) % ny
		k := n / (nx * ny)
		pos := d.matrix.MulVec(vecmat.Vec4{float64(i), float64(j), float64(k), 1})
		fn(pos, d.data[n], n)
	}
	return nil
}
