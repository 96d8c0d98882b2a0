package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/nilac16/gammaray/distrib"
	"github.com/nilac16/gammaray/vecmat"
)

// readCube loads the minimal private fixture format this CLI uses to
// demonstrate the library end to end: three little-endian int32
// dimensions (nx, ny, nz) followed by nx*ny*nz little-endian float64
// values, row-major with x fastest. This format carries no
// conformance obligation from the core library — it exists only so
// gammacli has something to read.
func readCube(path string) (*distrib.Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gammacli: opening %s: %w", path, err)
	}
	defer f.Close()

	var dims [3]int32
	if err := binary.Read(f, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("gammacli: reading dims from %s: %w", path, err)
	}

	n := int(dims[0]) * int(dims[1]) * int(dims[2])
	if n < 0 {
		return nil, fmt.Errorf("gammacli: %s: negative voxel count from dims %v", path, dims)
	}
	data := make([]float64, n)
	if err := binary.Read(f, binary.LittleEndian, &data); err != nil && err != io.EOF {
		return nil, fmt.Errorf("gammacli: reading voxel data from %s: %w", path, err)
	}

	spec := distrib.AffineSpec{
		Direction: [3]vecmat.Vec4{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
		},
		Spacing: [3]float64{1, 1, 1},
		Origin:  vecmat.Vec4{0, 0, 0, 1},
	}
	return distrib.New(spec, dims, data)
}

// writeDist writes results.Dist back out in the same raw-float64
// format readCube expects, without the dimension header (the caller
// already knows the shape from the measured cube).
func writeDist(path string, dist []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gammacli: creating %s: %w", path, err)
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, dist)
}
