// Package deltamap loads the optional 60x30 external altitude map the
// recursive subdivision step samples from when an edge is too long to trust
// interpolation (spec §4.4.2 step 3), and exposes the lat/long lookup that
// indexes into it.
package deltamap

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/image/bmp"
)

const (
	Width  = 60
	Height = 30
)

var (
	ErrMapIO      = errors.New("deltamap: io error")
	ErrMapDecode  = errors.New("deltamap: decode error")
	ErrMapSize    = errors.New("deltamap: must be 60x30")
)

// Map is the dense 60x30 integer lookup table (spec's "external 60×30
// integer map").
type Map struct {
	values [Width][Height]int32
}

// Load reads a BMP-encoded delta map: the one raster container this module
// both reads and writes (spec §6), each pixel's blue channel giving the
// 0-80 integer spec §4.4.2 step 3 divides by 80.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapIO, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != Width || bounds.Dy() != Height {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMapSize, bounds.Dx(), bounds.Dy())
	}

	m := &Map{}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			_, _, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			m.values[x][y] = int32(b >> 8)
		}
	}
	return m, nil
}

// Sample looks up the altitude (already divided by 80) for a point on the
// unit sphere, per spec §4.4.2 step 3's index formula.
func (m *Map) Sample(x, y, z float64) float64 {
	xx := math.Atan2(x, z)*23.5/math.Pi + 23.5
	l := math.Sqrt(x*x + y*y + z*z)
	yy := math.Asin(y/l)*23.0/math.Pi + 11.5

	ix := clampIndex(int(math.Floor(xx+0.5)), Width)
	iy := clampIndex(int(math.Floor(yy+0.5)), Height)

	return float64(m.values[ix][iy]) / 80.0
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
