package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Azimuthal is the Lambert azimuthal equal-area projection (spec §4.3).
type Azimuthal struct {
	p            Params
	iHeight      int
	iWidth       int
	scaledHeight float64
}

func NewAzimuthal(p Params) *Azimuthal {
	return &Azimuthal{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scaledHeight: float64(p.Slicing.Height) * p.Scale,
	}
}

func (az *Azimuthal) Name() string { return "azimuthal" }

func (az *Azimuthal) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := az.p.Slicing.AbsoluteRow(az.p.SliceID, row)
	x := float64(2*col-az.iWidth) / az.scaledHeight
	y := float64(2*realH-az.iHeight) / az.scaledHeight
	zz := x*x + y*y
	if zz > 4 {
		return geometry.Vertex{}, false
	}
	z := 1 - 0.5*zz
	zz = math.Sqrt(1 - 0.25*zz)
	x *= zz
	y *= zz
	return az.p.Center.ToWorld(x, y, z), true
}

func (az *Azimuthal) SubdivisionDepth(int) uint8 {
	return uint8(3*int(math.Log2(az.scaledHeight))) + 6
}
