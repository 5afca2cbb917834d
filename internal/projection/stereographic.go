package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Stereographic is preserved at parity with the original implementation,
// which is itself documented there as not geometrically exact.
type Stereographic struct {
	p            Params
	iHeight      int
	iWidth       int
	scale        float64
	scaledHeight float64
}

func NewStereographic(p Params) *Stereographic {
	return &Stereographic{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scale:        p.Scale,
		scaledHeight: float64(p.Slicing.Height) * p.Scale,
	}
}

func (s *Stereographic) Name() string { return "stereographic" }

func (s *Stereographic) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := s.p.Slicing.AbsoluteRow(s.p.SliceID, row)
	x := float64(2*col-s.iWidth) / s.scaledHeight
	y := float64(2*realH-s.iHeight) / s.scaledHeight
	z := x*x + y*y
	zz := 1 + 0.25*z
	x /= zz
	y /= zz
	z = (1 - 0.25*z) / zz
	return s.p.Center.ToWorld(x, y, z), true
}

func (s *Stereographic) SubdivisionDepth(int) uint8 {
	base := 3*int(math.Log2(s.scaledHeight)) + 6
	if s.scale < 1 {
		return uint8(base) + uint8(1.5/s.scale)
	}
	return uint8(base)
}
