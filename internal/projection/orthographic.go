package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Orthographic projects the visible hemisphere as seen from infinity
// (spec §4.3).
type Orthographic struct {
	p            Params
	iHeight      int
	iWidth       int
	scaledHeight float64
}

func NewOrthographic(p Params) *Orthographic {
	return &Orthographic{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scaledHeight: float64(p.Slicing.Height) * p.Scale,
	}
}

func (o *Orthographic) Name() string { return "orthographic" }

func (o *Orthographic) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := o.p.Slicing.AbsoluteRow(o.p.SliceID, row)
	x := float64(2*col-o.iWidth) / o.scaledHeight
	y := float64(2*realH-o.iHeight) / o.scaledHeight
	if x*x+y*y > 1 {
		return geometry.Vertex{}, false
	}
	z := math.Sqrt(1 - x*x - y*y)
	return o.p.Center.ToWorld(x, y, z), true
}

func (o *Orthographic) SubdivisionDepth(int) uint8 {
	return uint8(3*int(math.Log2(o.scaledHeight))) + 6
}
