package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Gnomonic projects from the sphere's center onto a tangent plane
// (spec §4.3); great circles become straight lines.
type Gnomonic struct {
	p            Params
	iHeight      int
	iWidth       int
	scale        float64
	scaledHeight float64
}

func NewGnomonic(p Params) *Gnomonic {
	return &Gnomonic{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scale:        p.Scale,
		scaledHeight: float64(p.Slicing.Height) * p.Scale,
	}
}

func (g *Gnomonic) Name() string { return "gnomonic" }

func (g *Gnomonic) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := g.p.Slicing.AbsoluteRow(g.p.SliceID, row)
	x := float64(2*col-g.iWidth) / g.scaledHeight
	y := float64(2*realH-g.iHeight) / g.scaledHeight
	zz := math.Sqrt(1 / (1 + x*x + y*y))
	x *= zz
	y *= zz
	z := math.Sqrt(1 - x*x - y*y)
	return g.p.Center.ToWorld(x, y, z), true
}

func (g *Gnomonic) SubdivisionDepth(int) uint8 {
	if g.scale < 1 {
		return uint8(3*math.Log2(g.scaledHeight) + 6 + 1.5/g.scale)
	}
	return uint8(3*int(math.Log2(g.scaledHeight))) + 6
}
