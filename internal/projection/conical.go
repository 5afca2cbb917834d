package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Conical is the conformal conic projection (spec §4.3); its subdivision
// depth is constant across the image rather than varying per row.
type Conical struct {
	p            Params
	iHeight      int
	iWidth       int
	scaledHeight float64
	depth        uint8

	k1, c, y2 float64
}

func NewConical(p Params) *Conical {
	scaledHeight := float64(p.Slicing.Height) * p.Scale

	var depth int
	if p.Scale < 1 {
		depth = int(3*math.Log2(scaledHeight) + 6 + 1.5/p.Scale)
	} else {
		depth = 3*int(math.Log2(scaledHeight)) + 6
	}

	k1 := 1 / p.Center.LatSin
	c := k1 * k1
	y2 := math.Sqrt(c * (1 - math.Sin(p.Center.Latitude/k1)) / (1 + math.Sin(p.Center.Latitude/k1)))

	return &Conical{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scaledHeight: scaledHeight,
		depth:        uint8(depth),
		k1:           k1,
		c:            c,
		y2:           y2,
	}
}

func (co *Conical) Name() string { return "conical" }

func (co *Conical) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := co.p.Slicing.AbsoluteRow(co.p.SliceID, row)
	x := float64(2*col-co.iWidth) / co.scaledHeight
	y := float64(2*realH-co.iHeight)/co.scaledHeight + co.y2
	zz := x*x + y*y

	var theta1 float64
	if zz != 0 {
		theta1 = co.k1 * math.Atan2(x, y)
	}
	if theta1 < -pi || theta1 > pi {
		return geometry.Vertex{}, false
	}
	theta1 += co.p.Center.Longitude - 0.5*pi

	theta2 := co.k1 * math.Asin((zz-co.c)/(zz+co.c))
	if theta2 < -0.5*pi || theta2 > 0.5*pi {
		return geometry.Vertex{}, false
	}

	cos2 := math.Cos(theta2)
	yy := math.Sin(theta2)
	return geometry.NewVertex(math.Cos(theta1)*cos2, yy, -math.Sin(theta1)*cos2, 0, 0), true
}

func (co *Conical) SubdivisionDepth(int) uint8 { return co.depth }
