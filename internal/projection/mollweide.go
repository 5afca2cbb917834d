package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Mollweide is the pseudocylindrical equal-area projection (spec §4.3).
type Mollweide struct {
	p           Params
	iHeight     int
	fHeight     float64
	width       int
	scaledWidth float64
}

func NewMollweide(p Params) *Mollweide {
	return &Mollweide{
		p:           p,
		iHeight:     p.Slicing.Height,
		fHeight:     float64(p.Slicing.Height),
		width:       p.Slicing.Width,
		scaledWidth: float64(p.Slicing.Width) * p.Scale,
	}
}

func (m *Mollweide) Name() string { return "mollweide" }

// ellipseLatitude solves Mollweide's transcendental y1->y relation and
// returns (y, zz, ok); ok is false outside the projected ellipse.
func (m *Mollweide) ellipseLatitude(row int) (y, zz float64, ok bool) {
	realH := m.p.Slicing.AbsoluteRow(m.p.SliceID, row)
	y1 := 2 * float64(2*realH-m.iHeight) / m.scaledWidth
	if math.Abs(y1) >= 1 {
		return 0, 0, false
	}
	zz = math.Sqrt(1 - y1*y1)
	y = 2 / pi * (y1*zz + math.Asin(y1))
	return y, zz, true
}

func (m *Mollweide) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	y, zz, ok := m.ellipseLatitude(row)
	if !ok {
		return geometry.Vertex{}, false
	}
	cos2 := math.Sqrt(1 - y*y)
	if cos2 <= 0 {
		return geometry.Vertex{}, false
	}
	theta1 := pi * float64(2*col-m.width) / (m.scaledWidth * zz)
	if math.Abs(theta1) > pi {
		return geometry.Vertex{}, false
	}
	theta1 += -0.5 * pi
	x2 := math.Cos(theta1) * cos2
	z2 := -math.Sin(theta1) * cos2
	return m.p.Center.ToWorld(x2, y, z2), true
}

func (m *Mollweide) SubdivisionDepth(row int) uint8 {
	y, _, ok := m.ellipseLatitude(row)
	if !ok {
		return 0
	}
	cos2 := math.Sqrt(1 - y*y)
	if cos2 <= 0 {
		return 0
	}
	scale1 := m.scaledWidth / (m.fHeight * cos2 * pi)
	return uint8(3*int(math.Log2(scale1*m.fHeight))) + 3
}
