package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Mercator is the conformal cylindrical projection (spec §4.3).
type Mercator struct {
	p           Params
	iHeight     int
	fHeight     float64
	fWidth      float64
	scaledWidth float64
	k           int
}

// NewMercator builds a Mercator projector for the given slice.
func NewMercator(p Params) *Mercator {
	lat := p.Center.LatSin
	return &Mercator{
		p:           p,
		iHeight:     p.Slicing.Height,
		fHeight:     float64(p.Slicing.Height),
		fWidth:      float64(p.Slicing.Width),
		scaledWidth: float64(p.Slicing.Width) * p.Scale,
		k: int(0.25*math.Log((1+lat)/(1-lat))*
			float64(p.Slicing.Width)*p.Scale/pi + 0.5),
	}
}

func (m *Mercator) Name() string { return "mercator" }

func (m *Mercator) getY(row int) float64 {
	realH := m.p.Slicing.AbsoluteRow(m.p.SliceID, row)
	y := float64(2*(realH-m.k)-m.iHeight) * 2 * pi / m.scaledWidth
	y = math.Exp(y)
	return (y - 1) / (y + 1)
}

func (m *Mercator) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	y := m.getY(row)
	cos2 := math.Sqrt(1 - y*y)
	theta1 := m.p.Center.Longitude - 0.5*pi + pi*(2*float64(col)-m.fWidth)/m.scaledWidth
	return geometry.NewVertex(math.Cos(theta1)*cos2, y, -math.Sin(theta1)*cos2, 0, 0), true
}

func (m *Mercator) SubdivisionDepth(row int) uint8 {
	y := m.getY(row)
	cos2 := math.Sqrt(1 - y*y)
	scale1 := m.scaledWidth / (m.fHeight * cos2 * pi)
	return uint8(3*int(math.Log2(scale1*m.fHeight))) + 3
}
