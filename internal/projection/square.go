package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Square is the plain equirectangular projection (spec §4.3).
type Square struct {
	p           Params
	iHeight     int
	fHeight     float64
	width       int
	fWidth      float64
	scaledWidth float64
	k           int
}

func NewSquare(p Params) *Square {
	return &Square{
		p:           p,
		iHeight:     p.Slicing.Height,
		fHeight:     float64(p.Slicing.Height),
		width:       p.Slicing.Width,
		fWidth:      float64(p.Slicing.Width),
		scaledWidth: float64(p.Slicing.Width) * p.Scale,
		k:           int(0.5 + 0.5*p.Center.Latitude*float64(p.Slicing.Width)*p.Scale/pi),
	}
}

func (s *Square) Name() string { return "square" }

func (s *Square) angle(row int) (y float64, ok bool) {
	realH := s.p.Slicing.AbsoluteRow(s.p.SliceID, row)
	y = float64(2*(realH-s.k)-s.iHeight) / s.scaledWidth * pi
	if 2*math.Abs(y) > pi {
		return 0, false
	}
	return y, true
}

func (s *Square) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	y, ok := s.angle(row)
	if !ok {
		return geometry.Vertex{}, false
	}
	cos2 := math.Cos(y)
	if cos2 <= 0 {
		return geometry.Vertex{}, false
	}
	theta1 := s.p.Center.Longitude - 0.5*pi + pi*float64(2*col-s.width)/s.scaledWidth
	return geometry.NewVertex(math.Cos(theta1)*cos2, math.Sin(y), -math.Sin(theta1)*cos2, 0, 0), true
}

func (s *Square) SubdivisionDepth(row int) uint8 {
	y, ok := s.angle(row)
	if !ok {
		return 0
	}
	cos2 := math.Cos(y)
	if cos2 <= 0 {
		return 0
	}
	scale1 := s.scaledWidth / (s.fHeight * cos2 * pi)
	return uint8(3*int(math.Log2(scale1*s.fHeight))) + 3
}
