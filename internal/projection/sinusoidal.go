package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Sinusoidal is preserved exactly as documented upstream: known-wrong at
// non-unit magnification (spec's open question (a)), kept at parity rather
// than "fixed" so behavior stays reproducible for existing seeds.
type Sinusoidal struct {
	p           Params
	iHeight     int
	fHeight     float64
	width       int
	fWidth      float64
	scale       float64
	scaledWidth float64
	k           int
}

func NewSinusoidal(p Params) *Sinusoidal {
	return &Sinusoidal{
		p:           p,
		iHeight:     p.Slicing.Height,
		fHeight:     float64(p.Slicing.Height),
		width:       p.Slicing.Width,
		fWidth:      float64(p.Slicing.Width),
		scale:       p.Scale,
		scaledWidth: float64(p.Slicing.Width) * p.Scale,
		k:           int(p.Center.Latitude*float64(p.Slicing.Width)*p.Scale/pi + 0.5),
	}
}

func (s *Sinusoidal) Name() string { return "sinusoidal" }

func (s *Sinusoidal) angle(row int) (y float64, ok bool) {
	realH := s.p.Slicing.AbsoluteRow(s.p.SliceID, row)
	y = float64(2*(realH-s.k)-s.iHeight) / s.scaledWidth * pi
	if 2*math.Abs(y) > pi {
		return 0, false
	}
	return y, true
}

func (s *Sinusoidal) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	y, ok := s.angle(row)
	if !ok {
		return geometry.Vertex{}, false
	}
	cos2 := math.Cos(y)
	if cos2 <= 0 {
		return geometry.Vertex{}, false
	}
	l := float64(12*col) / (s.fWidth * s.scale)
	l1 := l * s.fWidth * s.scale / 12
	theta2 := s.p.Center.Longitude - 0.5*pi + pi*(2*l1-s.fWidth)/s.scaledWidth
	theta1 := pi * (2*float64(col) - s.fWidth*s.scale/12) / (s.scaledWidth * cos2)
	if math.Abs(theta1) > pi {
		return geometry.Vertex{}, false
	}
	total := theta1 + theta2
	return geometry.NewVertex(math.Cos(total)*cos2, math.Sin(y), -math.Sin(total)*cos2, 0, 0), true
}

func (s *Sinusoidal) SubdivisionDepth(row int) uint8 {
	y, ok := s.angle(row)
	if !ok {
		return 0
	}
	cos2 := math.Cos(y)
	if cos2 <= 0 {
		return 0
	}
	scale1 := s.scale * s.fWidth / (s.fHeight * cos2 * pi)
	return uint8(3*int(math.Log2(scale1*s.fHeight))) + 3
}
