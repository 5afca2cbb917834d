package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Peters is the equal-area cylindrical projection (spec §4.3).
type Peters struct {
	p           Params
	iHeight     int
	fHeight     float64
	fWidth      float64
	scaledWidth float64
	k           int
}

func NewPeters(p Params) *Peters {
	y := 2 * p.Center.LatSin
	return &Peters{
		p:           p,
		iHeight:     p.Slicing.Height,
		fHeight:     float64(p.Slicing.Height),
		fWidth:      float64(p.Slicing.Width),
		scaledWidth: float64(p.Slicing.Width) * p.Scale,
		k:           int(0.5*y*float64(p.Slicing.Width)*p.Scale/pi + 0.5),
	}
}

func (pr *Peters) Name() string { return "peters" }

func (pr *Peters) latY(row int) float64 {
	realH := pr.p.Slicing.AbsoluteRow(pr.p.SliceID, row)
	return 0.5 * pi * float64(2*(realH-pr.k)-pr.iHeight) / pr.scaledWidth
}

func (pr *Peters) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	y := pr.latY(row)
	if math.Abs(y) > 1 {
		return geometry.Vertex{}, false
	}
	cos2 := math.Sqrt(1 - y*y)
	if cos2 <= 0 {
		return geometry.Vertex{}, false
	}
	theta := pr.p.Center.Longitude - 0.5*pi + pi*(2*float64(col)-pr.fWidth)/pr.scaledWidth
	return geometry.NewVertex(math.Cos(theta)*cos2, y, -math.Sin(theta)*cos2, 0, 0), true
}

func (pr *Peters) SubdivisionDepth(row int) uint8 {
	y := pr.latY(row)
	cos2 := math.Sqrt(1 - y*y)
	scale1 := pr.scaledWidth / (pr.fHeight * cos2 * pi)
	return uint8(3*int(math.Log2(scale1*pr.fHeight))) + 3
}
