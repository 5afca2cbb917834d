package projection

import (
	"math"

	"landgen/internal/geometry"
)

// Icosahedral unfolds a Fuller-style icosahedral net (spec §4.3). The two
// latitude constants below are the values the original carries instead of
// their theoretical counterparts (10.9715145571469 and -48.3100310579607);
// kept at parity since the net's panel boundaries are tuned to them.
type Icosahedral struct {
	p            Params
	iHeight      int
	iWidth       int
	scaledHeight float64
	scaledWidth  float64
	sq3          float64
	l1, l2, s    float64
}

func NewIcosahedral(p Params) *Icosahedral {
	return &Icosahedral{
		p:            p,
		iHeight:      p.Slicing.Height,
		iWidth:       p.Slicing.Width,
		scaledHeight: float64(p.Slicing.Height) * p.Scale,
		scaledWidth:  float64(p.Slicing.Width) * p.Scale,
		sq3:          math.Sqrt(3),
		l1:           10.812317,
		l2:           -52.622632,
		s:            55.6,
	}
}

func (ic *Icosahedral) Name() string { return "icosahedral" }

const degPerRad = 180 / pi

// panel resolves the (lat, long) in degrees of the icosahedral panel a
// tangent-space point falls in, or lat=500 if it falls in a gap between
// panels.
func (ic *Icosahedral) panel(x0, y3 float64) (lat, long float64) {
	l1, l2 := ic.l1, ic.l2
	switch {
	case y3 < -18.0:
		a, b := x0-y3, x0+y3
		switch {
		case a < 144.0 && b >= 36.0:
			return -l2, 90.0
		case a < 72.0 && b >= -36.0:
			return -l2, 18.0
		case a < 0.0 && b >= -108.0:
			return -l2, -54.0
		case a < -72.0 && b >= -180.0:
			return -l2, -126.0
		case a < -144.0 && b >= -252.0:
			return -l2, -198.0
		default:
			return 500.0, 0.0
		}
	case y3 <= 18.0:
		a, b := x0-y3, x0+y3
		switch {
		case a < 144.0 && b >= 108.0:
			return -l1, 126.0
		case a < 72.0 && b >= 36.0:
			return -l1, 54.0
		case a < 0.0 && b >= -36.0:
			return -l1, -18.0
		case a < -72.0 && b >= -108.0:
			return -l1, -90.0
		case a < -144.0 && b >= -180.0:
			return -l1, -162.0
		case a >= 72.0 && b < 108.0:
			return l1, 90.0
		case a >= 0.0 && b < 36.0:
			return l1, 18.0
		case a >= -72.0 && b < -36.0:
			return l1, -54.0
		case a >= -144.0 && b < -108.0:
			return l1, -126.0
		case a >= -216.0 && b < -180.0:
			return l1, -198.0
		default:
			return 500.0, 0.0
		}
	default:
		a, b := x0+y3, x0-y3
		switch {
		case a < 180.0 && b >= 72.0:
			return l2, 126.0
		case a < 108.0 && b >= 0.0:
			return l2, 54.0
		case a < 36.0 && b >= -72.0:
			return l2, -18.0
		case a < -36.0 && b >= -144.0:
			return l2, -90.0
		case a < -108.0 && b >= -216.0:
			return l2, -162.0
		default:
			return 500.0, 0.0
		}
	}
}

func (ic *Icosahedral) PixelToCoordinate(row, col int) (geometry.Vertex, bool) {
	realH := ic.p.Slicing.AbsoluteRow(ic.p.SliceID, row)
	x0 := 198.0*float64(2*col-ic.iWidth)/ic.scaledWidth - 36.0
	y0 := 198.0*float64(2*realH-ic.iHeight)/ic.scaledWidth - ic.p.Center.Latitude*degPerRad

	y3 := y0 / ic.sq3
	lat, long := ic.panel(x0, y3)
	if lat > 400.0 {
		return geometry.Vertex{}, false
	}

	x := (x0 - long) / ic.s
	y := (y0 + lat) / ic.s

	center := geometry.NewLatLong(lat/degPerRad, long/degPerRad-ic.p.Center.Longitude)

	zz := math.Sqrt(1 / (1 + x*x + y*y))
	x *= zz
	y *= zz
	z := math.Sqrt(1 - x*x - y*y)
	return center.ToWorld(x, y, z), true
}

func (ic *Icosahedral) SubdivisionDepth(int) uint8 {
	return uint8(3*int(math.Log2(ic.scaledHeight))) + 6
}
