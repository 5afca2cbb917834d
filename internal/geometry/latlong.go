package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LatLong is a latitude/longitude pair (radians) with its trig cached, since
// every projection re-derives a tangent-plane rotation from the same four
// values on every pixel of a row (spec §3's LatLong glossary entry).
type LatLong struct {
	Latitude, Longitude     float64
	LatSin, LatCos          float64
	LongSin, LongCos        float64
}

// NewLatLong builds a LatLong with its trig cache populated.
func NewLatLong(lat, long float64) LatLong {
	return LatLong{
		Latitude:  lat,
		Longitude: long,
		LatSin:    math.Sin(lat),
		LatCos:    math.Cos(lat),
		LongSin:   math.Sin(long),
		LongCos:   math.Cos(long),
	}
}

// RotationMatrix returns the 3x3 rotation that carries a tangent-plane point
// at this center into world coordinates (spec §4.3's shared helper).
func (c LatLong) RotationMatrix() mgl64.Mat3 {
	return mgl64.Mat3{
		c.LongCos, 0, -c.LongSin,
		c.LongSin * c.LatSin, c.LatCos, c.LongCos * c.LatSin,
		c.LongSin * c.LatCos, -c.LatSin, c.LongCos * c.LatCos,
	}
}

// ToWorld rotates a tangent-plane point (x, y, z) at this center into a world
// Vertex on the unit sphere.
func (c LatLong) ToWorld(x, y, z float64) Vertex {
	v := c.RotationMatrix().Mul3x1(mgl64.Vec3{x, y, z})
	return NewVertex(v.X(), v.Y(), v.Z(), 0, 0)
}
