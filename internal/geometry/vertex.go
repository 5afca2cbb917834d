// Package geometry implements the spherical and tetrahedral primitives the
// terrain engine recurses over: vertices carrying altitude/seed/rain-shadow
// state, tetrahedra, the longest-edge canonicalization table, and the
// point-in-tetrahedron test used by the altitude engine's path cache.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a point in R3 (on the unit sphere for queries, at a base
// tetrahedron corner for the seed) carrying the scalar fields the
// subdivision algorithm threads through recursion.
type Vertex struct {
	Pos        mgl64.Vec3
	Altitude   float64
	Seed       float64
	RainShadow float64
}

// NewVertex builds a vertex from raw coordinates.
func NewVertex(x, y, z, altitude, seed float64) Vertex {
	return Vertex{Pos: mgl64.Vec3{x, y, z}, Altitude: altitude, Seed: seed}
}

// DistSq returns the squared Euclidean distance between two vertices'
// positions. Used pervasively instead of Dist: the spec's displacement
// formula works in squared-distance space and a sqrt is only taken where
// the spec explicitly calls for one (long-edge damping).
func DistSq(a, b Vertex) float64 {
	d := a.Pos.Sub(b.Pos)
	return d.Dot(d)
}

// Midpoint returns the vertex at parameter t along the segment a->b
// (t=0 is a, t=1 is b), interpolating every scalar field linearly.
func Midpoint(a, b Vertex, t float64) Vertex {
	return Vertex{
		Pos:        a.Pos.Mul(1 - t).Add(b.Pos.Mul(t)),
		Altitude:   a.Altitude*(1-t) + b.Altitude*t,
		Seed:       a.Seed*(1-t) + b.Seed*t,
		RainShadow: a.RainShadow*(1-t) + b.RainShadow*t,
	}
}
