package terrain

import (
	"math"

	"landgen/internal/geometry"
	"landgen/internal/mathutil"
)

// sqrt3 plus small per-vertex epsilons, so no two edges of the base
// tetrahedron are ever exactly equal in length (spec §3's base tetrahedron).
var sqrt3 = math.Sqrt(3)

// Seeds derives the four base-tetrahedron corner seeds from a single user
// seed (spec §3: ss1 = rand(s,s); ss2 = rand(ss1,ss1); ss3 = rand(ss1,ss2);
// ss4 = rand(ss2,ss3)).
type Seeds struct{ SS1, SS2, SS3, SS4 float64 }

func DeriveSeeds(seed float64) Seeds {
	ss1 := mathutil.Rand(seed, seed)
	ss2 := mathutil.Rand(ss1, ss1)
	ss3 := mathutil.Rand(ss1, ss2)
	ss4 := mathutil.Rand(ss2, ss3)
	return Seeds{ss1, ss2, ss3, ss4}
}

// NewBaseTetra builds the render's root tetrahedron: four vertices near
// (±√3, ±√3, ±√3) with small symmetry-breaking epsilons, seeded from the
// user seed and carrying the user's initial altitude.
func NewBaseTetra(seed, initialAltitude float64) geometry.Tetra {
	s := DeriveSeeds(seed)
	mk := func(x, y, z, vseed float64) geometry.Vertex {
		return geometry.NewVertex(x, y, z, initialAltitude, vseed)
	}
	return geometry.Tetra{
		A: mk(-sqrt3-0.20, -sqrt3-0.22, -sqrt3-0.23, s.SS1),
		B: mk(-sqrt3-0.19, sqrt3+0.18, sqrt3+0.17, s.SS2),
		C: mk(sqrt3+0.21, -sqrt3-0.24, sqrt3+0.15, s.SS3),
		D: mk(sqrt3+0.24, sqrt3+0.22, -sqrt3-0.25, s.SS4),
	}
}
