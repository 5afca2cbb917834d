// Package terrain implements the recursive midpoint-displacement altitude
// field (spec §4.4): a deterministic tetrahedral subdivision of the unit
// sphere, with a per-worker path cache that amortizes nearby queries.
package terrain

import (
	"math"

	"landgen/internal/config"
	"landgen/internal/deltamap"
	"landgen/internal/geometry"
	"landgen/internal/mathutil"
)

// distancePower is the fixed exponent p_dist on the edge-length contribution
// to midpoint displacement (spec §4.4.2 step 3); unlike w_alt/p_alt it has
// no "wrinkly" variant.
const distancePower = 0.47

// Engine holds the render-wide immutable terrain configuration: the base
// tetrahedron, displacement weights, and the optional delta map. One Engine
// is shared read-only by every worker; each worker owns its own State.
type Engine struct {
	BaseTetra geometry.Tetra

	AltitudeWeight, AltitudeExponent float64
	DistanceWeight                   float64

	Shading        config.ShadingLevel
	LightLongitude float64
	LightLatitude  float64

	Rainfall, Biomes bool

	DeltaMap       *deltamap.Map
	DeltaThreshold float64
}

// NewEngine builds the shared Engine from render options and a derived
// base tetrahedron (spec §3's seed derivation feeds BaseTetra).
func NewEngine(opts *config.Options, baseTetra geometry.Tetra, dm *deltamap.Map) *Engine {
	wAlt, pAlt := opts.WrinklyWeights()
	return &Engine{
		BaseTetra:       baseTetra,
		AltitudeWeight:  wAlt,
		AltitudeExponent: pAlt,
		DistanceWeight:  opts.DistanceWeight,
		Shading:         opts.Shading,
		LightLongitude:  opts.LightLongitude,
		LightLatitude:   opts.LightLatitude,
		Rainfall:        opts.Rainfall,
		Biomes:          opts.Biomes,
		DeltaMap:        dm,
		DeltaThreshold:  opts.DeltaMapThreshold,
	}
}

// State is one worker's mutable terrain-query state: its path cache and the
// shading/rain-shadow values its last Altitude call produced (spec §5:
// "Mutable, per-worker exclusive").
type State struct {
	engine *Engine

	cachedTetra geometry.Tetra
	hasCached   bool

	RainShadow float64
	Shade      uint8
}

// NewState creates a worker-local terrain query state against the shared
// Engine.
func NewState(e *Engine) *State {
	return &State{engine: e}
}

// BaseTetraCopy returns the render-wide base tetrahedron (used by callers that
// need to seed projection-independent bookkeeping).
func (e *Engine) BaseTetraCopy() geometry.Tetra { return e.BaseTetra }

func sideCheck(s1, s2, s3, s4 geometry.Vertex) bool {
	return geometry.TripleProduct(s1, s2, s3)*geometry.TripleProduct(s4, s2, s3) > 0
}

// Altitude evaluates the subdivision field at sphere point p, starting from
// startingDepth recursion levels (the projection's per-row recommendation),
// mutating s.RainShadow and s.Shade as a side effect (spec §4.4's
// calc_altitude contract).
func (s *State) Altitude(p geometry.Vertex, startingDepth uint8) float64 {
	tetra := s.engine.BaseTetra
	depth := int(startingDepth)
	if s.hasCached && geometry.ExistsWithin(s.cachedTetra, p) {
		tetra = s.cachedTetra
		depth = int(startingDepth) - 5
	}

	var e geometry.Vertex
	for depth > 0 {
		for tetra.LongestEdge() != 0 {
			tetra = tetra.Canonicalize()
		}

		lab := geometry.DistSq(tetra.A, tetra.B)

		if depth == int(startingDepth)-5 {
			s.cachedTetra = tetra
			s.hasCached = true
		}

		eSeed := mathutil.Rand(tetra.A.Seed, tetra.B.Seed)
		es1 := mathutil.Rand(eSeed, eSeed)
		es2 := 0.5 + 0.1*mathutil.Rand(es1, es1)
		es3 := 1 - es2

		var ex, ey, ez float64
		switch {
		case tetra.A.Seed < tetra.B.Seed:
			ex = es2*tetra.A.Pos.X() + es3*tetra.B.Pos.X()
			ey = es2*tetra.A.Pos.Y() + es3*tetra.B.Pos.Y()
			ez = es2*tetra.A.Pos.Z() + es3*tetra.B.Pos.Z()
		case tetra.A.Seed > tetra.B.Seed:
			ex = es3*tetra.A.Pos.X() + es2*tetra.B.Pos.X()
			ey = es3*tetra.A.Pos.Y() + es2*tetra.B.Pos.Y()
			ez = es3*tetra.A.Pos.Z() + es2*tetra.B.Pos.Z()
		default:
			ex = 0.5 * (tetra.A.Pos.X() + tetra.B.Pos.X())
			ey = 0.5 * (tetra.A.Pos.Y() + tetra.B.Pos.Y())
			ez = 0.5 * (tetra.A.Pos.Z() + tetra.B.Pos.Z())
		}

		var altitude float64
		if s.engine.DeltaMap != nil && lab > s.engine.DeltaThreshold {
			altitude = s.engine.DeltaMap.Sample(ex, ey, ez)
		} else {
			l := lab
			if l > 1.0 {
				l = math.Sqrt(l)
			}
			altitude = 0.5*(tetra.A.Altitude+tetra.B.Altitude) +
				eSeed*s.engine.AltitudeWeight*math.Pow(math.Abs(tetra.A.Altitude-tetra.B.Altitude), s.engine.AltitudeExponent) +
				es1*s.engine.DistanceWeight*math.Pow(l, distancePower)
		}

		var rainShadow float64
		if altitude <= 0 || !(s.engine.Rainfall || s.engine.Biomes) {
			rainShadow = 0
		} else {
			x1 := 0.5 * (tetra.A.Pos.X() + tetra.B.Pos.X())
			x1 = tetra.A.Altitude*(x1-tetra.A.Pos.X()) + tetra.B.Altitude*(x1-tetra.B.Pos.X())
			y1 := 0.5 * (tetra.A.Pos.Y() + tetra.B.Pos.Y())
			y1 = tetra.A.Altitude*(y1-tetra.A.Pos.Y()) + tetra.B.Altitude*(y1-tetra.B.Pos.Y())
			z1 := 0.5 * (tetra.A.Pos.Z() + tetra.B.Pos.Z())
			z1 = tetra.A.Altitude*(z1-tetra.A.Pos.Z()) + tetra.B.Altitude*(z1-tetra.B.Pos.Z())
			l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
			if l1 == 0 {
				l1 = 1
			}
			tmp := math.Sqrt(1 - p.Pos.Y()*p.Pos.Y())
			if tmp < 0.0001 {
				tmp = 0.0001
			}
			z2 := (p.Pos.X()*z1 - p.Pos.Z()*x1) / tmp
			if lab > 0.04 {
				rainShadow = (tetra.A.RainShadow + tetra.B.RainShadow - math.Cos(math.Pi*s.engine.LightLongitude/180)*z2/l1) / 3.0
			} else {
				rainShadow = (tetra.A.RainShadow + tetra.B.RainShadow) / 2.0
			}
		}

		e = geometry.NewVertex(ex, ey, ez, altitude, eSeed)
		e.RainShadow = rainShadow

		ea := geometry.NewVertex(tetra.A.Pos.X()-ex, tetra.A.Pos.Y()-ey, tetra.A.Pos.Z()-ez, 0, 0)
		ec := geometry.NewVertex(tetra.C.Pos.X()-ex, tetra.C.Pos.Y()-ey, tetra.C.Pos.Z()-ez, 0, 0)
		ed := geometry.NewVertex(tetra.D.Pos.X()-ex, tetra.D.Pos.Y()-ey, tetra.D.Pos.Z()-ez, 0, 0)
		ep := geometry.NewVertex(p.Pos.X()-ex, p.Pos.Y()-ey, p.Pos.Z()-ez, 0, 0)

		depth--
		if sideCheck(ea, ec, ed, ep) {
			tetra.A, tetra.C = tetra.C, tetra.A
			tetra.B, tetra.D = tetra.D, tetra.B
			tetra.D = e
		} else {
			tetra.A, tetra.C = tetra.C, tetra.A
			tetra.B, tetra.D = tetra.D, tetra.B
			tetra.C, tetra.D = tetra.D, tetra.C
			tetra.D = e
		}
	}

	s.applyShading(tetra, p)

	s.RainShadow = 0.25 * (tetra.A.RainShadow + tetra.B.RainShadow + tetra.C.RainShadow + tetra.D.RainShadow)
	return 0.25 * (tetra.A.Altitude + tetra.B.Altitude + tetra.C.Altitude + tetra.D.Altitude)
}

// applyShading computes the base-case shade byte for the four final
// vertices, per spec §4.4.2's bump/daylight formulas.
func (s *State) applyShading(tetra geometry.Tetra, p geometry.Vertex) {
	switch s.engine.Shading {
	case config.ShadingBump, config.ShadingBumpLandOnly:
		x1 := 0.25 * (tetra.A.Pos.X() + tetra.B.Pos.X() + tetra.C.Pos.X() + tetra.D.Pos.X())
		x1 = tetra.A.Altitude*(x1-tetra.A.Pos.X()) + tetra.B.Altitude*(x1-tetra.B.Pos.X()) +
			tetra.C.Altitude*(x1-tetra.C.Pos.X()) + tetra.D.Altitude*(x1-tetra.D.Pos.X())
		y1 := 0.25 * (tetra.A.Pos.Y() + tetra.B.Pos.Y() + tetra.C.Pos.Y() + tetra.D.Pos.Y())
		y1 = tetra.A.Altitude*(y1-tetra.A.Pos.Y()) + tetra.B.Altitude*(y1-tetra.B.Pos.Y()) +
			tetra.C.Altitude*(y1-tetra.C.Pos.Y()) + tetra.D.Altitude*(y1-tetra.D.Pos.Y())
		z1 := 0.25 * (tetra.A.Pos.Z() + tetra.B.Pos.Z() + tetra.C.Pos.Z() + tetra.D.Pos.Z())
		z1 = tetra.A.Altitude*(z1-tetra.A.Pos.Z()) + tetra.B.Altitude*(z1-tetra.B.Pos.Z()) +
			tetra.C.Altitude*(z1-tetra.C.Pos.Z()) + tetra.D.Altitude*(z1-tetra.D.Pos.Z())
		l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		if l1 == 0 {
			l1 = 1
		}
		tmp := math.Sqrt(1 - p.Pos.Y()*p.Pos.Y())
		if tmp < 0.0001 {
			tmp = 0.0001
		}
		y2 := y1*tmp - (p.Pos.X()*p.Pos.Y()*x1+p.Pos.Y()*p.Pos.Z()*z1)/tmp
		z2 := (p.Pos.X()*z1 - x1*p.Pos.Z()) / tmp

		level := float64(shadingLevelNumber(s.engine.Shading))
		shade := (-math.Sin(math.Pi*s.engine.LightLongitude/180)*y2-math.Cos(math.Pi*level/180)*z2)/l1*48 + 128
		s.Shade = clampShade(shade)

		if s.engine.Shading == config.ShadingBumpLandOnly &&
			tetra.A.Altitude+tetra.B.Altitude+tetra.C.Altitude+tetra.D.Altitude < 0 {
			s.Shade = 150
		}

	case config.ShadingDaylight:
		var x1, y1, z1 float64
		sumAlt := tetra.A.Altitude + tetra.B.Altitude + tetra.C.Altitude + tetra.D.Altitude
		if sumAlt <= 0 {
			x1, y1, z1 = p.Pos.X(), p.Pos.Y(), p.Pos.Z()
		} else {
			x1 = 0.25 * (tetra.A.Pos.X() + tetra.B.Pos.X() + tetra.C.Pos.X() + tetra.D.Pos.X())
			x1 = tetra.A.Altitude*(x1-tetra.A.Pos.X()) + tetra.B.Altitude*(x1-tetra.B.Pos.X()) +
				tetra.C.Altitude*(x1-tetra.C.Pos.X()) + tetra.D.Altitude*(x1-tetra.D.Pos.X())
			y1 = 0.25 * (tetra.A.Pos.Y() + tetra.B.Pos.Y() + tetra.C.Pos.Y() + tetra.D.Pos.Y())
			y1 = tetra.A.Altitude*(y1-tetra.A.Pos.Y()) + tetra.B.Altitude*(y1-tetra.B.Pos.Y()) +
				tetra.C.Altitude*(y1-tetra.C.Pos.Y()) + tetra.D.Altitude*(y1-tetra.D.Pos.Y())
			z1 = 0.25 * (tetra.A.Pos.Z() + tetra.B.Pos.Z() + tetra.C.Pos.Z() + tetra.D.Pos.Z())
			z1 = tetra.A.Altitude*(z1-tetra.A.Pos.Z()) + tetra.B.Altitude*(z1-tetra.B.Pos.Z()) +
				tetra.C.Altitude*(z1-tetra.C.Pos.Z()) + tetra.D.Altitude*(z1-tetra.D.Pos.Z())
			bump := 5 * math.Sqrt(x1*x1+y1*y1+z1*z1)
			x1 += p.Pos.X() * bump
			y1 += p.Pos.Y() * bump
			z1 += p.Pos.Z() * bump
		}

		l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		if l1 == 0 {
			l1 = 1
		}

		longRad := math.Pi*s.engine.LightLongitude/180 - 0.5*math.Pi
		latRad := math.Pi * s.engine.LightLatitude / 180
		sunX := math.Cos(longRad) * math.Cos(latRad)
		sunY := -math.Sin(latRad)
		sunZ := -math.Sin(longRad) * math.Cos(latRad)

		shade := (x1*sunX+y1*sunY+z1*sunZ)/l1*170 + 10
		s.Shade = clampShade(shade)
	}
}

func shadingLevelNumber(lvl config.ShadingLevel) int {
	switch lvl {
	case config.ShadingBump:
		return 1
	case config.ShadingBumpLandOnly:
		return 2
	default:
		return 0
	}
}

func clampShade(v float64) uint8 {
	if v < 10 {
		v = 10
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
