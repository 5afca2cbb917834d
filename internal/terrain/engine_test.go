package terrain

import (
	"testing"

	"landgen/internal/config"
	"landgen/internal/geometry"
)

func testEngine() *Engine {
	opts := config.Default()
	base := NewBaseTetra(opts.Seed, opts.InitialAltitude)
	return NewEngine(opts, base, nil)
}

func TestAltitudeIsDeterministic(t *testing.T) {
	e := testEngine()
	p := geometry.NewVertex(0.5, 0.3, 0.2, 0, 0)

	s1 := NewState(e)
	a1 := s1.Altitude(p, 20)

	s2 := NewState(e)
	a2 := s2.Altitude(p, 20)

	if a1 != a2 {
		t.Errorf("expected deterministic altitude, got %v vs %v", a1, a2)
	}
}

func TestAltitudeBoundedSensibly(t *testing.T) {
	e := testEngine()
	p := geometry.NewVertex(0.1, 0.1, 0.1, 0, 0)
	s := NewState(e)
	a := s.Altitude(p, 15)
	if a < -1 || a > 1 {
		t.Errorf("expected a plausible altitude range, got %v", a)
	}
}

func TestCachedTetraPopulatedAfterFirstQuery(t *testing.T) {
	e := testEngine()
	p1 := geometry.NewVertex(0.5, 0.3, 0.2, 0, 0)
	s := NewState(e)
	s.Altitude(p1, 20)
	if !s.hasCached {
		t.Fatal("expected cache to be populated after first query")
	}
}

func TestSeedDerivationDeterministic(t *testing.T) {
	s1 := DeriveSeeds(42)
	s2 := DeriveSeeds(42)
	if s1 != s2 {
		t.Errorf("expected identical seed derivation for same input, got %v vs %v", s1, s2)
	}
}

func TestBaseTetraVerticesDistinct(t *testing.T) {
	tet := NewBaseTetra(1.0, 0)
	if geometry.DistSq(tet.A, tet.B) == 0 {
		t.Errorf("expected distinct base tetra vertices")
	}
}
