package projection

import (
	"testing"

	"landgen/internal/geometry"
	"landgen/internal/render"
)

func testParams(scale float64, centerLat, centerLong float64) Params {
	return Params{
		Slicing: render.NewSlicing(100, 200, 1),
		SliceID: 0,
		Scale:   scale,
		Center:  geometry.NewLatLong(centerLat, centerLong),
	}
}

func TestMercatorCenterPixelProjectsNearEquator(t *testing.T) {
	p := testParams(1.0, 0, 0)
	merc := NewMercator(p)
	v, ok := merc.PixelToCoordinate(50, 100)
	if !ok {
		t.Fatal("expected center pixel to project")
	}
	if v.Pos.Len() < 0.99 || v.Pos.Len() > 1.01 {
		t.Errorf("expected unit-sphere point, got length %v", v.Pos.Len())
	}
}

func TestOrthographicOutsideDiscIsBackground(t *testing.T) {
	p := testParams(1.0, 0, 0)
	o := NewOrthographic(p)
	if _, ok := o.PixelToCoordinate(0, 0); ok {
		t.Errorf("expected far corner to be outside the orthographic disc")
	}
}

func TestAzimuthalBeyondRadiusIsBackground(t *testing.T) {
	p := testParams(1.0, 0, 0)
	az := NewAzimuthal(p)
	if _, ok := az.PixelToCoordinate(0, 0); ok {
		t.Errorf("expected far corner to be outside the azimuthal projection")
	}
}

func TestDispatchSubstitutesStereographicNearPole(t *testing.T) {
	p := testParams(1.0, pi, 0) // |latitude| within poleEpsilon of pi
	proj := New(LetterMercator, p)
	if proj.Name() != "stereographic" {
		t.Errorf("expected pole substitution to stereographic, got %s", proj.Name())
	}
}

func TestDispatchConicalAtEquatorBecomesMercator(t *testing.T) {
	p := testParams(1.0, 0, 0)
	proj := New(LetterConical, p)
	if proj.Name() != "mercator" {
		t.Errorf("expected conical at latitude 0 to substitute mercator, got %s", proj.Name())
	}
}

func TestAllProjectionsHaveName(t *testing.T) {
	p := testParams(1.0, 0.3, 0.2)
	letters := []Letter{
		LetterMercator, LetterPeters, LetterSquare, LetterStereographic,
		LetterOrthographic, LetterGnomonic, LetterAzimuthal, LetterConical,
		LetterMollweide, LetterSinusoidal, LetterIcosahedral,
	}
	for _, l := range letters {
		proj := New(l, p)
		if proj.Name() == "" {
			t.Errorf("letter %c: expected non-empty name", l)
		}
	}
}
