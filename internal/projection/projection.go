// Package projection maps image pixels to sphere points for the eleven
// supported map projections (spec §4.3) and decides how deep the altitude
// engine should start recursing on a given row.
package projection

import (
	"math"

	"landgen/internal/geometry"
	"landgen/internal/render"
)

const pi = math.Pi

// Projection converts pixels of one image row-slice to sphere points.
type Projection interface {
	// PixelToCoordinate returns the sphere point a pixel back-projects to,
	// or ok=false if the pixel lies outside the projected disc/strip.
	PixelToCoordinate(row, col int) (v geometry.Vertex, ok bool)
	// SubdivisionDepth is the altitude engine's starting recursion depth
	// for that row.
	SubdivisionDepth(row int) uint8
	Name() string
}

// Params bundles everything every projection constructor needs: the slice
// this instance renders, the common center point, and scale.
type Params struct {
	Slicing render.Slicing
	SliceID int
	Scale   float64
	Center  geometry.LatLong
}

// Letter identifies a projection by its CLI letter (spec §6: m,p,q,s,o,g,
// a,c,M,S,i).
type Letter rune

const (
	LetterMercator      Letter = 'm'
	LetterPeters        Letter = 'p'
	LetterSquare        Letter = 'q'
	LetterStereographic Letter = 's'
	LetterOrthographic  Letter = 'o'
	LetterGnomonic      Letter = 'g'
	LetterAzimuthal     Letter = 'a'
	LetterConical       Letter = 'c'
	LetterMollweide     Letter = 'M'
	LetterSinusoidal    Letter = 'S'
	LetterIcosahedral   Letter = 'i'
)

// New dispatches to the concrete projection for the requested letter,
// substituting Mercator/Conical near the poles per spec §4.3's documented
// special cases.
func New(letter Letter, p Params) Projection {
	switch letter {
	case LetterMercator:
		return newPoleAwareMercator(p)
	case LetterPeters:
		return NewPeters(p)
	case LetterSquare:
		return NewSquare(p)
	case LetterStereographic:
		return NewStereographic(p)
	case LetterOrthographic:
		return NewOrthographic(p)
	case LetterGnomonic:
		return NewGnomonic(p)
	case LetterAzimuthal:
		return NewAzimuthal(p)
	case LetterConical:
		return newPoleAwareConical(p)
	case LetterMollweide:
		return NewMollweide(p)
	case LetterSinusoidal:
		return NewSinusoidal(p)
	case LetterIcosahedral:
		return NewIcosahedral(p)
	default:
		return NewMercator(p)
	}
}

// poleEpsilon bounds how close the center's |latitude| (radians) has to get
// to pi before Mercator is replaced by Stereographic, per spec §4.3.
const poleEpsilon = 1e-6

func newPoleAwareMercator(p Params) Projection {
	if pi-absf(p.Center.Latitude) < poleEpsilon {
		return NewStereographic(p)
	}
	return NewMercator(p)
}

func newPoleAwareConical(p Params) Projection {
	if p.Center.Latitude == 0 {
		return NewMercator(p)
	}
	if absf(p.Center.Latitude) >= pi/2 {
		return NewStereographic(p)
	}
	return NewConical(p)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
