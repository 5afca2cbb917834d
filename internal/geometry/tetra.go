package geometry

// Tetra is a tetrahedron ABCD. The invariant maintained at entry to every
// recursive subdivision step is that AB is the longest of the six edges.
type Tetra struct {
	A, B, C, D Vertex
}

// edgeLengths returns the six squared edge lengths in the scan order the
// spec fixes ties by: ab, ac, ad, bc, bd, cd.
func (t Tetra) edgeLengths() [6]float64 {
	return [6]float64{
		DistSq(t.A, t.B),
		DistSq(t.A, t.C),
		DistSq(t.A, t.D),
		DistSq(t.B, t.C),
		DistSq(t.B, t.D),
		DistSq(t.C, t.D),
	}
}

// LongestEdge returns the index (0=ab, 1=ac, 2=ad, 3=bc, 4=bd, 5=cd) of the
// longest edge, breaking ties in favor of the earliest index in that scan
// order (a strict > keeps the first-seen maximum).
func (t Tetra) LongestEdge() int {
	lens := t.edgeLengths()
	max := 0
	for i := 1; i < 6; i++ {
		if lens[i] > lens[max] {
			max = i
		}
	}
	return max
}

// Canonicalize permutes the tetrahedron's vertices, per the fixed
// edge-rotation table, so that AB becomes the longest edge. It is a pure
// relabeling (five fixed permutations, one per non-zero case) with no
// recursion and no depth change — callers loop on this until LongestEdge
// returns 0, which the table guarantees happens on the first pass since
// every case maps the previously-longest edge onto AB.
func (t Tetra) Canonicalize() Tetra {
	switch t.LongestEdge() {
	case 0:
		return t
	case 1:
		t.B, t.C = t.C, t.B
	case 2:
		t.B, t.D = t.D, t.B
		t.C, t.D = t.D, t.C
	case 3:
		t.B, t.C = t.C, t.B
		t.A, t.C = t.C, t.A
	case 4:
		t.A, t.C = t.C, t.A
		t.A, t.D = t.D, t.A
		t.A, t.B = t.B, t.A
	case 5:
		t.A, t.C = t.C, t.A
		t.B, t.D = t.D, t.B
	}
	return t
}

// TripleProduct treats a, b, c as vectors from the origin (not points) and
// returns their scalar triple product a·(b×c). Used by the subdivision
// step's sub-tetrahedron selection, which already works in edge-translated
// coordinates (spec §4.4.2 step 5).
func TripleProduct(a, b, c Vertex) float64 {
	return b.Pos.Cross(c.Pos).Dot(a.Pos)
}

// sideSign returns the sign of the scalar triple product of (y-x, z-x, w-x):
// the orientation of w relative to the plane through x, y, z.
func sideSign(x, y, z, w Vertex) float64 {
	u1 := y.Pos.Sub(x.Pos)
	u2 := z.Pos.Sub(x.Pos)
	u3 := w.Pos.Sub(x.Pos)
	return u1.Cross(u2).Dot(u3)
}

// sameSide reports whether p and reference lie on the same side of the
// plane through x, y, z (used with reference = the tetrahedron's fourth
// vertex), matching original_source/src/geometry.rs's side_check: the
// product of the two triple products must be strictly positive, so a zero
// product (p exactly on the plane) is NOT same-side. The spec documents
// exactly-planar points as an indeterminate corner case rather than
// mandating a tie-break, so this strictness is a boundary the caller
// should not rely on, but it is what the original computes.
func sameSide(x, y, z, reference, p Vertex) bool {
	sr := sideSign(x, y, z, reference)
	sp := sideSign(x, y, z, p)
	return sr*sp > 0
}

// ExistsWithin reports whether p lies inside tetrahedron t: p must be on
// the same side of each face as the face's opposite vertex.
func ExistsWithin(t Tetra, p Vertex) bool {
	return sameSide(t.A, t.B, t.C, t.D, p) &&
		sameSide(t.A, t.B, t.D, t.C, p) &&
		sameSide(t.A, t.C, t.D, t.B, p) &&
		sameSide(t.B, t.C, t.D, t.A, p)
}
