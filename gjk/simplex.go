package gjk

import "github.com/vecgeo/collide2d/shape"

// Simplex holds up to four Minkowski witnesses: a point, a segment, or a
// triangle with its first vertex repeated as a closing sentinel so the
// closest-edge search can walk consecutive pairs uniformly (spec.md §4.2).
type Simplex struct {
	points [4]Witness
	count  int
}

// Len reports how many witnesses are currently stored.
func (s *Simplex) Len() int { return s.count }

// At returns the witness at index i.
func (s *Simplex) At(i int) Witness { return s.points[i] }

// Insert appends w at the end of the simplex. Callers never exceed four
// entries: a triangle plus its closing sentinel.
func (s *Simplex) Insert(w Witness) {
	s.points[s.count] = w
	s.count++
}

// Reset empties the simplex.
func (s *Simplex) Reset() { s.count = 0 }

// Contains reports whether w is already present, compared exactly on its
// (a, b) support points.
func (s *Simplex) Contains(w Witness) bool {
	for i := 0; i < s.count; i++ {
		if exactEqual(s.points[i], w) {
			return true
		}
	}
	return false
}

// FuzzyContains is Contains with a result-space tolerance, used by the
// distance query's convergence check.
func (s *Simplex) FuzzyContains(w Witness, eps float64) bool {
	for i := 0; i < s.count; i++ {
		if FuzzyEqual(s.points[i], w, eps) {
			return true
		}
	}
	return false
}

// LastVertex returns the most recently inserted real witness: index 1 for
// a segment, index 2 for a triangle (the sentinel at index 3 is never the
// last real vertex).
func (s *Simplex) LastVertex() Witness {
	switch s.count {
	case 4:
		return s.points[2]
	default:
		return s.points[s.count-1]
	}
}

// ContainsOrigin tests whether the simplex encloses the local origin.
// strict=true requires an exact collinearity/within-bounds test for a
// segment or strictly same-sign cross products for a triangle;
// strict=false relaxes the segment test by EpsGeometry and lets a zero
// cross product count as inside the triangle.
func (s *Simplex) ContainsOrigin(strict bool) bool {
	origin := zero()
	eps := 0.0
	if !strict {
		eps = epsGeometry
	}
	switch s.count {
	case 2:
		return shape.PointOnSegment(origin, s.points[0].Result, s.points[1].Result, eps)
	case 4:
		return shape.TriangleContainsOrigin(s.points[0].Result, s.points[1].Result, s.points[2].Result, strict)
	default:
		return false
	}
}
