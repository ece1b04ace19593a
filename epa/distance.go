package epa

import (
	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// PointPair is the closest pair of points between two separated shapes,
// one on each shape, plus the distance between them.
type PointPair struct {
	A, B     vec2.Vector2
	Distance float64
}

// Distance runs a simplified GJK variant for two posed shapes that do not
// intersect, refining a 2-simplex (padded with a sentinel to reuse the
// same closest-edge and reduction routines GJK uses) until the support
// point it asks for is already in the simplex, then lifts the closest
// edge's source points into a single closest-point pair (spec.md §4.8).
func Distance(a, b shape.Posed) PointPair {
	direction := b.Translation.Sub(a.Translation)
	if vec2.NearlyZero(direction, vec2.Eps) {
		direction = vec2.New(1, 1) // fallback when positions coincide (spec.md §4.3 step 1)
	}

	var simplex gjk.Simplex
	simplex.Insert(gjk.Support(a, b, direction))
	direction = simplex.At(0).Result.Mul(-1)

	for iter := 0; iter < DefaultMaxIter; iter++ {
		if vec2.NearlyZero(direction, vec2.Eps) {
			break
		}

		w := gjk.Support(a, b, direction)
		if simplex.Contains(w) || simplex.FuzzyContains(w, epsConverge) {
			break
		}

		simplex.Insert(w)
		if simplex.Len() == 3 {
			simplex.Insert(simplex.At(0))
		}

		i, j := gjk.ClosestEdge(&simplex)
		direction = gjk.EdgePerpendicular(simplex.At(i).Result, simplex.At(j).Result, true)

		if simplex.Len() == 4 {
			reduced, _ := gjk.ReduceToEdge(simplex, i, j)
			simplex = reduced
		}
	}

	return extractClosestPoints(simplex)
}

func extractClosestPoints(simplex gjk.Simplex) PointPair {
	if simplex.Len() == 1 {
		w := simplex.At(0)
		return PointPair{A: w.A, B: w.B, Distance: w.Result.Len()}
	}

	i, j := gjk.ClosestEdge(&simplex)
	v0, v1 := simplex.At(i), simplex.At(j)
	contactA, contactB := contactPair(v0.A, v0.B, v1.A, v1.B)
	return PointPair{A: contactA, B: contactB, Distance: contactA.Sub(contactB).Len()}
}
