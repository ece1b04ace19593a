// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for
// 2D collision detection.
//
// GJK detects whether two convex shapes overlap by testing if their
// Minkowski difference contains the origin. The algorithm builds a simplex
// incrementally, converging toward the origin in typically 3-6 iterations.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance
//     Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments"
//     (2003)
package gjk

import (
	"math"

	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// DefaultMaxIter bounds the GJK refinement loop.
const DefaultMaxIter = 20

const epsGeometry = vec2.EpsGeometry

func zero() vec2.Vector2 { return vec2.New(0, 0) }

// Intersects runs GJK on two posed shapes and reports whether they overlap.
//
// Algorithm overview:
//  1. Start with an initial search direction (toward B from A).
//  2. Get the first support point in the Minkowski difference.
//  3. Iteratively refine the simplex toward the origin.
//  4. If the origin is contained, the shapes intersect.
//  5. If a support point fails to pass the origin, they are separated.
//
// The returned simplex is the terminal one, which EPA uses to seed its
// polytope. On intersection it is usually a triangle closed with the
// sentinel vertex (length 4); it is a 2-simplex when the origin lies on
// the segment between two support points, and a 1-simplex when the first
// support point is the origin itself.
func Intersects(a, b shape.Posed) (bool, Simplex) {
	direction := b.Translation.Sub(a.Translation)
	if vec2.NearlyZero(direction, vec2.Eps) {
		direction = vec2.New(1, 1) // fallback when positions coincide (spec.md §4.3 step 1)
	}

	var simplex Simplex
	simplex.Insert(Support(a, b, direction))
	direction = simplex.At(0).Result.Mul(-1)

	if vec2.NearlyZero(direction, vec2.Eps) {
		return true, simplex // first support point landed on the origin
	}

	var dropped []Witness

	for iter := 0; iter < DefaultMaxIter; iter++ {
		w := Support(a, b, direction)

		if w.Result.Dot(direction) <= 0 {
			return false, simplex
		}

		simplex.Insert(w)
		if simplex.Len() == 3 {
			simplex.Insert(simplex.At(0)) // close the triangle with a sentinel
		}

		if simplex.ContainsOrigin(true) {
			return true, simplex
		}

		i, j := ClosestEdge(&simplex)
		direction = EdgePerpendicular(simplex.At(i).Result, simplex.At(j).Result, true)

		if simplex.Len() == 4 {
			candidate := droppedVertexFor(simplex, i, j)
			if containsDropped(dropped, candidate) {
				// Anti-cycling guard: the next reduction would drop a vertex
				// already discarded earlier, so no further progress is
				// possible.
				return false, simplex
			}

			reducedTo, droppedVertex := ReduceToEdge(simplex, i, j)
			dropped = append(dropped, droppedVertex)
			simplex = reducedTo
		}
	}

	// Failed to converge within DefaultMaxIter: treat as separated. Callers
	// that need a guaranteed result should widen shapes or investigate the
	// input for degeneracies.
	return false, simplex
}

// ReduceToEdge drops the real vertex of a closed 4-simplex (a triangle plus
// its sentinel) that is not part of the (i, j) edge, returning the
// resulting 2-simplex together with the dropped witness. i, j must be one
// of the three consecutive pairs a closed triangle offers: (0,1), (1,2), or
// (2,3).
func ReduceToEdge(s Simplex, i, j int) (reduced Simplex, dropped Witness) {
	dropped = droppedVertexFor(s, i, j)
	switch {
	case i == 0 && j == 1:
		reduced.Insert(s.At(0))
		reduced.Insert(s.At(1))
	case i == 1 && j == 2:
		reduced.Insert(s.At(1))
		reduced.Insert(s.At(2))
	case i == 2 && j == 3:
		reduced.Insert(s.At(3))
		reduced.Insert(s.At(2))
	}
	return reduced, dropped
}

// droppedVertexFor reports which real vertex ReduceToEdge would drop for
// the given (i, j) edge, without performing the reduction. Used both by
// ReduceToEdge itself and by the anti-cycling guard, which must check the
// candidate drop before it happens rather than the support point that
// triggered it.
func droppedVertexFor(s Simplex, i, j int) Witness {
	switch {
	case i == 0 && j == 1:
		return s.At(2)
	case i == 1 && j == 2:
		return s.At(0)
	case i == 2 && j == 3:
		return s.At(1)
	}
	return Witness{}
}

func containsDropped(dropped []Witness, w Witness) bool {
	for _, d := range dropped {
		if exactEqual(d, w) {
			return true
		}
	}
	return false
}

// ClosestEdge finds the pair of consecutive simplex indices whose segment
// is closest to the local origin. A 2-simplex has exactly one edge, (0,1).
// Longer simplices (the sentinel-closed triangle, or EPA's sentinel-padded
// 2-simplex) are scanned pairwise; ties favor the pair with the smaller
// endpoint squared-length sum.
func ClosestEdge(s *Simplex) (int, int) {
	if s.Len() <= 2 {
		return 0, 1
	}

	bestI, bestJ := 0, 1
	bestDist := edgeOriginDistance(s.At(0).Result, s.At(1).Result)
	bestSum := endpointSum(s.At(0).Result, s.At(1).Result)

	for i := 1; i < s.Len()-1; i++ {
		j := i + 1
		dist := edgeOriginDistance(s.At(i).Result, s.At(j).Result)
		sum := endpointSum(s.At(i).Result, s.At(j).Result)

		if dist < bestDist-epsGeometry {
			bestI, bestJ, bestDist, bestSum = i, j, dist, sum
		} else if math.Abs(dist-bestDist) <= epsGeometry && sum < bestSum {
			bestI, bestJ, bestDist, bestSum = i, j, dist, sum
		}
	}
	return bestI, bestJ
}

func edgeOriginDistance(a, b vec2.Vector2) float64 {
	return shape.ProjectPointToSegment(zero(), a, b).Len()
}

func endpointSum(a, b vec2.Vector2) float64 {
	return a.Dot(a) + b.Dot(b)
}

// EdgePerpendicular returns the direction perpendicular to segment p1->p2,
// oriented toward the origin when towardOrigin is true and away from it
// otherwise.
func EdgePerpendicular(p1, p2 vec2.Vector2, towardOrigin bool) vec2.Vector2 {
	ab := p2.Sub(p1)
	perp := vec2.Perp(ab)
	ao := p1.Mul(-1)
	dot := ao.Dot(perp)

	if towardOrigin {
		if dot < 0 {
			perp = perp.Mul(-1)
		}
	} else {
		if dot > 0 {
			perp = perp.Mul(-1)
		}
	}
	return perp
}
