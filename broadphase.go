package collide2d

import "github.com/vecgeo/collide2d/shape"

// Pair is a pair of bodies whose AABBs overlap and might be colliding.
type Pair struct {
	BodyA shape.Body
	BodyB shape.Body
}

// BroadPhase performs brute-force O(n²) AABB-overlap prefiltering over a
// set of bodies, returning the pairs a narrow-phase Detect call is worth
// running on. It is not a spatial index: callers needing sublinear
// broad-phase over large body counts own that structure themselves.
func BroadPhase(bodies []shape.Body) []Pair {
	pairs := make([]Pair, 0)

	for i := 0; i < len(bodies); i++ {
		aabbI := shape.FromShape(shape.PosedOf(bodies[i]), 0)
		for j := i + 1; j < len(bodies); j++ {
			aabbJ := shape.FromShape(shape.PosedOf(bodies[j]), 0)
			if shape.Overlap(aabbI, aabbJ) {
				pairs = append(pairs, Pair{BodyA: bodies[i], BodyB: bodies[j]})
			}
		}
	}

	return pairs
}
