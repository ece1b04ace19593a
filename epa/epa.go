// Package epa implements the Expanding Polytope Algorithm for computing
// penetration depth.
//
// EPA runs after GJK detects a collision to determine:
//   - Penetration depth (how far the shapes overlap)
//   - Contact normal (direction to separate them)
//   - A representative contact point pair
//
// The algorithm expands a polygon (starting from GJK's terminal simplex)
// toward the origin in the Minkowski difference space, finding the closest
// edge which gives the Minimum Translation Vector (MTV) to separate the
// shapes.
//
// Reference:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation
//     on 3D Game Objects" (2001)
package epa

import (
	"fmt"

	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// DefaultMaxIter bounds polytope expansion to prevent infinite loops.
// Typical convergence is 3-10 iterations for simple shapes.
const DefaultMaxIter = 32

const epsConverge = vec2.EpsGeometry

func zero() vec2.Vector2 { return vec2.New(0, 0) }

// Run computes penetration depth and contact information for two posed
// shapes known to overlap, seeded with GJK's terminal simplex (spec.md
// §4.4).
//
// Algorithm overview:
//  1. Build the initial polytope (triangle) from the GJK simplex.
//  2. Find the edge closest to the origin.
//  3. Get a support point along that edge's outward normal.
//  4. If the simplex already has that point (exactly or within tolerance),
//     the edge is on the Minkowski boundary: extract penetration info.
//  5. Otherwise insert the point between the edge's two vertices and
//     repeat.
func Run(a, b shape.Posed, seed gjk.Simplex) (Info, error) {
	var poly Polytope
	switch seed.Len() {
	case 4:
		poly = NewPolytope(seed)
	case 2:
		// GJK can terminate with a 2-simplex when the origin lands exactly
		// on the segment between the first two support points (e.g.
		// concentric shapes). That segment alone encloses no area, so one
		// extra support point is needed to seed a real polygon.
		poly = bootstrapFromSegment(a, b, seed)
	default:
		return Info{}, fmt.Errorf("epa: seed simplex must be a GJK-terminal 2- or 4-simplex, got length %d", seed.Len())
	}

	for iter := 0; iter < DefaultMaxIter; iter++ {
		i, j := poly.ClosestEdge()
		vi, vj := poly.At(i), poly.At(j)

		n := gjk.EdgePerpendicular(vi.Result, vj.Result, false)
		if shape.PointOnSegment(zero(), vi.Result, vj.Result, 0) {
			n = n.Mul(-1) // origin sits exactly on the edge; pick a side deterministically
		}

		w := gjk.Support(a, b, n)

		if poly.Contains(w) || poly.FuzzyContains(w, epsConverge) {
			normal, depth := penetrationInfo(vi.A, vj.A, vi.B, vj.B)
			contactA, contactB := contactPair(vi.A, vi.B, vj.A, vj.B)
			return Info{Normal: normal, Penetration: depth, ContactA: contactA, ContactB: contactB}, nil
		}

		poly.InsertBetween(i, j, w)
	}

	return Info{}, fmt.Errorf("epa: failed to converge after %d iterations", DefaultMaxIter)
}

func bootstrapFromSegment(a, b shape.Posed, seed gjk.Simplex) Polytope {
	v0, v1 := seed.At(0), seed.At(1)

	n := gjk.EdgePerpendicular(v0.Result, v1.Result, false)
	w := gjk.Support(a, b, n)
	if shape.PointOnSegment(w.Result, v0.Result, v1.Result, 0) {
		n = n.Mul(-1)
		w = gjk.Support(a, b, n)
	}

	return Polytope{witnesses: []gjk.Witness{v0, v1, w}}
}
