// Package gjk implements the Minkowski-difference support function, the
// simplex data structure it feeds, and the GJK intersection loop.
//
// GJK detects whether two convex shapes overlap by testing whether their
// Minkowski difference A-B contains the origin. The simplex grows one
// support point at a time, and the search direction is re-aimed at the
// origin every iteration until either the origin is proven contained
// (intersection) or a support point fails to pass the origin (separation).
package gjk

import (
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// Witness is a Minkowski-difference support triple (a, b, a-b): a is the
// farthest point on shape A in some direction d, b is the farthest point
// on shape B in direction -d, and Result = a-b lies on the Minkowski
// boundary.
type Witness struct {
	A, B, Result vec2.Vector2
}

// Support computes one Minkowski-difference witness for posed shapes a, b
// in world-space direction d (spec.md §4.1).
func Support(a, b shape.Posed, d vec2.Vector2) Witness {
	pa := a.Farthest(d)
	pb := b.Farthest(d.Mul(-1))
	return Witness{A: pa, B: pb, Result: pa.Sub(pb)}
}

// exactEqual compares two witnesses componentwise on (a, b), per spec.md
// §3's Minkowski-witness equality.
func exactEqual(w1, w2 Witness) bool {
	return w1.A == w2.A && w1.B == w2.B
}

// FuzzyEqual compares two witnesses by squared distance of their results
// under eps, per spec.md §3.
func FuzzyEqual(w1, w2 Witness, eps float64) bool {
	d := w1.Result.Sub(w2.Result)
	return d.Dot(d) < eps
}
