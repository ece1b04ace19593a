package epa

import (
	"math"

	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/vec2"
)

// Info is the result of a successful EPA run: the separating normal
// (pointing from shape B into shape A), the penetration depth along that
// normal, and a single representative contact-point pair.
type Info struct {
	Normal      vec2.Vector2
	Penetration float64
	ContactA    vec2.Vector2
	ContactB    vec2.Vector2
}

// penetrationInfo extracts the normal and depth from the two Minkowski
// source points that make up EPA's converged closest edge (spec.md §4.7).
//
// e1, e2 are the edge's two Minkowski-boundary points (a-b for each
// witness). n is the perpendicular of e1->e2 pointing away from the
// origin; the penetration depth is the origin's distance along n, and the
// contact normal is -n by the from-B-into-A convention.
func penetrationInfo(a1, a2, b1, b2 vec2.Vector2) (normal vec2.Vector2, depth float64) {
	e1 := a1.Sub(b1)
	e2 := a2.Sub(b2)
	n := gjk.EdgePerpendicular(e1, e2, false).Normalize()
	depth = math.Abs(n.Dot(e1))
	normal = n.Mul(-1)
	return normal, depth
}

// contactPair lifts the closest edge's two source-point pairs into a
// single representative contact via barycentric interpolation (spec.md
// §4.7). It is also reused by the distance query (§4.8).
func contactPair(a1, b1, a2, b2 vec2.Vector2) (contactA, contactB vec2.Vector2) {
	a := a1.Sub(b1)
	b := a2.Sub(b2)
	l := b.Sub(a)

	ll := l.Dot(l)
	if ll < vec2.EpsGeometry*vec2.EpsGeometry {
		return a1, b1
	}

	lambda2 := -l.Dot(a) / ll
	lambda1 := 1 - lambda2

	if lambda2 < 0 {
		return a1, b1
	}
	if lambda1 < 0 {
		return a2, b2
	}

	contactA = a1.Mul(lambda1).Add(a2.Mul(lambda2))
	contactB = b1.Mul(lambda1).Add(b2.Mul(lambda2))
	return contactA, contactB
}
