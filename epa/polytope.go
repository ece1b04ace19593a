// Package epa implements the Expanding Polytope Algorithm for computing
// penetration depth between two overlapping convex shapes in 2D.
//
// EPA runs after GJK has found a simplex containing the origin. It expands
// that simplex into a polygon (the "polytope") by repeatedly inserting a
// new support point between the edge closest to the origin, until the
// polygon's boundary converges onto the Minkowski difference's boundary.
// The closest edge at convergence gives the minimum translation vector.
//
// Reference:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation
//     on 3D Game Objects" (2001)
package epa

import (
	"math"

	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// Polytope is a closed polygon of Minkowski witnesses. Unlike gjk.Simplex
// it is unbounded in size and carries no sentinel vertex: edge (n-1, 0)
// closes the loop implicitly.
type Polytope struct {
	witnesses []gjk.Witness
}

// NewPolytope seeds a polytope from a GJK-terminal triangle (a closed
// 4-simplex: three real vertices plus the repeated sentinel at index 3).
func NewPolytope(terminal gjk.Simplex) Polytope {
	return Polytope{witnesses: []gjk.Witness{terminal.At(0), terminal.At(1), terminal.At(2)}}
}

// Len reports the number of vertices.
func (p *Polytope) Len() int { return len(p.witnesses) }

// At returns the vertex at index i.
func (p *Polytope) At(i int) gjk.Witness { return p.witnesses[i] }

// Contains reports whether w is already present, exact on (a, b).
func (p *Polytope) Contains(w gjk.Witness) bool {
	for _, existing := range p.witnesses {
		if existing.A == w.A && existing.B == w.B {
			return true
		}
	}
	return false
}

// FuzzyContains is Contains with a result-space tolerance.
func (p *Polytope) FuzzyContains(w gjk.Witness, eps float64) bool {
	for _, existing := range p.witnesses {
		if gjk.FuzzyEqual(existing, w, eps) {
			return true
		}
	}
	return false
}

// InsertBetween inserts w between the vertices at indices i and j, where
// (i, j) is an edge returned by ClosestEdge: either j == i+1, or the
// closing edge i == last index, j == 0.
func (p *Polytope) InsertBetween(i, j int, w gjk.Witness) {
	if j == 0 {
		p.witnesses = append(p.witnesses, w)
		return
	}
	p.witnesses = append(p.witnesses, gjk.Witness{})
	copy(p.witnesses[j+1:], p.witnesses[j:])
	p.witnesses[j] = w
}

// ClosestEdge finds the polygon edge closest to the local origin, scanning
// every consecutive pair including the closing (n-1, 0) edge. Ties within
// EPS_GEOMETRY favor the pair with the smaller endpoint squared-length sum
// (spec.md §4.5).
func (p *Polytope) ClosestEdge() (int, int) {
	n := len(p.witnesses)
	bestI, bestJ := 0, 1%n
	bestDist := edgeOriginDistance(p.witnesses[0].Result, p.witnesses[bestJ].Result)
	bestSum := endpointSum(p.witnesses[0].Result, p.witnesses[bestJ].Result)

	for i := 1; i < n; i++ {
		j := (i + 1) % n
		dist := edgeOriginDistance(p.witnesses[i].Result, p.witnesses[j].Result)
		sum := endpointSum(p.witnesses[i].Result, p.witnesses[j].Result)

		if dist < bestDist-vec2.EpsGeometry {
			bestI, bestJ, bestDist, bestSum = i, j, dist, sum
		} else if math.Abs(dist-bestDist) <= vec2.EpsGeometry && sum < bestSum {
			bestI, bestJ, bestDist, bestSum = i, j, dist, sum
		}
	}
	return bestI, bestJ
}

func edgeOriginDistance(a, b vec2.Vector2) float64 {
	return shape.ProjectPointToSegment(vec2.New(0, 0), a, b).Len()
}

func endpointSum(a, b vec2.Vector2) float64 {
	return a.Dot(a) + b.Dot(b)
}
