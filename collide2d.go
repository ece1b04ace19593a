// Package collide2d is the collision-query core of a 2D rigid-body physics
// library: the narrow-phase engine that decides, given two posed convex
// shapes, whether they intersect, the minimum penetration normal and depth
// when they do, and the closest-point pair when they do not.
//
// The rigid-body dynamics integrator, constraint/joint solvers, the
// contact-impulse solver, and the broad-phase spatial index are external
// collaborators; this package exposes only the posed-shape descriptor, the
// collision report, the distance report, and the AABB constructor.
package collide2d

import (
	"github.com/vecgeo/collide2d/epa"
	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

// ContactPoint is one representative contact, a point on each body's
// surface in world space.
type ContactPoint struct {
	A, B vec2.Vector2
}

// Collision is the result of Detect. On non-intersection, every field
// except the body references is left at its zero value.
type Collision struct {
	IsColliding bool
	BodyA       shape.Body
	BodyB       shape.Body
	Normal      vec2.Vector2
	Penetration float64
	Contacts    []ContactPoint
}

// PointPair is the closest pair of points between two separated shapes.
type PointPair = epa.PointPair

// intersects runs GJK between two posed shapes and reports whether they
// overlap. On coincident translations, GJK's strict overlap test can miss
// the identical-centre touching case, so the terminal simplex is re-tested
// as a safety net (spec.md §4.10 item 3) — shared by Collide and Detect so
// both answer the same "Minkowski difference contains the origin" question.
func intersects(pa, pb shape.Posed) (bool, gjk.Simplex) {
	overlapping, simplex := gjk.Intersects(pa, pb)
	if !overlapping && vec2.NearlyEqual(pa.Translation, pb.Translation, vec2.Eps) {
		overlapping = simplex.ContainsOrigin(true)
	}
	return overlapping, simplex
}

// Collide reports whether two posed bodies share any point.
func Collide(a, b shape.Body) bool {
	if a == nil || b == nil || a == b {
		return false
	}

	pa, pb := shape.PosedOf(a), shape.PosedOf(b)
	if !shape.Overlap(shape.FromShape(pa, 0), shape.FromShape(pb, 0)) {
		return false
	}

	overlapping, _ := intersects(pa, pb)
	return overlapping
}

// Detect runs the full collision pipeline between two bodies: broad-phase
// AABB rejection, GJK intersection, and EPA penetration extraction
// (spec.md §4.10).
func Detect(a, b shape.Body) Collision {
	empty := Collision{BodyA: a, BodyB: b}
	if a == nil || b == nil || a == b {
		return empty
	}

	pa, pb := shape.PosedOf(a), shape.PosedOf(b)
	if !shape.Overlap(shape.FromShape(pa, 0), shape.FromShape(pb, 0)) {
		return empty
	}

	overlapping, simplex := intersects(pa, pb)
	if !overlapping {
		return empty
	}

	info, err := epa.Run(pa, pb, simplex)
	if err != nil {
		// EPA failed to converge; report the overlap without geometry
		// rather than propagate an error the caller cannot act on.
		return Collision{IsColliding: true, BodyA: a, BodyB: b}
	}

	return Collision{
		IsColliding: true,
		BodyA:       a,
		BodyB:       b,
		Normal:      info.Normal,
		Penetration: info.Penetration,
		Contacts:    []ContactPoint{{A: info.ContactA, B: info.ContactB}},
	}
}

// Distance reports the closest points between two bodies. ok is false only
// for invalid input (nil or identical bodies); colliding or touching
// bodies return a zero-length pair.
func Distance(a, b shape.Body) (pair PointPair, ok bool) {
	if a == nil || b == nil || a == b {
		return PointPair{}, false
	}

	pa, pb := shape.PosedOf(a), shape.PosedOf(b)
	if overlapping, _ := intersects(pa, pb); overlapping {
		return PointPair{}, true
	}

	return epa.Distance(pa, pb), true
}

// AABBFromShape returns the world-space AABB of a posed shape, optionally
// grown by expansion on each side.
func AABBFromShape(posed shape.Posed, expansion float64) shape.AABB {
	return shape.FromShape(posed, expansion)
}
