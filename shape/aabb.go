package shape

import (
	"math"

	"github.com/vecgeo/collide2d/vec2"
)

// AABB is an axis-aligned bounding box. Extents stores the FULL width and
// height (not halved), matching spec.md §3's clarification that the
// engine treats the stored pair as full extents. An empty AABB has both
// Extents components zero.
type AABB struct {
	Center  vec2.Vector2
	Extents vec2.Vector2
}

// Min returns the box's lower-left corner.
func (a AABB) Min() vec2.Vector2 {
	return a.Center.Sub(a.Extents.Mul(0.5))
}

// Max returns the box's upper-right corner.
func (a AABB) Max() vec2.Vector2 {
	return a.Center.Add(a.Extents.Mul(0.5))
}

// Empty reports whether the box has zero extents on both axes.
func (a AABB) Empty() bool {
	return a.Extents.X() == 0 && a.Extents.Y() == 0
}

// FromShape builds a tight world-frame AABB enclosing the posed shape,
// grown by expansion on each side. Derivation is per-variant: analytic
// extents for Circle/Ellipse/Capsule, min/max over transformed vertices
// for Polygon/Rectangle/Edge/Point (spec.md §4.9).
func FromShape(p Posed, expansion float64) AABB {
	var min, max vec2.Vector2

	switch p.Shape.kind {
	case KindCircle:
		r := p.Shape.radius
		min = p.Translation.Sub(vec2.New(r, r))
		max = p.Translation.Add(vec2.New(r, r))

	case KindEllipse:
		min, max = rotatedEllipseBounds(p)

	case KindCapsule:
		min, max = rotatedCapsuleBounds(p)

	default: // Point, Polygon, Rectangle, Edge
		verts := p.Shape.vertices
		if len(verts) == 0 {
			min, max = p.Translation, p.Translation
			break
		}
		first := p.ToWorld(verts[0])
		min, max = first, first
		for _, v := range verts[1:] {
			w := p.ToWorld(v)
			min = vec2.New(math.Min(min.X(), w.X()), math.Min(min.Y(), w.Y()))
			max = vec2.New(math.Max(max.X(), w.X()), math.Max(max.Y(), w.Y()))
		}
	}

	if expansion != 0 {
		pad := vec2.New(expansion, expansion)
		min = min.Sub(pad)
		max = max.Add(pad)
	}

	center := min.Add(max).Mul(0.5)
	extents := max.Sub(min)
	return AABB{Center: center, Extents: extents}
}

// rotatedEllipseBounds computes the world-frame min/max corners of a
// rotated axis-aligned ellipse: the half-extent along world axis x is
// sqrt((a cosθ)² + (b sinθ)²), and symmetrically for y.
func rotatedEllipseBounds(p Posed) (vec2.Vector2, vec2.Vector2) {
	a, b := p.Shape.halfExtent.X(), p.Shape.halfExtent.Y()
	cos, sin := p.Rotation.Cos(), p.Rotation.Sin()

	hx := math.Sqrt((a*cos)*(a*cos) + (b*sin)*(b*sin))
	hy := math.Sqrt((a*sin)*(a*sin) + (b*cos)*(b*cos))

	half := vec2.New(hx, hy)
	return p.Translation.Sub(half), p.Translation.Add(half)
}

// rotatedCapsuleBounds computes the world-frame min/max corners of a
// rotated capsule: the AABB of the two round-end centres, padded by the
// radius on every side.
func rotatedCapsuleBounds(p Posed) (vec2.Vector2, vec2.Vector2) {
	segmentHalfLen, radius, horizontal := capsuleAxisAndRadius(p.Shape.halfExtent)

	var localA, localB vec2.Vector2
	if horizontal {
		localA, localB = vec2.New(-segmentHalfLen, 0), vec2.New(segmentHalfLen, 0)
	} else {
		localA, localB = vec2.New(0, -segmentHalfLen), vec2.New(0, segmentHalfLen)
	}

	worldA := p.ToWorld(localA)
	worldB := p.ToWorld(localB)

	min := vec2.New(math.Min(worldA.X(), worldB.X()), math.Min(worldA.Y(), worldB.Y()))
	max := vec2.New(math.Max(worldA.X(), worldB.X()), math.Max(worldA.Y(), worldB.Y()))

	pad := vec2.New(radius, radius)
	return min.Sub(pad), max.Add(pad)
}

// Overlap reports whether two AABBs overlap: their intervals must overlap
// strictly on both axes (spec.md §4.9).
func Overlap(a, b AABB) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMax.X() > bMin.X() && aMin.X() < bMax.X() &&
		aMax.Y() > bMin.Y() && aMin.Y() < bMax.Y()
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	min := vec2.New(math.Min(aMin.X(), bMin.X()), math.Min(aMin.Y(), bMin.Y()))
	max := vec2.New(math.Max(aMax.X(), bMax.X()), math.Max(aMax.Y(), bMax.Y()))
	return AABB{Center: min.Add(max).Mul(0.5), Extents: max.Sub(min)}
}

// Raycast runs the slab method against aabb, returning the entry point
// and true if the ray (origin, dir) hits the box, or the zero point and
// false otherwise.
func Raycast(aabb AABB, origin, dir vec2.Vector2) (vec2.Vector2, bool) {
	min, max := aabb.Min(), aabb.Max()

	tMin, tMax := math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 2; axis++ {
		var o, d, lo, hi float64
		if axis == 0 {
			o, d, lo, hi = origin.X(), dir.X(), min.X(), max.X()
		} else {
			o, d, lo, hi = origin.Y(), dir.Y(), min.Y(), max.Y()
		}

		if math.Abs(d) < vec2.Eps {
			if o < lo || o > hi {
				return vec2.New(0, 0), false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return vec2.New(0, 0), false
		}
	}

	if tMax < 0 {
		return vec2.New(0, 0), false
	}

	t := tMin
	if t < 0 {
		t = tMax
	}
	return origin.Add(dir.Mul(t)), true
}
