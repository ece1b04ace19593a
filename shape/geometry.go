package shape

import (
	"math"

	"github.com/vecgeo/collide2d/vec2"
)

// EllipseFarthest computes the farthest point on an axis-aligned ellipse
// with semi-axes halfExtent = (a, b), centred at the local origin, in
// direction d. This is the analytical tangent-normal solution: the
// farthest point is where the ellipse's outward normal is parallel to d,
// i.e. p = (a²dx, b²dy) / sqrt(a²dx² + b²dy²).
func EllipseFarthest(halfExtent, d vec2.Vector2) vec2.Vector2 {
	a, b := halfExtent.X(), halfExtent.Y()
	ax := a * a * d.X()
	by := b * b * d.Y()
	denom := math.Sqrt(ax*d.X() + by*d.Y())
	if denom < vec2.Eps {
		return vec2.New(a, 0)
	}
	return vec2.New(ax/denom, by/denom)
}

// CapsuleFarthest computes the farthest point on a stadium shape with
// pre-rounding half-extent halfExtent, centred at the local origin, in
// direction d: the round-end centre offset (whichever end d leans toward)
// plus normalise(d) * radius.
func CapsuleFarthest(halfExtent, d vec2.Vector2) vec2.Vector2 {
	segmentHalfLen, radius, horizontal := capsuleAxisAndRadius(halfExtent)

	if vec2.NearlyZero(d, vec2.Eps) {
		if horizontal {
			return vec2.New(segmentHalfLen+radius, 0)
		}
		return vec2.New(0, segmentHalfLen+radius)
	}

	var axisComponent float64
	if horizontal {
		axisComponent = d.X()
	} else {
		axisComponent = d.Y()
	}

	sign := 1.0
	if axisComponent < 0 {
		sign = -1.0
	}

	var center vec2.Vector2
	if horizontal {
		center = vec2.New(sign*segmentHalfLen, 0)
	} else {
		center = vec2.New(0, sign*segmentHalfLen)
	}

	return center.Add(d.Normalize().Mul(radius))
}

// PolygonCentroid computes the area-weighted centroid of an open
// (non-repeated-first-vertex) convex polygon.
func PolygonCentroid(vertices []vec2.Vector2) vec2.Vector2 {
	n := len(vertices)
	if n == 0 {
		return vec2.New(0, 0)
	}
	if n == 1 {
		return vertices[0]
	}
	if n == 2 {
		return vertices[0].Add(vertices[1]).Mul(0.5)
	}

	var areaSum, cx, cy float64
	for i := 0; i < n; i++ {
		p0 := vertices[i]
		p1 := vertices[(i+1)%n]
		cross := vec2.Cross(p0, p1)
		areaSum += cross
		cx += (p0.X() + p1.X()) * cross
		cy += (p0.Y() + p1.Y()) * cross
	}

	if math.Abs(areaSum) < vec2.Eps {
		// Degenerate (collinear) polygon: fall back to the vertex average.
		var sum vec2.Vector2
		for _, v := range vertices {
			sum = sum.Add(v)
		}
		return sum.Mul(1.0 / float64(n))
	}

	area := areaSum / 2
	return vec2.New(cx/(6*area), cy/(6*area))
}

// PointOnSegment reports whether p lies on the closed segment a->b, using
// a collinearity-and-within-bounds test with tolerance eps. eps == 0 makes
// the test exact (the strict-mode simplex containment check in spec.md
// §4.2).
func PointOnSegment(p, a, b vec2.Vector2, eps float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)

	if math.Abs(vec2.Cross(ab, ap)) > eps {
		return false
	}

	dot := ap.Dot(ab)
	lenSqr := ab.Dot(ab)
	if lenSqr <= eps {
		return ap.Dot(ap) <= eps
	}
	return dot >= -eps && dot <= lenSqr+eps
}

// ProjectPointToSegment returns the closest point to p on the closed
// segment a->b.
func ProjectPointToSegment(p, a, b vec2.Vector2) vec2.Vector2 {
	ab := b.Sub(a)
	lenSqr := ab.Dot(ab)
	if lenSqr < vec2.Eps {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSqr
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// TriangleContainsOrigin reports whether the origin lies inside triangle
// a-b-c using the three-cross-product same-sign test. When strict is
// false, a zero cross product (origin exactly on an edge) still counts as
// contained.
func TriangleContainsOrigin(a, b, c vec2.Vector2, strict bool) bool {
	c1 := vec2.Cross(b.Sub(a), a.Mul(-1))
	c2 := vec2.Cross(c.Sub(b), b.Mul(-1))
	c3 := vec2.Cross(a.Sub(c), c.Mul(-1))

	if strict {
		return (c1 > 0 && c2 > 0 && c3 > 0) || (c1 < 0 && c2 < 0 && c3 < 0)
	}
	return (c1 >= 0 && c2 >= 0 && c3 >= 0) || (c1 <= 0 && c2 <= 0 && c3 <= 0)
}
