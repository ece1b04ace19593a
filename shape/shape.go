// Package shape models the closed set of convex shape variants the
// collision core understands, the posed-shape descriptor that places a
// shape in the world, and the broad-phase AABB primitive built from a
// posed shape.
//
// Shapes are modelled as a single tagged-variant struct rather than an
// open interface hierarchy: the set of kinds is small and fixed (spec.md
// §9 "Polymorphism over shape kinds"), so dispatch for farthest-point,
// centroid, and AABB derivation all go through an exhaustive switch on
// Kind instead of per-type methods.
package shape

import (
	"math"

	"github.com/vecgeo/collide2d/vec2"
)

// Kind tags which variant a Shape value holds.
type Kind uint8

const (
	KindPoint Kind = iota
	KindPolygon
	KindRectangle
	KindCircle
	KindEllipse
	KindEdge
	KindCapsule
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindPolygon:
		return "Polygon"
	case KindRectangle:
		return "Rectangle"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindEdge:
		return "Edge"
	case KindCapsule:
		return "Capsule"
	default:
		return "Unknown"
	}
}

// Shape is a convex shape in its own local frame, centred at the local
// origin (with the exception of Point, Polygon and Edge, whose geometry is
// carried entirely in Vertices).
//
// Field usage by Kind:
//   - Point: Vertices holds exactly one point.
//   - Polygon: Vertices holds the CCW vertex list, open or closed (the
//     engine tolerates both — see OpenVertices()).
//   - Rectangle: Vertices is pre-built at construction time from Width/
//     Height, so it dispatches identically to Polygon everywhere except
//     Kind().
//   - Circle: Radius is the radius.
//   - Ellipse: HalfExtent is (a, b), the semi-axes.
//   - Edge: Vertices holds exactly [start, end].
//   - Capsule: HalfExtent is the pre-rounding half (width, height); the
//     long axis (whichever component is larger) carries the stadium's
//     straight segment, the short axis gives the round-end radius.
type Shape struct {
	kind       Kind
	vertices   []vec2.Vector2
	radius     float64
	halfExtent vec2.Vector2
}

// NewPoint builds a Point shape at p.
func NewPoint(p vec2.Vector2) Shape {
	return Shape{kind: KindPoint, vertices: []vec2.Vector2{p}}
}

// NewPolygon builds a convex, counter-clockwise polygon. The vertex list
// may be open or closed; callers are not required to repeat the first
// vertex at the end.
func NewPolygon(vertices []vec2.Vector2) Shape {
	cp := make([]vec2.Vector2, len(vertices))
	copy(cp, vertices)
	return Shape{kind: KindPolygon, vertices: cp}
}

// NewRectangle builds a rectangle of the given full width/height centred
// at the local origin, CCW starting at the bottom-left corner.
func NewRectangle(width, height float64) Shape {
	hw, hh := width/2, height/2
	return Shape{
		kind: KindRectangle,
		vertices: []vec2.Vector2{
			vec2.New(-hw, -hh),
			vec2.New(hw, -hh),
			vec2.New(hw, hh),
			vec2.New(-hw, hh),
		},
	}
}

// NewCircle builds a circle of the given radius, centred at the local
// origin.
func NewCircle(radius float64) Shape {
	return Shape{kind: KindCircle, radius: radius}
}

// NewEllipse builds an axis-aligned ellipse with semi-axes (halfWidth a,
// halfHeight b), centred at the local origin.
func NewEllipse(halfWidth, halfHeight float64) Shape {
	return Shape{kind: KindEllipse, halfExtent: vec2.New(halfWidth, halfHeight)}
}

// NewEdge builds a line segment from start to end.
func NewEdge(start, end vec2.Vector2) Shape {
	return Shape{kind: KindEdge, vertices: []vec2.Vector2{start, end}}
}

// NewCapsule builds a stadium shape with the given full width/height,
// centred at the local origin. The longer of width/height carries the
// straight segment; the shorter gives the round-end radius.
func NewCapsule(width, height float64) Shape {
	return Shape{kind: KindCapsule, halfExtent: vec2.New(width/2, height/2)}
}

// Kind reports which variant the shape holds.
func (s Shape) Kind() Kind { return s.kind }

// Radius returns the Circle's radius (zero for other kinds).
func (s Shape) Radius() float64 { return s.radius }

// HalfExtent returns the Ellipse/Capsule semi-axes (zero for other kinds).
func (s Shape) HalfExtent() vec2.Vector2 { return s.halfExtent }

// Vertices returns the shape's raw vertex list (Point, Polygon, Rectangle,
// Edge). The slice is owned by the caller's copy, not shared with s.
func (s Shape) Vertices() []vec2.Vector2 {
	cp := make([]vec2.Vector2, len(s.vertices))
	copy(cp, s.vertices)
	return cp
}

// OpenVertices returns the polygon's vertex list with a trailing
// repeated-first vertex stripped, so callers always iterate an open loop
// regardless of how the polygon was constructed.
func (s Shape) OpenVertices() []vec2.Vector2 {
	v := s.vertices
	if len(v) >= 2 && vec2.NearlyEqual(v[0], v[len(v)-1], vec2.EpsGeometry) {
		v = v[:len(v)-1]
	}
	cp := make([]vec2.Vector2, len(v))
	copy(cp, v)
	return cp
}

// capsuleAxisAndRadius splits a capsule's half-extent into its long-axis
// half-length and round-end radius, per "long axis whichever is larger".
func capsuleAxisAndRadius(halfExtent vec2.Vector2) (segmentHalfLen float64, radius float64, horizontal bool) {
	if halfExtent.X() >= halfExtent.Y() {
		radius = halfExtent.Y()
		segmentHalfLen = math.Max(halfExtent.X()-radius, 0)
		return segmentHalfLen, radius, true
	}
	radius = halfExtent.X()
	segmentHalfLen = math.Max(halfExtent.Y()-radius, 0)
	return segmentHalfLen, radius, false
}

// Farthest returns the farthest point on the shape, in the shape's own
// local frame, in direction d. d is assumed non-zero except for Circle
// (where Farthest(0) falls back to the local origin).
func (s Shape) Farthest(d vec2.Vector2) vec2.Vector2 {
	switch s.kind {
	case KindPoint:
		return s.vertices[0]

	case KindPolygon, KindRectangle:
		return farthestVertex(s.vertices, d)

	case KindCircle:
		if vec2.NearlyZero(d, vec2.Eps) {
			return vec2.New(0, 0)
		}
		return d.Normalize().Mul(s.radius)

	case KindEllipse:
		return EllipseFarthest(s.halfExtent, d)

	case KindEdge:
		a, b := s.vertices[0], s.vertices[1]
		if a.Dot(d) >= b.Dot(d) {
			return a
		}
		return b

	case KindCapsule:
		return CapsuleFarthest(s.halfExtent, d)
	}
	return vec2.New(0, 0)
}

// farthestVertex finds the vertex maximising (v · d), tie-breaking toward
// the first vertex encountered (spec.md §4.1).
func farthestVertex(vertices []vec2.Vector2, d vec2.Vector2) vec2.Vector2 {
	if len(vertices) == 0 {
		return vec2.New(0, 0)
	}
	best := vertices[0]
	bestDot := best.Dot(d)
	for _, v := range vertices[1:] {
		dot := v.Dot(d)
		if dot > bestDot {
			best = v
			bestDot = dot
		}
	}
	return best
}

// Centroid returns the shape's local-frame centroid. For Polygon and
// Rectangle this is the area-weighted centroid (spec.md §4.3); for Point
// it is the point itself and for Edge the segment's midpoint; for the
// other kinds it is the local origin they are centred on.
func (s Shape) Centroid() vec2.Vector2 {
	switch s.kind {
	case KindPoint:
		return s.vertices[0]
	case KindPolygon, KindRectangle:
		return PolygonCentroid(s.OpenVertices())
	case KindEdge:
		return s.vertices[0].Add(s.vertices[1]).Mul(0.5)
	default:
		return vec2.New(0, 0)
	}
}
