// Package vec2 provides the 2D linear-algebra primitives the collision core
// is built on: a vector type, a rotation, and the tolerances used for fuzzy
// comparison throughout GJK/EPA.
package vec2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is an ordered pair of reals. It is mgl64.Vec2 directly so callers
// can use the library's Add/Sub/Dot/Len/Normalize methods without a wrapper
// layer.
type Vector2 = mgl64.Vec2

const (
	// EpsGeometry is the default tolerance for fuzzy geometric comparisons
	// (point equality, segment membership, simplex containment). 1e-7 is
	// appropriate for the float64 scalar this module builds with; a
	// single-precision build would want 1e-4 instead (see SPEC_FULL.md §5).
	EpsGeometry = 1e-7

	// Eps is a generic machine-epsilon-scale tolerance for guarding
	// divisions and near-zero-length checks.
	Eps = 2.220446049250313e-16
)

// New builds a Vector2 from components.
func New(x, y float64) Vector2 {
	return Vector2{x, y}
}

// Cross computes the 2D scalar cross product (the z-component of the 3D
// cross product of the two vectors extended into the xy-plane).
func Cross(a, b Vector2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// TripleCross computes a × (b × c) restricted to 2D, i.e. the vector
// b*(a·c) - c*(a·b). This is the standard GJK "perpendicular toward a third
// point" construction, used to find a search direction perpendicular to an
// edge but leaning toward a given point.
func TripleCross(a, b, c Vector2) Vector2 {
	return b.Mul(a.Dot(c)).Sub(c.Mul(a.Dot(b)))
}

// Perp rotates v by +90 degrees: (x, y) -> (-y, x).
func Perp(v Vector2) Vector2 {
	return Vector2{-v.Y(), v.X()}
}

// NearlyEqual reports whether a and b are less than eps apart (their
// squared distance is below eps²).
func NearlyEqual(a, b Vector2, eps float64) bool {
	d := a.Sub(b)
	return d.Dot(d) < eps*eps
}

// NearlyZero reports whether v's length is within eps of zero.
func NearlyZero(v Vector2, eps float64) bool {
	return v.Dot(v) < eps*eps
}

// Rotation2 represents a 2D rotation by an angle in radians. It is stored
// as cos/sin rather than recomputed on every use, the way the teacher's
// actor.Transform caches Rotation alongside InverseRotation.
type Rotation2 struct {
	cos, sin float64
}

// NewRotation2 builds a rotation from an angle in radians.
func NewRotation2(radians float64) Rotation2 {
	s, c := math.Sincos(radians)
	return Rotation2{cos: c, sin: s}
}

// Identity2 is the zero-angle rotation.
func Identity2() Rotation2 {
	return Rotation2{cos: 1, sin: 0}
}

// Rotate applies the rotation to v.
func (r Rotation2) Rotate(v Vector2) Vector2 {
	return Vector2{
		r.cos*v.X() - r.sin*v.Y(),
		r.sin*v.X() + r.cos*v.Y(),
	}
}

// Inverse returns the rotation's inverse (its transpose, since rotations
// are orthonormal).
func (r Rotation2) Inverse() Rotation2 {
	return Rotation2{cos: r.cos, sin: -r.sin}
}

// Cos returns the rotation's cosine component.
func (r Rotation2) Cos() float64 { return r.cos }

// Sin returns the rotation's sine component.
func (r Rotation2) Sin() float64 { return r.sin }

// Mat2 materialises the rotation as a mgl64.Mat2, matching the data model's
// "2x2 matrix" rotation representation (spec.md §3).
func (r Rotation2) Mat2() mgl64.Mat2 {
	return mgl64.Rotate2D(math.Atan2(r.sin, r.cos))
}
