package shape

import "github.com/vecgeo/collide2d/vec2"

// Posed is a non-owning view of a Shape placed in the world: a
// translation and a rotation. It does not mutate the shape it views.
type Posed struct {
	Shape       *Shape
	Translation vec2.Vector2
	Rotation    vec2.Rotation2
}

// NewPosed builds a posed-shape descriptor. angle is in radians.
func NewPosed(s *Shape, translation vec2.Vector2, angle float64) Posed {
	return Posed{Shape: s, Translation: translation, Rotation: vec2.NewRotation2(angle)}
}

// Farthest returns the farthest point on the posed shape, in world space,
// in world-space direction d (spec.md §4.1): the direction is rotated
// into the shape's local frame, the local farthest point is found, and
// the result is transformed back by rotation then translation.
func (p Posed) Farthest(d vec2.Vector2) vec2.Vector2 {
	localDirection := p.Rotation.Inverse().Rotate(d)
	localPoint := p.Shape.Farthest(localDirection)
	return p.Rotation.Rotate(localPoint).Add(p.Translation)
}

// ToWorld transforms a local-frame point into world space.
func (p Posed) ToWorld(local vec2.Vector2) vec2.Vector2 {
	return p.Rotation.Rotate(local).Add(p.Translation)
}

// ToLocal transforms a world-space point into the shape's local frame.
func (p Posed) ToLocal(world vec2.Vector2) vec2.Vector2 {
	return p.Rotation.Inverse().Rotate(world.Sub(p.Translation))
}

// Body is the external surface bodies present to the collision core: a
// shape, a world rotation (radians), and a world position. Dynamics state
// (mass, velocity, material) is owned by the caller's body layer and is
// not part of this contract (spec.md §4.10, §1 scope).
type Body interface {
	CollisionShape() *Shape
	Position() vec2.Vector2
	Angle() float64
}

// PosedOf builds the posed-shape view of a Body.
func PosedOf(b Body) Posed {
	return NewPosed(b.CollisionShape(), b.Position(), b.Angle())
}

// StaticBody is a minimal Body implementation for callers that have no
// richer body type of their own (tests, simple scenes).
type StaticBody struct {
	ShapeValue *Shape
	Pos        vec2.Vector2
	AngleValue float64
}

func (b *StaticBody) CollisionShape() *Shape { return b.ShapeValue }
func (b *StaticBody) Position() vec2.Vector2 { return b.Pos }
func (b *StaticBody) Angle() float64         { return b.AngleValue }
