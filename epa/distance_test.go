package epa

import (
	"math"
	"testing"

	"github.com/vecgeo/collide2d/vec2"
)

func TestDistanceSeparatedCircles(t *testing.T) {
	a := posedCircle(1, vec2.New(0, 0))
	b := posedCircle(1, vec2.New(5, 0))

	pair := Distance(a, b)
	want := 3.0 // gap between the two circles' boundaries
	if math.Abs(pair.Distance-want) > 1e-4 {
		t.Errorf("Distance = %v, want ~%v", pair.Distance, want)
	}
	if !close2(pair.A, vec2.New(1, 0), 1e-6) {
		t.Errorf("closest point on A = %v, want (1,0)", pair.A)
	}
	if !close2(pair.B, vec2.New(4, 0), 1e-6) {
		t.Errorf("closest point on B = %v, want (4,0)", pair.B)
	}
}

func TestDistanceSeparatedRectangles(t *testing.T) {
	a := posedRectangle(2, 2, vec2.New(0, 0), 0)
	b := posedRectangle(2, 2, vec2.New(5, 0), 0)

	pair := Distance(a, b)
	want := 3.0 // gap between x=1 and x=4 faces
	if math.Abs(pair.Distance-want) > 1e-4 {
		t.Errorf("Distance = %v, want ~%v", pair.Distance, want)
	}
}

func TestDistanceDiagonalSeparation(t *testing.T) {
	a := posedCircle(1, vec2.New(0, 0))
	b := posedCircle(1, vec2.New(3, 4)) // centres 5 apart

	pair := Distance(a, b)
	want := 3.0 // 5 - radius(1) - radius(1)
	if math.Abs(pair.Distance-want) > 1e-4 {
		t.Errorf("Distance = %v, want ~%v", pair.Distance, want)
	}
}
