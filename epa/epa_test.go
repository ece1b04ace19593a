package epa

import (
	"math"
	"testing"

	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

func posedCircle(radius float64, pos vec2.Vector2) shape.Posed {
	s := shape.NewCircle(radius)
	return shape.NewPosed(&s, pos, 0)
}

func posedRectangle(w, h float64, pos vec2.Vector2, angle float64) shape.Posed {
	s := shape.NewRectangle(w, h)
	return shape.NewPosed(&s, pos, angle)
}

func TestRunOverlappingCircles(t *testing.T) {
	a := posedCircle(1, vec2.New(0, 0))
	b := posedCircle(1, vec2.New(1, 0))

	ok, seed := gjk.Intersects(a, b)
	if !ok {
		t.Fatal("expected circles to intersect")
	}

	info, err := Run(a, b, seed)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantDepth := 1.0 // centres 1 apart, radii sum 2
	if math.Abs(info.Penetration-wantDepth) > 1e-4 {
		t.Errorf("Penetration = %v, want ~%v", info.Penetration, wantDepth)
	}
	if info.Normal.X() >= 0 {
		t.Errorf("Normal = %v, want to point from B toward A (-x)", info.Normal)
	}
}

func TestRunOverlappingRectangles(t *testing.T) {
	a := posedRectangle(2, 2, vec2.New(0, 0), 0)
	b := posedRectangle(2, 2, vec2.New(1.5, 0), 0)

	ok, seed := gjk.Intersects(a, b)
	if !ok {
		t.Fatal("expected rectangles to intersect")
	}

	info, err := Run(a, b, seed)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantDepth := 0.5
	if math.Abs(info.Penetration-wantDepth) > 1e-4 {
		t.Errorf("Penetration = %v, want ~%v", info.Penetration, wantDepth)
	}
}

func TestRunRejectsSinglePointSeed(t *testing.T) {
	var seed gjk.Simplex
	seed.Insert(gjk.Witness{Result: vec2.New(0, 0)})

	a := posedCircle(1, vec2.New(0, 0))
	b := posedCircle(1, vec2.New(0.5, 0))

	_, err := Run(a, b, seed)
	if err == nil {
		t.Error("expected error for a single-point seed simplex")
	}
}

func TestRunDeeplyNestedCircles(t *testing.T) {
	a := posedCircle(5, vec2.New(0, 0))
	b := posedCircle(1, vec2.New(0, 0))

	ok, seed := gjk.Intersects(a, b)
	if !ok {
		t.Fatal("expected fully-contained circles to intersect")
	}

	info, err := Run(a, b, seed)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if info.Penetration <= 0 {
		t.Errorf("Penetration = %v, want > 0", info.Penetration)
	}
}
