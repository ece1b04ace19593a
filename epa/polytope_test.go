package epa

import (
	"testing"

	"github.com/vecgeo/collide2d/gjk"
	"github.com/vecgeo/collide2d/vec2"
)

func triangleSimplex(a, b, c vec2.Vector2) gjk.Simplex {
	var s gjk.Simplex
	s.Insert(gjk.Witness{Result: a})
	s.Insert(gjk.Witness{Result: b})
	s.Insert(gjk.Witness{Result: c})
	s.Insert(s.At(0))
	return s
}

func TestPolytopeClosestEdgeTriangle(t *testing.T) {
	// Edge (0,1) -- the vertical segment x=3, y in [-1,1] -- sits at
	// distance 3 from the origin; the other two edges are both farther
	// (their closest point clamps to a shared endpoint at distance sqrt(10)).
	seed := triangleSimplex(vec2.New(3, 1), vec2.New(3, -1), vec2.New(10, 0))
	poly := NewPolytope(seed)

	i, j := poly.ClosestEdge()

	if poly.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", poly.Len())
	}
	if !(i == 0 && j == 1) {
		t.Errorf("ClosestEdge() = (%d,%d), want (0,1)", i, j)
	}
}

func TestPolytopeInsertBetweenMiddle(t *testing.T) {
	seed := triangleSimplex(vec2.New(-1, -1), vec2.New(1, -1), vec2.New(0, 2))
	poly := NewPolytope(seed)

	newPoint := gjk.Witness{Result: vec2.New(0, -2)}
	poly.InsertBetween(0, 1, newPoint)

	if poly.Len() != 4 {
		t.Fatalf("Len() after insert = %d, want 4", poly.Len())
	}
	if poly.At(1).Result != newPoint.Result {
		t.Errorf("inserted vertex at index 1 = %v, want %v", poly.At(1).Result, newPoint.Result)
	}
}

func TestPolytopeInsertBetweenClosingEdge(t *testing.T) {
	seed := triangleSimplex(vec2.New(-1, -1), vec2.New(1, -1), vec2.New(0, 2))
	poly := NewPolytope(seed)

	newPoint := gjk.Witness{Result: vec2.New(-1, 0)}
	poly.InsertBetween(2, 0, newPoint)

	if poly.Len() != 4 {
		t.Fatalf("Len() after closing-edge insert = %d, want 4", poly.Len())
	}
	if poly.At(3).Result != newPoint.Result {
		t.Errorf("inserted vertex at index 3 = %v, want %v", poly.At(3).Result, newPoint.Result)
	}
}

func TestPolytopeContains(t *testing.T) {
	seed := triangleSimplex(vec2.New(-1, -1), vec2.New(1, -1), vec2.New(0, 2))
	poly := NewPolytope(seed)

	if !poly.Contains(poly.At(0)) {
		t.Error("expected polytope to contain its own vertex")
	}
	if poly.Contains(gjk.Witness{A: vec2.New(9, 9), B: vec2.New(8, 8)}) {
		t.Error("expected polytope to not contain an unrelated witness")
	}
}
