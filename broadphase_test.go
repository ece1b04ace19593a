package collide2d

import (
	"testing"

	"github.com/vecgeo/collide2d/shape"
	"github.com/vecgeo/collide2d/vec2"
)

func TestBroadPhaseFindsOverlappingPair(t *testing.T) {
	bodies := []shape.Body{
		body(shape.NewCircle(1), vec2.New(0, 0), 0),
		body(shape.NewCircle(1), vec2.New(1, 0), 0),
		body(shape.NewCircle(1), vec2.New(20, 20), 0),
	}

	pairs := BroadPhase(bodies)
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1", len(pairs))
	}
	if pairs[0].BodyA != bodies[0] || pairs[0].BodyB != bodies[1] {
		t.Errorf("pair = (%v,%v), want (bodies[0],bodies[1])", pairs[0].BodyA, pairs[0].BodyB)
	}
}

func TestBroadPhaseNoOverlaps(t *testing.T) {
	bodies := []shape.Body{
		body(shape.NewCircle(1), vec2.New(0, 0), 0),
		body(shape.NewCircle(1), vec2.New(50, 0), 0),
	}

	pairs := BroadPhase(bodies)
	if len(pairs) != 0 {
		t.Errorf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestBroadPhaseEmptyAndSingleton(t *testing.T) {
	if pairs := BroadPhase(nil); len(pairs) != 0 {
		t.Errorf("BroadPhase(nil) = %v, want empty", pairs)
	}

	single := []shape.Body{body(shape.NewCircle(1), vec2.New(0, 0), 0)}
	if pairs := BroadPhase(single); len(pairs) != 0 {
		t.Errorf("BroadPhase(single) = %v, want empty", pairs)
	}
}

func TestBroadPhaseAllPairsAmongCluster(t *testing.T) {
	bodies := []shape.Body{
		body(shape.NewCircle(1), vec2.New(0, 0), 0),
		body(shape.NewCircle(1), vec2.New(0.5, 0), 0),
		body(shape.NewCircle(1), vec2.New(-0.5, 0), 0),
	}

	pairs := BroadPhase(bodies)
	if len(pairs) != 3 {
		t.Errorf("len(pairs) = %d, want 3 (all mutually overlapping)", len(pairs))
	}
}
