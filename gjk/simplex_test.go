package gjk

import (
	"testing"

	"github.com/vecgeo/collide2d/vec2"
)

func TestSimplexInsertAndLen(t *testing.T) {
	var s Simplex
	s.Insert(Witness{Result: vec2.New(1, 0)})
	s.Insert(Witness{Result: vec2.New(0, 1)})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.LastVertex().Result != vec2.New(0, 1) {
		t.Errorf("LastVertex() = %v, want (0,1)", s.LastVertex().Result)
	}
}

func TestSimplexLastVertexTriangle(t *testing.T) {
	var s Simplex
	s.Insert(Witness{A: vec2.New(0, 0), B: vec2.New(-1, -1), Result: vec2.New(-1, -1)})
	s.Insert(Witness{A: vec2.New(0, 0), B: vec2.New(1, -1), Result: vec2.New(1, -1)})
	s.Insert(Witness{A: vec2.New(0, 0), B: vec2.New(0, 1), Result: vec2.New(0, 1)})
	s.Insert(s.At(0))

	if s.LastVertex().Result != vec2.New(0, 1) {
		t.Errorf("LastVertex() for triangle = %v, want (0,1)", s.LastVertex().Result)
	}
}

func TestSimplexContains(t *testing.T) {
	var s Simplex
	w := Witness{A: vec2.New(1, 1), B: vec2.New(0, 0), Result: vec2.New(1, 1)}
	s.Insert(w)

	if !s.Contains(w) {
		t.Error("expected simplex to contain inserted witness")
	}
	other := Witness{A: vec2.New(2, 2), B: vec2.New(0, 0), Result: vec2.New(2, 2)}
	if s.Contains(other) {
		t.Error("expected simplex to not contain a different witness")
	}
}

func TestSimplexFuzzyContains(t *testing.T) {
	var s Simplex
	s.Insert(Witness{Result: vec2.New(1, 1)})

	near := Witness{Result: vec2.New(1.0000001, 1)}
	if !s.FuzzyContains(near, 1e-3) {
		t.Error("expected near witness to fuzzy-match within loose tolerance")
	}
	if s.FuzzyContains(near, 1e-15) {
		t.Error("expected near witness to not fuzzy-match within tight tolerance")
	}
}

func TestSimplexContainsOriginSegment(t *testing.T) {
	var s Simplex
	s.Insert(Witness{Result: vec2.New(-1, 0)})
	s.Insert(Witness{Result: vec2.New(1, 0)})

	if !s.ContainsOrigin(true) {
		t.Error("expected segment through origin to contain it")
	}

	var off Simplex
	off.Insert(Witness{Result: vec2.New(-1, 1)})
	off.Insert(Witness{Result: vec2.New(1, 1)})
	if off.ContainsOrigin(true) {
		t.Error("expected segment above origin to not contain it")
	}
}

func TestSimplexReset(t *testing.T) {
	var s Simplex
	s.Insert(Witness{Result: vec2.New(1, 1)})
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
}
