package router

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
)

func TestGenerateSegmentsStraightLine(t *testing.T) {
	mtx := matrix.New()
	r := NewSimpleRouter()

	segs, fx, fy := r.GenerateSegments(mtx, 0, 0, 10, 0, "simple", JumpNone)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 for a straight run", len(segs))
	}
	if fx != 10 || fy != 0 {
		t.Fatalf("final point = (%g,%g), want (10,0)", fx, fy)
	}
	if !mtx.Contains(segs[0]) {
		t.Fatal("expected the router to register its segment with the matrix")
	}
}

func TestGenerateSegmentsBend(t *testing.T) {
	mtx := matrix.New()
	r := NewSimpleRouter()

	segs, fx, fy := r.GenerateSegments(mtx, 0, 0, 10, 10, "simple", JumpNone)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 for a diagonal run", len(segs))
	}
	if fx != 10 || fy != 10 {
		t.Fatalf("final point = (%g,%g), want (10,10)", fx, fy)
	}
	if !segs[0].HasEndpoint(0, 0) || !segs[1].HasEndpoint(10, 10) {
		t.Fatalf("segments do not span the requested endpoints: %+v", segs)
	}
	bx, by, ok := segs[0].OtherEndpoint(0, 0)
	if !ok || !segs[1].HasEndpoint(bx, by) {
		t.Fatalf("the two segments do not share a bend point: %+v", segs)
	}
}

func TestChooseBendPrefersFreeCell(t *testing.T) {
	mtx := matrix.New()
	r := NewSimpleRouter()

	// Occupy the horizontal-first bend point (10,0); the vertical-first
	// bend point (0,5) stays free.
	blocker := &model.Segment{StartX: 10, StartY: -5, EndX: 10, EndY: 5}
	mtx.AddSegment(blocker, 10, -5, 10, 5)

	x, y := r.chooseBend(mtx, 0, 0, 10, 5)
	if x == 10 && y == 0 {
		t.Fatalf("chose the occupied horizontal-first bend (%g,%g) when the vertical-first bend was free", x, y)
	}
	if x != 0 || y != 5 {
		t.Fatalf("chooseBend = (%g,%g), want the free vertical-first bend (0,5)", x, y)
	}
}
