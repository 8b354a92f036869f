package engine

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
)

func segAt(x1, y1, x2, y2 float64) *model.Segment {
	return &model.Segment{StartX: x1, StartY: y1, EndX: x2, EndY: y2}
}

func TestRepairMaterializesTJunction(t *testing.T) {
	mtx := matrix.New()
	c := &model.Connector{
		ID: "C1",
		Segments: []*model.Segment{
			segAt(0, 0, 10, 0),
			segAt(5, 0, 5, 10),
		},
	}
	for _, s := range c.Segments {
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}

	RepairSegAndJunc(mtx, c, true)

	if len(c.Segments) != 3 {
		t.Fatalf("got %d segments, want 3: %+v", len(c.Segments), c.Segments)
	}
	want := []*model.Segment{segAt(0, 0, 5, 0), segAt(5, 0, 10, 0), segAt(5, 0, 5, 10)}
	if !segSetEqual(c.Segments, want) {
		t.Fatalf("segments = %+v, want %+v", c.Segments, want)
	}
	if len(c.Junction) != 1 || c.Junction[0].X != 5 || c.Junction[0].Y != 0 {
		t.Fatalf("junction = %+v, want [{5 0}]", c.Junction)
	}
}

func TestRepairCoalescesCollinearDangling(t *testing.T) {
	mtx := matrix.New()
	c := &model.Connector{
		ID: "C1",
		Segments: []*model.Segment{
			segAt(0, 0, 5, 0),
			segAt(5, 0, 10, 0),
		},
	}
	for _, s := range c.Segments {
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}

	RepairSegAndJunc(mtx, c, true)

	if len(c.Segments) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(c.Segments), c.Segments)
	}
	got := c.Segments[0]
	if !got.EndpointEqual(segAt(0, 0, 10, 0)) {
		t.Fatalf("segment = %+v, want (0,0)-(10,0)", got)
	}
	if len(c.Junction) != 0 {
		t.Fatalf("junction = %+v, want none", c.Junction)
	}
}

func TestRepairLeavesPortAnchoredDanglingUnmerged(t *testing.T) {
	mtx := matrix.New()
	c := &model.Connector{
		ID: "C1",
		Segments: []*model.Segment{
			segAt(0, 0, 5, 0),
			segAt(5, 0, 10, 0),
		},
		Port: []*model.Port{{ID: "P1", X: 5, Y: 0}},
	}
	for _, s := range c.Segments {
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}

	RepairSegAndJunc(mtx, c, true)

	if len(c.Segments) != 2 {
		t.Fatalf("got %d segments, want 2 (port at (5,0) anchors the boundary): %+v", len(c.Segments), c.Segments)
	}
}
