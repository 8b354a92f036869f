package matrix

import (
	"testing"

	"gridwire/model"
)

func TestAddRemoveSegment(t *testing.T) {
	m := New()
	seg := &model.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}

	m.AddSegment(seg, 0, 0, 10, 0)
	if !m.Contains(seg) {
		t.Fatal("expected segment to be registered")
	}
	if !m.IsOccupied(5, 0) {
		t.Fatal("expected midpoint cell to be occupied")
	}
	if m.IsOccupied(5, 5) {
		t.Fatal("did not expect off-line cell to be occupied")
	}

	m.RemoveSegment(seg)
	if m.Contains(seg) {
		t.Fatal("expected segment to be unregistered")
	}
	if m.IsOccupied(5, 0) {
		t.Fatal("expected midpoint cell to be free after removal")
	}

	// Idempotent.
	m.RemoveSegment(seg)
}

func TestAddSegmentIsIdempotent(t *testing.T) {
	m := New()
	seg := &model.Segment{StartX: 0, StartY: 0, EndX: 5, EndY: 0}
	m.AddSegment(seg, 0, 0, 5, 0)
	m.AddSegment(seg, 0, 0, 5, 0)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestFromDrawn(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	c1 := &model.Connector{ID: "C1", Segments: []*model.Segment{
		{StartX: 0, StartY: 0, EndX: 10, EndY: 0},
	}}
	c2 := &model.Connector{ID: "C2", Segments: []*model.Segment{
		{StartX: 0, StartY: 0, EndX: 0, EndY: 10},
		{StartX: 0, StartY: 10, EndX: 10, EndY: 10},
	}}
	d.Connectors = append(d.Connectors, c1, c2)

	m := FromDrawn(d)
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	for _, c := range d.Connectors {
		for _, s := range c.Segments {
			if !m.Contains(s) {
				t.Fatalf("expected %+v to be registered", s)
			}
		}
	}
	if !m.IsOccupied(5, 0) || !m.IsOccupied(0, 5) || !m.IsOccupied(5, 10) {
		t.Fatal("expected every segment's midpoint cell to be occupied")
	}
}

func TestSegmentsAtCellVertical(t *testing.T) {
	m := New()
	seg := &model.Segment{StartX: 5, StartY: 0, EndX: 5, EndY: 10}
	m.AddSegment(seg, 5, 0, 5, 10)

	found := m.SegmentsAtCell(5, 5)
	if len(found) != 1 || found[0] != seg {
		t.Fatalf("SegmentsAtCell(5,5) = %v, want [seg]", found)
	}
}
