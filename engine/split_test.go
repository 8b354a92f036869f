package engine

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
)

func TestSplitThenMergeRoundTrip(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	segs := []*model.Segment{
		segAt(0, 0, 10, 0),
		segAt(10, 0, 10, 10),
	}
	c, err := DrawConnector(d, mtx, segs)
	if err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}
	if len(c.Segments) != 2 {
		t.Fatalf("got %d segments before split, want 2: %+v", len(c.Segments), c.Segments)
	}
	originalSegs := append([]*model.Segment{}, c.Segments...)

	parts := SplitConnectorAtSegments(d, mtx, []SegRef{{Conn: c, Seg: c.Segments[1]}})
	if len(parts) != 2 {
		t.Fatalf("got %d partitions, want 2: %+v", len(parts), parts)
	}
	if len(d.Connectors) != 2 {
		t.Fatalf("got %d connectors after split, want 2", len(d.Connectors))
	}

	merged := ShortAndMergeConnectors(d, mtx, parts)
	if len(merged) != 1 {
		t.Fatalf("got %d connectors after merge, want 1 (isomorphic to the pre-split graph): %+v", len(merged), merged)
	}
	if len(d.Connectors) != 1 {
		t.Fatalf("got %d connectors in drawn after merge, want 1", len(d.Connectors))
	}

	if !segSetEqual(merged[0].Segments, originalSegs) {
		t.Fatalf("merged segments %+v are not isomorphic to the original %+v", merged[0].Segments, originalSegs)
	}
}
