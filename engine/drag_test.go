package engine

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
	"gridwire/router"
)

// TestRegenSegmentsClearsOwnGeometryBeforeRouting is the regression
// case for the remove/reroute/reinsert bracketing in RegenSegments: a
// drag node's own connector segments must be cleared from the matrix
// before the router runs, not reinserted beforehand. The connector
// here owns a "blocker" segment sitting exactly on the bend cell the
// router should prefer once that stale geometry is cleared; if the
// reinsert happens before GenerateSegments instead of after, the
// router still sees the blocker occupying that cell and is forced to
// the other, worse bend.
func TestRegenSegmentsClearsOwnGeometryBeforeRouting(t *testing.T) {
	mtx := matrix.New()
	ref := &model.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 5}
	blocker := &model.Segment{StartX: 10, StartY: -5, EndX: 10, EndY: 5}
	c := &model.Connector{ID: "C1", Segments: []*model.Segment{ref, blocker}}
	mtx.AddSegment(ref, 0, 0, 10, 5)
	mtx.AddSegment(blocker, 10, -5, 10, 5)

	node := &DragNode{X: 0, Y: 0, Conn: c, Seg: ref}
	r := router.NewSimpleRouter()

	RegenSegments(mtx, r, nil, 0, 0, []*DragNode{node}, nil, "simple", router.JumpNone)

	// The new route is appended to c.Segments next to ref and blocker;
	// every entry other than those two is router-produced.
	var newSegs []*model.Segment
	for _, s := range c.Segments {
		if s != ref && s != blocker {
			newSegs = append(newSegs, s)
		}
	}
	if len(newSegs) != 2 {
		t.Fatalf("got %d router-produced segments, want 2 (one bend): %+v", len(newSegs), newSegs)
	}
	bendsAt := func(x, y float64) bool {
		for _, s := range newSegs {
			if s.HasEndpoint(x, y) {
				return true
			}
		}
		return false
	}
	if !bendsAt(10, 0) {
		t.Fatalf("route did not bend at the now-free cell (10,0): %+v (blocker segment was still blocking it when the router ran)", newSegs)
	}
	if bendsAt(0, 5) {
		t.Fatalf("route bent at (0,5), the fallback used only when (10,0) looks occupied: %+v", newSegs)
	}
}

func TestGenerateRoutingStartNodesDraggedStubIsAnchored(t *testing.T) {
	d := newDrawn()
	obj := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 0, StartY: -5, EndX: 10, EndY: 5}
	p := &model.Port{ID: d.NextPortID(), X: 0, Y: 0, Obj: obj}
	obj.Port = append(obj.Port, p)
	d.AddObject(obj)
	d.AddPort(p)

	dragged := &model.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}
	stub := &model.Segment{StartX: 10, StartY: 0, EndX: 10, EndY: 10}
	c := &model.Connector{ID: d.NextConnID(), Segments: []*model.Segment{dragged, stub}, Port: []*model.Port{p}}
	p.Conn = append(p.Conn, c)
	d.AddConnector(c)

	dragNodes, segsToRemove, connList := GenerateRoutingStartNodes(d, []*model.Segment{dragged}, []*model.Object{obj})

	if len(connList) != 1 || connList[0] != c {
		t.Fatalf("connList = %+v, want [c]", connList)
	}
	if len(dragNodes) != 1 {
		t.Fatalf("got %d drag nodes, want 1 (anchored at the stub's dangling far end): %+v", len(dragNodes), dragNodes)
	}
	if dragNodes[0].X != 10 || dragNodes[0].Y != 10 {
		t.Fatalf("drag node anchor = (%g,%g), want (10,10)", dragNodes[0].X, dragNodes[0].Y)
	}
	if len(segsToRemove) != 1 || segsToRemove[0] != stub {
		t.Fatalf("segsToRemove = %+v, want [stub]", segsToRemove)
	}
}

func TestDragSegmentMovesAndReroutes(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	objA := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 0, StartY: -5, EndX: 10, EndY: 5}
	pA := &model.Port{ID: d.NextPortID(), X: 0, Y: 0, Obj: objA}
	objA.Port = append(objA.Port, pA)
	d.AddObject(objA)
	d.AddPort(pA)

	objB := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 40, StartY: -5, EndX: 50, EndY: 5}
	pB := &model.Port{ID: d.NextPortID(), X: 40, Y: 0, Obj: objB}
	objB.Port = append(objB.Port, pB)
	d.AddObject(objB)
	d.AddPort(pB)

	seg := &model.Segment{StartX: 0, StartY: 0, EndX: 40, EndY: 0}
	c, err := DrawConnector(d, mtx, []*model.Segment{seg})
	if err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}

	r := router.NewSimpleRouter()
	results := DragSegment(d, mtx, r, []*model.Segment{seg}, nil, 0, 20, "simple", router.JumpNone)

	if len(results) != 1 {
		t.Fatalf("got %d connectors from DragSegment, want 1", len(results))
	}
	master := results[0]
	if master != c && !connHasAnySegment(master, []*model.Segment{seg}) {
		t.Fatalf("expected the dragged segment to remain part of the returned master")
	}
	if seg.StartY != 20 {
		t.Fatalf("seg.StartY = %g, want 20 after the drag offset", seg.StartY)
	}
}
