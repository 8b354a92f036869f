package engine

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
	"gridwire/router"
)

func newDrawn() *model.Drawn {
	return model.NewDrawn(10, 10, false)
}

func TestDrawConnectorFusesFourBendPath(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	objA := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 200, StartY: 40, EndX: 300, EndY: 200}
	portA := &model.Port{ID: d.NextPortID(), X: 300, Y: 130, Obj: objA}
	objA.Port = append(objA.Port, portA)
	d.AddObject(objA)
	d.AddPort(portA)

	objB := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 700, StartY: 300, EndX: 800, EndY: 450}
	portB := &model.Port{ID: d.NextPortID(), X: 700, Y: 380, Obj: objB}
	objB.Port = append(objB.Port, portB)
	d.AddObject(objB)
	d.AddPort(portB)

	path := [][2]float64{
		{300, 130}, {500, 130}, {500, 220}, {600, 220},
		{600, 130}, {650, 130}, {650, 380}, {700, 380},
	}
	segs := make([]*model.Segment, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		segs = append(segs, segAt(path[i][0], path[i][1], path[i+1][0], path[i+1][1]))
	}

	_, err := DrawConnector(d, mtx, segs)
	if err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}

	if len(d.Connectors) != 1 {
		t.Fatalf("got %d connectors, want 1", len(d.Connectors))
	}
	master := d.Connectors[0]
	if len(master.Port) != 2 {
		t.Fatalf("got %d ports on master, want 2: %+v", len(master.Port), master.Port)
	}
}

func TestConnectOverlapPortsZeroSegmentConnector(t *testing.T) {
	d := newDrawn()

	objA := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 0, StartY: 0, EndX: 50, EndY: 50}
	objB := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 200, StartY: 200, EndX: 250, EndY: 250}
	p1 := &model.Port{ID: d.NextPortID(), X: 100, Y: 100, Obj: objA}
	p2 := &model.Port{ID: d.NextPortID(), X: 100, Y: 100, Obj: objB}
	objA.Port = append(objA.Port, p1)
	objB.Port = append(objB.Port, p2)
	d.AddObject(objA)
	d.AddObject(objB)
	d.AddPort(p1)
	d.AddPort(p2)

	created := ConnectOverlapPorts(d, []*model.Port{p1, p2})
	if len(created) != 1 {
		t.Fatalf("got %d created connectors, want 1", len(created))
	}
	c := created[0]
	if len(c.Segments) != 0 {
		t.Fatalf("got %d segments, want 0", len(c.Segments))
	}
	if len(c.Port) != 2 {
		t.Fatalf("got %d ports, want 2", len(c.Port))
	}
	if d.ConnIndex(c) < 0 {
		t.Fatal("expected connector to appear in drawn.Connectors")
	}
	found := false
	for _, e := range d.Order {
		if e.Item == c {
			found = true
		}
	}
	if !found {
		t.Fatal("expected connector to appear in the z-order array")
	}

	// Calling it again must not duplicate the connector.
	again := ConnectOverlapPorts(d, []*model.Port{p1, p2})
	if len(again) != 0 {
		t.Fatalf("got %d connectors on re-run, want 0 (already linked)", len(again))
	}
}

func TestMoveObjCarriesGroupMembers(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	objA := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 0, StartY: -5, EndX: 10, EndY: 5}
	pA := &model.Port{ID: d.NextPortID(), X: 0, Y: 0, Obj: objA}
	objA.Port = append(objA.Port, pA)
	d.AddObject(objA)
	d.AddPort(pA)

	objB := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 100, StartY: 95, EndX: 110, EndY: 105}
	pB := &model.Port{ID: d.NextPortID(), X: 100, Y: 100, Obj: objB}
	objB.Port = append(objB.Port, pB)
	d.AddObject(objB)
	d.AddPort(pB)

	g := &model.Group{ID: d.NextGroupID(), Objects: []*model.Object{objA, objB}}
	objA.Group = g
	objB.Group = g
	d.Groups = append(d.Groups, g)

	seg := segAt(0, 0, 40, 0)
	if _, err := DrawConnector(d, mtx, []*model.Segment{seg}); err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}

	r := router.NewSimpleRouter()
	MoveObj(d, mtx, r, objA, 20, 0, "simple", router.JumpNone)

	if objB.StartX != 120 || objB.EndX != 130 {
		t.Fatalf("objB = {%g,%g}, want group member moved by the same offset as objA", objB.StartX, objB.EndX)
	}
	if pB.X != 120 {
		t.Fatalf("pB.X = %g, want 120 after the group move", pB.X)
	}
}

func TestPortForcedSplit(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	seg := segAt(0, 0, 10, 0)
	c, err := DrawConnector(d, mtx, []*model.Segment{seg})
	if err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}
	origID := c.ID
	origPos := d.ConnIndex(c)

	obj := &model.Object{ID: d.NextObjectID(), Shape: model.ShapeRect, StartX: 0, StartY: -10, EndX: 20, EndY: 10}
	p := &model.Port{ID: d.NextPortID(), X: 5, Y: 0, Obj: obj}
	obj.Port = append(obj.Port, p)
	d.AddObject(obj)
	d.AddPort(p)

	ConnectOverlapPortsForConn(d, mtx, nil, []*model.Port{p})

	if len(d.Connectors) != 2 {
		t.Fatalf("got %d connectors, want 2: %+v", len(d.Connectors), d.Connectors)
	}
	if d.Connectors[origPos].ID != origID {
		t.Fatalf("expected the first partition to keep the original ID and position")
	}
	for _, part := range d.Connectors {
		if len(part.Port) != 1 || part.Port[0] != p {
			t.Fatalf("expected every partition to carry the new port, got %+v", part.Port)
		}
	}
}
