package model

import (
	"bytes"
	"testing"
)

func TestDocumentRoundTrip(t *testing.T) {
	d := NewDrawn(10, 10, true)

	obj := &Object{ID: d.NextObjectID(), Shape: ShapeRect, StartX: 0, StartY: 0, EndX: 100, EndY: 100}
	p1 := &Port{ID: d.NextPortID(), X: 0, Y: 50, Obj: obj}
	p2 := &Port{ID: d.NextPortID(), X: 100, Y: 50, Obj: obj}
	obj.Port = []*Port{p1, p2}
	d.AddObject(obj)
	d.AddPort(p1)
	d.AddPort(p2)

	c := &Connector{
		ID:       d.NextConnID(),
		Segments: []*Segment{{StartX: 0, StartY: 50, EndX: 100, EndY: 50}},
		Port:     []*Port{p1, p2},
	}
	p1.Conn = append(p1.Conn, c)
	p2.Conn = append(p2.Conn, c)
	d.AddConnector(c)

	var buf bytes.Buffer
	if err := d.EncodeJSON(&buf); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	out, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if len(out.Objects) != 1 || len(out.Ports) != 2 || len(out.Connectors) != 1 {
		t.Fatalf("got %d objects, %d ports, %d connectors, want 1/2/1", len(out.Objects), len(out.Ports), len(out.Connectors))
	}

	outObj := out.Objects[0]
	if outObj.ID != obj.ID || len(outObj.Port) != 2 {
		t.Fatalf("object round-trip mismatch: %+v", outObj)
	}
	for _, p := range outObj.Port {
		if p.Obj != outObj {
			t.Fatalf("port %s.Obj does not point back to its owning object", p.ID)
		}
	}

	outConn := out.Connectors[0]
	if outConn.ID != c.ID || len(outConn.Port) != 2 || len(outConn.Segments) != 1 {
		t.Fatalf("connector round-trip mismatch: %+v", outConn)
	}
	for _, p := range outConn.Port {
		linked := false
		for _, cc := range p.Conn {
			if cc == outConn {
				linked = true
			}
		}
		if !linked {
			t.Fatalf("port %s.Conn does not reference the reconstructed connector", p.ID)
		}
	}

	if out.ids.object <= 0 || out.ids.port <= 0 || out.ids.conn <= 0 {
		t.Fatalf("ID counters were not restored: %+v", out.ids)
	}
	if next := out.NextObjectID(); next <= obj.ID {
		t.Fatalf("NextObjectID() = %d after reload, want > %d", next, obj.ID)
	}

	if len(out.Order) != 2 {
		t.Fatalf("got %d order entries, want 2", len(out.Order))
	}
}
