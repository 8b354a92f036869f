package engine

import (
	"testing"

	"gridwire/matrix"
	"gridwire/model"
)

func TestAssimilateIsIdempotent(t *testing.T) {
	d := newDrawn()
	mtx := matrix.New()

	segs := []*model.Segment{
		segAt(0, 0, 5, 0),
		segAt(5, 0, 10, 0),
		segAt(5, 0, 5, 10),
	}
	c, err := DrawConnector(d, mtx, segs)
	if err != nil {
		t.Fatalf("DrawConnector: %v", err)
	}

	snapshot := func() (nConn int, nSeg int, nJunc int) {
		return len(d.Connectors), len(c.Segments), len(c.Junction)
	}

	again := Assimilate(d, mtx, []*model.Connector{c})
	if len(again) != 1 || again[0] != c {
		t.Fatalf("first re-assimilate changed the master: %+v", again)
	}
	n1, s1, j1 := snapshot()

	Assimilate(d, mtx, []*model.Connector{c})
	n2, s2, j2 := snapshot()

	if n1 != n2 || s1 != s2 || j1 != j2 {
		t.Fatalf("assimilate is not idempotent: (%d,%d,%d) -> (%d,%d,%d)", n1, s1, j1, n2, s2, j2)
	}
}
