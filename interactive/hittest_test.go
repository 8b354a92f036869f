package interactive

import (
	"testing"

	"gridwire/model"
)

func TestHitPort(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	p := &model.Port{ID: "P1", X: 5, Y: 5}
	d.Ports = append(d.Ports, p)

	if got := hitPort(d, 5, 5); got != p {
		t.Fatalf("hitPort(5,5) = %v, want %v", got, p)
	}
	if got := hitPort(d, 6, 6); got != nil {
		t.Fatalf("hitPort(6,6) = %v, want nil", got)
	}
}

func TestHitObjectPicksTopmost(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	lower := &model.Object{ID: 1, StartX: 0, StartY: 0, EndX: 100, EndY: 100}
	upper := &model.Object{ID: 2, StartX: 10, StartY: 10, EndX: 20, EndY: 20}
	d.AddObject(lower)
	d.AddObject(upper)

	if got := hitObject(d, 15, 15); got != upper {
		t.Fatalf("hitObject(15,15) = %v, want upper (later in z-order)", got)
	}
	if got := hitObject(d, 50, 50); got != lower {
		t.Fatalf("hitObject(50,50) = %v, want lower", got)
	}
	if got := hitObject(d, 200, 200); got != nil {
		t.Fatalf("hitObject(200,200) = %v, want nil", got)
	}
}

func TestHitConnector(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	c := &model.Connector{ID: "C1", Segments: []*model.Segment{
		{StartX: 0, StartY: 0, EndX: 10, EndY: 0},
	}}
	d.AddConnector(c)

	if got := hitConnector(d, 5, 0); got != c {
		t.Fatalf("hitConnector(5,0) = %v, want %v", got, c)
	}
	if got := hitConnector(d, 5, 1); got != nil {
		t.Fatalf("hitConnector(5,1) = %v, want nil (off the segment)", got)
	}
}
