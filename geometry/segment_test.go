package geometry

import "testing"

func TestPointOnSegment(t *testing.T) {
	cases := []struct {
		name             string
		x1, y1, x2, y2   float64
		x, y             float64
		want             bool
	}{
		{"endpoint", 0, 0, 10, 0, 0, 0, true},
		{"midpoint", 0, 0, 10, 0, 5, 0, true},
		{"interior vertical", 5, 0, 5, 10, 5, 5, true},
		{"off line", 0, 0, 10, 0, 5, 1, false},
		{"beyond endpoint", 0, 0, 10, 0, 15, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PointOnSegment(c.x1, c.y1, c.x2, c.y2, c.x, c.y); got != c.want {
				t.Fatalf("PointOnSegment(%v) = %v, want %v", c, got, c.want)
			}
		})
	}
}

func TestPointNearSegment(t *testing.T) {
	if !PointNearSegment(0, 0, 10, 0, 5, 1, 1) {
		t.Fatal("expected point within tolerance to be near segment")
	}
	if PointNearSegment(0, 0, 10, 0, 5, 2, 1) {
		t.Fatal("expected point beyond tolerance to not be near segment")
	}
}

func TestSnap(t *testing.T) {
	if got := SnapX(7, 5); got != 5 {
		t.Fatalf("SnapX(7,5) = %v, want 5", got)
	}
	if got := SnapX(8, 5); got != 10 {
		t.Fatalf("SnapX(8,5) = %v, want 10", got)
	}
	if got := SnapY(3.4, 1); got != 3 {
		t.Fatalf("SnapY(3.4,1) = %v, want 3", got)
	}
}
