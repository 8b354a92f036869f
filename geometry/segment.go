package geometry

import "gonum.org/v1/gonum/floats/scalar"

// PointOnSegment reports whether (x,y) lies exactly on the segment
// from (x1,y1) to (x2,y2), including its endpoints. This is the exact
// membership test named pointOnSegment in the external coordinate
// geometry contract.
func PointOnSegment(x1, y1, x2, y2, x, y float64) bool {
	// Collinearity via the cross product of (P2-P1) and (P-P1).
	cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	if cross != 0 {
		return false
	}
	return x >= min(x1, x2) && x <= max(x1, x2) && y >= min(y1, y2) && y <= max(y1, y2)
}

// PointNearSegment reports whether (x,y) is within Chebyshev (L-infinity)
// distance res of some point on the segment from (x1,y1) to (x2,y2).
func PointNearSegment(x1, y1, x2, y2, x, y, res float64) bool {
	nx, ny := closestPointOnSegment(x1, y1, x2, y2, x, y)
	return scalar.EqualWithinAbs(x-nx, 0, res) && scalar.EqualWithinAbs(y-ny, 0, res)
}

// closestPointOnSegment returns the point on the segment closest to (x,y).
func closestPointOnSegment(x1, y1, x2, y2, x, y float64) (float64, float64) {
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x1, y1
	}
	t := ((x-x1)*dx + (y-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return x1 + t*dx, y1 + t*dy
}

// SnapX snaps x to the nearest multiple of grid. A grid of 1 or less
// rounds x to the nearest integer (halves away from zero).
func SnapX(x, grid float64) float64 {
	return snap(x, grid)
}

// SnapY snaps y to the nearest multiple of grid.
func SnapY(y, grid float64) float64 {
	return snap(y, grid)
}

func snap(v, grid float64) float64 {
	if grid <= 1 {
		return roundHalfAwayFromZero(v)
	}
	return roundHalfAwayFromZero(v/grid) * grid
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
