package engine

import (
	"math"

	"gridwire/model"
)

// sameLineEquation is the bit-precise "same line equation" test used
// to decide whether two segments are collinear candidates for
// coalescing: either both are vertical with equal x, or both have
// equal slope and
// y-intercept after rounding each to a resolution of 1/100 via
// floor(v*100)/100. This fixes the resolution; it is the contract, not
// an approximation to be loosened.
func sameLineEquation(s1, s2 *model.Segment) bool {
	v1, m1, b1 := lineParams(s1)
	v2, m2, b2 := lineParams(s2)
	if v1 != v2 {
		return false
	}
	if v1 {
		return roundedEqual(s1.StartX, s2.StartX)
	}
	return floor100(m1) == floor100(m2) && floorBucket(b1) == floorBucket(b2)
}

// lineParams returns whether the segment is vertical, and if not its
// slope and y-intercept.
func lineParams(s *model.Segment) (vertical bool, slope, intercept float64) {
	dx := s.EndX - s.StartX
	if dx == 0 {
		return true, 0, 0
	}
	dy := s.EndY - s.StartY
	m := dy / dx
	b := s.StartY - m*s.StartX
	return false, m, b
}

// floor100 computes floor(v*100)/100, the slope-comparison bucket.
func floor100(v float64) float64 {
	return math.Floor(v*100) / 100
}

// floorBucket computes floor(v*100), the intercept-comparison bucket.
func floorBucket(v float64) float64 {
	return math.Floor(v * 100)
}

func roundedEqual(a, b float64) bool {
	return floorBucket(a) == floorBucket(b)
}
