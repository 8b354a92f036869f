package router

import (
	"gridwire/matrix"
	"gridwire/model"
)

// SimpleRouter is a center-to-bend-to-center orthogonal router: it
// tries a horizontal-then-vertical bend, then a vertical-then-horizontal
// bend, and if the bend cell itself is occupied it walks the bend along
// the blocked axis looking for a free cell, truncating the search at
// the first free cell rather than running a full pathfinder.
//
// SimpleRouter never fails outright: if every bend it tries is occupied
// it returns the direct two-segment route through the original bend,
// so a caller still gets a deterministic partial route per the router
// contract (malformed routes are reconciled, not rejected).
type SimpleRouter struct {
	// MaxJog bounds how far the router will slide the bend point while
	// looking for a free cell, in grid units.
	MaxJog int
}

// NewSimpleRouter returns a SimpleRouter with a sensible jog budget.
func NewSimpleRouter() *SimpleRouter {
	return &SimpleRouter{MaxJog: 8}
}

// GenerateSegments implements Router. It routes from (sx,sy) to
// (ex,ey) with a single bend, preferring whichever of the two bend
// orientations lands on an unoccupied cell, then registers the
// produced segments with mtx before returning -- per the router
// contract, the router owns bracketing its own output with the
// routing matrix.
func (r *SimpleRouter) GenerateSegments(mtx *matrix.RoutingMatrix, sx, sy, ex, ey float64, routerFn string, jumpSeg JumpMode) (segs []*model.Segment, finX, finY float64) {
	if sx == ex || sy == ey {
		seg := &model.Segment{StartX: sx, StartY: sy, EndX: ex, EndY: ey}
		r.applyJump(mtx, seg, jumpSeg)
		mtx.AddSegment(seg, sx, sy, ex, ey)
		return []*model.Segment{seg}, ex, ey
	}

	bendX, bendY := r.chooseBend(mtx, sx, sy, ex, ey)

	s1 := &model.Segment{StartX: sx, StartY: sy, EndX: bendX, EndY: bendY}
	s2 := &model.Segment{StartX: bendX, StartY: bendY, EndX: ex, EndY: ey}
	r.applyJump(mtx, s1, jumpSeg)
	r.applyJump(mtx, s2, jumpSeg)
	mtx.AddSegment(s1, sx, sy, bendX, bendY)
	mtx.AddSegment(s2, bendX, bendY, ex, ey)
	return []*model.Segment{s1, s2}, ex, ey
}

// chooseBend picks between the horizontal-first bend (ex,sy) and the
// vertical-first bend (sx,ey), preferring whichever cell is free; if
// both are occupied it jogs the horizontal-first bend along Y looking
// for a free cell before giving up and using it anyway.
func (r *SimpleRouter) chooseBend(mtx *matrix.RoutingMatrix, sx, sy, ex, ey float64) (float64, float64) {
	hBend := struct{ x, y float64 }{ex, sy}
	vBend := struct{ x, y float64 }{sx, ey}

	hFree := !mtx.IsOccupied(hBend.x, hBend.y)
	vFree := !mtx.IsOccupied(vBend.x, vBend.y)

	switch {
	case hFree && !vFree:
		return hBend.x, hBend.y
	case vFree && !hFree:
		return vBend.x, vBend.y
	case hFree && vFree:
		return hBend.x, hBend.y
	}

	step := 1.0
	if ey < sy {
		step = -1.0
	}
	for i := 1; i <= r.MaxJog; i++ {
		y := sy + step*float64(i)
		if !mtx.IsOccupied(hBend.x, y) {
			return hBend.x, y
		}
	}
	return hBend.x, hBend.y
}

func (r *SimpleRouter) applyJump(mtx *matrix.RoutingMatrix, seg *model.Segment, jumpSeg JumpMode) {
	switch jumpSeg {
	case JumpDefault:
		seg.VAttr = &model.VisAttr{JumpCross: true, LineStyle: "default"}
	case JumpPlain:
		seg.VAttr = &model.VisAttr{JumpCross: true}
	}
}
