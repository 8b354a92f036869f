package engine

import (
	"sort"

	"gridwire/geometry"
	"gridwire/matrix"
	"gridwire/model"
)

type coord struct {
	x, y float64
}

func lessCoord(a, b coord) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// RepairSegAndJunc normalises a single connector's segments and
// junctions to satisfy invariants 2 (no redundant collinear overlap),
// 3 (T-junction materialisation) and 4 (junction set correctness).
//
// It folds every overlap topology between a pair of collinear segments
// into a single canonical-interval computation (project
// both segments onto the line's primary axis, take the union and
// intersection of the two intervals, and keep only those interval
// breakpoints that are anchored by a port or a third, non-collinear
// segment) rather than enumerating the topologies directly.
func RepairSegAndJunc(mtx *matrix.RoutingMatrix, c *model.Connector, chkPorts bool) {
	repairPhaseA(mtx, c, chkPorts)
	repairPhaseB(mtx, c)
}

// repairPhaseA coalesces collinear overlapping (or merely touching)
// segment pairs until no pair of segments shares more than an
// endpoint on the same line equation.
func repairPhaseA(mtx *matrix.RoutingMatrix, c *model.Connector, chkPorts bool) {
	for {
		changed := false
		for i := 0; i < len(c.Segments) && !changed; i++ {
			for j := i + 1; j < len(c.Segments) && !changed; j++ {
				s1, s2 := c.Segments[i], c.Segments[j]
				if !sameLineEquation(s1, s2) {
					continue
				}
				repl, ok := mergeCollinear(c, s1, s2, chkPorts)
				if !ok {
					continue
				}
				for _, old := range []*model.Segment{s1, s2} {
					mtx.RemoveSegment(old)
				}
				for _, n := range repl {
					mtx.AddSegment(n, n.StartX, n.StartY, n.EndX, n.EndY)
				}
				rest := make([]*model.Segment, 0, len(c.Segments)-2+len(repl))
				rest = append(rest, c.Segments[:i]...)
				rest = append(rest, repl...)
				for k := i + 1; k < len(c.Segments); k++ {
					if k == j {
						continue
					}
					rest = append(rest, c.Segments[k])
				}
				c.Segments = rest
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// mergeCollinear computes the replacement segment set for two
// collinear segments s1,s2 of connector c. ok is false when the pair
// requires no change: either the intervals are disjoint (a genuine
// gap, not to be bridged), or every candidate breakpoint is already
// anchored and the recomputed segments are byte-identical to the
// originals.
func mergeCollinear(c *model.Connector, s1, s2 *model.Segment, chkPorts bool) (repl []*model.Segment, ok bool) {
	vertical, _, _ := lineParams(s1)
	basis := func(x, y float64) float64 {
		if vertical {
			return y
		}
		return x
	}
	a1, b1 := order(basis(s1.StartX, s1.StartY), basis(s1.EndX, s1.EndY))
	a2, b2 := order(basis(s2.StartX, s2.StartY), basis(s2.EndX, s2.EndY))

	lo, hi := minf(a1, a2), maxf(b1, b2)
	ovLo, ovHi := maxf(a1, a2), minf(b1, b2)
	if ovLo > ovHi {
		return nil, false
	}

	toPoint := func(v float64) (float64, float64) {
		if vertical {
			return s1.StartX, v
		}
		_, m, b := lineParams(s1)
		return v, m*v + b
	}

	exclude := map[*model.Segment]bool{s1: true, s2: true}

	pts := []float64{lo, hi}
	if ovLo > lo {
		x, y := toPoint(ovLo)
		if !isDangling(c, exclude, s1, x, y, chkPorts) {
			pts = append(pts, ovLo)
		}
	}
	if ovHi < hi && ovHi != ovLo {
		x, y := toPoint(ovHi)
		if !isDangling(c, exclude, s1, x, y, chkPorts) {
			pts = append(pts, ovHi)
		}
	}

	pts = dedupeSorted(pts)
	if len(pts) < 2 {
		return nil, false
	}

	repl = make([]*model.Segment, 0, len(pts)-1)
	vattr := s1.VAttr
	if vattr == nil {
		vattr = s2.VAttr
	}
	for k := 0; k < len(pts)-1; k++ {
		x1, y1 := toPoint(pts[k])
		x2, y2 := toPoint(pts[k+1])
		repl = append(repl, &model.Segment{StartX: x1, StartY: y1, EndX: x2, EndY: y2, VAttr: vattr})
	}

	if segSetEqual(repl, []*model.Segment{s1, s2}) {
		return nil, false
	}
	return repl, true
}

// isDangling is the dangling-end predicate: E is
// dangling unless it is anchored by a port (when chkPorts) or by
// exactly one non-collinear other segment, or by two or more other
// segments (a junction in the making).
func isDangling(c *model.Connector, exclude map[*model.Segment]bool, lineRef *model.Segment, x, y float64, chkPorts bool) bool {
	if chkPorts {
		for _, p := range c.Port {
			if p.X == x && p.Y == y {
				return false
			}
		}
	}
	var others []*model.Segment
	for _, s := range c.Segments {
		if exclude[s] {
			continue
		}
		if s.HasEndpoint(x, y) {
			others = append(others, s)
		}
	}
	if len(others) == 0 {
		return true
	}
	if len(others) == 1 && sameLineEquation(others[0], lineRef) {
		return true
	}
	return false
}

func segSetEqual(a, b []*model.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, sa := range a {
		found := false
		for i, sb := range b {
			if used[i] {
				continue
			}
			if sa.EndpointEqual(sb) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func order(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func dedupeSorted(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0:0]
	for i, v := range vs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// repairPhaseB splits segments at coordinates where they pass through
// another segment's endpoint (T-junction materialisation) and then
// regenerates the junction set from the resulting endpoint multiset.
func repairPhaseB(mtx *matrix.RoutingMatrix, c *model.Connector) {
	counts := map[coord]int{}
	for _, s := range c.Segments {
		counts[coord{s.StartX, s.StartY}]++
		counts[coord{s.EndX, s.EndY}]++
	}

	coords := make([]coord, 0, len(counts))
	for co := range counts {
		coords = append(coords, co)
	}
	sort.Slice(coords, func(i, j int) bool { return lessCoord(coords[i], coords[j]) })

	for _, co := range coords {
		for i := 0; i < len(c.Segments); i++ {
			s := c.Segments[i]
			if s.HasEndpoint(co.x, co.y) {
				continue
			}
			if !geometry.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, co.x, co.y) {
				continue
			}
			mtx.RemoveSegment(s)
			a := &model.Segment{StartX: s.StartX, StartY: s.StartY, EndX: co.x, EndY: co.y, VAttr: s.VAttr}
			b := &model.Segment{StartX: co.x, StartY: co.y, EndX: s.EndX, EndY: s.EndY, VAttr: s.VAttr}
			mtx.AddSegment(a, a.StartX, a.StartY, a.EndX, a.EndY)
			mtx.AddSegment(b, b.StartX, b.StartY, b.EndX, b.EndY)
			c.Segments[i] = a
			c.Segments = append(c.Segments, b)
		}
	}

	final := map[coord]int{}
	for _, s := range c.Segments {
		final[coord{s.StartX, s.StartY}]++
		final[coord{s.EndX, s.EndY}]++
	}
	c.Junction = nil
	for co, cnt := range final {
		if cnt > 2 {
			c.Junction = append(c.Junction, model.Junction{X: co.x, Y: co.y})
		}
	}
	sort.Slice(c.Junction, func(i, j int) bool {
		return lessCoord(coord{c.Junction[i].X, c.Junction[i].Y}, coord{c.Junction[j].X, c.Junction[j].Y})
	})
}
