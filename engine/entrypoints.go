package engine

import (
	"fmt"

	"gridwire/geometry"
	"gridwire/matrix"
	"gridwire/model"
	"gridwire/router"
)

// DrawConnector validates and installs a new connector built from segs
// (already-ordered, already-snapped endpoints expected of an
// interactive caller; non-interactive callers get grid-snap applied
// here) and hands the result to Assimilate. It rejects any segment
// whose endpoint lies strictly interior to another segment of the
// same call: the caller must pre-split those first.
func DrawConnector(drawn *model.Drawn, mtx *matrix.RoutingMatrix, segs []*model.Segment) (*model.Connector, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("draw connector: %w: no segments given", ErrInvalidInput)
	}

	gx, gy := drawn.EffectiveGrid()
	for _, s := range segs {
		s.StartX = geometry.SnapX(s.StartX, gx)
		s.StartY = geometry.SnapY(s.StartY, gy)
		s.EndX = geometry.SnapX(s.EndX, gx)
		s.EndY = geometry.SnapY(s.EndY, gy)
	}

	for i, si := range segs {
		for j, sj := range segs {
			if i == j {
				continue
			}
			if pointStrictlyInterior(sj, si.StartX, si.StartY) || pointStrictlyInterior(sj, si.EndX, si.EndY) {
				return nil, fmt.Errorf("draw connector: %w: segment endpoint lies interior to another segment of the same call, pre-split first", ErrInvariantViolation)
			}
		}
	}

	c := &model.Connector{ID: drawn.NextConnID(), Segments: append([]*model.Segment{}, segs...)}
	for _, s := range c.Segments {
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}
	drawn.AddConnector(c)

	masters := Assimilate(drawn, mtx, []*model.Connector{c})
	for _, m := range masters {
		if connHasAnySegment(m, c.Segments) {
			return m, nil
		}
	}
	if len(masters) > 0 {
		return masters[0], nil
	}
	return c, nil
}

func pointStrictlyInterior(s *model.Segment, x, y float64) bool {
	if s.HasEndpoint(x, y) {
		return false
	}
	return geometry.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, x, y)
}

func connHasAnySegment(c *model.Connector, want []*model.Segment) bool {
	for _, s := range c.Segments {
		for _, w := range want {
			if s == w {
				return true
			}
		}
	}
	return false
}

// MoveConn translates every segment and port of every connector in
// list by (offx,offy), snapped to the canvas grid, then assimilates
// them.
func MoveConn(drawn *model.Drawn, mtx *matrix.RoutingMatrix, list []*model.Connector, offx, offy float64) []*model.Connector {
	gx, gy := drawn.EffectiveGrid()
	dx := geometry.SnapX(offx, gx)
	dy := geometry.SnapY(offy, gy)

	movedPorts := map[*model.Port]bool{}
	for _, c := range list {
		for _, s := range c.Segments {
			mtx.RemoveSegment(s)
			s.StartX += dx
			s.StartY += dy
			s.EndX += dx
			s.EndY += dy
			mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
		}
		for i := range c.Junction {
			c.Junction[i].X += dx
			c.Junction[i].Y += dy
		}
		for _, p := range c.Port {
			if !movedPorts[p] {
				movedPorts[p] = true
				p.X += dx
				p.Y += dy
			}
		}
	}
	return Assimilate(drawn, mtx, list)
}

// MoveSegment separates the given segments into their own connectors
// (SplitConnectorAtSegments) then moves the resulting connectors by
// (offx,offy).
func MoveSegment(drawn *model.Drawn, mtx *matrix.RoutingMatrix, refs []SegRef, offx, offy float64) []*model.Connector {
	split := SplitConnectorAtSegments(drawn, mtx, refs)
	return MoveConn(drawn, mtx, split, offx, offy)
}

// RemoveConn deletes c from the canvas: detaches it from every port,
// removes its segments from the routing matrix, drops it from
// drawn.Connectors and the order array, then assimilates whatever
// connectors shared a coordinate with it (so a removed wire doesn't
// leave stale fusions behind).
func RemoveConn(drawn *model.Drawn, mtx *matrix.RoutingMatrix, c *model.Connector) error {
	idx := drawn.ConnIndex(c)
	if idx < 0 {
		return fmt.Errorf("remove connector: %w: %s", ErrNotFound, c.ID)
	}

	var neighbours []*model.Connector
	for _, co := range distinctEndpoints(c) {
		for _, k := range connectorsAtCoor(drawn, co.x, co.y) {
			if k != c {
				neighbours = append(neighbours, k)
			}
		}
	}

	for _, s := range c.Segments {
		mtx.RemoveSegment(s)
	}
	for _, p := range c.Port {
		newConn := make([]*model.Connector, 0, len(p.Conn))
		for _, cc := range p.Conn {
			if cc != c {
				newConn = append(newConn, cc)
			}
		}
		p.Conn = newConn
	}

	drawn.Connectors = append(drawn.Connectors[:idx], drawn.Connectors[idx+1:]...)
	drawn.RemoveOrderEntryFor(c)
	drawn.FixOrder()

	Assimilate(drawn, mtx, neighbours)
	return nil
}

// MoveObj translates obj by (offx,offy) and, if obj belongs to a
// Group, every other object in that group by the same offset, moving
// each one's ports along with it. Every segment of a moved port's
// connectors that ended at the port's old position has that endpoint
// moved to the new position; its other endpoint, and the segments
// further along the connector, are not translated. Those segments are
// then classified by GenerateRoutingStartNodes: the stubs it marks are
// removed and r routes a new path from each drag node it reports.
func MoveObj(drawn *model.Drawn, mtx *matrix.RoutingMatrix, r router.Router, obj *model.Object, offx, offy float64, routerFn string, jumpSeg router.JumpMode) []*model.Connector {
	gx, gy := drawn.EffectiveGrid()
	dx := geometry.SnapX(offx, gx)
	dy := geometry.SnapY(offy, gy)

	objs := []*model.Object{obj}
	if obj.Group != nil {
		objs = append([]*model.Object{}, obj.Group.Objects...)
	}

	var sel []*model.Segment
	connOf := map[*model.Segment]*model.Connector{}
	for _, c := range drawn.Connectors {
		for _, s := range c.Segments {
			connOf[s] = c
		}
	}

	for _, o := range objs {
		o.StartX += dx
		o.StartY += dy
		o.EndX += dx
		o.EndY += dy

		for _, p := range o.Port {
			ox, oy := p.X, p.Y
			p.X += dx
			p.Y += dy
			for _, c := range p.Conn {
				for _, s := range c.Segments {
					if s.HasEndpoint(ox, oy) {
						sel = append(sel, s)
					}
				}
			}
		}
	}
	if len(sel) == 0 {
		return nil
	}

	dragNodes, segsToRemove, connList := GenerateRoutingStartNodes(drawn, sel, objs)

	for _, s := range segsToRemove {
		mtx.RemoveSegment(s)
		if c := connOf[s]; c != nil {
			c.Segments = removeSegment(c.Segments, s)
		}
	}

	for _, s := range sel {
		mtx.RemoveSegment(s)
	}
	for _, o := range objs {
		for _, p := range o.Port {
			for _, s := range sel {
				if s.HasEndpoint(p.X-dx, p.Y-dy) {
					if s.StartX == p.X-dx && s.StartY == p.Y-dy {
						s.StartX, s.StartY = p.X, p.Y
					} else {
						s.EndX, s.EndY = p.X, p.Y
					}
				}
			}
		}
	}
	for _, s := range sel {
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}

	RegenSegments(mtx, r, nil, 0, 0, dragNodes, nil, routerFn, jumpSeg)

	return Assimilate(drawn, mtx, connList)
}
