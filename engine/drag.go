package engine

import (
	"gridwire/matrix"
	"gridwire/model"
	"gridwire/router"
)

// DragNode is an anchor coordinate from which an orthogonal route must
// be regenerated: Seg is the member of the dragged selection whose
// moving endpoint the new route must reach.
type DragNode struct {
	X, Y float64
	Conn *model.Connector
	Seg  *model.Segment
}

func ownedPortSet(objList []*model.Object) map[*model.Port]bool {
	m := map[*model.Port]bool{}
	for _, o := range objList {
		for _, p := range o.Port {
			m[p] = true
		}
	}
	return m
}

// GenerateRoutingStartNodes classifies every endpoint of every segment
// in segs against the rest of its connector to decide what a drag of
// segs should do to its neighbourhood: drag further stub segments
// along, anchor a reroute at a stable junction or port, or mark a
// single-use stub for removal. It returns the anchors to re-route
// from, the segments to delete once the drag starts producing new
// ones, and every connector touched in the process.
func GenerateRoutingStartNodes(drawn *model.Drawn, segs []*model.Segment, objList []*model.Object) ([]*DragNode, []*model.Segment, []*model.Connector) {
	owned := ownedPortSet(objList)
	inS := map[*model.Segment]bool{}
	for _, s := range segs {
		inS[s] = true
	}
	connOf := map[*model.Segment]*model.Connector{}
	for _, c := range drawn.Connectors {
		for _, s := range c.Segments {
			connOf[s] = c
		}
	}

	var dragNodes []*DragNode
	var segsToRemove []*model.Segment
	connSeen := map[*model.Connector]bool{}
	var connList []*model.Connector

	addConn := func(c *model.Connector) {
		if c != nil && !connSeen[c] {
			connSeen[c] = true
			connList = append(connList, c)
		}
	}

	var classify func(x, y float64, s *model.Segment)
	classify = func(x, y float64, s *model.Segment) {
		c := connOf[s]
		addConn(c)
		if c == nil {
			return
		}
		var adj []*model.Segment
		for _, o := range c.Segments {
			if o != s && o.HasEndpoint(x, y) {
				adj = append(adj, o)
			}
		}
		var prts []*model.Port
		for _, p := range c.Port {
			if p.X == x && p.Y == y {
				prts = append(prts, p)
			}
		}
		allPortsOwned := len(prts) > 0
		for _, p := range prts {
			if !owned[p] {
				allPortsOwned = false
				break
			}
		}
		allAdjInS := true
		for _, a := range adj {
			if !inS[a] {
				allAdjInS = false
				break
			}
		}

		if !allAdjInS || len(adj) == 1 {
			if len(adj) >= 2 || (len(prts) > 0 && !allPortsOwned) {
				dragNodes = append(dragNodes, &DragNode{X: x, Y: y, Conn: c, Seg: s})
				return
			}
			if len(adj) == 1 {
				t := adj[0]
				xp, yp, _ := t.OtherEndpoint(x, y)
				var adj2 []*model.Segment
				for _, o := range c.Segments {
					if o != t && o.HasEndpoint(xp, yp) {
						adj2 = append(adj2, o)
					}
				}
				// A dangling far end (no other segment there) does not
				// count as "all in S": it becomes the drag node instead.
				allAdj2InS := len(adj2) > 0
				for _, a2 := range adj2 {
					if !inS[a2] {
						allAdj2InS = false
						break
					}
				}
				if allAdj2InS {
					inS[t] = true
					classify(xp, yp, t)
					return
				}
				dragNodes = append(dragNodes, &DragNode{X: xp, Y: yp, Conn: c, Seg: s})
				segsToRemove = append(segsToRemove, t)
			}
			return
		}
		// all adj already in the dragged set, or a dangling/owned-port
		// end with no further neighbours: the whole local structure
		// travels with the drag, nothing to anchor here.
	}

	for _, s := range segs {
		classify(s.StartX, s.StartY, s)
		classify(s.EndX, s.EndY, s)
	}
	return dragNodes, segsToRemove, connList
}

// RegenStub names one router-produced segment and the connector it was
// appended to, so a later frame can evict it cleanly.
type RegenStub struct {
	Conn *model.Connector
	Seg  *model.Segment
}

// RegenSegments runs one frame of an interactive drag: it evicts last
// frame's router-produced stubs, applies the frame offset to every
// segment in sel, and re-routes from every drag node to the moved
// endpoint of its reference segment. It returns the new stubs to evict
// next frame.
func RegenSegments(mtx *matrix.RoutingMatrix, r router.Router, sel []*model.Segment, offx, offy float64, dragNodes []*DragNode, lastFrameStubs []RegenStub, routerFn string, jumpSeg router.JumpMode) []RegenStub {
	for _, st := range lastFrameStubs {
		mtx.RemoveSegment(st.Seg)
		if st.Conn != nil {
			st.Conn.Segments = removeSegment(st.Conn.Segments, st.Seg)
		}
	}

	for _, s := range sel {
		mtx.RemoveSegment(s)
		s.StartX += offx
		s.StartY += offy
		s.EndX += offx
		s.EndY += offy
		mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
	}

	var nextStubs []RegenStub
	for _, n := range dragNodes {
		var saved []*model.Segment
		if n.Conn != nil {
			saved = n.Conn.Segments
			for _, s := range saved {
				mtx.RemoveSegment(s)
			}
		}

		// Route towards whichever endpoint of the reference segment is
		// not the anchor itself -- that is the one the drag moved.
		ex, ey := n.Seg.StartX, n.Seg.StartY
		if ex == n.X && ey == n.Y {
			ex, ey = n.Seg.EndX, n.Seg.EndY
		}

		newSegs, _, _ := r.GenerateSegments(mtx, n.X, n.Y, ex, ey, routerFn, jumpSeg)

		if saved != nil {
			for _, s := range saved {
				mtx.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
			}
		}

		if n.Conn != nil {
			n.Conn.Segments = append(n.Conn.Segments, newSegs...)
		}
		for _, ns := range newSegs {
			nextStubs = append(nextStubs, RegenStub{Conn: n.Conn, Seg: ns})
		}
	}
	return nextStubs
}

// DragSegment drives a complete drag of sel by offx,offy through
// GenerateRoutingStartNodes and a single settle-time RegenSegments
// pass, then assimilates every touched connector.
func DragSegment(drawn *model.Drawn, mtx *matrix.RoutingMatrix, r router.Router, sel []*model.Segment, objList []*model.Object, offx, offy float64, routerFn string, jumpSeg router.JumpMode) []*model.Connector {
	dragNodes, segsToRemove, connList := GenerateRoutingStartNodes(drawn, sel, objList)

	for _, s := range segsToRemove {
		mtx.RemoveSegment(s)
		for _, c := range connList {
			c.Segments = removeSegment(c.Segments, s)
		}
	}

	RegenSegments(mtx, r, sel, offx, offy, dragNodes, nil, routerFn, jumpSeg)

	return Assimilate(drawn, mtx, connList)
}

func removeSegment(segs []*model.Segment, victim *model.Segment) []*model.Segment {
	out := segs[:0]
	for _, s := range segs {
		if s != victim {
			out = append(out, s)
		}
	}
	return out
}
