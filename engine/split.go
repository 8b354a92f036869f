package engine

import (
	"sort"

	"gridwire/geometry"
	"gridwire/matrix"
	"gridwire/model"
)

// SplitConnectorAtCoor partitions c by the equivalence relation
// "reachable by traversing segments without crossing (x,y) and
// without passing through a port". It does not insert the returned
// connectors into drawn.Connectors or drawn.Order, does not remove c
// from either, and does not assign their Order field: that is the
// caller's job.
//
// It does update every port of c's Conn back-references, removing c
// and adding whichever returned partitions actually touch the port.
func SplitConnectorAtCoor(drawn *model.Drawn, mtx *matrix.RoutingMatrix, c *model.Connector, x, y float64) []*model.Connector {
	if len(c.Segments) == 0 {
		return []*model.Connector{c}
	}

	for i, s := range c.Segments {
		if s.HasEndpoint(x, y) {
			continue
		}
		if geometry.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, x, y) {
			mtx.RemoveSegment(s)
			a := &model.Segment{StartX: s.StartX, StartY: s.StartY, EndX: x, EndY: y, VAttr: s.VAttr}
			b := &model.Segment{StartX: x, StartY: y, EndX: s.EndX, EndY: s.EndY, VAttr: s.VAttr}
			mtx.AddSegment(a, a.StartX, a.StartY, a.EndX, a.EndY)
			mtx.AddSegment(b, b.StartX, b.StartY, b.EndX, b.EndY)
			c.Segments[i] = a
			c.Segments = append(c.Segments, b)
			break
		}
	}

	portAt := func(px, py float64) bool {
		for _, p := range c.Port {
			if p.X == px && p.Y == py {
				return true
			}
		}
		return false
	}

	uf := newUnionFind(len(c.Segments))
	endpointGroups := map[coord][]int{}
	for i, s := range c.Segments {
		endpointGroups[coord{s.StartX, s.StartY}] = append(endpointGroups[coord{s.StartX, s.StartY}], i)
		endpointGroups[coord{s.EndX, s.EndY}] = append(endpointGroups[coord{s.EndX, s.EndY}], i)
	}
	for co, idxs := range endpointGroups {
		if co.x == x && co.y == y {
			continue
		}
		if portAt(co.x, co.y) {
			continue
		}
		for k := 1; k < len(idxs); k++ {
			uf.union(idxs[0], idxs[k])
		}
	}

	var startIdxs []int
	for i, s := range c.Segments {
		if s.HasEndpoint(x, y) {
			startIdxs = append(startIdxs, i)
		}
	}

	groups := map[int][]int{}
	for i := range c.Segments {
		r := uf.find(i)
		groups[r] = append(groups[r], i)
	}

	seenRoot := map[int]bool{}
	var rootOrder []int
	for _, si := range startIdxs {
		r := uf.find(si)
		if !seenRoot[r] {
			seenRoot[r] = true
			rootOrder = append(rootOrder, r)
		}
	}

	type rootMin struct{ root, min int }
	var rms []rootMin
	for r, idxs := range groups {
		if seenRoot[r] {
			continue
		}
		m := idxs[0]
		for _, ix := range idxs {
			if ix < m {
				m = ix
			}
		}
		rms = append(rms, rootMin{r, m})
	}
	sort.Slice(rms, func(i, j int) bool { return rms[i].min < rms[j].min })
	for _, rm := range rms {
		rootOrder = append(rootOrder, rm.root)
	}

	partitions := make([]*model.Connector, 0, len(rootOrder))
	for pi, r := range rootOrder {
		idxs := groups[r]
		segs := make([]*model.Segment, 0, len(idxs))
		for _, idx := range idxs {
			segs = append(segs, c.Segments[idx])
		}
		id := drawn.NextConnID()
		if pi == 0 {
			id = c.ID
		}
		part := &model.Connector{ID: id, Segments: segs, VAttr: c.VAttr}
		for _, p := range c.Port {
			for _, s := range segs {
				if s.HasEndpoint(p.X, p.Y) {
					part.Port = append(part.Port, p)
					break
				}
			}
		}
		part.Junction = junctionsOf(segs)
		partitions = append(partitions, part)
	}

	for _, p := range c.Port {
		newConn := make([]*model.Connector, 0, len(p.Conn))
		for _, cc := range p.Conn {
			if cc == c {
				continue
			}
			newConn = append(newConn, cc)
		}
		for _, part := range partitions {
			for _, pp := range part.Port {
				if pp == p {
					newConn = append(newConn, part)
					break
				}
			}
		}
		p.Conn = newConn
	}

	return partitions
}

// junctionsOf computes the junction set for a stand-alone segment
// list: coordinates where more than two endpoints meet.
func junctionsOf(segs []*model.Segment) []model.Junction {
	counts := map[coord]int{}
	for _, s := range segs {
		counts[coord{s.StartX, s.StartY}]++
		counts[coord{s.EndX, s.EndY}]++
	}
	var out []model.Junction
	for co, n := range counts {
		if n > 2 {
			out = append(out, model.Junction{X: co.x, Y: co.y})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lessCoord(coord{out[i].X, out[i].Y}, coord{out[j].X, out[j].Y})
	})
	return out
}

// SegRef names one segment and the connector it currently belongs to,
// the input unit for SplitConnectorAtSegments.
type SegRef struct {
	Conn *model.Connector
	Seg  *model.Segment
}

// SplitConnectorAtSegments separates the named segments into their own
// connectors: for each source connector it builds connM (one connector
// per endpoint-adjacency group among the listed segments) and connNM
// (the remainder), installs both in place of the original at its
// former position and order, disconnects the original's ports, and
// runs port-overlap reconciliation on every result.
func SplitConnectorAtSegments(drawn *model.Drawn, mtx *matrix.RoutingMatrix, refs []SegRef) []*model.Connector {
	byConn := map[*model.Connector][]*model.Segment{}
	var order []*model.Connector
	seen := map[*model.Connector]bool{}
	for _, r := range refs {
		if !seen[r.Conn] {
			seen[r.Conn] = true
			order = append(order, r.Conn)
		}
		byConn[r.Conn] = append(byConn[r.Conn], r.Seg)
	}
	sort.Slice(order, func(i, j int) bool {
		return drawn.ConnIndex(order[i]) > drawn.ConnIndex(order[j])
	})

	var results []*model.Connector
	for _, c := range order {
		selected := byConn[c]
		selSet := map[*model.Segment]bool{}
		for _, s := range selected {
			selSet[s] = true
		}

		groups := groupByAdjacency(selected)
		var connM []*model.Connector
		for _, g := range groups {
			nc := &model.Connector{ID: drawn.NextConnID(), Segments: g, VAttr: c.VAttr, Junction: junctionsOf(g)}
			connM = append(connM, nc)
		}

		var remainder []*model.Segment
		for _, s := range c.Segments {
			if !selSet[s] {
				remainder = append(remainder, s)
			}
		}
		var connNM *model.Connector
		if len(remainder) > 0 {
			connNM = &model.Connector{ID: c.ID, Segments: remainder, VAttr: c.VAttr, Junction: junctionsOf(remainder)}
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

		all := append([]*model.Connector{}, connM...)
		if connNM != nil {
			all = append(all, connNM)
		}
		for _, p := range c.Port {
			for _, nc := range all {
				for _, s := range nc.Segments {
					if s.HasEndpoint(p.X, p.Y) {
						nc.Port = append(nc.Port, p)
						p.Conn = append(p.Conn, nc)
						break
					}
				}
			}
		}

		idx := drawn.ConnIndex(c)
		pos := c.Order
		drawn.Connectors = append(drawn.Connectors[:idx], drawn.Connectors[idx+1:]...)
		drawn.RemoveOrderEntryFor(c)

		insertAt, orderAt := idx, pos
		for _, nc := range all {
			tail := append([]*model.Connector{}, drawn.Connectors[insertAt:]...)
			drawn.Connectors = append(drawn.Connectors[:insertAt], nc)
			drawn.Connectors = append(drawn.Connectors, tail...)
			drawn.InsertOrderEntryAt(orderAt, &model.OrderEntry{Type: model.KindConnector, Item: nc})
			insertAt++
			orderAt++
		}
		drawn.FixOrder()

		for _, nc := range all {
			ConnectOverlapPortsForConn(drawn, mtx, nc, portsTouchingConnector(drawn, nc))
		}

		results = append(results, all...)
	}
	return results
}

// groupByAdjacency partitions segs into connected groups by shared
// endpoint coordinates, ordered by each group's lowest original index.
func groupByAdjacency(segs []*model.Segment) [][]*model.Segment {
	uf := newUnionFind(len(segs))
	coordMap := map[coord][]int{}
	for i, s := range segs {
		coordMap[coord{s.StartX, s.StartY}] = append(coordMap[coord{s.StartX, s.StartY}], i)
		coordMap[coord{s.EndX, s.EndY}] = append(coordMap[coord{s.EndX, s.EndY}], i)
	}
	for _, idxs := range coordMap {
		for k := 1; k < len(idxs); k++ {
			uf.union(idxs[0], idxs[k])
		}
	}

	groups := map[int][]*model.Segment{}
	firstIdx := map[int]int{}
	for i, s := range segs {
		r := uf.find(i)
		if _, ok := firstIdx[r]; !ok {
			firstIdx[r] = i
		}
		groups[r] = append(groups[r], s)
	}

	type rootFirst struct{ root, first int }
	var rfs []rootFirst
	for r, f := range firstIdx {
		rfs = append(rfs, rootFirst{r, f})
	}
	sort.Slice(rfs, func(i, j int) bool { return rfs[i].first < rfs[j].first })

	out := make([][]*model.Segment, 0, len(rfs))
	for _, rf := range rfs {
		out = append(out, groups[rf.root])
	}
	return out
}
