package engine

import (
	"sort"

	"gridwire/matrix"
	"gridwire/model"
)

// connectorsAtCoor returns every connector in drawn that touches
// (x,y) exactly: either one of its segments has an endpoint there, or
// -- for a zero-segment port-to-port connector -- one of its ports
// sits there.
func connectorsAtCoor(drawn *model.Drawn, x, y float64) []*model.Connector {
	var out []*model.Connector
	for _, c := range drawn.Connectors {
		touched := false
		for _, s := range c.Segments {
			if s.HasEndpoint(x, y) {
				touched = true
				break
			}
		}
		if !touched {
			for _, p := range c.Port {
				if p.X == x && p.Y == y {
					touched = true
					break
				}
			}
		}
		if touched {
			out = append(out, c)
		}
	}
	return out
}

// distinctEndpoints returns the coordinates that shortAndMerge should
// search from: a connector's segment endpoints, or -- for a
// zero-segment connector -- its ports' coordinates. A zero-segment
// connector still participates in shorting/merging through its port
// coordinates.
func distinctEndpoints(c *model.Connector) []coord {
	seen := map[coord]bool{}
	var out []coord
	add := func(x, y float64) {
		co := coord{x, y}
		if !seen[co] {
			seen[co] = true
			out = append(out, co)
		}
	}
	if len(c.Segments) == 0 {
		for _, p := range c.Port {
			add(p.X, p.Y)
		}
		return out
	}
	for _, s := range c.Segments {
		add(s.StartX, s.StartY)
		add(s.EndX, s.EndY)
	}
	return out
}

// ShortAndMergeConnector fuses every connector that touches any
// segment-endpoint coordinate of c into a single connector and
// returns the resulting master plus the IDs merged into it (master
// last). If c touches nothing else, it returns c unchanged with a
// single-element ID list.
func ShortAndMergeConnector(drawn *model.Drawn, mtx *matrix.RoutingMatrix, c *model.Connector) (*model.Connector, []string) {
	found := map[*model.Connector]bool{c: true}
	for _, co := range distinctEndpoints(c) {
		for _, k := range connectorsAtCoor(drawn, co.x, co.y) {
			found[k] = true
		}
	}
	if len(found) == 1 {
		return c, []string{c.ID}
	}

	list := make([]*model.Connector, 0, len(found))
	for k := range found {
		list = append(list, k)
	}

	master := list[0]
	masterIdx := drawn.ConnIndex(master)
	for _, k := range list[1:] {
		idx := drawn.ConnIndex(k)
		if idx < masterIdx {
			master, masterIdx = k, idx
		}
	}

	others := make([]*model.Connector, 0, len(list)-1)
	for _, k := range list {
		if k != master {
			others = append(others, k)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		return drawn.ConnIndex(others[i]) > drawn.ConnIndex(others[j])
	})

	merged := append([]*model.Connector{master}, others...)
	maxOrder := model.MaxConnOrder(merged)

	for _, k := range others {
		mergeInto(mtx, master, k)
	}

	idxs := make([]int, 0, len(others))
	for _, k := range others {
		idxs = append(idxs, drawn.ConnIndex(k))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	for _, idx := range idxs {
		victim := drawn.Connectors[idx]
		drawn.Connectors = append(drawn.Connectors[:idx], drawn.Connectors[idx+1:]...)
		drawn.RemoveOrderEntryFor(victim)
	}

	drawn.RemoveOrderEntryFor(master)
	pos := maxOrder - len(others)
	drawn.InsertOrderEntryAt(pos, &model.OrderEntry{Type: model.KindConnector, Item: master})
	drawn.FixOrder()

	mergedIDs := make([]string, 0, len(others)+1)
	for _, k := range others {
		mergedIDs = append(mergedIDs, k.ID)
	}
	mergedIDs = append(mergedIDs, master.ID)
	return master, mergedIDs
}

// mergeInto absorbs k's segments, ports, junctions and visual
// attribute into master, dropping duplicate segments and fixing up
// port<->connector back-references.
func mergeInto(mtx *matrix.RoutingMatrix, master, k *model.Connector) {
	for _, seg := range k.Segments {
		dup := false
		for _, ms := range master.Segments {
			if ms.EndpointEqual(seg) {
				dup = true
				break
			}
		}
		if dup {
			mtx.RemoveSegment(seg)
			continue
		}
		master.Segments = append(master.Segments, seg)
	}

	for _, p := range k.Port {
		exists := false
		for _, mp := range master.Port {
			if mp == p {
				exists = true
				break
			}
		}
		if !exists {
			master.Port = append(master.Port, p)
		}
		newConn := make([]*model.Connector, 0, len(p.Conn))
		hasMaster := false
		for _, cc := range p.Conn {
			if cc == k {
				continue
			}
			if cc == master {
				hasMaster = true
			}
			newConn = append(newConn, cc)
		}
		if !hasMaster {
			newConn = append(newConn, master)
		}
		p.Conn = newConn
	}

	master.Junction = append(master.Junction, k.Junction...)
	if master.VAttr == nil && k.VAttr != nil {
		master.VAttr = k.VAttr
	}
}

// ShortAndMergeConnectors drives ShortAndMergeConnector to a fixpoint
// for every connector in list (skipping any already absorbed by an
// earlier merge in this same call), then runs RepairSegAndJunc once
// per distinct final master.
func ShortAndMergeConnectors(drawn *model.Drawn, mtx *matrix.RoutingMatrix, list []*model.Connector) []*model.Connector {
	var masters []*model.Connector
	resultSeen := map[*model.Connector]bool{}

	for _, c := range list {
		if drawn.ConnIndex(c) == -1 {
			continue
		}
		cur := c
		for {
			master, merged := ShortAndMergeConnector(drawn, mtx, cur)
			cur = master
			if len(merged) <= 1 {
				break
			}
		}
		if !resultSeen[cur] {
			resultSeen[cur] = true
			masters = append(masters, cur)
		}
	}

	for _, m := range masters {
		RepairSegAndJunc(mtx, m, true)
	}
	return masters
}
