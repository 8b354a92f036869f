package engine

import (
	"gridwire/geometry"
	"gridwire/matrix"
	"gridwire/model"
)

// portsTouchingConnector returns c's already-attached ports plus every
// other port in drawn whose coordinate lies on one of c's segments (or,
// for a zero-segment connector, coincides with an existing port of c).
// Callers use this as the candidate list for ConnectOverlapPortsForConn
// so that a newly drawn or newly split segment picks up a port it now
// passes through, not only the ports it already knew about.
func portsTouchingConnector(drawn *model.Drawn, c *model.Connector) []*model.Port {
	seen := map[*model.Port]bool{}
	var out []*model.Port
	for _, p := range c.Port {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range drawn.Ports {
		if seen[p] {
			continue
		}
		if connectorTouchesPoint(c, p.X, p.Y) {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// ConnectOverlapPorts is the port-to-port variant: for
// every pair of ports in ports with equal (x,y) that are not already
// linked by some common connector, it creates a zero-segment connector
// joining them and returns the connectors it created.
//
// Go does not overload by arity the way the source language's
// connectOverlapPorts does; ConnectOverlapPortsForConn below is the
// ports-to-connector variant.
func ConnectOverlapPorts(drawn *model.Drawn, ports []*model.Port) []*model.Connector {
	var created []*model.Connector
	for i := 0; i < len(ports); i++ {
		for j := i + 1; j < len(ports); j++ {
			p1, p2 := ports[i], ports[j]
			if p1 == p2 || p1.X != p2.X || p1.Y != p2.Y {
				continue
			}
			if sharesConnector(p1, p2) {
				continue
			}
			c := &model.Connector{ID: drawn.NextConnID(), Port: []*model.Port{p1, p2}}
			drawn.AddConnector(c)
			p1.Conn = append(p1.Conn, c)
			p2.Conn = append(p2.Conn, c)
			created = append(created, c)
		}
	}
	return created
}

func sharesConnector(p1, p2 *model.Port) bool {
	for _, c1 := range p1.Conn {
		for _, c2 := range p2.Conn {
			if c1 == c2 {
				return true
			}
		}
	}
	return false
}

// ConnectOverlapPortsForConn is the ports-to-connector variant. If c
// is non-nil, only c is considered as the connector a port
// may lie on; if c is nil, every connector at the port's coordinate is
// considered. Each port in ports that lies mid-segment (or shares its
// coordinate with more than one segment) forces a split of the
// connector it lies on; a port on a dangling endpoint is simply
// linked.
func ConnectOverlapPortsForConn(drawn *model.Drawn, mtx *matrix.RoutingMatrix, c *model.Connector, ports []*model.Port) {
	for _, p := range ports {
		var queue []*model.Connector
		if c != nil {
			if connectorTouchesPoint(c, p.X, p.Y) {
				queue = []*model.Connector{c}
			}
		} else {
			// Match anywhere on a segment, not only at its endpoints, so
			// a port landing mid-segment finds that segment's connector.
			for _, k := range drawn.Connectors {
				if connectorTouchesPoint(k, p.X, p.Y) {
					queue = append(queue, k)
				}
			}
		}

		i := 0
		for i < len(queue) {
			k := queue[i]
			detachPortFromConn(p, k)

			var touching []*model.Segment
			for _, s := range k.Segments {
				if geometry.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, p.X, p.Y) {
					touching = append(touching, s)
				}
			}
			needSplit := len(touching) > 1 || (len(touching) == 1 && !touching[0].HasEndpoint(p.X, p.Y))

			if !needSplit {
				attachPortToConn(p, k)
				i++
				continue
			}

			parts := SplitConnectorAtCoor(drawn, mtx, k, p.X, p.Y)
			installSplitResult(drawn, k, parts)

			for _, part := range parts {
				for _, s := range part.Segments {
					if s.HasEndpoint(p.X, p.Y) {
						attachPortToConn(p, part)
						break
					}
				}
			}

			next := make([]*model.Connector, 0, len(queue)-1+len(parts))
			next = append(next, queue[:i]...)
			next = append(next, parts...)
			next = append(next, queue[i+1:]...)
			queue = next
			i += len(parts)
		}
	}
}

// installSplitResult removes k from drawn and inserts parts in its
// place at its former Connectors index and Order slot.
func installSplitResult(drawn *model.Drawn, k *model.Connector, parts []*model.Connector) {
	idx := drawn.ConnIndex(k)
	if idx < 0 {
		return
	}
	pos := k.Order
	drawn.Connectors = append(drawn.Connectors[:idx], drawn.Connectors[idx+1:]...)
	drawn.RemoveOrderEntryFor(k)

	insertAt, orderAt := idx, pos
	for _, part := range parts {
		tail := append([]*model.Connector{}, drawn.Connectors[insertAt:]...)
		drawn.Connectors = append(drawn.Connectors[:insertAt], part)
		drawn.Connectors = append(drawn.Connectors, tail...)
		drawn.InsertOrderEntryAt(orderAt, &model.OrderEntry{Type: model.KindConnector, Item: part})
		insertAt++
		orderAt++
	}
	drawn.FixOrder()
}

func connectorTouchesPoint(c *model.Connector, x, y float64) bool {
	if len(c.Segments) == 0 {
		for _, p := range c.Port {
			if p.X == x && p.Y == y {
				return true
			}
		}
		return false
	}
	for _, s := range c.Segments {
		if geometry.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, x, y) {
			return true
		}
	}
	return false
}

func detachPortFromConn(p *model.Port, c *model.Connector) {
	newConn := make([]*model.Connector, 0, len(p.Conn))
	for _, cc := range p.Conn {
		if cc != c {
			newConn = append(newConn, cc)
		}
	}
	p.Conn = newConn

	newPort := make([]*model.Port, 0, len(c.Port))
	for _, pp := range c.Port {
		if pp != p {
			newPort = append(newPort, pp)
		}
	}
	c.Port = newPort
}

func attachPortToConn(p *model.Port, c *model.Connector) {
	hasC := false
	for _, cc := range p.Conn {
		if cc == c {
			hasC = true
			break
		}
	}
	if !hasC {
		p.Conn = append(p.Conn, c)
	}

	hasP := false
	for _, pp := range c.Port {
		if pp == p {
			hasP = true
			break
		}
	}
	if !hasP {
		c.Port = append(c.Port, p)
	}
}
