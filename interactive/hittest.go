package interactive

import "gridwire/model"

// hitPort returns the port whose coordinate equals (x,y), if any.
func hitPort(d *model.Drawn, x, y float64) *model.Port {
	for _, p := range d.Ports {
		if p.X == x && p.Y == y {
			return p
		}
	}
	return nil
}

// hitObject returns the topmost object whose bounding box contains
// (x,y), if any.
func hitObject(d *model.Drawn, x, y float64) *model.Object {
	for i := len(d.Order) - 1; i >= 0; i-- {
		o, ok := d.Order[i].Item.(*model.Object)
		if !ok {
			continue
		}
		x1, y1, x2, y2 := o.StartX, o.StartY, o.EndX, o.EndY
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		if x >= x1 && x <= x2 && y >= y1 && y <= y2 {
			return o
		}
	}
	return nil
}

// hitConnector returns the topmost connector with a segment passing
// through (x,y), if any.
func hitConnector(d *model.Drawn, x, y float64) *model.Connector {
	for i := len(d.Order) - 1; i >= 0; i-- {
		c, ok := d.Order[i].Item.(*model.Connector)
		if !ok {
			continue
		}
		for _, s := range c.Segments {
			if segmentContains(s, x, y) {
				return c
			}
		}
	}
	return nil
}

func segmentContains(s *model.Segment, x, y float64) bool {
	if s.StartX == s.EndX {
		return x == s.StartX && y >= minf(s.StartY, s.EndY) && y <= maxf(s.StartY, s.EndY)
	}
	if s.StartY == s.EndY {
		return y == s.StartY && x >= minf(s.StartX, s.EndX) && x <= maxf(s.StartX, s.EndX)
	}
	return false
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
