// Package matrix implements the routing matrix: a spatial occupancy
// index mapping grid cells to the segments that span them. It backs
// the router's occupancy queries and is the structure invariant 8
// (routing-matrix coherence) is stated against.
package matrix

import (
	"gridwire/model"
)

type cell struct {
	x, y int64
}

// RoutingMatrix indexes segments by the integer cells their span
// crosses so the router can answer "is this cell occupied" in O(1)
// and so the engine can remove/re-add a segment's occupancy whenever
// its geometry changes.
//
// RoutingMatrix is not safe for concurrent use; per the single-threaded
// cooperative model (all model mutation happens on the UI/event
// thread), callers are expected to serialize access themselves.
type RoutingMatrix struct {
	cells    map[cell]map[*model.Segment]bool
	segCells map[*model.Segment][]cell
}

// New creates an empty routing matrix.
func New() *RoutingMatrix {
	return &RoutingMatrix{
		cells:    make(map[cell]map[*model.Segment]bool),
		segCells: make(map[*model.Segment][]cell),
	}
}

// AddSegment registers seg as occupying every integer cell on the
// straight line from (x1,y1) to (x2,y2). Coordinates are rounded to
// the nearest integer cell; callers pass the coordinates the segment
// was created with.
func (m *RoutingMatrix) AddSegment(seg *model.Segment, x1, y1, x2, y2 float64) {
	if seg == nil {
		return
	}
	// Idempotent: clear any prior registration before re-adding.
	m.RemoveSegment(seg)

	cells := cellsOnLine(x1, y1, x2, y2)
	m.segCells[seg] = cells
	for _, c := range cells {
		set, ok := m.cells[c]
		if !ok {
			set = make(map[*model.Segment]bool)
			m.cells[c] = set
		}
		set[seg] = true
	}
}

// RemoveSegment unregisters seg. It is idempotent and a no-op if seg
// is not currently registered.
func (m *RoutingMatrix) RemoveSegment(seg *model.Segment) {
	cells, ok := m.segCells[seg]
	if !ok {
		return
	}
	for _, c := range cells {
		if set, ok := m.cells[c]; ok {
			delete(set, seg)
			if len(set) == 0 {
				delete(m.cells, c)
			}
		}
	}
	delete(m.segCells, seg)
}

// IsOccupied reports whether any segment currently occupies the cell
// containing (x,y).
func (m *RoutingMatrix) IsOccupied(x, y float64) bool {
	set, ok := m.cells[roundCell(x, y)]
	return ok && len(set) > 0
}

// SegmentsAtCell returns the segments registered at the cell
// containing (x,y).
func (m *RoutingMatrix) SegmentsAtCell(x, y float64) []*model.Segment {
	set, ok := m.cells[roundCell(x, y)]
	if !ok {
		return nil
	}
	out := make([]*model.Segment, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

// Len returns the number of segments currently registered.
func (m *RoutingMatrix) Len() int {
	return len(m.segCells)
}

// Segments returns every segment currently registered, for invariant
// checking (invariant 8: the routing matrix's segment set equals the
// union of all connectors' segments).
func (m *RoutingMatrix) Segments() []*model.Segment {
	out := make([]*model.Segment, 0, len(m.segCells))
	for s := range m.segCells {
		out = append(out, s)
	}
	return out
}

// Contains reports whether seg is currently registered.
func (m *RoutingMatrix) Contains(seg *model.Segment) bool {
	_, ok := m.segCells[seg]
	return ok
}

// FromDrawn rebuilds a routing matrix from every segment currently on
// d's connectors. A freshly loaded Drawn has no matrix of its own --
// it only persists model geometry -- so callers reconstruct one from
// that geometry before running any further engine operation against it.
func FromDrawn(d *model.Drawn) *RoutingMatrix {
	m := New()
	for _, c := range d.Connectors {
		for _, s := range c.Segments {
			m.AddSegment(s, s.StartX, s.StartY, s.EndX, s.EndY)
		}
	}
	return m
}

func roundCell(x, y float64) cell {
	return cell{x: roundI(x), y: roundI(y)}
}

func roundI(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// cellsOnLine enumerates the integer cells on the straight line from
// (x1,y1) to (x2,y2) using a Bresenham-style walk over float
// coordinates.
func cellsOnLine(x1, y1, x2, y2 float64) []cell {
	a := roundCell(x1, y1)
	b := roundCell(x2, y2)

	dx := b.x - a.x
	dy := b.y - a.y
	if dx == 0 && dy == 0 {
		return []cell{a}
	}

	steps := dx
	if abs64(dy) > abs64(steps) {
		steps = dy
	}
	steps = abs64(steps)

	out := make([]cell, 0, steps+1)
	seen := make(map[cell]bool, steps+1)
	for i := int64(0); i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := cell{
			x: a.x + roundI(float64(dx)*t),
			y: a.y + roundI(float64(dy)*t),
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
