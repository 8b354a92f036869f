package model

import "fmt"

// Drawn is the canvas root: the owner of every object, port and
// connector, plus the z-order array that interleaves them.
//
// Drawn exclusively owns objects, ports and connectors. Ports are
// shared by reference between their owning object and the connectors
// that terminate on them -- those are back-references only, never
// ownership.
type Drawn struct {
	Objects    []*Object
	Ports      []*Port
	Connectors []*Connector
	Order      []*OrderEntry
	Groups     []*Group

	GridX    float64
	GridY    float64
	SnapGrid bool

	ids idCounters
}

type idCounters struct {
	object int
	port   int
	conn   int
	group  int
}

// NewDrawn creates an empty canvas model with the given grid.
func NewDrawn(gridX, gridY float64, snapGrid bool) *Drawn {
	return &Drawn{
		GridX:    gridX,
		GridY:    gridY,
		SnapGrid: snapGrid,
	}
}

// EffectiveGrid returns the grid actually used for snapping: (1,1) when
// SnapGrid is false.
func (d *Drawn) EffectiveGrid() (float64, float64) {
	if !d.SnapGrid {
		return 1, 1
	}
	return d.GridX, d.GridY
}

// NextObjectID allocates the next object identifier.
func (d *Drawn) NextObjectID() int {
	d.ids.object++
	return d.ids.object
}

// NextPortID allocates the next port identifier, "P<n>".
func (d *Drawn) NextPortID() string {
	d.ids.port++
	return fmt.Sprintf("P%d", d.ids.port)
}

// NextConnID allocates the next connector identifier, "C<n>".
func (d *Drawn) NextConnID() string {
	d.ids.conn++
	return fmt.Sprintf("C%d", d.ids.conn)
}

// NextGroupID allocates the next group identifier.
func (d *Drawn) NextGroupID() int {
	d.ids.group++
	return d.ids.group
}

// AddObject appends obj to Objects and to the order array, and keeps
// obj.Order consistent with its slot.
func (d *Drawn) AddObject(obj *Object) {
	d.Objects = append(d.Objects, obj)
	obj.Order = len(d.Order)
	d.Order = append(d.Order, &OrderEntry{Type: KindObject, Item: obj})
}

// AddConnector appends c to Connectors and to the order array.
func (d *Drawn) AddConnector(c *Connector) {
	d.Connectors = append(d.Connectors, c)
	c.Order = len(d.Order)
	d.Order = append(d.Order, &OrderEntry{Type: KindConnector, Item: c})
}

// AddPort appends p to Ports. Ports are not z-ordered, so Order is
// left untouched.
func (d *Drawn) AddPort(p *Port) {
	d.Ports = append(d.Ports, p)
}

// ConnIndex returns the index of c in Connectors, or -1.
func (d *Drawn) ConnIndex(c *Connector) int {
	for i, o := range d.Connectors {
		if o == c {
			return i
		}
	}
	return -1
}

// RemoveConnectorAt removes the connector at index i from Connectors
// and removes its slot from Order, then compacts Order. It does not
// touch port back-references; callers must detach those first.
func (d *Drawn) RemoveConnectorAt(i int) {
	c := d.Connectors[i]
	d.Connectors = append(d.Connectors[:i], d.Connectors[i+1:]...)
	d.removeOrderEntryFor(c)
	d.FixOrder()
}

// InsertConnectorAt inserts c into Connectors at index i and gives it
// an order slot at position pos (shifting later entries), then fixes
// up order.
func (d *Drawn) InsertConnectorAt(i int, c *Connector, pos int) {
	tail := append([]*Connector{}, d.Connectors[i:]...)
	d.Connectors = append(d.Connectors[:i], c)
	d.Connectors = append(d.Connectors, tail...)

	entry := &OrderEntry{Type: KindConnector, Item: c}
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.Order) {
		pos = len(d.Order)
	}
	tailOrder := append([]*OrderEntry{}, d.Order[pos:]...)
	d.Order = append(d.Order[:pos], entry)
	d.Order = append(d.Order, tailOrder...)
	d.FixOrder()
}

func (d *Drawn) removeOrderEntryFor(item interface{}) {
	d.RemoveOrderEntryFor(item)
}

// RemoveOrderEntryFor deletes item's slot from the order array, if
// present. Callers must follow with FixOrder.
func (d *Drawn) RemoveOrderEntryFor(item interface{}) {
	for i, e := range d.Order {
		if e.Item == item {
			d.Order = append(d.Order[:i], d.Order[i+1:]...)
			return
		}
	}
}

// InsertOrderEntryAt inserts entry at position pos (clamped to the
// array bounds), shifting later entries back. Callers must follow
// with FixOrder.
func (d *Drawn) InsertOrderEntryAt(pos int, entry *OrderEntry) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.Order) {
		pos = len(d.Order)
	}
	tail := append([]*OrderEntry{}, d.Order[pos:]...)
	d.Order = append(d.Order[:pos], entry)
	d.Order = append(d.Order, tail...)
}

// FixOrder re-establishes invariant 7: order[i.Order] == i for every
// item currently in the order array.
func (d *Drawn) FixOrder() {
	for i, e := range d.Order {
		switch v := e.Item.(type) {
		case *Object:
			v.Order = i
		case *Connector:
			v.Order = i
		}
	}
}

// FindObject returns the object with the given ID, or nil.
func (d *Drawn) FindObject(id int) *Object {
	for _, o := range d.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindPort returns the port with the given ID, or nil.
func (d *Drawn) FindPort(id string) *Port {
	for _, p := range d.Ports {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindConnector returns the connector with the given ID, or nil.
func (d *Drawn) FindConnector(id string) *Connector {
	for _, c := range d.Connectors {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// MaxConnOrder returns the maximum Order value among the given
// connectors.
func MaxConnOrder(conns []*Connector) int {
	max := -1
	for _, c := range conns {
		if c.Order > max {
			max = c.Order
		}
	}
	return max
}
