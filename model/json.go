package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the on-disk JSON form of a Drawn canvas. Objects, ports
// and connectors reference each other by ID instead of by pointer, so
// the back-reference cycles in the live model (Port.Obj, Port.Conn,
// Object.Group) never have to round-trip through encoding/json
// directly.
type Document struct {
	GridX    float64          `json:"gridX"`
	GridY    float64          `json:"gridY"`
	SnapGrid bool             `json:"snapGrid"`
	Objects  []docObject      `json:"objects"`
	Ports    []docPort        `json:"ports"`
	Groups   []docGroup       `json:"groups,omitempty"`
	Connectors []docConnector `json:"connectors"`
	Order    []docOrderEntry  `json:"order"`
}

type docObject struct {
	ID      int     `json:"id"`
	Shape   Shape   `json:"shape"`
	StartX  float64 `json:"startX"`
	StartY  float64 `json:"startY"`
	EndX    float64 `json:"endX"`
	EndY    float64 `json:"endY"`
	GroupID int     `json:"groupId,omitempty"`
}

type docPort struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ObjectID int     `json:"objectId"`
}

type docGroup struct {
	ID        int   `json:"id"`
	ObjectIDs []int `json:"objectIds"`
}

type docConnector struct {
	ID        string     `json:"id"`
	Segments  []*Segment `json:"segments"`
	Junctions []Junction `json:"junctions,omitempty"`
	PortIDs   []string   `json:"portIds"`
	VAttr     *VisAttr   `json:"vattr,omitempty"`
}

type docOrderEntry struct {
	Type ItemKind `json:"type"`
	ID   string   `json:"id"`
}

// ToDocument flattens d into its on-disk form.
func (d *Drawn) ToDocument() *Document {
	doc := &Document{GridX: d.GridX, GridY: d.GridY, SnapGrid: d.SnapGrid}

	for _, o := range d.Objects {
		do := docObject{ID: o.ID, Shape: o.Shape, StartX: o.StartX, StartY: o.StartY, EndX: o.EndX, EndY: o.EndY}
		if o.Group != nil {
			do.GroupID = o.Group.ID
		}
		doc.Objects = append(doc.Objects, do)
	}
	for _, p := range d.Ports {
		objID := 0
		if p.Obj != nil {
			objID = p.Obj.ID
		}
		doc.Ports = append(doc.Ports, docPort{ID: p.ID, X: p.X, Y: p.Y, ObjectID: objID})
	}
	for _, g := range d.Groups {
		ids := make([]int, 0, len(g.Objects))
		for _, o := range g.Objects {
			ids = append(ids, o.ID)
		}
		doc.Groups = append(doc.Groups, docGroup{ID: g.ID, ObjectIDs: ids})
	}
	for _, c := range d.Connectors {
		ids := make([]string, 0, len(c.Port))
		for _, p := range c.Port {
			ids = append(ids, p.ID)
		}
		doc.Connectors = append(doc.Connectors, docConnector{
			ID:        c.ID,
			Segments:  c.Segments,
			Junctions: c.Junction,
			PortIDs:   ids,
			VAttr:     c.VAttr,
		})
	}
	for _, e := range d.Order {
		switch v := e.Item.(type) {
		case *Object:
			doc.Order = append(doc.Order, docOrderEntry{Type: KindObject, ID: fmt.Sprintf("%d", v.ID)})
		case *Connector:
			doc.Order = append(doc.Order, docOrderEntry{Type: KindConnector, ID: v.ID})
		}
	}
	return doc
}

// FromDocument rebuilds a live Drawn from its on-disk form, resolving
// every ID reference back into a pointer and restoring the ID counters
// so subsequent NextXID calls never collide with a loaded ID.
func FromDocument(doc *Document) (*Drawn, error) {
	d := NewDrawn(doc.GridX, doc.GridY, doc.SnapGrid)

	groupsByID := map[int]*Group{}
	for _, dg := range doc.Groups {
		g := &Group{ID: dg.ID}
		groupsByID[dg.ID] = g
		if dg.ID > d.ids.group {
			d.ids.group = dg.ID
		}
	}

	objectsByID := map[int]*Object{}
	for _, do := range doc.Objects {
		o := &Object{ID: do.ID, Shape: do.Shape, StartX: do.StartX, StartY: do.StartY, EndX: do.EndX, EndY: do.EndY}
		if g, ok := groupsByID[do.GroupID]; ok {
			o.Group = g
			g.Objects = append(g.Objects, o)
		}
		objectsByID[do.ID] = o
		d.Objects = append(d.Objects, o)
		if do.ID > d.ids.object {
			d.ids.object = do.ID
		}
	}
	for _, g := range groupsByID {
		d.Groups = append(d.Groups, g)
	}

	portsByID := map[string]*Port{}
	for _, dp := range doc.Ports {
		o, ok := objectsByID[dp.ObjectID]
		if !ok {
			return nil, fmt.Errorf("model: port %q references unknown object %d", dp.ID, dp.ObjectID)
		}
		p := &Port{ID: dp.ID, X: dp.X, Y: dp.Y, Obj: o}
		o.Port = append(o.Port, p)
		portsByID[dp.ID] = p
		d.Ports = append(d.Ports, p)
		maybeBumpPortCounter(d, dp.ID)
	}

	connByID := map[string]*Connector{}
	for _, dc := range doc.Connectors {
		c := &Connector{ID: dc.ID, Segments: dc.Segments, Junction: dc.Junctions, VAttr: dc.VAttr}
		for _, pid := range dc.PortIDs {
			p, ok := portsByID[pid]
			if !ok {
				return nil, fmt.Errorf("model: connector %q references unknown port %q", dc.ID, pid)
			}
			c.Port = append(c.Port, p)
			p.Conn = append(p.Conn, c)
		}
		connByID[dc.ID] = c
		d.Connectors = append(d.Connectors, c)
		maybeBumpConnCounter(d, dc.ID)
	}

	for _, de := range doc.Order {
		switch de.Type {
		case KindObject:
			var id int
			fmt.Sscanf(de.ID, "%d", &id)
			o, ok := objectsByID[id]
			if !ok {
				continue
			}
			o.Order = len(d.Order)
			d.Order = append(d.Order, &OrderEntry{Type: KindObject, Item: o})
		case KindConnector:
			c, ok := connByID[de.ID]
			if !ok {
				continue
			}
			c.Order = len(d.Order)
			d.Order = append(d.Order, &OrderEntry{Type: KindConnector, Item: c})
		}
	}
	return d, nil
}

func maybeBumpPortCounter(d *Drawn, id string) {
	var n int
	if _, err := fmt.Sscanf(id, "P%d", &n); err == nil && n > d.ids.port {
		d.ids.port = n
	}
}

func maybeBumpConnCounter(d *Drawn, id string) {
	var n int
	if _, err := fmt.Sscanf(id, "C%d", &n); err == nil && n > d.ids.conn {
		d.ids.conn = n
	}
}

// EncodeJSON writes d's document form to w as indented JSON.
func (d *Drawn) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.ToDocument())
}

// DecodeJSON reads a document form from r and rebuilds a live Drawn.
func DecodeJSON(r io.Reader) (*Drawn, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// Save writes d to path as JSON.
func (d *Drawn) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.EncodeJSON(f)
}

// Load reads a Drawn back from path.
func Load(path string) (*Drawn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeJSON(f)
}
