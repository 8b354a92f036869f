package interactive

import (
	"gridwire/engine"
	"gridwire/geometry"
	"gridwire/hooks"
	"gridwire/model"

	"github.com/gdamore/tcell/v2"
)

type drawConnState struct {
	segs       []*model.Segment
	anchorX    float64
	anchorY    float64
}

type moveConnState struct {
	list    []*model.Connector
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
}

type dragSegState struct {
	sel       []*model.Segment
	objList   []*model.Object
	dragNodes []*engine.DragNode
	stubs     []engine.RegenStub
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
}

type moveObjState struct {
	obj    *model.Object
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// BeginDrawConn starts an interactive connector draw anchored at
// (x,y), snapped to the canvas grid.
func (s *Session) BeginDrawConn(x, y float64) {
	gx, gy := s.Drawn.EffectiveGrid()
	x, y = geometry.SnapX(x, gx), geometry.SnapY(y, gy)
	st := &drawConnState{anchorX: x, anchorY: y}
	s.begin(DrawConn, func(apply bool) {
		if !apply || len(st.segs) == 0 {
			return
		}
		engine.DrawConnector(s.Drawn, s.Matrix, st.segs)
	}, st)
}

// ExtendDrawConn appends an orthogonal segment from the current anchor
// to (x,y) and advances the anchor.
func (s *Session) ExtendDrawConn(x, y float64) {
	st, ok := s.transient().(*drawConnState)
	if !ok {
		return
	}
	gx, gy := s.Drawn.EffectiveGrid()
	x, y = geometry.SnapX(x, gx), geometry.SnapY(y, gy)
	if x == st.anchorX && y == st.anchorY {
		return
	}
	if x != st.anchorX && y != st.anchorY {
		// keep segments orthogonal: bend at the horizontal leg first
		st.segs = append(st.segs, &model.Segment{StartX: st.anchorX, StartY: st.anchorY, EndX: x, EndY: st.anchorY})
		st.segs = append(st.segs, &model.Segment{StartX: x, StartY: st.anchorY, EndX: x, EndY: y})
	} else {
		st.segs = append(st.segs, &model.Segment{StartX: st.anchorX, StartY: st.anchorY, EndX: x, EndY: y})
	}
	st.anchorX, st.anchorY = x, y
}

// FinishDrawConn commits the pending connector.
func (s *Session) FinishDrawConn() { s.end(true) }

// CancelDrawConn discards the pending connector.
func (s *Session) CancelDrawConn() { s.end(false) }

// BeginMoveConn starts an interactive move of list, anchored at the
// pointer's current position.
func (s *Session) BeginMoveConn(list []*model.Connector, x, y float64) {
	st := &moveConnState{list: list, startX: x, startY: y, lastX: x, lastY: y}
	s.begin(MoveConn, func(apply bool) {
		if !apply {
			return
		}
		engine.MoveConn(s.Drawn, s.Matrix, st.list, st.lastX-st.startX, st.lastY-st.startY)
	}, st)
}

// DragMoveConn previews the move at the pointer's new position. The
// actual connector mutation happens once in the finish callback so
// intermediate frames never run repair/merge passes.
func (s *Session) DragMoveConn(x, y float64) {
	if st, ok := s.transient().(*moveConnState); ok {
		st.lastX, st.lastY = x, y
	}
}

// FinishMoveConn commits the move.
func (s *Session) FinishMoveConn() { s.end(true) }

// CancelMoveConn discards the move.
func (s *Session) CancelMoveConn() { s.end(false) }

// BeginDragSeg starts an interactive drag of sel, the segments owned
// by objects in objList that are being moved together with them.
func (s *Session) BeginDragSeg(sel []*model.Segment, objList []*model.Object, x, y float64) {
	dragNodes, segsToRemove, connList := engine.GenerateRoutingStartNodes(s.Drawn, sel, objList)
	for _, seg := range segsToRemove {
		s.Matrix.RemoveSegment(seg)
	}
	st := &dragSegState{sel: sel, objList: objList, dragNodes: dragNodes, startX: x, startY: y, lastX: x, lastY: y}
	s.begin(DragSeg, func(apply bool) {
		if !apply {
			return
		}
		engine.Assimilate(s.Drawn, s.Matrix, connList)
	}, st)
}

// DragSegFrame runs one frame of regeneration towards (x,y).
func (s *Session) DragSegFrame(x, y float64) {
	st, ok := s.transient().(*dragSegState)
	if !ok {
		return
	}
	dx, dy := x-st.lastX, y-st.lastY
	st.lastX, st.lastY = x, y
	st.stubs = engine.RegenSegments(s.Matrix, s.Router, st.sel, dx, dy, st.dragNodes, st.stubs, s.RouterFn, s.JumpSegDrag)
}

// FinishDragSeg commits the drag.
func (s *Session) FinishDragSeg() { s.end(true) }

// CancelDragSeg discards the drag.
func (s *Session) CancelDragSeg() { s.end(false) }

// BeginMoveObj starts an interactive move of a single object.
func (s *Session) BeginMoveObj(obj *model.Object, x, y float64) {
	st := &moveObjState{obj: obj, startX: x, startY: y, lastX: x, lastY: y}
	s.begin(MoveObj, func(apply bool) {
		if !apply {
			return
		}
		engine.MoveObj(s.Drawn, s.Matrix, s.Router, st.obj, st.lastX-st.startX, st.lastY-st.startY, s.RouterFn, s.JumpSegFin)
	}, st)
}

// DragMoveObj previews the object move.
func (s *Session) DragMoveObj(x, y float64) {
	if st, ok := s.transient().(*moveObjState); ok {
		st.lastX, st.lastY = x, y
	}
}

// FinishMoveObj commits the object move.
func (s *Session) FinishMoveObj() { s.end(true) }

// CancelMoveObj discards the object move.
func (s *Session) CancelMoveObj() { s.end(false) }

// beginFromHitTest decides what a button-1 press in Idle mode starts:
// a port under the pointer begins a connector draw, an object begins
// a move, otherwise a connector segment under the pointer begins a
// connector move. A click that hits nothing is a no-op.
func (s *Session) beginFromHitTest(x, y float64) {
	if p := hitPort(s.Drawn, x, y); p != nil {
		s.BeginDrawConn(p.X, p.Y)
		return
	}
	if o := hitObject(s.Drawn, x, y); o != nil {
		s.BeginMoveObj(o, x, y)
		return
	}
	if c := hitConnector(s.Drawn, x, y); c != nil {
		s.BeginMoveConn([]*model.Connector{c}, x, y)
		return
	}
}

func (s *Session) transient() interface{} {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1].transient
}

// HandleEvent dispatches one tcell event against the current mode,
// firing the mouse-click hooks around any button press. It returns
// false when the event requests the session to quit (Ctrl+C).
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		x, y := e.Position()
		fx, fy := float64(x), float64(y)
		btn := e.Buttons()

		if btn&tcell.Button1 != 0 {
			s.Hooks.Fire(hooks.MouseClickPre, hooks.Event{X: fx, Y: fy, Button: 1})
		}

		switch s.CurrentMode() {
		case Idle:
			if btn&tcell.Button1 != 0 {
				s.beginFromHitTest(fx, fy)
			}
		case DrawConn:
			if btn&tcell.Button1 != 0 {
				s.ExtendDrawConn(fx, fy)
			}
		case MoveConn:
			if btn != 0 {
				s.DragMoveConn(fx, fy)
			} else {
				s.FinishMoveConn()
			}
		case DragSeg:
			if btn != 0 {
				s.DragSegFrame(fx, fy)
			} else {
				s.FinishDragSeg()
			}
		case MoveObj:
			if btn != 0 {
				s.DragMoveObj(fx, fy)
			} else {
				s.FinishMoveObj()
			}
		}

		if btn&tcell.Button1 != 0 {
			s.Hooks.Fire(hooks.MouseClickPost, hooks.Event{X: fx, Y: fy, Button: 1})
		}
		if s.onRefresh != nil {
			s.onRefresh()
		}

	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape:
			switch s.CurrentMode() {
			case DrawConn:
				s.CancelDrawConn()
			case MoveConn:
				s.CancelMoveConn()
			case DragSeg:
				s.CancelDragSeg()
			case MoveObj:
				s.CancelMoveObj()
			}
		case tcell.KeyEnter:
			if s.CurrentMode() == DrawConn {
				s.FinishDrawConn()
			}
		case tcell.KeyCtrlC:
			return false
		}
	}
	return true
}
