// Package interactive drives the connector geometry engine from a
// tcell event source: a small typed state machine over drawing,
// moving and dragging operations, replacing the source's
// callback-install/restore idiom with explicit transitions.
package interactive

import (
	"gridwire/hooks"
	"gridwire/internal/debuglog"
	"gridwire/matrix"
	"gridwire/model"
	"gridwire/router"

	"github.com/gdamore/tcell/v2"
)

// Mode names the active interactive operation.
type Mode int

const (
	Idle Mode = iota
	DrawConn
	MoveConn
	DragSeg
	MoveObj
)

// String returns the mode name for status-line display.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case DrawConn:
		return "DRAW"
	case MoveConn:
		return "MOVE-CONN"
	case DragSeg:
		return "DRAG-SEG"
	case MoveObj:
		return "MOVE-OBJ"
	default:
		return "UNKNOWN"
	}
}

// op is one entry of the operation stack: a nested begin/end pair
// restores the z-order backup it captured at begin when it is
// cancelled.
type op struct {
	mode       Mode
	zOrder     []*model.OrderEntry
	finish     func(apply bool)
	transient  interface{}
}

// Session owns the canvas model, the routing matrix, the router and
// the op stack, and drives them from tcell events. Only one
// interactive operation is active at a time.
type Session struct {
	Drawn  *model.Drawn
	Matrix *matrix.RoutingMatrix
	Router router.Router
	Hooks  *hooks.Registry

	RouterFn    string
	JumpSegDrag router.JumpMode
	JumpSegFin  router.JumpMode

	screen tcell.Screen
	stack  []*op

	onRefresh func()
}

// NewSession wires a session around an already-initialized tcell
// screen.
func NewSession(screen tcell.Screen, drawn *model.Drawn, mtx *matrix.RoutingMatrix, r router.Router) *Session {
	return &Session{
		Drawn:    drawn,
		Matrix:   mtx,
		Router:   r,
		Hooks:    hooks.NewRegistry(),
		RouterFn: "simple",
		screen:   screen,
	}
}

// OnRefresh installs the callback fired at the end of every operation.
func (s *Session) OnRefresh(fn func()) { s.onRefresh = fn }

// CurrentMode returns the mode of the innermost active operation, or
// Idle if the stack is empty.
func (s *Session) CurrentMode() Mode {
	if len(s.stack) == 0 {
		return Idle
	}
	return s.stack[len(s.stack)-1].mode
}

// begin pushes a new operation, snapshotting the z-order array so end
// can restore it on cancellation.
func (s *Session) begin(mode Mode, finish func(apply bool), transient interface{}) {
	backup := append([]*model.OrderEntry{}, s.Drawn.Order...)
	s.stack = append(s.stack, &op{mode: mode, zOrder: backup, finish: finish, transient: transient})
	debuglog.Printf("begin %s (stack depth %d)", mode, len(s.stack))
}

// end pops the innermost operation and runs its finish callback: apply
// true commits the pending edit and calls Assimilate; apply false
// cancels by restoring the z-order backup taken at begin. Either way
// it refreshes the display.
func (s *Session) end(apply bool) {
	if len(s.stack) == 0 {
		return
	}
	n := len(s.stack) - 1
	o := s.stack[n]
	s.stack = s.stack[:n]
	debuglog.Printf("end %s apply=%v", o.mode, apply)

	if !apply {
		s.Drawn.Order = o.zOrder
		s.Drawn.FixOrder()
	}
	if o.finish != nil {
		o.finish(apply)
	}
	if s.onRefresh != nil {
		s.onRefresh()
	}
}
