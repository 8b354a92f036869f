// Package router implements the external orthogonal segment router
// named router.generateSegments in the connector engine's contract.
// The engine only depends on the Router interface; SimpleRouter is one
// concrete implementation, routing center-to-center through a single
// orthogonal bend.
package router

import (
	"gridwire/matrix"
	"gridwire/model"
)

// JumpMode controls whether and how the router marks a point where two
// wires cross without connecting (a "jump").
type JumpMode int

const (
	// JumpNone produces no jump-cross markers.
	JumpNone JumpMode = 0
	// JumpDefault produces jump-cross segments with the default visual.
	JumpDefault JumpMode = 1
	// JumpPlain produces jump-cross segments with no special attribute.
	JumpPlain JumpMode = 2
)

// Router routes a new connector path from (sx,sy) towards (ex,ey),
// registering every segment it produces with mtx before returning.
// It must get as close to (ex,ey) as the current occupancy allows;
// a router that cannot reach the target at all still returns whatever
// partial route it found rather than erroring, so that reconciliation
// can run over a partially-routed connector.
type Router interface {
	GenerateSegments(mtx *matrix.RoutingMatrix, sx, sy, ex, ey float64, routerFn string, jumpSeg JumpMode) (segs []*model.Segment, finX, finY float64)
}
