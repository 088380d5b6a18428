package skeleton

// ==============================================================================
// Output types
// ==============================================================================

// Arc is one edge of the straight skeleton: source is the point at which the
// arc's governing event resolved, sink is either the wavefront vertex's
// pre-event position or, for a peak finalization, each collapsing vertex's
// position.
type Arc struct {
	Source Point
	Sink   Point
}

// ==============================================================================
// Original polygon edges
// ==============================================================================

// originalEdge records one edge of the input polygon (or a hole) together
// with the bisectors at its two endpoints, frozen at time zero. It never
// mutates after SLAV construction and is consulted only to evaluate split
// candidates against the polygon as it was originally drawn.
type originalEdge struct {
	edge          LineSegment
	bisectorLeft  Ray
	bisectorRight Ray
}

// ==============================================================================
// Event variants
//
// Events form a closed, tagged union: edgeEvent, splitEvent and vertexEvent
// are the only implementers of the event interface, dispatched on by the
// driver loop and the SLAV handlers. Events are ephemeral - minted by
// vertex.nextEvent, held only in the event queue, and never retained once
// popped and handled.
// ==============================================================================

// event is implemented by edgeEvent, splitEvent and vertexEvent.
type event interface {
	distanceOf() float64
}

// edgeEvent fires when two adjacent bisectors meet, collapsing the edge
// shared by va and vb. Invariant: vb == va.next at the time the event was
// minted (it may no longer hold by the time the event is popped, which is
// exactly what the valid-flag check at pop time is for).
type edgeEvent struct {
	distance float64
	point    Point
	va, vb   *vertex
}

func (e *edgeEvent) distanceOf() float64 { return e.distance }

// splitEvent fires when a reflex vertex's bisector crashes into a
// non-adjacent polygon edge, splitting the LAV it belongs to.
type splitEvent struct {
	distance     float64
	point        Point
	v            *vertex
	oppositeEdge LineSegment
}

func (e *splitEvent) distanceOf() float64 { return e.distance }

// vertexEvent fires when two or more reflex vertices arrive at the same
// point simultaneously. fallback is the plain edgeEvent this was promoted
// from; if fewer than two of vertices are still valid by the time this event
// is popped, the driver replays fallback instead.
type vertexEvent struct {
	distance float64
	point    Point
	vertices []*vertex
	fallback *edgeEvent
}

func (e *vertexEvent) distanceOf() float64 { return e.distance }
