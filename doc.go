// Package skeleton computes the straight skeleton of a simple polygon: the
// graph traced out by a wavefront that shrinks every edge inward at unit
// speed, recording an arc each time two parts of the wavefront collide.
//
// # Overview
//
// The package implements the classic Aichholzer/Aurenhammer wavefront
// algorithm over a set of active-vertex rings (LAVs):
//   - Skeletonize: the primary entry point, producing an unordered slice of Arc
//   - Option (WithTolerance, WithHoles, WithLogger, WithDebugLevel, WithTracer):
//     functional options tuning a single call without a mutable global
//   - Tracer: an optional visualization sink for callers that want to render
//     the wavefront as it collapses
//
// # Error Handling
//
// Skeletonize returns an error only when the input cannot be processed at
// all:
//   - ErrInvalidInput: a nil or empty polygon
//   - ErrDegeneratePolygon: fewer than 3 vertices survive duplicate/colinear
//     filtering
//   - ErrInvariantViolation: an event was popped referencing a vertex that
//     claims to be valid but has no owning LAV; this indicates a bug in the
//     package, not a property of the input, and is never expected in normal
//     operation
//
// Geometric infeasibility discovered mid-run - most commonly a split event
// whose opposite edge can no longer be located once earlier events have
// reshaped the LAV - is logged at warning level and the event is dropped.
// Skeletonize still returns whatever arcs it managed to collect rather than
// failing the call outright; an incomplete skeleton is distinguishable from
// a complete one only by the caller's own expectations about node count.
//
// # Input Validation
//
// polygon must be a simple, counter-clockwise closed contour; holes passed
// via WithHoles must be CW-oriented and strictly interior to polygon.
// Skeletonize filters consecutive duplicate points and colinear triples
// automatically but does not check simplicity or winding; behavior on
// self-intersecting or incorrectly wound input is undefined.
//
// # Coordinate System
//
// All coordinates are float64. Skeletonize makes no assumption about which
// way Y points; it only requires that polygon be wound consistently
// counter-clockwise in whatever convention the caller uses.
package skeleton
