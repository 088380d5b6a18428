package skeleton

import "math"

// vertex is a wavefront vertex: a node in the circular doubly-linked LAV
// ring. It carries the two polygon edges whose angle bisector it rides, its
// own bisector ray, its reflex/convex character, and the invalidation state
// events check at pop time.
//
// Grounded on the teacher's Vertex (port/vertex.go in the original Clipper2
// port): a Pt plus Next/Prev ring pointers and a chain-validity checker. The
// boolean-clipping-specific fields (local-minimum/maximum flags, open-path
// bookkeeping) have no analogue here and are replaced by the bisector/reflex
// state spec.md §3 calls for; the ring-link shape is carried over directly.
// There is no chain-validity checker in this package; ring consistency is
// checked by the tests in lav_test.go.
type vertex struct {
	point               Point
	edgeLeft, edgeRight LineSegment
	bisector            Ray
	reflex              bool
	prev, next          *vertex
	lav                 *lav
	valid               bool
}

// newVertex constructs a vertex from its two polygon edges, deriving its
// creator vectors (and hence its reflex character and bisector direction)
// from the edges themselves: cL = -normalize(edgeLeft.V), cR =
// normalize(edgeRight.V).
func newVertex(point Point, edgeLeft, edgeRight LineSegment) *vertex {
	cL := Normalize(edgeLeft.V).Mul(-1)
	cR := Normalize(edgeRight.V)
	return newVertexWithCreators(point, edgeLeft, edgeRight, cL, cR)
}

// newVertexWithCreators constructs a vertex with explicit creator vectors,
// used by unify where the two vanishing bisectors - not contiguous polygon
// edges - determine the replacement's reflex character.
func newVertexWithCreators(point Point, edgeLeft, edgeRight LineSegment, cL, cR Point) *vertex {
	// cL is already -normalize(edgeLeft.V): the standard convexity test
	// cross(incoming, outgoing) > 0 for a CCW convex vertex becomes
	// cross(cL, cR) < 0 once the incoming side is negated. So a reflex
	// vertex (cross(incoming, outgoing) < 0) surfaces here as cross(cL,
	// cR) > 0, not < 0 as a naive reading of the creator-vector formula
	// suggests. See DESIGN.md for the worked example this is grounded on.
	reflex := Cross(cL, cR) > 0
	dir := cL.Add(cR)
	if reflex {
		dir = dir.Mul(-1)
	}
	return &vertex{
		point:     point,
		edgeLeft:  edgeLeft,
		edgeRight: edgeRight,
		reflex:    reflex,
		bisector:  Ray{P: point, V: dir},
		valid:     true,
	}
}

// invalidate severs the vertex from its LAV and marks it dead. Idempotent.
func (v *vertex) invalidate() {
	v.valid = false
	v.lav = nil
}

// hasEdge reports whether e is this vertex's edgeLeft: same direction
// (normalized) and same anchor point. Used during split handling to locate
// the LAV vertex incident to the opposite edge.
func (v *vertex) hasEdge(e LineSegment) bool {
	return Normalize(e.V) == Normalize(v.edgeLeft.V) && e.P == v.edgeLeft.P
}

// nextEvent computes the earliest event this vertex participates in: the
// best split candidate (if reflex) against every original edge, versus the
// two edge-event candidates against its ring neighbors, promoted to a
// vertexEvent if simultaneous reflex arrivals are detected. Returns nil with
// no error if the vertex has no viable event (fully degenerate neighborhood).
// s is consulted for its cfg/edges and is the sink for any invariant
// violation detected while promoting to a vertexEvent (see s.violation).
func (v *vertex) nextEvent(s *slav) event {
	var best event

	consider := func(e event) {
		if e == nil {
			return
		}
		if best == nil || e.distanceOf() < best.distanceOf() {
			best = e
		}
	}

	if v.reflex {
		for _, oe := range s.edges {
			if v.hasEdge(oe.edge) || edgeEquals(oe.edge, v.edgeRight) {
				continue
			}
			if se := v.splitCandidate(s.cfg, oe); se != nil {
				consider(se)
			}
		}
	}

	if v.prev != nil {
		if iPrev, ok := IntersectRayRay(v.bisector, v.prev.bisector); ok {
			d := DistanceToLine(LineFromSegment(v.edgeLeft), iPrev)
			consider(&edgeEvent{distance: d, point: iPrev, va: v.prev, vb: v})
		}
	}
	if v.next != nil {
		if iNext, ok := IntersectRayRay(v.bisector, v.next.bisector); ok {
			d := DistanceToLine(LineFromSegment(v.edgeRight), iNext)
			consider(&edgeEvent{distance: d, point: iNext, va: v, vb: v.next})
		}
	}

	if ee, ok := best.(*edgeEvent); ok && (ee.va.reflex || ee.vb.reflex) {
		if promoted := v.promoteVertexEvent(s, ee); promoted != nil {
			return promoted
		}
	}

	return best
}

// splitCandidate builds the split-event candidate for this (necessarily
// reflex) vertex against one original edge, per spec.md §4.2.1, or returns
// nil (logging the discard reason at debug level) if any step is
// geometrically degenerate or the candidate fails the eligibility check.
func (v *vertex) splitCandidate(cfg *Config, oe *originalEdge) *splitEvent {
	log := cfg.Logger

	selfEdge := v.edgeLeft
	if math.Abs(Dot(Normalize(v.edgeRight.V), Normalize(oe.edge.V))) <
		math.Abs(Dot(Normalize(v.edgeLeft.V), Normalize(oe.edge.V))) {
		selfEdge = v.edgeRight
	}

	i, ok := IntersectLineLine(LineFromSegment(selfEdge), LineFromSegment(oe.edge))
	if !ok {
		log.Debugf("split candidate discarded: self-edge parallel to candidate edge at %v", oe.edge)
		return nil
	}
	if ApproxEqualPoints(i, v.point, cfg.Tolerance) {
		log.Debugf("split candidate discarded: intersection coincides with vertex %v", v.point)
		return nil
	}

	lin := Normalize(v.point.Sub(i))
	ed := Normalize(oe.edge.V)
	if Dot(lin, ed) < 0 {
		ed = ed.Mul(-1)
	}

	dir := lin.Add(ed)
	if dir.Length() == 0 {
		log.Debugf("split candidate discarded: zero-length bisector direction")
		return nil
	}
	bLine := Line{P: i, V: dir}

	b, ok := IntersectLineRay(bLine, v.bisector)
	if !ok {
		log.Debugf("split candidate discarded: bisector line parallel to self bisector")
		return nil
	}

	if !splitEligible(oe, b) {
		log.Debugf("split candidate discarded: point %v outside candidate edge wedge", b)
		return nil
	}

	d := DistanceToLine(LineFromSegment(oe.edge), b)
	log.Debugf("split candidate accepted at %v, distance %.6f, against edge %v", b, d, oe.edge)
	return &splitEvent{distance: d, point: b, v: v, oppositeEdge: oe.edge}
}

// splitEligible implements the three-way wedge/inward-side test of
// spec.md §4.2.1.f: b must lie inside the wedge formed by the candidate
// edge's two endpoint bisectors, and on the inward side of the edge itself.
// On a CCW contour the interior lies to the left of every edge, so these are
// left < 0, right > 0 and inward > 0 - the same orientation under which
// newVertexWithCreators flags a reflex vertex by cross(cL, cR) > 0.
func splitEligible(oe *originalEdge, b Point) bool {
	left := Cross(Normalize(oe.bisectorLeft.V), Normalize(b.Sub(oe.bisectorLeft.P)))
	right := Cross(Normalize(oe.bisectorRight.V), Normalize(b.Sub(oe.bisectorRight.P)))
	inward := Cross(Normalize(oe.edge.V), Normalize(b.Sub(oe.edge.P)))
	return left < 0 && right > 0 && inward > 0
}

// promoteVertexEvent implements spec.md §4.2.4: walks every other vertex in
// this vertex's LAV looking for reflex vertices whose bisector intersects
// this vertex's bisector at the same point and distance as the chosen edge
// event. If at least two reflex vertices (including va/vb themselves)
// coincide, the edge event is promoted to a vertexEvent carrying the
// original as its fallback.
//
// v.lav == nil here means nextEvent was called on a vertex the driver still
// treats as live but that has already been severed from every LAV - the
// same class-3 condition handleSplitEvent checks for (see DESIGN.md's
// invariant-violation entry). It is recorded on s.violation rather than
// dropped silently, since the caller (nextEvent) has no error return of its
// own to surface it through.
func (v *vertex) promoteVertexEvent(s *slav, ee *edgeEvent) *vertexEvent {
	if v.lav == nil {
		s.violation = ErrInvariantViolation
		return nil
	}

	var coincident []*vertex
	if ee.va.reflex {
		coincident = append(coincident, ee.va)
	}
	if ee.vb.reflex {
		coincident = append(coincident, ee.vb)
	}

	for _, w := range v.lav.vertices() {
		if w == ee.va || w == ee.vb || !w.reflex {
			continue
		}
		ib, ok := IntersectRayRay(v.bisector, w.bisector)
		if !ok {
			continue
		}
		d := DistanceToLine(LineFromSegment(w.edgeLeft), ib)
		if ApproxEqualPoints(ib, ee.point, s.cfg.Tolerance) && ApproxEqual(d, ee.distance, s.cfg.Tolerance) {
			coincident = append(coincident, w)
		}
	}

	if len(coincident) < 2 {
		return nil
	}
	return &vertexEvent{distance: ee.distance, point: ee.point, vertices: coincident, fallback: ee}
}

// edgeEquals reports whether two LineSegments are the same edge (same
// anchor, same direction). Used only to recognize edge_right in the
// split-candidate exclusion list without requiring a second hasEdge
// receiver.
func edgeEquals(a, b LineSegment) bool {
	return a.P == b.P && a.V == b.V
}
