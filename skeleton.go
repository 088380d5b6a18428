package skeleton

// Skeletonize computes the straight skeleton of a simple polygon: polygon
// must be an ordered sequence of points forming a simple, counter-clockwise
// closed contour with at least 3 vertices after duplicate/colinear-point
// removal. Holes (via WithHoles) must be CW-oriented and strictly interior
// to polygon.
//
// The returned Arc slice is unordered. Each internal skeleton node is the
// shared endpoint of three or more arcs; each polygon vertex is the sink of
// exactly one arc. Skeletonize does not verify that polygon is simple or
// correctly wound; behavior on malformed input is undefined (see package
// doc).
//
// Geometric infeasibility discovered mid-run (an unresolvable split event)
// is logged and the event dropped; Skeletonize still returns whatever arcs
// it collected rather than failing the whole call. A true invariant
// violation - an event whose participant claims to be valid but has no
// owning LAV - is checked after every event the driver loop processes and
// returns ErrInvariantViolation as soon as it's observed, since it signals
// a bug in this package rather than a property of the input.
func Skeletonize(polygon []Point, opts ...Option) ([]Arc, error) {
	if len(polygon) == 0 {
		return nil, ErrInvalidInput
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := newSLAV(polygon, &cfg)
	if err != nil {
		return nil, err
	}

	for _, l := range s.lavs {
		for _, v := range l.vertices() {
			cfg.Tracer.Line(v.edgeLeft.P, v.edgeLeft.End())
		}
	}

	q := newEventQueue()
	q.putAll(s.seedEvents())
	if s.violation != nil {
		return nil, s.violation
	}

	var arcs []Arc
	for !q.empty() {
		e := q.get()

		var resolvedArcs []Arc
		var newEvents []event

		switch ev := e.(type) {
		case *edgeEvent:
			if !ev.va.valid || !ev.vb.valid {
				continue
			}
			resolvedArcs, newEvents = s.handleEdgeEvent(ev)

		case *splitEvent:
			if !ev.v.valid {
				continue
			}
			resolvedArcs, newEvents = s.handleSplitEvent(ev)

		case *vertexEvent:
			var valid []*vertex
			for _, v := range ev.vertices {
				if v.valid {
					valid = append(valid, v)
				}
			}
			if len(valid) >= 2 {
				resolvedArcs, newEvents = s.handleVertexEvent(&vertexEvent{
					distance: ev.distance,
					point:    ev.point,
					vertices: valid,
					fallback: ev.fallback,
				})
			} else if ev.fallback.va.valid && ev.fallback.vb.valid {
				resolvedArcs, newEvents = s.handleEdgeEvent(ev.fallback)
			} else {
				continue
			}
		}

		if s.violation != nil {
			return arcs, s.violation
		}

		q.putAll(newEvents)
		arcs = append(arcs, resolvedArcs...)
	}

	return arcs, nil
}
