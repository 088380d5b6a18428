package skeleton

// slav is the Set of LAVs: every currently active wavefront loop, plus the
// immutable original polygon edge list (with per-edge bisectors) used to
// evaluate split candidates. One slav is constructed per Skeletonize call
// and mutates in place as edge/split/vertex events resolve.
type slav struct {
	lavs  []*lav
	edges []*originalEdge
	cfg   *Config

	// violation is set the moment a handler observes the class-3 condition
	// spec.md §7 calls fatal - a vertex the driver still considers live but
	// that has already lost its owning LAV - and is checked by the driver
	// loop in Skeletonize after every event it processes. Once set it is
	// never cleared; the run is done.
	violation error
}

// newSLAV builds the initial SLAV: one LAV for the outer polygon, one more
// per hole in cfg.Holes (each contributing its own originalEdge entries),
// per spec.md §6's hole extension.
func newSLAV(polygon []Point, cfg *Config) (*slav, error) {
	s := &slav{cfg: cfg}

	outer, err := lavFromPolygon(polygon)
	if err != nil {
		return nil, err
	}
	s.lavs = append(s.lavs, outer)
	s.edges = append(s.edges, edgesOf(outer)...)

	for _, hole := range cfg.Holes {
		hl, err := lavFromPolygon(hole)
		if err != nil {
			continue // a degenerate hole is simply skipped, not fatal to the outer skeleton
		}
		s.lavs = append(s.lavs, hl)
		s.edges = append(s.edges, edgesOf(hl)...)
	}

	return s, nil
}

// edgesOf builds the originalEdge list for one LAV: for every vertex v, the
// edge from v.prev to v together with the bisectors at its two endpoints,
// frozen at construction time.
func edgesOf(l *lav) []*originalEdge {
	out := make([]*originalEdge, 0, l.length)
	for _, v := range l.vertices() {
		out = append(out, &originalEdge{
			edge:          NewLineSegment(v.prev.point, v.point),
			bisectorLeft:  v.prev.bisector,
			bisectorRight: v.bisector,
		})
	}
	return out
}

// seedEvents computes the initial next-event candidate for every vertex in
// every initial LAV.
func (s *slav) seedEvents() []event {
	var events []event
	for _, l := range s.lavs {
		for _, v := range l.vertices() {
			events = append(events, v.nextEvent(s))
		}
	}
	return events
}

// removeLav drops l from the active set.
func (s *slav) removeLav(l *lav) {
	for i, x := range s.lavs {
		if x == l {
			s.lavs = append(s.lavs[:i], s.lavs[i+1:]...)
			return
		}
	}
}

// handleEdgeEvent implements spec.md §4.4's edge-event handler: a 3-vertex
// ring collapsing entirely (a peak event) versus the ordinary unify.
func (s *slav) handleEdgeEvent(ee *edgeEvent) ([]Arc, []event) {
	log := s.cfg.Logger
	va, vb := ee.va, ee.vb

	if va.prev == vb.next {
		log.Infof("peak event at %v, distance=%.6f", ee.point, ee.distance)
		l := va.lav
		var arcs []Arc
		for _, v := range l.vertices() {
			arcs = append(arcs, Arc{Source: ee.point, Sink: v.point})
			v.invalidate()
		}
		s.removeLav(l)
		s.cfg.Tracer.Point(ee.point)
		s.cfg.Tracer.Show()
		return arcs, nil
	}

	log.Infof("edge event at %v, distance=%.6f, va=%v vb=%v", ee.point, ee.distance, va.point, vb.point)
	l := va.lav
	replacement := l.unify(va, vb, ee.point)
	arcs := []Arc{
		{Source: ee.point, Sink: va.point},
		{Source: ee.point, Sink: vb.point},
	}
	s.cfg.Tracer.Line(arcs[0].Source, arcs[0].Sink)
	s.cfg.Tracer.Line(arcs[1].Source, arcs[1].Sink)
	s.cfg.Tracer.Show()

	var events []event
	if e := replacement.nextEvent(s); e != nil {
		events = append(events, e)
	}
	return arcs, events
}

// handleSplitEvent implements spec.md §4.4's split-event handler: locate the
// LAV vertex incident to the opposite edge, split the ring in two around it,
// and finalize or re-enqueue each surviving piece.
//
// v.lav == nil is the class-3 condition spec.md §7 calls fatal: the driver
// only reaches this handler for events whose v.valid was true at pop time,
// and a valid vertex always carries a non-nil lav (see unify in lav.go and
// invalidate in vertex.go, which flip both fields together) - so seeing one without the
// other here means the bookkeeping elsewhere in this package broke an
// invariant, not that the input was malformed. It is recorded on
// s.violation rather than returned directly, matching the class-1
// infeasibility drops below structurally, but the driver treats it as
// fatal once it notices.
func (s *slav) handleSplitEvent(se *splitEvent) ([]Arc, []event) {
	log := s.cfg.Logger
	v := se.v
	if v.lav == nil {
		s.violation = ErrInvariantViolation
		return nil, nil
	}

	var x *vertex
	for _, cand := range v.lav.vertices() {
		if cand.hasEdge(se.oppositeEdge) {
			x = cand
			break
		}
	}
	if x == nil {
		log.Warnf("split event at %v dropped: opposite edge %v not found in LAV", se.point, se.oppositeEdge)
		return nil, nil
	}
	y := x.prev

	log.Infof("split event at %v, distance=%.6f, v=%v", se.point, se.distance, v.point)

	l := v.lav
	s.removeLav(l)

	v1 := newVertex(se.point, v.edgeLeft, se.oppositeEdge)
	v2 := newVertex(se.point, se.oppositeEdge, v.edgeRight)

	v1.prev = v.prev
	v1.next = x
	v.prev.next = v1
	x.prev = v1

	v2.prev = y
	v2.next = v.next
	v.next.prev = v2
	y.next = v2

	v.invalidate()

	arcs := []Arc{{Source: se.point, Sink: v.point}}
	s.cfg.Tracer.Line(arcs[0].Source, arcs[0].Sink)
	s.cfg.Tracer.Show()

	var events []event
	for _, head := range []*vertex{v1, v2} {
		ringArcs, ringEvents := s.finalizeOrKeep(head)
		arcs = append(arcs, ringArcs...)
		events = append(events, ringEvents...)
	}
	return arcs, events
}

// finalizeOrKeep closes the chain starting at head into a lav. A ring of
// length <= 2 has collapsed entirely (both its vertices finalize to a single
// arc and are invalidated); otherwise it is kept as a new active LAV and its
// head's next event is computed.
func (s *slav) finalizeOrKeep(head *vertex) ([]Arc, []event) {
	ring := lavFromChain(head)
	if ring.length <= 2 {
		var arcs []Arc
		if ring.length == 2 {
			arcs = append(arcs, Arc{Source: ring.head.point, Sink: ring.head.next.point})
		}
		for _, v := range ring.vertices() {
			v.invalidate()
		}
		return arcs, nil
	}

	s.lavs = append(s.lavs, ring)
	var events []event
	if e := ring.head.nextEvent(s); e != nil {
		events = append(events, e)
	}
	return nil, events
}

// handleVertexEvent implements spec.md §4.4's vertex-event handler: two or
// more reflex vertices arriving at the same point simultaneously. If fewer
// than two of the event's participants are still valid, the fallback edge
// event is replayed instead (spec.md §4.6).
//
// The participants are processed as a chain of pairwise splits: each
// consecutive pair (a, b) excises both a and b from the ring and bridges the
// two arcs this creates - the "inner" arc (a.next..b.prev) closes
// immediately into its own LAV (or collapses to an arc if too short), while
// the "outer" arc (a.prev..b.next) is kept open, carried forward as the "a"
// for the next pair, since it is the one that may still contain further
// colliding participants. This resolves an Open Question spec.md §9 leaves
// to the implementer; see DESIGN.md.
func (s *slav) handleVertexEvent(ve *vertexEvent) ([]Arc, []event) {
	log := s.cfg.Logger

	valid := make([]*vertex, 0, len(ve.vertices))
	for _, v := range ve.vertices {
		if v.valid {
			valid = append(valid, v)
		}
	}
	if len(valid) < 2 {
		log.Infof("vertex event at %v demoted to fallback edge event: only %d participant(s) still valid", ve.point, len(valid))
		return s.handleEdgeEvent(ve.fallback)
	}

	log.Infof("vertex event at %v, distance=%.6f, %d participants", ve.point, ve.distance, len(valid))

	var arcs []Arc
	var events []event

	l := valid[0].lav
	if l != nil {
		s.removeLav(l)
	}

	carry := valid[0]
	for i := 1; i < len(valid); i++ {
		a, b := carry, valid[i]
		if a.prev == nil || a.next == nil || b.prev == nil || b.next == nil {
			log.Warnf("vertex event at %v dropped a degenerate pair, ring already disturbed", ve.point)
			continue
		}

		aPrev, aNext := a.prev, a.next
		bPrev, bNext := b.prev, b.next

		outer := newVertex(ve.point, a.edgeLeft, b.edgeRight)
		outer.prev = aPrev
		outer.next = bNext
		aPrev.next = outer
		bNext.prev = outer

		inner := newVertex(ve.point, b.edgeRight, a.edgeLeft)
		inner.prev = bPrev
		inner.next = aNext
		bPrev.next = inner
		aNext.prev = inner

		innerArcs, innerEvents := s.finalizeOrKeep(inner)
		arcs = append(arcs, innerArcs...)
		events = append(events, innerEvents...)

		carry = outer
	}

	outerArcs, outerEvents := s.finalizeOrKeep(carry)
	arcs = append(arcs, outerArcs...)
	events = append(events, outerEvents...)

	for _, v := range valid {
		arcs = append(arcs, Arc{Source: ve.point, Sink: v.point})
		s.cfg.Tracer.Line(ve.point, v.point)
		v.invalidate()
	}
	s.cfg.Tracer.Show()

	return arcs, events
}
