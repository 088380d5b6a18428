package skeleton

// lav is a single List of Active Vertices: one circular doubly-linked ring
// representing one loop of the current wavefront. Length is tracked
// alongside the head pointer so callers can tell a collapsed ring (length
// <= 2, see finalizeOrKeep) from one that stays active without walking it.
type lav struct {
	head   *vertex
	length int
}

// lavFromPolygon builds the initial LAV from a polygon contour, skipping
// consecutive duplicate points and colinear triples (a vertex whose
// incoming and outgoing edge directions already agree contributes nothing
// to the skeleton). Returns ErrDegeneratePolygon if fewer than 3 vertices
// survive filtering.
func lavFromPolygon(points []Point) (*lav, error) {
	deduped := make([]Point, 0, len(points))
	for i, p := range points {
		if i == 0 || p != deduped[len(deduped)-1] {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) > 1 && deduped[len(deduped)-1] == deduped[0] {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return nil, ErrDegeneratePolygon
	}

	n := len(deduped)
	filtered := make([]Point, 0, n)
	for i, p := range deduped {
		prev := deduped[(i-1+n)%n]
		next := deduped[(i+1)%n]
		inDir := Normalize(p.Sub(prev))
		outDir := Normalize(next.Sub(p))
		if inDir == outDir {
			continue // colinear: p doesn't change direction, drop it
		}
		filtered = append(filtered, p)
	}
	if len(filtered) < 3 {
		return nil, ErrDegeneratePolygon
	}

	l := &lav{}
	m := len(filtered)
	verts := make([]*vertex, m)
	for i, p := range filtered {
		prev := filtered[(i-1+m)%m]
		next := filtered[(i+1)%m]
		verts[i] = newVertex(p, NewLineSegment(prev, p), NewLineSegment(p, next))
	}
	for i, v := range verts {
		v.prev = verts[(i-1+m)%m]
		v.next = verts[(i+1)%m]
		v.lav = l
	}
	l.head = verts[0]
	l.length = m
	return l, nil
}

// lavFromChain adopts an already-linked ring of vertices (produced by split
// or vertex-event handling), resets each vertex's lav back-pointer to the
// new LAV, and recounts its length.
func lavFromChain(head *vertex) *lav {
	l := &lav{head: head}
	count := 0
	for v := head; ; v = v.next {
		v.lav = l
		count++
		if v.next == head {
			break
		}
	}
	l.length = count
	return l
}

// vertices returns a snapshot slice of every vertex currently in the ring,
// starting at head. Safe to call mid-event-handling since nothing in this
// package mutates a ring while iterating it.
func (l *lav) vertices() []*vertex {
	if l.head == nil {
		return nil
	}
	out := make([]*vertex, 0, l.length)
	v := l.head
	for {
		out = append(out, v)
		v = v.next
		if v == l.head {
			break
		}
	}
	return out
}

// unify replaces the adjacent pair (va, vb == va.next) with a single
// replacement vertex anchored at p, per spec.md §4.3. The replacement's
// reflex character comes from the vanishing vertices' bisector directions
// (vb.bisector.V, va.bisector.V - note the swap), not from edgeLeft/edgeRight
// directly, since va/vb are no longer contiguous polygon edges once
// unified.
func (l *lav) unify(va, vb *vertex, p Point) *vertex {
	replacement := newVertexWithCreators(p, va.edgeLeft, vb.edgeRight, vb.bisector.V, va.bisector.V)
	replacement.lav = l

	replacement.prev = va.prev
	replacement.next = vb.next
	va.prev.next = replacement
	vb.next.prev = replacement

	if l.head == va || l.head == vb {
		l.head = replacement
	}
	l.length--

	va.invalidate()
	vb.invalidate()

	return replacement
}
