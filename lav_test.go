package skeleton

import "testing"

func TestLavFromPolygonFiltersDuplicatesAndColinearPoints(t *testing.T) {
	poly := []Point{
		{0, 0},
		{0, 0},  // consecutive duplicate
		{50, 0}, // colinear: lies on (0,0)-(100,0), so it is dropped
		{100, 0},
		{100, 100},
		{0, 100},
		{0, 100}, // trailing duplicate of the closing point
	}
	l, err := lavFromPolygon(poly)
	if err != nil {
		t.Fatalf("lavFromPolygon: %v", err)
	}
	if l.length != 4 {
		t.Fatalf("length = %d, want 4 (dup and colinear point removed)", l.length)
	}

	got := map[Point]bool{}
	for _, v := range l.vertices() {
		got[v.point] = true
	}
	want := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("expected surviving vertex at %v, set=%v", p, got)
		}
	}
}

func TestLavFromPolygonRingLinksAreConsistent(t *testing.T) {
	poly := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	l, err := lavFromPolygon(poly)
	if err != nil {
		t.Fatalf("lavFromPolygon: %v", err)
	}
	for _, v := range l.vertices() {
		if v.prev.next != v || v.next.prev != v {
			t.Fatalf("ring inconsistent at %v: prev.next=%v next.prev=%v", v.point, v.prev.next.point, v.next.prev.point)
		}
		if v.lav != l {
			t.Fatalf("vertex %v does not point back at its lav", v.point)
		}
	}
}

func TestLavFromPolygonTooFewVertices(t *testing.T) {
	if _, err := lavFromPolygon([]Point{{0, 0}, {1, 0}}); err != ErrDegeneratePolygon {
		t.Fatalf("expected ErrDegeneratePolygon, got %v", err)
	}
	// All colinear: only the two end points survive filtering.
	if _, err := lavFromPolygon([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}); err != ErrDegeneratePolygon {
		t.Fatalf("expected ErrDegeneratePolygon for colinear input, got %v", err)
	}
}

func TestLavFromChainRecountsAndRebindsLav(t *testing.T) {
	poly := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	l, err := lavFromPolygon(poly)
	if err != nil {
		t.Fatalf("lavFromPolygon: %v", err)
	}
	head := l.head

	rebuilt := lavFromChain(head)
	if rebuilt.length != 4 {
		t.Fatalf("length = %d, want 4", rebuilt.length)
	}
	for _, v := range rebuilt.vertices() {
		if v.lav != rebuilt {
			t.Fatalf("vertex %v still points at old lav", v.point)
		}
	}
}

func TestLavUnify(t *testing.T) {
	poly := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	l, err := lavFromPolygon(poly)
	if err != nil {
		t.Fatalf("lavFromPolygon: %v", err)
	}
	va := l.head
	vb := va.next
	before := l.length

	replacement := l.unify(va, vb, Point{5, 5})

	if l.length != before-1 {
		t.Fatalf("length = %d, want %d", l.length, before-1)
	}
	if va.valid {
		t.Fatalf("va should be invalidated")
	}
	if vb.valid {
		t.Fatalf("vb should be invalidated")
	}
	if replacement.prev.next != replacement || replacement.next.prev != replacement {
		t.Fatalf("replacement not correctly spliced into ring")
	}
	if replacement.point != (Point{5, 5}) {
		t.Fatalf("replacement point = %v, want (5,5)", replacement.point)
	}
}
