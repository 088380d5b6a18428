package skeleton

import (
	"bytes"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"testing"

	"github.com/go-straightskel/skeleton/skellog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTol = 1e-3

// assertEverySinkIsUnique checks the spec.md §8 invariant: every vertex of
// polygon is the sink of exactly one arc.
func assertEverySinkIsUnique(t *testing.T, polygon []Point, arcs []Arc) {
	t.Helper()
	for _, v := range polygon {
		count := 0
		for _, a := range arcs {
			if ApproxEqualPoints(a.Sink, v, testTol) {
				count++
			}
		}
		assert.Equalf(t, 1, count, "vertex %v should be the sink of exactly one arc, found %d", v, count)
	}
}

// assertArcCountBounded checks spec.md §8's "O(n + r*n)" bound loosely: the
// arc count must not run away to something absurd relative to input size.
func assertArcCountBounded(t *testing.T, n int, arcs []Arc) {
	t.Helper()
	if len(arcs) > n*(n+2) {
		t.Fatalf("arc count %d wildly exceeds O(n + r*n) bound for n=%d", len(arcs), n)
	}
}

func findArcTo(t *testing.T, arcs []Arc, sink Point) Arc {
	t.Helper()
	for _, a := range arcs {
		if ApproxEqualPoints(a.Sink, sink, testTol) {
			return a
		}
	}
	t.Fatalf("no arc found with sink %v", sink)
	return Arc{}
}

func TestSkeletonizeSquare(t *testing.T) {
	square := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	arcs, err := Skeletonize(square)
	require.NoError(t, err)
	require.NotEmpty(t, arcs)

	center := Point{50, 50}
	for _, v := range square {
		arc := findArcTo(t, arcs, v)
		assert.Truef(t, ApproxEqualPoints(arc.Source, center, testTol),
			"corner %v should connect to the center (50,50), got source %v", v, arc.Source)
	}
}

func TestSkeletonizeRectangle(t *testing.T) {
	rect := []Point{{40, 40}, {520, 40}, {520, 310}, {40, 310}}
	arcs, err := Skeletonize(rect)
	require.NoError(t, err)
	require.NotEmpty(t, arcs)

	left := Point{175, 175}
	right := Point{385, 175}

	// Each corner's arc must terminate at whichever ridge node is nearest.
	nearNode := map[Point]Point{
		{40, 40}:   left,
		{40, 310}:  left,
		{520, 40}:  right,
		{520, 310}: right,
	}
	for corner, node := range nearNode {
		arc := findArcTo(t, arcs, corner)
		assert.Truef(t, ApproxEqualPoints(arc.Source, node, testTol),
			"corner %v should connect to ridge node %v, got %v", corner, node, arc.Source)
	}

	// The two ridge nodes must themselves be joined by a ridge arc.
	foundRidge := false
	for _, a := range arcs {
		if (ApproxEqualPoints(a.Source, left, testTol) && ApproxEqualPoints(a.Sink, right, testTol)) ||
			(ApproxEqualPoints(a.Source, right, testTol) && ApproxEqualPoints(a.Sink, left, testTol)) {
			foundRidge = true
		}
	}
	assert.Truef(t, foundRidge, "expected a ridge arc between %v and %v, arcs=%v", left, right, arcs)
}

func TestSkeletonizeTriangleIsExactlyOnePeak(t *testing.T) {
	// Scalene triangle; AB lies on the X axis so the incenter's Y coordinate
	// equals the in-radius directly.
	a := Point{0, 0}
	b := Point{100, 0}
	c := Point{30, 80}
	arcs, err := Skeletonize([]Point{a, b, c})
	require.NoError(t, err)
	require.Len(t, arcs, 3, "a triangle must resolve in exactly one peak event producing three arcs")

	sideA := Distance(b, c)
	sideB := Distance(a, c)
	sideC := Distance(a, b)
	perim := sideA + sideB + sideC
	incenter := Point{
		X: (sideA*a.X + sideB*b.X + sideC*c.X) / perim,
		Y: (sideA*a.Y + sideB*b.Y + sideC*c.Y) / perim,
	}

	for _, v := range []Point{a, b, c} {
		arc := findArcTo(t, arcs, v)
		assert.Truef(t, ApproxEqualPoints(arc.Source, incenter, testTol),
			"vertex %v should connect to the incenter %v, got %v", v, incenter, arc.Source)
	}
}

func TestSkeletonizeIrregularHexagonSinksAreUnique(t *testing.T) {
	// Same hexagon as spec.md's scenario, wound CCW (the source lists it
	// clockwise under a standard y-up axis; Skeletonize requires CCW).
	// (90,70) is a reflex vertex, so split candidates are evaluated for it.
	hexagon := []Point{{160, 20}, {178, 93}, {160, 140}, {90, 70}, {30, 120}, {30, 20}}
	arcs, err := Skeletonize(hexagon)
	require.NoError(t, err)
	assertEverySinkIsUnique(t, hexagon, arcs)
	assertArcCountBounded(t, len(hexagon), arcs)
}

func TestSkeletonizeZigzagProducesSplitEvents(t *testing.T) {
	// Same zigzag as spec.md's scenario, wound CCW (see hexagon test above
	// for why the source order needs reversing).
	zigzag := []Point{
		{640, 60}, {580, 310}, {500, 180}, {420, 310}, {340, 150},
		{260, 310}, {180, 180}, {100, 310}, {40, 60},
	}
	var trace bytes.Buffer
	arcs, err := Skeletonize(zigzag, WithLogger(skellog.New(slog.LevelInfo, &trace)))
	require.NoError(t, err)
	assertEverySinkIsUnique(t, zigzag, arcs)
	assertArcCountBounded(t, len(zigzag), arcs)

	// handleSplitEvent logs one INFO record per split event it resolves
	// ("split event at <point>, distance=..."); a dropped split event is
	// logged as a warning without the distance.
	resolvedSplits := regexp.MustCompile(`split event at \{[^}]*\}, distance=`).FindAllString(trace.String(), -1)
	assert.Greaterf(t, len(resolvedSplits), 0, "expected the reflex valleys to resolve at least one split event")

	// The skeleton must also have more than one internal node (distinct arc
	// sources).
	sources := map[Point]bool{}
	for _, a := range arcs {
		key := Point{math.Round(a.Source.X*1000) / 1000, math.Round(a.Source.Y*1000) / 1000}
		sources[key] = true
	}
	assert.Greaterf(t, len(sources), 1, "expected multiple distinct internal nodes from split events, got %v", sources)
}

func TestSkeletonizeSymmetricCrossHandlesVertexEvents(t *testing.T) {
	cross := []Point{
		{1, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 2}, {2, 2},
		{2, 3}, {1, 3}, {1, 2}, {0, 2}, {0, 1}, {1, 1},
	}
	arcs, err := Skeletonize(cross)
	require.NoError(t, err)
	assertEverySinkIsUnique(t, cross, arcs)
	assertArcCountBounded(t, len(cross), arcs)
}

func TestSkeletonizeIsIdempotent(t *testing.T) {
	poly := []Point{{30, 20}, {30, 120}, {90, 70}, {160, 140}, {178, 93}, {160, 20}}

	first, err := Skeletonize(poly)
	require.NoError(t, err)
	second, err := Skeletonize(poly)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	assert.ElementsMatch(t, normalizeArcs(first), normalizeArcs(second))
}

// normalizeArcs rounds coordinates and sorts so two arc slices produced from
// separate runs can be compared regardless of emission order.
func normalizeArcs(arcs []Arc) []Arc {
	out := make([]Arc, len(arcs))
	round := func(p Point) Point {
		return Point{math.Round(p.X*1e6) / 1e6, math.Round(p.Y*1e6) / 1e6}
	}
	for i, a := range arcs {
		out[i] = Arc{Source: round(a.Source), Sink: round(a.Sink)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source.X < out[j].Source.X ||
				(out[i].Source.X == out[j].Source.X && out[i].Source.Y < out[j].Source.Y)
		}
		return out[i].Sink.X < out[j].Sink.X ||
			(out[i].Sink.X == out[j].Sink.X && out[i].Sink.Y < out[j].Sink.Y)
	})
	return out
}

func TestSkeletonizeRejectsEmptyPolygon(t *testing.T) {
	_, err := Skeletonize(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSkeletonizeRejectsDegeneratePolygon(t *testing.T) {
	_, err := Skeletonize([]Point{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrDegeneratePolygon)
}

func TestSkeletonizeWithHoleAddsInteriorLAV(t *testing.T) {
	outer := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	hole := []Point{{40, 60}, {60, 60}, {60, 40}, {40, 40}} // CW, interior
	arcs, err := Skeletonize(outer, WithHoles(hole))
	require.NoError(t, err)
	require.NotEmpty(t, arcs)
	assertEverySinkIsUnique(t, outer, arcs)
	assertEverySinkIsUnique(t, hole, arcs)
}
