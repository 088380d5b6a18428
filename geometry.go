package skeleton

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a 2D coordinate with float64 precision. It doubles as a free
// vector wherever an operation needs a direction rather than a position.
// This kernel reuses vec.Vec2 rather than rolling its own: Add/Sub/Mul/Dot/
// Length are exactly the primitives seehuhn.de/go/raster's own rasteriser
// and stroker build on for the same kind of 2D point/vector arithmetic
// (rasteriser.go, stroke.go), and there's no reason a straight-skeleton
// kernel's arithmetic should look any different.
type Point = vec.Vec2

// Vector is Point used as a free direction rather than a position; the two
// share a representation because every vector this package handles
// (edge directions, bisector directions, creator vectors) is computed from
// a difference of two Points.
type Vector = vec.Vec2

// Normalize returns v/|v|. The caller must guard against the zero vector;
// Normalize returns the zero vector rather than NaN-producing coordinates so
// callers that forget the guard fail closed (a zero bisector direction is
// itself treated as a degenerate-candidate signal downstream). vec.Vec2 has
// no Normalize of its own; callers of the library divide by Length() inline
// the same way (e.g. stroke.go's addStrokeSegment), so this just names that
// pattern once.
func Normalize(v Point) Point {
	l := v.Length()
	if l == 0 {
		return Point{}
	}
	return v.Mul(1 / l)
}

// Cross returns the scalar (2D) cross product a.X*b.Y - b.X*a.Y. vec.Vec2
// carries no Cross method (seehuhn.de/go/raster never needs one; its joins
// and miters work entirely from Dot and the signed normal Vec2{-v.Y, v.X}),
// so this is computed directly from the exported X/Y fields, the same way
// stroke.go reaches into those fields for its own perpendiculars.
func Cross(a, b Point) float64 {
	return a.X*b.Y - b.X*a.Y
}

// Dot returns the dot product of a and b, via vec.Vec2's own Dot method.
func Dot(a, b Point) float64 {
	return a.Dot(b)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return a.Sub(b).Length()
}

// LineSegment is an anchor point p together with a direction vector v whose
// length equals the segment length (v.Length() == 0 only for a degenerate
// zero-length segment).
type LineSegment struct {
	P Point
	V Point
}

// NewLineSegment builds the segment running from `from` to `to`.
func NewLineSegment(from, to Point) LineSegment {
	return LineSegment{P: from, V: to.Sub(from)}
}

// End returns the segment's terminal point, p+v.
func (s LineSegment) End() Point {
	return s.P.Add(s.V)
}

// Ray is an origin point p and a direction vector v; points on the ray are
// p + t*v for t >= 0.
type Ray struct {
	P Point
	V Point
}

// Line is an infinite line through p in direction v. Direction need not be
// normalized; only its orientation matters for intersection and distance.
type Line struct {
	P Point
	V Point
}

// LineFromSegment returns the infinite line through a segment.
func LineFromSegment(s LineSegment) Line {
	return Line{P: s.P, V: s.V}
}

// LineFromRay returns the infinite line through a ray.
func LineFromRay(r Ray) Line {
	return Line{P: r.P, V: r.V}
}

// IntersectLineLine returns the intersection of two infinite lines, or
// ok=false if they are parallel (including colinear, which this kernel never
// needs to distinguish from "no intersection").
func IntersectLineLine(l1, l2 Line) (Point, bool) {
	denom := Cross(l1.V, l2.V)
	if denom == 0 {
		return Point{}, false
	}
	// Solve l1.P + t*l1.V == l2.P + u*l2.V for t.
	diff := l2.P.Sub(l1.P)
	t := Cross(diff, l2.V) / denom
	return l1.P.Add(l1.V.Mul(t)), true
}

// IntersectLineRay returns the intersection of an infinite line with a ray's
// own infinite line, or ok=false if parallel. Unlike IntersectRayRay, this
// does not reject points behind the ray's origin: split-event candidates
// (the only caller) treat the bisector as a full line, per spec.
func IntersectLineRay(l Line, r Ray) (Point, bool) {
	return IntersectLineLine(l, LineFromRay(r))
}

// IntersectRayRay returns the intersection of two rays, or ok=false if they
// are parallel or if the intersection lies behind either ray's origin.
func IntersectRayRay(r1, r2 Ray) (Point, bool) {
	denom := Cross(r1.V, r2.V)
	if denom == 0 {
		return Point{}, false
	}
	diff := r2.P.Sub(r1.P)
	t := Cross(diff, r2.V) / denom
	u := Cross(diff, r1.V) / denom
	if t < 0 || u < 0 {
		return Point{}, false
	}
	return r1.P.Add(r1.V.Mul(t)), true
}

// DistanceToLine returns the unsigned perpendicular distance from p to the
// infinite line l.
func DistanceToLine(l Line, p Point) float64 {
	n := l.V.Length()
	if n == 0 {
		return Distance(l.P, p)
	}
	return math.Abs(Cross(l.V, p.Sub(l.P))) / n
}

// defaultTolerance is the relative tolerance ApproxEqual uses when a Config
// has not overridden it. It is a design constant, not a law of physics: it
// trades robustness against floating drift for the risk of merging two
// genuinely distinct, very close events.
const defaultTolerance = 1e-3

// ApproxEqual reports whether a and b are equal, or within a tolerance of
// max(|a|,|b|)*tol of each other.
func ApproxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	aa, ab := math.Abs(a), math.Abs(b)
	m := aa
	if ab > m {
		m = ab
	}
	return math.Abs(a-b) <= m*tol
}

// ApproxEqualPoints extends ApproxEqual pointwise to both coordinates of a
// and b.
func ApproxEqualPoints(a, b Point, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) && ApproxEqual(a.Y, b.Y, tol)
}
