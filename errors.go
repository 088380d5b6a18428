package skeleton

import "errors"

var (
	// ErrDegeneratePolygon indicates a polygon with fewer than 3 vertices
	// remained after duplicate/colinear-point removal.
	ErrDegeneratePolygon = errors.New("skeleton: polygon has fewer than 3 usable vertices")

	// ErrInvalidInput indicates a nil or otherwise unusable polygon was
	// passed to Skeletonize.
	ErrInvalidInput = errors.New("skeleton: invalid input polygon")

	// ErrInvariantViolation is the class of error spec'd as "programmer
	// error": an event was popped whose participant reports itself valid
	// but no longer belongs to any LAV. It is never expected in normal
	// operation and is surfaced as an error rather than silently dropped,
	// so callers embedding this package in a larger pipeline can fail loud.
	ErrInvariantViolation = errors.New("skeleton: invariant violation: valid vertex has no owning LAV")
)
