package skeleton

// Tracer receives the visualization hooks the core emits while it runs, for
// callers that want to draw the wavefront as it collapses. All methods are
// optional to implement meaningfully; NopTracer satisfies the interface by
// doing nothing, and is the default when no tracer is configured.
//
// This replaces the teacher's global `var VattiDebug bool` / debugLog
// package-level switch (port/vatti_debug.go in the original Clipper2 port):
// a process-wide mutable toggle makes two concurrent Skeletonize calls step
// on each other's trace output, and spec.md's own design notes call the
// global-sink pattern out directly. A Tracer attached per call has no such
// hazard.
type Tracer interface {
	// Line is called with the two endpoints of a segment worth drawing:
	// polygon edges at setup, skeleton arcs as they're emitted.
	Line(a, b Point)
	// Point is called for a notable point; the core calls it with the
	// resolution point of each peak event.
	Point(p Point)
	// Show is called at natural checkpoints (after each event resolves) for
	// tracers that render incrementally rather than buffering.
	Show()
}

// NopTracer discards every call. It is the zero value callers get unless
// they pass WithTracer.
type NopTracer struct{}

func (NopTracer) Line(a, b Point) {}
func (NopTracer) Point(p Point)   {}
func (NopTracer) Show()           {}
