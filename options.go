package skeleton

import (
	"log/slog"

	"github.com/go-straightskel/skeleton/skellog"
)

// Config carries the tuning knobs Skeletonize accepts. The zero Config is
// not directly usable; use defaultConfig() then apply Options, mirroring the
// teacher's NewClipperOffset(miterLimit, arcTolerance float64) constructor
// shape (port/offset.go) but as functional options, since this kernel has
// more independent knobs than a two-field constructor comfortably carries.
type Config struct {
	// Tolerance is the relative tolerance ApproxEqual uses throughout event
	// detection. spec.md §9 calls this out explicitly as a parameter rather
	// than a hardcoded constant, to let test harnesses tighten it.
	Tolerance float64

	// Logger receives INFO records at every event resolution and DEBUG
	// records at split-candidate evaluation (spec.md §6). Discarded by
	// default.
	Logger *skellog.Logger

	// Tracer receives visualization callbacks. NopTracer by default.
	Tracer Tracer

	// Holes, if set, are additional CW-oriented closed contours strictly
	// interior to the outer polygon. Each contributes one additional
	// initial LAV plus its own originalEdge entries.
	Holes [][]Point
}

func defaultConfig() Config {
	return Config{
		Tolerance: defaultTolerance,
		Logger:    skellog.Discard(),
		Tracer:    NopTracer{},
	}
}

// Option configures a Skeletonize call.
type Option func(*Config)

// WithTolerance overrides the default 1e-3 relative tolerance used by
// ApproxEqual when detecting coincident events.
func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithLogger attaches a structured logger. Pass skellog.NewRotatingFile or
// skellog.New for a live logger; the package default is skellog.Discard().
func WithLogger(l *skellog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithDebugLevel is a convenience that attaches a skellog.Logger at the
// given slog level writing to the given rotating file, combining
// WithLogger and skellog.NewRotatingFile for the common case.
func WithDebugLevel(level slog.Level, path string) Option {
	return func(c *Config) { c.Logger = skellog.NewRotatingFile(level, path, 64) }
}

// WithTracer attaches a visualization trace sink. See the Tracer interface.
func WithTracer(t Tracer) Option {
	return func(c *Config) { c.Tracer = t }
}

// WithHoles adds hole contours, each a CW-oriented closed polygon strictly
// interior to the outer polygon passed to Skeletonize.
func WithHoles(holes ...[]Point) Option {
	return func(c *Config) { c.Holes = append(c.Holes, holes...) }
}
