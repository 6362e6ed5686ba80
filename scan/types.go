// Package scan defines the per-cell view, callbacks and options
// used by the raster scan driver.
package scan

import (
	"log/slog"

	"github.com/katalvlaran/regionscan/gridgraph"
	"github.com/katalvlaran/regionscan/region"
)

// Cell is the view of one grid cell handed to a CellFunc.
//
// Left and Above point at the auxiliary state previously returned for the
// left and above neighbours, and are nil unless that neighbour is connected
// to this cell (no edge on that side). They must be treated as read-only.
type Cell[P any] struct {
	X, Y int

	EdgeLeft  bool
	EdgeAbove bool
	EdgeRight bool
	EdgeBelow bool

	Left  *P
	Above *P
}

// Edge reports the edge flag for side d.
func (c Cell[P]) Edge(d gridgraph.Direction) bool {
	switch d {
	case gridgraph.Left:
		return c.EdgeLeft
	case gridgraph.Above:
		return c.EdgeAbove
	case gridgraph.Right:
		return c.EdgeRight
	default:
		return c.EdgeBelow
	}
}

// Edges counts the sides of the cell that are edges (0..4).
func (c Cell[P]) Edges() int {
	n := 0
	for _, e := range [4]bool{c.EdgeLeft, c.EdgeAbove, c.EdgeRight, c.EdgeBelow} {
		if e {
			n++
		}
	}
	return n
}

// CellFunc returns a cell's contribution to its region and the auxiliary
// state later cells will see through Cell.Left and Cell.Above.
// It is called exactly once per cell, in row-major order.
type CellFunc[T, P any] func(Cell[P]) (T, P)

// Boundary reports whether the side of a cell with category from, facing
// direction d, separates it from the in-bounds neighbour with category to.
// A nil Boundary means Differs.
type Boundary[C comparable] func(from, to C, d gridgraph.Direction) bool

// Differs is the default Boundary: neighbours of different categories are
// separated.
func Differs[C comparable](from, to C, _ gridgraph.Direction) bool {
	return from != to
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the logger and hooks used by Run.
type Options struct {
	// Logger receives debug records for region creation and merges.
	Logger *slog.Logger

	// OnNewRegion is called when the cell at (x,y) starts region h.
	OnNewRegion func(x, y int, h region.SubRegion)

	// OnMerge is called when the cell at (x,y) joins two distinct regions;
	// absorbed's region is dissolved into kept's.
	OnMerge func(x, y int, kept, absorbed region.SubRegion)
}

// DefaultOptions returns Options with sane defaults:
//   - a logger that discards everything
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.DiscardHandler),
		OnNewRegion: func(int, int, region.SubRegion) {},
		OnMerge:     func(int, int, region.SubRegion, region.SubRegion) {},
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnNewRegion registers a hook run whenever a new region starts.
func WithOnNewRegion(fn func(x, y int, h region.SubRegion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNewRegion = fn
		}
	}
}

// WithOnMerge registers a hook run whenever two distinct regions coalesce.
func WithOnMerge(fn func(x, y int, kept, absorbed region.SubRegion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
