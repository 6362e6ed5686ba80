package scan

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/regionscan/gridgraph"
	"github.com/katalvlaran/regionscan/region"
)

// plot is the state remembered for an already visited cell.
type plot[P any] struct {
	aux P
	sub region.SubRegion
}

// Run scans g once in row-major order and returns the manager holding one
// aggregate per region.
//
// boundary decides which neighbouring cells are separated (nil means Differs).
// fn is called once per cell; its contribution is merged into the cell's
// region. Run panics if g or fn is nil.
func Run[C comparable, T region.Aggregate[T], P any](
	g *gridgraph.Grid[C],
	boundary Boundary[C],
	fn CellFunc[T, P],
	opts ...Option,
) *region.Manager[T] {
	if g == nil {
		panic("scan: nil grid")
	}
	if fn == nil {
		panic("scan: nil CellFunc")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if boundary == nil {
		boundary = Differs[C]
	}
	debug := o.Logger.Enabled(context.Background(), slog.LevelDebug)

	m := region.NewManager[T]()
	above := make([]plot[P], g.Width)
	row := make([]plot[P], g.Width)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := classify[C, P](g, boundary, x, y)

			// Only connected neighbours contribute a sub-region and state.
			var left, up *plot[P]
			if !cell.EdgeLeft {
				left = &row[x-1]
				cell.Left = &left.aux
			}
			if !cell.EdgeAbove {
				up = &above[x]
				cell.Above = &up.aux
			}

			var h region.SubRegion
			switch {
			case left == nil && up == nil:
				h = m.NewRegion()
				o.OnNewRegion(x, y, h)
				if debug {
					o.Logger.Debug("scan: new region", "x", x, "y", y, "sub_region", int(h))
				}
			case up == nil:
				h = left.sub
			case left == nil:
				h = up.sub
			default:
				if !m.Same(left.sub, up.sub) {
					o.OnMerge(x, y, left.sub, up.sub)
					if debug {
						o.Logger.Debug("scan: merge regions",
							"x", x, "y", y, "kept", int(left.sub), "absorbed", int(up.sub))
					}
				}
				h = m.Merge(left.sub, up.sub)
			}

			contribution, aux := fn(cell)
			row[x] = plot[P]{aux: aux, sub: h}
			m.Add(h, contribution)
		}
		above, row = row, above
	}

	if debug {
		o.Logger.Debug("scan: done",
			"width", g.Width, "height", g.Height,
			"regions", m.Len(), "sub_regions", m.SubRegions(), "slots", m.Slots())
	}
	return m
}

// classify fills in the four edge flags of the cell at (x,y).
func classify[C comparable, P any](g *gridgraph.Grid[C], boundary Boundary[C], x, y int) Cell[P] {
	c := g.At(x, y)
	var edge [4]bool
	for _, d := range gridgraph.Directions {
		n, ok := g.Neighbor(x, y, d)
		edge[d] = !ok || boundary(c, n, d)
	}
	return Cell[P]{
		X:         x,
		Y:         y,
		EdgeLeft:  edge[gridgraph.Left],
		EdgeAbove: edge[gridgraph.Above],
		EdgeRight: edge[gridgraph.Right],
		EdgeBelow: edge[gridgraph.Below],
	}
}
