package garden

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/regionscan/gridgraph"
	"github.com/katalvlaran/regionscan/scan"
)

// FencePrice returns the sum of area × perimeter over all regions of g.
func FencePrice(g *gridgraph.Grid[byte], opts ...scan.Option) int {
	m := scan.Run(g, nil, PerimeterCell, opts...)
	return scan.Sum(m.Regions(), Fence.Cost)
}

// BulkPrice returns the sum of area × sides over all regions of g.
func BulkPrice(g *gridgraph.Grid[byte], opts ...scan.Option) int {
	m := scan.Run(g, nil, SidesCell, opts...)
	return scan.Sum(m.Regions(), Sides.Cost)
}

// Plot summarises one region: its letter, area, perimeter and sides.
type Plot struct {
	Letter    byte
	Area      int
	Perimeter int
	Sides     int
}

// Merge combines two pieces of the same region. The letter of a non-empty
// piece wins over the zero value of a fresh region.
func (p Plot) Merge(o Plot) Plot {
	letter := p.Letter
	if p.Area == 0 {
		letter = o.Letter
	}
	return Plot{
		Letter:    letter,
		Area:      p.Area + o.Area,
		Perimeter: p.Perimeter + o.Perimeter,
		Sides:     p.Sides + o.Sides,
	}
}

// FenceCost is area × perimeter.
func (p Plot) FenceCost() int { return p.Area * p.Perimeter }

// BulkCost is area × sides.
func (p Plot) BulkCost() int { return p.Area * p.Sides }

// Report scans g once and returns every region, largest area first. Ties go
// to the longer perimeter, then to more sides, then to the smaller letter.
func Report(g *gridgraph.Grid[byte], opts ...scan.Option) []Plot {
	m := scan.Run(g, nil, func(c scan.Cell[Edges]) (Plot, Edges) {
		return Plot{
			Letter:    g.At(c.X, c.Y),
			Area:      1,
			Perimeter: c.Edges(),
			Sides:     newSides(c),
		}, edgesOf(c)
	}, opts...)

	plots := slices.Collect(m.Regions())
	slices.SortFunc(plots, func(a, b Plot) int {
		return cmp.Or(
			cmp.Compare(b.Area, a.Area),
			cmp.Compare(b.Perimeter, a.Perimeter),
			cmp.Compare(b.Sides, a.Sides),
			cmp.Compare(a.Letter, b.Letter),
		)
	})
	return plots
}
