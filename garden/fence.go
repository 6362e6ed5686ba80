package garden

import (
	"github.com/katalvlaran/regionscan/scan"
)

// Fence is the area and perimeter of a region.
type Fence struct {
	Area      int
	Perimeter int
}

// Merge adds the areas and perimeters of two joined regions.
func (f Fence) Merge(o Fence) Fence {
	return Fence{Area: f.Area + o.Area, Perimeter: f.Perimeter + o.Perimeter}
}

// Cost is the fence price of the region: area × perimeter.
func (f Fence) Cost() int {
	return f.Area * f.Perimeter
}

// Sides is the area and number of straight fence sides of a region.
type Sides struct {
	Area  int
	Sides int
}

// Merge adds the areas and side counts of two joined regions.
func (s Sides) Merge(o Sides) Sides {
	return Sides{Area: s.Area + o.Area, Sides: s.Sides + o.Sides}
}

// Cost is the bulk-discount price of the region: area × sides.
func (s Sides) Cost() int {
	return s.Area * s.Sides
}

// Edges records which sides of a plot have a fence.
type Edges struct {
	Left, Above, Right, Below bool
}

// PerimeterCell contributes one unit of area and one unit of perimeter per
// fenced side.
func PerimeterCell(c scan.Cell[struct{}]) (Fence, struct{}) {
	return Fence{Area: 1, Perimeter: c.Edges()}, struct{}{}
}

// SidesCell contributes one unit of area and the number of straight sides
// that start at this plot.
//
// A fence above or below the plot continues a side when the connected plot
// to the left has the same fence; a fence left or right of the plot
// continues a side when the connected plot above has the same fence.
func SidesCell(c scan.Cell[Edges]) (Sides, Edges) {
	n := newSides(c)
	return Sides{Area: 1, Sides: n}, edgesOf(c)
}

// newSides counts the fence sides opened by c.
func newSides(c scan.Cell[Edges]) int {
	n := 0
	if c.EdgeAbove && (c.Left == nil || !c.Left.Above) {
		n++
	}
	if c.EdgeBelow && (c.Left == nil || !c.Left.Below) {
		n++
	}
	if c.EdgeLeft && (c.Above == nil || !c.Above.Left) {
		n++
	}
	if c.EdgeRight && (c.Above == nil || !c.Above.Right) {
		n++
	}
	return n
}

func edgesOf[P any](c scan.Cell[P]) Edges {
	return Edges{Left: c.EdgeLeft, Above: c.EdgeAbove, Right: c.EdgeRight, Below: c.EdgeBelow}
}
