// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/regionscan.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Direction names one of the four orthogonal sides of a cell.
type Direction int

const (
	// Left is the (x-1, y) neighbour.
	Left Direction = iota
	// Above is the (x, y-1) neighbour.
	Above
	// Right is the (x+1, y) neighbour.
	Right
	// Below is the (x, y+1) neighbour.
	Below
)

// Offset returns the (dx, dy) step for d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Above:
		return 0, -1
	case Right:
		return 1, 0
	default:
		return 0, 1
	}
}

// Opposite returns the side facing d from the neighbour's point of view.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns a lower-case name for d.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Above:
		return "above"
	case Right:
		return "right"
	case Below:
		return "below"
	}
	return "invalid"
}

// Directions lists the four sides in scan-friendly order: the two already
// visited sides of a row-major scan first.
var Directions = [4]Direction{Left, Above, Right, Below}

// Grid is an immutable rectangular grid of categories.
// Width and Height define dimensions; cells holds the values in row-major order.
type Grid[C comparable] struct {
	Width, Height int
	cells         []C
}
