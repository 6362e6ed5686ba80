// Package gridgraph provides a rectangular grid of comparable categories with
// bounds-checked lookups and row-major index helpers.
package gridgraph

// New constructs a Grid from a non-empty, rectangular 2D slice (rows[y][x]).
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New[C comparable](rows [][]C) (*Grid[C], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy into a single backing slice
	cells := make([]C, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid[C]{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[C]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the category at (x,y). ok is false, and c the zero value,
// when (x,y) is outside the grid.
// Complexity: O(1).
func (g *Grid[C]) Get(x, y int) (c C, ok bool) {
	if !g.InBounds(x, y) {
		return c, false
	}
	return g.cells[g.index(x, y)], true
}

// At returns the category at (x,y) and panics when out of bounds.
func (g *Grid[C]) At(x, y int) C {
	if !g.InBounds(x, y) {
		panic("gridgraph: At out of bounds")
	}
	return g.cells[g.index(x, y)]
}

// Neighbor returns the category of the cell next to (x,y) in direction d.
func (g *Grid[C]) Neighbor(x, y int, d Direction) (C, bool) {
	dx, dy := d.Offset()
	return g.Get(x+dx, y+dy)
}

// Len returns the number of cells, Width×Height.
func (g *Grid[C]) Len() int {
	return len(g.cells)
}

// Rows returns a deep copy of the grid as rows[y][x].
func (g *Grid[C]) Rows() [][]C {
	out := make([][]C, g.Height)
	for y := range out {
		out[y] = make([]C, g.Width)
		copy(out[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[C]) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid[C]) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
