package gridgraph

// ConnectedComponents finds all maximal 4-connected regions of cells sharing
// the same category. Every cell belongs to exactly one component.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order. Components are ordered by their first cell in
// row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid[C]) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0 := range g.cells {
		if seen[i0] {
			continue
		}
		want := g.cells[i0]
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range Directions {
				dx, dy := d.Offset()
				vx, vy := ux+dx, uy+dy
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] && g.cells[vi] == want {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
