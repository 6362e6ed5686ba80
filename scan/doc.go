// Package scan aggregates per-region values over a categorical grid in a
// single raster pass, without a label grid and without revisiting cells.
//
// What
//
//   - Run walks a gridgraph.Grid row-major, exactly once per cell.
//   - For every cell it derives four edge flags (left, above, right, below).
//     A side is an edge when there is no neighbour there or the Boundary
//     predicate separates the two cells; by default, when their categories
//     differ.
//   - The cell joins its left neighbour's region when the left side is not an
//     edge, its above neighbour's region when the above side is not an edge,
//     both (merging them) when neither is, or starts a new region otherwise.
//   - The caller's CellFunc receives the flags plus the auxiliary state it
//     returned for the connected left/above neighbours, and returns the
//     cell's contribution to its region plus the state to carry forward.
//   - Regions are kept by a region.Manager; the final answer is usually a
//     Sum or Fold over Manager.Regions().
//
// Boundary predicate
//
//	The predicate passed to Run is the sole source of truth for whether two
//	in-bounds neighbours belong together. It must be mirror-consistent:
//
//	    boundary(a, b, Right) == boundary(b, a, Left)
//	    boundary(a, b, Below) == boundary(b, a, Above)
//
//	otherwise a cell's right edge would disagree with its neighbour's left
//	edge and the per-cell contributions stop adding up.
//
// Memory
//
//	Per-cell state is kept for two rows only (the row above and the current
//	row). Region slots are recycled, so aggregates cost O(live regions), but
//	the handle table keeps one entry per sub-region ever issued:
//	O(W + sub-regions) on top of the grid.
//
// Complexity (W×H cells)
//
//   - Time:   O(W×H) plus O(k) per merge, k = handles of the absorbed region.
//   - Memory: O(W) row state + O(sub-regions) handle table.
//
// Usage
//
//	m := scan.Run(g, nil, func(c scan.Cell[struct{}]) (fence, struct{}) {
//	    return fence{Area: 1, Perimeter: c.Edges()}, struct{}{}
//	})
//	price := scan.Sum(m.Regions(), fence.Cost)
//
// Options
//
//   - WithLogger(l):       debug-log region creation and merges.
//   - WithOnNewRegion(fn): hook called when a cell starts a new region.
//   - WithOnMerge(fn):     hook called when a cell joins two distinct regions.
//
// The scan is strictly sequential: a cell's region depends on the already
// visited left and above cells.
package scan
