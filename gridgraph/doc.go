// Package gridgraph treats a rectangular 2D grid of categorical cells as an
// implicit 4-connected graph.
//
// What:
//
//   - Grid[C] wraps a rectangular [][]C (C is any comparable category: byte,
//     rune, int, a small struct...) and is immutable once built.
//   - Get(x, y) is bounds-checked on signed coordinates: lookups outside the
//     grid report ok=false instead of failing, which lets scanners treat the
//     border as "no neighbour".
//   - ConnectedComponents is a plain BFS flood fill grouping 4-connected cells
//     of equal category. It is the reference the raster scan in package scan
//     is checked against.
//
// Why:
//
//   - Garden maps, game boards, segmentation masks: anything where contiguous
//     runs of the same label form a region.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory (deep copy).
//   - Get, InBounds:       O(1).
//   - ConnectedComponents: O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
