// Package regionscan groups the cells of a rectangular grid into connected
// regions in a single raster pass, folding a caller-defined aggregate per
// region as it goes.
//
// 🚀 What is regionscan?
//
//	A small, generic, dependency-light toolkit that brings together:
//		• Grids: rectangular cell storage with bounds-checked neighbours
//		• Regions: a union-find manager with recycled slots and stable handles
//		• Scanning: one left-to-right, top-to-bottom pass with user aggregates
//		• Reductions: Sum and Fold over the surviving regions
//		• Garden: fence and bulk-discount pricing built on the scan
//
// ✨ Why choose regionscan?
//
//   - One pass: no flood fill, no visited set, memory O(width + sub-regions)
//   - Any aggregate: implement Merge(other T) T and you are done
//   - Custom borders: a Boundary predicate decides what separates regions
//   - Hooks: OnNewRegion and OnMerge observe the scan as it happens
//
// Packages:
//
//	gridgraph/        Grid[C], directions, reference flood-fill components
//	region/           Manager[T]: NewRegion, Merge, Add, Regions
//	scan/             Run, Cell, Boundary, Sum, Fold
//	garden/           Parse, FencePrice, BulkPrice, Report
//	cmd/gardenplots/  command-line pricing of garden maps
//	examples/         terrain zoning with a custom boundary
//
// Quick ASCII example:
//
//	AAAA      A: area 4, perimeter 10, 4 sides
//	BBCD      B: area 4, perimeter  8, 4 sides
//	BBCC      C: area 4, perimeter 10, 8 sides
//	EEEC      D: area 1, perimeter  4, 4 sides
//	          E: area 3, perimeter  8, 4 sides
//
// Fence price 140, bulk price 80.
//
//	go get github.com/katalvlaran/regionscan
package regionscan
