// Package garden prices the fences around garden plots.
//
// A garden map is a rectangle of uppercase letters, one letter per plot:
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
// Plots of the same letter that touch horizontally or vertically form a
// region. Every region needs a fence: its area is the number of plots, its
// perimeter the number of plot sides not shared with the same region.
//
//   - FencePrice sums area × perimeter over all regions (140 above).
//   - BulkPrice sums area × number of straight sides (80 above): a long
//     straight fence counts once no matter how many plots it runs along.
//
// Both prices come from one raster pass of scan.Run. PerimeterCell and
// SidesCell are the per-plot callbacks; SidesCell carries each plot's edge
// flags forward so that a side already opened by the plot to the left (for
// horizontal fences) or above (for vertical fences) is not counted again.
//
// Report returns the per-region breakdown (letter, area, perimeter, sides).
package garden
