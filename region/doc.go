// Package region keeps mergeable per-region aggregates while connected
// components are discovered incrementally.
//
// What
//
//   - Manager[T] owns an arena of live region entries plus a table of
//     sub-region handles. A SubRegion is a small integer that always resolves,
//     through one indirection, to exactly one live region.
//   - NewRegion allocates a region with a zero aggregate and one sub-region.
//   - Merge coalesces the regions owning two handles; merging handles that
//     already share a region is a no-op.
//   - Region returns the live aggregate for in-place mutation; Add folds a
//     contribution into it.
//   - Regions iterates the live aggregates, skipping dissolved slots.
//
// Aggregates
//
//	T must implement Aggregate[T]: Merge(other T) T combining the aggregates
//	of two joined regions. Merge must be commutative and associative so that
//	the final aggregate of a region never depends on the order in which its
//	pieces were joined. The zero value of T is the aggregate of a new region.
//
// Handles vs. union-find
//
//	Handles are redirected eagerly at merge time instead of being resolved
//	through a parent chain. Lookups stay O(1) on every call; a merge costs
//	O(length of the absorbed region's handle list), and a region is absorbed
//	at most once. Freed slots go on a free list and are
//	reused by NewRegion, so the arena is bounded by the peak number of live
//	regions rather than the total ever created.
//
// Complexity
//
//   - NewRegion: O(1) amortized.
//   - Merge:     O(k), k = number of handles owned by the absorbed region.
//   - Region:    O(1).
//   - Regions:   O(slots).
//
// A Manager is not safe for concurrent use.
package region
