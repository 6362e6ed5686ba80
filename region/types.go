package region

// Aggregate is the capability every region payload must provide.
// Merge returns the aggregate of the union of the receiver's region and
// other's region. It must be commutative and associative.
type Aggregate[T any] interface {
	Merge(other T) T
}

// SubRegion is an opaque handle issued by a Manager. It is never invalidated,
// only redirected when its region is merged into another.
type SubRegion int

// entry is one arena slot. live is false once the region has been absorbed.
type entry[T any] struct {
	value      T
	subRegions []SubRegion
	live       bool
}

// Manager owns the live region aggregates and the sub-region table.
// The zero value is an empty Manager ready to use.
type Manager[T Aggregate[T]] struct {
	regions []entry[T] // arena of region slots
	freed   []int      // free slot indices, reused LIFO
	owner   []int      // owner[h] = slot of the region handle h resolves to
	live    int        // number of live regions
}
