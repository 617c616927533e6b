package bag

import "iter"

// Interface is the read-only contract shared by the persistent Bag and the
// in-place Mutable bag. The fold helpers in this package accept it, so they
// work against either variant.
type Interface[T any] interface {
	// Returns the number of occurrences of elem, 0 if absent.
	Multiplicity(T) int

	// Returns whether every provided element occurs at least once.
	Contains(...T) bool

	// Returns the total number of occurrences across all elements.
	Len() int

	// Returns a read-only view of per-class multiplicities.
	Multiplicities() Multiplicities[T]

	// Yields every stored occurrence. Order is unspecified unless the bag
	// was built with a sorted configuration.
	All() iter.Seq[T]

	// Yields each distinct stored value exactly once.
	DistinctValues() iter.Seq[T]

	// Returns every occurrence as a slice.
	ToSlice() []T

	// Provides a string representation of the bag.
	String() string
}
