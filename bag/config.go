package bag

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"
)

// A Config fixes three things for every bag derived from it: the equivalence
// relation over elements, the discriminator used to index equivalence
// classes (a hash function or a total order), and the storage strategy for
// elements within one class. Configs are immutable and shared by reference;
// every constructor in this package takes one explicitly.
//
// Under the hash discipline the discriminator is an immutable.Hasher whose
// Equal method is the equivalence relation. Under the sorted discipline it
// is an immutable.Comparer, and elements comparing as 0 are equivalent.
//
// Precondition: the equivalence relation must be consistent with the
// discriminator, i.e. equivalent elements must hash identically. This is
// not checked at runtime and violating it silently corrupts lookups; Check
// can audit a sample of elements in tests.
type Config[T any] struct {
	hasher    immutable.Hasher[T]
	comparer  immutable.Comparer[T]
	newBucket func(cfg *Config[T], sentinel T) bucket[T]

	// rawHasher hashes by structural equality. Nested buckets key their
	// inner value-to-count mapping with it; it is independent of the class
	// discriminator above.
	rawHasher immutable.Hasher[T]
}

func (c *Config[T]) ordered() bool {
	return c.comparer != nil
}

func (c *Config[T]) equivalent(a, b T) bool {
	if c.comparer != nil {
		return c.comparer.Compare(a, b) == 0
	}
	return c.hasher.Equal(a, b)
}

// Compact returns a hash-discipline configuration that groups elements by
// structural equality and stores each class as a bare count. This is the
// cheapest representation and the natural default.
func Compact[T comparable]() *Config[T] {
	return &Config[T]{
		hasher:    newComparableHasher[T](),
		newBucket: newCompactBucket[T],
	}
}

// KeepAll returns a hash-discipline configuration that groups elements by
// structural equality and retains every inserted occurrence.
func KeepAll[T comparable]() *Config[T] {
	return &Config[T]{
		hasher:    newComparableHasher[T](),
		newBucket: newKeepAllBucket[T],
	}
}

// CompactEquiv returns a hash-discipline configuration with a custom
// equivalence relation. Because a class may then span several distinct
// values, each class stores a nested value-to-count mapping rather than a
// single count: multiplicity queries see the whole class, while Distinct
// and removal still see individual values.
func CompactEquiv[T comparable](hasher immutable.Hasher[T]) *Config[T] {
	return &Config[T]{
		hasher:    hasher,
		newBucket: newNestedBucket[T],
		rawHasher: newComparableHasher[T](),
	}
}

// KeepAllEquiv returns a hash-discipline configuration with a custom
// equivalence relation that retains every inserted occurrence, preserving
// which concrete values were inserted even when they are equivalent but
// unequal.
func KeepAllEquiv[T comparable](hasher immutable.Hasher[T]) *Config[T] {
	return &Config[T]{
		hasher:    hasher,
		newBucket: newKeepAllBucket[T],
	}
}

// CompactOrdered returns a sorted-discipline configuration: classes are kept
// in a balanced ordered tree and iteration visits them in ascending order.
// Elements comparing as 0 are equivalent and collapse into a count.
func CompactOrdered[T any](comparer immutable.Comparer[T]) *Config[T] {
	return &Config[T]{
		comparer:  comparer,
		newBucket: newCompactBucket[T],
	}
}

// KeepAllOrdered is the sorted-discipline analog of KeepAll: classes are
// ordered by the comparer and every inserted occurrence is retained.
func KeepAllOrdered[T comparable](comparer immutable.Comparer[T]) *Config[T] {
	return &Config[T]{
		comparer:  comparer,
		newBucket: newKeepAllBucket[T],
	}
}

// CompactOrderedEquiv returns a sorted-discipline configuration whose
// comparer is a coarse equivalence: values comparing as 0 form one class but
// keep per-value counts in a nested mapping, like CompactEquiv. Iteration
// visits classes in comparer order; the order of distinct values within a
// class is unspecified.
func CompactOrderedEquiv[T comparable](comparer immutable.Comparer[T]) *Config[T] {
	return &Config[T]{
		comparer:  comparer,
		newBucket: newNestedBucket[T],
		rawHasher: newComparableHasher[T](),
	}
}

// comparableHasher hashes any comparable type with hash/maphash, seeded per
// configuration. Equal is consistent with ==.
type comparableHasher[T comparable] struct {
	seed maphash.Seed
}

func newComparableHasher[T comparable]() *comparableHasher[T] {
	return &comparableHasher[T]{seed: maphash.MakeSeed()}
}

func (h *comparableHasher[T]) Hash(v T) uint32 {
	var mh maphash.Hash
	mh.SetSeed(h.seed)
	maphash.WriteComparable(&mh, v)
	sum := mh.Sum64()
	return uint32(sum>>32) ^ uint32(sum)
}

func (h *comparableHasher[T]) Equal(a, b T) bool {
	return a == b
}
