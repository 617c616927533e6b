// Package bag implements a multiset: a collection that tracks how many times
// each element occurs, under a configurable notion of element equivalence
// and a configurable storage strategy for equivalent elements.
//
// A Config (see Compact, KeepAll, CompactEquiv and friends) decides how
// elements are grouped into equivalence classes, whether classes are indexed
// by hash or by total order, and whether a class stores a bare count, every
// inserted occurrence, or a nested value-to-count mapping.
//
// Bag is persistent: every operation returns a new bag and never modifies
// nodes reachable from previously returned bags, so bags may be shared
// freely, including across goroutines. Mutable is the in-place variant for
// callers that own their bag exclusively; it is not safe for concurrent use.
//
// Binary operations require both operands to have been built under
// equivalent configurations. Combining bags whose configurations disagree
// about equivalence is a caller error with undefined results.
package bag

import (
	"fmt"
	"iter"
	"strings"
)

// Bag is an immutable multiset. The zero value is not usable; construct
// bags with New or a Builder.
type Bag[T any] struct {
	cfg  *Config[T]
	tbl  ptable[T]
	size int
}

// Ensure both variants satisfy Interface at compile-time.
var (
	_ Interface[string] = (*Bag[string])(nil)
	_ Interface[string] = (*Mutable[string])(nil)
)

// New returns a bag holding the provided elements.
func New[T any](cfg *Config[T], elems ...T) *Bag[T] {
	b := NewBuilder(cfg)
	for _, e := range elems {
		b.Add(e)
	}
	return b.Bag()
}

// Len returns the total number of occurrences across all elements.
func (b *Bag[T]) Len() int {
	return b.size
}

// Multiplicity returns the number of occurrences of elem's equivalence
// class, 0 if absent.
func (b *Bag[T]) Multiplicity(elem T) int {
	if bkt, ok := b.tbl.get(elem); ok {
		return bkt.size()
	}
	return 0
}

// Contains determines whether every provided element occurs at least once.
func (b *Bag[T]) Contains(elems ...T) bool {
	for _, e := range elems {
		if _, ok := b.tbl.get(e); !ok {
			return false
		}
	}
	return true
}

// Add returns a bag with one more occurrence of elem.
func (b *Bag[T]) Add(elem T) *Bag[T] {
	return b.AddCount(elem, 1)
}

// AddCount returns a bag with n more occurrences of elem. Non-positive n
// returns the receiver unchanged.
func (b *Bag[T]) AddCount(elem T, n int) *Bag[T] {
	if n <= 0 {
		return b
	}
	bkt, ok := b.tbl.get(elem)
	if !ok {
		bkt = b.cfg.newBucket(b.cfg, elem)
	}
	return &Bag[T]{cfg: b.cfg, tbl: b.tbl.with(bkt.add(elem, n)), size: b.size + n}
}

// Remove returns a bag with one occurrence of elem removed, if present.
func (b *Bag[T]) Remove(elem T) *Bag[T] {
	return b.RemoveCount(elem, 1)
}

// RemoveCount returns a bag with up to n occurrences of elem removed.
// Multiplicities floor at zero; removing more than is present is not an
// error. Non-positive n returns the receiver unchanged.
//
// Under a keep-all configuration only occurrences equal to elem are
// removed, not merely equivalent ones.
func (b *Bag[T]) RemoveCount(elem T, n int) *Bag[T] {
	if n <= 0 {
		return b
	}
	bkt, ok := b.tbl.get(elem)
	if !ok {
		return b
	}
	next := bkt.removed(elem, n)
	delta := bkt.size() - next.size()
	if delta == 0 {
		return b
	}
	var tbl ptable[T]
	if next.size() == 0 {
		tbl = b.tbl.without(bkt.sentinel())
	} else {
		tbl = b.tbl.with(next)
	}
	return &Bag[T]{cfg: b.cfg, tbl: tbl, size: b.size - delta}
}

// RemoveAll returns a bag with elem's entire equivalence class dropped.
func (b *Bag[T]) RemoveAll(elem T) *Bag[T] {
	bkt, ok := b.tbl.get(elem)
	if !ok {
		return b
	}
	return &Bag[T]{cfg: b.cfg, tbl: b.tbl.without(bkt.sentinel()), size: b.size - bkt.size()}
}

// WithMultiplicity returns a bag in which elem's class holds exactly n
// occurrences of elem, replacing whatever the class held before. n <= 0 is
// equivalent to RemoveAll.
func (b *Bag[T]) WithMultiplicity(elem T, n int) *Bag[T] {
	next := b.RemoveAll(elem)
	if n <= 0 {
		return next
	}
	return next.AddCount(elem, n)
}

// Union returns a bag where each multiplicity is the sum of the operands'
// multiplicities.
func (b *Bag[T]) Union(other *Bag[T]) *Bag[T] {
	out := newTableBuilder(b.cfg)
	unionInto(b.tbl, other.tbl, out)
	return out.bag()
}

// Diff returns a bag where each multiplicity is the receiver's minus the
// argument's, floored at zero.
func (b *Bag[T]) Diff(other *Bag[T]) *Bag[T] {
	out := newTableBuilder(b.cfg)
	diffInto(b.tbl, other.tbl, out)
	return out.bag()
}

// Intersect returns a bag where each multiplicity is the minimum of the
// operands' multiplicities.
func (b *Bag[T]) Intersect(other *Bag[T]) *Bag[T] {
	out := newTableBuilder(b.cfg)
	intersectInto(b.tbl, other.tbl, out)
	return out.bag()
}

// MaxUnion returns the generalized set union: each multiplicity is the
// maximum of the operands' multiplicities.
func (b *Bag[T]) MaxUnion(other *Bag[T]) *Bag[T] {
	out := newTableBuilder(b.cfg)
	maxUnionInto(b.tbl, other.tbl, out)
	return out.bag()
}

// Distinct returns a bag with exactly one occurrence of each distinct
// value. Duplicates collapse at the value level, not just the class level:
// a keep-all class holding equivalent-but-unequal values keeps one of each.
func (b *Bag[T]) Distinct() *Bag[T] {
	out := newTableBuilder(b.cfg)
	distinctInto(b.tbl, out)
	return out.bag()
}

// MostCommon returns a bag holding only the classes whose multiplicity
// equals the maximum across the receiver.
func (b *Bag[T]) MostCommon() *Bag[T] {
	out := newTableBuilder(b.cfg)
	extremesInto(b.tbl, out, true)
	return out.bag()
}

// LeastCommon returns a bag holding only the classes whose multiplicity
// equals the minimum across the receiver.
func (b *Bag[T]) LeastCommon() *Bag[T] {
	out := newTableBuilder(b.cfg)
	extremesInto(b.tbl, out, false)
	return out.bag()
}

// Multiplicities returns a read-only view of the bag's classes and their
// multiplicities.
func (b *Bag[T]) Multiplicities() Multiplicities[T] {
	return Multiplicities[T]{src: func() table[T] { return b.tbl }}
}

// Equal determines whether both bags hold the same values with the same
// multiplicities.
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	return b.size == other.size && tablesEqual[T](b.tbl, other.tbl)
}

// All yields every stored occurrence. The sequence is restartable. Order is
// unspecified unless the configuration is sorted, in which case classes are
// visited in ascending order.
func (b *Bag[T]) All() iter.Seq[T] {
	return allSeq(b.tbl)
}

// DistinctValues yields each distinct stored value exactly once.
func (b *Bag[T]) DistinctValues() iter.Seq[T] {
	return distinctSeq(b.tbl)
}

// ToSlice returns every occurrence as a slice.
func (b *Bag[T]) ToSlice() []T {
	out := make([]T, 0, b.size)
	for v := range b.All() {
		out = append(out, v)
	}
	return out
}

// String provides a string representation of the bag.
func (b *Bag[T]) String() string {
	items := make([]string, 0, b.size)
	for v := range b.All() {
		items = append(items, fmt.Sprint(v))
	}
	return fmt.Sprintf("Bag{%s}", strings.Join(items, ", "))
}

// Mutable returns an exclusively-owned copy of the bag.
func (b *Bag[T]) Mutable() *Mutable[T] {
	out := newMtableBuilder(b.cfg)
	b.tbl.each(func(bkt bucket[T]) bool {
		out.addBucket(bkt)
		return true
	})
	return out.mutable()
}
