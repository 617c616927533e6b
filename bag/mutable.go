package bag

import (
	"fmt"
	"iter"
	"strings"
)

// Mutable is the in-place multiset. It exclusively owns its table: no other
// bag shares it, and operations modify it directly instead of returning a
// fresh bag. Mutable is not safe for concurrent use; callers needing
// concurrent access must synchronize externally or use Bag.
type Mutable[T any] struct {
	cfg  *Config[T]
	tbl  mtable[T]
	size int
}

// NewMutable returns a mutable bag holding the provided elements.
func NewMutable[T any](cfg *Config[T], elems ...T) *Mutable[T] {
	out := newMtableBuilder(cfg)
	for _, e := range elems {
		out.add(e, 1)
	}
	return out.mutable()
}

// Len returns the total number of occurrences across all elements.
func (m *Mutable[T]) Len() int {
	return m.size
}

// Multiplicity returns the number of occurrences of elem's equivalence
// class, 0 if absent.
func (m *Mutable[T]) Multiplicity(elem T) int {
	if bkt, ok := m.tbl.get(elem); ok {
		return bkt.size()
	}
	return 0
}

// Contains determines whether every provided element occurs at least once.
func (m *Mutable[T]) Contains(elems ...T) bool {
	for _, e := range elems {
		if _, ok := m.tbl.get(e); !ok {
			return false
		}
	}
	return true
}

// Add records one occurrence of elem.
func (m *Mutable[T]) Add(elem T) {
	m.AddCount(elem, 1)
}

// AddCount records n occurrences of elem. Non-positive n is a no-op.
func (m *Mutable[T]) AddCount(elem T, n int) {
	if n <= 0 {
		return
	}
	bkt, ok := m.tbl.get(elem)
	if !ok {
		bkt = m.cfg.newBucket(m.cfg, elem)
	}
	m.tbl.put(bkt.add(elem, n))
	m.size += n
}

// Remove drops one occurrence of elem and reports whether anything was
// removed.
func (m *Mutable[T]) Remove(elem T) bool {
	return m.RemoveCount(elem, 1) > 0
}

// RemoveCount drops up to n occurrences of elem and returns how many were
// actually removed. Under a keep-all configuration only occurrences equal
// to elem are removed, not merely equivalent ones.
func (m *Mutable[T]) RemoveCount(elem T, n int) int {
	if n <= 0 {
		return 0
	}
	bkt, ok := m.tbl.get(elem)
	if !ok {
		return 0
	}
	next := bkt.removed(elem, n)
	delta := bkt.size() - next.size()
	if delta == 0 {
		return 0
	}
	if next.size() == 0 {
		m.tbl.del(bkt.sentinel())
	} else {
		m.tbl.put(next)
	}
	m.size -= delta
	return delta
}

// RemoveAll drops elem's entire equivalence class and returns how many
// occurrences it held.
func (m *Mutable[T]) RemoveAll(elem T) int {
	bkt, ok := m.tbl.get(elem)
	if !ok {
		return 0
	}
	m.tbl.del(bkt.sentinel())
	m.size -= bkt.size()
	return bkt.size()
}

// SetMultiplicity makes elem's class hold exactly n occurrences of elem,
// replacing whatever the class held before. n <= 0 drops the class.
func (m *Mutable[T]) SetMultiplicity(elem T, n int) {
	m.RemoveAll(elem)
	m.AddCount(elem, n)
}

// Clear removes all elements.
func (m *Mutable[T]) Clear() {
	m.tbl = newMtable(m.cfg)
	m.size = 0
}

// Union returns a new mutable bag where each multiplicity is the sum of the
// operands' multiplicities. Neither operand is modified.
func (m *Mutable[T]) Union(other *Mutable[T]) *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	unionInto(m.tbl, other.tbl, out)
	return out.mutable()
}

// Diff returns a new mutable bag where each multiplicity is the receiver's
// minus the argument's, floored at zero.
func (m *Mutable[T]) Diff(other *Mutable[T]) *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	diffInto(m.tbl, other.tbl, out)
	return out.mutable()
}

// Intersect returns a new mutable bag where each multiplicity is the
// minimum of the operands' multiplicities.
func (m *Mutable[T]) Intersect(other *Mutable[T]) *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	intersectInto(m.tbl, other.tbl, out)
	return out.mutable()
}

// MaxUnion returns the generalized set union: each multiplicity is the
// maximum of the operands' multiplicities.
func (m *Mutable[T]) MaxUnion(other *Mutable[T]) *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	maxUnionInto(m.tbl, other.tbl, out)
	return out.mutable()
}

// Distinct returns a new mutable bag with exactly one occurrence of each
// distinct value.
func (m *Mutable[T]) Distinct() *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	distinctInto(m.tbl, out)
	return out.mutable()
}

// MostCommon returns a new mutable bag holding only the classes whose
// multiplicity equals the maximum across the receiver.
func (m *Mutable[T]) MostCommon() *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	extremesInto(m.tbl, out, true)
	return out.mutable()
}

// LeastCommon returns a new mutable bag holding only the classes whose
// multiplicity equals the minimum across the receiver.
func (m *Mutable[T]) LeastCommon() *Mutable[T] {
	out := newMtableBuilder(m.cfg)
	extremesInto(m.tbl, out, false)
	return out.mutable()
}

// Multiplicities returns a read-only view of the bag's classes and their
// multiplicities. The view is live: it reflects later mutations.
func (m *Mutable[T]) Multiplicities() Multiplicities[T] {
	return Multiplicities[T]{src: func() table[T] { return m.tbl }}
}

// Equal determines whether both bags hold the same values with the same
// multiplicities.
func (m *Mutable[T]) Equal(other *Mutable[T]) bool {
	return m.size == other.size && tablesEqual[T](m.tbl, other.tbl)
}

// Immutable returns a persistent snapshot of the bag. Later mutations of
// the receiver do not affect the snapshot.
func (m *Mutable[T]) Immutable() *Bag[T] {
	out := newTableBuilder(m.cfg)
	m.tbl.each(func(bkt bucket[T]) bool {
		out.addBucket(bkt)
		return true
	})
	return out.bag()
}

// All yields every stored occurrence. The sequence is restartable; the bag
// must not be mutated while iterating.
func (m *Mutable[T]) All() iter.Seq[T] {
	return allSeq(m.tbl)
}

// DistinctValues yields each distinct stored value exactly once.
func (m *Mutable[T]) DistinctValues() iter.Seq[T] {
	return distinctSeq(m.tbl)
}

// ToSlice returns every occurrence as a slice.
func (m *Mutable[T]) ToSlice() []T {
	out := make([]T, 0, m.size)
	for v := range m.All() {
		out = append(out, v)
	}
	return out
}

// String provides a string representation of the bag.
func (m *Mutable[T]) String() string {
	items := make([]string, 0, m.size)
	for v := range m.All() {
		items = append(items, fmt.Sprint(v))
	}
	return fmt.Sprintf("Bag{%s}", strings.Join(items, ", "))
}
