package set

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rdeusser/collections/bag"
)

// Set is a bag constrained to multiplicity one per element: Add is
// idempotent and the multiset algebra degenerates to the usual set algebra.
type Set[T comparable] struct {
	b  *bag.Mutable[T]
	mu sync.RWMutex
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// NewSet returns a set initialized with the provided items
func NewSet[T comparable](items ...T) Interface[T] {
	s := &Set[T]{
		b: bag.NewMutable(bag.Compact[T]()),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add an item to the set.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.b.Contains(item) {
		return false
	}
	s.b.Add(item)

	return true
}

// Remove an item from the set.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.RemoveAll(item) > 0
}

// Clear removes all items from the set.
func (s *Set[T]) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.b.Clear()

	return s.b.Len() == 0
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.Contains(items...)
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.Len()
}

// ForEach iterates over items and executes the provided function against
// each item.
func (s *Set[T]) ForEach(fn func(T) bool) {
	for item := range s.b.DistinctValues() {
		if fn(item) {
			break
		}
	}
}

// String provides a string representation of the set.
func (s *Set[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, s.b.Len())

	for item := range s.b.DistinctValues() {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}

// ToSlice returns the set as a slice.
func (s *Set[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.ToSlice()
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	for item := range o.b.DistinctValues() {
		if !s.b.Contains(item) {
			return false
		}
	}

	return true
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	for item := range s.b.DistinctValues() {
		if !o.b.Contains(item) {
			return false
		}
	}

	return true
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *Set[T]) Equal(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	if s.b.Len() != o.b.Len() {
		return false
	}

	for item := range s.b.DistinctValues() {
		if !o.b.Contains(item) {
			return false
		}
	}

	return true
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set[T]) Intersect(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	return &Set[T]{b: s.b.Intersect(o.b)}
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	return &Set[T]{b: s.b.Diff(o.b)}
}

// SymmetricDifference returns a new set with all items which are in either
// set, but not both.
func (s *Set[T]) SymmetricDifference(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	union := s.b.MaxUnion(o.b)

	return &Set[T]{b: union.Diff(s.b.Intersect(o.b))}
}
