package bag

import "iter"

// Multiplicities is a read-only mapping view from equivalence classes to
// their multiplicities. It materializes nothing: lookups and iteration read
// through to the owning bag, so a view over a Mutable bag reflects later
// mutations.
type Multiplicities[T any] struct {
	src func() table[T]
}

// Get returns the multiplicity of elem's class, 0 if absent.
func (m Multiplicities[T]) Get(elem T) int {
	if b, ok := m.src().get(elem); ok {
		return b.size()
	}
	return 0
}

// Len returns the number of equivalence classes.
func (m Multiplicities[T]) Len() int {
	return m.src().len()
}

// All yields each class sentinel with the class multiplicity.
func (m Multiplicities[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		m.src().each(func(b bucket[T]) bool {
			return yield(b.sentinel(), b.size())
		})
	}
}
