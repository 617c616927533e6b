package bag

import "errors"

// ErrEmpty is returned by folds that have no identity element when applied
// to an empty bag.
var ErrEmpty = errors.New("bag: empty bag")

// Number covers the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ReduceLeft folds every occurrence with fn, seeding the accumulator with
// the first occurrence. Returns ErrEmpty for an empty bag.
func ReduceLeft[T any](b Interface[T], fn func(acc, elem T) T) (T, error) {
	var acc T
	first := true
	for v := range b.All() {
		if first {
			acc, first = v, false
			continue
		}
		acc = fn(acc, v)
	}
	if first {
		return acc, ErrEmpty
	}
	return acc, nil
}

// Min returns the smallest occurrence according to less. Returns ErrEmpty
// for an empty bag.
func Min[T any](b Interface[T], less func(a, b T) bool) (T, error) {
	return ReduceLeft(b, func(acc, elem T) T {
		if less(elem, acc) {
			return elem
		}
		return acc
	})
}

// Max returns the largest occurrence according to less. Returns ErrEmpty
// for an empty bag.
func Max[T any](b Interface[T], less func(a, b T) bool) (T, error) {
	return ReduceLeft(b, func(acc, elem T) T {
		if less(acc, elem) {
			return elem
		}
		return acc
	})
}

// Count returns the number of occurrences satisfying pred.
func Count[T any](b Interface[T], pred func(T) bool) int {
	n := 0
	for v := range b.All() {
		if pred(v) {
			n++
		}
	}
	return n
}

// Forall reports whether every occurrence satisfies pred.
func Forall[T any](b Interface[T], pred func(T) bool) bool {
	for v := range b.All() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Exists reports whether at least one occurrence satisfies pred. It stops
// at the first match.
func Exists[T any](b Interface[T], pred func(T) bool) bool {
	_, ok := Find(b, pred)
	return ok
}

// Find returns the first occurrence satisfying pred.
func Find[T any](b Interface[T], pred func(T) bool) (T, bool) {
	for v := range b.All() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Sum returns the sum of all occurrences. An empty bag sums to zero.
func Sum[T Number](b Interface[T]) T {
	var sum T
	for v := range b.All() {
		sum += v
	}
	return sum
}

// Product returns the product of all occurrences. Returns ErrEmpty for an
// empty bag, since an empty product has no identity element here.
func Product[T Number](b Interface[T]) (T, error) {
	return ReduceLeft(b, func(acc, elem T) T { return acc * elem })
}
