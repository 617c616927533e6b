package bag

import "iter"

// The multiset algebra, written once against the table and builder
// contracts and shared by the persistent and in-place variants. Every
// binary operation does one lookup per bucket of either operand.

func unionInto[T any](a, b table[T], out builder[T]) {
	a.each(func(ab bucket[T]) bool {
		out.addBucket(ab)
		return true
	})
	// addBucket merges same-class buckets through bucket union.
	b.each(func(bb bucket[T]) bool {
		out.addBucket(bb)
		return true
	})
}

func diffInto[T any](a, b table[T], out builder[T]) {
	a.each(func(ab bucket[T]) bool {
		if bb, ok := b.get(ab.sentinel()); ok {
			out.addBucket(ab.diff(bb))
		} else {
			out.addBucket(ab)
		}
		return true
	})
}

func intersectInto[T any](a, b table[T], out builder[T]) {
	a.each(func(ab bucket[T]) bool {
		if bb, ok := b.get(ab.sentinel()); ok {
			out.addBucket(ab.intersect(bb))
		}
		return true
	})
}

func maxUnionInto[T any](a, b table[T], out builder[T]) {
	a.each(func(ab bucket[T]) bool {
		if bb, ok := b.get(ab.sentinel()); ok {
			out.addBucket(ab.maxUnion(bb))
		} else {
			out.addBucket(ab)
		}
		return true
	})
	// Classes of b not touched above.
	b.each(func(bb bucket[T]) bool {
		if _, ok := a.get(bb.sentinel()); !ok {
			out.addBucket(bb)
		}
		return true
	})
}

func distinctInto[T any](a table[T], out builder[T]) {
	a.each(func(ab bucket[T]) bool {
		out.addBucket(ab.distinct())
		return true
	})
}

// extremesInto copies the buckets whose size matches the bag-wide maximum
// (most true) or minimum (most false) into out.
func extremesInto[T any](a table[T], out builder[T], most bool) {
	ext := -1
	a.each(func(b bucket[T]) bool {
		s := b.size()
		if ext == -1 || (most && s > ext) || (!most && s < ext) {
			ext = s
		}
		return true
	})
	if ext == -1 {
		return
	}
	a.each(func(b bucket[T]) bool {
		if b.size() == ext {
			out.addBucket(b)
		}
		return true
	})
}

func tablesEqual[T any](a, b table[T]) bool {
	if a.len() != b.len() {
		return false
	}
	equal := true
	a.each(func(ab bucket[T]) bool {
		bb, ok := b.get(ab.sentinel())
		equal = ok && ab.equal(bb)
		return equal
	})
	return equal
}

func allSeq[T any](t table[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.each(func(b bucket[T]) bool {
			more := true
			b.each(func(v T) bool {
				more = yield(v)
				return more
			})
			return more
		})
	}
}

func distinctSeq[T any](t table[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.each(func(b bucket[T]) bool {
			more := true
			b.counts(func(v T, _ int) bool {
				more = yield(v)
				return more
			})
			return more
		})
	}
}
