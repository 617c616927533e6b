package bag

import "github.com/benbjohnson/immutable"

// A bucket holds every occurrence belonging to one equivalence class. All
// mutators are pure: they return a fresh bucket and never modify the
// receiver, which lets persistent tables share buckets freely.
//
// Callers must route lookups through a table first: calling removed,
// multiplicity-style queries, or the binary operations with an element that
// is not equivalent to the bucket's sentinel is a contract violation with an
// undefined result.
type bucket[T any] interface {
	// Representative element of the class, typically the first inserted.
	sentinel() T

	// Total number of occurrences; this is also the multiplicity of every
	// element equivalent to the sentinel.
	size() int

	// Records n more occurrences of elem.
	add(elem T, n int) bucket[T]

	// Drops up to n occurrences equal (not merely equivalent) to elem.
	removed(elem T, n int) bucket[T]

	// Per-value multiplicity arithmetic against another bucket of the same
	// class: sum, difference floored at zero, minimum, and maximum.
	union(other bucket[T]) bucket[T]
	diff(other bucket[T]) bucket[T]
	intersect(other bucket[T]) bucket[T]
	maxUnion(other bucket[T]) bucket[T]

	// Collapses the bucket to one occurrence of each distinct value.
	distinct() bucket[T]

	// Reports whether other holds exactly the same values with the same
	// multiplicities.
	equal(other bucket[T]) bool

	// counts visits each distinct stored value with its multiplicity, each
	// visits every stored occurrence. Both stop early when fn returns
	// false.
	counts(fn func(elem T, n int) bool)
	each(fn func(elem T) bool)
}

// compactBucket stores only a count. Distinctness between equivalent values
// is lost, which is fine when the equivalence is structural equality.
type compactBucket[T any] struct {
	cfg *Config[T]
	rep T
	n   int
}

func newCompactBucket[T any](cfg *Config[T], sentinel T) bucket[T] {
	return &compactBucket[T]{cfg: cfg, rep: sentinel}
}

func (b *compactBucket[T]) withCount(n int) bucket[T] {
	return &compactBucket[T]{cfg: b.cfg, rep: b.rep, n: n}
}

func (b *compactBucket[T]) sentinel() T { return b.rep }
func (b *compactBucket[T]) size() int   { return b.n }

func (b *compactBucket[T]) add(elem T, n int) bucket[T] {
	return b.withCount(b.n + n)
}

func (b *compactBucket[T]) removed(elem T, n int) bucket[T] {
	if n > b.n {
		n = b.n
	}
	return b.withCount(b.n - n)
}

func (b *compactBucket[T]) union(other bucket[T]) bucket[T] {
	return b.withCount(b.n + other.size())
}

func (b *compactBucket[T]) diff(other bucket[T]) bucket[T] {
	n := b.n - other.size()
	if n < 0 {
		n = 0
	}
	return b.withCount(n)
}

func (b *compactBucket[T]) intersect(other bucket[T]) bucket[T] {
	n := b.n
	if o := other.size(); o < n {
		n = o
	}
	return b.withCount(n)
}

func (b *compactBucket[T]) maxUnion(other bucket[T]) bucket[T] {
	n := b.n
	if o := other.size(); o > n {
		n = o
	}
	return b.withCount(n)
}

func (b *compactBucket[T]) distinct() bucket[T] {
	if b.n <= 1 {
		return b
	}
	return b.withCount(1)
}

func (b *compactBucket[T]) equal(other bucket[T]) bool {
	return b.n == other.size()
}

func (b *compactBucket[T]) counts(fn func(elem T, n int) bool) {
	if b.n > 0 {
		fn(b.rep, b.n)
	}
}

func (b *compactBucket[T]) each(fn func(elem T) bool) {
	for i := 0; i < b.n; i++ {
		if !fn(b.rep) {
			return
		}
	}
}

// keepAllBucket retains every inserted occurrence in insertion order, so
// equivalent-but-unequal values stay distinguishable. Backed by a persistent
// list; appends share structure with the previous version.
type keepAllBucket[T comparable] struct {
	cfg   *Config[T]
	rep   T
	elems *immutable.List[T]
}

func newKeepAllBucket[T comparable](cfg *Config[T], sentinel T) bucket[T] {
	return &keepAllBucket[T]{cfg: cfg, rep: sentinel, elems: immutable.NewList[T]()}
}

func (b *keepAllBucket[T]) with(elems *immutable.List[T]) bucket[T] {
	return &keepAllBucket[T]{cfg: b.cfg, rep: b.rep, elems: elems}
}

func (b *keepAllBucket[T]) sentinel() T { return b.rep }
func (b *keepAllBucket[T]) size() int   { return b.elems.Len() }

func (b *keepAllBucket[T]) add(elem T, n int) bucket[T] {
	elems := b.elems
	for i := 0; i < n; i++ {
		elems = elems.Append(elem)
	}
	return b.with(elems)
}

func (b *keepAllBucket[T]) removed(elem T, n int) bucket[T] {
	lb := immutable.NewListBuilder[T]()
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if n > 0 && v == elem {
			n--
			continue
		}
		lb.Append(v)
	}
	return b.with(lb.List())
}

func (b *keepAllBucket[T]) union(other bucket[T]) bucket[T] {
	elems := b.elems
	other.each(func(v T) bool {
		elems = elems.Append(v)
		return true
	})
	return b.with(elems)
}

func (b *keepAllBucket[T]) diff(other bucket[T]) bucket[T] {
	drop := rawCounts(other)
	lb := immutable.NewListBuilder[T]()
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if drop[v] > 0 {
			drop[v]--
			continue
		}
		lb.Append(v)
	}
	return b.with(lb.List())
}

func (b *keepAllBucket[T]) intersect(other bucket[T]) bucket[T] {
	keep := rawCounts(other)
	lb := immutable.NewListBuilder[T]()
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if keep[v] > 0 {
			keep[v]--
			lb.Append(v)
		}
	}
	return b.with(lb.List())
}

func (b *keepAllBucket[T]) maxUnion(other bucket[T]) bucket[T] {
	mine := rawCounts(b)
	elems := b.elems
	other.counts(func(v T, n int) bool {
		for i := mine[v]; i < n; i++ {
			elems = elems.Append(v)
		}
		return true
	})
	return b.with(elems)
}

func (b *keepAllBucket[T]) distinct() bucket[T] {
	seen := make(map[T]struct{})
	lb := immutable.NewListBuilder[T]()
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		lb.Append(v)
	}
	return b.with(lb.List())
}

func (b *keepAllBucket[T]) equal(other bucket[T]) bool {
	if b.size() != other.size() {
		return false
	}
	mine := rawCounts(b)
	equal := true
	other.counts(func(v T, n int) bool {
		equal = mine[v] == n
		return equal
	})
	return equal
}

func (b *keepAllBucket[T]) counts(fn func(elem T, n int) bool) {
	tally := make(map[T]int)
	var order []T
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if tally[v] == 0 {
			order = append(order, v)
		}
		tally[v]++
	}
	for _, v := range order {
		if !fn(v, tally[v]) {
			return
		}
	}
}

func (b *keepAllBucket[T]) each(fn func(elem T) bool) {
	itr := b.elems.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if !fn(v) {
			return
		}
	}
}

// nestedBucket stores a sub-bag of multiplicities: a persistent mapping from
// each distinct value in the class to its own count. Used when the
// equivalence is coarser than structural equality but retaining every
// occurrence would be wasteful.
type nestedBucket[T comparable] struct {
	cfg   *Config[T]
	rep   T
	inner *immutable.Map[T, int]
	total int
}

func newNestedBucket[T comparable](cfg *Config[T], sentinel T) bucket[T] {
	return &nestedBucket[T]{
		cfg:   cfg,
		rep:   sentinel,
		inner: immutable.NewMap[T, int](cfg.rawHasher),
	}
}

func (b *nestedBucket[T]) with(inner *immutable.Map[T, int], total int) bucket[T] {
	return &nestedBucket[T]{cfg: b.cfg, rep: b.rep, inner: inner, total: total}
}

func (b *nestedBucket[T]) sentinel() T { return b.rep }
func (b *nestedBucket[T]) size() int   { return b.total }

func (b *nestedBucket[T]) add(elem T, n int) bucket[T] {
	c, _ := b.inner.Get(elem)
	return b.with(b.inner.Set(elem, c+n), b.total+n)
}

func (b *nestedBucket[T]) removed(elem T, n int) bucket[T] {
	c, ok := b.inner.Get(elem)
	if !ok {
		return b
	}
	if n > c {
		n = c
	}
	if c == n {
		return b.with(b.inner.Delete(elem), b.total-n)
	}
	return b.with(b.inner.Set(elem, c-n), b.total-n)
}

func (b *nestedBucket[T]) union(other bucket[T]) bucket[T] {
	inner, total := b.inner, b.total
	other.counts(func(v T, n int) bool {
		c, _ := inner.Get(v)
		inner = inner.Set(v, c+n)
		total += n
		return true
	})
	return b.with(inner, total)
}

func (b *nestedBucket[T]) diff(other bucket[T]) bucket[T] {
	inner, total := b.inner, b.total
	other.counts(func(v T, n int) bool {
		c, ok := inner.Get(v)
		if !ok {
			return true
		}
		if n >= c {
			inner = inner.Delete(v)
			total -= c
		} else {
			inner = inner.Set(v, c-n)
			total -= n
		}
		return true
	})
	return b.with(inner, total)
}

func (b *nestedBucket[T]) intersect(other bucket[T]) bucket[T] {
	theirs := rawCounts(other)
	inner := immutable.NewMap[T, int](b.cfg.rawHasher)
	total := 0
	itr := b.inner.Iterator()
	for !itr.Done() {
		v, c, _ := itr.Next()
		if o := theirs[v]; o > 0 {
			if o < c {
				c = o
			}
			inner = inner.Set(v, c)
			total += c
		}
	}
	return b.with(inner, total)
}

func (b *nestedBucket[T]) maxUnion(other bucket[T]) bucket[T] {
	inner, total := b.inner, b.total
	other.counts(func(v T, n int) bool {
		c, _ := inner.Get(v)
		if n > c {
			inner = inner.Set(v, n)
			total += n - c
		}
		return true
	})
	return b.with(inner, total)
}

func (b *nestedBucket[T]) distinct() bucket[T] {
	inner := immutable.NewMap[T, int](b.cfg.rawHasher)
	total := 0
	itr := b.inner.Iterator()
	for !itr.Done() {
		v, _, _ := itr.Next()
		inner = inner.Set(v, 1)
		total++
	}
	return b.with(inner, total)
}

func (b *nestedBucket[T]) equal(other bucket[T]) bool {
	if b.total != other.size() {
		return false
	}
	mine := rawCounts(b)
	equal := true
	other.counts(func(v T, n int) bool {
		equal = mine[v] == n
		return equal
	})
	return equal
}

func (b *nestedBucket[T]) counts(fn func(elem T, n int) bool) {
	itr := b.inner.Iterator()
	for !itr.Done() {
		v, c, _ := itr.Next()
		if !fn(v, c) {
			return
		}
	}
}

func (b *nestedBucket[T]) each(fn func(elem T) bool) {
	b.counts(func(v T, n int) bool {
		for i := 0; i < n; i++ {
			if !fn(v) {
				return false
			}
		}
		return true
	})
}

// rawCounts materializes a bucket's distinct values and their counts.
func rawCounts[T comparable](b bucket[T]) map[T]int {
	m := make(map[T]int)
	b.counts(func(v T, n int) bool {
		m[v] = n
		return true
	})
	return m
}
