package bag

import "github.com/benbjohnson/immutable"

// builder accumulates elements and whole buckets into a working table. When
// a bucket for the same class is already present, builders merge through the
// bucket union operation, so combining semantics live in exactly one place.
type builder[T any] interface {
	add(elem T, n int)
	addBucket(b bucket[T])
}

// tableBuilder builds a persistent table through the immutable map builders,
// giving amortized-linear bulk construction. Finalizing more than once
// panics, matching the underlying builders.
type tableBuilder[T any] struct {
	cfg  *Config[T]
	mb   *immutable.MapBuilder[T, bucket[T]]
	sb   *immutable.SortedMapBuilder[T, bucket[T]]
	size int
}

func newTableBuilder[T any](cfg *Config[T]) *tableBuilder[T] {
	tb := &tableBuilder[T]{cfg: cfg}
	if cfg.ordered() {
		tb.sb = immutable.NewSortedMapBuilder[T, bucket[T]](cfg.comparer)
	} else {
		tb.mb = immutable.NewMapBuilder[T, bucket[T]](cfg.hasher)
	}
	return tb
}

func (tb *tableBuilder[T]) get(elem T) (bucket[T], bool) {
	if tb.sb != nil {
		return tb.sb.Get(elem)
	}
	return tb.mb.Get(elem)
}

func (tb *tableBuilder[T]) set(b bucket[T]) {
	if tb.sb != nil {
		tb.sb.Set(b.sentinel(), b)
	} else {
		tb.mb.Set(b.sentinel(), b)
	}
}

func (tb *tableBuilder[T]) add(elem T, n int) {
	if n <= 0 {
		return
	}
	b, ok := tb.get(elem)
	if !ok {
		b = tb.cfg.newBucket(tb.cfg, elem)
	}
	tb.set(b.add(elem, n))
	tb.size += n
}

func (tb *tableBuilder[T]) addBucket(b bucket[T]) {
	if b.size() == 0 {
		return
	}
	if cur, ok := tb.get(b.sentinel()); ok {
		b = cur.union(b)
		tb.size -= cur.size()
	}
	tb.set(b)
	tb.size += b.size()
}

func (tb *tableBuilder[T]) bag() *Bag[T] {
	var t ptable[T]
	if tb.sb != nil {
		t = sortedTable[T]{m: tb.sb.Map()}
	} else {
		t = hashTable[T]{m: tb.mb.Map()}
	}
	return &Bag[T]{cfg: tb.cfg, tbl: t, size: tb.size}
}

// mtableBuilder is the in-place mode: it writes straight into a table that
// the finished Mutable bag will own.
type mtableBuilder[T any] struct {
	cfg  *Config[T]
	tbl  mtable[T]
	size int
}

func newMtableBuilder[T any](cfg *Config[T]) *mtableBuilder[T] {
	return &mtableBuilder[T]{cfg: cfg, tbl: newMtable(cfg)}
}

func (mb *mtableBuilder[T]) add(elem T, n int) {
	if n <= 0 {
		return
	}
	b, ok := mb.tbl.get(elem)
	if !ok {
		b = mb.cfg.newBucket(mb.cfg, elem)
	}
	mb.tbl.put(b.add(elem, n))
	mb.size += n
}

func (mb *mtableBuilder[T]) addBucket(b bucket[T]) {
	if b.size() == 0 {
		return
	}
	if cur, ok := mb.tbl.get(b.sentinel()); ok {
		b = cur.union(b)
		mb.size -= cur.size()
	}
	mb.tbl.put(b)
	mb.size += b.size()
}

func (mb *mtableBuilder[T]) mutable() *Mutable[T] {
	return &Mutable[T]{cfg: mb.cfg, tbl: mb.tbl, size: mb.size}
}

// A Builder accumulates elements and produces an immutable Bag in amortized
// linear time, far cheaper than repeated Bag.Add for bulk construction.
//
// Bag finalizes the builder; calling it a second time panics. Builders are
// not safe for concurrent use.
type Builder[T any] struct {
	tb *tableBuilder[T]
}

// NewBuilder returns an empty builder for the given configuration.
func NewBuilder[T any](cfg *Config[T]) *Builder[T] {
	return &Builder[T]{tb: newTableBuilder(cfg)}
}

// Add records one occurrence of elem.
func (b *Builder[T]) Add(elem T) {
	b.tb.add(elem, 1)
}

// AddCount records n occurrences of elem. Non-positive n is a no-op.
func (b *Builder[T]) AddCount(elem T, n int) {
	b.tb.add(elem, n)
}

// Len returns the number of occurrences recorded so far.
func (b *Builder[T]) Len() int {
	return b.tb.size
}

// Bag finalizes the builder and returns the accumulated bag.
func (b *Builder[T]) Bag() *Bag[T] {
	return b.tb.bag()
}
