package bag

import "github.com/benbjohnson/immutable"

// A table maps each equivalence class to its bucket, keyed by the class
// sentinel. Representatives of distinct buckets are pairwise non-equivalent.
type table[T any] interface {
	// Returns the bucket whose class contains elem, if any.
	get(elem T) (bucket[T], bool)

	// Number of buckets.
	len() int

	// Visits every bucket; stops early when fn returns false. Visits in
	// ascending sentinel order under the sorted discipline, unspecified
	// order otherwise.
	each(fn func(b bucket[T]) bool)
}

// ptable is a persistent table: updates return a new table sharing
// unaffected nodes with the receiver, which is never modified. Tables
// already published through a Bag therefore stay valid forever.
type ptable[T any] interface {
	table[T]

	// Inserts or replaces the bucket for its sentinel's class.
	with(b bucket[T]) ptable[T]

	// Drops the class containing sentinel.
	without(sentinel T) ptable[T]
}

// mtable is an in-place table owned by exactly one Mutable bag.
type mtable[T any] interface {
	table[T]

	put(b bucket[T])
	del(sentinel T)
}

func newPtable[T any](cfg *Config[T]) ptable[T] {
	if cfg.ordered() {
		return sortedTable[T]{m: immutable.NewSortedMap[T, bucket[T]](cfg.comparer)}
	}
	return hashTable[T]{m: immutable.NewMap[T, bucket[T]](cfg.hasher)}
}

func newMtable[T any](cfg *Config[T]) mtable[T] {
	if cfg.ordered() {
		return &mutableSortedTable[T]{m: immutable.NewSortedMap[T, bucket[T]](cfg.comparer)}
	}
	return &mutableHashTable[T]{cfg: cfg, slots: make(map[uint32][]bucket[T])}
}

// hashTable indexes buckets with a persistent hash-array-mapped trie. The
// trie's hasher is the configuration's discriminator, so probing with any
// element of a class finds that class's bucket.
type hashTable[T any] struct {
	m *immutable.Map[T, bucket[T]]
}

func (t hashTable[T]) get(elem T) (bucket[T], bool) {
	return t.m.Get(elem)
}

func (t hashTable[T]) len() int {
	return t.m.Len()
}

func (t hashTable[T]) each(fn func(b bucket[T]) bool) {
	itr := t.m.Iterator()
	for !itr.Done() {
		_, b, _ := itr.Next()
		if !fn(b) {
			return
		}
	}
}

func (t hashTable[T]) with(b bucket[T]) ptable[T] {
	return hashTable[T]{m: t.m.Set(b.sentinel(), b)}
}

func (t hashTable[T]) without(sentinel T) ptable[T] {
	return hashTable[T]{m: t.m.Delete(sentinel)}
}

// sortedTable indexes buckets with a persistent sorted map, giving ordered
// traversal. Updates copy the path from root to leaf and share the rest.
type sortedTable[T any] struct {
	m *immutable.SortedMap[T, bucket[T]]
}

func (t sortedTable[T]) get(elem T) (bucket[T], bool) {
	return t.m.Get(elem)
}

func (t sortedTable[T]) len() int {
	return t.m.Len()
}

func (t sortedTable[T]) each(fn func(b bucket[T]) bool) {
	itr := t.m.Iterator()
	for !itr.Done() {
		_, b, _ := itr.Next()
		if !fn(b) {
			return
		}
	}
}

func (t sortedTable[T]) with(b bucket[T]) ptable[T] {
	return sortedTable[T]{m: t.m.Set(b.sentinel(), b)}
}

func (t sortedTable[T]) without(sentinel T) ptable[T] {
	return sortedTable[T]{m: t.m.Delete(sentinel)}
}

// mutableHashTable buckets by discriminator hash and confirms matches with
// the equivalence relation, so non-equivalent sentinels colliding on a hash
// stay separate.
type mutableHashTable[T any] struct {
	cfg   *Config[T]
	slots map[uint32][]bucket[T]
	n     int
}

func (t *mutableHashTable[T]) get(elem T) (bucket[T], bool) {
	for _, b := range t.slots[t.cfg.hasher.Hash(elem)] {
		if t.cfg.hasher.Equal(b.sentinel(), elem) {
			return b, true
		}
	}
	return nil, false
}

func (t *mutableHashTable[T]) len() int {
	return t.n
}

func (t *mutableHashTable[T]) each(fn func(b bucket[T]) bool) {
	for _, bs := range t.slots {
		for _, b := range bs {
			if !fn(b) {
				return
			}
		}
	}
}

func (t *mutableHashTable[T]) put(b bucket[T]) {
	h := t.cfg.hasher.Hash(b.sentinel())
	slot := t.slots[h]
	for i, cur := range slot {
		if t.cfg.hasher.Equal(cur.sentinel(), b.sentinel()) {
			slot[i] = b
			return
		}
	}
	t.slots[h] = append(slot, b)
	t.n++
}

func (t *mutableHashTable[T]) del(sentinel T) {
	h := t.cfg.hasher.Hash(sentinel)
	slot := t.slots[h]
	for i, cur := range slot {
		if t.cfg.hasher.Equal(cur.sentinel(), sentinel) {
			slot[i] = slot[len(slot)-1]
			slot = slot[:len(slot)-1]
			if len(slot) == 0 {
				delete(t.slots, h)
			} else {
				t.slots[h] = slot
			}
			t.n--
			return
		}
	}
}

// mutableSortedTable wraps a persistent sorted map behind in-place
// semantics. The Mutable bag owns it exclusively, so swapping the root on
// every update is observably identical to mutating the tree.
type mutableSortedTable[T any] struct {
	m *immutable.SortedMap[T, bucket[T]]
}

func (t *mutableSortedTable[T]) get(elem T) (bucket[T], bool) {
	return t.m.Get(elem)
}

func (t *mutableSortedTable[T]) len() int {
	return t.m.Len()
}

func (t *mutableSortedTable[T]) each(fn func(b bucket[T]) bool) {
	itr := t.m.Iterator()
	for !itr.Done() {
		_, b, _ := itr.Next()
		if !fn(b) {
			return
		}
	}
}

func (t *mutableSortedTable[T]) put(b bucket[T]) {
	t.m = t.m.Set(b.sentinel(), b)
}

func (t *mutableSortedTable[T]) del(sentinel T) {
	t.m = t.m.Delete(sentinel)
}
