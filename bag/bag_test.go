package bag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countsOf snapshots a bag's class multiplicities keyed by sentinel.
func countsOf[T comparable](b Interface[T]) map[T]int {
	out := map[T]int{}
	for sentinel, n := range b.Multiplicities().All() {
		out[sentinel] = n
	}
	return out
}

func TestNew(t *testing.T) {
	b := New(Compact[int](), 1, 1, 2)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.Multiplicity(1))
	assert.Equal(t, 1, b.Multiplicity(2))
	assert.Equal(t, 0, b.Multiplicity(3))
}

func TestAdd(t *testing.T) {
	b := New(Compact[string]())
	b = b.Add("foo")
	b = b.AddCount("foo", 2)
	b = b.Add("bar")

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 3, b.Multiplicity("foo"))
	assert.Equal(t, 1, b.Multiplicity("bar"))
}

func TestAddCountNonPositive(t *testing.T) {
	b := New(Compact[int](), 1)

	assert.Same(t, b, b.AddCount(1, 0))
	assert.Same(t, b, b.AddCount(1, -3))
	assert.Equal(t, 1, b.Multiplicity(1))
}

func TestRemove(t *testing.T) {
	testCases := []struct {
		testName string
		removals int
		want     int
	}{
		{"one", 1, 2},
		{"two", 2, 1},
		{"all", 3, 0},
		{"over-removal floors at zero", 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			b := New(Compact[int](), 7, 7, 7)
			b = b.RemoveCount(7, tc.removals)

			assert.Equal(t, tc.want, b.Multiplicity(7))
			assert.Equal(t, tc.want, b.Len())
		})
	}
}

func TestRemoveDropsEmptyBucket(t *testing.T) {
	b := New(Compact[int](), 1, 2)
	b = b.RemoveCount(1, 5)

	assert.Equal(t, 1, b.Multiplicities().Len())
	assert.False(t, b.Contains(1))
}

func TestRemoveAll(t *testing.T) {
	b := New(Compact[int](), 1, 1, 1, 2)
	b = b.RemoveAll(1)

	assert.Equal(t, 0, b.Multiplicity(1))
	assert.Equal(t, 1, b.Len())
}

func TestWithMultiplicity(t *testing.T) {
	testCases := []struct {
		testName string
		n        int
	}{
		{"zero removes the class", 0},
		{"one", 1},
		{"five", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			b := New(Compact[int](), 4, 4, 4)
			b = b.WithMultiplicity(4, tc.n)

			assert.Equal(t, tc.n, b.Multiplicity(4))
		})
	}
}

func TestContains(t *testing.T) {
	b := New(Compact[string](), "foo", "foo", "bar")

	assert.True(t, b.Contains("foo"))
	assert.True(t, b.Contains("foo", "bar"))
	assert.False(t, b.Contains("foo", "baz"))

	b = b.RemoveCount("bar", 1)
	assert.False(t, b.Contains("bar"))
}

func TestPersistence(t *testing.T) {
	orig := New(Compact[int](), 1, 1, 2)

	derived := orig.Add(3).RemoveAll(1)

	// The original must not observe any mutation through shared structure.
	assert.Equal(t, map[int]int{1: 2, 2: 1}, countsOf[int](orig))
	assert.Equal(t, map[int]int{2: 1, 3: 1}, countsOf[int](derived))
}

func TestMultiplicitiesView(t *testing.T) {
	b := New(Compact[int](), 1, 1, 2)
	view := b.Multiplicities()

	assert.Equal(t, 2, view.Len())
	assert.Equal(t, 2, view.Get(1))
	assert.Equal(t, 1, view.Get(2))
	assert.Equal(t, 0, view.Get(9))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Bag{}", New(Compact[int]()).String())
	assert.Equal(t, "Bag{5, 5}", New(Compact[int](), 5, 5).String())
}

func TestToSlice(t *testing.T) {
	b := New(Compact[int](), 2, 2, 2)

	assert.Equal(t, []int{2, 2, 2}, b.ToSlice())
}

func TestEqual(t *testing.T) {
	cfg := Compact[int]()

	testCases := []struct {
		testName string
		a        *Bag[int]
		b        *Bag[int]
		want     bool
	}{
		{"equal", New(cfg, 1, 1, 2), New(cfg, 2, 1, 1), true},
		{"different multiplicity", New(cfg, 1, 1, 2), New(cfg, 1, 2, 2), false},
		{"different elements", New(cfg, 1, 2), New(cfg, 1, 3), false},
		{"both empty", New(cfg), New(cfg), true},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

func TestAllIsRestartable(t *testing.T) {
	b := New(Compact[int](), 1, 1, 2)
	seq := b.All()

	for range 2 {
		total := 0
		for v := range seq {
			total += v
		}
		assert.Equal(t, 4, total)
	}
}
