package bag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	cfg := Compact[int]()
	a := New(cfg, 1, 1, 2)
	b := New(cfg, 1, 2, 2)

	assert.Equal(t, map[int]int{1: 3, 2: 3}, countsOf[int](a.Union(b)))
}

func TestDiff(t *testing.T) {
	cfg := Compact[int]()

	testCases := []struct {
		testName string
		a        *Bag[int]
		b        *Bag[int]
		want     map[int]int
	}{
		{
			"floored at zero drops the class",
			New(cfg, 1, 1, 2),
			New(cfg, 1, 2, 2),
			map[int]int{1: 1},
		},
		{
			"disjoint",
			New(cfg, 1, 1),
			New(cfg, 2),
			map[int]int{1: 2},
		},
		{
			"self is empty",
			New(cfg, 1, 1, 2, 3),
			New(cfg, 1, 1, 2, 3),
			map[int]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, countsOf[int](tc.a.Diff(tc.b)))
		})
	}
}

func TestIntersect(t *testing.T) {
	cfg := Compact[int]()
	a := New(cfg, 1, 1, 2)
	b := New(cfg, 1, 2, 2)

	assert.Equal(t, map[int]int{1: 1, 2: 1}, countsOf[int](a.Intersect(b)))

	// Classes with no counterpart are dropped entirely.
	c := New(cfg, 9)
	assert.Equal(t, map[int]int{}, countsOf[int](a.Intersect(c)))
}

func TestMaxUnion(t *testing.T) {
	cfg := Compact[int]()
	a := New(cfg, 1, 1, 2)
	b := New(cfg, 1, 2, 2)

	assert.Equal(t, map[int]int{1: 2, 2: 2}, countsOf[int](a.MaxUnion(b)))

	// Asymmetric operands: classes unique to either side survive.
	c := New(cfg, 3, 3)
	assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 2}, countsOf[int](a.MaxUnion(c)))
}

func TestDistinct(t *testing.T) {
	b := New(Compact[int](), 1, 1, 1, 2, 2, 3)
	d := b.Distinct()

	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, countsOf[int](d))
	assert.True(t, d.Equal(d.Distinct()), "distinct must be idempotent")
}

func TestMostCommon(t *testing.T) {
	b := New(Compact[int](), 1, 1, 1, 2, 3, 3, 3)

	assert.Equal(t, map[int]int{1: 3, 3: 3}, countsOf[int](b.MostCommon()))
	assert.Equal(t, map[int]int{2: 1}, countsOf[int](b.LeastCommon()))
}

func TestMostCommonEmpty(t *testing.T) {
	b := New(Compact[int]())

	assert.Equal(t, 0, b.MostCommon().Len())
	assert.Equal(t, 0, b.LeastCommon().Len())
}

// sliceCounts tallies a slice the way a compact bag should.
func sliceCounts(xs []byte) map[byte]int {
	out := map[byte]int{}
	for _, x := range xs {
		out[x]++
	}
	return out
}

// TestMultisetLaws checks the algebra against reference count maps on
// randomized inputs: union sums, diff subtracts floored at zero, intersect
// takes the minimum, and maxUnion takes the maximum.
func TestMultisetLaws(t *testing.T) {
	cfg := Compact[byte]()

	for seed := int64(0); seed < 50; seed++ {
		f := fuzz.NewWithSeed(seed).NumElements(0, 40)

		var xs, ys []byte
		f.Fuzz(&xs)
		f.Fuzz(&ys)
		// Narrow the domain so multiplicities above one actually occur.
		for i := range xs {
			xs[i] %= 8
		}
		for i := range ys {
			ys[i] %= 8
		}

		a := New(cfg, xs...)
		b := New(cfg, ys...)
		ca := sliceCounts(xs)
		cb := sliceCounts(ys)

		want := map[string]map[byte]int{
			"union":     {},
			"diff":      {},
			"intersect": {},
			"maxUnion":  {},
		}
		for e := byte(0); e < 8; e++ {
			na, nb := ca[e], cb[e]
			if n := na + nb; n > 0 {
				want["union"][e] = n
			}
			if n := na - nb; n > 0 {
				want["diff"][e] = n
			}
			if n := min(na, nb); n > 0 {
				want["intersect"][e] = n
			}
			if n := max(na, nb); n > 0 {
				want["maxUnion"][e] = n
			}
		}

		got := map[string]map[byte]int{
			"union":     countsOf[byte](a.Union(b)),
			"diff":      countsOf[byte](a.Diff(b)),
			"intersect": countsOf[byte](a.Intersect(b)),
			"maxUnion":  countsOf[byte](a.MaxUnion(b)),
		}

		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("seed %d: algebra mismatch (-want +got):\n%s", seed, diff)
		}
	}
}
