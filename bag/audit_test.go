package bag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// brokenHasher declares mod-3 equivalence but hashes by value, so
// equivalent elements land in different slots.
type brokenHasher struct{}

func (brokenHasher) Hash(v int) uint32 {
	return uint32(v)
}

func (brokenHasher) Equal(a, b int) bool {
	return mod3Hasher{}.Equal(a, b)
}

func TestCheckConsistent(t *testing.T) {
	sample := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	assert.NoError(t, Check(Compact[int](), sample, nil))
	assert.NoError(t, Check(KeepAllEquiv[int](mod3Hasher{}), sample, nil))
	assert.NoError(t, Check(CompactOrdered[int](intComparer{}), sample, nil))
	assert.NoError(t, Check(CompactOrderedEquiv[int](decadeComparer{}), sample, nil))
}

func TestCheckInconsistentHasher(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	err := Check(KeepAllEquiv[int](brokenHasher{}), []int{1, 4, 7}, zap.New(core))

	assert.ErrorIs(t, err, ErrInconsistentConfig)
	assert.Equal(t, 3, logs.Len(), "one log entry per violating pair")
	entry := logs.All()[0]
	assert.Equal(t, "equivalent elements hash differently", entry.Message)
}

// lopsidedComparer always claims a < b, violating antisymmetry.
type lopsidedComparer struct{}

func (lopsidedComparer) Compare(a, b int) int { return -1 }

func TestCheckInconsistentComparer(t *testing.T) {
	err := Check(CompactOrdered[int](lopsidedComparer{}), []int{1, 2}, nil)

	assert.ErrorIs(t, err, ErrInconsistentConfig)
}
