package bag

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInconsistentConfig indicates that a configuration's equivalence
// relation disagrees with its discriminator.
var ErrInconsistentConfig = errors.New("bag: equivalence relation and discriminator disagree")

// Check audits a configuration against a sample of elements. A consistent
// configuration must hash equivalent elements identically (hash discipline)
// and order elements antisymmetrically (sorted discipline); the equivalence
// relation must also be symmetric. These are preconditions the bag
// operations assume without checking; a violation corrupts lookups
// silently. Run Check over representative inputs in tests.
//
// Each violation is logged through logger (zap.NewNop is used when nil) and
// the first error wraps ErrInconsistentConfig.
func Check[T any](cfg *Config[T], sample []T, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	violations := 0
	for i, a := range sample {
		for _, b := range sample[i+1:] {
			if cfg.ordered() {
				ab := cfg.comparer.Compare(a, b)
				ba := cfg.comparer.Compare(b, a)
				if (ab == 0) != (ba == 0) || (ab < 0) != (ba > 0) {
					violations++
					logger.Error("comparer is not antisymmetric",
						zap.Any("a", a),
						zap.Any("b", b),
						zap.Int("compareAB", ab),
						zap.Int("compareBA", ba),
					)
				}
				continue
			}
			if cfg.hasher.Equal(a, b) != cfg.hasher.Equal(b, a) {
				violations++
				logger.Error("equivalence relation is not symmetric",
					zap.Any("a", a),
					zap.Any("b", b),
				)
				continue
			}
			if !cfg.hasher.Equal(a, b) {
				continue
			}
			ha, hb := cfg.hasher.Hash(a), cfg.hasher.Hash(b)
			if ha != hb {
				violations++
				logger.Error("equivalent elements hash differently",
					zap.Any("a", a),
					zap.Any("b", b),
					zap.Uint32("hashA", ha),
					zap.Uint32("hashB", hb),
				)
			}
		}
	}
	if violations > 0 {
		return fmt.Errorf("%w: %d violation(s) in a sample of %d", ErrInconsistentConfig, violations, len(sample))
	}
	return nil
}
