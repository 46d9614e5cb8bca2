// SPDX-License-Identifier: MIT
// Package: sparse
//
// random.go - Random(rows, cols, density) generator.
//
// Model:
//   - Bernoulli trial per cell: each (i,j) in [0,rows)×[0,cols) is stored
//     independently with probability density.
//   - Values come from the configured value function and are never zero.
//
// Determinism:
//   - Fixed trial order: i asc, then j asc.
//   - Same seed and options ⇒ same matrix. seed==0 maps to defaultRandomSeed.
//
// Complexity: O(rows·cols) trials, O(nnz) memory.

package sparse

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	opRandom = "Random"

	// defaultRandomSeed is used when callers pass seed==0.
	defaultRandomSeed int64 = 1

	// DefaultRandomMin and DefaultRandomMax bound generated values.
	DefaultRandomMin int64 = -9
	DefaultRandomMax int64 = 9

	densityMin = 0.0
	densityMax = 1.0
)

// RandomOption configures Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	seed     int64
	min, max int64
	valueFn  func(*rand.Rand) int64
}

// WithSeed sets the RNG seed; 0 selects the fixed default seed.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.seed = seed }
}

// WithValueRange draws values uniformly from [lo, hi], skipping 0.
// The range must contain a non-zero value.
func WithValueRange(lo, hi int64) RandomOption {
	return func(c *randomConfig) { c.min, c.max = lo, hi }
}

// WithValueFunc overrides value generation. A zero result is redrawn, so
// fn must eventually return a non-zero value.
func WithValueFunc(fn func(*rand.Rand) int64) RandomOption {
	return func(c *randomConfig) { c.valueFn = fn }
}

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ default seed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRandomSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Random returns a rows×cols matrix where each cell is stored with
// probability density.
func Random(rows, cols int, density float64, opts ...RandomOption) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opRandom, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if density < densityMin || density > densityMax || math.IsNaN(density) {
		return nil, sparseErrorf(opRandom, fmt.Errorf("density=%g: %w", density, ErrInvalidDensity))
	}

	cfg := randomConfig{min: DefaultRandomMin, max: DefaultRandomMax}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	if cfg.valueFn == nil {
		if cfg.min > cfg.max || (cfg.min == 0 && cfg.max == 0) {
			return nil, sparseErrorf(opRandom, fmt.Errorf("[%d,%d]: %w", cfg.min, cfg.max, ErrInvalidValueRange))
		}
		lo, span := cfg.min, uint64(cfg.max-cfg.min)+1
		cfg.valueFn = func(rng *rand.Rand) int64 {
			if span == 0 { // full int64 range wrapped around
				return int64(rng.Uint64())
			}
			return lo + int64(rng.Uint64()%span)
		}
	}

	rng := rngFromSeed(cfg.seed)
	m := newMatrix(rows, cols, int(float64(rows*cols)*density))
	var (
		i, j int
		v    int64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Bernoulli trial; p==1 always passes because Float64 < 1.
			if rng.Float64() >= density {
				continue
			}
			v = cfg.valueFn(rng)
			for v == 0 {
				v = cfg.valueFn(rng)
			}
			m.entries[Key{Row: i, Col: j}] = v
		}
	}

	return m, nil
}
