// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// weight_fn.go — random weight distributions and the typed WeightSource.
//
// Determinism:
//   - Every WeightFn is a pure function of the *rand.Rand state it is given.
//   - A nil rng yields DefaultWeight, so unseeded sources stay reproducible.

package fixtures

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/wfst/semiring"
)

// DefaultWeight is drawn whenever a WeightFn receives a nil rng.
const DefaultWeight float64 = 1

// Bounds of the default distribution.
const (
	DefaultUniformMin = 0.0
	DefaultUniformMax = 10.0
)

// WeightFn draws one raw weight value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn samples uniformly in [DefaultUniformMin, DefaultUniformMax).
func DefaultWeightFn(rng *rand.Rand) float64 {
	return UniformWeightFn(DefaultUniformMin, DefaultUniformMax)(rng)
}

// ConstantWeightFn always yields value. Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("fixtures: ConstantWeightFn(NaN)")
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics unless min <= max and both are finite.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if !(min <= max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("fixtures: UniformWeightFn: require finite min <= max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples from N(mean, stddev) clipped below at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("fixtures: NormalWeightFn: stddev must be >= 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn samples from Exp(rate), mean 1/rate. Panics if rate <= 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("fixtures: ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// WeightSource draws weights of type W from a WeightFn and its own rng.
// A WeightSource is not safe for concurrent use.
type WeightSource[W semiring.Semiring[W]] struct {
	rng *rand.Rand
	fn  WeightFn
}

// NewWeightSource builds a source from the rng and WeightFn of opts. Without
// WithSeed or WithRand the source is seeded with DefaultSeed.
func NewWeightSource[W semiring.Semiring[W]](opts ...Option) *WeightSource[W] {
	cfg := newConfig(opts...)
	return &WeightSource[W]{rng: cfg.rng, fn: cfg.weightFn}
}

// Next draws one weight.
func (s *WeightSource[W]) Next() W {
	return semiring.New[W](float32(s.fn(s.rng)))
}

// Draw returns n weights.
func (s *WeightSource[W]) Draw(n int) []W {
	out := make([]W, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, s.Next())
	}
	return out
}
