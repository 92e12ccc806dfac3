// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// options.go — functional options for cases, weight sources and stores.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand; the default seed is fixed.
//   • Later options override earlier ones.

package fixtures

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a harness component by mutating its config.
type Option func(*config)

// WithSeed seeds a new *rand.Rand for random weight draws.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit rng. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixtures: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the random weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("fixtures: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithEpsilon sets the ApproxEqual tolerance used by checks. It takes
// precedence over a per-case epsilon recorded in a manifest.
// Panics if eps is negative or NaN.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic(fmt.Sprintf("fixtures: WithEpsilon(%g)", eps))
	}
	return func(c *config) {
		c.epsilon = eps
		c.epsilonSet = true
	}
}

// WithQuantizeDelta sets the delta of quantization checks.
// Panics unless delta is positive and finite.
func WithQuantizeDelta(delta float64) Option {
	if !(delta > 0) || math.IsInf(delta, 1) {
		panic(fmt.Sprintf("fixtures: WithQuantizeDelta(%g)", delta))
	}
	return func(c *config) {
		c.quantizeDelta = delta
	}
}

// WithSamples sets how many random weights a semiring check draws.
// Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("fixtures: WithSamples(%d)", n))
	}
	return func(c *config) {
		c.samples = n
	}
}

// WithLogger sets the logger of a Store. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("fixtures: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithCacheSize sets how many decoded automata a Store keeps.
// Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("fixtures: WithCacheSize(%d)", n))
	}
	return func(c *config) {
		c.cacheSize = n
	}
}
