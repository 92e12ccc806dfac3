// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// config.go — internal configuration, deterministic defaults and the YAML
// harness configuration.
//
// Deterministic defaults:
//   • rng           = rand.New(rand.NewSource(DefaultSeed))
//   • weightFn      = DefaultWeightFn   (uniform [0, 10))
//   • epsilon       = semiring.DefaultDelta
//   • quantizeDelta = semiring.DefaultDelta
//   • samples       = DefaultSamples
//   • logger        = zap.NewNop()
//   • cacheSize     = DefaultCacheSize

package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfst/semiring"
)

// Named defaults.
const (
	DefaultSeed      int64 = 1
	DefaultSamples         = 8
	DefaultCacheSize       = 128
)

// Distribution kinds accepted in Config.
const (
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistExponential = "exponential"
	DistConstant    = "constant"
)

type config struct {
	rng           *rand.Rand
	weightFn      WeightFn
	epsilon       float64
	epsilonSet    bool
	quantizeDelta float64
	samples       int
	logger        *zap.Logger
	cacheSize     int
}

// newConfig applies opts over the defaults in order.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:           rand.New(rand.NewSource(DefaultSeed)),
		weightFn:      DefaultWeightFn,
		epsilon:       semiring.DefaultDelta,
		quantizeDelta: semiring.DefaultDelta,
		samples:       DefaultSamples,
		logger:        zap.NewNop(),
		cacheSize:     DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Config is the file form of the harness options.
//
//	seed: 7
//	epsilon: 0.0009765625
//	quantize_delta: 0.0009765625
//	samples: 8
//	cache_size: 128
//	distribution:
//	  kind: normal
//	  mean: 5
//	  stddev: 1
//
// Zero values mean "use the default".
type Config struct {
	Seed          int64        `yaml:"seed"`
	Epsilon       float64      `yaml:"epsilon,omitempty"`
	QuantizeDelta float64      `yaml:"quantize_delta,omitempty"`
	Samples       int          `yaml:"samples,omitempty"`
	CacheSize     int          `yaml:"cache_size,omitempty"`
	Distribution  Distribution `yaml:"distribution"`
}

// Distribution selects and parameterizes a WeightFn.
type Distribution struct {
	Kind   string  `yaml:"kind"`
	Min    float64 `yaml:"min,omitempty"`
	Max    float64 `yaml:"max,omitempty"`
	Mean   float64 `yaml:"mean,omitempty"`
	StdDev float64 `yaml:"stddev,omitempty"`
	Rate   float64 `yaml:"rate,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
}

// DefaultConfig returns the configuration equivalent to passing no options.
func DefaultConfig() Config {
	return Config{
		Seed:          DefaultSeed,
		Epsilon:       semiring.DefaultDelta,
		QuantizeDelta: semiring.DefaultDelta,
		Samples:       DefaultSamples,
		CacheSize:     DefaultCacheSize,
		Distribution:  Distribution{Kind: DistUniform, Min: DefaultUniformMin, Max: DefaultUniformMax},
	}
}

// ParseConfig decodes a YAML configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// a distribution block replaces the default one as a whole
	cfg.Distribution = Distribution{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrOptionViolation, err)
	}
	if cfg.Distribution == (Distribution{}) {
		cfg.Distribution = DefaultConfig().Distribution
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes the YAML configuration at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Options converts c into Options, validating every value. Unlike the WithX
// constructors it reports ErrOptionViolation instead of panicking. A default
// epsilon yields no WithEpsilon, so per-case manifest tolerances still apply.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithSeed(c.Seed)}
	if c.Epsilon < 0 || c.Epsilon != c.Epsilon {
		return nil, fmt.Errorf("Config: epsilon %g: %w", c.Epsilon, ErrOptionViolation)
	}
	if c.Epsilon > 0 && c.Epsilon != semiring.DefaultDelta {
		opts = append(opts, WithEpsilon(c.Epsilon))
	}
	if c.QuantizeDelta < 0 || c.QuantizeDelta != c.QuantizeDelta || math.IsInf(c.QuantizeDelta, 1) {
		return nil, fmt.Errorf("Config: quantize_delta %g: %w", c.QuantizeDelta, ErrOptionViolation)
	}
	if c.QuantizeDelta > 0 {
		opts = append(opts, WithQuantizeDelta(c.QuantizeDelta))
	}
	if c.Samples < 0 {
		return nil, fmt.Errorf("Config: samples %d: %w", c.Samples, ErrOptionViolation)
	}
	if c.Samples > 0 {
		opts = append(opts, WithSamples(c.Samples))
	}
	if c.CacheSize < 0 {
		return nil, fmt.Errorf("Config: cache_size %d: %w", c.CacheSize, ErrOptionViolation)
	}
	if c.CacheSize > 0 {
		opts = append(opts, WithCacheSize(c.CacheSize))
	}
	fn, err := c.Distribution.weightFn()
	if err != nil {
		return nil, err
	}
	return append(opts, WithWeightFn(fn)), nil
}

// weightFn builds the WeightFn of d after checking its parameters.
func (d Distribution) weightFn() (WeightFn, error) {
	bad := func(format string, args ...any) (WeightFn, error) {
		return nil, fmt.Errorf("Config: distribution %q: %s: %w", d.Kind, fmt.Sprintf(format, args...), ErrOptionViolation)
	}
	switch d.Kind {
	case "", DistUniform:
		if d.Min == 0 && d.Max == 0 {
			return DefaultWeightFn, nil
		}
		if !(d.Min <= d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
			return bad("need finite min <= max, got %g, %g", d.Min, d.Max)
		}
		return UniformWeightFn(d.Min, d.Max), nil
	case DistNormal:
		if !(d.StdDev >= 0) {
			return bad("stddev %g < 0", d.StdDev)
		}
		return NormalWeightFn(d.Mean, d.StdDev), nil
	case DistExponential:
		if !(d.Rate > 0) {
			return bad("rate %g <= 0", d.Rate)
		}
		return ExponentialWeightFn(d.Rate), nil
	case DistConstant:
		if d.Value != d.Value {
			return bad("NaN value")
		}
		return ConstantWeightFn(d.Value), nil
	default:
		return bad("unknown kind")
	}
}
