package fixtures_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fixtures"
	"github.com/katalvlaran/wfst/semiring"
)

func TestWeightFnNilRng(t *testing.T) {
	for name, fn := range map[string]fixtures.WeightFn{
		"uniform":     fixtures.UniformWeightFn(2, 3),
		"normal":      fixtures.NormalWeightFn(5, 1),
		"exponential": fixtures.ExponentialWeightFn(2),
		"default":     fixtures.DefaultWeightFn,
	} {
		assert.Equal(t, fixtures.DefaultWeight, fn(nil), name)
	}
	assert.Equal(t, 4.5, fixtures.ConstantWeightFn(4.5)(nil))
}

func TestWeightFnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	uniform := fixtures.UniformWeightFn(2, 3)
	normal := fixtures.NormalWeightFn(0, 10)
	exp := fixtures.ExponentialWeightFn(0.5)
	for i := 0; i < 1000; i++ {
		v := uniform(rng)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 3.0)
		require.GreaterOrEqual(t, normal(rng), 0.0)
		require.GreaterOrEqual(t, exp(rng), 0.0)
	}
	assert.Equal(t, 7.0, fixtures.UniformWeightFn(7, 7)(rng))
}

func TestWeightFnPanics(t *testing.T) {
	assert.Panics(t, func() { fixtures.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { fixtures.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { fixtures.ExponentialWeightFn(0) })
}

func TestWeightSourceDeterministic(t *testing.T) {
	a := fixtures.NewWeightSource[semiring.LogWeight](fixtures.WithSeed(42)).Draw(16)
	b := fixtures.NewWeightSource[semiring.LogWeight](fixtures.WithSeed(42)).Draw(16)
	c := fixtures.NewWeightSource[semiring.LogWeight](fixtures.WithSeed(43)).Draw(16)
	require.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	d := fixtures.NewWeightSource[semiring.LogWeight]().Draw(4)
	e := fixtures.NewWeightSource[semiring.LogWeight](fixtures.WithSeed(fixtures.DefaultSeed)).Draw(4)
	assert.Equal(t, d, e, "default seed is fixed")

	consts := fixtures.NewWeightSource[semiring.TropicalWeight](fixtures.WithWeightFn(fixtures.ConstantWeightFn(2))).Draw(3)
	assert.Equal(t, []semiring.TropicalWeight{2, 2, 2}, consts)
	assert.Empty(t, fixtures.NewWeightSource[semiring.TropicalWeight]().Draw(-1))
}
