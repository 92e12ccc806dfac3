package fixtures_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fixtures"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func TestFst010(t *testing.T) {
	c, err := fixtures.Fst010()
	require.NoError(t, err)
	assert.Equal(t, fixtures.CaseFst010, c.Name)
	assert.Equal(t, semiring.LogWeight(1.5), c.PlusWeight)
	assert.Equal(t, semiring.LogWeight(1.5), c.TimesWeight)
	assert.Equal(t, semiring.DefaultDelta, c.Epsilon)

	raw := c.Raw
	require.Equal(t, 5, raw.NumStates())
	start, ok := raw.Start()
	require.True(t, ok)
	assert.Equal(t, fst.StateID(0), start)
	final, err := raw.Final(3)
	require.NoError(t, err)
	assert.Equal(t, semiring.LogWeight(0.7), final)
	final, err = raw.Final(4)
	require.NoError(t, err)
	assert.Equal(t, semiring.LogWeight(0.8), final)

	arcs, err := raw.Arcs(0)
	require.NoError(t, err)
	assert.Equal(t, []fst.Arc[semiring.LogWeight]{
		{ILabel: 12, OLabel: 12, Weight: 0.3, NextState: 1},
		{ILabel: 14, OLabel: 14, Weight: 0.5, NextState: 2},
	}, slices.Collect(arcs))

	assert.Equal(t, []fixtures.Operation{fixtures.OpCompose, fixtures.OpConcat, fixtures.OpUnion}, c.Operations())
	compose, err := c.Operand(fixtures.OpCompose)
	require.NoError(t, err)
	assert.Equal(t, 3, compose.NumStates())
	assert.Equal(t, 2, compose.NumArcsTotal())

	concat, err := c.Operand(fixtures.OpConcat)
	require.NoError(t, err)
	union, err := c.Operand(fixtures.OpUnion)
	require.NoError(t, err)
	assert.True(t, fst.Equal[semiring.LogWeight](concat, union, 0))
	assert.Equal(t, 4, concat.NumArcsTotal())
}

func TestFst007(t *testing.T) {
	c, err := fixtures.Fst007()
	require.NoError(t, err)
	require.Equal(t, 5, c.Raw.NumStates())
	assert.Equal(t, 5, c.Raw.NumArcsTotal())
	final, err := c.Raw.Final(4)
	require.NoError(t, err)
	assert.Equal(t, semiring.TropicalWeight(0.7), final)

	_, err = c.Operand(fixtures.OpCompose)
	require.ErrorIs(t, err, fixtures.ErrNoOperand)
	assert.Empty(t, c.Operations())
}

// TestTimesMappedCase checks the Times mapper of fst_010: every arc and final
// weight w becomes w ⊗ 1.5 and nothing else moves.
func TestTimesMappedCase(t *testing.T) {
	c, err := fixtures.Fst010()
	require.NoError(t, err)
	mapped, err := c.TimesMapped()
	require.NoError(t, err)

	require.NoError(t, fixtures.CheckMapped[semiring.LogWeight](c.Raw, mapped,
		func(w semiring.LogWeight) (semiring.LogWeight, error) { return w.Times(1.5) }, 1e-6))

	arcs, err := mapped.Arcs(2)
	require.NoError(t, err)
	for a := range arcs {
		assert.True(t, a.Weight.ApproxEqual(2.1, 1e-6), "got %v", a.Weight)
	}
	final, err := mapped.Final(4)
	require.NoError(t, err)
	assert.True(t, final.ApproxEqual(2.3, 1e-6))
}

func TestCaseWeights(t *testing.T) {
	c, err := fixtures.Fst010(fixtures.WithSeed(5))
	require.NoError(t, err)
	ws := c.Weights(4)
	assert.Contains(t, ws, semiring.Zero[semiring.LogWeight]())
	assert.Contains(t, ws, semiring.One[semiring.LogWeight]())
	assert.Contains(t, ws, semiring.LogWeight(0.3))
	assert.Contains(t, ws, semiring.LogWeight(1.5))
	assert.True(t, slices.IsSortedFunc(ws, func(a, b semiring.LogWeight) int {
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	}))
	assert.Len(t, slices.Compact(slices.Clone(ws)), len(ws), "no duplicates")
}
