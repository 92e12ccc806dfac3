package fst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type tw = semiring.TropicalWeight

func TestAccessibleCoaccessible(t *testing.T) {
	f := buildLog010(t)
	// 5: unreachable but leads to a final; 6: reachable dead end
	f.AddStates(2)
	require.NoError(t, f.AddArc(5, fst.NewArc[semiring.LogWeight](1, 1, 0, 3)))
	require.NoError(t, f.AddArc(0, fst.NewArc[semiring.LogWeight](2, 2, 0, 6)))

	acc, err := fst.Accessible[semiring.LogWeight](f)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true, true, false, true}, acc)

	coacc, err := fst.Coaccessible[semiring.LogWeight](f)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true, true, true, false}, coacc)
}

func TestAcyclicAndTopSort(t *testing.T) {
	f := buildLog010(t)
	ok, err := fst.IsAcyclic[semiring.LogWeight](f)
	require.NoError(t, err)
	require.True(t, ok)

	order, err := fst.TopSort[semiring.LogWeight](f)
	require.NoError(t, err)
	require.Len(t, order, 5)
	pos := make(map[fst.StateID]int, len(order))
	for i, s := range order {
		pos[s] = i
	}
	for s := range fst.States[semiring.LogWeight](f) {
		for _, a := range collectArcs[semiring.LogWeight](t, f, s) {
			require.Less(t, pos[s], pos[a.NextState], "arc %d -> %d", s, a.NextState)
		}
	}

	require.NoError(t, f.AddArc(4, fst.NewArc[semiring.LogWeight](1, 1, 0, 0)))
	ok, err = fst.IsAcyclic[semiring.LogWeight](f)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = fst.TopSort[semiring.LogWeight](f)
	require.ErrorIs(t, err, fst.ErrCycleDetected)
}

func TestVisitEdgeCases(t *testing.T) {
	empty := fst.NewVectorFst[tw]()
	acc, err := fst.Accessible[tw](empty)
	require.NoError(t, err)
	require.Empty(t, acc)
	ok, err := fst.IsAcyclic[tw](empty)
	require.NoError(t, err)
	require.True(t, ok)

	loop := fst.NewVectorFst[tw]()
	s := loop.AddState()
	require.NoError(t, loop.SetStart(s))
	require.NoError(t, loop.AddArc(s, fst.NewArc[tw](1, 1, 0, s)))
	ok, err = fst.IsAcyclic[tw](loop)
	require.NoError(t, err)
	require.False(t, ok, "a self-loop is a cycle")

	dangling := fst.NewVectorFst[tw]()
	s = dangling.AddState()
	require.NoError(t, dangling.SetStart(s))
	require.NoError(t, dangling.AddArc(s, fst.NewArc[tw](1, 1, 0, 4)))
	_, err = fst.Accessible[tw](dangling)
	require.ErrorIs(t, err, fst.ErrCorruptGraph)
	_, err = fst.Coaccessible[tw](dangling)
	require.ErrorIs(t, err, fst.ErrCorruptGraph)
}
