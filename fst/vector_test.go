package fst_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type logArc = fst.Arc[semiring.LogWeight]

// buildLog010 builds the five-state log automaton used across the fst tests:
// two paths 0→1→3 and 0→2→4 with finals on 3 and 4.
func buildLog010(t testing.TB) *fst.VectorFst[semiring.LogWeight] {
	t.Helper()
	f := fst.NewVectorFst[semiring.LogWeight]()
	f.AddStates(5)
	require.NoError(t, f.SetStart(0))
	require.NoError(t, f.SetFinal(3, 0.7))
	require.NoError(t, f.SetFinal(4, 0.8))
	require.NoError(t, f.AddArc(0, fst.NewArc[semiring.LogWeight](12, 12, 0.3, 1)))
	require.NoError(t, f.AddArc(1, fst.NewArc[semiring.LogWeight](13, 13, 0.4, 3)))
	require.NoError(t, f.AddArc(0, fst.NewArc[semiring.LogWeight](14, 14, 0.5, 2)))
	require.NoError(t, f.AddArc(2, fst.NewArc[semiring.LogWeight](15, 15, 0.6, 4)))
	return f
}

func collectArcs[W semiring.Semiring[W]](t testing.TB, f fst.Fst[W], s fst.StateID) []fst.Arc[W] {
	t.Helper()
	seq, err := f.Arcs(s)
	require.NoError(t, err)
	return slices.Collect(seq)
}

// VectorSuite exercises the mutable builder and Freeze.
type VectorSuite struct {
	suite.Suite
}

// TestAddStateDenseIDs verifies ids are assigned 0,1,2,... and start non-final.
func (s *VectorSuite) TestAddStateDenseIDs() {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	for want := fst.StateID(0); want < 4; want++ {
		s.Require().Equal(want, f.AddState())
	}
	s.Require().Equal(4, f.NumStates())
	s.Require().Equal(fst.StateID(4), f.AddStates(3))
	s.Require().Equal(7, f.NumStates())
	s.Require().Equal(fst.StateID(7), f.AddStates(0))

	final, err := f.Final(6)
	s.Require().NoError(err)
	s.Require().True(final.IsZero())
	n, err := f.NumArcs(6)
	s.Require().NoError(err)
	s.Require().Zero(n)
}

// TestInvalidState ensures every state-addressing call rejects unknown ids
// and leaves the automaton untouched.
func (s *VectorSuite) TestInvalidState() {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s.Require().NoError(f.SetStart(s0))
	s.Require().NoError(f.SetFinal(s0, 1.5))

	for _, bad := range []fst.StateID{-1, 1, 100} {
		s.Require().ErrorIs(f.SetStart(bad), fst.ErrInvalidState)
		s.Require().ErrorIs(f.SetFinal(bad, 0), fst.ErrInvalidState)
		s.Require().ErrorIs(f.AddArc(bad, fst.NewArc[semiring.TropicalWeight](1, 1, 0, s0)), fst.ErrInvalidState)
		s.Require().ErrorIs(f.ReserveArcs(bad, 4), fst.ErrInvalidState)
		_, err := f.Final(bad)
		s.Require().ErrorIs(err, fst.ErrInvalidState)
		_, err = f.Arcs(bad)
		s.Require().ErrorIs(err, fst.ErrInvalidState)
		_, err = f.NumArcs(bad)
		s.Require().ErrorIs(err, fst.ErrInvalidState)
	}

	start, ok := f.Start()
	s.Require().True(ok)
	s.Require().Equal(s0, start)
	final, err := f.Final(s0)
	s.Require().NoError(err)
	s.Require().Equal(semiring.TropicalWeight(1.5), final)
	n, _ := f.NumArcs(s0)
	s.Require().Zero(n)
	s.Require().Equal(1, f.NumStates())
}

// TestEmpty verifies the empty automaton freezes without a start state.
func (s *VectorSuite) TestEmpty() {
	f := fst.NewVectorFst[semiring.LogWeight]()
	_, ok := f.Start()
	s.Require().False(ok)

	frozen, err := f.Freeze()
	s.Require().NoError(err)
	s.Require().Zero(frozen.NumStates())
	start, ok := frozen.Start()
	s.Require().False(ok)
	s.Require().Equal(fst.NoStateID, start)
}

// TestFreezeWithoutStart rejects a non-empty automaton with no start state.
func (s *VectorSuite) TestFreezeWithoutStart() {
	f := fst.NewVectorFst[semiring.LogWeight]()
	f.AddState()
	_, err := f.Freeze()
	s.Require().ErrorIs(err, fst.ErrCorruptGraph)
}

// TestDeferredDestination allows an arc to a not-yet-added state until Freeze.
func (s *VectorSuite) TestDeferredDestination() {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s.Require().NoError(f.SetStart(s0))
	s.Require().NoError(f.AddArc(s0, fst.NewArc[semiring.TropicalWeight](1, 2, 0.5, 1)))

	frozen, err := f.Freeze()
	s.Require().ErrorIs(err, fst.ErrCorruptGraph)
	s.Require().Nil(frozen)

	s.Require().Equal(fst.StateID(1), f.AddState())
	frozen, err = f.Freeze()
	s.Require().NoError(err)
	s.Require().Equal(2, frozen.NumStates())
}

// TestObservations checks the queries of the five-state log automaton on both
// the builder and its frozen snapshot.
func (s *VectorSuite) TestObservations() {
	f := buildLog010(s.T())
	frozen, err := f.Freeze()
	s.Require().NoError(err)

	for _, g := range []fst.Fst[semiring.LogWeight]{f, frozen} {
		s.Require().Equal(5, g.NumStates())
		start, ok := g.Start()
		s.Require().True(ok)
		s.Require().Equal(fst.StateID(0), start)

		final, err := g.Final(3)
		s.Require().NoError(err)
		s.Require().Equal(semiring.LogWeight(0.7), final)
		final, err = g.Final(0)
		s.Require().NoError(err)
		s.Require().True(final.IsZero())

		s.Require().Equal([]logArc{
			{ILabel: 12, OLabel: 12, Weight: 0.3, NextState: 1},
			{ILabel: 14, OLabel: 14, Weight: 0.5, NextState: 2},
		}, collectArcs(s.T(), g, 0))
		s.Require().Empty(collectArcs(s.T(), g, 4))
		s.Require().Equal(4, fst.NumArcsTotal(g))

		isFinal, err := fst.IsFinal(g, 4)
		s.Require().NoError(err)
		s.Require().True(isFinal)
	}
	s.Require().Equal(4, frozen.NumArcsTotal())
	s.Require().True(fst.Equal[semiring.LogWeight](f, frozen, 0))
}

// TestFreezeSnapshot verifies later builder mutations do not leak into a
// frozen snapshot.
func (s *VectorSuite) TestFreezeSnapshot() {
	f := buildLog010(s.T())
	frozen, err := f.Freeze()
	s.Require().NoError(err)

	s.Require().NoError(f.AddArc(0, fst.NewArc[semiring.LogWeight](1, 1, 9, 4)))
	s.Require().NoError(f.SetFinal(3, 2.5))
	f.AddState()

	s.Require().Equal(5, frozen.NumStates())
	n, _ := frozen.NumArcs(0)
	s.Require().Equal(2, n)
	final, _ := frozen.Final(3)
	s.Require().Equal(semiring.LogWeight(0.7), final)

	// the builder keeps working after Freeze
	s.Require().NoError(f.AddArc(5, fst.NewArc[semiring.LogWeight](2, 2, 0, 0)))
	again, err := f.Freeze()
	s.Require().NoError(err)
	s.Require().Equal(6, again.NumStates())
}

// TestArcsRestartable ensures arc sequences can be re-ranged and stopped early.
func (s *VectorSuite) TestArcsRestartable() {
	frozen, err := buildLog010(s.T()).Freeze()
	s.Require().NoError(err)
	seq, err := frozen.Arcs(0)
	s.Require().NoError(err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	s.Require().Equal(first, second)

	next, stop := iter.Pull(seq)
	defer stop()
	a, ok := next()
	s.Require().True(ok)
	s.Require().Equal(fst.Label(12), a.ILabel)
}

// TestSetFinalOverwrite verifies last write wins and Zero clears finality.
func (s *VectorSuite) TestSetFinalOverwrite() {
	f := fst.NewVectorFst[semiring.ProbabilityWeight]()
	s0 := f.AddState()
	s.Require().NoError(f.SetFinal(s0, 0.25))
	s.Require().NoError(f.SetFinal(s0, 0.5))
	w, _ := f.Final(s0)
	s.Require().Equal(semiring.ProbabilityWeight(0.5), w)

	s.Require().NoError(f.SetFinal(s0, semiring.Zero[semiring.ProbabilityWeight]()))
	isFinal, err := fst.IsFinal[semiring.ProbabilityWeight](f, s0)
	s.Require().NoError(err)
	s.Require().False(isFinal)
}

// TestParallelArcsAndSelfLoops keeps duplicates and loops as inserted.
func (s *VectorSuite) TestParallelArcsAndSelfLoops() {
	f := fst.NewVectorFst[semiring.TropicalWeight]()
	s0 := f.AddState()
	s.Require().NoError(f.SetStart(s0))
	s.Require().NoError(f.ReserveArcs(s0, 3))
	arc := fst.NewArc[semiring.TropicalWeight](3, 4, 1, s0)
	for i := 0; i < 3; i++ {
		s.Require().NoError(f.AddArc(s0, arc))
	}
	frozen, err := f.Freeze()
	s.Require().NoError(err)
	s.Require().Equal([]fst.Arc[semiring.TropicalWeight]{arc, arc, arc}, collectArcs[semiring.TropicalWeight](s.T(), frozen, s0))
}

// TestAddFst appends another automaton with shifted ids.
func (s *VectorSuite) TestAddFst() {
	f := buildLog010(s.T())
	other, err := buildLog010(s.T()).Freeze()
	s.Require().NoError(err)

	offset, err := f.AddFst(other)
	s.Require().NoError(err)
	s.Require().Equal(fst.StateID(5), offset)
	s.Require().Equal(10, f.NumStates())
	start, _ := f.Start()
	s.Require().Equal(fst.StateID(0), start)

	s.Require().Equal([]logArc{
		{ILabel: 12, OLabel: 12, Weight: 0.3, NextState: 6},
		{ILabel: 14, OLabel: 14, Weight: 0.5, NextState: 7},
	}, collectArcs[semiring.LogWeight](s.T(), f, 5))
	final, _ := f.Final(9)
	s.Require().Equal(semiring.LogWeight(0.8), final)

	_, err = f.Freeze()
	s.Require().NoError(err)
}

// TestAddFstAtomic leaves the receiver unchanged when reading other fails.
func (s *VectorSuite) TestAddFstAtomic() {
	f := buildLog010(s.T())
	other := failingFst{Fst: buildLog010(s.T()), failAt: 3}

	_, err := f.AddFst(other)
	s.Require().ErrorIs(err, errFailingFst)
	s.Require().Equal(5, f.NumStates())
	s.Require().True(fst.Equal[semiring.LogWeight](f, buildLog010(s.T()), 0))
}

// TestCopy thaws a frozen automaton into an equal, independent builder.
func (s *VectorSuite) TestCopy() {
	frozen, err := buildLog010(s.T()).Freeze()
	s.Require().NoError(err)

	thawed, err := fst.Copy[semiring.LogWeight](frozen)
	s.Require().NoError(err)
	s.Require().True(fst.Equal[semiring.LogWeight](frozen, thawed, 0))

	s.Require().NoError(thawed.SetFinal(0, 1))
	s.Require().False(fst.Equal[semiring.LogWeight](frozen, thawed, 0))

	empty, err := fst.Copy[semiring.LogWeight](fst.NewVectorFst[semiring.LogWeight]())
	s.Require().NoError(err)
	s.Require().Zero(empty.NumStates())
}

func TestVectorSuite(t *testing.T) {
	suite.Run(t, new(VectorSuite))
}

var errFailingFst = errors.New("failing fst")

// failingFst reports an error when asked for the arcs of state failAt.
type failingFst struct {
	fst.Fst[semiring.LogWeight]
	failAt fst.StateID
}

func (f failingFst) Arcs(s fst.StateID) (iter.Seq[logArc], error) {
	if s == f.failAt {
		return nil, errFailingFst
	}
	return f.Fst.Arcs(s)
}

func TestLinearBuilders(t *testing.T) {
	tr := fst.Transducer[semiring.TropicalWeight]([]fst.Label{1, 2, 3}, []fst.Label{4})
	require.Equal(t, 4, tr.NumStates())
	require.Equal(t, []fst.Arc[semiring.TropicalWeight]{{ILabel: 2, OLabel: fst.EpsLabel, Weight: 0, NextState: 2}},
		collectArcs[semiring.TropicalWeight](t, tr, 1))
	final, err := tr.Final(3)
	require.NoError(t, err)
	require.Equal(t, semiring.One[semiring.TropicalWeight](), final)

	acc := fst.Acceptor[semiring.LogWeight]([]fst.Label{7, 8})
	for s := range fst.States[semiring.LogWeight](acc) {
		for _, a := range collectArcs[semiring.LogWeight](t, acc, s) {
			require.Equal(t, a.ILabel, a.OLabel)
		}
	}
	_, err = acc.Freeze()
	require.NoError(t, err)

	eps := fst.Acceptor[semiring.LogWeight](nil)
	require.Equal(t, 1, eps.NumStates())
	isFinal, err := fst.IsFinal[semiring.LogWeight](eps, 0)
	require.NoError(t, err)
	require.True(t, isFinal)
}

func TestDiff(t *testing.T) {
	a := buildLog010(t)
	b := buildLog010(t)
	require.Empty(t, fst.Diff[semiring.LogWeight](a, b, 0))

	require.NoError(t, b.SetFinal(3, 0.7001))
	require.Contains(t, fst.Diff[semiring.LogWeight](a, b, 0), "Final(3)")
	require.True(t, fst.Equal[semiring.LogWeight](a, b, semiring.DefaultDelta))

	require.NoError(t, b.AddArc(2, fst.NewArc[semiring.LogWeight](1, 1, 0, 0)))
	require.Contains(t, fst.Diff[semiring.LogWeight](a, b, semiring.DefaultDelta), "NumArcs(2)")

	c := buildLog010(t)
	c.AddState()
	require.Contains(t, fst.Diff[semiring.LogWeight](a, c, 0), "NumStates")
}
