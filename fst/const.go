// File: const.go
// Role: ConstFst, the immutable automaton produced by Freeze and the decoder.
// Determinism:
//   - Arcs are stored state by state, each state's arcs in insertion order.
// Concurrency:
//   - No method mutates a ConstFst; concurrent readers need no locking.

package fst

import (
	"iter"

	"github.com/katalvlaran/wfst/semiring"
)

// constState locates a state's arcs inside the shared arena.
type constState[W semiring.Semiring[W]] struct {
	final W
	pos   int // offset of the first arc in ConstFst.arcs
	narcs int
}

// ConstFst is a frozen automaton. All arcs are kept in one arena indexed by
// per-state (offset, count) pairs. Obtain one via VectorFst.Freeze, Read,
// Unmarshal or Load.
type ConstFst[W semiring.Semiring[W]] struct {
	states []constState[W]
	arcs   []Arc[W]
	start  StateID
}

var _ Fst[semiring.TropicalWeight] = (*ConstFst[semiring.TropicalWeight])(nil)

// Start returns the start state, if set. Only an empty ConstFst has no start.
func (f *ConstFst[W]) Start() (StateID, bool) {
	return f.start, f.start != NoStateID
}

// Final returns the final weight of s.
// Errors: ErrInvalidState if s is out of range.
func (f *ConstFst[W]) Final(s StateID) (W, error) {
	if err := checkState("Final", s, len(f.states)); err != nil {
		return semiring.Zero[W](), err
	}
	return f.states[s].final, nil
}

// Arcs returns the arcs of s in insertion order.
// Errors: ErrInvalidState if s is out of range.
func (f *ConstFst[W]) Arcs(s StateID) (iter.Seq[Arc[W]], error) {
	if err := checkState("Arcs", s, len(f.states)); err != nil {
		return nil, err
	}
	st := f.states[s]
	arcs := f.arcs[st.pos : st.pos+st.narcs : st.pos+st.narcs]
	return func(yield func(Arc[W]) bool) {
		for _, a := range arcs {
			if !yield(a) {
				return
			}
		}
	}, nil
}

// NumArcs returns the number of arcs leaving s.
// Errors: ErrInvalidState if s is out of range.
func (f *ConstFst[W]) NumArcs(s StateID) (int, error) {
	if err := checkState("NumArcs", s, len(f.states)); err != nil {
		return 0, err
	}
	return f.states[s].narcs, nil
}

// NumStates returns the number of states.
func (f *ConstFst[W]) NumStates() int {
	return len(f.states)
}

// NumArcsTotal returns the arena size in O(1).
func (f *ConstFst[W]) NumArcsTotal() int {
	return len(f.arcs)
}
