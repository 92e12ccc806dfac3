// File: vector.go
// Role: VectorFst, the mutable builder: AddState/SetStart/SetFinal/AddArc,
//       read queries, Freeze, AddFst and Copy.
// Determinism:
//   - State ids are assigned 0,1,2,... in AddState order and never reused.
//   - Arcs of a state are kept in insertion order.
// Concurrency:
//   - None. A VectorFst is owned by a single builder goroutine.

package fst

import (
	"iter"
	"slices"

	"github.com/katalvlaran/wfst/semiring"
)

// vectorState is a state of a VectorFst: its final weight and its arc slice.
type vectorState[W semiring.Semiring[W]] struct {
	final W
	arcs  []Arc[W]
}

// VectorFst is a growable automaton. The zero value is not usable; call
// NewVectorFst.
type VectorFst[W semiring.Semiring[W]] struct {
	states []vectorState[W]
	start  StateID
}

var _ MutableFst[semiring.TropicalWeight] = (*VectorFst[semiring.TropicalWeight])(nil)

// NewVectorFst returns an empty automaton (the empty language) with no start.
// Complexity: O(1).
func NewVectorFst[W semiring.Semiring[W]]() *VectorFst[W] {
	return &VectorFst[W]{start: NoStateID}
}

// AddState appends a state with Zero final weight and no arcs.
// Complexity: O(1) amortized.
func (f *VectorFst[W]) AddState() StateID {
	f.states = append(f.states, vectorState[W]{final: semiring.Zero[W]()})
	return StateID(len(f.states) - 1)
}

// AddStates appends n states and returns the id of the first one.
// With n <= 0 nothing is added and NumStates() is returned.
func (f *VectorFst[W]) AddStates(n int) StateID {
	first := StateID(len(f.states))
	for i := 0; i < n; i++ {
		f.AddState()
	}
	return first
}

// SetStart marks s as the start state.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) SetStart(s StateID) error {
	if err := checkState("SetStart", s, len(f.states)); err != nil {
		return err
	}
	f.start = s
	return nil
}

// SetFinal overwrites the final weight of s (last write wins). Setting Zero
// makes s non-final again.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) SetFinal(s StateID, w W) error {
	if err := checkState("SetFinal", s, len(f.states)); err != nil {
		return err
	}
	f.states[s].final = w
	return nil
}

// AddArc appends arc to src. The destination may be a state that has not been
// added yet; it is validated by Freeze.
// Errors: ErrInvalidState if src was never added.
// Complexity: O(1) amortized.
func (f *VectorFst[W]) AddArc(src StateID, arc Arc[W]) error {
	if err := checkState("AddArc", src, len(f.states)); err != nil {
		return err
	}
	f.states[src].arcs = append(f.states[src].arcs, arc)
	return nil
}

// ReserveArcs grows the arc capacity of s so that n more arcs can be added
// without reallocation.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) ReserveArcs(s StateID, n int) error {
	if err := checkState("ReserveArcs", s, len(f.states)); err != nil {
		return err
	}
	if n > 0 {
		f.states[s].arcs = slices.Grow(f.states[s].arcs, n)
	}
	return nil
}

// Start returns the start state, if set.
func (f *VectorFst[W]) Start() (StateID, bool) {
	return f.start, f.start != NoStateID
}

// Final returns the final weight of s.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) Final(s StateID) (W, error) {
	if err := checkState("Final", s, len(f.states)); err != nil {
		return semiring.Zero[W](), err
	}
	return f.states[s].final, nil
}

// Arcs returns the arcs of s in insertion order.
//
// The sequence reads the live state, so arcs appended to s between two
// iterations show up in the second one.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) Arcs(s StateID) (iter.Seq[Arc[W]], error) {
	if err := checkState("Arcs", s, len(f.states)); err != nil {
		return nil, err
	}
	return func(yield func(Arc[W]) bool) {
		for _, a := range f.states[s].arcs {
			if !yield(a) {
				return
			}
		}
	}, nil
}

// NumArcs returns the number of arcs leaving s.
// Errors: ErrInvalidState if s was never added.
func (f *VectorFst[W]) NumArcs(s StateID) (int, error) {
	if err := checkState("NumArcs", s, len(f.states)); err != nil {
		return 0, err
	}
	return len(f.states[s].arcs), nil
}

// NumStates returns the number of added states.
func (f *VectorFst[W]) NumStates() int {
	return len(f.states)
}

// Freeze validates the automaton and returns an immutable snapshot. The
// builder is left untouched and may keep growing; later mutations do not
// affect the snapshot.
//
// Steps:
//  1. Reject a non-empty automaton without start state.
//  2. Reject any arc whose destination is outside [0, NumStates()).
//  3. Copy final weights and arcs into one contiguous arena.
//
// Errors: ErrCorruptGraph.
// Complexity: O(V + E) time and space.
func (f *VectorFst[W]) Freeze() (*ConstFst[W], error) {
	n := len(f.states)
	if n > 0 && f.start == NoStateID {
		return nil, errorf("Freeze", ErrCorruptGraph, "%d states but no start state", n)
	}

	total := 0
	for s := range f.states {
		for i, a := range f.states[s].arcs {
			if a.NextState < 0 || int(a.NextState) >= n {
				return nil, errorf("Freeze", ErrCorruptGraph,
					"arc %d of state %d points to state %d, have %d states", i, s, a.NextState, n)
			}
		}
		total += len(f.states[s].arcs)
	}

	out := &ConstFst[W]{
		states: make([]constState[W], n),
		arcs:   make([]Arc[W], 0, total),
		start:  f.start,
	}
	for s := range f.states {
		out.states[s] = constState[W]{
			final: f.states[s].final,
			pos:   len(out.arcs),
			narcs: len(f.states[s].arcs),
		}
		out.arcs = append(out.arcs, f.states[s].arcs...)
	}
	return out, nil
}

// AddFst appends every state and arc of other to f, shifting other's ids by
// f.NumStates(). The start state of f is not changed. It returns the id that
// other's state 0 received, and leaves f unchanged on error.
//
// Complexity: O(V' + E') where V', E' are the sizes of other.
func (f *VectorFst[W]) AddFst(other Fst[W]) (StateID, error) {
	offset := StateID(len(f.states))
	n := other.NumStates()
	added := make([]vectorState[W], n)
	for s := range States(other) {
		final, err := other.Final(s)
		if err != nil {
			return NoStateID, err
		}
		arcs, err := other.Arcs(s)
		if err != nil {
			return NoStateID, err
		}
		st := vectorState[W]{final: final}
		for a := range arcs {
			a.NextState += offset
			st.arcs = append(st.arcs, a)
		}
		added[s] = st
	}
	f.states = append(f.states, added...)
	return offset, nil
}

// Copy thaws any automaton into a new VectorFst with identical states, start,
// final weights and arc order. Use it to derive a mutable automaton from a
// frozen one.
// Complexity: O(V + E).
func Copy[W semiring.Semiring[W]](src Fst[W]) (*VectorFst[W], error) {
	out := NewVectorFst[W]()
	if _, err := out.AddFst(src); err != nil {
		return nil, err
	}
	if s, ok := src.Start(); ok {
		if err := out.SetStart(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}
