package fst

import (
	"iter"

	"github.com/katalvlaran/wfst/semiring"
)

// Label is an input or output symbol id. EpsLabel (0) is the empty symbol.
type Label uint32

// EpsLabel is the epsilon (empty) label.
const EpsLabel Label = 0

// StateID is a dense state index in [0, NumStates()).
type StateID int

// NoStateID marks the absence of a state (e.g. an unset start).
const NoStateID StateID = -1

// Arc is a labeled, weighted transition. It is owned by its source state.
type Arc[W semiring.Semiring[W]] struct {
	ILabel    Label
	OLabel    Label
	Weight    W
	NextState StateID
}

// NewArc builds an arc from ilabel:olabel/weight to next.
func NewArc[W semiring.Semiring[W]](ilabel, olabel Label, weight W, next StateID) Arc[W] {
	return Arc[W]{ILabel: ilabel, OLabel: olabel, Weight: weight, NextState: next}
}

// Fst is the read-only traversal interface consumed by algorithms.
type Fst[W semiring.Semiring[W]] interface {
	// Start returns the start state, or (NoStateID, false) when unset.
	Start() (StateID, bool)
	// Final returns the final weight of s; Zero means "not final".
	Final(s StateID) (W, error)
	// Arcs returns the arcs leaving s in insertion order. The sequence is
	// lazy and may be ranged over any number of times.
	Arcs(s StateID) (iter.Seq[Arc[W]], error)
	// NumArcs returns the number of arcs leaving s.
	NumArcs(s StateID) (int, error)
	// NumStates returns N; valid ids are 0..N-1.
	NumStates() int
}

// MutableFst is the construction interface algorithms use to emit results.
type MutableFst[W semiring.Semiring[W]] interface {
	Fst[W]
	// AddState appends a non-final state without arcs and returns its id.
	AddState() StateID
	// SetStart marks s as the start state.
	SetStart(s StateID) error
	// SetFinal overwrites the final weight of s.
	SetFinal(s StateID, w W) error
	// AddArc appends arc to the arcs of src. arc.NextState is not checked
	// until Freeze.
	AddArc(src StateID, arc Arc[W]) error
}

// States yields every state id of f in increasing order.
func States[W semiring.Semiring[W]](f Fst[W]) iter.Seq[StateID] {
	return func(yield func(StateID) bool) {
		n := f.NumStates()
		for s := StateID(0); int(s) < n; s++ {
			if !yield(s) {
				return
			}
		}
	}
}

// IsFinal reports whether s has a non-Zero final weight.
func IsFinal[W semiring.Semiring[W]](f Fst[W], s StateID) (bool, error) {
	w, err := f.Final(s)
	if err != nil {
		return false, err
	}
	return !w.IsZero(), nil
}

// NumArcsTotal returns the number of arcs over all states of f.
// Complexity: O(V).
func NumArcsTotal[W semiring.Semiring[W]](f Fst[W]) int {
	total := 0
	for s := range States(f) {
		n, _ := f.NumArcs(s) // s is in range by construction
		total += n
	}
	return total
}

// checkState returns ErrInvalidState wrapped with method context when s is
// not in [0, n).
func checkState(method string, s StateID, n int) error {
	if s < 0 || int(s) >= n {
		return errorf(method, ErrInvalidState, "state %d not in [0, %d)", s, n)
	}
	return nil
}
