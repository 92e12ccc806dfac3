// File: visit.go
// Role: depth-first traversal of an automaton and the state properties built
//       on it: accessibility, coaccessibility, acyclicity and topological order.
// Determinism:
//   - States are explored in id order, arcs in insertion order; every result
//     is a pure function of the automaton.
// Concurrency:
//   - Read-only. Safe on a ConstFst shared between goroutines.

package fst

import (
	"errors"
	"slices"

	"github.com/katalvlaran/wfst/semiring"
)

// ErrCycleDetected is returned by TopSort when a cycle is reachable from the
// start state.
var ErrCycleDetected = errors.New("fst: cycle detected")

// visit colors: unseen, on the current path, finished.
const (
	white = iota
	gray
	black
)

// dfsFrame is one state on the explicit DFS stack with its remaining arcs.
type dfsFrame[W semiring.Semiring[W]] struct {
	s    StateID
	arcs []Arc[W]
	next int
}

// dfs walks f depth-first from the start state without recursion.
// onBackArc fires for every arc closing a cycle; onExit fires in post-order.
// Complexity: O(V + E) time, O(V) space.
func dfs[W semiring.Semiring[W]](f Fst[W], onBackArc func(src StateID), onExit func(s StateID)) ([]uint8, error) {
	color := make([]uint8, f.NumStates())
	start, ok := f.Start()
	if !ok {
		return color, nil
	}
	push := func(stack []dfsFrame[W], s StateID) ([]dfsFrame[W], error) {
		seq, err := f.Arcs(s)
		if err != nil {
			return stack, err
		}
		color[s] = gray
		return append(stack, dfsFrame[W]{s: s, arcs: slices.Collect(seq)}), nil
	}
	stack, err := push(nil, start)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.arcs) {
			color[top.s] = black
			if onExit != nil {
				onExit(top.s)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		a := top.arcs[top.next]
		top.next++
		if a.NextState < 0 || int(a.NextState) >= len(color) {
			return nil, errorf("dfs", ErrCorruptGraph, "arc of state %d points to state %d", top.s, a.NextState)
		}
		switch color[a.NextState] {
		case white:
			if stack, err = push(stack, a.NextState); err != nil {
				return nil, err
			}
		case gray:
			if onBackArc != nil {
				onBackArc(top.s)
			}
		}
	}
	return color, nil
}

// Accessible reports, per state, whether it is reachable from the start
// state. Without a start state no state is accessible.
// Errors: ErrCorruptGraph on a dangling arc.
func Accessible[W semiring.Semiring[W]](f Fst[W]) ([]bool, error) {
	color, err := dfs(f, nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(color))
	for s, c := range color {
		out[s] = c != white
	}
	return out, nil
}

// Coaccessible reports, per state, whether some final state is reachable
// from it (a final state is coaccessible itself).
// Steps:
//  1. Build the reversed adjacency.
//  2. Flood backwards from every final state.
//
// Errors: ErrCorruptGraph on a dangling arc.
// Complexity: O(V + E).
func Coaccessible[W semiring.Semiring[W]](f Fst[W]) ([]bool, error) {
	n := f.NumStates()
	rev := make([][]StateID, n)
	out := make([]bool, n)
	var queue []StateID
	for s := range States(f) {
		final, _ := f.Final(s)
		if !final.IsZero() {
			out[s] = true
			queue = append(queue, s)
		}
		arcs, _ := f.Arcs(s)
		for a := range arcs {
			if a.NextState < 0 || int(a.NextState) >= n {
				return nil, errorf("Coaccessible", ErrCorruptGraph, "arc of state %d points to state %d", s, a.NextState)
			}
			rev[a.NextState] = append(rev[a.NextState], s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range rev[s] {
			if !out[p] {
				out[p] = true
				queue = append(queue, p)
			}
		}
	}
	return out, nil
}

// IsAcyclic reports whether no cycle is reachable from the start state.
// Self-loops count as cycles.
func IsAcyclic[W semiring.Semiring[W]](f Fst[W]) (bool, error) {
	cyclic := false
	if _, err := dfs(f, func(StateID) { cyclic = true }, nil); err != nil {
		return false, err
	}
	return !cyclic, nil
}

// TopSort returns the accessible states ordered so that every arc goes from
// an earlier to a later state.
// Errors: ErrCycleDetected if the accessible part has a cycle.
func TopSort[W semiring.Semiring[W]](f Fst[W]) ([]StateID, error) {
	var order []StateID
	cyclic := false
	if _, err := dfs(f, func(StateID) { cyclic = true }, func(s StateID) { order = append(order, s) }); err != nil {
		return nil, err
	}
	if cyclic {
		return nil, errorf("TopSort", ErrCycleDetected, "accessible part of %d states", f.NumStates())
	}
	slices.Reverse(order)
	return order, nil
}
