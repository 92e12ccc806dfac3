// SPDX-License-Identifier: MIT
// Package: wfst/arcmap

package arcmap

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Map returns a new automaton with every arc and final weight of f passed
// through m. f is not modified.
//
// Steps:
//  1. Add NumStates() states and copy the start state.
//  2. Map the final weight of every final state.
//  3. Map the arcs of every state in order and append them.
//
// Errors: errors from f or m, wrapped with the state being mapped;
// ErrTopologyChanged if m rewrites a destination.
// Complexity: O(V + E) mapper calls.
func Map[W semiring.Semiring[W]](f fst.Fst[W], m Mapper[W]) (*fst.VectorFst[W], error) {
	out := fst.NewVectorFst[W]()
	out.AddStates(f.NumStates())
	if s, ok := f.Start(); ok {
		if err := out.SetStart(s); err != nil {
			return nil, fmt.Errorf("Map: %w", err)
		}
	}
	for s := range fst.States(f) {
		final, err := f.Final(s)
		if err != nil {
			return nil, fmt.Errorf("Map: state %d: %w", s, err)
		}
		if !final.IsZero() {
			if final, err = m.MapFinal(final); err != nil {
				return nil, fmt.Errorf("Map: final weight of state %d: %w", s, err)
			}
			if err = out.SetFinal(s, final); err != nil {
				return nil, fmt.Errorf("Map: %w", err)
			}
		}

		n, err := f.NumArcs(s)
		if err != nil {
			return nil, fmt.Errorf("Map: state %d: %w", s, err)
		}
		if err = out.ReserveArcs(s, n); err != nil {
			return nil, fmt.Errorf("Map: %w", err)
		}
		arcs, err := f.Arcs(s)
		if err != nil {
			return nil, fmt.Errorf("Map: state %d: %w", s, err)
		}
		i := 0
		for a := range arcs {
			mapped, err := m.MapArc(a)
			if err != nil {
				return nil, fmt.Errorf("Map: arc %d of state %d: %w", i, s, err)
			}
			if mapped.NextState != a.NextState {
				return nil, fmt.Errorf("Map: arc %d of state %d: %d -> %d: %w",
					i, s, a.NextState, mapped.NextState, ErrTopologyChanged)
			}
			if err = out.AddArc(s, mapped); err != nil {
				return nil, fmt.Errorf("Map: %w", err)
			}
			i++
		}
	}
	return out, nil
}
