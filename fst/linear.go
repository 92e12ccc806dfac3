package fst

import "github.com/katalvlaran/wfst/semiring"

// Transducer builds the linear automaton 0 -in[0]:out[0]-> 1 -> ... -> n with
// One weights on every arc and a One final weight on the last state. The
// shorter label sequence is padded with EpsLabel. Empty inputs yield a single
// final start state (the empty string).
// Complexity: O(max(len(in), len(out))).
func Transducer[W semiring.Semiring[W]](in, out []Label) *VectorFst[W] {
	n := max(len(in), len(out))
	f := NewVectorFst[W]()
	f.AddStates(n + 1)
	_ = f.SetStart(0)
	one := semiring.One[W]()
	for i := 0; i < n; i++ {
		var il, ol Label
		if i < len(in) {
			il = in[i]
		}
		if i < len(out) {
			ol = out[i]
		}
		_ = f.AddArc(StateID(i), NewArc(il, ol, one, StateID(i+1)))
	}
	_ = f.SetFinal(StateID(n), one)
	return f
}

// Acceptor builds the linear automaton accepting exactly labels, with
// identical input and output labels on every arc.
func Acceptor[W semiring.Semiring[W]](labels []Label) *VectorFst[W] {
	return Transducer[W](labels, labels)
}
