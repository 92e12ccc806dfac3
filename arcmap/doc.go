// Package arcmap rewrites the weights and labels of an automaton arc by arc.
//
// Map reads any fst.Fst through its traversal interface and emits a new
// fst.VectorFst through the construction interface. State ids, start state,
// arc order and arc destinations are preserved; only what the Mapper returns
// for each arc and each final weight changes.
//
// Built-in mappers:
//
//	Identity            – copies every weight.
//	PlusMapper{W}       – w ⊕ W on arcs and finals.
//	TimesMapper{W}      – w ⊗ W on arcs and finals.
//	QuantizeMapper{D}   – rounds weights to multiples of D.
//	RmWeightMapper      – every non-Zero weight becomes One.
//	InputEpsilonMapper  – replaces input labels with epsilon.
//	OutputEpsilonMapper – replaces output labels with epsilon.
//
// Final weights are mapped on final states only; a non-final state stays
// non-final whatever the mapper does, so the accepted paths never change.
package arcmap
