// Package fst provides the weighted finite-state transducer container and its
// binary interchange codec.
//
// An automaton is a graph of dense integer states 0..N-1. Each state owns a
// final weight and an ordered slice of arcs; the automaton owns its states and
// an optional start state. There is no "final" flag: a state is final iff its
// final weight is not the algebra's Zero.
//
// Two representations share the read-only Fst interface:
//
//   - VectorFst: mutable builder. States and arcs are appended; arc
//     destinations are validated lazily, so an arc may point at a state that
//     will only be added later.
//   - ConstFst: immutable snapshot produced by VectorFst.Freeze or by the
//     decoder. All arcs live in one contiguous arena; a ConstFst may be shared
//     by any number of goroutines without locking.
//
// Lifecycle:
//
//	f := fst.NewVectorFst[semiring.LogWeight]()
//	s0, s1 := f.AddState(), f.AddState()
//	_ = f.SetStart(s0)
//	_ = f.SetFinal(s1, 0.7)
//	_ = f.AddArc(s0, fst.NewArc[semiring.LogWeight](12, 12, 0.3, s1))
//	frozen, err := f.Freeze()
//
// Binary format (little-endian; see codec.go for the byte layout):
//
//	header: magic, version, weight type, label type, #states, start, #arcs
//	body:   per state: final weight, #arcs, arcs{ilabel, olabel, weight, next}
//
// Errors:
//
//	ErrInvalidState          – mutation or query names a state that was never added.
//	ErrCorruptGraph          – dangling arc, missing start, or malformed binary data.
//	ErrBadMagic/ErrBadVersion – unrecognized binary header (also ErrCorruptGraph).
//	ErrWeightAlgebraMismatch – binary data was written for another weight algebra.
//	ErrIO                    – the underlying reader, writer or file failed.
//
// Concurrency: a VectorFst belongs to one goroutine; a ConstFst is read-only
// and freely shareable.
package fst
