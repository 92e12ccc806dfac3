// Package wfst is a weighted finite-state transducer core: weight algebras,
// a mutable and a frozen automaton container, a binary interchange codec and
// a reference-oracle harness.
//
// Packages:
//
//	semiring/  — Tropical, Log and Probability weights behind one generic constraint
//	fst/       — VectorFst (builder), ConstFst (frozen), binary codec, traversal
//	arcmap/    — weight and label mappers applied arc by arc
//	fixtures/  — reference cases, YAML manifests, fixture store, oracle checks
//	cmd/wfst/  — command line: info, verify, map, fixtures export/check
//
// Quick example:
//
//	f := fst.NewVectorFst[semiring.LogWeight]()
//	s0, s1 := f.AddState(), f.AddState()
//	_ = f.SetStart(s0)
//	_ = f.SetFinal(s1, 0.7)
//	_ = f.AddArc(s0, fst.NewArc[semiring.LogWeight](12, 12, 0.3, s1))
//	frozen, _ := f.Freeze()
//	data, _ := fst.Marshal[semiring.LogWeight](frozen)
//	back, err := fst.Unmarshal[semiring.LogWeight](data) // err wraps ErrWeightAlgebraMismatch for other algebras
//
// Every weight is a value of a concrete type W satisfying semiring.Semiring[W];
// generic code reaches Zero, One and the operations through W alone, so no
// consumer branches on the kind of weight.
package wfst
