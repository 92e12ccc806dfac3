// Package fixtures is the reference-oracle harness of the wfst module.
//
// A Case is a frozen reference automaton plus the data the checks need:
// operands for binary operations, the constants of the Plus and Times
// weight mappers, a tolerance and a seeded random weight source. Cases come
// from two places:
//
//   - built in: Fst010 (log algebra) and Fst007 (tropical algebra);
//   - on disk: a Store directory holding binary automata and a YAML
//     Manifest that lists them, loaded with LoadCase and written with
//     ExportCase.
//
// Checks return nil or every violation they found, combined with multierr:
//
//	CheckSemiring  – semiring laws over sampled weights
//	CheckRoundTrip – encode, decode, compare, re-encode byte for byte
//	CheckFreeze    – Freeze and Copy preserve every observation
//	CheckMapped    – a mapped automaton matches a per-weight transform
//	CheckCase      – all of the above for one case
//
// Randomness is explicit and reproducible: every WeightSource is seeded,
// with DefaultSeed unless WithSeed or WithRand says otherwise.
package fixtures
