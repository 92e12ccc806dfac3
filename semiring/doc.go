// Package semiring defines the weight algebras used by weighted automata.
//
// A semiring (K, ⊕, ⊗, 0̄, 1̄) provides two composition operators:
//
//   - Plus (⊕): associative, commutative, identity Zero.
//   - Times (⊗): associative, identity One, distributes over Plus on both sides.
//   - Zero annihilates Times: Times(Zero, x) = Zero.
//
// Every weight type W implements Semiring[W] on itself, so algorithm code is
// written once against the generic constraint and never inspects the concrete
// weight kind:
//
//	func total[W semiring.Semiring[W]](ws []W) (W, error) {
//	    return semiring.Sum(ws...)
//	}
//
// Instances:
//
//	– TropicalWeight:    Plus = min,          Times = +, Zero = +Inf, One = 0
//	– LogWeight:         Plus = -log(e^-a + e^-b), Times = +, Zero = +Inf, One = 0
//	– ProbabilityWeight: Plus = +,            Times = ×, Zero = 0,    One = 1
//
// All instances store an IEEE-754 float32 scalar, which is also their canonical
// fixed-width interchange encoding (see Value / WithValue).
//
// Errors:
//
//	ErrNumericInstability – an operand or the result of Plus/Times is undefined (NaN).
package semiring
