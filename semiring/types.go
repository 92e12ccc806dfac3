// SPDX-License-Identifier: MIT
// Package: wfst/semiring
//
// types.go — the Semiring constraint and generic helpers.

package semiring

// Type is the algebra tag of a weight type. It is written verbatim into the
// binary automaton header, so values are part of the interchange contract.
type Type string

const (
	// TypeTropical tags TropicalWeight.
	TypeTropical Type = "tropical"
	// TypeLog tags LogWeight.
	TypeLog Type = "log"
	// TypeProbability tags ProbabilityWeight.
	TypeProbability Type = "probability"
)

// DefaultDelta is the default tolerance for ApproxEqual and Quantize.
const DefaultDelta = 1.0 / 1024.0

// Semiring is the contract satisfied by every weight type W on itself.
//
// Zero and One ignore their receiver; they are methods only so that generic
// code can reach them through a zero value of W (see Zero / One below).
type Semiring[W any] interface {
	comparable

	// Zero returns the additive identity, which also marks non-final states.
	Zero() W
	// One returns the multiplicative identity.
	One() W
	// Plus returns w ⊕ other.
	Plus(other W) (W, error)
	// Times returns w ⊗ other.
	Times(other W) (W, error)
	// ApproxEqual reports |w - other| <= eps; identical values always match.
	ApproxEqual(other W, eps float64) bool
	// IsZero reports whether w is the additive identity.
	IsZero() bool
	// Value returns the raw float32 scalar.
	Value() float32
	// WithValue builds a weight of the same type from a raw scalar.
	WithValue(v float32) W
	// Quantize rounds w to the nearest multiple of delta; infinities stay fixed.
	Quantize(delta float64) W
	// Type returns the algebra tag.
	Type() Type
}

// Zero returns the additive identity of W.
func Zero[W Semiring[W]]() W {
	var w W
	return w.Zero()
}

// One returns the multiplicative identity of W.
func One[W Semiring[W]]() W {
	var w W
	return w.One()
}

// New builds a W from its raw scalar value.
func New[W Semiring[W]](v float32) W {
	var w W
	return w.WithValue(v)
}

// TypeOf returns the algebra tag of W.
func TypeOf[W Semiring[W]]() Type {
	var w W
	return w.Type()
}

// Sum folds ws with Plus starting from Zero. An empty input yields Zero.
// Complexity: O(len(ws)).
func Sum[W Semiring[W]](ws ...W) (W, error) {
	acc := Zero[W]()
	var err error
	for _, w := range ws {
		if acc, err = acc.Plus(w); err != nil {
			return Zero[W](), err
		}
	}
	return acc, nil
}

// Product folds ws with Times starting from One. An empty input yields One.
// Complexity: O(len(ws)).
func Product[W Semiring[W]](ws ...W) (W, error) {
	acc := One[W]()
	var err error
	for _, w := range ws {
		if acc, err = acc.Times(w); err != nil {
			return Zero[W](), err
		}
	}
	return acc, nil
}
