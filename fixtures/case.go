// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// case.go — a reference case: a frozen automaton, its operands and the
// constants of the weight-mapping checks.

package fixtures

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/wfst/arcmap"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Operation names the second operand of a binary operation in a case.
type Operation string

const (
	OpCompose Operation = "compose"
	OpConcat  Operation = "concat"
	OpUnion   Operation = "union"
)

// valid reports whether op is a known operation.
func (op Operation) valid() bool {
	switch op {
	case OpCompose, OpConcat, OpUnion:
		return true
	}
	return false
}

// Case bundles a frozen reference automaton with everything the checks need.
// All automata are frozen, so a Case may be shared between goroutines; Random
// is the exception and belongs to one goroutine.
type Case[W semiring.Semiring[W]] struct {
	Name     string
	Raw      *fst.ConstFst[W]
	Operands map[Operation]*fst.ConstFst[W]

	// PlusWeight and TimesWeight parameterize the Plus and Times mappers.
	PlusWeight  W
	TimesWeight W

	// Random draws extra weights for the algebra checks.
	Random *WeightSource[W]
	// Epsilon is the tolerance of every approximate comparison.
	Epsilon float64
	// QuantizeDelta is the delta of the quantization check.
	QuantizeDelta float64
}

// newCase fills the option-driven fields of a case.
func newCase[W semiring.Semiring[W]](name string, raw *fst.ConstFst[W], opts ...Option) Case[W] {
	cfg := newConfig(opts...)
	return Case[W]{
		Name:          name,
		Raw:           raw,
		Operands:      map[Operation]*fst.ConstFst[W]{},
		Random:        &WeightSource[W]{rng: cfg.rng, fn: cfg.weightFn},
		Epsilon:       cfg.epsilon,
		QuantizeDelta: cfg.quantizeDelta,
	}
}

// Operand returns the second operand of op.
// Errors: ErrNoOperand.
func (c Case[W]) Operand(op Operation) (*fst.ConstFst[W], error) {
	f, ok := c.Operands[op]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", c.Name, op, ErrNoOperand)
	}
	return f, nil
}

// Operations lists the operations that have an operand, sorted.
func (c Case[W]) Operations() []Operation {
	return slices.Sorted(maps.Keys(c.Operands))
}

// Weights returns the weights the algebra checks run on: both identities, the
// mapper constants, every weight of Raw and samples draws from Random.
func (c Case[W]) Weights(samples int) []W {
	ws := []W{semiring.Zero[W](), semiring.One[W](), c.PlusWeight, c.TimesWeight}
	if c.Raw != nil {
		for s := range fst.States[W](c.Raw) {
			final, _ := c.Raw.Final(s)
			ws = append(ws, final)
			arcs, _ := c.Raw.Arcs(s)
			for a := range arcs {
				ws = append(ws, a.Weight)
			}
		}
	}
	if c.Random != nil {
		ws = append(ws, c.Random.Draw(samples)...)
	}
	slices.SortFunc(ws, func(a, b W) int {
		switch va, vb := a.Value(), b.Value(); {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	})
	return slices.Compact(ws)
}

// PlusMapped returns Raw with PlusMapper{PlusWeight} applied.
func (c Case[W]) PlusMapped() (*fst.VectorFst[W], error) {
	return arcmap.Map[W](c.Raw, arcmap.PlusMapper[W]{Weight: c.PlusWeight})
}

// TimesMapped returns Raw with TimesMapper{TimesWeight} applied.
func (c Case[W]) TimesMapped() (*fst.VectorFst[W], error) {
	return arcmap.Map[W](c.Raw, arcmap.TimesMapper[W]{Weight: c.TimesWeight})
}

// QuantizeMapped returns Raw with QuantizeMapper{QuantizeDelta} applied.
func (c Case[W]) QuantizeMapped() (*fst.VectorFst[W], error) {
	return arcmap.Map[W](c.Raw, arcmap.QuantizeMapper[W]{Delta: c.QuantizeDelta})
}
