// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// cases.go — built-in reference cases.
//
// Both cases mirror automata produced by the OpenFst/pynini generators that
// back the binary fixtures: fst_010 in the log algebra with its compose,
// concat and union operands, and fst_007 in the tropical algebra.

package fixtures

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Names of the built-in cases.
const (
	CaseFst010 = "fst_010"
	CaseFst007 = "fst_007"
)

// mapperWeight is the constant of the Plus and Times mappers in both cases.
const mapperWeight = 1.5

// arcLit is one arc of a literal automaton: src -ilabel:olabel/weight-> next.
type arcLit struct {
	src, next      fst.StateID
	ilabel, olabel fst.Label
	weight         float32
}

// literal describes a small automaton state by state.
type literal struct {
	states int
	start  fst.StateID
	finals map[fst.StateID]float32
	arcs   []arcLit
}

// build turns l into a frozen automaton over W.
func build[W semiring.Semiring[W]](l literal) (*fst.ConstFst[W], error) {
	f := fst.NewVectorFst[W]()
	f.AddStates(l.states)
	if err := f.SetStart(l.start); err != nil {
		return nil, err
	}
	for s, w := range l.finals {
		if err := f.SetFinal(s, semiring.New[W](w)); err != nil {
			return nil, err
		}
	}
	for _, a := range l.arcs {
		if err := f.AddArc(a.src, fst.NewArc(a.ilabel, a.olabel, semiring.New[W](a.weight), a.next)); err != nil {
			return nil, err
		}
	}
	return f.Freeze()
}

var (
	fst010Raw = literal{
		states: 5,
		start:  0,
		finals: map[fst.StateID]float32{3: 0.7, 4: 0.8},
		arcs: []arcLit{
			{src: 0, ilabel: 12, olabel: 12, weight: 0.3, next: 1},
			{src: 1, ilabel: 13, olabel: 13, weight: 0.4, next: 3},
			{src: 0, ilabel: 14, olabel: 14, weight: 0.5, next: 2},
			{src: 2, ilabel: 15, olabel: 15, weight: 0.6, next: 4},
		},
	}
	fst010Compose = literal{
		states: 3,
		start:  0,
		finals: map[fst.StateID]float32{2: 1.2},
		arcs: []arcLit{
			{src: 0, ilabel: 12, olabel: 2, weight: 1.7, next: 1},
			{src: 1, ilabel: 13, olabel: 2, weight: 1.7, next: 2},
		},
	}
	// fst010Concat is also the union operand.
	fst010Concat = literal{
		states: 3,
		start:  0,
		finals: map[fst.StateID]float32{2: 0.3},
		arcs: []arcLit{
			{src: 0, ilabel: 2, olabel: 12, weight: 1.2, next: 1},
			{src: 0, ilabel: 3, olabel: 1, weight: 2.2, next: 1},
			{src: 1, ilabel: 6, olabel: 3, weight: 2.3, next: 2},
			{src: 1, ilabel: 4, olabel: 2, weight: 1.7, next: 2},
		},
	}
	fst007Raw = literal{
		states: 5,
		start:  0,
		finals: map[fst.StateID]float32{4: 0.7},
		arcs: []arcLit{
			{src: 0, ilabel: 12, olabel: 25, weight: 0.3, next: 1},
			{src: 1, ilabel: 13, olabel: 26, weight: 0.4, next: 3},
			{src: 0, ilabel: 12, olabel: 25, weight: 0.3, next: 2},
			{src: 2, ilabel: 13, olabel: 26, weight: 0.4, next: 3},
			{src: 3, ilabel: 14, olabel: 27, weight: 0.6, next: 4},
		},
	}
)

// Fst010 returns the log-algebra case fst_010: two paths 0→1→3 and 0→2→4,
// finals 0.7 and 0.8, with compose, concat and union operands.
func Fst010(opts ...Option) (Case[semiring.LogWeight], error) {
	raw, err := build[semiring.LogWeight](fst010Raw)
	if err != nil {
		return Case[semiring.LogWeight]{}, err
	}
	c := newCase(CaseFst010, raw, opts...)
	c.PlusWeight, c.TimesWeight = mapperWeight, mapperWeight
	for op, l := range map[Operation]literal{OpCompose: fst010Compose, OpConcat: fst010Concat, OpUnion: fst010Concat} {
		if c.Operands[op], err = build[semiring.LogWeight](l); err != nil {
			return Case[semiring.LogWeight]{}, err
		}
	}
	return c, nil
}

// Fst007 returns the tropical-algebra case fst_007: a diamond 0→{1,2}→3→4
// with final 0.7 on state 4.
func Fst007(opts ...Option) (Case[semiring.TropicalWeight], error) {
	raw, err := build[semiring.TropicalWeight](fst007Raw)
	if err != nil {
		return Case[semiring.TropicalWeight]{}, err
	}
	c := newCase(CaseFst007, raw, opts...)
	c.PlusWeight, c.TimesWeight = mapperWeight, mapperWeight
	return c, nil
}
