// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// check.go — oracle checks. Each check collects every violation it finds
// instead of stopping at the first one; the result is nil or a multierr.

package fixtures

import (
	"bytes"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/katalvlaran/wfst/arcmap"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// CheckSemiring verifies the semiring laws of W over ws with tolerance eps:
// identities and annihilation for every x, commutativity of Plus for every
// pair, associativity of Plus and Times and both distributive laws for every
// triple.
// Complexity: O(len(ws)^3).
func CheckSemiring[W semiring.Semiring[W]](ws []W, eps float64) error {
	l := lawChecker[W]{eps: eps}
	zero, one := semiring.Zero[W](), semiring.One[W]()
	for _, x := range ws {
		l.equal("Plus(Zero, x)", x, l.plus(zero, x))
		l.equal("Plus(x, Zero)", x, l.plus(x, zero))
		l.equal("Times(One, x)", x, l.times(one, x))
		l.equal("Times(x, One)", x, l.times(x, one))
		l.zero("Times(Zero, x)", l.times(zero, x), x)
		l.zero("Times(x, Zero)", l.times(x, zero), x)
	}
	for _, a := range ws {
		for _, b := range ws {
			l.equal(fmt.Sprintf("Plus commutes for %v, %v", a, b), l.plus(a, b), l.plus(b, a))
			for _, c := range ws {
				l.equal(fmt.Sprintf("Plus associates for %v, %v, %v", a, b, c),
					l.plus(l.plus(a, b), c), l.plus(a, l.plus(b, c)))
				l.equal(fmt.Sprintf("Times associates for %v, %v, %v", a, b, c),
					l.times(l.times(a, b), c), l.times(a, l.times(b, c)))
				l.equal(fmt.Sprintf("left distributivity for %v, %v, %v", a, b, c),
					l.times(a, l.plus(b, c)), l.plus(l.times(a, b), l.times(a, c)))
				l.equal(fmt.Sprintf("right distributivity for %v, %v, %v", a, b, c),
					l.times(l.plus(a, b), c), l.plus(l.times(a, c), l.times(b, c)))
			}
		}
	}
	return l.err
}

// lawChecker accumulates arithmetic errors and law violations.
type lawChecker[W semiring.Semiring[W]] struct {
	eps float64
	err error
}

func (l *lawChecker[W]) plus(a, b W) W {
	r, err := a.Plus(b)
	l.err = multierr.Append(l.err, err)
	return r
}

func (l *lawChecker[W]) times(a, b W) W {
	r, err := a.Times(b)
	l.err = multierr.Append(l.err, err)
	return r
}

func (l *lawChecker[W]) equal(law string, want, got W) {
	if !want.ApproxEqual(got, l.eps) {
		l.err = multierr.Append(l.err, fmt.Errorf("%s: %v != %v: %w", law, want, got, ErrLawViolation))
	}
}

func (l *lawChecker[W]) zero(law string, got, x W) {
	if !got.IsZero() {
		l.err = multierr.Append(l.err, fmt.Errorf("%s with x = %v: got %v: %w", law, x, got, ErrLawViolation))
	}
}

// CheckRoundTrip encodes f, decodes it as W, compares the result with f
// exactly and re-encodes it, expecting identical bytes.
func CheckRoundTrip[W semiring.Semiring[W]](f fst.Fst[W]) error {
	data, err := fst.Marshal(f)
	if err != nil {
		return fmt.Errorf("CheckRoundTrip: %w", err)
	}
	got, err := fst.Unmarshal[W](data)
	if err != nil {
		return fmt.Errorf("CheckRoundTrip: %w", err)
	}
	if d := fst.Diff[W](f, got, 0); d != "" {
		err = multierr.Append(err, fmt.Errorf("CheckRoundTrip: decoded %s: %w", d, ErrMismatch))
	}
	again, rerr := fst.Marshal[W](got)
	if rerr != nil {
		return multierr.Append(err, fmt.Errorf("CheckRoundTrip: re-encode: %w", rerr))
	}
	if !bytes.Equal(data, again) {
		err = multierr.Append(err, fmt.Errorf("CheckRoundTrip: re-encoding differs (%d vs %d bytes): %w",
			len(data), len(again), ErrMismatch))
	}
	return err
}

// CheckFreeze freezes f and verifies the snapshot is observationally equal to
// f, and that thawing it again yields an equal builder.
func CheckFreeze[W semiring.Semiring[W]](f *fst.VectorFst[W]) error {
	frozen, err := f.Freeze()
	if err != nil {
		return fmt.Errorf("CheckFreeze: %w", err)
	}
	if d := fst.Diff[W](f, frozen, 0); d != "" {
		err = multierr.Append(err, fmt.Errorf("CheckFreeze: frozen %s: %w", d, ErrMismatch))
	}
	thawed, cerr := fst.Copy[W](frozen)
	if cerr != nil {
		return multierr.Append(err, fmt.Errorf("CheckFreeze: %w", cerr))
	}
	if d := fst.Diff[W](frozen, thawed, 0); d != "" {
		err = multierr.Append(err, fmt.Errorf("CheckFreeze: thawed %s: %w", d, ErrMismatch))
	}
	return err
}

// CheckMapped verifies that mapped is src with op applied to every arc weight
// and every final weight of a final state, everything else unchanged.
func CheckMapped[W semiring.Semiring[W]](src, mapped fst.Fst[W], op func(W) (W, error), eps float64) error {
	if src.NumStates() != mapped.NumStates() {
		return fmt.Errorf("CheckMapped: NumStates %d != %d: %w", src.NumStates(), mapped.NumStates(), ErrMismatch)
	}
	ss, _ := src.Start()
	ms, _ := mapped.Start()
	var err error
	if ss != ms {
		err = multierr.Append(err, fmt.Errorf("CheckMapped: Start %d != %d: %w", ss, ms, ErrMismatch))
	}
	for s := range fst.States(src) {
		sf, _ := src.Final(s)
		mf, _ := mapped.Final(s)
		want := sf
		if !sf.IsZero() {
			var oerr error
			if want, oerr = op(sf); oerr != nil {
				err = multierr.Append(err, oerr)
				continue
			}
		}
		if !want.ApproxEqual(mf, eps) {
			err = multierr.Append(err, fmt.Errorf("CheckMapped: Final(%d) = %v, want %v: %w", s, mf, want, ErrMismatch))
		}
		// mapped keeps arc order, so the two sequences pair up index by index
		srcArcs, _ := src.Arcs(s)
		mappedArcs, _ := mapped.Arcs(s)
		got := slices.Collect(mappedArcs)
		i := 0
		for a := range srcArcs {
			if i >= len(got) {
				err = multierr.Append(err, fmt.Errorf("CheckMapped: state %d lost arc %d: %w", s, i, ErrMismatch))
				break
			}
			w, oerr := op(a.Weight)
			if oerr != nil {
				err = multierr.Append(err, oerr)
			}
			b := got[i]
			if a.ILabel != b.ILabel || a.OLabel != b.OLabel || a.NextState != b.NextState || !w.ApproxEqual(b.Weight, eps) {
				err = multierr.Append(err, fmt.Errorf("CheckMapped: arc %d of state %d = %v, want %v/%v: %w", i, s, b, a, w, ErrMismatch))
			}
			i++
		}
		if i < len(got) {
			err = multierr.Append(err, fmt.Errorf("CheckMapped: state %d gained %d arcs: %w", s, len(got)-i, ErrMismatch))
		}
	}
	return err
}

// CheckCase runs every check on c: the algebra laws over c.Weights(samples),
// freeze and round trip of the raw automaton and its operands, and the Plus,
// Times and Quantize mappings with their round trips.
func CheckCase[W semiring.Semiring[W]](c Case[W], samples int) error {
	prefix := func(err error) error {
		if err == nil {
			return nil
		}
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	var err error
	err = multierr.Append(err, prefix(CheckSemiring(c.Weights(samples), c.Epsilon)))

	thawed, cerr := fst.Copy[W](c.Raw)
	if cerr != nil {
		return multierr.Append(err, prefix(cerr))
	}
	err = multierr.Append(err, prefix(CheckFreeze(thawed)))
	err = multierr.Append(err, prefix(CheckRoundTrip[W](c.Raw)))
	for _, op := range c.Operations() {
		if rerr := CheckRoundTrip[W](c.Operands[op]); rerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %s operand: %w", c.Name, op, rerr))
		}
	}

	mappings := []struct {
		name string
		run  func() (*fst.VectorFst[W], error)
		op   func(W) (W, error)
	}{
		{"plus", c.PlusMapped, func(w W) (W, error) { return w.Plus(c.PlusWeight) }},
		{"times", c.TimesMapped, func(w W) (W, error) { return w.Times(c.TimesWeight) }},
		{"quantize", c.QuantizeMapped, arcmap.QuantizeMapper[W]{Delta: c.QuantizeDelta}.MapFinal},
	}
	for _, m := range mappings {
		mapped, merr := m.run()
		if merr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %s mapper: %w", c.Name, m.name, merr))
			continue
		}
		if merr = CheckMapped[W](c.Raw, mapped, m.op, c.Epsilon); merr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %s mapper: %w", c.Name, m.name, merr))
		}
		if merr = CheckRoundTrip[W](mapped); merr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %s mapper: %w", c.Name, m.name, merr))
		}
	}
	return err
}
