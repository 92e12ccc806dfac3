// SPDX-License-Identifier: MIT
// Package: wfst/arcmap
//
// mapper.go — the Mapper contract and the built-in mappers.

package arcmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Mapper transforms one arc or one final weight at a time. MapArc must keep
// arc.NextState.
type Mapper[W semiring.Semiring[W]] interface {
	MapArc(arc fst.Arc[W]) (fst.Arc[W], error)
	MapFinal(w W) (W, error)
}

// WeightFunc adapts a weight transform into a Mapper applied to arc weights
// and final weights alike.
type WeightFunc[W semiring.Semiring[W]] func(w W) (W, error)

// MapArc applies fn to arc.Weight.
func (fn WeightFunc[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	w, err := fn(arc.Weight)
	if err != nil {
		return arc, err
	}
	arc.Weight = w
	return arc, nil
}

// MapFinal applies fn to w.
func (fn WeightFunc[W]) MapFinal(w W) (W, error) { return fn(w) }

// Identity returns every arc and weight unchanged.
type Identity[W semiring.Semiring[W]] struct{}

// MapArc returns arc unchanged.
func (Identity[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) { return arc, nil }

// MapFinal returns w unchanged.
func (Identity[W]) MapFinal(w W) (W, error) { return w, nil }

// PlusMapper replaces every weight w with w ⊕ Weight.
type PlusMapper[W semiring.Semiring[W]] struct {
	Weight W
}

// MapArc replaces arc.Weight with arc.Weight ⊕ m.Weight.
func (m PlusMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	return WeightFunc[W](m.MapFinal).MapArc(arc)
}

// MapFinal returns w ⊕ m.Weight.
func (m PlusMapper[W]) MapFinal(w W) (W, error) { return w.Plus(m.Weight) }

// TimesMapper replaces every weight w with w ⊗ Weight.
type TimesMapper[W semiring.Semiring[W]] struct {
	Weight W
}

// MapArc replaces arc.Weight with arc.Weight ⊗ m.Weight.
func (m TimesMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	return WeightFunc[W](m.MapFinal).MapArc(arc)
}

// MapFinal returns w ⊗ m.Weight.
func (m TimesMapper[W]) MapFinal(w W) (W, error) { return w.Times(m.Weight) }

// QuantizeMapper rounds every weight to the nearest multiple of Delta.
// A zero Delta means semiring.DefaultDelta.
type QuantizeMapper[W semiring.Semiring[W]] struct {
	Delta float64
}

func (m QuantizeMapper[W]) delta() float64 {
	if m.Delta == 0 {
		return semiring.DefaultDelta
	}
	return m.Delta
}

// MapArc quantizes arc.Weight.
func (m QuantizeMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	arc.Weight = arc.Weight.Quantize(m.delta())
	return arc, nil
}

// MapFinal quantizes w.
func (m QuantizeMapper[W]) MapFinal(w W) (W, error) { return w.Quantize(m.delta()), nil }

// RmWeightMapper maps every non-Zero weight to One and keeps Zero.
type RmWeightMapper[W semiring.Semiring[W]] struct{}

// MapArc replaces a non-Zero arc.Weight with One.
func (RmWeightMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	arc.Weight = rmWeight(arc.Weight)
	return arc, nil
}

// MapFinal returns One for a non-Zero w and Zero otherwise.
func (RmWeightMapper[W]) MapFinal(w W) (W, error) { return rmWeight(w), nil }

func rmWeight[W semiring.Semiring[W]](w W) W {
	if w.IsZero() {
		return w
	}
	return semiring.One[W]()
}

// InputEpsilonMapper sets every input label to fst.EpsLabel.
type InputEpsilonMapper[W semiring.Semiring[W]] struct{}

// MapArc clears arc.ILabel.
func (InputEpsilonMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	arc.ILabel = fst.EpsLabel
	return arc, nil
}

// MapFinal returns w unchanged.
func (InputEpsilonMapper[W]) MapFinal(w W) (W, error) { return w, nil }

// OutputEpsilonMapper sets every output label to fst.EpsLabel.
type OutputEpsilonMapper[W semiring.Semiring[W]] struct{}

// MapArc clears arc.OLabel.
func (OutputEpsilonMapper[W]) MapArc(arc fst.Arc[W]) (fst.Arc[W], error) {
	arc.OLabel = fst.EpsLabel
	return arc, nil
}

// MapFinal returns w unchanged.
func (OutputEpsilonMapper[W]) MapFinal(w W) (W, error) { return w, nil }
