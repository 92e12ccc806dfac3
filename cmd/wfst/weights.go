package main

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// byWeightType runs the callback matching wt. Binary files carry their weight
// type in the header, so commands read it first and instantiate their generic
// code here.
func byWeightType(wt semiring.Type, tropical, log, probability func() error) error {
	switch wt {
	case semiring.TypeTropical:
		return tropical()
	case semiring.TypeLog:
		return log()
	case semiring.TypeProbability:
		return probability()
	default:
		return fmt.Errorf("weight type %q: %w", wt, fst.ErrWeightAlgebraMismatch)
	}
}
