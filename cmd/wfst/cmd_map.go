package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wfst/arcmap"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Mapper names accepted by --mapper.
const (
	mapIdentity  = "identity"
	mapPlus      = "plus"
	mapTimes     = "times"
	mapQuantize  = "quantize"
	mapRmWeight  = "rmweight"
	mapInputEps  = "input-epsilon"
	mapOutputEps = "output-epsilon"
)

type mapFlags struct {
	mapper string
	weight float32
	delta  float64
	output string
}

func newMapCmd(a *app) *cobra.Command {
	var mf mapFlags
	cmd := &cobra.Command{
		Use:   "map -o OUT IN",
		Short: "Apply a weight mapper to a binary automaton",
		Long: `Apply a weight mapper to every arc and final weight of IN and write the
result to OUT. Mappers: identity, plus, times, quantize, rmweight,
input-epsilon, output-epsilon.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mapFile(args[0], mf)
		},
	}
	cmd.Flags().StringVarP(&mf.mapper, "mapper", "m", mapIdentity, "mapper name")
	cmd.Flags().Float32VarP(&mf.weight, "weight", "w", 0, "constant of the plus and times mappers")
	cmd.Flags().Float64Var(&mf.delta, "delta", semiring.DefaultDelta, "quantization delta")
	cmd.Flags().StringVarP(&mf.output, "output", "o", "", "output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) mapFile(in string, mf mapFlags) error {
	h, err := fst.LoadHeader(in)
	if err != nil {
		return err
	}
	err = byWeightType(h.WeightType,
		func() error { return mapTyped[semiring.TropicalWeight](in, mf) },
		func() error { return mapTyped[semiring.LogWeight](in, mf) },
		func() error { return mapTyped[semiring.ProbabilityWeight](in, mf) },
	)
	if err != nil {
		return err
	}
	a.log.Info("mapped",
		zap.String("input", in),
		zap.String("output", mf.output),
		zap.String("mapper", mf.mapper),
		zap.String("weight_type", string(h.WeightType)))
	return nil
}

// newMapper resolves a mapper name for weight type W.
func newMapper[W semiring.Semiring[W]](mf mapFlags) (arcmap.Mapper[W], error) {
	w := semiring.New[W](mf.weight)
	switch mf.mapper {
	case mapIdentity:
		return arcmap.Identity[W]{}, nil
	case mapPlus:
		return arcmap.PlusMapper[W]{Weight: w}, nil
	case mapTimes:
		return arcmap.TimesMapper[W]{Weight: w}, nil
	case mapQuantize:
		if !(mf.delta > 0) {
			return nil, fmt.Errorf("--delta must be > 0, got %g", mf.delta)
		}
		return arcmap.QuantizeMapper[W]{Delta: mf.delta}, nil
	case mapRmWeight:
		return arcmap.RmWeightMapper[W]{}, nil
	case mapInputEps:
		return arcmap.InputEpsilonMapper[W]{}, nil
	case mapOutputEps:
		return arcmap.OutputEpsilonMapper[W]{}, nil
	default:
		return nil, fmt.Errorf("unknown mapper %q", mf.mapper)
	}
}

func mapTyped[W semiring.Semiring[W]](in string, mf mapFlags) error {
	m, err := newMapper[W](mf)
	if err != nil {
		return err
	}
	f, err := fst.Load[W](in)
	if err != nil {
		return err
	}
	out, err := arcmap.Map[W](f, m)
	if err != nil {
		return err
	}
	return fst.Save[W](mf.output, out)
}
