package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Print the header and statistics of binary automata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := a.info(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) info(w io.Writer, path string) error {
	h, err := fst.LoadHeader(path)
	if err != nil {
		return err
	}
	return byWeightType(h.WeightType,
		func() error { return printInfo[semiring.TropicalWeight](w, path) },
		func() error { return printInfo[semiring.LogWeight](w, path) },
		func() error { return printInfo[semiring.ProbabilityWeight](w, path) },
	)
}

func printInfo[W semiring.Semiring[W]](w io.Writer, path string) error {
	f, err := fst.Load[W](path)
	if err != nil {
		return err
	}
	finals := 0
	for s := range fst.States[W](f) {
		if ok, _ := fst.IsFinal[W](f, s); ok {
			finals++
		}
	}
	start := "none"
	if s, ok := f.Start(); ok {
		start = fmt.Sprint(s)
	}
	acc, err := fst.Accessible[W](f)
	if err != nil {
		return err
	}
	coacc, err := fst.Coaccessible[W](f)
	if err != nil {
		return err
	}
	acyclic, err := fst.IsAcyclic[W](f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n"+
		"  weight type  %s\n"+
		"  states       %d\n"+
		"  arcs         %d\n"+
		"  final states %d\n"+
		"  start        %s\n"+
		"  accessible   %d\n"+
		"  coaccessible %d\n"+
		"  acyclic      %t\n",
		path, semiring.TypeOf[W](), f.NumStates(), f.NumArcsTotal(), finals, start,
		count(acc), count(coacc), acyclic)
	return err
}

func count(flags []bool) int {
	n := 0
	for _, ok := range flags {
		if ok {
			n++
		}
	}
	return n
}
