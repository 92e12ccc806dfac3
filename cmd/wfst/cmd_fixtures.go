package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfst/fixtures"
	"github.com/katalvlaran/wfst/semiring"
)

func newFixturesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manage reference fixture directories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "export DIR",
			Short: "Write the built-in cases and their manifest into DIR",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := fixtures.NewStore(args[0], a.opts...)
				if err != nil {
					return err
				}
				m, err := fixtures.Builtin(store, a.opts...)
				if err != nil {
					return err
				}
				for _, name := range m.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "check DIR [CASE...]",
			Short: "Run every oracle check on the cases of DIR (all cases by default)",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.checkFixtures(cmd.Context(), cmd, args[0], args[1:])
			},
		},
	)
	return cmd
}

func (a *app) checkFixtures(ctx context.Context, cmd *cobra.Command, dir string, names []string) error {
	store, err := fixtures.NewStore(dir, a.opts...)
	if err != nil {
		return err
	}
	m, err := store.Manifest()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = m.Names()
	}
	samples := a.cfg.Samples
	if samples == 0 {
		samples = fixtures.DefaultSamples
	}

	var (
		mu  sync.Mutex
		all error
	)
	results := make([]string, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := a.checkCase(store, m, name, samples)
			if err != nil {
				results[i] = fmt.Sprintf("%s: FAIL (%d problems)", name, len(multierr.Errors(err)))
				mu.Lock()
				all = multierr.Append(all, err)
				mu.Unlock()
				return nil
			}
			results[i] = name + ": ok"
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, line := range results {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return all
}

// checkCase loads one case with the weight type its manifest entry declares
// and runs CheckCase on it.
func (a *app) checkCase(store *fixtures.Store, m *fixtures.Manifest, name string, samples int) error {
	entry, err := m.Lookup(name)
	if err != nil {
		return err
	}
	err = byWeightType(entry.WeightType,
		func() error { return checkTyped[semiring.TropicalWeight](store, m, name, samples, a.opts) },
		func() error { return checkTyped[semiring.LogWeight](store, m, name, samples, a.opts) },
		func() error { return checkTyped[semiring.ProbabilityWeight](store, m, name, samples, a.opts) },
	)
	if err != nil {
		a.log.Warn("case failed", zap.String("case", name), zap.Error(err))
		return err
	}
	a.log.Info("case passed", zap.String("case", name))
	return nil
}

func checkTyped[W semiring.Semiring[W]](store *fixtures.Store, m *fixtures.Manifest, name string, samples int, opts []fixtures.Option) error {
	c, err := fixtures.LoadCase[W](store, m, name, opts...)
	if err != nil {
		return err
	}
	return fixtures.CheckCase(c, samples)
}
