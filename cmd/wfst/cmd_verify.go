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
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Decode binary automata and check round trip and freeze",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed, err := a.verify(cmd.Context(), args)
			for _, path := range args {
				status := "ok"
				if ferr, bad := failed[path]; bad {
					status = "FAIL: " + ferr.Error()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, status)
			}
			return err
		},
	}
}

// verify checks every file concurrently, at most a.jobs at a time. Every file
// is checked even when others fail; the returned map holds each failure.
func (a *app) verify(ctx context.Context, paths []string) (map[string]error, error) {
	var (
		mu     sync.Mutex
		failed = make(map[string]error)
		all    error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := verifyFile(path)
			if err != nil {
				a.log.Warn("verification failed", zap.String("path", path), zap.Error(err))
				mu.Lock()
				failed[path] = err
				all = multierr.Append(all, fmt.Errorf("%s: %w", path, err))
				mu.Unlock()
				return nil
			}
			a.log.Info("verified", zap.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failed, err
	}
	return failed, all
}

func verifyFile(path string) error {
	h, err := fst.LoadHeader(path)
	if err != nil {
		return err
	}
	return byWeightType(h.WeightType,
		func() error { return verifyTyped[semiring.TropicalWeight](path) },
		func() error { return verifyTyped[semiring.LogWeight](path) },
		func() error { return verifyTyped[semiring.ProbabilityWeight](path) },
	)
}

func verifyTyped[W semiring.Semiring[W]](path string) error {
	f, err := fst.Load[W](path)
	if err != nil {
		return err
	}
	thawed, err := fst.Copy[W](f)
	if err != nil {
		return err
	}
	return multierr.Combine(
		fixtures.CheckRoundTrip[W](f),
		fixtures.CheckFreeze(thawed),
	)
}
