package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wfst/fixtures"
)

// app carries what every subcommand shares: the logger and the harness
// options resolved from --config.
type app struct {
	configPath string
	logLevel   string
	dev        bool
	jobs       int

	log  *zap.Logger
	cfg  fixtures.Config
	opts []fixtures.Option
}

// newRootCmd wires the command tree. Each call builds fresh commands and
// flags, so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop(), cfg: fixtures.DefaultConfig()}
	root := &cobra.Command{
		Use:           "wfst",
		Short:         "Inspect, verify and transform binary weighted automata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "harness configuration (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.dev, "dev", false, "human-readable development logging")
	root.PersistentFlags().IntVarP(&a.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files or cases checked concurrently")

	root.AddCommand(
		newInfoCmd(a),
		newVerifyCmd(a),
		newMapCmd(a),
		newFixturesCmd(a),
	)
	return root
}

// setup builds the logger and loads the harness configuration.
func (a *app) setup() error {
	level, err := zapcore.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	if a.dev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.log, err = zcfg.Build(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if a.jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1, got %d", a.jobs)
	}

	if a.configPath != "" {
		if a.cfg, err = fixtures.LoadConfig(a.configPath); err != nil {
			return err
		}
		a.log.Info("configuration loaded", zap.String("path", a.configPath))
	}
	if a.opts, err = a.cfg.Options(); err != nil {
		return err
	}
	a.opts = append(a.opts, fixtures.WithLogger(a.log))
	return nil
}
