package main

import (
	"fmt"

	"github.com/liznear/almanac/almanac"
	"github.com/liznear/almanac/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose  bool
	parallel int

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Map seeds through the stages of an almanac",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("fail to create logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every stage")
	cmd.PersistentFlags().IntVarP(&opts.parallel, "parallel", "p", 1, "number of goroutines used to evaluate seeds")

	cmd.AddCommand(newLowestCmd(opts), newTraceCmd(opts))
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// load reads the almanac at path and builds its pipeline.
func (o *rootOptions) load(path string) (*almanac.Almanac, *pipeline.Pipeline, error) {
	a, err := almanac.Load(path)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Debug("Almanac loaded",
		zap.String("file", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Stages)))
	p := a.Pipeline(
		pipeline.WithLogger(o.logger),
		pipeline.WithParallelism(o.parallel),
	)
	return a, p, nil
}
