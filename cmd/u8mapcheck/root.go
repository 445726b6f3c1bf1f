package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-trieindex/internal/modelcheck"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	cfg      modelcheck.Config
	logLevel string
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.Int64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "seed for the generated operation stream")
	fs.IntVar(&o.cfg.Batches, "batches", o.cfg.Batches, "number of operation batches")
	fs.IntVar(&o.cfg.OpsPerBatch, "ops", o.cfg.OpsPerBatch, "operations per batch")
	fs.IntVar(&o.cfg.KeySpace, "keyspace", o.cfg.KeySpace, "keys are drawn from [0, keyspace), at most 256")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (DEBUG, INFO, NOOP, ...)")
}

func newRootCmd() *cobra.Command {
	o := &options{
		cfg:      modelcheck.DefaultConfig(),
		logLevel: "INFO",
	}

	cmd := &cobra.Command{
		Use:           "u8mapcheck",
		Short:         "Model-check the ordered byte map",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.New(o.logLevel)
			defer logger.OnExit()
			log := logger.Sugar.WithServiceName("u8mapcheck")

			c, err := modelcheck.NewChecker(log, o.cfg)
			if err != nil {
				return err
			}
			r, err := c.Run(cmd.Context())
			if err != nil {
				log.Infof("FAILED after %d ops: %v", r.Ops, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", r)
			return nil
		},
	}
	bindFlags(cmd.Flags(), o)
	return cmd
}
