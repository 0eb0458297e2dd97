package main

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baron-chain/coinnet-bc/app"
)

const (
	flagChain     = "chain"
	flagOutput    = "output"
	flagFormat    = "format"
	flagTelemetry = "telemetry"
)

// defaultMetrics registers the genesis metrics on the default registerer at
// most once per process.
var defaultMetrics = sync.OnceValue(func() *app.GenesisMetrics {
	return app.NewGenesisMetrics(prometheus.DefaultRegisterer)
})

func buildSpecCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-spec",
		Short: "Write the chain spec of a preset or a chain spec file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel))
			if err != nil {
				return err
			}

			opts := []app.Option{app.WithLogger(logger)}
			if cast.ToBool(v.Get(flagTelemetry)) {
				opts = append(opts, app.WithMetrics(defaultMetrics()))
			}

			chainID := v.GetString(flagChain)
			cs, err := app.LoadChainSpec(chainID, opts...)
			if err != nil {
				return err
			}

			output := v.GetString(flagOutput)
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrapf(err, "create %s", output)
				}
				defer f.Close()
				w = f
			}

			if err := app.ExportChainSpec(cs, w, v.GetString(flagFormat)); err != nil {
				return errors.Wrapf(err, "export %s", cs.ID)
			}
			logger.Info("chain spec built", "chain", cs.ID, "type", string(cs.ChainType), "output", output)
			return nil
		},
	}

	cmd.Flags().String(flagChain, "", "preset id or path of a chain spec file (default dev)")
	cmd.Flags().StringP(flagOutput, "o", "", "write to this file instead of stdout")
	cmd.Flags().String(flagFormat, app.FormatJSON, "output format (json|yaml)")
	cmd.Flags().Bool(flagTelemetry, false, "record genesis metrics on the default prometheus registerer")
	return cmd
}
