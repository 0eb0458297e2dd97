package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/baron-chain/coinnet-bc/types"
)

const (
	flagLogLevel   = "log_level"
	flagSS58Prefix = "ss58-prefix"
)

// NewRootCmd creates the root command of coinnetd. Flags can also be set
// through COINNET_ prefixed environment variables.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(appEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Genesis and chain spec tool for coinnet networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommandContext(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (debug|info|error or module:level pairs)")
	rootCmd.PersistentFlags().Uint16(flagSS58Prefix, types.DefaultSS58Prefix, "SS58 network prefix of printed addresses")

	rootCmd.AddCommand(
		buildSpecCommand(v),
		listChainsCommand(),
		keyCommand(v),
	)
	return rootCmd
}

func setupCommandContext(cmd *cobra.Command, v *viper.Viper) error {
	cmd.SetOut(cmd.OutOrStdout())
	cmd.SetErr(cmd.ErrOrStderr())

	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := v.BindPFlags(fs); err != nil {
			return err
		}
	}

	prefix, err := cast.ToUint16E(v.Get(flagSS58Prefix))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", flagSS58Prefix, err)
	}
	return initConfig(prefix)
}

// initConfig sets and seals the address format. A process that already sealed
// it accepts only the same prefix again.
func initConfig(prefix uint16) error {
	if prefix > types.MaxSS58Prefix {
		return fmt.Errorf("ss58 prefix %d exceeds %d", prefix, types.MaxSS58Prefix)
	}

	cfg := types.GetConfig()
	if cfg.IsSealed() {
		if cfg.GetSS58Prefix() != prefix {
			return fmt.Errorf("address format already configured with prefix %d", cfg.GetSS58Prefix())
		}
		return nil
	}
	cfg.SetSS58Prefix(prefix)
	cfg.Seal()
	return nil
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	option, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, option), nil
}
