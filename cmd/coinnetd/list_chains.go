package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baron-chain/coinnet-bc/app"
)

func listChainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-chains",
		Short: "List the built-in chain presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, id := range app.ChainIDs() {
				desc, _ := app.ChainDescription(id)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", id, desc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
