package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStaleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stale",
		Short: "Report whether the cache needs a rebuild",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, cleanup, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cleanup()
			defer cache.Close(cmd.Context())

			stale, err := cache.Stale(cmd.Context())
			if err != nil {
				return err
			}
			if stale {
				fmt.Fprintln(cmd.OutOrStdout(), "stale")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "fresh")
			}
			return nil
		},
	}
}
