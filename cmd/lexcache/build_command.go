package main

import (
	"github.com/spf13/cobra"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild the word cache from the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, cleanup, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cleanup()
			defer cache.Close(cmd.Context())
			return cache.Rebuild(cmd.Context())
		},
	}
}
