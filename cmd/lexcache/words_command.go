package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newWordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "words <length>",
		Short: "Print the cached words of the given length, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("length must be a positive integer, got %q", args[0])
			}
			cache, cleanup, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cleanup()
			defer cache.Close(cmd.Context())

			words, err := cache.Words(cmd.Context(), n)
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newLengthsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lengths",
		Short: "Print the word lengths present in the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, cleanup, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cleanup()
			defer cache.Close(cmd.Context())

			lengths, err := cache.Lengths(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range lengths {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
