package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "lexcache",
		Short:         "Build and query a length-indexed word cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.dictPath, "dict", "d", "expanded_word_list.txt", "Dictionary file, one word per line")
	rootCmd.PersistentFlags().StringVarP(&ctx.cachePath, "cache", "c", "word_cache.json", "Cache file location")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(newBuildCommand(ctx))
	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newLengthsCommand(ctx))
	rootCmd.AddCommand(newStaleCommand(ctx))

	return rootCmd
}
