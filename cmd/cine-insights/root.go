package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var outputFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &outputFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "cine-insights",
		Short:         "Movie statistics and recommendations backed by TMDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output-dir", "o", "", "Directory for report files (overrides output.dir)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
