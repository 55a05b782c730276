package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabrielfcoelh83/cine-insights/internal/analysis"
	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
	"github.com/gabrielfcoelh83/cine-insights/internal/report"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <movie-id>...",
		Short: "Aggregate actor, genre, and box-office statistics for a list of movies",
		Long: `Fetch every requested movie from TMDB and report actor participation counts,
genre frequency, and the five top-grossing actors across the set.

Results are printed to the console and written to resultados_analise.json plus
three bar-chart images in the output directory. Movies that cannot be resolved
are skipped with a warning; the command fails only when none resolve.

Examples:
  cine-insights analyze 550 299536 24428 99861 157336
  cine-insights analyze --json 550 680`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.logger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			ids, skipped := parseMovieIDs(args)
			for _, arg := range skipped {
				logger.Warn("ignoring argument that is not a positive movie id",
					logging.String("argument", arg))
			}
			if len(ids) == 0 {
				return errors.New("no valid movie id provided")
			}

			client, err := ctx.newClient(cfg)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			collector := analysis.NewCollector(client, logger)
			movies, err := collector.Collect(cmd.Context(), ids)
			if err != nil {
				return err
			}
			if len(movies) == 0 {
				return fmt.Errorf("none of the %d requested movie(s) could be resolved", len(ids))
			}

			tally := analysis.Aggregate(movies)

			if jsonOutput {
				if err := writeJSON(cmd, tally); err != nil {
					return err
				}
			} else {
				report.RenderAnalysis(cmd.OutOrStdout(), tally)
			}

			writer := report.NewWriter(cfg.Output.Dir, logger)
			paths, err := writer.WriteAnalysis(tally)
			if err != nil {
				return fmt.Errorf("write reports: %w", err)
			}
			for _, path := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the tally as JSON instead of tables")
	return cmd
}
