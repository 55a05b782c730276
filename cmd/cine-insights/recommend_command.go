package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabrielfcoelh83/cine-insights/internal/recommend"
	"github.com/gabrielfcoelh83/cine-insights/internal/report"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recommend <movie-id>",
		Short: "Recommend up to five movies similar to a seed movie",
		Long: `Score movies sharing at least one genre with the seed (plus TMDB's own
recommendation listing) by genre overlap, shared directors, shared cast,
popularity proximity, and release-year proximity, and return the top five.

The ranking is written to recomendacoes.json in the output directory. A seed
that cannot be resolved is a fatal error; candidates that fail to fetch are
dropped with a warning.

Example:
  cine-insights recommend 550`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.logger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			ids, _ := parseMovieIDs(args)
			if len(ids) != 1 {
				return fmt.Errorf("seed movie id must be a positive integer, got %q", args[0])
			}
			seedID := ids[0]

			client, err := ctx.newClient(cfg)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			recommender, err := recommend.New(client, logger, recommend.Options{
				Weights: recommend.Weights{
					Genre:      cfg.Recommend.GenreWeight,
					Director:   cfg.Recommend.DirectorWeight,
					Cast:       cfg.Recommend.CastWeight,
					Popularity: cfg.Recommend.PopularityWeight,
					Year:       cfg.Recommend.YearWeight,
				},
				YearCap:   cfg.Recommend.YearCap,
				PoolPages: cfg.Recommend.PoolPages,
			})
			if err != nil {
				return err
			}

			result, err := recommender.Recommend(cmd.Context(), seedID)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				report.RenderRecommendations(cmd.OutOrStdout(), result)
			}

			if len(result.Recommendations) == 0 {
				// Nothing to persist; the empty pool was already reported.
				return nil
			}
			writer := report.NewWriter(cfg.Output.Dir, logger)
			path, err := writer.WriteRecommendations(result)
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the ranking as JSON instead of tables")
	return cmd
}
