package analysis

import (
	"context"
	"log/slog"

	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
)

// Collector fetches movie snapshots for aggregation, tolerating per-item
// failures.
type Collector struct {
	fetcher movie.Fetcher
	logger  *slog.Logger
}

// NewCollector builds a Collector. A nil logger falls back to a no-op logger.
func NewCollector(fetcher movie.Fetcher, logger *slog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "collector"),
	}
}

// Collect loads every requested movie in order. An identifier that cannot be
// resolved is skipped with a warning; duplicates are fetched and returned
// independently. The returned slice may be shorter than ids, down to empty.
func (c *Collector) Collect(ctx context.Context, ids []int64) ([]movie.Movie, error) {
	movies := make([]movie.Movie, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := movie.Load(ctx, c.fetcher, id)
		if err != nil {
			c.logger.Warn("skipping movie",
				logging.Int64("movie_id", id),
				logging.Error(err))
			continue
		}
		movies = append(movies, m)
	}
	return movies, nil
}
