package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
	"github.com/gabrielfcoelh83/cine-insights/internal/tmdb"
)

// Limit is how many recommendations a run returns at most.
const Limit = 5

// Source is the TMDB surface the recommender consumes.
type Source interface {
	movie.Fetcher
	DiscoverByGenres(ctx context.Context, genreIDs []int64, page int) (*tmdb.Page, error)
	Recommendations(ctx context.Context, movieID int64, page int) (*tmdb.Page, error)
}

// ScoredCandidate pairs a candidate movie with its composite score and the
// sub-scores that produced it.
type ScoredCandidate struct {
	Movie     movie.Movie
	Score     float64
	SubScores SubScores
}

// Result is one recommendation run: the resolved seed plus up to Limit
// candidates ranked descending by score. PoolSize records how many distinct
// candidates were scored, so a shortfall can be reported rather than masked.
type Result struct {
	Seed            movie.Movie
	Recommendations []ScoredCandidate
	PoolSize        int
}

// Options tune a Recommender.
type Options struct {
	Weights Weights
	// YearCap is the horizon for the temporal proximity sub-score.
	YearCap int
	// PoolPages bounds how many discover pages feed the pool.
	PoolPages int
}

// Recommender scores candidate movies against a seed movie.
type Recommender struct {
	source    Source
	logger    *slog.Logger
	weights   Weights
	yearCap   int
	poolPages int
}

// New builds a Recommender, validating the weight configuration.
func New(source Source, logger *slog.Logger, opts Options) (*Recommender, error) {
	if source == nil {
		return nil, fmt.Errorf("recommend: source required")
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	if opts.YearCap <= 0 {
		return nil, fmt.Errorf("recommend: year cap must be positive, got %d", opts.YearCap)
	}
	if opts.PoolPages <= 0 {
		opts.PoolPages = 1
	}
	return &Recommender{
		source:    source,
		logger:    logging.NewComponentLogger(logger, "recommender"),
		weights:   opts.Weights,
		yearCap:   opts.YearCap,
		poolPages: opts.PoolPages,
	}, nil
}

// Recommend resolves the seed, scores the candidate pool, and returns the top
// candidates. A seed that cannot be resolved is fatal; a candidate that fails
// to fetch is dropped with a warning. Fewer than Limit candidates in the pool
// is a documented shortfall, not an error.
func (r *Recommender) Recommend(ctx context.Context, seedID int64) (Result, error) {
	seed, err := movie.Load(ctx, r.source, seedID)
	if err != nil {
		return Result{}, fmt.Errorf("seed movie %d: %w", seedID, err)
	}

	candidateIDs := r.collectPool(ctx, seed)
	result := Result{Seed: seed, PoolSize: len(candidateIDs)}

	scored := make([]ScoredCandidate, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		candidate, err := movie.Load(ctx, r.source, id)
		if err != nil {
			r.logger.Warn("dropping candidate",
				logging.Int64("movie_id", id),
				logging.Error(err))
			result.PoolSize--
			continue
		}
		score, sub := Score(seed, candidate, r.weights, r.yearCap)
		scored = append(scored, ScoredCandidate{Movie: candidate, Score: score, SubScores: sub})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Movie.Popularity != b.Movie.Popularity {
			return a.Movie.Popularity > b.Movie.Popularity
		}
		return a.Movie.ID < b.Movie.ID
	})
	if len(scored) > Limit {
		scored = scored[:Limit]
	}
	result.Recommendations = scored

	r.logger.Info("recommendation run complete",
		logging.Int64("seed_id", seedID),
		logging.Int("pool_size", result.PoolSize),
		logging.Int("returned", len(result.Recommendations)))
	return result, nil
}

// collectPool gathers candidate IDs from genre discovery and TMDB's own
// recommendations listing, excluding the seed and duplicate identifiers.
// Listing failures degrade the pool instead of aborting the run.
func (r *Recommender) collectPool(ctx context.Context, seed movie.Movie) []int64 {
	seen := map[int64]struct{}{seed.ID: {}}
	var ids []int64

	add := func(page *tmdb.Page) {
		for _, summary := range page.Results {
			if _, ok := seen[summary.ID]; ok {
				continue
			}
			seen[summary.ID] = struct{}{}
			ids = append(ids, summary.ID)
		}
	}

	if len(seed.GenreIDs) == 0 {
		r.logger.Warn("seed has no genres; candidate pool limited to TMDB recommendations",
			logging.Int64("seed_id", seed.ID))
	} else {
		for page := 1; page <= r.poolPages; page++ {
			listing, err := r.source.DiscoverByGenres(ctx, seed.GenreIDs, page)
			if err != nil {
				r.logger.Warn("discover page failed",
					logging.Int("page", page),
					logging.Error(err))
				continue
			}
			add(listing)
			if page >= listing.TotalPages {
				break
			}
		}
	}

	listing, err := r.source.Recommendations(ctx, seed.ID, 1)
	if err != nil {
		r.logger.Warn("recommendations listing failed",
			logging.Int64("seed_id", seed.ID),
			logging.Error(err))
	} else {
		// The listing is not genre-bounded; keep the shared-genre guarantee of
		// the pool by filtering on the summary genre ids. A seed without
		// genres accepts everything, since no genre bound is expressible.
		if len(seed.GenreIDs) > 0 {
			filtered := *listing
			filtered.Results = nil
			for _, summary := range listing.Results {
				if sharesGenre(seed.GenreIDs, summary.GenreIDs) {
					filtered.Results = append(filtered.Results, summary)
				}
			}
			listing = &filtered
		}
		add(listing)
	}

	return ids
}

func sharesGenre(seed, candidate []int64) bool {
	set := toSet(seed)
	for _, id := range candidate {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
