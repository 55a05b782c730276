// Package movie defines the immutable movie snapshot consumed by the
// aggregation and recommendation components, and the loader that assembles it
// from TMDB detail and credit payloads.
package movie

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/gabrielfcoelh83/cine-insights/internal/tmdb"
)

// AggregationCastLimit bounds how many top-billed cast members count toward
// participation and revenue tallies.
const AggregationCastLimit = 10

// SimilarityCastLimit bounds the cast subset compared when scoring candidate
// similarity.
const SimilarityCastLimit = 5

// Person is an actor or director reference.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// Movie is a snapshot of one TMDB movie, fetched once per run and never
// mutated. Cast preserves top-billed order and is already truncated to
// AggregationCastLimit.
type Movie struct {
	ID         int64
	Title      string
	Year       int
	Genres     []string
	GenreIDs   []int64
	Popularity float64
	Revenue    int64
	Cast       []Person
	Directors  []Person
}

// Fetcher is the subset of the TMDB API needed to load one movie.
type Fetcher interface {
	MovieDetails(ctx context.Context, movieID int64) (*tmdb.Movie, error)
	MovieCredits(ctx context.Context, movieID int64) (*tmdb.Credits, error)
}

// Load fetches details and credits for one movie and assembles the snapshot.
func Load(ctx context.Context, fetcher Fetcher, movieID int64) (Movie, error) {
	details, err := fetcher.MovieDetails(ctx, movieID)
	if err != nil {
		return Movie{}, fmt.Errorf("load movie %d: %w", movieID, err)
	}
	credits, err := fetcher.MovieCredits(ctx, movieID)
	if err != nil {
		return Movie{}, fmt.Errorf("load credits %d: %w", movieID, err)
	}
	return FromParts(details, credits), nil
}

// FromParts merges a TMDB detail payload with its credits into a Movie.
// Missing fields map to neutral values: empty genre set, zero revenue,
// zero year.
func FromParts(details *tmdb.Movie, credits *tmdb.Credits) Movie {
	m := Movie{
		ID:         details.ID,
		Title:      details.Title,
		Year:       yearOf(details.ReleaseDate),
		Popularity: details.Popularity,
		Revenue:    details.Revenue,
	}
	if m.Revenue < 0 {
		m.Revenue = 0
	}
	for _, g := range details.Genres {
		m.Genres = append(m.Genres, g.Name)
		m.GenreIDs = append(m.GenreIDs, g.ID)
	}
	if len(m.GenreIDs) == 0 && len(details.GenreIDs) > 0 {
		m.GenreIDs = append(m.GenreIDs, details.GenreIDs...)
	}
	if credits != nil {
		cast := make([]tmdb.CastMember, len(credits.Cast))
		copy(cast, credits.Cast)
		sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
		if len(cast) > AggregationCastLimit {
			cast = cast[:AggregationCastLimit]
		}
		for _, member := range cast {
			m.Cast = append(m.Cast, Person{ID: member.ID, Name: member.Name})
		}
		for _, member := range credits.Crew {
			if member.Job == "Director" {
				m.Directors = append(m.Directors, Person{ID: member.ID, Name: member.Name})
			}
		}
	}
	return m
}

// TopBilledCast returns the similarity comparison subset of the cast.
func (m Movie) TopBilledCast() []Person {
	if len(m.Cast) <= SimilarityCastLimit {
		return m.Cast
	}
	return m.Cast[:SimilarityCastLimit]
}

func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
