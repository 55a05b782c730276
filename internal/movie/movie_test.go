package movie_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
	"github.com/gabrielfcoelh83/cine-insights/internal/tmdb"
)

type fakeFetcher struct {
	details map[int64]*tmdb.Movie
	credits map[int64]*tmdb.Credits
}

func (f *fakeFetcher) MovieDetails(_ context.Context, id int64) (*tmdb.Movie, error) {
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, tmdb.ErrNotFound
}

func (f *fakeFetcher) MovieCredits(_ context.Context, id int64) (*tmdb.Credits, error) {
	if c, ok := f.credits[id]; ok {
		return c, nil
	}
	return nil, tmdb.ErrNotFound
}

func TestFromPartsDerivesYearAndDirectors(t *testing.T) {
	details := &tmdb.Movie{
		ID:          550,
		Title:       "Fight Club",
		ReleaseDate: "1999-10-15",
		Popularity:  61.4,
		Revenue:     100853753,
		Genres:      []tmdb.Genre{{ID: 18, Name: "Drama"}},
	}
	credits := &tmdb.Credits{
		Cast: []tmdb.CastMember{
			{ID: 287, Name: "Brad Pitt", Order: 1},
			{ID: 819, Name: "Edward Norton", Order: 0},
		},
		Crew: []tmdb.CrewMember{
			{ID: 7467, Name: "David Fincher", Job: "Director"},
			{ID: 7469, Name: "Jim Uhls", Job: "Screenplay"},
		},
	}

	m := movie.FromParts(details, credits)

	if m.Year != 1999 {
		t.Fatalf("unexpected year: %d", m.Year)
	}
	if len(m.Directors) != 1 || m.Directors[0].ID != 7467 {
		t.Fatalf("unexpected directors: %#v", m.Directors)
	}
	// Cast is re-ordered by billing position.
	if m.Cast[0].ID != 819 || m.Cast[1].ID != 287 {
		t.Fatalf("cast not in billing order: %#v", m.Cast)
	}
	if len(m.GenreIDs) != 1 || m.GenreIDs[0] != 18 {
		t.Fatalf("unexpected genre ids: %#v", m.GenreIDs)
	}
}

func TestFromPartsTruncatesCastAndDefaultsMissingFields(t *testing.T) {
	details := &tmdb.Movie{ID: 1, Title: "Obscure", Revenue: -5}
	credits := &tmdb.Credits{}
	for i := 0; i < 14; i++ {
		credits.Cast = append(credits.Cast, tmdb.CastMember{ID: int64(i + 1), Order: i})
	}

	m := movie.FromParts(details, credits)

	if len(m.Cast) != movie.AggregationCastLimit {
		t.Fatalf("expected cast truncated to %d, got %d", movie.AggregationCastLimit, len(m.Cast))
	}
	if len(m.TopBilledCast()) != movie.SimilarityCastLimit {
		t.Fatalf("expected top-billed subset of %d, got %d", movie.SimilarityCastLimit, len(m.TopBilledCast()))
	}
	if m.Year != 0 {
		t.Fatalf("expected zero year for missing release date, got %d", m.Year)
	}
	if m.Revenue != 0 {
		t.Fatalf("negative revenue should clamp to zero, got %d", m.Revenue)
	}
	if len(m.Genres) != 0 {
		t.Fatalf("expected empty genre set, got %#v", m.Genres)
	}
}

func TestLoadSurfacesNotFound(t *testing.T) {
	fetcher := &fakeFetcher{details: map[int64]*tmdb.Movie{}, credits: map[int64]*tmdb.Credits{}}
	_, err := movie.Load(context.Background(), fetcher, 42)
	if !errors.Is(err, tmdb.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadUsesListingGenreIDsWhenDetailsLackGenres(t *testing.T) {
	fetcher := &fakeFetcher{
		details: map[int64]*tmdb.Movie{7: {ID: 7, Title: "Summary Only", GenreIDs: []int64{28, 12}}},
		credits: map[int64]*tmdb.Credits{7: {}},
	}

	m, err := movie.Load(context.Background(), fetcher, 7)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(m.GenreIDs) != 2 {
		t.Fatalf("expected genre ids from listing payload, got %#v", m.GenreIDs)
	}
}
