package tmdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabrielfcoelh83/cine-insights/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestMovieDetailsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("language") != "pt-BR" {
			t.Fatalf("expected language parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","release_date":"1999-10-15","popularity":61.4,"revenue":100853753,"genres":[{"id":18,"name":"Drama"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "pt-BR")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	movie, err := client.MovieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("MovieDetails returned error: %v", err)
	}
	if movie.Title != "Fight Club" || movie.Revenue != 100853753 {
		t.Fatalf("unexpected movie: %#v", movie)
	}
	if len(movie.Genres) != 1 || movie.Genres[0].Name != "Drama" {
		t.Fatalf("unexpected genres: %#v", movie.Genres)
	}
}

func TestMovieDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.MovieDetails(context.Background(), 999999)
	if !errors.Is(err, tmdb.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMovieCreditsDecodesCastOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550/credits" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":550,"cast":[{"id":819,"name":"Edward Norton","order":0},{"id":287,"name":"Brad Pitt","order":1}],"crew":[{"id":7467,"name":"David Fincher","job":"Director"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	credits, err := client.MovieCredits(context.Background(), 550)
	if err != nil {
		t.Fatalf("MovieCredits returned error: %v", err)
	}
	if len(credits.Cast) != 2 || credits.Cast[1].Order != 1 {
		t.Fatalf("unexpected cast: %#v", credits.Cast)
	}
	if len(credits.Crew) != 1 || credits.Crew[0].Job != "Director" {
		t.Fatalf("unexpected crew: %#v", credits.Crew)
	}
}

func TestDiscoverByGenresBuildsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("with_genres") != "18,53" {
			t.Fatalf("unexpected with_genres: %q", q.Get("with_genres"))
		}
		if q.Get("page") != "2" {
			t.Fatalf("unexpected page: %q", q.Get("page"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[{"id":680,"title":"Pulp Fiction","genre_ids":[18,53]}],"total_pages":10,"total_results":200}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	page, err := client.DiscoverByGenres(context.Background(), []int64{18, 53}, 2)
	if err != nil {
		t.Fatalf("DiscoverByGenres returned error: %v", err)
	}
	if len(page.Results) != 1 || page.Results[0].ID != 680 {
		t.Fatalf("unexpected page: %#v", page)
	}
	if len(page.Results[0].GenreIDs) != 2 {
		t.Fatalf("expected genre_ids to decode, got %#v", page.Results[0].GenreIDs)
	}
}

func TestDiscoverByGenresRequiresGenres(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.DiscoverByGenres(context.Background(), nil, 1); err == nil {
		t.Fatal("expected error for empty genre list")
	}
}

func TestRecommendationsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Recommendations(context.Background(), 550, 1); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}
