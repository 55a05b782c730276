package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound reports that TMDB has no record for the requested identifier.
var ErrNotFound = errors.New("tmdb: not found")

// Genre is a TMDB genre label.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie models a TMDB movie payload. Detail lookups populate Genres and
// Revenue; listing endpoints (discover, recommendations) populate GenreIDs
// instead and leave Revenue zero.
type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
	Revenue       int64   `json:"revenue"`
	Genres        []Genre `json:"genres"`
	GenreIDs      []int64 `json:"genre_ids"`
	PosterPath    string  `json:"poster_path"`
}

// CastMember is a single acting credit. Order is the billing position.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a single crew credit.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits models the TMDB credits payload for one movie.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Page models a paginated TMDB movie listing.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// API defines the TMDB operations consumed by the rest of the repository.
type API interface {
	MovieDetails(ctx context.Context, movieID int64) (*Movie, error)
	MovieCredits(ctx context.Context, movieID int64) (*Credits, error)
	DiscoverByGenres(ctx context.Context, genreIDs []int64, page int) (*Page, error)
	Recommendations(ctx context.Context, movieID int64, page int) (*Page, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// MovieDetails fetches movie metadata (genres, revenue, popularity) by TMDB ID.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &payload); err != nil {
		return nil, fmt.Errorf("movie details %d: %w", movieID, err)
	}
	return &payload, nil
}

// MovieCredits fetches the cast and crew credited on a movie.
func (c *Client) MovieCredits(ctx context.Context, movieID int64) (*Credits, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload Credits
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &payload); err != nil {
		return nil, fmt.Errorf("movie credits %d: %w", movieID, err)
	}
	return &payload, nil
}

// DiscoverByGenres lists movies sharing at least one of the supplied genres,
// most popular first. TMDB treats comma-separated genre IDs as OR.
func (c *Client) DiscoverByGenres(ctx context.Context, genreIDs []int64, page int) (*Page, error) {
	if len(genreIDs) == 0 {
		return nil, errors.New("at least one genre id required")
	}
	if page <= 0 {
		page = 1
	}
	ids := make([]string, 0, len(genreIDs))
	for _, id := range genreIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	params := url.Values{}
	params.Set("with_genres", strings.Join(ids, ","))
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(page))

	var payload Page
	if err := c.get(ctx, "/discover/movie", params, &payload); err != nil {
		return nil, fmt.Errorf("discover movies: %w", err)
	}
	return &payload, nil
}

// Recommendations fetches TMDB's own recommendation listing for a movie.
func (c *Client) Recommendations(ctx context.Context, movieID int64, page int) (*Page, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	if page <= 0 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var payload Page
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", movieID), params, &payload); err != nil {
		return nil, fmt.Errorf("movie recommendations %d: %w", movieID, err)
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("tmdb returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
