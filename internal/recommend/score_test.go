package recommend

import (
	"math"
	"testing"

	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
)

func TestGenreJaccard(t *testing.T) {
	if got := genreJaccard([]int64{1, 2}, []int64{2, 3}); math.Abs(got-1.0/3.0) > 1e-12 {
		t.Fatalf("expected 1/3, got %g", got)
	}
	if got := genreJaccard([]int64{1, 2}, []int64{1, 2}); got != 1 {
		t.Fatalf("identical sets must score 1, got %g", got)
	}
	if got := genreJaccard(nil, []int64{5}); got != 0 {
		t.Fatalf("seed without genres must score 0, got %g", got)
	}
	if got := genreJaccard(nil, nil); got != 0 {
		t.Fatalf("empty union must score 0, got %g", got)
	}
}

func TestCastOverlapUsesSmallerCastAndCaps(t *testing.T) {
	a := []movie.Person{{ID: 1}, {ID: 2}, {ID: 3}}
	b := []movie.Person{{ID: 2}, {ID: 3}}
	if got := castOverlap(a, b); got != 1 {
		t.Fatalf("full overlap of smaller cast must score 1, got %g", got)
	}
	if got := castOverlap(a, nil); got != 0 {
		t.Fatalf("empty cast must score 0, got %g", got)
	}
	if got := castOverlap(a, []movie.Person{{ID: 3}, {ID: 9}}); got != 0.5 {
		t.Fatalf("expected 0.5, got %g", got)
	}
}

func TestPopularityProximity(t *testing.T) {
	if got := popularityProximity(50, 50); got != 1 {
		t.Fatalf("equal popularity must score 1, got %g", got)
	}
	if got := popularityProximity(100, 0); got != 0 {
		t.Fatalf("maximal gap must score 0, got %g", got)
	}
	// Both zero: epsilon keeps the division defined and the score at 1.
	if got := popularityProximity(0, 0); got != 1 {
		t.Fatalf("two unknown popularities must score 1, got %g", got)
	}
}

func TestTemporalProximityCapsAndHandlesUnknownYears(t *testing.T) {
	if got := temporalProximity(2000, 2000, 50); got != 1 {
		t.Fatalf("same year must score 1, got %g", got)
	}
	if got := temporalProximity(2000, 1900, 50); got != 0 {
		t.Fatalf("distance beyond cap must score 0, got %g", got)
	}
	if got := temporalProximity(2000, 1975, 50); got != 0.5 {
		t.Fatalf("expected 0.5, got %g", got)
	}
	if got := temporalProximity(0, 1999, 50); got != 0 {
		t.Fatalf("unknown year must score 0, got %g", got)
	}
}

func TestScoreStaysWithinBounds(t *testing.T) {
	seed := movie.Movie{
		ID: 1, Year: 1999, Popularity: 61.4,
		GenreIDs:  []int64{18, 53},
		Cast:      []movie.Person{{ID: 1}, {ID: 2}, {ID: 3}},
		Directors: []movie.Person{{ID: 10}},
	}
	candidates := []movie.Movie{
		{ID: 2},
		{ID: 3, Year: 1999, Popularity: 61.4, GenreIDs: []int64{18, 53}, Cast: seed.Cast, Directors: seed.Directors},
		{ID: 4, Year: 1800, Popularity: 9000, GenreIDs: []int64{99}},
	}
	for _, candidate := range candidates {
		score, sub := Score(seed, candidate, DefaultWeights(), 50)
		for name, v := range map[string]float64{
			"composite":  score,
			"genre":      sub.Genre,
			"director":   sub.Director,
			"cast":       sub.Cast,
			"popularity": sub.Popularity,
			"year":       sub.Year,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("candidate %d: %s score %g out of [0,1]", candidate.ID, name, v)
			}
		}
	}
}

func TestScoreIdenticalMovieIsPerfect(t *testing.T) {
	seed := movie.Movie{
		ID: 1, Year: 2010, Popularity: 20,
		GenreIDs:  []int64{18},
		Cast:      []movie.Person{{ID: 5}},
		Directors: []movie.Person{{ID: 7}},
	}
	score, _ := Score(seed, seed, DefaultWeights(), 50)
	if math.Abs(score-1) > 1e-12 {
		t.Fatalf("self-similarity must be 1, got %g", score)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := Weights{Genre: 0.9, Director: 0.9}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected sum validation error")
	}
	negative := Weights{Genre: -0.1, Director: 0.5, Cast: 0.3, Popularity: 0.2, Year: 0.1}
	if err := negative.Validate(); err == nil {
		t.Fatal("expected range validation error")
	}
}
