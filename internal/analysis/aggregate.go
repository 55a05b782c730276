package analysis

import (
	"sort"

	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
)

// TopGrossingLimit is how many actors the revenue ranking keeps.
const TopGrossingLimit = 5

// MovieSummary is the reference entry kept for every analyzed movie.
type MovieSummary struct {
	ID      int64  `json:"id"`
	Title   string `json:"titulo"`
	Year    int    `json:"ano"`
	Revenue int64  `json:"bilheteria"`
}

// ActorCount is one actor's participation tally.
type ActorCount struct {
	ID    int64  `json:"id"`
	Name  string `json:"ator"`
	Count int    `json:"participacoes"`
}

// GenreCount is one genre's occurrence tally.
type GenreCount struct {
	Name  string `json:"genero"`
	Count int    `json:"frequencia"`
}

// ActorRevenue is one actor's summed revenue across analyzed movies.
type ActorRevenue struct {
	ID      int64  `json:"id"`
	Name    string `json:"ator"`
	Revenue int64  `json:"bilheteria_total"`
}

// Tally holds every aggregate the analyze command reports. Slices are sorted
// deterministically so repeated runs over the same input produce identical
// output.
type Tally struct {
	Movies      []MovieSummary `json:"filmes_analisados"`
	ActorCounts []ActorCount   `json:"participacao_atores"`
	GenreCounts []GenreCount   `json:"frequencia_generos"`
	TopGrossing []ActorRevenue `json:"top_atores_bilheteria"`
}

// Aggregate folds movie snapshots into the three tallies. Every (actor, movie)
// credit increments participation and adds the movie's full revenue to the
// actor's running total; duplicate input movies count independently.
func Aggregate(movies []movie.Movie) Tally {
	counts := make(map[int64]int)
	revenues := make(map[int64]int64)
	names := make(map[int64]string)
	genres := make(map[string]int)

	tally := Tally{Movies: make([]MovieSummary, 0, len(movies))}
	for _, m := range movies {
		tally.Movies = append(tally.Movies, MovieSummary{
			ID:      m.ID,
			Title:   m.Title,
			Year:    m.Year,
			Revenue: m.Revenue,
		})
		for _, genre := range m.Genres {
			genres[genre]++
		}
		for _, actor := range m.Cast {
			counts[actor.ID]++
			revenues[actor.ID] += m.Revenue
			names[actor.ID] = actor.Name
		}
	}

	for id, count := range counts {
		tally.ActorCounts = append(tally.ActorCounts, ActorCount{ID: id, Name: names[id], Count: count})
	}
	sort.Slice(tally.ActorCounts, func(i, j int) bool {
		a, b := tally.ActorCounts[i], tally.ActorCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ID < b.ID
	})

	for name, count := range genres {
		tally.GenreCounts = append(tally.GenreCounts, GenreCount{Name: name, Count: count})
	}
	sort.Slice(tally.GenreCounts, func(i, j int) bool {
		a, b := tally.GenreCounts[i], tally.GenreCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	for id, revenue := range revenues {
		tally.TopGrossing = append(tally.TopGrossing, ActorRevenue{ID: id, Name: names[id], Revenue: revenue})
	}
	sort.Slice(tally.TopGrossing, func(i, j int) bool {
		a, b := tally.TopGrossing[i], tally.TopGrossing[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.ID < b.ID
	})
	if len(tally.TopGrossing) > TopGrossingLimit {
		tally.TopGrossing = tally.TopGrossing[:TopGrossingLimit]
	}

	return tally
}
