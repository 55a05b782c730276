package recommend

import (
	"math"

	"github.com/gabrielfcoelh83/cine-insights/internal/movie"
)

// popularityEpsilon prevents division by zero when both popularities are zero.
const popularityEpsilon = 1e-6

// SubScores are the individual normalized similarity components, kept on every
// recommendation so the composite score can be explained in output.
type SubScores struct {
	Genre      float64 `json:"generos"`
	Director   float64 `json:"diretores"`
	Cast       float64 `json:"elenco"`
	Popularity float64 `json:"popularidade"`
	Year       float64 `json:"proximidade_temporal"`
}

// Score computes the weighted similarity between the seed and a candidate.
// Every sub-score and the composite lie in [0, 1].
func Score(seed, candidate movie.Movie, weights Weights, yearCap int) (float64, SubScores) {
	sub := SubScores{
		Genre:      genreJaccard(seed.GenreIDs, candidate.GenreIDs),
		Director:   directorOverlap(seed.Directors, candidate.Directors),
		Cast:       castOverlap(seed.TopBilledCast(), candidate.TopBilledCast()),
		Popularity: popularityProximity(seed.Popularity, candidate.Popularity),
		Year:       temporalProximity(seed.Year, candidate.Year, yearCap),
	}
	composite := weights.Genre*sub.Genre +
		weights.Director*sub.Director +
		weights.Cast*sub.Cast +
		weights.Popularity*sub.Popularity +
		weights.Year*sub.Year
	return clamp01(composite), sub
}

// genreJaccard is |A ∩ B| / |A ∪ B|. An empty union scores zero, so a seed
// without genres scores zero against every candidate.
func genreJaccard(a, b []int64) float64 {
	setA := toSet(a)
	setB := toSet(b)
	union := make(map[int64]struct{}, len(setA)+len(setB))
	intersection := 0
	for id := range setA {
		union[id] = struct{}{}
		if _, ok := setB[id]; ok {
			intersection++
		}
	}
	for id := range setB {
		union[id] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func directorOverlap(a, b []movie.Person) float64 {
	ids := make(map[int64]struct{}, len(a))
	for _, p := range a {
		ids[p.ID] = struct{}{}
	}
	for _, p := range b {
		if _, ok := ids[p.ID]; ok {
			return 1
		}
	}
	return 0
}

// castOverlap is |A ∩ B| / min(|A|, |B|) over the top-billed subsets, capped
// at 1.0.
func castOverlap(a, b []movie.Person) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ids := make(map[int64]struct{}, len(a))
	for _, p := range a {
		ids[p.ID] = struct{}{}
	}
	shared := 0
	for _, p := range b {
		if _, ok := ids[p.ID]; ok {
			shared++
		}
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return clamp01(float64(shared) / float64(smaller))
}

func popularityProximity(seed, candidate float64) float64 {
	denominator := math.Max(seed, math.Max(candidate, popularityEpsilon))
	return clamp01(1 - math.Abs(seed-candidate)/denominator)
}

// temporalProximity treats an unknown release year on either side as maximal
// distance rather than guessing.
func temporalProximity(seedYear, candidateYear, yearCap int) float64 {
	if seedYear == 0 || candidateYear == 0 {
		return 0
	}
	distance := seedYear - candidateYear
	if distance < 0 {
		distance = -distance
	}
	if distance > yearCap {
		distance = yearCap
	}
	return 1 - float64(distance)/float64(yearCap)
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
