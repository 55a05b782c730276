package recommend

import (
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

// Weights are the similarity sub-score weights. They must each lie in [0, 1]
// and sum to 1.0 so the composite score stays in [0, 1].
type Weights struct {
	Genre      float64
	Director   float64
	Cast       float64
	Popularity float64
	Year       float64
}

// DefaultWeights returns the stock weighting: genres dominate, directors and
// cast matter equally, popularity and release year act as tie-shapers.
func DefaultWeights() Weights {
	return Weights{
		Genre:      0.40,
		Director:   0.20,
		Cast:       0.20,
		Popularity: 0.10,
		Year:       0.10,
	}
}

// Validate checks the weight invariants.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"genre":      w.Genre,
		"director":   w.Director,
		"cast":       w.Cast,
		"popularity": w.Popularity,
		"year":       w.Year,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s weight must be between 0 and 1, got %g", name, v)
		}
	}
	sum := w.Genre + w.Director + w.Cast + w.Popularity + w.Year
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %g", sum)
	}
	return nil
}
