package config

import (
	"errors"
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/cine-insights/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'cine-insights config init')", defaultPath)
	}
	if c.TMDB.BaseURL == "" {
		return errors.New("tmdb.base_url must be set")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	weights := map[string]float64{
		"recommend.genre_weight":      c.Recommend.GenreWeight,
		"recommend.director_weight":   c.Recommend.DirectorWeight,
		"recommend.cast_weight":       c.Recommend.CastWeight,
		"recommend.popularity_weight": c.Recommend.PopularityWeight,
		"recommend.year_weight":       c.Recommend.YearWeight,
	}
	sum := 0.0
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("recommend weights must sum to 1.0, got %g", sum)
	}
	if c.Recommend.PoolPages > 5 {
		return errors.New("recommend.pool_pages must be between 1 and 5")
	}
	return nil
}
