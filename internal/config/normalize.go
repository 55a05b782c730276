package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeRecommend()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOutput() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	var err error
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if env := strings.TrimSpace(os.Getenv("TMDB_API_KEY")); env != "" {
		c.TMDB.APIKey = env
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
}

func (c *Config) normalizeRecommend() {
	if c.Recommend.YearCap <= 0 {
		c.Recommend.YearCap = defaultYearCap
	}
	if c.Recommend.PoolPages <= 0 {
		c.Recommend.PoolPages = defaultPoolPages
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
