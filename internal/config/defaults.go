package config

const (
	defaultOutputDir    = "."
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "pt-BR"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	defaultGenreWeight      = 0.40
	defaultDirectorWeight   = 0.20
	defaultCastWeight       = 0.20
	defaultPopularityWeight = 0.10
	defaultYearWeight       = 0.10
	defaultYearCap          = 50
	defaultPoolPages        = 1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Dir: defaultOutputDir,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Recommend: Recommend{
			GenreWeight:      defaultGenreWeight,
			DirectorWeight:   defaultDirectorWeight,
			CastWeight:       defaultCastWeight,
			PopularityWeight: defaultPopularityWeight,
			YearWeight:       defaultYearWeight,
			YearCap:          defaultYearCap,
			PoolPages:        defaultPoolPages,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
