package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/gabrielfcoelh83/cine-insights/internal/analysis"
	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
	"github.com/gabrielfcoelh83/cine-insights/internal/recommend"
)

// Report file names. They are the output contract and must not change.
const (
	AnalysisFile        = "resultados_analise.json"
	RecommendationsFile = "recomendacoes.json"

	ParticipationChart = "participacao_atores.png"
	GenreChart         = "frequencia_generos.png"
	GrossingChart      = "top_atores_bilheteria.png"

	lockFile = ".cine-insights.lock"
)

// Writer persists run results into one output directory.
type Writer struct {
	dir    string
	logger *slog.Logger
	runID  string
	now    func() time.Time
}

// NewWriter builds a Writer for the given directory. Every Writer gets a
// fresh run ID that is stamped into each file it produces.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "report"),
		runID:  uuid.NewString(),
		now:    time.Now,
	}
}

// RunID returns the identifier stamped into this writer's files.
func (w *Writer) RunID() string { return w.runID }

type analysisDocument struct {
	RunID       string `json:"id_execucao"`
	GeneratedAt string `json:"gerado_em"`
	analysis.Tally
}

type seedReference struct {
	ID    int64  `json:"id"`
	Title string `json:"titulo"`
	Year  int    `json:"ano"`
}

type recommendationEntry struct {
	ID         int64               `json:"id"`
	Title      string              `json:"titulo"`
	Year       int                 `json:"ano"`
	Genres     []string            `json:"generos"`
	Popularity float64             `json:"popularidade"`
	Score      float64             `json:"pontuacao"`
	SubScores  recommend.SubScores `json:"pontuacoes_parciais"`
}

type recommendationDocument struct {
	RunID           string                `json:"id_execucao"`
	GeneratedAt     string                `json:"gerado_em"`
	Seed            seedReference         `json:"filme_referencia"`
	PoolSize        int                   `json:"tamanho_do_pool"`
	Recommendations []recommendationEntry `json:"recomendacoes"`
}

// WriteAnalysis writes the analysis JSON report plus the three bar charts and
// returns the paths produced.
func (w *Writer) WriteAnalysis(tally analysis.Tally) ([]string, error) {
	unlock, err := w.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	doc := analysisDocument{
		RunID:       w.runID,
		GeneratedAt: w.now().UTC().Format(time.RFC3339),
		Tally:       tally,
	}
	paths := make([]string, 0, 4)

	jsonPath := filepath.Join(w.dir, AnalysisFile)
	if err := w.writeJSON(jsonPath, doc); err != nil {
		return nil, err
	}
	paths = append(paths, jsonPath)

	chartPaths, err := w.writeAnalysisCharts(tally)
	if err != nil {
		return nil, err
	}
	return append(paths, chartPaths...), nil
}

// WriteRecommendations writes the recommendation JSON report and returns its
// path.
func (w *Writer) WriteRecommendations(result recommend.Result) (string, error) {
	unlock, err := w.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	doc := recommendationDocument{
		RunID:       w.runID,
		GeneratedAt: w.now().UTC().Format(time.RFC3339),
		Seed: seedReference{
			ID:    result.Seed.ID,
			Title: result.Seed.Title,
			Year:  result.Seed.Year,
		},
		PoolSize:        result.PoolSize,
		Recommendations: make([]recommendationEntry, 0, len(result.Recommendations)),
	}
	for _, rec := range result.Recommendations {
		doc.Recommendations = append(doc.Recommendations, recommendationEntry{
			ID:         rec.Movie.ID,
			Title:      rec.Movie.Title,
			Year:       rec.Movie.Year,
			Genres:     rec.Movie.Genres,
			Popularity: rec.Movie.Popularity,
			Score:      rec.Score,
			SubScores:  rec.SubScores,
		})
	}

	path := filepath.Join(w.dir, RecommendationsFile)
	if err := w.writeJSON(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	w.logger.Info("report written", logging.String("path", path))
	return nil
}

// lock takes an advisory lock on the output directory for the duration of a
// write batch.
func (w *Writer) lock() (func(), error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", w.dir, err)
	}
	lock := flock.New(filepath.Join(w.dir, lockFile))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock output directory %q: %w", w.dir, err)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn("release output lock", logging.Error(err))
		}
	}, nil
}
