package report

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/gabrielfcoelh83/cine-insights/internal/analysis"
	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
)

// chartActorLimit bounds the participation chart to the most frequent actors,
// matching the console listing.
const chartActorLimit = 10

func (w *Writer) writeAnalysisCharts(tally analysis.Tally) ([]string, error) {
	var paths []string

	actors := tally.ActorCounts
	if len(actors) > chartActorLimit {
		actors = actors[:chartActorLimit]
	}
	participation := make([]chart.Value, 0, len(actors))
	for _, ac := range actors {
		participation = append(participation, chart.Value{Label: ac.Name, Value: float64(ac.Count)})
	}
	path, err := w.writeBarChart(ParticipationChart, "Top Actors by Participation", participation)
	if err != nil {
		return nil, err
	}
	if path != "" {
		paths = append(paths, path)
	}

	genres := make([]chart.Value, 0, len(tally.GenreCounts))
	for _, gc := range tally.GenreCounts {
		genres = append(genres, chart.Value{Label: gc.Name, Value: float64(gc.Count)})
	}
	path, err = w.writeBarChart(GenreChart, "Genre Frequency", genres)
	if err != nil {
		return nil, err
	}
	if path != "" {
		paths = append(paths, path)
	}

	grossing := make([]chart.Value, 0, len(tally.TopGrossing))
	for _, ar := range tally.TopGrossing {
		grossing = append(grossing, chart.Value{Label: ar.Name, Value: float64(ar.Revenue) / 1e6})
	}
	path, err = w.writeBarChart(GrossingChart, "Top 5 Actors by Box Office (millions USD)", grossing)
	if err != nil {
		return nil, err
	}
	if path != "" {
		paths = append(paths, path)
	}

	return paths, nil
}

// writeBarChart renders one PNG bar chart. Charts without any positive value
// are skipped with a warning instead of rendering a misleading empty image.
func (w *Writer) writeBarChart(name, title string, bars []chart.Value) (string, error) {
	hasData := false
	for _, bar := range bars {
		if bar.Value > 0 {
			hasData = true
			break
		}
	}
	if !hasData {
		w.logger.Warn("skipping chart without data", logging.String("chart", name))
		return "", nil
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		Bars:  bars,
	}

	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	w.logger.Info("chart written", logging.String("path", path))
	return path, nil
}
