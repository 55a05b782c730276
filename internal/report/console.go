package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gabrielfcoelh83/cine-insights/internal/analysis"
	"github.com/gabrielfcoelh83/cine-insights/internal/recommend"
)

// consoleActorLimit bounds the participation listing, mirroring the chart.
const consoleActorLimit = 10

var moneyPrinter = message.NewPrinter(language.English)

// RenderAnalysis writes the analysis tallies as console tables.
func RenderAnalysis(out io.Writer, tally analysis.Tally) {
	fmt.Fprintf(out, "Movies analyzed: %d\n", len(tally.Movies))
	rows := make([][]string, 0, len(tally.Movies))
	for _, m := range tally.Movies {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Title,
			yearLabel(m.Year),
			moneyPrinter.Sprintf("$%d", m.Revenue),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"ID", "Title", "Year", "Box Office"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight}))

	actors := tally.ActorCounts
	if len(actors) > consoleActorLimit {
		actors = actors[:consoleActorLimit]
	}
	rows = rows[:0]
	for _, ac := range actors {
		rows = append(rows, []string{ac.Name, fmt.Sprintf("%d", ac.Count)})
	}
	fmt.Fprintln(out, "Actor participation:")
	fmt.Fprintln(out, renderTable(out,
		[]string{"Actor", "Movies"},
		rows,
		[]columnAlignment{alignLeft, alignRight}))

	rows = rows[:0]
	for _, gc := range tally.GenreCounts {
		rows = append(rows, []string{gc.Name, fmt.Sprintf("%d", gc.Count)})
	}
	fmt.Fprintln(out, "Genre frequency:")
	fmt.Fprintln(out, renderTable(out,
		[]string{"Genre", "Movies"},
		rows,
		[]columnAlignment{alignLeft, alignRight}))

	rows = rows[:0]
	for i, ar := range tally.TopGrossing {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ar.Name,
			moneyPrinter.Sprintf("$%d", ar.Revenue),
		})
	}
	fmt.Fprintln(out, "Top grossing actors:")
	fmt.Fprintln(out, renderTable(out,
		[]string{"#", "Actor", "Total Box Office"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight}))
}

// RenderRecommendations writes the scored recommendations as a console table,
// reporting shortfalls explicitly.
func RenderRecommendations(out io.Writer, result recommend.Result) {
	fmt.Fprintf(out, "Seed movie: %s (%s) [ID: %d]\n",
		result.Seed.Title, yearLabel(result.Seed.Year), result.Seed.ID)

	if len(result.Recommendations) == 0 {
		fmt.Fprintln(out, "No candidates could be scored for this movie; nothing to recommend.")
		return
	}
	if len(result.Recommendations) < recommend.Limit {
		fmt.Fprintf(out, "Only %d candidate(s) available (pool of %d); returning all of them.\n",
			len(result.Recommendations), result.PoolSize)
	}

	rows := make([][]string, 0, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			rec.Movie.Title,
			yearLabel(rec.Movie.Year),
			fmt.Sprintf("%.3f", rec.Score),
			fmt.Sprintf("%.2f", rec.SubScores.Genre),
			fmt.Sprintf("%.2f", rec.SubScores.Director),
			fmt.Sprintf("%.2f", rec.SubScores.Cast),
			fmt.Sprintf("%.2f", rec.SubScores.Popularity),
			fmt.Sprintf("%.2f", rec.SubScores.Year),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"#", "Title", "Year", "Score", "Genre", "Director", "Cast", "Pop.", "Time"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}))
}

func yearLabel(year int) string {
	if year == 0 {
		return "????"
	}
	return fmt.Sprintf("%d", year)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(out io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(tableStyle(out))

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// tableStyle picks rounded borders for interactive terminals and plain ASCII
// when output is piped.
func tableStyle(out io.Writer) table.Style {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return table.StyleRounded
	}
	return table.StyleDefault
}
