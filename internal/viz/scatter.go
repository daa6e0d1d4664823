package viz

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

// buildPopulationScatter plots population against total crimes, bubble
// size scaled by crime rate.
func buildPopulationScatter(table dataset.Table, rates []stats.RateEntry) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Population vs Total Crimes",
			Subtitle: "Bubble size reflects crime rate per lakh residents",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Population (Lakhs)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Crimes", Type: "value"}),
	)

	maxRate := 0.0
	for _, entry := range rates {
		if entry.RatePerLakh > maxRate {
			maxRate = entry.RatePerLakh
		}
	}

	data := make([]opts.ScatterData, len(table))

	for i, rec := range table {
		entry := rates[i]
		data[i] = opts.ScatterData{
			Value:      []any{rec.PopulationLakhs, entry.TotalCrimes, rec.Name},
			SymbolSize: bubbleSize(entry.RatePerLakh, maxRate),
		}
	}

	scatter.AddSeries("States", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorNeutral, Opacity: opts.Float(0.7)}),
	)

	return scatter
}

// bubbleSize maps a rate onto the configured symbol size range. A zero
// max rate (all-zero counts) falls back to the minimum size.
func bubbleSize(rate, maxRate float64) int {
	if maxRate <= 0 {
		return scatterMinSize
	}

	span := float64(scatterMaxSize - scatterMinSize)

	return scatterMinSize + int(rate/maxRate*span)
}
