package viz

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/stats"
)

// Rate-vs-mean thresholds for bar coloring.
const (
	highRateFactor = 1.2
	lowRateFactor  = 0.8
)

// buildRateBarChart charts every state's rate in ascending order with the
// national average as a mark line.
func buildRateBarChart(ranking stats.Ranking) *charts.Bar {
	ascending := ranking.Reversed()

	rates := make([]float64, len(ascending))
	for i, entry := range ascending {
		rates[i] = entry.RatePerLakh
	}

	mean := stats.Mean(rates)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Crime Rate Comparison Across States",
			Subtitle: "Crimes per lakh (100,000) residents; dashed line marks the national average",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Crime Rate"}),
	)

	barData := make([]opts.BarData, len(ascending))
	for i, entry := range ascending {
		barData[i] = opts.BarData{
			Value:     entry.RatePerLakh,
			ItemStyle: &opts.ItemStyle{Color: rateColor(entry.RatePerLakh, mean)},
		}
	}

	bar.SetXAxis(stateLabels(ascending))
	bar.AddSeries("Crime Rate", barData,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Average", YAxis: mean}),
	)

	return bar
}

// rateColor classifies a rate against the mean: well above is red, well
// below is green, the band in between is yellow.
func rateColor(rate, mean float64) string {
	switch {
	case rate > mean*highRateFactor:
		return colorHigh
	case rate < mean*lowRateFactor:
		return colorLow
	default:
		return colorAccent
	}
}

func stateLabels(entries []stats.RateEntry) []string {
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.State
	}

	return labels
}
