package viz

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

// buildRateHistogram charts the rate distribution with mean and median
// mark lines.
func buildRateHistogram(rates []stats.RateEntry, bins int, summary stats.Summary) *charts.Bar {
	values := make([]float64, len(rates))
	for i, entry := range rates {
		values[i] = entry.RatePerLakh
	}

	histogram := stats.Histogram(values, bins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: "Crime Rate Distribution",
			Subtitle: fmt.Sprintf("Mean %.2f, median %.2f, stddev %.2f across %d states",
				summary.MeanRate, summary.MedianRate, summary.StdDevRate, summary.States),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Crime Rate",
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "States"}),
	)

	labels := make([]string, len(histogram))
	barData := make([]opts.BarData, len(histogram))

	for i, bin := range histogram {
		labels[i] = fmt.Sprintf("%.1f-%.1f", bin.Low, bin.High)
		barData[i] = opts.BarData{
			Value:     bin.Count,
			ItemStyle: &opts.ItemStyle{Color: colorNeutral},
		}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("States", barData,
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "Mean", YAxis: summary.MeanRate},
			opts.MarkLineNameYAxisItem{Name: "Median", YAxis: summary.MedianRate},
		),
	)

	return bar
}

// buildCategoryBoxPlot shows the spread of raw counts per category.
func buildCategoryBoxPlot(table dataset.Table) *charts.BoxPlot {
	fives := stats.CategoryFiveNumbers(table)

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Crime Category Distribution",
			Subtitle: "Five-number summary of per-state case counts",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cases"}),
	)

	labels := make([]string, 0, len(dataset.Categories()))
	boxData := make([]opts.BoxPlotData, 0, len(dataset.Categories()))

	for _, c := range dataset.Categories() {
		five := fives[c]
		labels = append(labels, string(c))
		boxData = append(boxData, opts.BoxPlotData{
			Value: []any{five.Min, five.Q1, five.Median, five.Q3, five.Max},
		})
	}

	box.SetXAxis(labels)
	box.AddSeries("Cases", boxData)

	return box
}

// buildTopStatesCategoryBars compares category counts across the n
// highest-rate states with one grouped series per category.
func buildTopStatesCategoryBars(table dataset.Table, ranking stats.Ranking, n int) *charts.Bar {
	subset := ranking.Top(n)

	byName := make(map[string]dataset.StateRecord, len(table))
	for _, rec := range table {
		byName[rec.Name] = rec
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Crime Distribution in Top %d High-Crime States", len(subset)),
			Subtitle: "Case counts per category",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cases"}),
	)

	bar.SetXAxis(stateLabels(subset))

	for i, c := range dataset.Categories() {
		barData := make([]opts.BarData, len(subset))
		for j, entry := range subset {
			barData[j] = opts.BarData{Value: byName[entry.State].Counts[c]}
		}

		bar.AddSeries(string(c), barData,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: categoryColors[i]}),
		)
	}

	return bar
}
