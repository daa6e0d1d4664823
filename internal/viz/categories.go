package viz

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

const (
	pieWidth  = "600px"
	pieHeight = "450px"
	pieRadius = "60%"
)

// buildCategoryPieChart shows each category's share of all recorded crime.
func buildCategoryPieChart(totals stats.CategoryTotals) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: pieWidth, Height: pieHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "National Crime Distribution by Category",
			Subtitle: "Share of the grand total per category",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	pieData := make([]opts.PieData, 0, len(dataset.Categories()))

	for i, c := range dataset.Categories() {
		pieData = append(pieData, opts.PieData{
			Name:      string(c),
			Value:     totals[c],
			ItemStyle: &opts.ItemStyle{Color: categoryColors[i]},
		})
	}

	pie.AddSeries("Cases", pieData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
			}),
			charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}),
		)

	return pie
}

// buildCategoryBarChart shows absolute case totals per category.
func buildCategoryBarChart(totals stats.CategoryTotals) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Total Cases by Crime Category",
			Subtitle: "Summed across all states",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Cases"}),
	)

	labels := make([]string, 0, len(dataset.Categories()))
	barData := make([]opts.BarData, 0, len(dataset.Categories()))

	for i, c := range dataset.Categories() {
		labels = append(labels, string(c))
		barData = append(barData, opts.BarData{
			Value:     totals[c],
			ItemStyle: &opts.ItemStyle{Color: categoryColors[i]},
		})
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Cases", barData,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return bar
}
