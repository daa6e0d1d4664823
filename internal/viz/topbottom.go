package viz

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/stats"
)

// buildTopStatesChart charts the n highest-rate states, worst first.
func buildTopStatesChart(ranking stats.Ranking, n int) *charts.Bar {
	subset := ranking.Top(n)

	return buildRateSubsetChart(
		subset,
		fmt.Sprintf("Top %d High Crime Rate States", len(subset)),
		"Highest crime rate first",
		colorHigh,
	)
}

// buildBottomStatesChart charts the n lowest-rate states, safest first.
func buildBottomStatesChart(ranking stats.Ranking, n int) *charts.Bar {
	// The ranking suffix runs highest-to-lowest; reverse for display so
	// the safest state leads.
	subset := ranking.Bottom(n).Reversed()

	return buildRateSubsetChart(
		subset,
		fmt.Sprintf("Top %d Safest States", len(subset)),
		"Lowest crime rate first",
		colorLow,
	)
}

func buildRateSubsetChart(subset stats.Ranking, title, subtitle, color string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Crime Rate"}),
	)

	barData := make([]opts.BarData, len(subset))
	for i, entry := range subset {
		barData[i] = opts.BarData{
			Value:     entry.RatePerLakh,
			ItemStyle: &opts.ItemStyle{Color: color},
		}
	}

	bar.SetXAxis(stateLabels(subset))
	bar.AddSeries("Crime Rate", barData)

	return bar
}
