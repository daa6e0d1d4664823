package viz

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlens/crimelens/internal/metrics"
)

const (
	heatmapPerState  = 32
	heatmapPadding   = 160
	heatmapMinHeight = 400
	heatmapMaxHeight = 900
	heatCellFontSize = 9
)

// buildIntensityHeatmap renders the per-category normalized grid with a
// bounded [0, 1] color scale.
func buildIntensityHeatmap(grid *metrics.Grid) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: heatmapHeight(len(grid.States))}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Crime Category Intensity Heatmap",
			Subtitle: "Min-max normalized per category over the highest-crime states",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category", Data: categoryNames(grid),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0", FontSize: labelFontSize},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: grid.States,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: 1,
			InRange: &opts.VisualMapInRange{Color: heatScale},
			Orient:  "horizontal", Left: "center", Bottom: "2%",
		}),
	)

	data := make([]opts.HeatMapData, 0, len(grid.States)*len(grid.Categories))

	for i := range grid.States {
		for j := range grid.Categories {
			data = append(data, opts.HeatMapData{
				Value: []any{j, i, round2(grid.Values[i][j])},
			})
		}
	}

	hm.AddSeries("Intensity", data, charts.WithLabelOpts(opts.Label{
		Show: opts.Bool(true), Position: "inside", FontSize: heatCellFontSize,
	}))

	return hm
}

func categoryNames(grid *metrics.Grid) []string {
	names := make([]string, len(grid.Categories))
	for i, c := range grid.Categories {
		names[i] = string(c)
	}

	return names
}

// heatmapHeight scales the chart with the state count so rows stay legible.
func heatmapHeight(states int) string {
	h := states*heatmapPerState + heatmapPadding

	h = max(heatmapMinHeight, min(heatmapMaxHeight, h))

	return px(h)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
