// Package viz renders the derived crime metrics as go-echarts HTML chart
// pages. All numeric derivation happens upstream; builders here only
// shape already-computed series for presentation.
package viz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/metrics"
	"github.com/statlens/crimelens/internal/stats"
)

const (
	chartWidth  = "1200px"
	chartHeight = "550px"

	xAxisRotate   = 45
	labelFontSize = 11

	outputDirPerm  = 0o750
	indexFileName  = "index.html"
	htmlExtension  = ".html"
	dashboardTopN  = 5
	scatterMinSize = 10
	scatterMaxSize = 40
)

// Category palette, one color per schema category.
var categoryColors = []string{"#ff6b6b", "#ee5a6f", "#c44569", "#4a69bd", "#60a3bc", "#f8b500"}

// Semantic colors for high/low crime extremes.
const (
	colorHigh    = "#e74c3c"
	colorLow     = "#27ae60"
	colorNeutral = "#3498db"
	colorAccent  = "#f39c12"
)

// Heat scale for the intensity heatmap, low to high.
var heatScale = []string{"#ffffb2", "#fecc5c", "#fd8d3c", "#f03b20", "#bd0026"}

// Surface identifies one renderable chart page.
type Surface string

// The chart surfaces, mirroring the menu options.
const (
	SurfaceRates      Surface = "rates"
	SurfaceCategories Surface = "categories"
	SurfaceTopBottom  Surface = "top-bottom"
	SurfaceHeatmap    Surface = "heatmap"
	SurfaceScatter    Surface = "scatter"
	SurfaceDashboard  Surface = "dashboard"
)

// ErrUnknownSurface is returned for a surface name outside the fixed set.
var ErrUnknownSurface = errors.New("unknown chart surface")

// Surfaces returns all chart surfaces in menu order.
func Surfaces() []Surface {
	return []Surface{
		SurfaceRates,
		SurfaceCategories,
		SurfaceTopBottom,
		SurfaceHeatmap,
		SurfaceScatter,
		SurfaceDashboard,
	}
}

// Title returns the display title of a surface.
func (s Surface) Title() string {
	switch s {
	case SurfaceRates:
		return "Crime Rate Comparison Across States"
	case SurfaceCategories:
		return "Crime Distribution by Category"
	case SurfaceTopBottom:
		return "Top & Bottom States by Crime Rate"
	case SurfaceHeatmap:
		return "Crime Category Intensity Heatmap"
	case SurfaceScatter:
		return "Population vs Total Crimes"
	case SurfaceDashboard:
		return "Statistical Dashboard"
	default:
		return string(s)
	}
}

// Renderer writes chart pages for a metrics bundle into an output
// directory, one standalone HTML file per surface plus an index page.
type Renderer struct {
	OutputDir     string
	TopStates     int
	HeatmapStates int
	HistogramBins int
}

// Render writes the page for one surface and returns the file path.
func (r *Renderer) Render(surface Surface, bundle *metrics.Bundle, table dataset.Table) (string, error) {
	charts, err := r.buildCharts(surface, bundle, table)
	if err != nil {
		return "", err
	}

	mkErr := os.MkdirAll(r.OutputDir, outputDirPerm)
	if mkErr != nil {
		return "", fmt.Errorf("create output dir: %w", mkErr)
	}

	page := components.NewPage()
	page.PageTitle = surface.Title()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(charts...)

	outPath := filepath.Join(r.OutputDir, string(surface)+htmlExtension)

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}

	defer f.Close()

	renderErr := page.Render(f)
	if renderErr != nil {
		return "", fmt.Errorf("render %s: %w", surface, renderErr)
	}

	return outPath, nil
}

// RenderAll writes every surface plus the index page and returns the
// written file paths, index last.
func (r *Renderer) RenderAll(bundle *metrics.Bundle, table dataset.Table) ([]string, error) {
	paths := make([]string, 0, len(Surfaces())+1)

	for _, surface := range Surfaces() {
		path, err := r.Render(surface, bundle, table)
		if err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	indexPath, err := r.renderIndex()
	if err != nil {
		return nil, err
	}

	return append(paths, indexPath), nil
}

func (r *Renderer) buildCharts(surface Surface, bundle *metrics.Bundle, table dataset.Table) ([]components.Charter, error) {
	switch surface {
	case SurfaceRates:
		return []components.Charter{buildRateBarChart(bundle.Ranking)}, nil
	case SurfaceCategories:
		return []components.Charter{
			buildCategoryPieChart(bundle.CategoryTotals),
			buildCategoryBarChart(bundle.CategoryTotals),
		}, nil
	case SurfaceTopBottom:
		return []components.Charter{
			buildTopStatesChart(bundle.Ranking, r.TopStates),
			buildBottomStatesChart(bundle.Ranking, r.TopStates),
		}, nil
	case SurfaceHeatmap:
		grid, err := metrics.CategoryGrid(table, r.HeatmapStates)
		if err != nil {
			return nil, err
		}

		return []components.Charter{buildIntensityHeatmap(grid)}, nil
	case SurfaceScatter:
		return []components.Charter{buildPopulationScatter(table, bundle.Rates)}, nil
	case SurfaceDashboard:
		return r.buildDashboardCharts(bundle, table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, surface)
	}
}

func (r *Renderer) buildDashboardCharts(bundle *metrics.Bundle, table dataset.Table) ([]components.Charter, error) {
	summary, err := stats.Summarize(bundle.Rates)
	if err != nil {
		return nil, err
	}

	return []components.Charter{
		buildRateHistogram(bundle.Rates, r.HistogramBins, summary),
		buildCategoryBoxPlot(table),
		buildTopStatesCategoryBars(table, bundle.Ranking, dashboardTopN),
	}, nil
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}

// renderIndex writes a minimal index page linking every surface.
func (r *Renderer) renderIndex() (string, error) {
	outPath := filepath.Join(r.OutputDir, indexFileName)

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}

	defer f.Close()

	fmt.Fprintln(f, "<!DOCTYPE html><html><head><title>Crimelens Report</title></head><body>")
	fmt.Fprintln(f, "<h1>Crimelens Report</h1><ul>")

	for _, surface := range Surfaces() {
		fmt.Fprintf(f, "<li><a href=%q>%s</a></li>\n", string(surface)+htmlExtension, surface.Title())
	}

	_, writeErr := fmt.Fprintln(f, "</ul></body></html>")
	if writeErr != nil {
		return "", fmt.Errorf("write index: %w", writeErr)
	}

	return outPath, nil
}
