// Package metrics assembles the derived values each visualization
// consumes: rates, rankings, category totals, and normalized intensity
// grids. It performs no I/O and no rendering.
package metrics

import (
	"sort"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

// intensityStates bounds the normalized subsets to the top 15 states so
// heatmap color scales stay readable.
const intensityStates = 15

// IntensityEntry is one state's min-max normalized rate in [0, 1].
type IntensityEntry struct {
	State string
	Value float64
}

// Bundle packages every derived series the chart surfaces need. It is a
// pure function of the table; rebuild it whenever the table changes.
type Bundle struct {
	Rates          []stats.RateEntry
	Ranking        stats.Ranking
	CategoryTotals stats.CategoryTotals

	// Intensity holds the min-max normalized rates of the top ranked
	// states (at most 15), highest rate mapping to 1 and lowest to 0.
	Intensity []IntensityEntry
}

// Build derives the full bundle from the table.
func Build(table dataset.Table) (*Bundle, error) {
	rates := stats.ComputeRates(table)

	ranking, err := stats.Rank(rates)
	if err != nil {
		return nil, err
	}

	subset := ranking.Top(intensityStates)
	values := make([]float64, len(subset))

	for i, entry := range subset {
		values[i] = entry.RatePerLakh
	}

	normalized := normalize(values)
	intensity := make([]IntensityEntry, len(subset))

	for i, entry := range subset {
		intensity[i] = IntensityEntry{State: entry.State, Value: normalized[i]}
	}

	return &Bundle{
		Rates:          rates,
		Ranking:        ranking,
		CategoryTotals: stats.AggregateCategories(table),
		Intensity:      intensity,
	}, nil
}

// Grid is a per-category intensity matrix over a bounded subset of
// states: Values[i][j] is the normalized count of Categories[j] in
// States[i], min-max scaled per category column.
type Grid struct {
	States     []string
	Categories []dataset.Category
	Values     [][]float64
}

// CategoryGrid builds the heatmap grid over the top n states by total
// crimes. Min-max normalization runs per category column; a column with
// equal min and max degenerates to the constant 1.
func CategoryGrid(table dataset.Table, n int) (*Grid, error) {
	if len(table) == 0 {
		return nil, dataset.ErrEmptyTable
	}

	subset := topByTotalCrimes(table, n)
	categories := dataset.Categories()

	grid := &Grid{
		States:     make([]string, len(subset)),
		Categories: categories,
		Values:     make([][]float64, len(subset)),
	}

	for i, rec := range subset {
		grid.States[i] = rec.Name
		grid.Values[i] = make([]float64, len(categories))
	}

	for j, c := range categories {
		column := make([]float64, len(subset))
		for i, rec := range subset {
			column[i] = float64(rec.Counts[c])
		}

		normalized := normalize(column)
		for i, v := range normalized {
			grid.Values[i][j] = v
		}
	}

	return grid, nil
}

// topByTotalCrimes returns the n records with the highest total crime
// counts, ties broken by name ascending, without mutating the table.
func topByTotalCrimes(table dataset.Table, n int) dataset.Table {
	sorted := make(dataset.Table, len(table))
	copy(sorted, table)

	sort.Slice(sorted, func(i, j int) bool {
		ti, tj := sorted[i].TotalCrimes(), sorted[j].TotalCrimes()
		if ti != tj {
			return ti > tj
		}

		return sorted[i].Name < sorted[j].Name
	})

	if n < 0 {
		n = 0
	}

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n]
}

// normalize min-max scales values into [0, 1]. A single value, or a
// uniform slice, maps to the constant 1 rather than dividing by zero.
func normalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	low, high := values[0], values[0]

	for _, v := range values[1:] {
		if v < low {
			low = v
		}

		if v > high {
			high = v
		}
	}

	out := make([]float64, len(values))

	if low == high {
		for i := range out {
			out[i] = 1
		}

		return out
	}

	for i, v := range values {
		out[i] = (v - low) / (high - low)
	}

	return out
}
