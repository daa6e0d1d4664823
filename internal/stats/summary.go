package stats

import (
	"math"
	"sort"

	"github.com/statlens/crimelens/internal/dataset"
)

// Summary holds the descriptive statistics shown on the dashboard.
type Summary struct {
	States      int
	TotalCrimes int

	MeanRate   float64
	MedianRate float64
	StdDevRate float64
	MinRate    float64
	MaxRate    float64

	// HighestState and LowestState are the states with the extreme rates,
	// after the same name-ascending tie-break the ranking uses.
	HighestState string
	LowestState  string
}

// Summarize computes descriptive statistics over the rate entries.
func Summarize(entries []RateEntry) (Summary, error) {
	ranking, err := Rank(entries)
	if err != nil {
		return Summary{}, err
	}

	rates := make([]float64, len(entries))
	totalCrimes := 0

	for i, entry := range entries {
		rates[i] = entry.RatePerLakh
		totalCrimes += entry.TotalCrimes
	}

	return Summary{
		States:       len(entries),
		TotalCrimes:  totalCrimes,
		MeanRate:     Mean(rates),
		MedianRate:   Median(rates),
		StdDevRate:   StdDev(rates),
		MinRate:      ranking[len(ranking)-1].RatePerLakh,
		MaxRate:      ranking[0].RatePerLakh,
		HighestState: ranking[0].State,
		LowestState:  ranking[len(ranking)-1].State,
	}, nil
}

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Median returns the middle value, averaging the two middle values for
// even-length input. Returns 0 for empty input.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := sortedCopy(values)
	mid := len(sorted) / 2

	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev returns the sample standard deviation (n-1 denominator), or 0
// when fewer than two values are given.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	sum := 0.0

	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)-1))
}

// FiveNum is the five-number summary driving a box plot.
type FiveNum struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// FiveNumber computes the five-number summary with linearly interpolated
// quartiles. Empty input yields the zero summary.
func FiveNumber(values []float64) FiveNum {
	if len(values) == 0 {
		return FiveNum{}
	}

	sorted := sortedCopy(values)

	return FiveNum{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// CategoryFiveNumbers computes a per-category five-number summary of the
// raw counts across all states, for the dashboard box plot.
func CategoryFiveNumbers(table dataset.Table) map[dataset.Category]FiveNum {
	out := make(map[dataset.Category]FiveNum, len(dataset.Categories()))

	for _, c := range dataset.Categories() {
		counts := make([]float64, len(table))
		for i, rec := range table {
			counts[i] = float64(rec.Counts[c])
		}

		out[c] = FiveNumber(counts)
	}

	return out
}

// quantile interpolates the q-th quantile of an already sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// HistogramBin is one bucket of a rate distribution histogram.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram buckets the values into equal-width bins spanning
// [min, max]. A degenerate range (all values equal, or a single value)
// collapses into one bin holding everything.
func Histogram(values []float64, bins int) []HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	sorted := sortedCopy(values)
	low, high := sorted[0], sorted[len(sorted)-1]

	if low == high {
		return []HistogramBin{{Low: low, High: high, Count: len(values)}}
	}

	width := (high - low) / float64(bins)
	out := make([]HistogramBin, bins)

	for i := range out {
		out[i] = HistogramBin{
			Low:  low + float64(i)*width,
			High: low + float64(i+1)*width,
		}
	}

	for _, v := range values {
		idx := int((v - low) / width)
		if idx >= bins {
			idx = bins - 1
		}

		out[idx].Count++
	}

	return out
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return sorted
}
