package stats

import "github.com/statlens/crimelens/internal/dataset"

// CategoryTotals maps each crime category to its total across all states.
type CategoryTotals map[dataset.Category]int

// AggregateCategories sums each category over every record in the table.
func AggregateCategories(table dataset.Table) CategoryTotals {
	totals := make(CategoryTotals, len(dataset.Categories()))

	for _, c := range dataset.Categories() {
		totals[c] = 0
	}

	for _, rec := range table {
		for _, c := range dataset.Categories() {
			totals[c] += rec.Counts[c]
		}
	}

	return totals
}

// GrandTotal returns the sum over all categories.
func (t CategoryTotals) GrandTotal() int {
	total := 0
	for _, c := range dataset.Categories() {
		total += t[c]
	}

	return total
}

// Shares returns each category's fraction of the grand total. An all-zero
// table yields an all-zero share vector rather than dividing by zero.
func (t CategoryTotals) Shares() map[dataset.Category]float64 {
	shares := make(map[dataset.Category]float64, len(t))
	grand := t.GrandTotal()

	for _, c := range dataset.Categories() {
		if grand == 0 {
			shares[c] = 0

			continue
		}

		shares[c] = float64(t[c]) / float64(grand)
	}

	return shares
}
