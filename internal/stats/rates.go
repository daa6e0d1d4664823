// Package stats derives crime-rate statistics from a loaded crime table.
//
// All functions are pure: they read the table and return freshly built
// values, so derived results can be recomputed at will.
package stats

import "github.com/statlens/crimelens/internal/dataset"

// RateEntry pairs a state with its total crime count and per-capita rate.
type RateEntry struct {
	State       string
	TotalCrimes int

	// RatePerLakh is TotalCrimes divided by the state's population in
	// lakhs, i.e. crimes per 100,000 residents. The unit matches the
	// Population_Lakhs source column; no rescaling happens anywhere.
	RatePerLakh float64
}

// ComputeRates returns one entry per record, in table order. No entry is
// dropped: the loader guarantees every population is positive, so every
// record yields a finite rate.
func ComputeRates(table dataset.Table) []RateEntry {
	entries := make([]RateEntry, len(table))

	for i, rec := range table {
		total := rec.TotalCrimes()
		entries[i] = RateEntry{
			State:       rec.Name,
			TotalCrimes: total,
			RatePerLakh: float64(total) / rec.PopulationLakhs,
		}
	}

	return entries
}
