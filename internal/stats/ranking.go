package stats

import (
	"sort"

	"github.com/statlens/crimelens/internal/dataset"
)

// Ranking is a sequence of rate entries ordered by rate descending, with
// ties broken by state name ascending so the order is reproducible for
// identical inputs.
type Ranking []RateEntry

// Rank sorts the entries into a Ranking. The input slice is not modified.
// An empty input is rejected with dataset.ErrEmptyTable: a ranking over
// nothing is meaningless, not an empty result.
func Rank(entries []RateEntry) (Ranking, error) {
	if len(entries) == 0 {
		return nil, dataset.ErrEmptyTable
	}

	ranking := make(Ranking, len(entries))
	copy(ranking, entries)

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].RatePerLakh != ranking[j].RatePerLakh {
			return ranking[i].RatePerLakh > ranking[j].RatePerLakh
		}

		return ranking[i].State < ranking[j].State
	})

	return ranking, nil
}

// Top returns the n highest-rate entries (the ranking prefix). If n
// exceeds the ranking size the full ranking is returned; too little data
// is a degenerate view, not an error.
func (r Ranking) Top(n int) Ranking {
	if n < 0 {
		n = 0
	}

	if n > len(r) {
		n = len(r)
	}

	return r[:n]
}

// Bottom returns the n lowest-rate entries (the ranking suffix), still in
// ranking order so Top(k) followed by Bottom(len-k) reconstructs the full
// ranking. Callers that want ascending display order reverse it.
func (r Ranking) Bottom(n int) Ranking {
	if n < 0 {
		n = 0
	}

	if n > len(r) {
		n = len(r)
	}

	return r[len(r)-n:]
}

// Reversed returns a copy of the ranking in reverse order, for displays
// that read bottom-up.
func (r Ranking) Reversed() Ranking {
	out := make(Ranking, len(r))

	for i, entry := range r {
		out[len(r)-1-i] = entry
	}

	return out
}
