package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlens/crimelens/internal/dataset"
)

func TestAggregateCategories_SumsPerCategory(t *testing.T) {
	t.Parallel()

	table := dataset.Table{
		{
			Name: "Alpha",
			Counts: map[dataset.Category]int{
				dataset.Murder: 2, dataset.Rape: 3, dataset.Kidnapping: 4,
				dataset.Robbery: 5, dataset.Theft: 6, dataset.Riots: 7,
			},
			PopulationLakhs: 10,
		},
		{
			Name: "Beta",
			Counts: map[dataset.Category]int{
				dataset.Murder: 1, dataset.Rape: 1, dataset.Kidnapping: 1,
				dataset.Robbery: 1, dataset.Theft: 1, dataset.Riots: 1,
			},
			PopulationLakhs: 5,
		},
	}

	totals := AggregateCategories(table)

	assert.Equal(t, 3, totals[dataset.Murder])
	assert.Equal(t, 7, totals[dataset.Theft])
	assert.Equal(t, 33, totals.GrandTotal())
}

func TestAggregateCategories_GrandTotalMatchesRates(t *testing.T) {
	t.Parallel()

	// The category grand total and the per-state total crimes are two
	// views of the same counts.
	table := dataset.SampleTable()
	totals := AggregateCategories(table)

	sumOfRates := 0
	for _, entry := range ComputeRates(table) {
		sumOfRates += entry.TotalCrimes
	}

	assert.Equal(t, sumOfRates, totals.GrandTotal())
}

func TestShares_SumToOne(t *testing.T) {
	t.Parallel()

	totals := AggregateCategories(dataset.SampleTable())
	shares := totals.Shares()

	sum := 0.0
	for _, share := range shares {
		assert.GreaterOrEqual(t, share, 0.0)
		assert.LessOrEqual(t, share, 1.0)
		sum += share
	}

	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestShares_AllZeroTable(t *testing.T) {
	t.Parallel()

	table := dataset.Table{{
		Name:            "Alpha",
		Counts:          map[dataset.Category]int{},
		PopulationLakhs: 10,
	}}

	shares := AggregateCategories(table).Shares()

	require.Len(t, shares, len(dataset.Categories()))

	for c, share := range shares {
		assert.Zero(t, share, "share of %s", c)
	}
}

func TestAggregateCategories_EmptyTable(t *testing.T) {
	t.Parallel()

	totals := AggregateCategories(nil)

	assert.Zero(t, totals.GrandTotal())
	require.Len(t, totals, len(dataset.Categories()))
}
