package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

func TestDataTable(t *testing.T) {
	t.Parallel()

	table := dataset.SampleTable()
	rates := stats.ComputeRates(table)

	out := DataTable(table, rates)

	assert.Contains(t, out, "State")
	assert.Contains(t, out, "Uttar Pradesh")
	assert.Contains(t, out, "Uttarakhand")
	assert.Contains(t, out, "Crime Rate")
	assert.Contains(t, out, rateNote)

	// Large counts are humanized.
	assert.Contains(t, out, "15,000")
}

func TestSummaryBlock(t *testing.T) {
	t.Parallel()

	rates := stats.ComputeRates(dataset.SampleTable())

	summary, err := stats.Summarize(rates)
	require.NoError(t, err)

	out := SummaryBlock(summary)

	assert.Contains(t, out, "States analyzed:  20")
	assert.Contains(t, out, summary.HighestState)
	assert.Contains(t, out, summary.LowestState)
}

func TestCategoryBlock(t *testing.T) {
	t.Parallel()

	totals := stats.AggregateCategories(dataset.SampleTable())

	out := CategoryBlock(totals)

	for _, c := range dataset.Categories() {
		assert.Contains(t, out, string(c))
	}

	assert.Contains(t, out, "100.0%")
}
