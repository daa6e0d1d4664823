package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlens/crimelens/internal/dataset"
)

const rateTolerance = 1e-9

// testRecord builds a record whose counts sum to total.
func testRecord(name string, total int, populationLakhs float64) dataset.StateRecord {
	return dataset.StateRecord{
		Name: name,
		Counts: map[dataset.Category]int{
			dataset.Murder: total,
		},
		PopulationLakhs: populationLakhs,
	}
}

func TestComputeRates_TwoStates(t *testing.T) {
	t.Parallel()

	table := dataset.Table{
		testRecord("A", 100, 10),
		testRecord("B", 50, 5),
	}

	rates := ComputeRates(table)

	require.Len(t, rates, 2)

	assert.Equal(t, "A", rates[0].State)
	assert.Equal(t, 100, rates[0].TotalCrimes)
	assert.InDelta(t, 10.0, rates[0].RatePerLakh, rateTolerance)

	assert.Equal(t, "B", rates[1].State)
	assert.Equal(t, 50, rates[1].TotalCrimes)
	assert.InDelta(t, 10.0, rates[1].RatePerLakh, rateTolerance)
}

func TestComputeRates_ExactDivision(t *testing.T) {
	t.Parallel()

	table := dataset.SampleTable()
	rates := ComputeRates(table)

	require.Len(t, rates, len(table))

	for i, entry := range rates {
		assert.Equal(t, table[i].Name, entry.State, "order must be preserved")
		assert.Equal(t, table[i].TotalCrimes(), entry.TotalCrimes)
		assert.InDelta(t, float64(entry.TotalCrimes)/table[i].PopulationLakhs, entry.RatePerLakh, rateTolerance)
	}
}

func TestComputeRates_SumsAllCategories(t *testing.T) {
	t.Parallel()

	table := dataset.Table{{
		Name: "Alpha",
		Counts: map[dataset.Category]int{
			dataset.Murder: 1, dataset.Rape: 2, dataset.Kidnapping: 3,
			dataset.Robbery: 4, dataset.Theft: 5, dataset.Riots: 6,
		},
		PopulationLakhs: 7,
	}}

	rates := ComputeRates(table)

	require.Len(t, rates, 1)
	assert.Equal(t, 21, rates[0].TotalCrimes)
	assert.InDelta(t, 3.0, rates[0].RatePerLakh, rateTolerance)
}

func TestComputeRates_EmptyTable(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ComputeRates(nil))
}
