package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs
Alpha,10,20,30,5,30,5,10
Beta,5,10,15,5,10,5,5.5
`

func TestParse_ValidTable(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader(validCSV))

	require.NoError(t, err)
	require.Len(t, table, 2)

	assert.Equal(t, "Alpha", table[0].Name)
	assert.Equal(t, 10, table[0].Counts[Murder])
	assert.Equal(t, 5, table[0].Counts[Riots])
	assert.InDelta(t, 10.0, table[0].PopulationLakhs, 1e-9)

	// Decimal populations are permitted.
	assert.InDelta(t, 5.5, table[1].PopulationLakhs, 1e-9)
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader(validCSV))

	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, table.Names())
}

func TestParse_MissingColumn(t *testing.T) {
	t.Parallel()

	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Population_Lakhs\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrSchema)
}

func TestParse_ReorderedColumns(t *testing.T) {
	t.Parallel()

	in := "State,Rape,Murder,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\nAlpha,1,1,1,1,1,1,10\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrSchema)
}

func TestParse_NonNumericCount(t *testing.T) {
	t.Parallel()

	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\nAlpha,ten,1,1,1,1,1,10\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_NegativeCount(t *testing.T) {
	t.Parallel()

	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\nAlpha,-1,1,1,1,1,1,10\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrMalformedRow)
}

func TestParse_ZeroPopulation(t *testing.T) {
	t.Parallel()

	// Population 0 must be rejected rather than producing an infinite rate.
	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\nAlpha,1,1,1,1,1,1,0\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "population")
}

func TestParse_NegativePopulation(t *testing.T) {
	t.Parallel()

	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\nAlpha,1,1,1,1,1,1,-3\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrMalformedRow)
}

func TestParse_DuplicateState(t *testing.T) {
	t.Parallel()

	in := validCSV + "Alpha,1,1,1,1,1,1,10\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	in := "State,Murder,Rape,Kidnapping,Robbery,Theft,Riots,Population_Lakhs\n"

	_, err := Parse(strings.NewReader(in))

	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestLoad_MissingFileSynthesizesSample(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crime_data.csv")

	table, err := Load(path)

	require.NoError(t, err)
	require.NotEmpty(t, table)

	// The sample must be persisted for subsequent runs.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table, reloaded)
}

func TestLoad_ExistingFileReturnedUnmodified(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crime_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(validCSV), 0o644))

	table, err := Load(path)

	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "Beta", table[1].Name)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	original := SampleTable()

	var buf bytes.Buffer

	require.NoError(t, Write(&buf, original))

	parsed, err := Parse(&buf)

	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestHeader_MatchesSchema(t *testing.T) {
	t.Parallel()

	want := []string{"State", "Murder", "Rape", "Kidnapping", "Robbery", "Theft", "Riots", "Population_Lakhs"}
	assert.Equal(t, want, Header())
}
