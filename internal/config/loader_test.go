package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// An explicitly named but missing config file is an error.
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.True(t, cfg.Data.CreateSample)
	assert.Equal(t, DefaultOutputDir, cfg.Charts.OutputDir)
	assert.Equal(t, DefaultTopStates, cfg.Charts.TopStates)
	assert.Equal(t, DefaultHeatmapStates, cfg.Charts.HeatmapStates)
	assert.Equal(t, DefaultHistogramBins, cfg.Charts.HistogramBins)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crimelens.yaml")
	content := `data:
  file: states.csv
  create_sample: false
charts:
  output_dir: out
  top_states: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "states.csv", cfg.Data.File)
	assert.False(t, cfg.Data.CreateSample)
	assert.Equal(t, "out", cfg.Charts.OutputDir)
	assert.Equal(t, 5, cfg.Charts.TopStates)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultHeatmapStates, cfg.Charts.HeatmapStates)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crimelens.yaml")
	content := `charts:
  top_states: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadConfig(path)

	require.ErrorIs(t, err, ErrInvalidTopStates)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Data: DataConfig{File: "crime.csv"},
		Charts: ChartsConfig{
			OutputDir:     "charts",
			TopStates:     10,
			HeatmapStates: 15,
			HistogramBins: 15,
		},
	}

	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty data file", func(c *Config) { c.Data.File = "" }, ErrEmptyDataFile},
		{"empty output dir", func(c *Config) { c.Charts.OutputDir = "" }, ErrEmptyOutputDir},
		{"zero top states", func(c *Config) { c.Charts.TopStates = 0 }, ErrInvalidTopStates},
		{"zero heatmap states", func(c *Config) { c.Charts.HeatmapStates = 0 }, ErrInvalidHeatmapStates},
		{"zero histogram bins", func(c *Config) { c.Charts.HistogramBins = 0 }, ErrInvalidHistogramBins},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
