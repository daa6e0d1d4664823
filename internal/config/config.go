// Package config loads crimelens settings from file, environment, and
// defaults.
package config

import "errors"

// Config is the top-level configuration struct for crimelens.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Charts ChartsConfig `mapstructure:"charts"`
}

// DataConfig holds crime table input settings.
type DataConfig struct {
	// File is the path of the crime table CSV.
	File string `mapstructure:"file"`

	// CreateSample controls whether a missing File is synthesized from
	// the built-in sample table instead of failing.
	CreateSample bool `mapstructure:"create_sample"`
}

// ChartsConfig holds chart rendering settings.
type ChartsConfig struct {
	OutputDir     string `mapstructure:"output_dir"`
	TopStates     int    `mapstructure:"top_states"`
	HeatmapStates int    `mapstructure:"heatmap_states"`
	HistogramBins int    `mapstructure:"histogram_bins"`
}

// Defaults applied when neither config file nor environment set a value.
const (
	DefaultDataFile      = "crime_data.csv"
	DefaultCreateSample  = true
	DefaultOutputDir     = "charts"
	DefaultTopStates     = 10
	DefaultHeatmapStates = 15
	DefaultHistogramBins = 15
)

// Sentinel errors for configuration validation.
var (
	// ErrEmptyDataFile indicates data.file is blank.
	ErrEmptyDataFile = errors.New("data.file must not be empty")

	// ErrEmptyOutputDir indicates charts.output_dir is blank.
	ErrEmptyOutputDir = errors.New("charts.output_dir must not be empty")

	// ErrInvalidTopStates indicates charts.top_states is not positive.
	ErrInvalidTopStates = errors.New("charts.top_states must be positive")

	// ErrInvalidHeatmapStates indicates charts.heatmap_states is not positive.
	ErrInvalidHeatmapStates = errors.New("charts.heatmap_states must be positive")

	// ErrInvalidHistogramBins indicates charts.histogram_bins is not positive.
	ErrInvalidHistogramBins = errors.New("charts.histogram_bins must be positive")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return ErrEmptyDataFile
	}

	if c.Charts.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	if c.Charts.TopStates <= 0 {
		return ErrInvalidTopStates
	}

	if c.Charts.HeatmapStates <= 0 {
		return ErrInvalidHeatmapStates
	}

	if c.Charts.HistogramBins <= 0 {
		return ErrInvalidHistogramBins
	}

	return nil
}
