// Package commands implements the crimelens subcommands.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/statlens/crimelens/internal/config"
	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/viz"
)

// Shared flag names and usages.
const (
	configFlag  = "config"
	configUsage = "path to config file"

	dataFlag  = "data"
	dataUsage = "path to the crime table CSV (overrides config)"

	outputFlag  = "output"
	outputShort = "o"
	outputUsage = "output directory for chart HTML files (overrides config)"
)

// ErrSampleDisabled is returned when the crime table file is missing and
// data.create_sample is off.
var ErrSampleDisabled = errors.New("crime table not found and sample creation is disabled")

// resolveConfig loads configuration and applies command-line overrides.
func resolveConfig(configPath, dataPath, outputDir string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if dataPath != "" {
		cfg.Data.File = dataPath
	}

	if outputDir != "" {
		cfg.Charts.OutputDir = outputDir
	}

	return cfg, nil
}

// loadTable reads the configured crime table, synthesizing and persisting
// the sample table when the file is missing and sample creation is on.
func loadTable(cfg *config.Config) (dataset.Table, error) {
	table, err := dataset.Read(cfg.Data.File)
	if err == nil {
		return table, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if !cfg.Data.CreateSample {
		return nil, fmt.Errorf("%w: %s", ErrSampleDisabled, cfg.Data.File)
	}

	slog.Info("crime table not found, creating sample data", "path", cfg.Data.File)

	sample := dataset.SampleTable()

	saveErr := dataset.Save(sample, cfg.Data.File)
	if saveErr != nil {
		return nil, fmt.Errorf("persist sample table: %w", saveErr)
	}

	return sample, nil
}

func newRenderer(cfg *config.Config) *viz.Renderer {
	return &viz.Renderer{
		OutputDir:     cfg.Charts.OutputDir,
		TopStates:     cfg.Charts.TopStates,
		HeatmapStates: cfg.Charts.HeatmapStates,
		HistogramBins: cfg.Charts.HistogramBins,
	}
}
